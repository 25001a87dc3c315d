package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/concentric/pkg/rings"
	"github.com/matzehuels/concentric/pkg/scene"
)

// Runner executes the pipeline.
//
// The Runner is stateless except for its logger; it doesn't store pipeline
// results. Multiple goroutines can safely use the same Runner with
// different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete parse → layout → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{}

	// Stage 1: Parse
	parseStart := time.Now()
	s, err := r.Parse(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	result.Scene = s
	result.Stats.ParseTime = time.Since(parseStart)
	result.Stats.ElementCount = len(s.Elements)

	r.Logger.Info("parsed scene",
		"elements", len(s.Elements),
		"offsets", len(s.Offsets),
		"duration", result.Stats.ParseTime)

	// Stage 2: Layout
	layoutStart := time.Now()
	solved, err := r.GenerateLayout(ctx, s, opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Layout = solved
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.Stats.TerritoryCount = len(solved.Territories)
	result.Stats.RingCount = rings.Count(solved.Rings)

	r.Logger.Info("computed layout",
		"territories", result.Stats.TerritoryCount,
		"rings", result.Stats.RingCount,
		"height", solved.Viewport.Height,
		"duration", result.Stats.LayoutTime)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, err := r.Render(ctx, solved, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Parse reads the scene.
func (r *Runner) Parse(ctx context.Context, opts Options) (*scene.Scene, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForParse(); err != nil {
		return nil, err
	}
	return Parse(ctx, opts)
}

// GenerateLayout solves a parsed scene.
func (r *Runner) GenerateLayout(ctx context.Context, s *scene.Scene, opts Options) (*scene.Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForLayout(); err != nil {
		return nil, err
	}
	return GenerateLayout(ctx, s, opts)
}

// Render generates artifacts for a solved scene.
func (r *Runner) Render(ctx context.Context, solved *scene.Result, opts Options) (map[string][]byte, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}
	return Render(ctx, solved.Layout(), opts)
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
