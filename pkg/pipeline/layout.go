package pipeline

import (
	"context"

	"github.com/matzehuels/concentric/pkg/scene"
)

// GenerateLayout solves s with the layout options in opts.
func GenerateLayout(ctx context.Context, s *scene.Scene, opts Options) (*scene.Result, error) {
	return scene.Solve(ctx, s, opts.EngineOptions())
}
