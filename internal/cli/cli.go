// Package cli implements the concentric command-line interface.
package cli

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/concentric/pkg/buildinfo"
	"github.com/matzehuels/concentric/pkg/config"
	"github.com/matzehuels/concentric/pkg/observability"
	"github.com/matzehuels/concentric/pkg/pipeline"
	"github.com/matzehuels/concentric/pkg/render"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "concentric"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// configPath is the --config flag; empty means the default location.
	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Concentric partitions a page into territories and draws rings around its elements",
		Long: `Concentric partitions a window among navigation, content and social elements,
draws concentric rings around each element within its territory and keeps
dragged elements inside the territory they own.`,
		Version:       buildinfo.Get().Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/concentric/config.toml)")

	root.AddCommand(c.territoriesCommand())
	root.AddCommand(c.ringsCommand())
	root.AddCommand(c.constrainCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.playgroundCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Config & Runner Factory
// =============================================================================

// loadConfig reads the --config file, or the default file when present.
func (c *CLI) loadConfig() (config.Config, error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return config.Config{}, err
	}
	c.Logger.Debug("loaded config", "path", c.configPath)
	return cfg, nil
}

// newRunner creates a pipeline runner for CLI use and installs log-backed
// observability hooks.
func (c *CLI) newRunner() *pipeline.Runner {
	installHooks(c.Logger)
	return pipeline.NewRunner(c.Logger)
}

// installHooks routes engine and IO events to logger at debug level.
func installHooks(logger *log.Logger) {
	h := &logHooks{logger: logger}
	observability.SetLayoutHooks(h)
	observability.SetDragHooks(h)
	observability.SetIOHooks(h)
}

// =============================================================================
// Options Helpers
// =============================================================================

// pipelineOptions converts a config into pipeline options.
func pipelineOptions(cfg config.Config) pipeline.Options {
	return pipeline.Options{
		Gap:            pipeline.Ptr(cfg.Layout.Gap),
		Spacing:        pipeline.Ptr(cfg.Layout.Spacing),
		Mode:           cfg.Mode(),
		ContentPadding: pipeline.Ptr(cfg.Layout.ContentPadding),
		StrokeColor:    cfg.Canvas.StrokeColor,
		StrokeWidth:    cfg.Canvas.StrokeWidth,
		StrokeOpacity:  cfg.Canvas.StrokeOpacity,
	}
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{render.FormatSVG}
	}
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.ToLower(strings.TrimSpace(p))
	}
	return parts
}
