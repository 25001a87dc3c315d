package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/concentric/pkg/pipeline"
	"github.com/matzehuels/concentric/pkg/render"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output      string  // output file path (or base path for multiple outputs)
	formats     string  // comma-separated output formats
	elements    bool    // draw element boxes
	territories bool    // outline territories
	scale       float64 // PNG pixel density
	cellWidth   float64 // layout units per text column
	cellHeight  float64 // layout units per text row
}

// renderCommand creates the render command for drawing a scene's rings.
func (c *CLI) renderCommand() *cobra.Command {
	var flags layoutFlags
	opts := renderOpts{
		scale:      pipeline.DefaultScale,
		cellWidth:  pipeline.DefaultCellWidth,
		cellHeight: pipeline.DefaultCellHeight,
	}

	cmd := &cobra.Command{
		Use:   "render [scene]",
		Short: "Render a scene's rings to SVG, PNG, PDF, JSON or text",
		Long: `Render solves a scene and writes its rings in one or more formats.

PNG and PDF output require rsvg-convert (librsvg) on the PATH. Use
"-o -" with a single format to write to stdout.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			popts := pipelineOptions(cfg)
			popts.Scene = args[0]
			popts.Formats = parseFormats(opts.formats)
			popts.ShowElements = opts.elements
			popts.ShowTerritories = opts.territories
			popts.Scale = opts.scale
			popts.CellWidth = opts.cellWidth
			popts.CellHeight = opts.cellHeight
			if err := flags.apply(cmd, &popts); err != nil {
				return err
			}
			return c.runRender(cmd, args[0], popts, opts.output)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format), base path (multiple) or - for stdout")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): "+strings.Join(render.Formats, ", ")+" (comma-separated, default svg)")
	cmd.Flags().BoolVar(&opts.elements, "elements", false, "draw element boxes at their dragged positions")
	cmd.Flags().BoolVar(&opts.territories, "territories", false, "outline territories")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG pixel density")
	cmd.Flags().Float64Var(&opts.cellWidth, "cell-width", opts.cellWidth, "layout units per text column")
	cmd.Flags().Float64Var(&opts.cellHeight, "cell-height", opts.cellHeight, "layout units per text row")

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, input string, opts pipeline.Options, output string) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	logger.Infof("Rendering %s", input)

	if output == "-" && len(opts.Formats) != 1 {
		return fmt.Errorf("stdout output needs exactly one format, got %d", len(opts.Formats))
	}

	res, err := c.newRunner().Execute(ctx, opts)
	if err != nil {
		return err
	}

	if output == "-" {
		_, err := cmd.OutOrStdout().Write(res.Artifacts[opts.Formats[0]])
		return err
	}

	paths := outputPaths(output, input, opts.Formats)
	for _, format := range opts.Formats {
		path := paths[format]
		if err := os.WriteFile(path, res.Artifacts[format], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", format, err)
		}
		logger.Debugf("Generated %s: %d bytes", format, len(res.Artifacts[format]))
	}

	printSuccess("Rendered %d territories, %d rings", res.Stats.TerritoryCount, res.Stats.RingCount)
	printDetail("%d elements · parse %s · layout %s · render %s",
		res.Stats.ElementCount,
		res.Stats.ParseTime.Round(time.Microsecond),
		res.Stats.LayoutTime.Round(time.Microsecond),
		res.Stats.RenderTime.Round(time.Microsecond))
	for _, format := range opts.Formats {
		printFile(paths[format])
	}
	return nil
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension (.svg, .pdf, etc.), it strips that extension.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if slices.Contains(render.Formats, strings.TrimPrefix(ext, ".")) {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// outputPaths maps each format to its file. A single format written to an
// explicit output uses that path unchanged.
func outputPaths(output, input string, formats []string) map[string]string {
	paths := make(map[string]string, len(formats))
	if len(formats) == 1 && output != "" {
		paths[formats[0]] = output
		return paths
	}
	base := basePath(output, input)
	for _, f := range formats {
		paths[f] = base + "." + f
	}
	return paths
}
