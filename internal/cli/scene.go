package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/concentric/pkg/errors"
	"github.com/matzehuels/concentric/pkg/geom"
	"github.com/matzehuels/concentric/pkg/pipeline"
	"github.com/matzehuels/concentric/pkg/rings"
	"github.com/matzehuels/concentric/pkg/scene"
	"github.com/matzehuels/concentric/pkg/territory"
)

// layoutFlags are the layout overrides shared by scene commands. Flags
// only override the config when set on the command line.
type layoutFlags struct {
	gap     float64
	spacing float64
	mode    string
}

func (f *layoutFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&f.gap, "gap", 0, "gap between territories (overrides config)")
	cmd.Flags().Float64Var(&f.spacing, "spacing", 0, "distance between rings (overrides config)")
	cmd.Flags().StringVar(&f.mode, "mode", "", "layout mode: rows (default), column")
}

func (f *layoutFlags) apply(cmd *cobra.Command, opts *pipeline.Options) error {
	if cmd.Flags().Changed("gap") {
		opts.Gap = pipeline.Ptr(f.gap)
	}
	if cmd.Flags().Changed("spacing") {
		opts.Spacing = pipeline.Ptr(f.spacing)
	}
	if cmd.Flags().Changed("mode") {
		mode, err := territory.ParseMode(f.mode)
		if err != nil {
			return err
		}
		opts.Mode = mode
	}
	return nil
}

// solveScene loads and solves the scene at path with config and flags
// applied.
func (c *CLI) solveScene(ctx context.Context, cmd *cobra.Command, path string, flags *layoutFlags) (*scene.Result, error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return nil, err
	}
	opts := pipelineOptions(cfg)
	opts.Scene = path
	if err := flags.apply(cmd, &opts); err != nil {
		return nil, err
	}

	runner := c.newRunner()
	prog := newProgress(c.Logger)
	s, err := runner.Parse(ctx, opts)
	if err != nil {
		return nil, err
	}
	res, err := runner.GenerateLayout(ctx, s, opts)
	if err != nil {
		return nil, err
	}
	prog.done(fmt.Sprintf("Solved %d territories", len(res.Territories)))
	return res, nil
}

// =============================================================================
// territories
// =============================================================================

func (c *CLI) territoriesCommand() *cobra.Command {
	var flags layoutFlags
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "territories [scene]",
		Short: "Print the territory owned by each element of a scene",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := c.solveScene(cmd.Context(), cmd, args[0], &flags)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), res.Territories)
			}

			rows := make([][]string, 0, len(res.Territories))
			for _, t := range res.Territories {
				rows = append(rows, []string{
					t.ID,
					string(t.Category),
					formatRect(t.ElementBounds),
					formatBounds(t.TerritoryBounds),
					strconv.Itoa(len(res.RingsFor(t.ID))),
				})
			}
			writeTable(cmd.OutOrStdout(), []string{"Element", "Category", "Bounds", "Territory (t r b l)", "Rings"}, rows)
			printKeyValue("viewport", fmt.Sprintf("%s × %s", formatNum(res.Viewport.LayoutWidth), formatNum(res.Viewport.Height)))
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print territories as JSON")
	return cmd
}

// =============================================================================
// rings
// =============================================================================

func (c *CLI) ringsCommand() *cobra.Command {
	var flags layoutFlags
	var id string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "rings [scene]",
		Short: "Print the concentric rings generated around each element",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := c.solveScene(cmd.Context(), cmd, args[0], &flags)
			if err != nil {
				return err
			}

			sets := res.Rings
			if id != "" {
				set, ok := rings.Find(res.Rings, id)
				if !ok {
					return errors.New(errors.ErrCodeElementNotFound, "no rings for element %q", id)
				}
				sets = []rings.Set{set}
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), sets)
			}

			for _, set := range sets {
				printInfo("%s %s", StyleTitle.Render(set.ID), StyleDim.Render(string(set.Category)))
				rows := make([][]string, len(set.Rings))
				for i, r := range set.Rings {
					rows[i] = []string{strconv.Itoa(i), formatRect(r)}
				}
				writeTable(cmd.OutOrStdout(), []string{"#", "Rect (x y w h)"}, rows)
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&id, "id", "", "only print the rings of this element")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print rings as JSON")
	return cmd
}

// =============================================================================
// constrain
// =============================================================================

func (c *CLI) constrainCommand() *cobra.Command {
	var flags layoutFlags
	var id string
	var dx, dy float64

	cmd := &cobra.Command{
		Use:   "constrain [scene]",
		Short: "Apply a drag delta to an element and print the constrained offset",
		Long: `Constrain drags an element of a scene by (dx, dy) from its current offset
and prints the offset it would settle at, clamped so the element stays
inside its territory.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if id == "" {
				return errors.New(errors.ErrCodeInvalidInput, "--id is required")
			}
			res, err := c.solveScene(cmd.Context(), cmd, args[0], &flags)
			if err != nil {
				return err
			}
			off, err := res.Drag(id, geom.Offset{X: dx, Y: dy})
			if err != nil {
				return err
			}
			t, _ := res.Territory(id)

			printKeyValue("element", id)
			printKeyValue("bounds", formatRect(t.ElementBounds))
			printKeyValue("territory", formatBounds(t.TerritoryBounds))
			printKeyValue("requested", formatOffset(res.Offset(id).Add(geom.Offset{X: dx, Y: dy})))
			printSuccess("offset %s", StyleNumber.Render(formatOffset(off)))
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&id, "id", "", "element to drag")
	cmd.Flags().Float64Var(&dx, "dx", 0, "horizontal drag delta")
	cmd.Flags().Float64Var(&dy, "dy", 0, "vertical drag delta")
	return cmd
}

// =============================================================================
// Formatting
// =============================================================================

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatRect(r geom.Rect) string {
	return fmt.Sprintf("%s %s %s %s", formatNum(r.X), formatNum(r.Y), formatNum(r.Width), formatNum(r.Height))
}

func formatBounds(b geom.Bounds) string {
	return fmt.Sprintf("%s %s %s %s", formatNum(b.Top), formatNum(b.Right), formatNum(b.Bottom), formatNum(b.Left))
}

func formatOffset(o geom.Offset) string {
	return fmt.Sprintf("(%s, %s)", formatNum(o.X), formatNum(o.Y))
}
