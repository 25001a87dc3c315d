package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/matzehuels/concentric/pkg/concentric"
	"github.com/matzehuels/concentric/pkg/drag"
	"github.com/matzehuels/concentric/pkg/geom"
	"github.com/matzehuels/concentric/pkg/registry"
	"github.com/matzehuels/concentric/pkg/render"
	"github.com/matzehuels/concentric/pkg/rings"
	"github.com/matzehuels/concentric/pkg/territory"
)

// Playground geometry, in terminal cells.
const (
	cellGap            = 2.0
	cellSpacing        = 2.0
	cellPadding        = 2.0
	cellClickThreshold = 0.5

	sectionHeight         = 4.0
	sectionExpandedHeight = 10.0
	sectionMaxWidth       = 60.0
	sectionStep           = 1.0
)

// playgroundCommand creates the interactive terminal playground.
func (c *CLI) playgroundCommand() *cobra.Command {
	var logFile string
	var mode string
	var gap, spacing float64

	cmd := &cobra.Command{
		Use:   "playground",
		Short: "Drag page elements around in the terminal",
		Long: `Playground lays out a small page in the terminal and draws the rings around
each element. Drag elements with the mouse; they stay inside their territory.
Click a content section to expand or collapse it.

Keys: n add section · d delete section · r reset · m toggle mode ·
      t toggle territories · esc cancel drag · q quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}

			logger := log.NewWithOptions(io.Discard, log.Options{})
			if logFile != "" {
				f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
				if err != nil {
					return fmt.Errorf("open log file: %w", err)
				}
				defer f.Close()
				logger = newLogger(f, LogDebug)
			}
			installHooks(logger)

			opts := cfg.EngineOptions(logger)
			opts.Gap, opts.Spacing = cellGap, cellSpacing
			opts.ContentPadding = cellPadding
			opts.ClickThreshold = cellClickThreshold
			if cmd.Flags().Changed("gap") {
				opts.Gap = gap
			}
			if cmd.Flags().Changed("spacing") {
				opts.Spacing = spacing
			}
			if cmd.Flags().Changed("mode") {
				if opts.Mode, err = territory.ParseMode(mode); err != nil {
					return err
				}
			}
			if err := opts.Validate(); err != nil {
				return err
			}

			pg := newPlayground(cmd.Context(), opts, cfg.Settle.FrameInterval.Duration)
			prog := tea.NewProgram(pg,
				tea.WithContext(cmd.Context()),
				tea.WithAltScreen(),
				tea.WithMouseCellMotion(),
			)
			if _, err := prog.Run(); err != nil {
				return err
			}
			logger.Info("playground closed", "frames", pg.engine.Frame())
			return nil
		},
	}

	cmd.Flags().StringVar(&logFile, "log-file", "", "write debug logs to this file")
	cmd.Flags().StringVar(&mode, "mode", "", "layout mode: rows (default), column")
	cmd.Flags().Float64Var(&gap, "gap", cellGap, "gap between territories in cells")
	cmd.Flags().Float64Var(&spacing, "spacing", cellSpacing, "distance between rings in cells")
	return cmd
}

// =============================================================================
// Page Model
// =============================================================================

// section is one element of the playground page. rect is its document
// rectangle in cells; its height animates toward target.
type section struct {
	id       string
	label    string
	category registry.Category
	rect     geom.Rect
	target   float64
	expanded bool
}

// frameMsg advances the engine by one frame.
type frameMsg time.Time

// playground is the bubbletea model. Terminal cells are layout units; the
// canvas starts below a one-line header and ends above a one-line footer.
type playground struct {
	ctx      context.Context
	opts     concentric.Options
	interval time.Duration

	engine   *concentric.Engine
	sections []*section
	added    int

	width, height int
	territories   bool
	status        string
}

func newPlayground(ctx context.Context, opts concentric.Options, interval time.Duration) *playground {
	if interval <= 0 {
		interval = 16 * time.Millisecond
	}
	p := &playground{ctx: ctx, opts: opts, interval: interval}
	for _, label := range []string{"home", "about", "work"} {
		p.sections = append(p.sections, &section{id: "nav-" + label, label: label, category: registry.CategoryNav})
	}
	for _, label := range []string{"intro", "projects", "contact"} {
		p.sections = append(p.sections, &section{id: "section-" + label, label: label, category: registry.CategoryContent})
	}
	for _, label := range []string{"gh", "mail"} {
		p.sections = append(p.sections, &section{id: "social-" + label, label: label, category: registry.CategorySocial})
	}
	for _, s := range p.sections {
		s.rect.Height, s.target = s.baseHeight(), s.baseHeight()
	}
	p.rebuild(nil)
	return p
}

func (s *section) baseHeight() float64 {
	if s.category == registry.CategoryContent {
		return sectionHeight
	}
	return 3
}

// canvasHeight is the number of rows available to the page.
func (p *playground) canvasHeight() int { return max(p.height-2, 0) }

func (p *playground) metrics() concentric.Metrics {
	w := float64(p.width)
	return concentric.Metrics{LayoutWidth: w, VisibleWidth: w, InnerHeight: float64(p.canvasHeight())}
}

// rebuild creates a fresh engine, registers every section and carries the
// given offsets over.
func (p *playground) rebuild(offsets map[string]geom.Offset) {
	p.engine = concentric.New(p.ctx, concentric.HostFunc(p.metrics), p.opts)
	for _, s := range p.sections {
		p.register(s)
	}
	p.engine.SetOffsets(offsets)
}

func (p *playground) register(s *section) {
	p.engine.Register(s.id, s.category, registry.MeasurerFunc(func() geom.Rect {
		return s.rect.Translate(p.engine.Offset(s.id))
	}))
}

// flow positions every section for the current window size: nav across
// the top, content stacked below and social along the bottom right, pushed
// down when the content grows past the window.
func (p *playground) flow() {
	w, h := float64(p.width), float64(p.canvasHeight())
	navX, contentY := 2.0, 6.0
	contentW := max(12, min(sectionMaxWidth, w*0.6))

	for _, s := range p.sections {
		switch s.category {
		case registry.CategoryNav:
			width := float64(len(s.label) + 4)
			s.rect.X, s.rect.Y, s.rect.Width = navX, 1, width
			navX += width + 2
		case registry.CategoryContent:
			s.rect.X, s.rect.Y, s.rect.Width = 4, contentY, contentW
			contentY += s.rect.Height + 2
		}
	}

	socialX, socialY := w-2, max(h-5, contentY)
	for i := len(p.sections) - 1; i >= 0; i-- {
		s := p.sections[i]
		if s.category != registry.CategorySocial {
			continue
		}
		width := float64(len(s.label) + 4)
		socialX -= width
		s.rect.X, s.rect.Y, s.rect.Width = socialX, socialY, width
		socialX -= 2
	}
}

func (p *playground) find(id string) *section {
	for _, s := range p.sections {
		if s.id == id {
			return s
		}
	}
	return nil
}

// hit returns the topmost section drawn under pt.
func (p *playground) hit(pt geom.Point) (*section, bool) {
	for i := len(p.sections) - 1; i >= 0; i-- {
		s := p.sections[i]
		r := s.rect.Translate(p.engine.Offset(s.id))
		if pt.X >= r.Left() && pt.X < r.Right() && pt.Y >= r.Top() && pt.Y < r.Bottom() {
			return s, true
		}
	}
	return nil, false
}

// =============================================================================
// Actions
// =============================================================================

func (p *playground) toggle(s *section) {
	s.expanded = !s.expanded
	s.target = s.baseHeight()
	if s.expanded {
		s.target = sectionExpandedHeight
	}
	p.engine.SetExpanded(s.id, s.expanded)
	if s.expanded {
		p.status = "expanded " + s.label
	} else {
		p.status = "collapsed " + s.label
	}
}

// animate moves every section height one step toward its target and ends
// the transition of sections that arrived.
func (p *playground) animate() {
	moved := false
	var arrived []string
	for _, s := range p.sections {
		if s.rect.Height == s.target {
			continue
		}
		if s.rect.Height < s.target {
			s.rect.Height = min(s.rect.Height+sectionStep, s.target)
		} else {
			s.rect.Height = max(s.rect.Height-sectionStep, s.target)
		}
		if s.rect.Height == s.target {
			arrived = append(arrived, s.id)
		}
		moved = true
	}
	if moved {
		p.flow()
	}
	for _, id := range arrived {
		p.engine.TransitionEnded(id)
	}
}

func (p *playground) addSection() {
	p.added++
	s := &section{
		id:       "section-" + uuid.NewString(),
		label:    fmt.Sprintf("new %d", p.added),
		category: registry.CategoryContent,
	}
	s.rect.Height, s.target = sectionHeight, sectionHeight

	// Insert after the last content section so the stacking order holds.
	at := len(p.sections)
	for i, o := range p.sections {
		if o.category == registry.CategoryContent {
			at = i + 1
		}
	}
	p.sections = slices.Insert(p.sections, at, s)
	p.flow()
	p.register(s)
	p.status = "added " + s.label
}

// deleteSection removes the last content section.
func (p *playground) deleteSection() {
	for i := len(p.sections) - 1; i >= 0; i-- {
		s := p.sections[i]
		if s.category != registry.CategoryContent {
			continue
		}
		p.sections = slices.Delete(p.sections, i, i+1)
		p.engine.Unregister(s.id)
		p.flow()
		p.status = "deleted " + s.label
		return
	}
	p.status = "no section to delete"
}

func (p *playground) toggleMode() {
	if p.opts.Mode == territory.ModeColumn {
		p.opts.Mode = territory.ModeRows
	} else {
		p.opts.Mode = territory.ModeColumn
	}
	p.engine.PointerCancel()
	p.rebuild(p.engine.Snapshot().Offsets)
	p.status = "mode " + string(p.opts.Mode)
}

// =============================================================================
// bubbletea
// =============================================================================

func (p *playground) tick() tea.Cmd {
	return tea.Tick(p.interval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

func (p *playground) Init() tea.Cmd {
	return p.tick()
}

func (p *playground) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width, p.height = msg.Width, msg.Height
		p.flow()
		p.engine.Resize()

	case frameMsg:
		p.animate()
		p.engine.Tick()
		return p, p.tick()

	case tea.MouseMsg:
		p.mouse(msg)

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return p, tea.Quit
		case "esc":
			if p.engine.PointerCancel() {
				p.status = "drag cancelled"
			}
		case "r":
			p.engine.Reset()
			p.status = "offsets reset"
		case "n":
			p.addSection()
		case "d":
			p.deleteSection()
		case "m":
			p.toggleMode()
		case "t":
			p.territories = !p.territories
		}
	}
	return p, nil
}

// mouse translates terminal mouse events into pointer input. Points are
// cell centres in canvas coordinates.
func (p *playground) mouse(msg tea.MouseMsg) {
	pt := geom.Point{X: float64(msg.X) + 0.5, Y: float64(msg.Y-1) + 0.5}
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		if s, ok := p.hit(pt); ok {
			p.engine.PointerDown(s.id, drag.Mouse(pt))
		}
	case tea.MouseActionMotion:
		p.engine.PointerMove(drag.Mouse(pt))
	case tea.MouseActionRelease:
		rel, ok := p.engine.PointerUp()
		if !ok {
			return
		}
		s := p.find(rel.ID)
		switch {
		case s == nil:
		case rel.Click && s.category == registry.CategoryContent:
			p.toggle(s)
		case rel.Click:
			p.status = "clicked " + s.label
		default:
			p.status = fmt.Sprintf("moved %s to %s", s.label, formatOffset(rel.Offset))
		}
	}
}

func (p *playground) View() string {
	if p.width == 0 || p.height < 3 {
		return "starting…"
	}
	snap := p.engine.Snapshot()

	var b strings.Builder
	header := StyleTitle.Render("concentric") + " " + StyleDim.Render(fmt.Sprintf(
		"%s · %d elements · %d rings · frame %d",
		p.opts.Mode, len(snap.Territories), rings.Count(snap.Rings), p.engine.Frame()))
	b.WriteString(header)
	b.WriteString("\n")

	g := render.NewGrid(p.width, p.canvasHeight())
	opts := []render.TextOption{render.WithLabelFunc(p.label)}
	if p.territories {
		opts = append(opts, render.WithTerritoryOutlines())
	}
	render.RenderText(g, snap.Layout(), opts...)
	for _, line := range g.Lines() {
		b.WriteString(colorize(line))
		b.WriteString("\n")
	}

	footer := "drag to move · click a section to expand · n add · d delete · r reset · m mode · t territories · q quit"
	if p.status != "" {
		footer = p.status
	}
	b.WriteString(StyleDim.Render(footer))
	return b.String()
}

func (p *playground) label(id string) string {
	if s := p.find(id); s != nil {
		return s.label
	}
	return id
}

// colorize dims ring and territory runes and highlights everything else.
func colorize(line string) string {
	var b strings.Builder
	var run []rune
	dim := false
	flush := func() {
		if len(run) == 0 {
			return
		}
		if dim {
			b.WriteString(StyleDim.Render(string(run)))
		} else {
			b.WriteString(StyleValue.Render(string(run)))
		}
		run = run[:0]
	}
	for _, r := range line {
		d := isRingRune(r)
		if d != dim && r != ' ' {
			flush()
			dim = d
		}
		run = append(run, r)
	}
	flush()
	return b.String()
}

func isRingRune(r rune) bool {
	for _, box := range []render.Box{render.LightBox, render.DashedBox} {
		switch r {
		case box.TopLeft, box.TopRight, box.BottomLeft, box.BottomRight, box.Horizontal, box.Vertical:
			return true
		}
	}
	return false
}
