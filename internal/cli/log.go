package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Solved 12 territories (3ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// =============================================================================
// Observability Hooks
// =============================================================================

// logHooks writes engine and IO events to a logger at debug level.
type logHooks struct {
	logger *log.Logger
}

func (h *logHooks) OnRecompute(_ context.Context, elements, territories, rings int, d time.Duration) {
	h.logger.Debug("layout recomputed", "elements", elements, "territories", territories, "rings", rings, "duration", d)
}

func (h *logHooks) OnViewportChange(_ context.Context, layoutWidth, visibleWidth, height float64, layoutChanged bool) {
	h.logger.Debug("viewport changed", "layout_width", layoutWidth, "visible_width", visibleWidth, "height", height, "layout_changed", layoutChanged)
}

func (h *logHooks) OnDragStart(_ context.Context, id, source string) {
	h.logger.Debug("drag start", "id", id, "source", source)
}

func (h *logHooks) OnDragEnd(_ context.Context, id string, x, y float64, click bool) {
	h.logger.Debug("drag end", "id", id, "x", x, "y", y, "click", click)
}

func (h *logHooks) OnDragCancel(_ context.Context, id string) {
	h.logger.Debug("drag cancel", "id", id)
}

func (h *logHooks) OnSceneLoad(_ context.Context, path, format string, elements int, d time.Duration, err error) {
	if err != nil {
		h.logger.Warn("scene load failed", "path", path, "format", format, "err", err)
		return
	}
	h.logger.Debug("scene loaded", "path", path, "format", format, "elements", elements, "duration", d)
}

func (h *logHooks) OnRender(_ context.Context, format string, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Warn("render failed", "format", format, "err", err)
		return
	}
	h.logger.Debug("rendered", "format", format, "bytes", size, "duration", d)
}
