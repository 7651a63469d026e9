package log

import (
	"context"
	"log/slog"
	"strconv"
)

// FloatPrecision is the number of significant digits float attributes
// are rendered with. Four digits is enough to tell sweep records apart
// without drowning the log in mantissa noise.
const FloatPrecision = 4

// RunHandler wraps an slog.Handler to make experiment logs readable.
// It rewrites float64 attribute values into compact significant-digit
// form before passing records to the underlying handler.
//
// Design decision: a handler wrapper rather than a custom logger
// because:
//  1. It integrates seamlessly with standard slog APIs
//  2. It works with any underlying handler (text, JSON, etc.)
//  3. Callers keep using slog.Float64 attrs without knowing about it
type RunHandler struct {
	// handler is the underlying slog handler that receives the
	// rewritten records.
	handler slog.Handler
}

// NewRunHandler creates a RunHandler wrapping the given handler.
// If handler is nil, slog.Default().Handler() is used.
func NewRunHandler(handler slog.Handler) *RunHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	return &RunHandler{handler: handler}
}

// Enabled reports whether the handler handles records at the given
// level. It delegates to the underlying handler.
func (h *RunHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle rewrites the record's float attributes and passes it on.
func (h *RunHandler) Handle(ctx context.Context, r slog.Record) error {
	rewritten := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)
	r.Attrs(func(a slog.Attr) bool {
		rewritten.AddAttrs(compactAttr(a))
		return true
	})
	return h.handler.Handle(ctx, rewritten)
}

// WithAttrs returns a new RunHandler whose underlying handler carries
// the given attributes. The attributes themselves are compacted first
// so run-scoped floats get the same treatment as record attrs.
func (h *RunHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	compacted := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		compacted[i] = compactAttr(a)
	}
	return &RunHandler{handler: h.handler.WithAttrs(compacted)}
}

// WithGroup returns a new RunHandler with the given group name.
func (h *RunHandler) WithGroup(name string) slog.Handler {
	return &RunHandler{handler: h.handler.WithGroup(name)}
}

// compactAttr rewrites float64 values into significant-digit strings
// and recurses into groups. All other values pass through unchanged.
func compactAttr(a slog.Attr) slog.Attr {
	switch a.Value.Kind() {
	case slog.KindFloat64:
		return slog.String(a.Key, FormatFloat(a.Value.Float64()))
	case slog.KindGroup:
		group := a.Value.Group()
		rewritten := make([]any, 0, len(group))
		for _, g := range group {
			rewritten = append(rewritten, compactAttr(g))
		}
		return slog.Group(a.Key, rewritten...)
	default:
		return a
	}
}

// FormatFloat renders v with FloatPrecision significant digits.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', FloatPrecision, 64)
}
