// Package observability carries run-scoped log fields (run id, stage,
// config hash) in a context.Context and stamps them onto log records.
package observability

import (
	"context"
	"log/slog"

	"git.home.luguber.info/inful/docnav/internal/logfields"
)

type runFields struct {
	runID      string
	stage      string
	configHash string
}

type fieldsKey struct{}

func fromContext(ctx context.Context) runFields {
	if ctx == nil {
		return runFields{}
	}
	f, _ := ctx.Value(fieldsKey{}).(runFields)
	return f
}

func with(ctx context.Context, update func(*runFields)) context.Context {
	f := fromContext(ctx)
	update(&f)
	return context.WithValue(ctx, fieldsKey{}, f)
}

// WithRunID tags ctx with the id of the current generation run.
func WithRunID(ctx context.Context, id string) context.Context {
	return with(ctx, func(f *runFields) { f.runID = id })
}

// WithStage tags ctx with the pipeline stage; an inner stage replaces an outer one.
func WithStage(ctx context.Context, stage string) context.Context {
	return with(ctx, func(f *runFields) { f.stage = stage })
}

// WithConfigHash tags ctx with the configuration snapshot hash.
func WithConfigHash(ctx context.Context, hash string) context.Context {
	return with(ctx, func(f *runFields) { f.configHash = hash })
}

// Attrs returns the run fields stored in ctx. Unset fields are omitted.
func Attrs(ctx context.Context) []slog.Attr {
	f := fromContext(ctx)
	attrs := make([]slog.Attr, 0, 3)
	if f.runID != "" {
		attrs = append(attrs, logfields.RunID(f.runID))
	}
	if f.stage != "" {
		attrs = append(attrs, logfields.Stage(f.stage))
	}
	if f.configHash != "" {
		attrs = append(attrs, logfields.ConfigHash(f.configHash))
	}
	return attrs
}

// Handler adds the run fields of each record's context before passing the
// record on. Use the *Context logging methods so the context reaches it.
type Handler struct {
	inner slog.Handler
}

// NewHandler wraps inner.
func NewHandler(inner slog.Handler) *Handler {
	return &Handler{inner: inner}
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	if attrs := Attrs(ctx); len(attrs) > 0 {
		r = r.Clone()
		r.AddAttrs(attrs...)
	}
	return h.inner.Handle(ctx, r)
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{inner: h.inner.WithAttrs(attrs)}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{inner: h.inner.WithGroup(name)}
}
