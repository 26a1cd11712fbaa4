// Package logging builds the slog loggers used by both binaries and carries
// them through contexts. Every logger redacts credentials, the todo session
// cookie above all, before a record reaches its writer.
//
// Services log failures with the operation and entity ids:
//
//	logger.ErrorContext(ctx, "batch delete failed",
//	    slog.String("operation", "BatchDelete"),
//	    slog.Int("count", len(ids)),
//	    slog.Any("error", err),
//	)
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

// Option configures New.
type Option func(*options)

type options struct {
	cookieName string
	component  string
}

// WithSessionCookie redacts "<name>=<value>" wherever it appears in a
// string attribute. The default cookie name is always covered.
func WithSessionCookie(name string) Option {
	return func(o *options) {
		o.cookieName = name
	}
}

// WithComponent tags every record with component=name.
func WithComponent(name string) Option {
	return func(o *options) {
		o.component = name
	}
}

// New returns a logger writing to w. level is one of debug, info, warn or
// error (case-insensitive, default info); format is "text" or anything else
// for JSON. Debug loggers include the source location.
func New(level, format string, w io.Writer, opts ...Option) *slog.Logger {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	lvl := parseLevel(level)
	ho := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl == slog.LevelDebug,
		ReplaceAttr: redactor(o.cookieName),
	}

	var h slog.Handler = slog.NewJSONHandler(w, ho)
	if strings.EqualFold(format, "text") {
		h = slog.NewTextHandler(w, ho)
	}

	logger := slog.New(h)
	if o.component != "" {
		logger = logger.With(slog.String("component", o.component))
	}
	return logger
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// OrDiscard returns logger, or Discard() when it is nil.
func OrDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return Discard()
	}
	return logger
}

type loggerKey struct{}

// WithLogger stores logger in ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the logger stored in ctx, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return slog.Default()
}

func parseLevel(level string) slog.Level {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug", "warn", "error":
		_ = lvl.UnmarshalText([]byte(level))
	}
	return lvl
}
