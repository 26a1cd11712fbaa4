// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port
// interfaces.
//
// Reads go through the query cache. Mutations go straight to the remote
// service and, once the server has answered, invalidate the affected cache
// keys; cached data is never patched in place.
package app

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/atsushi-h/go-todo/internal/domain"
	"github.com/atsushi-h/go-todo/internal/platform/querycache"
	"github.com/atsushi-h/go-todo/internal/platform/telemetry"
)

// Cache keys, before scoping.
const (
	KeyTodos = "todos"
	KeyMe    = "me"
)

// Option configures a Coordinator or SessionService.
type Option func(*options)

type options struct {
	scope   string
	metrics *telemetry.Metrics
}

// WithScope prefixes every cache key so several sessions can share one
// cache without seeing each other's data.
func WithScope(scope string) Option {
	return func(o *options) {
		o.scope = scope
	}
}

// WithMetrics records mutation outcomes on m.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) key(k string) string {
	return querycache.Scoped(o.scope, k)
}

func (o options) todoKey(id int64) string {
	return querycache.Scoped(o.scope, "todo:"+strconv.FormatInt(id, 10))
}

// scopePrefix matches every key of the scope. An unscoped service owns the
// whole cache.
func (o options) scopePrefix() string {
	if o.scope == "" {
		return ""
	}
	return o.scope + "/"
}

// settle decides whether a remote call's outcome may be applied locally.
// If ctx ended while the call was in flight the caller has gone away, so the
// outcome is dropped and ctx.Err() returned in place of err.
func settle(ctx context.Context, logger *slog.Logger, metrics *telemetry.Metrics, op string, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		logger.DebugContext(ctx, "mutation aborted; outcome not applied",
			slog.String("operation", op),
		)
		metrics.RecordMutation(ctx, op, telemetry.ResultCanceled)
		return ctxErr
	}
	if err == nil {
		return nil
	}

	metrics.RecordMutation(ctx, op, telemetry.ResultError)
	logFailure(ctx, logger, op, err)
	return err
}

// logFailure logs expected client-side outcomes at warn and everything else
// at error.
func logFailure(ctx context.Context, logger *slog.Logger, op string, err error, attrs ...slog.Attr) {
	level := slog.LevelError
	switch domain.KindOf(err) {
	case domain.KindValidation, domain.KindAuth, domain.KindNotFound, domain.KindConflict:
		level = slog.LevelWarn
	case domain.KindCanceled:
		level = slog.LevelDebug
	}

	attrs = append(attrs,
		slog.String("operation", op),
		slog.Any("error", err),
	)
	logger.LogAttrs(ctx, level, "operation failed", attrs...)
}

// rejected records a mutation refused before any request was sent.
func rejected(ctx context.Context, logger *slog.Logger, metrics *telemetry.Metrics, op string, err error) error {
	logger.DebugContext(ctx, "rejected before dispatch",
		slog.String("operation", op),
		slog.Any("error", err),
	)
	metrics.RecordMutation(ctx, op, telemetry.ResultError)
	return err
}
