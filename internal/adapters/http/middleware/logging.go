package middleware

import (
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/atsushi-h/go-todo/internal/platform/logging"
)

const redacted = "[REDACTED]"

// secretHeaders never reach the logs. The session cookie travels in Cookie.
var secretHeaders = map[string]struct{}{
	"authorization": {},
	"cookie":        {},
	"set-cookie":    {},
	"x-api-key":     {},
}

// Logging logs each request's start and end with a child logger tagged with
// the request and correlation ids. The child logger is put in the context,
// so handlers and the services they call log under the same ids. Request
// headers are logged at debug level with credentials replaced.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()

			log := logger.With(
				slog.String("request_id", RequestIDFromContext(ctx)),
				slog.String("correlation_id", CorrelationIDFromContext(ctx)),
			)
			ctx = logging.WithLogger(ctx, log)
			r = r.WithContext(ctx)

			log.InfoContext(ctx, "request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			)
			if log.Enabled(ctx, slog.LevelDebug) {
				log.DebugContext(ctx, "request headers", slog.Any("headers", headerGroup(r.Header)))
			}

			rec := record(w)
			next.ServeHTTP(rec, r)

			log.InfoContext(ctx, "request completed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("route", routePattern(r)),
				slog.Int("status", rec.status),
				slog.Int64("bytes", rec.bytes),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

// headerGroup renders h as a sorted slog group with secrets replaced.
func headerGroup(h http.Header) slog.Value {
	names := make([]string, 0, len(h))
	for name := range h {
		names = append(names, name)
	}
	sort.Strings(names)

	attrs := make([]slog.Attr, 0, len(names))
	for _, name := range names {
		v := strings.Join(h.Values(name), ",")
		if _, secret := secretHeaders[strings.ToLower(name)]; secret {
			v = redacted
		}
		attrs = append(attrs, slog.String(name, v))
	}
	return slog.GroupValue(attrs...)
}

// routePattern prefers the chi pattern (/todos/{id}) over the raw path so
// todo ids stay out of span names and log fields.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return r.URL.Path
}
