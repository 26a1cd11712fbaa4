package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/atsushi-h/go-todo/internal/platform/httpclient"
)

const (
	headerRequestID     = "X-Request-ID"
	headerCorrelationID = "X-Correlation-ID"

	// Client-supplied ids longer than this are replaced before they reach
	// logs or the todo service.
	maxIDLen = 128
)

// traceIDs is stored once per request and copied on write.
type traceIDs struct {
	request     string
	correlation string
}

type traceIDsKey struct{}

func idsFrom(ctx context.Context) traceIDs {
	ids, _ := ctx.Value(traceIDsKey{}).(traceIDs)
	return ids
}

// WithRequestID stores id in ctx. httpclient receives it too, so calls to
// the todo service carry the same X-Request-ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	ids := idsFrom(ctx)
	ids.request = id
	ctx = context.WithValue(ctx, traceIDsKey{}, ids)
	return httpclient.WithRequestID(ctx, id)
}

// RequestIDFromContext returns the request ID, or "".
func RequestIDFromContext(ctx context.Context) string {
	return idsFrom(ctx).request
}

// WithCorrelationID stores id in ctx and forwards it to httpclient.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	ids := idsFrom(ctx)
	ids.correlation = id
	ctx = context.WithValue(ctx, traceIDsKey{}, ids)
	return httpclient.WithCorrelationID(ctx, id)
}

// CorrelationIDFromContext returns the correlation ID, or "".
func CorrelationIDFromContext(ctx context.Context) string {
	return idsFrom(ctx).correlation
}

// RequestID reuses a sane incoming X-Request-ID or mints a UUID, and echoes
// it on the response.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := incomingID(r, headerRequestID)
			if id == "" {
				id = uuid.NewString()
			}
			w.Header().Set(headerRequestID, id)
			next.ServeHTTP(w, r.WithContext(WithRequestID(r.Context(), id)))
		})
	}
}

// CorrelationID reuses the incoming X-Correlation-ID, falling back to the
// request ID. Run it after RequestID.
func CorrelationID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := incomingID(r, headerCorrelationID)
			if id == "" {
				id = RequestIDFromContext(r.Context())
			}
			w.Header().Set(headerCorrelationID, id)
			next.ServeHTTP(w, r.WithContext(WithCorrelationID(r.Context(), id)))
		})
	}
}

func incomingID(r *http.Request, header string) string {
	id := r.Header.Get(header)
	if len(id) > maxIDLen {
		return ""
	}
	return id
}
