package httpclient

import "context"

// outbound is the per-call metadata the client copies onto each request.
type outbound struct {
	requestID     string
	correlationID string
	session       string
	maxAttempts   int
}

type outboundKey struct{}

func outboundFrom(ctx context.Context) outbound {
	o, _ := ctx.Value(outboundKey{}).(outbound)
	return o
}

func withOutbound(ctx context.Context, set func(*outbound)) context.Context {
	o := outboundFrom(ctx)
	set(&o)
	return context.WithValue(ctx, outboundKey{}, o)
}

// WithRequestID sends id as X-Request-ID on requests made with ctx.
func WithRequestID(ctx context.Context, id string) context.Context {
	return withOutbound(ctx, func(o *outbound) { o.requestID = id })
}

// WithCorrelationID sends id as X-Correlation-ID on requests made with ctx.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return withOutbound(ctx, func(o *outbound) { o.correlationID = id })
}

// WithSessionCookie attaches the opaque session cookie value to requests
// made with ctx. The value is never parsed.
func WithSessionCookie(ctx context.Context, value string) context.Context {
	return withOutbound(ctx, func(o *outbound) { o.session = value })
}

// SessionCookieFromContext returns the value set by WithSessionCookie.
func SessionCookieFromContext(ctx context.Context) (string, bool) {
	v := outboundFrom(ctx).session
	return v, v != ""
}

// WithMaxAttempts overrides the retry budget for requests made with ctx.
// Values below 1 are ignored.
func WithMaxAttempts(ctx context.Context, n int) context.Context {
	return withOutbound(ctx, func(o *outbound) { o.maxAttempts = n })
}
