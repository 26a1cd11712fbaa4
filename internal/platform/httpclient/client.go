// Package httpclient is the outbound HTTP client for the todo service.
// Every call passes through a circuit breaker and an optional token bucket,
// carries the caller's ids and session cookie, is traced as a client span
// and is retried with capped exponential backoff:
//
//	client := httpclient.New(&cfg.Client, "todo-api", metrics, logger,
//	    httpclient.WithCookieName(cfg.Session.CookieName))
//	ctx = httpclient.WithSessionCookie(ctx, cookie)
//	resp, err := client.Do(ctx, req)
package httpclient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/atsushi-h/go-todo/internal/platform/config"
	"github.com/atsushi-h/go-todo/internal/platform/logging"
	"github.com/atsushi-h/go-todo/internal/platform/telemetry"
)

const resultCircuitOpen = "circuit_open"

// Option configures a Client.
type Option func(*Client)

// WithCookieName names the session cookie sent upstream. The default is
// config.DefaultCookieName.
func WithCookieName(name string) Option {
	return func(c *Client) {
		if name != "" {
			c.cookieName = name
		}
	}
}

// WithHTTPClient swaps the transport client. Its Timeout falls back to the
// configured one when zero.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc.Timeout == 0 {
			hc.Timeout = c.http.Timeout
		}
		c.http = hc
	}
}

// Client sends requests to one downstream service.
type Client struct {
	http       *http.Client
	baseURL    string
	name       string
	cookieName string
	breaker    *gobreaker.CircuitBreaker[*http.Response]
	limiter    *rate.Limiter
	retry      policy
	metrics    *telemetry.Metrics
	logger     *slog.Logger
}

// New builds a client for the service called name. metrics may be nil.
func New(
	cfg *config.ClientConfig,
	name string,
	metrics *telemetry.Metrics,
	logger *slog.Logger,
	opts ...Option,
) *Client {
	logger = logging.OrDiscard(logger)

	c := &Client{
		http:       &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		name:       name,
		cookieName: config.DefaultCookieName,
		retry:      newPolicy(cfg.Retry),
		metrics:    metrics,
		logger:     logger,
	}
	if rl := cfg.RateLimit; rl.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(rl.RequestsPerSecond), rl.BurstSize)
	}

	cb := cfg.CircuitBreaker
	c.breaker = gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
		Name:        name,
		MaxRequests: clampUint32(cb.HalfOpenLimit),
		Timeout:     cb.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cb.MaxFailures
		},
		IsExcluded: func(err error) bool {
			var a *abandonedError
			return errors.As(err, &a)
		},
		OnStateChange: func(breaker string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", breaker),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Do sends req. A response with a final status (anything but 429 and 5xx)
// comes back with a nil error. When the retry budget runs out on a
// retryable status the last response is returned together with an error.
// Transport failures and breaker rejections return a nil response. The
// caller closes any non-nil response body.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := c.breaker.Execute(func() (*http.Response, error) {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return nil, &abandonedError{err: err}
			}
		}

		meta := outboundFrom(ctx)
		c.decorate(req, meta)

		ctx, span := otel.Tracer("httpclient").Start(ctx, "HTTP "+req.Method+" "+c.name,
			trace.WithSpanKind(trace.SpanKindClient),
			trace.WithAttributes(
				attribute.String("http.method", req.Method),
				attribute.String("http.url", req.URL.String()),
				attribute.String("peer.service", c.name),
			),
		)
		defer span.End()
		otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

		resp, err := c.send(ctx, req.WithContext(ctx), c.retry.attempts(req.Method, meta.maxAttempts))
		if resp != nil {
			span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
		}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			if ctx.Err() != nil {
				err = &abandonedError{err: err}
			}
		}
		return resp, err
	})
	var abandoned *abandonedError
	if errors.As(err, &abandoned) {
		err = abandoned.err
	}

	c.record(ctx, req.Method, time.Since(start), resp, err)
	return resp, err
}

// abandonedError marks a failure caused by the caller: its context ended
// or the rate limiter would not admit the call in time. The breaker does
// not count it either way.
type abandonedError struct {
	err error
}

func (e *abandonedError) Error() string { return e.err.Error() }

func (e *abandonedError) Unwrap() error { return e.err }

// decorate adds the ids and session cookie. A cookie the caller already
// set is left alone.
func (c *Client) decorate(req *http.Request, meta outbound) {
	if meta.requestID != "" {
		req.Header.Set("X-Request-ID", meta.requestID)
	}
	if meta.correlationID != "" {
		req.Header.Set("X-Correlation-ID", meta.correlationID)
	}
	if meta.session == "" {
		return
	}
	if _, err := req.Cookie(c.cookieName); errors.Is(err, http.ErrNoCookie) {
		req.AddCookie(&http.Cookie{Name: c.cookieName, Value: meta.session})
	}
}

// record runs outside the breaker so rejected calls are counted too.
func (c *Client) record(ctx context.Context, method string, elapsed time.Duration, resp *http.Response, err error) {
	if c.metrics == nil {
		return
	}

	status, result := 0, telemetry.ResultError
	if resp != nil {
		status = resp.StatusCode
		if status < http.StatusBadRequest {
			result = telemetry.ResultSuccess
		}
	}
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		result = resultCircuitOpen
	}

	attrs := metric.WithAttributes(
		telemetry.AttrHTTPMethod.String(method),
		telemetry.AttrHTTPStatus.Int(status),
		telemetry.AttrPeerService.String(c.name),
		telemetry.AttrResult.String(result),
	)
	c.metrics.ClientRequestDuration.Record(ctx, elapsed.Seconds(), attrs)
	c.metrics.ClientRequestTotal.Add(ctx, 1, attrs)
}

// BaseURL is the configured root of the downstream service.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Name identifies the downstream service in health reports, spans and
// metrics.
func (c *Client) Name() string {
	return c.name
}

// HealthCheck reads the breaker state without touching the network. A
// half-open breaker reports degraded, an open one failing.
func (c *Client) HealthCheck(context.Context) error {
	switch state := c.breaker.State(); state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", c.name)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", c.name)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", c.name, state)
	}
}

func clampUint32(v int) uint32 {
	switch {
	case v <= 0:
		return 0
	case v > math.MaxUint32:
		return math.MaxUint32
	}
	return uint32(v)
}
