package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net"
	"net/http"
	"time"

	"github.com/atsushi-h/go-todo/internal/platform/config"
	"github.com/atsushi-h/go-todo/internal/platform/logging"
)

// policy decides how often and how patiently a request is retried.
type policy struct {
	reads      int
	writes     int
	initial    time.Duration
	max        time.Duration
	multiplier float64
}

func newPolicy(cfg config.RetryConfig) policy {
	return policy{
		reads:      cfg.MaxAttempts,
		writes:     cfg.MutationMaxAttempts,
		initial:    cfg.InitialInterval,
		max:        cfg.MaxInterval,
		multiplier: cfg.Multiplier,
	}
}

// attempts is the total number of tries for method. GET and HEAD get the
// read budget, every other method the write budget. An override of 1 or
// more wins.
func (p policy) attempts(method string, override int) int {
	switch {
	case override >= 1:
		return override
	case method == http.MethodGet || method == http.MethodHead:
		return p.reads
	default:
		return p.writes
	}
}

// delay is the wait before the retry-th retry (1-based): initial times
// multiplier^(retry-1), never above max.
func (p policy) delay(retry int) time.Duration {
	retry = max(retry, 1)
	d := float64(p.initial) * math.Pow(p.multiplier, float64(retry-1))
	if math.IsNaN(d) || d > float64(p.max) {
		d = float64(p.max)
	}
	return time.Duration(max(d, 0))
}

// send tries req up to attempts times. The body is buffered once so each
// try replays it. On a retryable status the body of every response but the
// last is drained.
func (c *Client) send(ctx context.Context, req *http.Request, attempts int) (*http.Response, error) {
	if attempts < 1 {
		return nil, fmt.Errorf("httpclient: attempts must be >= 1, got %d", attempts)
	}
	body, err := snapshotBody(req)
	if err != nil {
		return nil, err
	}

	var lastErr error
	for try := 1; ; try++ {
		if body != nil {
			req.Body = io.NopCloser(bytes.NewReader(body))
			req.ContentLength = int64(len(body))
		}

		resp, err := c.http.Do(req)
		switch {
		case err != nil && !retryable(ctx, err):
			return nil, err
		case err != nil:
			lastErr = err
		case !retryableStatus(resp.StatusCode):
			return resp, nil
		default:
			lastErr = fmt.Errorf("HTTP %d from %s", resp.StatusCode, c.name)
			if try == attempts {
				return resp, lastErr
			}
			_, _ = io.Copy(io.Discard, resp.Body)
			_ = resp.Body.Close()
		}

		if try == attempts {
			return nil, lastErr
		}
		if err := c.pause(ctx, req, try, attempts, lastErr); err != nil {
			return nil, err
		}
	}
}

func (c *Client) pause(ctx context.Context, req *http.Request, try, attempts int, cause error) error {
	d := c.retry.delay(try)
	logging.FromContext(ctx).WarnContext(ctx, "retrying request",
		slog.String("peer_service", c.name),
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
		slog.Int("attempt", try+1),
		slog.Int("max_attempts", attempts),
		slog.Duration("backoff", d),
		slog.Any("error", cause),
	)

	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func snapshotBody(req *http.Request) ([]byte, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return nil, nil
	}
	defer func() { _ = req.Body.Close() }()
	b, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	return b, nil
}

// retryable reports whether a transport error is worth another try. Only
// the caller's own context decides: once ctx is done nothing is retried,
// while a per-try timeout (http.Client.Timeout) or a network error is
// retried as long as ctx is live.
func retryable(ctx context.Context, err error) bool {
	if err == nil || ctx.Err() != nil {
		return false
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return true
	}
	return !errors.Is(err, context.Canceled)
}

// retryableStatus is true for 429 and 5xx. 401 and the other 4xx are final.
func retryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}
