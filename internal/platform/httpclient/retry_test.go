package httpclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/atsushi-h/go-todo/internal/platform/config"
)

func TestPolicy_Delay(t *testing.T) {
	t.Parallel()

	p := newPolicy(config.RetryConfig{
		InitialInterval: time.Second,
		MaxInterval:     5 * time.Second,
		Multiplier:      2,
	})

	want := []time.Duration{time.Second, 2 * time.Second, 4 * time.Second, 5 * time.Second, 5 * time.Second}
	for i, w := range want {
		if got := p.delay(i + 1); got != w {
			t.Errorf("delay(%d) = %v, want %v", i+1, got, w)
		}
	}
	if got := p.delay(0); got != time.Second {
		t.Errorf("delay(0) = %v, want the first delay", got)
	}
}

func TestPolicy_DelayNeverShrinksOrExceedsCap(t *testing.T) {
	t.Parallel()

	policies := []policy{
		{initial: 100 * time.Millisecond, max: 500 * time.Millisecond, multiplier: 2},
		{initial: time.Second, max: time.Second, multiplier: 3},
		{initial: 10 * time.Millisecond, max: time.Minute, multiplier: 1},
		{initial: time.Millisecond, max: time.Hour, multiplier: 10},
	}

	for _, p := range policies {
		t.Run(fmt.Sprintf("%v-%v-x%v", p.initial, p.max, p.multiplier), func(t *testing.T) {
			t.Parallel()

			var prev time.Duration
			for retry := 1; retry <= 200; retry++ {
				d := p.delay(retry)
				if d < prev || d > p.max {
					t.Fatalf("delay(%d) = %v, previous %v, cap %v", retry, d, prev, p.max)
				}
				prev = d
			}
		})
	}
}

func TestPolicy_Attempts(t *testing.T) {
	t.Parallel()

	p := policy{reads: 4, writes: 2}

	tests := []struct {
		method   string
		override int
		want     int
	}{
		{http.MethodGet, 0, 4},
		{http.MethodHead, 0, 4},
		{http.MethodPost, 0, 2},
		{http.MethodPatch, 0, 2},
		{http.MethodDelete, 0, 2},
		{http.MethodGet, 1, 1},
		{http.MethodPost, 5, 5},
		{http.MethodGet, -3, 4},
	}

	for _, tt := range tests {
		if got := p.attempts(tt.method, tt.override); got != tt.want {
			t.Errorf("attempts(%s, %d) = %d, want %d", tt.method, tt.override, got, tt.want)
		}
	}
}

func TestAttemptsFromContext(t *testing.T) {
	t.Parallel()

	ctx := WithMaxAttempts(WithSessionCookie(context.Background(), "abc"), 1)
	meta := outboundFrom(ctx)
	if meta.maxAttempts != 1 || meta.session != "abc" {
		t.Errorf("outbound = %+v, want both values kept", meta)
	}
}

func TestRetryable(t *testing.T) {
	t.Parallel()

	live := context.Background()
	canceled, cancel := context.WithCancel(context.Background())
	cancel()
	clientTimeout := &url.Error{Op: "Get", URL: "http://todo.test/todos", Err: timeoutError{}}

	tests := []struct {
		name string
		ctx  context.Context
		err  error
		want bool
	}{
		{"nil", live, nil, false},
		{"canceled", live, fmt.Errorf("wrapped: %w", context.Canceled), false},
		{"per-try deadline", live, context.DeadlineExceeded, true},
		{"client timeout", live, clientTimeout, true},
		{"network", live, errors.New("connection reset by peer"), true},
		{"network after caller canceled", canceled, errors.New("connection reset by peer"), false},
		{"client timeout after caller canceled", canceled, clientTimeout, false},
	}

	for _, tt := range tests {
		if got := retryable(tt.ctx, tt.err); got != tt.want {
			t.Errorf("retryable(%s) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

type timeoutError struct{}

func (timeoutError) Error() string   { return "Client.Timeout exceeded while awaiting headers" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }

func TestRetryableStatus(t *testing.T) {
	t.Parallel()

	for code, want := range map[int]bool{
		http.StatusOK:                  false,
		http.StatusNoContent:           false,
		http.StatusBadRequest:          false,
		http.StatusUnauthorized:        false,
		http.StatusForbidden:           false,
		http.StatusNotFound:            false,
		http.StatusConflict:            false,
		http.StatusTooManyRequests:     true,
		http.StatusInternalServerError: true,
		http.StatusBadGateway:          true,
		http.StatusServiceUnavailable:  true,
		http.StatusGatewayTimeout:      true,
	} {
		if got := retryableStatus(code); got != want {
			t.Errorf("retryableStatus(%d) = %v, want %v", code, got, want)
		}
	}
}
