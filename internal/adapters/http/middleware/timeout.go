package middleware

import (
	"bytes"
	"context"
	"maps"
	"net/http"
	"sync"
	"time"

	"github.com/atsushi-h/go-todo/internal/adapters/http/dto"
)

// Timeout bounds each request. The deadline travels in the request context
// to the todo service call. When it passes first the client gets a 504
// problem response and whatever the handler writes afterwards is dropped.
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			resp := &heldResponse{header: make(http.Header)}
			done := make(chan struct{})
			go func() {
				defer close(done)
				next.ServeHTTP(resp, r.WithContext(ctx))
			}()

			select {
			case <-done:
				if ctx.Err() != nil && resp.empty() {
					dto.WriteErrorResponse(w, r, ctx.Err())
					return
				}
				resp.release(w)
			case <-ctx.Done():
				resp.abandon()
				dto.WriteErrorResponse(w, r, ctx.Err())
			}
		})
	}
}

// heldResponse holds a handler's response until Timeout decides whether to
// send it.
type heldResponse struct {
	mu        sync.Mutex
	header    http.Header
	body      bytes.Buffer
	status    int
	abandoned bool
}

func (h *heldResponse) Header() http.Header {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.header
}

func (h *heldResponse) WriteHeader(code int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.status == 0 {
		h.status = code
	}
}

func (h *heldResponse) Write(b []byte) (int, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.status == 0 {
		h.status = http.StatusOK
	}
	if h.abandoned {
		return len(b), nil
	}
	return h.body.Write(b)
}

func (h *heldResponse) empty() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.status == 0
}

func (h *heldResponse) abandon() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.abandoned = true
	h.body.Reset()
}

func (h *heldResponse) release(w http.ResponseWriter) {
	h.mu.Lock()
	defer h.mu.Unlock()

	maps.Copy(w.Header(), h.header)
	if h.status != 0 {
		w.WriteHeader(h.status)
	}
	_, _ = h.body.WriteTo(w)
}
