package middleware_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/atsushi-h/go-todo/internal/adapters/http/middleware"
	"github.com/atsushi-h/go-todo/internal/platform/logging"
)

// serveLogged runs req through RequestID, CorrelationID and Logging in a chi
// router with handler mounted at pattern, and returns the log output.
func serveLogged(t *testing.T, method, pattern string, req *http.Request, handler http.HandlerFunc) string {
	t.Helper()

	var buf bytes.Buffer
	r := chi.NewRouter()
	r.Use(middleware.RequestID(), middleware.CorrelationID(), middleware.Logging(testLogger(&buf)))
	r.Method(method, pattern, handler)
	r.ServeHTTP(httptest.NewRecorder(), req)
	return buf.String()
}

func TestLogging_CompletionFields(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodDelete, "/todos/7", http.NoBody)
	req.Header.Set("X-Request-ID", "req-log")
	req.Header.Set("X-Correlation-ID", "corr-log")

	out := serveLogged(t, http.MethodDelete, "/todos/{id}", req, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	for _, want := range []string{
		"request started",
		"request completed",
		"method=DELETE",
		"path=/todos/7",
		"route=/todos/{id}",
		"status=204",
		"duration=",
		"request_id=req-log",
		"correlation_id=corr-log",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestLogging_RedactsCredentialHeaders(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/todos", http.NoBody)
	req.AddCookie(&http.Cookie{Name: "go_todo_session", Value: "very-secret"})
	req.Header.Set("Authorization", "Bearer also-secret")
	req.Header.Set("Accept", "application/json")

	out := serveLogged(t, http.MethodGet, "/todos", req, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	for _, leaked := range []string{"very-secret", "also-secret"} {
		if strings.Contains(out, leaked) {
			t.Errorf("log output leaked %q:\n%s", leaked, out)
		}
	}
	if !strings.Contains(out, "headers.Cookie=[REDACTED]") {
		t.Errorf("log output missing redacted cookie:\n%s", out)
	}
	if !strings.Contains(out, "headers.Accept=application/json") {
		t.Errorf("log output missing plain header:\n%s", out)
	}
}

func TestLogging_HandlerLogsCarryIDs(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/todos", http.NoBody)
	req.Header.Set("X-Request-ID", "req-handler")

	out := serveLogged(t, http.MethodGet, "/todos", req, func(_ http.ResponseWriter, r *http.Request) {
		logging.FromContext(r.Context()).Info("listing todos")
	})

	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "listing todos") {
			if !strings.Contains(line, "request_id=req-handler") {
				t.Errorf("handler log line missing request id: %s", line)
			}
			return
		}
	}
	t.Errorf("handler log line not found:\n%s", out)
}
