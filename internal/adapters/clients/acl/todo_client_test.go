package acl

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/atsushi-h/go-todo/internal/domain"
	"github.com/atsushi-h/go-todo/internal/domain/todo"
	"github.com/atsushi-h/go-todo/internal/platform/config"
	"github.com/atsushi-h/go-todo/internal/platform/httpclient"
)

const testCookie = "c2Vzc2lvbi12YWx1ZQ"

// newTestClient creates an httpclient.Client pointing at the given test server
// with retry configured for fast test execution.
func newTestClient(t *testing.T, baseURL string, attempts int) *httpclient.Client {
	t.Helper()

	cfg := &config.ClientConfig{
		BaseURL: baseURL,
		Timeout: 5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:         attempts,
			MutationMaxAttempts: attempts,
			InitialInterval:     time.Millisecond,
			MaxInterval:         time.Millisecond,
			Multiplier:          1,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   50,
			Timeout:       30 * time.Second,
			HalfOpenLimit: 1,
		},
	}

	return httpclient.New(cfg, "todo-api-test", nil, slog.New(slog.DiscardHandler))
}

func newAPIClient(t *testing.T, baseURL string, attempts int) *TodoAPIClient {
	t.Helper()
	return NewTodoAPIClient(newTestClient(t, baseURL, attempts), "/auth/google", slog.New(slog.DiscardHandler))
}

func sessionCtx() context.Context {
	return httpclient.WithSessionCookie(context.Background(), testCookie)
}

// writeJSON encodes v as JSON to the response writer, failing the test on error.
func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Errorf("failed to encode response: %v", err)
	}
}

func readBody(t *testing.T, r *http.Request) map[string]any {
	t.Helper()

	raw, err := io.ReadAll(r.Body)
	if err != nil {
		t.Errorf("reading request body: %v", err)
		return nil
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Errorf("request body %q is not JSON: %v", raw, err)
	}
	return m
}

func mustBatch(t *testing.T, ids ...int64) todo.BatchRequest {
	t.Helper()

	req, err := todo.NewBatchRequest(ids)
	if err != nil {
		t.Fatalf("NewBatchRequest(%v) error = %v", ids, err)
	}
	return req
}

// --- Session tests ---

func TestTodoAPIClient_CurrentUser(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/me" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		c, err := r.Cookie(config.DefaultCookieName)
		if err != nil || c.Value != testCookie {
			t.Errorf("session cookie = %v, %v; want %q", c, err, testCookie)
		}
		writeJSON(t, w, http.StatusOK, map[string]any{
			"id": 9, "email": "ada@example.com", "name": "Ada",
			"avatar_url": "https://example.com/a.png", "provider": "google",
		})
	}))
	defer ts.Close()

	u, err := newAPIClient(t, ts.URL, 3).CurrentUser(sessionCtx())
	if err != nil {
		t.Fatalf("CurrentUser() error = %v", err)
	}
	if u.ID != 9 || u.Email != "ada@example.com" || u.Provider != "google" {
		t.Errorf("CurrentUser() = %+v", u)
	}
}

func TestTodoAPIClient_UnauthorizedIsNeverRetried(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		writeJSON(t, w, http.StatusUnauthorized, map[string]string{"message": "Unauthorized"})
	}))
	defer ts.Close()

	client := newAPIClient(t, ts.URL, 4)

	tests := []struct {
		name string
		call func(ctx context.Context) error
	}{
		{name: "current user", call: func(ctx context.Context) error {
			_, err := client.CurrentUser(ctx)
			return err
		}},
		{name: "list", call: func(ctx context.Context) error {
			_, err := client.ListTodos(ctx)
			return err
		}},
		{name: "batch complete", call: func(ctx context.Context) error {
			_, err := client.BatchCompleteTodos(ctx, mustBatch(t, 1, 2))
			return err
		}},
	}

	// Sequential: the subtests share one call counter.
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := calls.Load()

			err := tt.call(context.Background())

			if !errors.Is(err, domain.ErrUnauthorized) {
				t.Errorf("error = %v, want ErrUnauthorized", err)
			}
			if got := calls.Load() - before; got != 1 {
				t.Errorf("requests = %d, want exactly 1", got)
			}
		})
	}
}

func TestTodoAPIClient_LogoutIgnoresBody(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/logout" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		writeJSON(t, w, http.StatusOK, map[string]string{"message": "Logged out"})
	}))
	defer ts.Close()

	if err := newAPIClient(t, ts.URL, 1).Logout(sessionCtx()); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}
}

func TestTodoAPIClient_DeleteAccount(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/users/me" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer ts.Close()

	if err := newAPIClient(t, ts.URL, 1).DeleteAccount(sessionCtx()); err != nil {
		t.Fatalf("DeleteAccount() error = %v", err)
	}
}

func TestTodoAPIClient_LoginURL(t *testing.T) {
	t.Parallel()

	client := newAPIClient(t, "https://api.example.com", 1)

	if got, want := client.LoginURL(), "https://api.example.com/auth/google"; got != want {
		t.Errorf("LoginURL() = %q, want %q", got, want)
	}
}

// --- Todo CRUD tests ---

func TestTodoAPIClient_ListTodos(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/todos" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		writeJSON(t, w, http.StatusOK, []map[string]any{
			{
				"id": 1, "title": "Buy milk", "description": "2% milk",
				"completed": false, "user_id": 9,
				"created_at": "2026-01-01T00:00:00Z",
				"updated_at": "2026-01-01T00:00:00Z",
			},
			{"id": 2, "title": "Call mom", "description": nil, "completed": true, "user_id": 9},
		})
	}))
	defer ts.Close()

	todos, err := newAPIClient(t, ts.URL, 1).ListTodos(sessionCtx())
	if err != nil {
		t.Fatalf("ListTodos() error = %v", err)
	}
	if len(todos) != 2 {
		t.Fatalf("len(todos) = %d, want 2", len(todos))
	}
	if todos[0].Title != "Buy milk" || todos[0].Completed {
		t.Errorf("todos[0] = %+v", todos[0])
	}
	if todos[1].Description != "" || !todos[1].Completed {
		t.Errorf("todos[1] = %+v", todos[1])
	}
}

func TestTodoAPIClient_GetTodo_NotFound(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/todos/42" {
			t.Errorf("path = %s, want /todos/42", r.URL.Path)
		}
		writeJSON(t, w, http.StatusNotFound, map[string]string{"message": "Todo not found"})
	}))
	defer ts.Close()

	_, err := newAPIClient(t, ts.URL, 1).GetTodo(sessionCtx(), 42)

	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("GetTodo() error = %v, want ErrNotFound", err)
	}
}

func TestTodoAPIClient_CreateTodo(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/todos" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q, want application/json", ct)
		}
		body := readBody(t, r)
		if body["title"] != "Write report" || body["description"] != "Q3" {
			t.Errorf("body = %v", body)
		}
		writeJSON(t, w, http.StatusCreated, map[string]any{
			"id": 10, "title": "Write report", "description": "Q3", "completed": false, "user_id": 9,
		})
	}))
	defer ts.Close()

	draft, err := todo.NewDraft("Write report", "Q3")
	if err != nil {
		t.Fatalf("NewDraft() error = %v", err)
	}

	got, err := newAPIClient(t, ts.URL, 1).CreateTodo(sessionCtx(), draft)
	if err != nil {
		t.Fatalf("CreateTodo() error = %v", err)
	}
	if got.ID != 10 {
		t.Errorf("ID = %d, want 10", got.ID)
	}
}

func TestTodoAPIClient_UpdateTodo_SendsOnlyPatchedFields(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/todos/5" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		body := readBody(t, r)
		if len(body) != 1 || body["completed"] != true {
			t.Errorf("body = %v, want only completed=true", body)
		}
		writeJSON(t, w, http.StatusOK, map[string]any{"id": 5, "title": "x", "completed": true})
	}))
	defer ts.Close()

	got, err := newAPIClient(t, ts.URL, 1).UpdateTodo(sessionCtx(), 5, todo.CompletedPatch(true))
	if err != nil {
		t.Fatalf("UpdateTodo() error = %v", err)
	}
	if !got.Completed {
		t.Error("Completed = false, want true")
	}
}

func TestTodoAPIClient_DeleteTodo(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/todos/3" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer ts.Close()

	if err := newAPIClient(t, ts.URL, 1).DeleteTodo(sessionCtx(), 3); err != nil {
		t.Fatalf("DeleteTodo() error = %v", err)
	}
}

// --- Batch tests ---

func TestTodoAPIClient_BatchCompleteTodos_PartialFailure(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/todos/batch-complete" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		body := readBody(t, r)
		if ids, _ := body["ids"].([]any); len(ids) != 3 {
			t.Errorf("ids = %v, want 3 ids", body["ids"])
		}
		writeJSON(t, w, http.StatusOK, map[string]any{
			"succeeded": []map[string]any{
				{"id": 1, "title": "a", "completed": true},
				{"id": 3, "title": "c", "completed": true},
			},
			"failed": []map[string]any{{"id": 2, "error": "Todo not found"}},
		})
	}))
	defer ts.Close()

	got, err := newAPIClient(t, ts.URL, 1).BatchCompleteTodos(sessionCtx(), mustBatch(t, 1, 2, 3))
	if err != nil {
		t.Fatalf("BatchCompleteTodos() error = %v", err)
	}
	if !got.HasFailures() || got.FailedIDs()[0] != 2 {
		t.Errorf("Failed = %+v, want id 2", got.Failed)
	}
	if len(got.Succeeded) != 2 {
		t.Errorf("Succeeded = %v, want [1 3]", got.Succeeded)
	}
}

func TestTodoAPIClient_BatchDeleteTodos(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/todos/batch-delete" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		writeJSON(t, w, http.StatusOK, map[string]any{"succeeded": []int64{4, 5}, "failed": []any{}})
	}))
	defer ts.Close()

	got, err := newAPIClient(t, ts.URL, 1).BatchDeleteTodos(sessionCtx(), mustBatch(t, 4, 5))
	if err != nil {
		t.Fatalf("BatchDeleteTodos() error = %v", err)
	}
	if got.HasFailures() || len(got.Succeeded) != 2 {
		t.Errorf("result = %+v, want both succeeded", got)
	}
}

// --- Failure taxonomy ---

func TestTodoAPIClient_ServerErrorRetriedThenUnavailable(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		writeJSON(t, w, http.StatusServiceUnavailable, map[string]string{"message": "down"})
	}))
	defer ts.Close()

	_, err := newAPIClient(t, ts.URL, 3).ListTodos(sessionCtx())

	if !errors.Is(err, domain.ErrUnavailable) {
		t.Errorf("error = %v, want ErrUnavailable", err)
	}
	if got := calls.Load(); got != 3 {
		t.Errorf("requests = %d, want 3", got)
	}
}

func TestTodoAPIClient_TransportError(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := ts.URL
	ts.Close()

	_, err := newAPIClient(t, url, 2).ListTodos(sessionCtx())

	if !errors.Is(err, domain.ErrTransport) {
		t.Errorf("error = %v, want ErrTransport", err)
	}
	if domain.KindOf(err) != domain.KindTransport {
		t.Errorf("KindOf() = %q, want %q", domain.KindOf(err), domain.KindTransport)
	}
}

func TestTodoAPIClient_CanceledContextPassesThrough(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer ts.Close()

	ctx, cancel := context.WithCancel(sessionCtx())
	cancel()

	err := newAPIClient(t, ts.URL, 2).DeleteTodo(ctx, 1)

	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
	if errors.Is(err, domain.ErrTransport) {
		t.Error("canceled call reported as transport failure")
	}
}

func TestTodoAPIClient_HealthCheck(t *testing.T) {
	t.Parallel()

	client := newAPIClient(t, "http://127.0.0.1:1", 1)

	if client.Name() != "todo-api" {
		t.Errorf("Name() = %q, want todo-api", client.Name())
	}
	if err := client.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() error = %v, want nil for a closed breaker", err)
	}
}
