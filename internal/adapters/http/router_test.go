package http_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	"github.com/atsushi-h/go-todo/internal/adapters/clients/acl"
	adapthttp "github.com/atsushi-h/go-todo/internal/adapters/http"
	"github.com/atsushi-h/go-todo/internal/adapters/http/dto"
	"github.com/atsushi-h/go-todo/internal/adapters/http/handlers"
	"github.com/atsushi-h/go-todo/internal/adapters/http/middleware"
	"github.com/atsushi-h/go-todo/internal/app/workspace"
	"github.com/atsushi-h/go-todo/internal/platform/config"
	"github.com/atsushi-h/go-todo/internal/platform/httpclient"
	"github.com/atsushi-h/go-todo/internal/platform/querycache"
	"github.com/atsushi-h/go-todo/mocks"
)

const testCookieName = "go_todo_session"

func newTestRouter(t *testing.T, middlewares ...func(http.Handler) http.Handler) (http.Handler, *mocks.MockWorkspaceResolver, *mocks.MockHealthRegistry) {
	t.Helper()
	resolver := mocks.NewMockWorkspaceResolver(t)
	registry := mocks.NewMockHealthRegistry(t)

	router := adapthttp.NewRouter(
		handlers.NewSessionHandler(resolver, "http://api.test/auth/google", testCookieName),
		handlers.NewTodoHandler(resolver),
		handlers.NewHealthHandler(registry),
		middleware.SessionGate(testCookieName, "/"),
		middlewares...,
	)
	return router, resolver, registry
}

func TestRouter_AllRoutesRegistered(t *testing.T) {
	t.Parallel()

	router, _, _ := newTestRouter(t)

	expectedRoutes := []string{
		"GET /",
		"GET /health/live",
		"GET /health/ready",
		"GET /me",
		"POST /logout",
		"DELETE /users/me",
		"GET /todos",
		"POST /todos",
		"GET /todos/{id}",
		"PATCH /todos/{id}",
		"DELETE /todos/{id}",
		"POST /todos/batch-complete",
		"POST /todos/batch-delete",
		"GET /todos/selection",
		"POST /todos/selection/{id}/toggle",
		"DELETE /todos/selection",
	}

	chiRouter, ok := router.(*chi.Mux)
	if !ok {
		t.Fatal("router is not *chi.Mux")
	}

	registered := make(map[string]bool)
	err := chi.Walk(chiRouter, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[method+" "+route] = true
		return nil
	})
	if err != nil {
		t.Fatalf("chi.Walk error: %v", err)
	}

	for _, key := range expectedRoutes {
		if !registered[key] {
			t.Errorf("route %s not registered", key)
		}
	}
}

func TestRouter_MiddlewareApplied(t *testing.T) {
	t.Parallel()

	called := false
	testMW := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			next.ServeHTTP(w, r)
		})
	}
	router, _, registry := newTestRouter(t, testMW)
	registry.EXPECT().CheckAll(mock.Anything).Return(map[string]error{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", http.NoBody))

	if !called {
		t.Error("middleware was not called")
	}
}

func TestRouter_GateRedirectsTodoRoutesOnly(t *testing.T) {
	t.Parallel()

	tests := []struct {
		method     string
		path       string
		wantStatus int
	}{
		{http.MethodGet, "/todos", http.StatusTemporaryRedirect},
		{http.MethodPost, "/todos/batch-delete", http.StatusTemporaryRedirect},
		{http.MethodGet, "/todos/selection", http.StatusTemporaryRedirect},
		{http.MethodGet, "/", http.StatusOK},
		{http.MethodGet, "/health/live", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			t.Parallel()
			router, _, _ := newTestRouter(t)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, http.NoBody))

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusTemporaryRedirect {
				if loc := rec.Header().Get("Location"); loc != "/" {
					t.Errorf("Location = %q, want %q", loc, "/")
				}
			}
		})
	}
}

func TestRouter_NotFoundReturns404(t *testing.T) {
	t.Parallel()

	router, _, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nonexistent", http.NoBody))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	router, _, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/logout", http.NoBody))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}

// fakeTodoService answers the handful of todo service endpoints the
// end-to-end test touches. Id 2 can never be deleted.
func fakeTodoService(t *testing.T) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if c, err := r.Cookie(testCookieName); err != nil || c.Value != "s1" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"unauthorized"}`))
			return
		}

		w.Header().Set("Content-Type", "application/json")
		switch r.Method + " " + r.URL.Path {
		case "GET /todos":
			_, _ = w.Write([]byte(`[
				{"id":1,"title":"one","completed":false,"user_id":7,"created_at":"2026-01-01T00:00:00Z","updated_at":"2026-01-01T00:00:00Z"},
				{"id":2,"title":"two","completed":true,"user_id":7,"created_at":"2026-01-01T00:00:00Z","updated_at":"2026-01-01T00:00:00Z"}
			]`))
		case "POST /todos/batch-delete":
			var body struct {
				IDs []int64 `json:"ids"`
			}
			_ = json.NewDecoder(r.Body).Decode(&body)
			resp := map[string]any{"succeeded": []int64{}, "failed": []map[string]any{}}
			var ok []int64
			var failed []map[string]any
			for _, id := range body.IDs {
				if id == 2 {
					failed = append(failed, map[string]any{"id": id, "error": "todo is locked"})
					continue
				}
				ok = append(ok, id)
			}
			if ok != nil {
				resp["succeeded"] = ok
			}
			if failed != nil {
				resp["failed"] = failed
			}
			_ = json.NewEncoder(w).Encode(resp)
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"not found"}`))
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRouter_EndToEnd_SelectionAndPartialBatchDelete(t *testing.T) {
	t.Parallel()

	upstream := fakeTodoService(t)
	logger := slog.New(slog.DiscardHandler)

	client := httpclient.New(&config.ClientConfig{
		BaseURL: upstream.URL,
		Timeout: 5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:         1,
			MutationMaxAttempts: 1,
			InitialInterval:     time.Millisecond,
			MaxInterval:         time.Millisecond,
			Multiplier:          1,
		},
		CircuitBreaker: config.CircuitBreakerConfig{MaxFailures: 10, Timeout: time.Second, HalfOpenLimit: 1},
	}, "todo-api", nil, logger, httpclient.WithCookieName(testCookieName))
	api := acl.NewTodoAPIClient(client, "/auth/google", logger)

	cache := querycache.New(&config.CacheConfig{
		StaleTime:      5 * time.Minute,
		GCTime:         10 * time.Minute,
		RefetchTimeout: 5 * time.Second,
	}, logger, querycache.WithJanitorInterval(0))
	t.Cleanup(func() { _ = cache.Close() })

	workspaces := workspace.New(api, cache, time.Hour, logger, workspace.WithSweepInterval(0))
	t.Cleanup(func() { _ = workspaces.Close() })

	router := adapthttp.NewRouter(
		handlers.NewSessionHandler(workspaces, api.LoginURL(), testCookieName),
		handlers.NewTodoHandler(workspaces),
		handlers.NewHealthHandler(mocks.NewMockHealthRegistry(t)),
		middleware.SessionGate(testCookieName, "/"),
		middleware.ForwardSession(testCookieName),
	)

	do := func(method, path, body string) *httptest.ResponseRecorder {
		t.Helper()
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		req.AddCookie(&http.Cookie{Name: testCookieName, Value: "s1"})
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	rec := do(http.MethodGet, "/todos", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /todos status = %d; body = %s", rec.Code, rec.Body.String())
	}
	var list dto.TodoListResponse
	if err := json.NewDecoder(rec.Body).Decode(&list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if list.Count != 2 || list.Done != 1 {
		t.Errorf("Count/Done = %d/%d, want 2/1", list.Count, list.Done)
	}

	for _, path := range []string{"/todos/selection/1/toggle", "/todos/selection/2/toggle"} {
		if rec := do(http.MethodPost, path, ""); rec.Code != http.StatusOK {
			t.Fatalf("POST %s status = %d; body = %s", path, rec.Code, rec.Body.String())
		}
	}

	rec = do(http.MethodPost, "/todos/batch-delete", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("batch-delete status = %d; body = %s", rec.Code, rec.Body.String())
	}
	var batch dto.BatchResponse
	if err := json.NewDecoder(rec.Body).Decode(&batch); err != nil {
		t.Fatalf("decode batch: %v", err)
	}
	if !batch.Partial || len(batch.Failed) != 1 || batch.Failed[0].ID != 2 {
		t.Errorf("batch = %+v, want partial with id 2 failed", batch)
	}

	rec = do(http.MethodGet, "/todos/selection", "")
	var sel dto.SelectionResponse
	if err := json.NewDecoder(rec.Body).Decode(&sel); err != nil {
		t.Fatalf("decode selection: %v", err)
	}
	if len(sel.IDs) != 1 || sel.IDs[0] != 2 {
		t.Errorf("selection after partial delete = %v, want [2]", sel.IDs)
	}
}
