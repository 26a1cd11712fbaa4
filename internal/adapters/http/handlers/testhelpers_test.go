package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	"github.com/atsushi-h/go-todo/internal/domain/todo"
	"github.com/atsushi-h/go-todo/mocks"
)

const testCookieName = "go_todo_session"

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

// withID sets the {id} route parameter the way chi's router would.
func withID(r *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func sampleTodo(id int64) todo.Todo {
	return todo.Todo{
		ID:          id,
		Title:       "Buy groceries",
		Description: "Milk, eggs, bread",
		UserID:      7,
		CreatedAt:   testTime,
		UpdatedAt:   testTime,
	}
}

// resolverFor hands out svc for any session. The expectation is optional
// so tests that fail before resolving stay valid.
func resolverFor(t *testing.T, svc *mocks.MockTodoService) *mocks.MockWorkspaceResolver {
	t.Helper()
	resolver := mocks.NewMockWorkspaceResolver(t)
	resolver.EXPECT().Todos(mock.Anything).Return(svc, nil).Maybe()
	return resolver
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		t.Fatalf("encoding request body: %v", err)
	}
	return &buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decoding response %q: %v", rec.Body.String(), err)
	}
	return v
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
