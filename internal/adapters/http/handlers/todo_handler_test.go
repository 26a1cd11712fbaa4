package handlers_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/atsushi-h/go-todo/internal/adapters/http/dto"
	"github.com/atsushi-h/go-todo/internal/adapters/http/handlers"
	"github.com/atsushi-h/go-todo/internal/domain"
	"github.com/atsushi-h/go-todo/internal/domain/todo"
	"github.com/atsushi-h/go-todo/mocks"
)

func newTodoHandler(t *testing.T) (*handlers.TodoHandler, *mocks.MockTodoService) {
	t.Helper()
	svc := mocks.NewMockTodoService(t)
	return handlers.NewTodoHandler(resolverFor(t, svc)), svc
}

// --- resolution ---

func TestTodoHandler_NoSessionIsUnauthorized(t *testing.T) {
	t.Parallel()

	resolver := mocks.NewMockWorkspaceResolver(t)
	resolver.EXPECT().Todos(mock.Anything).Return(nil, domain.ErrUnauthorized)
	h := handlers.NewTodoHandler(resolver)

	rec := httptest.NewRecorder()
	h.ListTodos(rec, httptest.NewRequest(http.MethodGet, "/todos", http.NoBody))

	requireStatus(t, rec, http.StatusUnauthorized)
	if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %q, want problem+json", ct)
	}
}

// --- ListTodos ---

func TestListTodos_MarksSelected(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	done := sampleTodo(2)
	done.Completed = true
	svc.EXPECT().ListTodos(mock.Anything).Return([]todo.Todo{sampleTodo(1), done}, nil)
	svc.EXPECT().SelectedIDs().Return([]int64{2})

	rec := httptest.NewRecorder()
	h.ListTodos(rec, httptest.NewRequest(http.MethodGet, "/todos", http.NoBody))

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.TodoListResponse](t, rec)
	if resp.Count != 2 || resp.Done != 1 || resp.Pending != 1 {
		t.Errorf("Count/Done/Pending = %d/%d/%d, want 2/1/1", resp.Count, resp.Done, resp.Pending)
	}
	if resp.Todos[0].Selected || !resp.Todos[1].Selected {
		t.Errorf("Selected flags = %v/%v, want false/true", resp.Todos[0].Selected, resp.Todos[1].Selected)
	}
}

func TestListTodos_TransportError(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	svc.EXPECT().ListTodos(mock.Anything).
		Return(nil, fmt.Errorf("GET /todos: %w", domain.ErrTransport))

	rec := httptest.NewRecorder()
	h.ListTodos(rec, httptest.NewRequest(http.MethodGet, "/todos", http.NoBody))

	requireStatus(t, rec, http.StatusBadGateway)
	resp := decodeJSON[dto.ErrorResponse](t, rec)
	if !resp.Retryable {
		t.Error("Retryable = false, want true for a transport failure")
	}
}

// --- CreateTodo ---

func TestCreateTodo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       string
		setup      func(svc *mocks.MockTodoService)
		wantStatus int
	}{
		{
			name: "created",
			body: `{"title":"Buy milk","description":"2 liters"}`,
			setup: func(svc *mocks.MockTodoService) {
				created := sampleTodo(10)
				svc.EXPECT().CreateTodo(mock.Anything, "Buy milk", "2 liters").Return(&created, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "blank title never reaches the service",
			body:       `{"title":"   "}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid JSON",
			body:       `{"title":`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "session expired",
			body: `{"title":"Buy milk"}`,
			setup: func(svc *mocks.MockTodoService) {
				svc.EXPECT().CreateTodo(mock.Anything, "Buy milk", "").Return(nil, domain.ErrUnauthorized)
			},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, svc := newTodoHandler(t)
			if tt.setup != nil {
				tt.setup(svc)
			}

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/todos", strings.NewReader(tt.body))
			h.CreateTodo(rec, req)

			requireStatus(t, rec, tt.wantStatus)
		})
	}
}

// --- GetTodo ---

func TestGetTodo_Success(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	td := sampleTodo(42)
	svc.EXPECT().GetTodo(mock.Anything, int64(42)).Return(&td, nil)
	svc.EXPECT().SelectedIDs().Return([]int64{42})

	rec := httptest.NewRecorder()
	req := withID(httptest.NewRequest(http.MethodGet, "/todos/42", http.NoBody), "42")
	h.GetTodo(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.TodoResponse](t, rec)
	if resp.ID != 42 || !resp.Selected {
		t.Errorf("resp = %+v, want id 42 selected", resp)
	}
}

func TestGetTodo_BadID(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"abc", "0", "-3"} {
		t.Run(raw, func(t *testing.T) {
			t.Parallel()
			h, _ := newTodoHandler(t)

			rec := httptest.NewRecorder()
			req := withID(httptest.NewRequest(http.MethodGet, "/todos/"+raw, http.NoBody), raw)
			h.GetTodo(rec, req)

			requireStatus(t, rec, http.StatusBadRequest)
		})
	}
}

func TestGetTodo_NotFound(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	svc.EXPECT().GetTodo(mock.Anything, int64(99)).Return(nil, domain.ErrNotFound)

	rec := httptest.NewRecorder()
	req := withID(httptest.NewRequest(http.MethodGet, "/todos/99", http.NoBody), "99")
	h.GetTodo(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
}

// --- UpdateTodo ---

func TestUpdateTodo_SendsPatch(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	updated := sampleTodo(5)
	updated.Completed = true
	svc.EXPECT().UpdateTodo(mock.Anything, int64(5), mock.MatchedBy(func(p todo.Patch) bool {
		return p.Completed != nil && *p.Completed && p.Title == nil && p.Description == nil
	})).Return(&updated, nil)
	svc.EXPECT().SelectedIDs().Return(nil)

	rec := httptest.NewRecorder()
	req := withID(
		httptest.NewRequest(http.MethodPatch, "/todos/5", jsonBody(t, map[string]bool{"completed": true})),
		"5",
	)
	h.UpdateTodo(rec, req)

	requireStatus(t, rec, http.StatusOK)
	if resp := decodeJSON[dto.TodoResponse](t, rec); !resp.Completed {
		t.Error("Completed = false, want true")
	}
}

func TestUpdateTodo_EmptyPatch(t *testing.T) {
	t.Parallel()
	h, _ := newTodoHandler(t)

	rec := httptest.NewRecorder()
	req := withID(httptest.NewRequest(http.MethodPatch, "/todos/5", strings.NewReader(`{}`)), "5")
	h.UpdateTodo(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

// --- DeleteTodo ---

func TestDeleteTodo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "deleted", wantStatus: http.StatusNoContent},
		{name: "already gone", err: domain.ErrNotFound, wantStatus: http.StatusNotFound},
		{name: "breaker open", err: fmt.Errorf("DELETE /todos/3: %w", domain.ErrUnavailable), wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, svc := newTodoHandler(t)
			svc.EXPECT().DeleteTodo(mock.Anything, int64(3)).Return(tt.err)

			rec := httptest.NewRecorder()
			req := withID(httptest.NewRequest(http.MethodDelete, "/todos/3", http.NoBody), "3")
			h.DeleteTodo(rec, req)

			requireStatus(t, rec, tt.wantStatus)
		})
	}
}

// --- Batch ---

func TestBatchComplete_ExplicitIDs(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	svc.EXPECT().BatchComplete(mock.Anything, []int64{1, 2, 3}).Return(&todo.BatchResult{
		Requested: []int64{1, 2, 3},
		Succeeded: []int64{1, 3},
		Failed:    []todo.FailedItem{{ID: 2, Reason: "todo not found"}},
	}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/todos/batch-complete", strings.NewReader(`{"ids":[1,2,3]}`))
	h.BatchComplete(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.BatchResponse](t, rec)
	if !resp.Partial {
		t.Error("Partial = false, want true")
	}
	if len(resp.Failed) != 1 || resp.Failed[0].ID != 2 {
		t.Errorf("Failed = %+v, want id 2", resp.Failed)
	}
}

func TestBatch_FallsBackToSelection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		body  string
		route func(h *handlers.TodoHandler) http.HandlerFunc
		setup func(svc *mocks.MockTodoService)
	}{
		{
			name:  "complete without body",
			route: func(h *handlers.TodoHandler) http.HandlerFunc { return h.BatchComplete },
			setup: func(svc *mocks.MockTodoService) {
				svc.EXPECT().BatchCompleteSelected(mock.Anything).
					Return(&todo.BatchResult{Requested: []int64{4}, Succeeded: []int64{4}}, nil)
			},
		},
		{
			name:  "delete with empty ids",
			body:  `{"ids":[]}`,
			route: func(h *handlers.TodoHandler) http.HandlerFunc { return h.BatchDelete },
			setup: func(svc *mocks.MockTodoService) {
				svc.EXPECT().BatchDeleteSelected(mock.Anything).
					Return(&todo.BatchResult{Requested: []int64{4}, Succeeded: []int64{4}}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h, svc := newTodoHandler(t)
			tt.setup(svc)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/todos/batch", strings.NewReader(tt.body))
			tt.route(h)(rec, req)

			requireStatus(t, rec, http.StatusOK)
			if resp := decodeJSON[dto.BatchResponse](t, rec); resp.Partial {
				t.Error("Partial = true, want false")
			}
		})
	}
}

func TestBatchDelete_EmptySelectionIsValidationError(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	svc.EXPECT().BatchDeleteSelected(mock.Anything).Return(nil, &domain.ValidationError{
		Fields: map[string]string{"ids": domain.MsgRequired},
	})

	rec := httptest.NewRecorder()
	h.BatchDelete(rec, httptest.NewRequest(http.MethodPost, "/todos/batch-delete", http.NoBody))

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestBatchDelete_CallFailure(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	svc.EXPECT().BatchDelete(mock.Anything, []int64{8}).Return(nil, errors.New("boom"))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/todos/batch-delete", strings.NewReader(`{"ids":[8]}`))
	h.BatchDelete(rec, req)

	requireStatus(t, rec, http.StatusInternalServerError)
}

// --- Selection ---

func TestGetSelection(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	svc.EXPECT().SelectedIDs().Return([]int64{1, 4})

	rec := httptest.NewRecorder()
	h.GetSelection(rec, httptest.NewRequest(http.MethodGet, "/todos/selection", http.NoBody))

	requireStatus(t, rec, http.StatusOK)
	if resp := decodeJSON[dto.SelectionResponse](t, rec); resp.Count != 2 {
		t.Errorf("Count = %d, want 2", resp.Count)
	}
}

func TestToggleSelection(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	svc.EXPECT().ToggleSelection(int64(6)).Return(true)

	rec := httptest.NewRecorder()
	req := withID(httptest.NewRequest(http.MethodPost, "/todos/selection/6/toggle", http.NoBody), "6")
	h.ToggleSelection(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.ToggleSelectionResponse](t, rec)
	if resp.ID != 6 || !resp.Selected {
		t.Errorf("resp = %+v, want {6 true}", resp)
	}
}

func TestClearSelection(t *testing.T) {
	t.Parallel()
	h, svc := newTodoHandler(t)

	svc.EXPECT().ClearSelection().Return()

	rec := httptest.NewRecorder()
	h.ClearSelection(rec, httptest.NewRequest(http.MethodDelete, "/todos/selection", http.NoBody))

	requireStatus(t, rec, http.StatusNoContent)
}
