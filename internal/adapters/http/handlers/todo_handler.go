package handlers

import (
	"context"
	"net/http"
	"slices"

	"github.com/atsushi-h/go-todo/internal/adapters/http/dto"
	"github.com/atsushi-h/go-todo/internal/domain/todo"
	"github.com/atsushi-h/go-todo/internal/ports"
)

// TodoHandler handles the gated /todos routes. Every request is served by
// the todo service of the caller's session workspace.
type TodoHandler struct {
	workspaces ports.WorkspaceResolver
}

// NewTodoHandler creates a new TodoHandler resolving services through
// workspaces.
func NewTodoHandler(workspaces ports.WorkspaceResolver) *TodoHandler {
	return &TodoHandler{workspaces: workspaces}
}

// service resolves the session's todo service, writing the error response
// when there is none.
func (h *TodoHandler) service(w http.ResponseWriter, r *http.Request) (ports.TodoService, bool) {
	svc, err := h.workspaces.Todos(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return nil, false
	}
	return svc, true
}

// ListTodos handles GET /todos.
func (h *TodoHandler) ListTodos(w http.ResponseWriter, r *http.Request) {
	svc, ok := h.service(w, r)
	if !ok {
		return
	}

	todos, err := svc.ListTodos(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, dto.ToTodoListResponse(todos, svc.SelectedIDs()))
}

// CreateTodo handles POST /todos.
func (h *TodoHandler) CreateTodo(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTodoRequest
	if !bindValid(w, r, &req) {
		return
	}
	svc, ok := h.service(w, r)
	if !ok {
		return
	}

	created, err := svc.CreateTodo(r.Context(), req.Title, req.Description)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	respond(w, r, http.StatusCreated, dto.ToTodoResponse(created, false))
}

// GetTodo handles GET /todos/{id}.
func (h *TodoHandler) GetTodo(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	svc, ok := h.service(w, r)
	if !ok {
		return
	}

	t, err := svc.GetTodo(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, dto.ToTodoResponse(t, slices.Contains(svc.SelectedIDs(), id)))
}

// UpdateTodo handles PATCH /todos/{id}.
func (h *TodoHandler) UpdateTodo(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	var req dto.UpdateTodoRequest
	if !bindValid(w, r, &req) {
		return
	}
	svc, ok := h.service(w, r)
	if !ok {
		return
	}

	updated, err := svc.UpdateTodo(r.Context(), id, req.ToPatch())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, dto.ToTodoResponse(updated, slices.Contains(svc.SelectedIDs(), id)))
}

// DeleteTodo handles DELETE /todos/{id}.
func (h *TodoHandler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	svc, ok := h.service(w, r)
	if !ok {
		return
	}

	if err := svc.DeleteTodo(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// BatchComplete handles POST /todos/batch-complete.
func (h *TodoHandler) BatchComplete(w http.ResponseWriter, r *http.Request) {
	h.batch(w, r, ports.TodoService.BatchComplete, ports.TodoService.BatchCompleteSelected)
}

// BatchDelete handles POST /todos/batch-delete.
func (h *TodoHandler) BatchDelete(w http.ResponseWriter, r *http.Request) {
	h.batch(w, r, ports.TodoService.BatchDelete, ports.TodoService.BatchDeleteSelected)
}

type (
	batchFunc         func(ports.TodoService, context.Context, []int64) (*todo.BatchResult, error)
	batchSelectedFunc func(ports.TodoService, context.Context) (*todo.BatchResult, error)
)

// batch runs explicit on the body ids, or selected when the body names
// none. Partial failure is still a 200; the body says which ids failed.
func (h *TodoHandler) batch(w http.ResponseWriter, r *http.Request, explicit batchFunc, selected batchSelectedFunc) {
	var req dto.BatchRequest
	if !bind(w, r, &req, true) {
		return
	}
	svc, ok := h.service(w, r)
	if !ok {
		return
	}

	var (
		result *todo.BatchResult
		err    error
	)
	if req.UsesSelection() {
		result, err = selected(svc, r.Context())
	} else {
		result, err = explicit(svc, r.Context(), req.IDs)
	}
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	respond(w, r, http.StatusOK, dto.ToBatchResponse(result))
}

// GetSelection handles GET /todos/selection.
func (h *TodoHandler) GetSelection(w http.ResponseWriter, r *http.Request) {
	svc, ok := h.service(w, r)
	if !ok {
		return
	}
	respond(w, r, http.StatusOK, dto.ToSelectionResponse(svc.SelectedIDs()))
}

// ToggleSelection handles POST /todos/selection/{id}/toggle.
func (h *TodoHandler) ToggleSelection(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	svc, ok := h.service(w, r)
	if !ok {
		return
	}

	respond(w, r, http.StatusOK, dto.ToggleSelectionResponse{
		ID:       id,
		Selected: svc.ToggleSelection(id),
	})
}

// ClearSelection handles DELETE /todos/selection.
func (h *TodoHandler) ClearSelection(w http.ResponseWriter, r *http.Request) {
	svc, ok := h.service(w, r)
	if !ok {
		return
	}
	svc.ClearSelection()
	w.WriteHeader(http.StatusNoContent)
}
