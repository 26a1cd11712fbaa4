// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/atsushi-h/go-todo/internal/domain/todo"
	"github.com/atsushi-h/go-todo/internal/domain/user"
)

// TodoResponse represents a single todo in HTTP responses. Selected reports
// whether the todo is in the session's selection.
type TodoResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
	Selected    bool   `json:"selected"`
	UserID      int64  `json:"user_id"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// ToTodoResponse converts a domain Todo to an HTTP response DTO.
func ToTodoResponse(t *todo.Todo, selected bool) TodoResponse {
	return TodoResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		Selected:    selected,
		UserID:      t.UserID,
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   t.UpdatedAt.Format(time.RFC3339),
	}
}

// TodoListResponse represents the list view: the todos in server order,
// the done/pending stats and the selected ids.
type TodoListResponse struct {
	Todos    []TodoResponse `json:"todos"`
	Count    int            `json:"count"`
	Done     int            `json:"done"`
	Pending  int            `json:"pending"`
	Selected []int64        `json:"selected"`
}

// ToTodoListResponse converts todos and the current selection to the list
// view. A nil selection renders as an empty array.
func ToTodoListResponse(todos []todo.Todo, selected []int64) TodoListResponse {
	sel := make(map[int64]struct{}, len(selected))
	for _, id := range selected {
		sel[id] = struct{}{}
	}

	items := make([]TodoResponse, len(todos))
	for i := range todos {
		_, ok := sel[todos[i].ID]
		items[i] = ToTodoResponse(&todos[i], ok)
	}

	done, pending := todo.Stats(todos)
	if selected == nil {
		selected = []int64{}
	}
	return TodoListResponse{
		Todos:    items,
		Count:    len(items),
		Done:     done,
		Pending:  pending,
		Selected: selected,
	}
}

// BatchFailure is one id a batch operation could not process.
type BatchFailure struct {
	ID    int64  `json:"id"`
	Error string `json:"error"`
}

// BatchResponse represents the outcome of a batch operation. Partial is
// true when at least one id failed; the response is still a 200.
type BatchResponse struct {
	Requested []int64        `json:"requested"`
	Succeeded []int64        `json:"succeeded"`
	Failed    []BatchFailure `json:"failed"`
	Completed []TodoResponse `json:"completed,omitempty"`
	Partial   bool           `json:"partial"`
}

// ToBatchResponse converts a domain BatchResult to an HTTP response DTO.
func ToBatchResponse(r *todo.BatchResult) BatchResponse {
	failed := make([]BatchFailure, len(r.Failed))
	for i, f := range r.Failed {
		failed[i] = BatchFailure{ID: f.ID, Error: f.Reason}
	}

	var completed []TodoResponse
	if len(r.Completed) > 0 {
		completed = make([]TodoResponse, len(r.Completed))
		for i := range r.Completed {
			completed[i] = ToTodoResponse(&r.Completed[i], false)
		}
	}

	return BatchResponse{
		Requested: nonNil(r.Requested),
		Succeeded: nonNil(r.Succeeded),
		Failed:    failed,
		Completed: completed,
		Partial:   r.HasFailures(),
	}
}

// SelectionResponse represents the session's selection.
type SelectionResponse struct {
	IDs   []int64 `json:"ids"`
	Count int     `json:"count"`
}

// ToSelectionResponse converts selected ids to an HTTP response DTO.
func ToSelectionResponse(ids []int64) SelectionResponse {
	ids = nonNil(ids)
	return SelectionResponse{IDs: ids, Count: len(ids)}
}

// ToggleSelectionResponse reports the selection state of one id after a
// toggle.
type ToggleSelectionResponse struct {
	ID       int64 `json:"id"`
	Selected bool  `json:"selected"`
}

// UserResponse represents the session user.
type UserResponse struct {
	ID          int64  `json:"id"`
	Email       string `json:"email"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	AvatarURL   string `json:"avatar_url"`
	Provider    string `json:"provider"`
}

// ToUserResponse converts a domain User to an HTTP response DTO.
func ToUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		Name:        u.Name,
		DisplayName: u.DisplayName(),
		AvatarURL:   u.AvatarURL,
		Provider:    u.Provider,
	}
}

// LandingResponse is served at GET /. Authenticated reflects cookie
// presence only.
type LandingResponse struct {
	LoginURL      string `json:"login_url"`
	Authenticated bool   `json:"authenticated"`
}

// MessageResponse carries a short confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}

func nonNil(ids []int64) []int64 {
	if ids == nil {
		return []int64{}
	}
	return ids
}

// HealthResponse represents the liveness and readiness bodies. Checks maps
// each registered component to "ok" or its failure message.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}
