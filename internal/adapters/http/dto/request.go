package dto

import (
	"strings"

	"github.com/atsushi-h/go-todo/internal/domain"
	"github.com/atsushi-h/go-todo/internal/domain/todo"
)

const msgMustNotEmpty = "must not be empty"

// CreateTodoRequest represents the JSON body for creating a todo.
type CreateTodoRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Validate rejects a blank title. Returns a *domain.ValidationError.
func (r *CreateTodoRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return &domain.ValidationError{
			Fields: map[string]string{"title": domain.MsgRequired},
		}
	}
	return nil
}

// UpdateTodoRequest represents the JSON body for PATCH /todos/{id}.
// Nil fields are left unchanged.
type UpdateTodoRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Completed   *bool   `json:"completed,omitempty"`
}

// Validate checks that at least one field is set and a provided title is
// not blank. Returns a *domain.ValidationError.
func (r *UpdateTodoRequest) Validate() error {
	fields := make(map[string]string)

	if r.Title == nil && r.Description == nil && r.Completed == nil {
		fields["body"] = "at least one of title, description, completed is required"
	}
	if r.Title != nil && strings.TrimSpace(*r.Title) == "" {
		fields["title"] = msgMustNotEmpty
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToPatch converts the request to a domain patch, trimming text fields.
func (r *UpdateTodoRequest) ToPatch() todo.Patch {
	var p todo.Patch
	if r.Title != nil {
		t := strings.TrimSpace(*r.Title)
		p.Title = &t
	}
	if r.Description != nil {
		d := strings.TrimSpace(*r.Description)
		p.Description = &d
	}
	if r.Completed != nil {
		c := *r.Completed
		p.Completed = &c
	}
	return p
}

// BatchRequest represents the optional JSON body of the batch endpoints.
// An empty or missing ids list means "the session's current selection".
// Ids are deduplicated and bounded by the todo service port.
type BatchRequest struct {
	IDs []int64 `json:"ids"`
}

// UsesSelection reports whether the request falls back to the selection.
func (r *BatchRequest) UsesSelection() bool {
	return len(r.IDs) == 0
}
