// Package todo holds the Todo entity and the value types used to create,
// patch and batch-mutate todos.
package todo

import (
	"strings"
	"time"

	"github.com/atsushi-h/go-todo/internal/domain"
)

// Todo is the client-side projection of a server-owned todo. The server
// assigns ID and enforces ownership.
type Todo struct {
	ID          int64
	Title       string
	Description string
	Completed   bool
	UserID      int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Draft is a validated create request. Construct with NewDraft.
type Draft struct {
	Title       string
	Description string
}

// NewDraft trims title and description and rejects an empty title.
// The returned error is a *domain.ValidationError.
func NewDraft(title, description string) (Draft, error) {
	d := Draft{
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
	}
	if d.Title == "" {
		return Draft{}, &domain.ValidationError{
			Fields: map[string]string{"title": domain.MsgRequired},
		}
	}
	return d, nil
}

// Patch is a partial update. Nil fields are left unchanged on the server.
type Patch struct {
	Title       *string
	Description *string
	Completed   *bool
}

// CompletedPatch returns a patch that only sets the completed flag.
func CompletedPatch(completed bool) Patch {
	return Patch{Completed: &completed}
}

// EditPatch returns a patch that sets title and description, trimmed.
func EditPatch(title, description string) Patch {
	t := strings.TrimSpace(title)
	d := strings.TrimSpace(description)
	return Patch{Title: &t, Description: &d}
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Completed == nil
}

// Validate checks the patch before dispatch.
func (p Patch) Validate() error {
	fields := make(map[string]string)

	if p.IsEmpty() {
		fields["patch"] = "at least one field must be set"
	}
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		fields["title"] = "must not be empty"
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Apply returns a copy of t with the patch applied. Used only by tests and
// fakes; the coordinator never patches cached data.
func (p Patch) Apply(t Todo) Todo {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
	return t
}

// IDs returns the ids of todos in list order.
func IDs(todos []Todo) []int64 {
	ids := make([]int64, len(todos))
	for i := range todos {
		ids[i] = todos[i].ID
	}
	return ids
}

// Stats counts completed and pending todos.
func Stats(todos []Todo) (done, pending int) {
	for i := range todos {
		if todos[i].Completed {
			done++
		} else {
			pending++
		}
	}
	return done, pending
}
