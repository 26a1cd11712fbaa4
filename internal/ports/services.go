package ports

import (
	"context"

	"github.com/atsushi-h/go-todo/internal/domain/todo"
	"github.com/atsushi-h/go-todo/internal/domain/user"
)

// TodoService is the service port for todo reads, mutations and the
// selection of one session. Implemented by the application layer's
// Coordinator; called by presentation adapters.
//
// Mutations never patch cached data. On success they invalidate the cached
// list so the next read reflects server state. If ctx is done when the
// remote call returns, no cache or selection change is applied.
type TodoService interface {
	// ListTodos returns the cached list, fetching it when stale. Selected
	// ids that are no longer listed are dropped from the selection.
	ListTodos(ctx context.Context) ([]todo.Todo, error)

	// Refresh marks the cached list stale and reads it again.
	Refresh(ctx context.Context) ([]todo.Todo, error)

	// GetTodo returns a single todo.
	// Returns domain.ErrNotFound if the todo does not exist.
	GetTodo(ctx context.Context, id int64) (*todo.Todo, error)

	// CreateTodo trims title and description and creates a todo.
	// Returns domain.ErrValidation without a network call when the title is blank.
	CreateTodo(ctx context.Context, title, description string) (*todo.Todo, error)

	// UpdateTodo applies a partial update. Overlapping updates to the same
	// todo are not coalesced; the last to resolve wins.
	UpdateTodo(ctx context.Context, id int64, patch todo.Patch) (*todo.Todo, error)

	// ToggleCompleted flips the completed flag of t.
	ToggleCompleted(ctx context.Context, t todo.Todo) (*todo.Todo, error)

	// DeleteTodo deletes a todo and drops it from the selection.
	DeleteTodo(ctx context.Context, id int64) error

	// BatchComplete completes ids in one call. The selection is cleared only
	// when no item failed. A non-nil error means the call itself failed and
	// nothing changed locally.
	BatchComplete(ctx context.Context, ids []int64) (*todo.BatchResult, error)

	// BatchDelete deletes ids in one call. Deleted ids leave the selection;
	// failed ids stay selected.
	BatchDelete(ctx context.Context, ids []int64) (*todo.BatchResult, error)

	// BatchCompleteSelected runs BatchComplete over the current selection.
	BatchCompleteSelected(ctx context.Context) (*todo.BatchResult, error)

	// BatchDeleteSelected runs BatchDelete over the current selection.
	BatchDeleteSelected(ctx context.Context) (*todo.BatchResult, error)

	// ToggleSelection adds or removes id and reports whether it is now selected.
	ToggleSelection(id int64) bool

	// ClearSelection empties the selection.
	ClearSelection()

	// SelectedIDs returns the selected ids in ascending order.
	SelectedIDs() []int64

	// Changes signals whenever the cached list is updated or invalidated.
	// The channel is closed when ctx is done.
	Changes(ctx context.Context) <-chan struct{}
}

// SessionService is the service port for the authenticated session.
type SessionService interface {
	// CurrentUser returns the session user. The result is cached and the
	// probe is never retried. Returns domain.ErrUnauthorized without a session.
	CurrentUser(ctx context.Context) (*user.User, error)

	// Logout ends the session and drops everything cached for it.
	Logout(ctx context.Context) error

	// DeleteAccount deletes the account and drops everything cached for it.
	DeleteAccount(ctx context.Context) error

	// LoginURL returns the URL a browser should open to log in.
	LoginURL() string
}

// WorkspaceResolver maps the session cookie carried by ctx to that
// session's services. Used by the web frontend, which serves many sessions
// from one process.
type WorkspaceResolver interface {
	// Todos returns the todo service for the session.
	// Returns domain.ErrUnauthorized when ctx carries no session cookie.
	Todos(ctx context.Context) (TodoService, error)

	// Session returns the session service for the session.
	// Returns domain.ErrUnauthorized when ctx carries no session cookie.
	Session(ctx context.Context) (SessionService, error)

	// Release drops the session's workspace, for example after logout.
	Release(ctx context.Context)
}
