package ports

import (
	"context"

	"github.com/atsushi-h/go-todo/internal/domain/todo"
	"github.com/atsushi-h/go-todo/internal/domain/user"
)

// TodoAPI is the client port for the remote todo service, one method per
// endpoint. Implemented by the ACL adapter; called by the application layer.
//
// Every call authenticates with the session cookie carried by ctx. A missing
// or expired session yields domain.ErrUnauthorized, which is never retried.
type TodoAPI interface {
	// CurrentUser returns the user behind the session (GET /me).
	CurrentUser(ctx context.Context) (*user.User, error)

	// Logout ends the session on the server (POST /logout).
	Logout(ctx context.Context) error

	// DeleteAccount deletes the user and all their todos (DELETE /users/me).
	DeleteAccount(ctx context.Context) error

	// LoginURL is the browser navigation target that starts OAuth login.
	// No request is made.
	LoginURL() string

	// ListTodos returns the session user's todos (GET /todos).
	ListTodos(ctx context.Context) ([]todo.Todo, error)

	// GetTodo returns a single todo (GET /todos/{id}).
	// Returns domain.ErrNotFound if the todo does not exist.
	GetTodo(ctx context.Context, id int64) (*todo.Todo, error)

	// CreateTodo creates a todo from a validated draft (POST /todos).
	CreateTodo(ctx context.Context, draft todo.Draft) (*todo.Todo, error)

	// UpdateTodo applies a partial update (PUT /todos/{id}).
	// Returns domain.ErrNotFound if the todo does not exist.
	UpdateTodo(ctx context.Context, id int64, patch todo.Patch) (*todo.Todo, error)

	// DeleteTodo deletes a todo (DELETE /todos/{id}).
	// Returns domain.ErrNotFound if the todo does not exist.
	DeleteTodo(ctx context.Context, id int64) error

	// BatchCompleteTodos marks every requested todo completed in one call
	// (POST /todos/batch-complete). Items the server could not complete are
	// reported in the result, not as an error.
	BatchCompleteTodos(ctx context.Context, req todo.BatchRequest) (*todo.BatchResult, error)

	// BatchDeleteTodos deletes every requested todo in one call
	// (POST /todos/batch-delete). Partial failure is reported the same way.
	BatchDeleteTodos(ctx context.Context, req todo.BatchRequest) (*todo.BatchResult, error)
}
