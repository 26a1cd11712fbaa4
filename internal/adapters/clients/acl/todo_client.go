package acl

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/atsushi-h/go-todo/internal/adapters/clients/acl/todo"
	"github.com/atsushi-h/go-todo/internal/adapters/clients/acl/user"
	domtodo "github.com/atsushi-h/go-todo/internal/domain/todo"
	domuser "github.com/atsushi-h/go-todo/internal/domain/user"
	"github.com/atsushi-h/go-todo/internal/platform/httpclient"
	"github.com/atsushi-h/go-todo/internal/platform/logging"
	"github.com/atsushi-h/go-todo/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.TodoAPI       = (*TodoAPIClient)(nil)
	_ ports.HealthChecker = (*TodoAPIClient)(nil)
)

// TodoAPIClient is the outbound adapter for the remote todo service. It
// implements [ports.TodoAPI], one method per endpoint.
//
// Requests authenticate with the session cookie that
// [httpclient.WithSessionCookie] put on the context. HTTP errors are mapped
// to domain errors by [TranslateHTTPError]; a 401 surfaces as
// domain.ErrUnauthorized after exactly one attempt.
//
// The underlying [httpclient.Client] provides circuit breaking, rate
// limiting, retry with capped backoff and OpenTelemetry tracing.
type TodoAPIClient struct {
	api       caller
	client    *httpclient.Client
	loginPath string
	logger    *slog.Logger
}

// NewTodoAPIClient creates a TodoAPIClient that sends requests through the
// given [httpclient.Client]. loginPath is appended to the client's base URL
// to form the OAuth entry point, e.g. "/auth/google".
func NewTodoAPIClient(client *httpclient.Client, loginPath string, logger *slog.Logger) *TodoAPIClient {
	return &TodoAPIClient{
		api:       newCaller(client, logger),
		client:    client,
		loginPath: loginPath,
		logger:    logging.OrDiscard(logger),
	}
}

// --- Session operations ---

// CurrentUser fetches GET /me. The probe runs once: an expired session is
// answered with 401 and nothing else is worth retrying before the user sees
// the login screen.
func (c *TodoAPIClient) CurrentUser(ctx context.Context) (*domuser.User, error) {
	var dto user.UserDTO
	if err := c.api.call(httpclient.WithMaxAttempts(ctx, 1), http.MethodGet, "/me", nil, &dto); err != nil {
		return nil, err
	}
	u := user.ToDomainUser(&dto)
	return &u, nil
}

// Logout sends POST /logout. The response body, if any, is ignored.
func (c *TodoAPIClient) Logout(ctx context.Context) error {
	return c.api.call(ctx, http.MethodPost, "/logout", nil, nil)
}

// DeleteAccount sends DELETE /users/me.
func (c *TodoAPIClient) DeleteAccount(ctx context.Context) error {
	return c.api.call(ctx, http.MethodDelete, "/users/me", nil, nil)
}

// LoginURL returns the absolute OAuth entry point. No request is made.
func (c *TodoAPIClient) LoginURL() string {
	return c.client.BaseURL() + c.loginPath
}

// --- Todo operations ---

// ListTodos fetches GET /todos.
func (c *TodoAPIClient) ListTodos(ctx context.Context) ([]domtodo.Todo, error) {
	var dtos []todo.TodoDTO
	if err := c.api.call(ctx, http.MethodGet, "/todos", nil, &dtos); err != nil {
		return nil, err
	}
	return todo.ToDomainTodoList(dtos), nil
}

// GetTodo fetches GET /todos/{id}.
func (c *TodoAPIClient) GetTodo(ctx context.Context, id int64) (*domtodo.Todo, error) {
	var dto todo.TodoDTO
	if err := c.api.call(ctx, http.MethodGet, todoPath(id), nil, &dto); err != nil {
		return nil, err
	}
	t := todo.ToDomainTodo(&dto)
	return &t, nil
}

// CreateTodo sends POST /todos and returns the created todo.
func (c *TodoAPIClient) CreateTodo(ctx context.Context, draft domtodo.Draft) (*domtodo.Todo, error) {
	var dto todo.TodoDTO
	if err := c.api.call(ctx, http.MethodPost, "/todos", todo.ToCreateTodoRequest(draft), &dto); err != nil {
		return nil, err
	}
	t := todo.ToDomainTodo(&dto)
	return &t, nil
}

// UpdateTodo sends PUT /todos/{id} with only the patched fields.
func (c *TodoAPIClient) UpdateTodo(ctx context.Context, id int64, patch domtodo.Patch) (*domtodo.Todo, error) {
	var dto todo.TodoDTO
	if err := c.api.call(ctx, http.MethodPut, todoPath(id), todo.ToUpdateTodoRequest(patch), &dto); err != nil {
		return nil, err
	}
	t := todo.ToDomainTodo(&dto)
	return &t, nil
}

// DeleteTodo sends DELETE /todos/{id}.
func (c *TodoAPIClient) DeleteTodo(ctx context.Context, id int64) error {
	return c.api.call(ctx, http.MethodDelete, todoPath(id), nil, nil)
}

// BatchCompleteTodos sends POST /todos/batch-complete. The whole batch is one
// request and is retried as a whole.
func (c *TodoAPIClient) BatchCompleteTodos(ctx context.Context, req domtodo.BatchRequest) (*domtodo.BatchResult, error) {
	var dto todo.BatchCompleteResponseDTO
	if err := c.api.call(ctx, http.MethodPost, "/todos/batch-complete", todo.ToBatchRequest(req), &dto); err != nil {
		return nil, err
	}
	result := todo.ToDomainBatchComplete(req, &dto)
	c.logPartial(ctx, "batch-complete", &result)
	return &result, nil
}

// BatchDeleteTodos sends POST /todos/batch-delete.
func (c *TodoAPIClient) BatchDeleteTodos(ctx context.Context, req domtodo.BatchRequest) (*domtodo.BatchResult, error) {
	var dto todo.BatchDeleteResponseDTO
	if err := c.api.call(ctx, http.MethodPost, "/todos/batch-delete", todo.ToBatchRequest(req), &dto); err != nil {
		return nil, err
	}
	result := todo.ToDomainBatchDelete(req, &dto)
	c.logPartial(ctx, "batch-delete", &result)
	return &result, nil
}

// --- Health ---

// Name returns the identifier used when this component is registered with a
// [ports.HealthRegistry].
func (c *TodoAPIClient) Name() string {
	return "todo-api"
}

// HealthCheck reports the remote service's availability from the circuit
// breaker state. No network call is made.
func (c *TodoAPIClient) HealthCheck(ctx context.Context) error {
	return c.client.HealthCheck(ctx)
}

func (c *TodoAPIClient) logPartial(ctx context.Context, op string, result *domtodo.BatchResult) {
	if !result.HasFailures() {
		return
	}
	c.logger.WarnContext(ctx, "batch partially failed",
		slog.String("operation", op),
		slog.Int("requested", len(result.Requested)),
		slog.Any("failed_ids", result.FailedIDs()),
	)
}

func todoPath(id int64) string {
	return fmt.Sprintf("/todos/%d", id)
}
