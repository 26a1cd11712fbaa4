package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/atsushi-h/go-todo/internal/app/selection"
	"github.com/atsushi-h/go-todo/internal/domain"
	"github.com/atsushi-h/go-todo/internal/domain/todo"
	"github.com/atsushi-h/go-todo/internal/platform/logging"
	"github.com/atsushi-h/go-todo/internal/platform/querycache"
	"github.com/atsushi-h/go-todo/internal/platform/telemetry"
	"github.com/atsushi-h/go-todo/internal/ports"
)

// Compile-time check that Coordinator implements ports.TodoService.
var _ ports.TodoService = (*Coordinator)(nil)

// Coordinator implements ports.TodoService for one session. It owns the
// session's Selection, reads todos through the query cache and reconciles
// single and batch mutations with it.
//
// After a mutation the server answers, the Coordinator invalidates the list
// exactly once. Failed batch items are data on the result, not errors: a
// non-nil error from a batch method means the call itself failed and nothing
// changed locally.
type Coordinator struct {
	api       ports.TodoAPI
	cache     *querycache.Cache
	selection *selection.Set
	opts      options
	logger    *slog.Logger
}

// NewCoordinator creates a Coordinator. cache is shared and owned by the
// caller; sel may be nil, in which case the Coordinator starts with an empty
// selection.
func NewCoordinator(
	api ports.TodoAPI,
	cache *querycache.Cache,
	sel *selection.Set,
	logger *slog.Logger,
	opts ...Option,
) *Coordinator {
	if sel == nil {
		sel = selection.New()
	}
	return &Coordinator{
		api:       api,
		cache:     cache,
		selection: sel,
		opts:      buildOptions(opts),
		logger:    logging.OrDiscard(logger),
	}
}

// ListTodos returns the cached list, fetching it when missing or stale.
// Selected ids that are no longer listed are dropped from the selection.
func (c *Coordinator) ListTodos(ctx context.Context) ([]todo.Todo, error) {
	todos, err := querycache.Query(ctx, c.cache, c.opts.key(KeyTodos), c.api.ListTodos)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			logFailure(ctx, c.logger, "ListTodos", err)
		}
		return nil, err
	}

	if dropped := c.selection.Retain(todo.IDs(todos)); len(dropped) > 0 {
		c.logger.DebugContext(ctx, "pruned stale selection",
			slog.Any("ids", dropped),
		)
	}
	return todos, nil
}

// Refresh marks the cached list stale and reads it again, so the result
// comes from the server unless another read is already fetching it.
func (c *Coordinator) Refresh(ctx context.Context) ([]todo.Todo, error) {
	c.cache.Invalidate(c.opts.key(KeyTodos))
	return c.ListTodos(ctx)
}

// GetTodo returns a single todo through the cache.
func (c *Coordinator) GetTodo(ctx context.Context, id int64) (*todo.Todo, error) {
	t, err := querycache.Query(ctx, c.cache, c.opts.todoKey(id), func(ctx context.Context) (*todo.Todo, error) {
		return c.api.GetTodo(ctx, id)
	})
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			logFailure(ctx, c.logger, "GetTodo", err, slog.Int64("id", id))
		}
		return nil, err
	}
	return t, nil
}

// CreateTodo validates the draft locally and creates the todo. A blank
// title is rejected without a request.
func (c *Coordinator) CreateTodo(ctx context.Context, title, description string) (*todo.Todo, error) {
	const op = "CreateTodo"

	draft, err := todo.NewDraft(title, description)
	if err != nil {
		return nil, rejected(ctx, c.logger, c.opts.metrics, op, err)
	}

	created, err := c.api.CreateTodo(ctx, draft)
	if err := settle(ctx, c.logger, c.opts.metrics, op, err); err != nil {
		return nil, err
	}

	c.cache.Invalidate(c.opts.key(KeyTodos))
	c.opts.metrics.RecordMutation(ctx, op, telemetry.ResultSuccess)
	c.logger.InfoContext(ctx, "todo created", slog.Int64("id", created.ID))
	return created, nil
}

// UpdateTodo validates and applies a partial update.
func (c *Coordinator) UpdateTodo(ctx context.Context, id int64, patch todo.Patch) (*todo.Todo, error) {
	const op = "UpdateTodo"

	if err := patch.Validate(); err != nil {
		return nil, rejected(ctx, c.logger, c.opts.metrics, op, err)
	}

	updated, err := c.api.UpdateTodo(ctx, id, patch)
	if err := settle(ctx, c.logger, c.opts.metrics, op, err); err != nil {
		return nil, err
	}

	c.cache.Invalidate(c.opts.key(KeyTodos), c.opts.todoKey(id))
	c.opts.metrics.RecordMutation(ctx, op, telemetry.ResultSuccess)
	return updated, nil
}

// ToggleCompleted flips t's completed flag, sending only that field.
func (c *Coordinator) ToggleCompleted(ctx context.Context, t todo.Todo) (*todo.Todo, error) {
	return c.UpdateTodo(ctx, t.ID, todo.CompletedPatch(!t.Completed))
}

// DeleteTodo deletes a todo and drops it from the selection. A todo the
// server no longer has is treated as deleted locally; ErrNotFound is still
// returned.
func (c *Coordinator) DeleteTodo(ctx context.Context, id int64) error {
	const op = "DeleteTodo"

	err := c.api.DeleteTodo(ctx, id)
	if err := settle(ctx, c.logger, c.opts.metrics, op, err); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}

	c.selection.Remove(id)
	c.cache.Remove(c.opts.todoKey(id))
	c.cache.Invalidate(c.opts.key(KeyTodos))
	if err == nil {
		c.opts.metrics.RecordMutation(ctx, op, telemetry.ResultSuccess)
	}
	return err
}

// BatchComplete completes ids in one call. The selection is cleared only
// when no item failed.
func (c *Coordinator) BatchComplete(ctx context.Context, ids []int64) (*todo.BatchResult, error) {
	return c.batch(ctx, "BatchComplete", ids, c.api.BatchCompleteTodos, func(r *todo.BatchResult) {
		if !r.HasFailures() {
			c.selection.Clear()
		}
	})
}

// BatchDelete deletes ids in one call. Deleted ids leave the selection and
// failed ids stay selected so the user can retry them.
func (c *Coordinator) BatchDelete(ctx context.Context, ids []int64) (*todo.BatchResult, error) {
	return c.batch(ctx, "BatchDelete", ids, c.api.BatchDeleteTodos, func(r *todo.BatchResult) {
		c.selection.Remove(r.Succeeded...)
		for _, id := range r.Succeeded {
			c.cache.Remove(c.opts.todoKey(id))
		}
	})
}

// BatchCompleteSelected runs BatchComplete over a snapshot of the selection.
func (c *Coordinator) BatchCompleteSelected(ctx context.Context) (*todo.BatchResult, error) {
	return c.BatchComplete(ctx, c.selection.IDs())
}

// BatchDeleteSelected runs BatchDelete over a snapshot of the selection.
func (c *Coordinator) BatchDeleteSelected(ctx context.Context) (*todo.BatchResult, error) {
	return c.BatchDelete(ctx, c.selection.IDs())
}

// ToggleSelection adds or removes id and reports whether it is now selected.
func (c *Coordinator) ToggleSelection(id int64) bool {
	return c.selection.Toggle(id)
}

// ClearSelection empties the selection.
func (c *Coordinator) ClearSelection() {
	c.selection.Clear()
}

// SelectedIDs returns the selected ids in ascending order.
func (c *Coordinator) SelectedIDs() []int64 {
	return c.selection.IDs()
}

// Changes signals whenever the cached list changes state. Signals coalesce:
// a reader that falls behind sees one pending signal, never a backlog. While
// at least one Changes channel is open, invalidating the list triggers a
// background refetch.
func (c *Coordinator) Changes(ctx context.Context) <-chan struct{} {
	events := c.cache.Subscribe(ctx, c.opts.key(KeyTodos))
	out := make(chan struct{}, 1)

	go func() {
		defer close(out)
		for range events {
			select {
			case out <- struct{}{}:
			default:
			}
		}
	}()

	return out
}

// batch runs one batch call: validate ids, send once, then on an answered
// call invalidate the list and apply the selection policy.
func (c *Coordinator) batch(
	ctx context.Context,
	op string,
	ids []int64,
	call func(context.Context, todo.BatchRequest) (*todo.BatchResult, error),
	applySelection func(*todo.BatchResult),
) (*todo.BatchResult, error) {
	req, err := todo.NewBatchRequest(ids)
	if err != nil {
		return nil, rejected(ctx, c.logger, c.opts.metrics, op, err)
	}

	result, err := call(ctx, req)
	if err := settle(ctx, c.logger, c.opts.metrics, op, err); err != nil {
		return nil, err
	}

	keys := make([]string, 0, req.Len()+1)
	keys = append(keys, c.opts.key(KeyTodos))
	for _, id := range req.IDs() {
		keys = append(keys, c.opts.todoKey(id))
	}
	c.cache.Invalidate(keys...)
	applySelection(result)

	if result.HasFailures() {
		c.opts.metrics.RecordMutation(ctx, op, telemetry.ResultPartial)
		c.opts.metrics.RecordBatchFailures(ctx, op, len(result.Failed))
		c.logger.WarnContext(ctx, "batch partially failed",
			slog.String("operation", op),
			slog.Int("requested", len(result.Requested)),
			slog.Any("failed_ids", result.FailedIDs()),
		)
	} else {
		c.opts.metrics.RecordMutation(ctx, op, telemetry.ResultSuccess)
	}

	return result, nil
}
