package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atsushi-h/go-todo/internal/domain/todo"
	"github.com/atsushi-h/go-todo/internal/domain/user"
	"github.com/atsushi-h/go-todo/internal/ports"
)

// listLoadedMsg carries a list read and the selection after pruning.
type listLoadedMsg struct {
	todos    []todo.Todo
	selected []int64
	err      error
}

type userLoadedMsg struct {
	user *user.User
	err  error
}

// changedMsg says the cached list changed and should be read again.
type changedMsg struct{}

// Operation names carried by mutationMsg.
const (
	opCreate        = "create"
	opUpdate        = "update"
	opToggle        = "toggle"
	opDelete        = "delete"
	opBatchComplete = "batch-complete"
	opBatchDelete   = "batch-delete"
)

// mutationMsg reports a finished mutation. seq is the dialog generation the
// mutation was started from, or zero when it was started from the list.
type mutationMsg struct {
	seq   int
	op    string
	todo  *todo.Todo
	batch *todo.BatchResult
	err   error
}

func loadList(ctx context.Context, svc ports.TodoService, refresh bool) tea.Cmd {
	return func() tea.Msg {
		read := svc.ListTodos
		if refresh {
			read = svc.Refresh
		}
		todos, err := read(ctx)
		if err != nil {
			return listLoadedMsg{err: err}
		}
		return listLoadedMsg{todos: todos, selected: svc.SelectedIDs()}
	}
}

func loadUser(ctx context.Context, svc ports.SessionService) tea.Cmd {
	return func() tea.Msg {
		u, err := svc.CurrentUser(ctx)
		return userLoadedMsg{user: u, err: err}
	}
}

// waitForChange blocks until the next change signal. It returns nil once
// the channel is closed, which ends the subscription loop.
func waitForChange(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return changedMsg{}
	}
}

func createTodo(svc ports.TodoService, title, description string) func(context.Context) mutationMsg {
	return func(ctx context.Context) mutationMsg {
		t, err := svc.CreateTodo(ctx, title, description)
		return mutationMsg{todo: t, err: err}
	}
}

func editTodo(svc ports.TodoService, id int64, title, description string) func(context.Context) mutationMsg {
	return func(ctx context.Context) mutationMsg {
		t, err := svc.UpdateTodo(ctx, id, todo.EditPatch(title, description))
		return mutationMsg{todo: t, err: err}
	}
}

func toggleTodo(svc ports.TodoService, t todo.Todo) func(context.Context) mutationMsg {
	return func(ctx context.Context) mutationMsg {
		updated, err := svc.ToggleCompleted(ctx, t)
		return mutationMsg{todo: updated, err: err}
	}
}

func deleteTodo(svc ports.TodoService, t todo.Todo) func(context.Context) mutationMsg {
	return func(ctx context.Context) mutationMsg {
		err := svc.DeleteTodo(ctx, t.ID)
		return mutationMsg{todo: &t, err: err}
	}
}

func batchCompleteSelected(svc ports.TodoService) func(context.Context) mutationMsg {
	return func(ctx context.Context) mutationMsg {
		r, err := svc.BatchCompleteSelected(ctx)
		return mutationMsg{batch: r, err: err}
	}
}

func batchDeleteSelected(svc ports.TodoService) func(context.Context) mutationMsg {
	return func(ctx context.Context) mutationMsg {
		r, err := svc.BatchDeleteSelected(ctx)
		return mutationMsg{batch: r, err: err}
	}
}
