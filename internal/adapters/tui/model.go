// Package tui is the interactive terminal front end. It renders the cached
// todo list, re-renders whenever the list changes and maps keys to
// TodoService intents. Mutations started from a dialog run under a context
// the dialog owns; closing the dialog cancels them and discards their
// outcome.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atsushi-h/go-todo/internal/domain"
	"github.com/atsushi-h/go-todo/internal/domain/todo"
	"github.com/atsushi-h/go-todo/internal/domain/user"
	"github.com/atsushi-h/go-todo/internal/ports"
)

const (
	defaultWidth  = 80
	defaultHeight = 20

	// border and padding of panelStyle
	panelChromeWidth = 4
	// panel border, dialog box and status line
	reservedRows = 9
	minListRows  = 3

	maxInputLen = 200
)

type mode int

const (
	modeBrowse mode = iota
	modeAddTitle
	modeAddDescription
	modeEditTitle
	modeEditDescription
	modeConfirmDelete
	modeConfirmBatchDelete
)

func (md mode) isForm() bool {
	switch md {
	case modeAddTitle, modeAddDescription, modeEditTitle, modeEditDescription:
		return true
	default:
		return false
	}
}

// form keeps dialog input across steps and failed submits.
type form struct {
	title       string
	description string
	target      todo.Todo
	count       int
}

// Model is the Bubble Tea model for the todo list.
type Model struct {
	ctx     context.Context
	todos   ports.TodoService
	session ports.SessionService
	changes <-chan struct{}

	list  list.Model
	input textinput.Model
	keys  keyMap

	items    []todo.Todo
	selected map[int64]bool
	user     *user.User
	loaded   bool

	mode      mode
	form      form
	seq       int
	pending   bool
	cancel    context.CancelFunc
	dialogErr string

	status    string
	statusErr bool
}

// New creates the model and subscribes to list changes for the lifetime of
// ctx.
func New(ctx context.Context, todos ports.TodoService, session ports.SessionService) Model {
	keys := newKeyMap()

	l := list.New(nil, itemDelegate{}, defaultWidth-panelChromeWidth, defaultHeight)
	l.Title = titleStyle.Render("Todos")
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	l.SetStatusBarItemName("todo", "todos")
	l.Styles.Title = titleStyle
	l.Styles.HelpStyle = helpStyle
	l.Styles.PaginationStyle = helpStyle
	l.AdditionalShortHelpKeys = keys.short
	l.AdditionalFullHelpKeys = keys.full

	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = maxInputLen

	return Model{
		ctx:      ctx,
		todos:    todos,
		session:  session,
		changes:  todos.Changes(ctx),
		list:     l,
		input:    ti,
		keys:     keys,
		selected: make(map[int64]bool),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		loadList(m.ctx, m.todos, false),
		loadUser(m.ctx, m.session),
		waitForChange(m.changes),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width-panelChromeWidth, max(msg.Height-reservedRows, minListRows))
		return m, nil

	case listLoadedMsg:
		return m.onListLoaded(msg)

	case userLoadedMsg:
		if msg.err == nil {
			m.user = msg.user
			m.list.Title = m.header()
		}
		return m, nil

	case changedMsg:
		return m, tea.Batch(loadList(m.ctx, m.todos, false), waitForChange(m.changes))

	case mutationMsg:
		return m.onMutation(msg)

	case tea.KeyMsg:
		if m.mode != modeBrowse {
			return m.updateDialog(msg)
		}
		return m.updateBrowse(msg)
	}

	var cmd tea.Cmd
	if m.mode.isForm() {
		m.input, cmd = m.input.Update(msg)
	} else {
		m.list, cmd = m.list.Update(msg)
	}
	return m, cmd
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Toggle):
		t, ok := m.current()
		if !ok {
			return m, nil
		}
		return m, m.run(opToggle, toggleTodo(m.todos, t))

	case key.Matches(msg, m.keys.Select):
		t, ok := m.current()
		if !ok {
			return m, nil
		}
		m.todos.ToggleSelection(t.ID)
		cmd := m.syncSelection()
		return m, cmd

	case key.Matches(msg, m.keys.Add):
		return m.openForm(modeAddTitle, form{})

	case key.Matches(msg, m.keys.Edit):
		t, ok := m.current()
		if !ok {
			return m, nil
		}
		return m.openForm(modeEditTitle, form{title: t.Title, description: t.Description, target: t})

	case key.Matches(msg, m.keys.Delete):
		t, ok := m.current()
		if !ok {
			return m, nil
		}
		m.openConfirm(modeConfirmDelete, form{target: t})
		return m, nil

	case key.Matches(msg, m.keys.BatchComplete):
		if len(m.selected) == 0 {
			return m.setError("Nothing selected. Press x to select todos."), nil
		}
		m = m.setStatus(fmt.Sprintf("Completing %s…", plural(len(m.selected), "todo")))
		return m, m.run(opBatchComplete, batchCompleteSelected(m.todos))

	case key.Matches(msg, m.keys.BatchDelete):
		if len(m.selected) == 0 {
			return m.setError("Nothing selected. Press x to select todos."), nil
		}
		m.openConfirm(modeConfirmBatchDelete, form{count: len(m.selected)})
		return m, nil

	case key.Matches(msg, m.keys.Clear):
		m.todos.ClearSelection()
		m = m.setStatus("Selection cleared.")
		cmd := m.syncSelection()
		return m, cmd

	case key.Matches(msg, m.keys.Refresh):
		m = m.setStatus("Refreshing…")
		return m, loadList(m.ctx, m.todos, true)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateDialog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keyForce) {
		return m.closeDialog(), tea.Quit
	}

	if !m.mode.isForm() {
		switch {
		case key.Matches(msg, keyDecline):
			return m.closeDialog(), nil
		case m.pending:
			return m, nil
		case key.Matches(msg, keyConfirm):
			if m.mode == modeConfirmDelete {
				return m.dispatch(opDelete, deleteTodo(m.todos, m.form.target))
			}
			return m.dispatch(opBatchDelete, batchDeleteSelected(m.todos))
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keyCancel):
		return m.closeDialog(), nil
	case m.pending:
		return m, nil
	case key.Matches(msg, keySubmit):
		return m.submitStep()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submitStep advances a form from its title step to its description step,
// or dispatches it from the description step.
func (m Model) submitStep() (tea.Model, tea.Cmd) {
	value := strings.TrimSpace(m.input.Value())

	switch m.mode {
	case modeAddTitle, modeEditTitle:
		if value == "" {
			m.dialogErr = "Title is required."
			return m, nil
		}
		m.form.title = value
		if m.mode == modeAddTitle {
			m.mode = modeAddDescription
		} else {
			m.mode = modeEditDescription
		}
		m.dialogErr = ""
		m.input.Placeholder = "Description (optional)"
		m.input.SetValue(m.form.description)
		m.input.CursorEnd()
		return m, nil

	case modeAddDescription:
		m.form.description = value
		return m.dispatch(opCreate, createTodo(m.todos, m.form.title, m.form.description))

	case modeEditDescription:
		m.form.description = value
		return m.dispatch(opUpdate, editTodo(m.todos, m.form.target.ID, m.form.title, m.form.description))
	}
	return m, nil
}

func (m Model) onListLoaded(msg listLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		if errors.Is(msg.err, context.Canceled) {
			return m, nil
		}
		text, retryable := domain.UserMessage(msg.err)
		if retryable {
			text += " Press r to retry."
		}
		return m.setError(text), nil
	}

	m.loaded = true
	m.items = msg.todos
	m.selected = toSet(msg.selected)
	if m.status == "Refreshing…" {
		m = m.setStatus("")
	}
	cmd := m.render()
	return m, cmd
}

func (m Model) onMutation(msg mutationMsg) (tea.Model, tea.Cmd) {
	if msg.seq != 0 {
		if msg.seq != m.seq {
			// The dialog was closed; its context was canceled.
			return m, nil
		}
		if m.cancel != nil {
			m.cancel()
			m.cancel = nil
		}
		m.pending = false
	}
	if errors.Is(msg.err, context.Canceled) {
		return m, nil
	}

	if msg.err != nil {
		m = m.onMutationError(msg)
	} else {
		if msg.seq != 0 {
			m = m.closeDialog()
		}
		text, partial := successText(msg)
		if partial {
			m = m.setError(text)
		} else {
			m = m.setStatus(text)
		}
	}

	cmd := m.syncSelection()
	return m, cmd
}

// onMutationError keeps a form open with its input so the user can retry.
// Confirm dialogs close and report on the status line.
func (m Model) onMutationError(msg mutationMsg) Model {
	text, _ := domain.UserMessage(msg.err)

	if msg.seq == 0 || !m.mode.isForm() {
		if msg.seq != 0 {
			m = m.closeDialog()
		}
		return m.setError(text)
	}

	if domain.KindOf(msg.err) == domain.KindValidation {
		switch m.mode {
		case modeAddDescription:
			m.mode = modeAddTitle
		case modeEditDescription:
			m.mode = modeEditTitle
		}
		m.input.Placeholder = "Title"
		m.input.SetValue(m.form.title)
		m.input.CursorEnd()
	}
	m.dialogErr = text
	return m
}

// dispatch runs fn under a context owned by the open dialog.
func (m Model) dispatch(op string, fn func(context.Context) mutationMsg) (tea.Model, tea.Cmd) {
	ctx, cancel := context.WithCancel(m.ctx)
	m.seq++
	seq := m.seq
	m.pending = true
	m.cancel = cancel
	m.dialogErr = ""

	return m, func() tea.Msg {
		msg := fn(ctx)
		msg.seq = seq
		msg.op = op
		return msg
	}
}

// run executes fn under the program context. Its outcome is always shown.
func (m Model) run(op string, fn func(context.Context) mutationMsg) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		msg := fn(ctx)
		msg.op = op
		return msg
	}
}

func (m Model) openForm(md mode, f form) (tea.Model, tea.Cmd) {
	m.mode = md
	m.form = f
	m.dialogErr = ""
	m.pending = false
	m.input.Placeholder = "Title"
	m.input.SetValue(f.title)
	m.input.CursorEnd()
	cmd := m.input.Focus()
	return m, cmd
}

func (m *Model) openConfirm(md mode, f form) {
	m.mode = md
	m.form = f
	m.dialogErr = ""
	m.pending = false
}

// closeDialog cancels any in-flight dialog mutation and returns to the list.
func (m Model) closeDialog() Model {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	if m.pending {
		m = m.setStatus("Canceled.")
	}
	m.seq++
	m.pending = false
	m.mode = modeBrowse
	m.form = form{}
	m.dialogErr = ""
	m.input.Blur()
	m.input.SetValue("")
	return m
}

func (m Model) current() (todo.Todo, bool) {
	it, ok := m.list.SelectedItem().(listItem)
	if !ok {
		return todo.Todo{}, false
	}
	return it.todo, true
}

func (m *Model) syncSelection() tea.Cmd {
	m.selected = toSet(m.todos.SelectedIDs())
	return m.render()
}

func (m *Model) render() tea.Cmd {
	m.list.Title = m.header()
	return m.list.SetItems(toListItems(m.items, m.selected))
}

func (m Model) setStatus(text string) Model {
	m.status = text
	m.statusErr = false
	return m
}

func (m Model) setError(text string) Model {
	m.status = text
	m.statusErr = true
	return m
}

func (m Model) header() string {
	done, pending := todo.Stats(m.items)
	h := fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		titleStyle.Render("Todos"),
		successStyle.Render("✔"), done,
		pendingStyle.Render("•"), pending,
		accentStyle.Render(markSelected), len(m.selected),
	)
	if m.user != nil {
		h += "   " + mutedStyle.Render(m.user.DisplayName())
	}
	return h
}

func (m Model) View() string {
	sections := []string{m.list.View()}

	if d := m.dialogView(); d != "" {
		sections = append(sections, d)
	}

	switch {
	case m.status != "" && m.statusErr:
		sections = append(sections, errorStyle.Render(m.status))
	case m.status != "":
		sections = append(sections, successStyle.Render(m.status))
	case !m.loaded:
		sections = append(sections, mutedStyle.Render("Loading…"))
	}

	return panelStyle.Render(strings.Join(sections, "\n"))
}

func (m Model) dialogView() string {
	var heading, body string

	switch m.mode {
	case modeBrowse:
		return ""
	case modeAddTitle:
		heading, body = "New todo: title", m.input.View()
	case modeAddDescription:
		heading, body = fmt.Sprintf("New todo %q: description", m.form.title), m.input.View()
	case modeEditTitle:
		heading, body = "Edit todo: title", m.input.View()
	case modeEditDescription:
		heading, body = fmt.Sprintf("Edit %q: description", m.form.title), m.input.View()
	case modeConfirmDelete:
		heading, body = "Delete todo", fmt.Sprintf("Delete %q? (y/n)", m.form.target.Title)
	case modeConfirmBatchDelete:
		heading, body = "Delete selected", fmt.Sprintf("Delete %s? (y/n)", plural(m.form.count, "selected todo"))
	}

	lines := []string{titleStyle.Render(heading), body}
	if m.pending {
		lines = append(lines, mutedStyle.Render("Working… esc to cancel"))
	}
	if m.dialogErr != "" {
		lines = append(lines, errorStyle.Render(m.dialogErr))
	}
	return dialogStyle.Render(strings.Join(lines, "\n"))
}

// successText describes a finished mutation. partial is true when a batch
// left some ids unprocessed.
func successText(msg mutationMsg) (text string, partial bool) {
	title := ""
	if msg.todo != nil {
		title = msg.todo.Title
	}

	switch msg.op {
	case opCreate:
		return fmt.Sprintf("Added %q.", title), false
	case opUpdate:
		return fmt.Sprintf("Saved %q.", title), false
	case opToggle:
		if msg.todo != nil && msg.todo.Completed {
			return fmt.Sprintf("Completed %q.", title), false
		}
		return fmt.Sprintf("Reopened %q.", title), false
	case opDelete:
		return fmt.Sprintf("Deleted %q.", title), false
	case opBatchComplete:
		return batchSummary("Completed", msg.batch)
	case opBatchDelete:
		return batchSummary("Deleted", msg.batch)
	}
	return "", false
}

// batchSummary lists every failed id with the server's reason.
func batchSummary(verb string, r *todo.BatchResult) (string, bool) {
	if r == nil {
		return verb + ".", false
	}
	if !r.HasFailures() {
		return fmt.Sprintf("%s %s.", verb, plural(len(r.Succeeded), "todo")), false
	}

	failed := make([]string, len(r.Failed))
	for i, f := range r.Failed {
		reason := f.Reason
		if reason == "" {
			reason = "failed"
		}
		failed[i] = fmt.Sprintf("#%d (%s)", f.ID, reason)
	}
	return fmt.Sprintf("%s %d of %d. Failed: %s",
		verb, len(r.Succeeded), len(r.Requested), strings.Join(failed, ", ")), true
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

func toSet(ids []int64) map[int64]bool {
	set := make(map[int64]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
