package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atsushi-h/go-todo/internal/domain/todo"
)

// listItem adapts a todo to bubbles/list.Item.
type listItem struct {
	todo     todo.Todo
	selected bool
}

func (i listItem) Title() string       { return i.todo.Title }
func (i listItem) Description() string { return i.todo.Description }
func (i listItem) FilterValue() string { return i.todo.Title }

// itemDelegate renders one todo per line:
//
//	> ◆ ☑ Buy milk  2 litres
type itemDelegate struct{}

func (d itemDelegate) Height() int                             { return 1 }
func (d itemDelegate) Spacing() int                            { return 0 }
func (d itemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}

	mark := " "
	if it.selected {
		mark = accentStyle.Render(markSelected)
	}

	box := mutedStyle.Render(boxUnchecked)
	text := it.todo.Title
	if it.todo.Completed {
		box = successStyle.Render(boxChecked)
		text = doneStyle.Render(text)
	}
	if it.todo.Description != "" {
		text += "  " + mutedStyle.Render(it.todo.Description)
	}

	prefix := "  "
	if index == m.Index() {
		prefix = cursorStyle.Render("> ")
	}
	fmt.Fprintf(w, "%s%s %s %s", prefix, mark, box, text)
}

func toListItems(todos []todo.Todo, selected map[int64]bool) []list.Item {
	items := make([]list.Item, len(todos))
	for i, t := range todos {
		items[i] = listItem{todo: t, selected: selected[t.ID]}
	}
	return items
}
