package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Toggle        key.Binding
	Select        key.Binding
	Add           key.Binding
	Edit          key.Binding
	Delete        key.Binding
	BatchComplete key.Binding
	BatchDelete   key.Binding
	Clear         key.Binding
	Refresh       key.Binding
	Quit          key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Toggle:        key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "done")),
		Select:        key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "select")),
		Add:           key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Edit:          key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Delete:        key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		BatchComplete: key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "complete selected")),
		BatchDelete:   key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "delete selected")),
		Clear:         key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear selection")),
		Refresh:       key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Quit:          key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) short() []key.Binding {
	return []key.Binding{k.Toggle, k.Select, k.Add, k.Delete, k.BatchComplete, k.BatchDelete}
}

func (k keyMap) full() []key.Binding {
	return []key.Binding{
		k.Toggle, k.Select, k.Add, k.Edit, k.Delete,
		k.BatchComplete, k.BatchDelete, k.Clear, k.Refresh, k.Quit,
	}
}

// dialog keys
var (
	keySubmit  = key.NewBinding(key.WithKeys("enter"))
	keyCancel  = key.NewBinding(key.WithKeys("esc"))
	keyConfirm = key.NewBinding(key.WithKeys("y", "Y", "enter"))
	keyDecline = key.NewBinding(key.WithKeys("n", "N", "esc"))
	keyForce   = key.NewBinding(key.WithKeys("ctrl+c"))
)
