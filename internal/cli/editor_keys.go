package cli

import "github.com/charmbracelet/bubbles/key"

type editorKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Add       key.Binding
	Edit      key.Binding
	Sync      key.Binding
	Copy      key.Binding
	Delete    key.Binding
	Grab      key.Binding
	Undo      key.Binding
	Redo      key.Binding
	Quit      key.Binding
	Confirm   key.Binding
	Cancel    key.Binding
	CtrlC     key.Binding
	ToggleIDs key.Binding
}

func defaultEditorKeyMap() editorKeyMap {
	return editorKeyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Add:       key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add child")),
		Edit:      key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit")),
		Sync:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "edit + sync copies")),
		Copy:      key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy")),
		Delete:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete")),
		Grab:      key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "grab/drop")),
		Undo:      key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo")),
		Redo:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "redo")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		Confirm:   key.NewBinding(key.WithKeys("enter")),
		Cancel:    key.NewBinding(key.WithKeys("esc")),
		CtrlC:     key.NewBinding(key.WithKeys("ctrl+c")),
		ToggleIDs: key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "ids")),
	}
}

// ShortHelp lists the bindings shown in the footer.
func (k editorKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Edit, k.Sync, k.Copy, k.Delete, k.Grab, k.Undo, k.Redo, k.Quit}
}
