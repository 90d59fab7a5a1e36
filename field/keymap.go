package field

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	// SwitchFocus moves focus between the grid and the button bar.
	SwitchFocus key.Binding

	Left, Right key.Binding
	Press       key.Binding

	ToggleCollapse key.Binding

	AddRow, AddHeading, AddColumn key.Binding
	Clear                         key.Binding

	Undo, Redo key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		SwitchFocus: key.NewBinding(key.WithKeys("ctrl+b"), key.WithHelp("ctrl+b", "grid/buttons")),

		Left:  key.NewBinding(key.WithKeys("left", "shift+tab"), key.WithHelp("←", "previous button")),
		Right: key.NewBinding(key.WithKeys("right", "tab"), key.WithHelp("→", "next button")),
		Press: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "press")),

		ToggleCollapse: key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", "collapse")),

		AddRow:     key.NewBinding(key.WithKeys("alt+r"), key.WithHelp("alt+r", "add row")),
		AddHeading: key.NewBinding(key.WithKeys("alt+h"), key.WithHelp("alt+h", "add heading")),
		AddColumn:  key.NewBinding(key.WithKeys("alt+c"), key.WithHelp("alt+c", "add column")),
		Clear:      key.NewBinding(key.WithKeys("alt+x"), key.WithHelp("alt+x", "clear")),

		Undo: key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "undo")),
		Redo: key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "redo")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.SwitchFocus, k.AddRow, k.AddColumn, k.Undo, k.Redo}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.SwitchFocus, k.Left, k.Right, k.Press, k.ToggleCollapse},
		{k.AddRow, k.AddHeading, k.AddColumn, k.Clear},
		{k.Undo, k.Redo},
	}
}
