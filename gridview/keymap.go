package gridview

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the grid key bindings.
type KeyMap struct {
	Left, Right, Up, Down key.Binding
	Home, End             key.Binding
	NextCell, PrevCell    key.Binding

	// Activate edits the focused cell or triggers the focused remover.
	Activate key.Binding
	Cancel   key.Binding

	MoveRowUp, MoveRowDown  key.Binding
	RemoveRow, RemoveColumn key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		Home:  key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "first cell")),
		End:   key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "last cell")),

		NextCell: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next cell")),
		PrevCell: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous cell")),

		Activate: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit/apply")),
		Cancel:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel edit")),

		// Portable row movement: terminals vary between alt+arrows and ctrl+arrows.
		MoveRowUp:   key.NewBinding(key.WithKeys("alt+up", "ctrl+up"), key.WithHelp("alt/ctrl+↑", "move row up")),
		MoveRowDown: key.NewBinding(key.WithKeys("alt+down", "ctrl+down"), key.WithHelp("alt/ctrl+↓", "move row down")),

		RemoveRow:    key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "remove row")),
		RemoveColumn: key.NewBinding(key.WithKeys("ctrl+k"), key.WithHelp("ctrl+k", "remove column")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Activate, k.MoveRowUp, k.MoveRowDown, k.RemoveRow, k.RemoveColumn}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Home, k.End},
		{k.NextCell, k.PrevCell, k.Activate, k.Cancel},
		{k.MoveRowUp, k.MoveRowDown, k.RemoveRow, k.RemoveColumn},
	}
}
