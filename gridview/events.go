package gridview

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/tablefield/table"
)

// CommandMsg carries a command to the host when Config.OnCommand is nil.
type CommandMsg struct {
	Command table.Command
}

func (m Model) emit(c table.Command) tea.Cmd {
	if m.cfg.OnCommand != nil {
		m.cfg.OnCommand(c)
		return nil
	}
	return func() tea.Msg { return CommandMsg{Command: c} }
}
