package field

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/tablefield/table"
)

// ChangeMsg carries a patch to the host when Config.OnChange is nil.
type ChangeMsg struct {
	Patch table.Patch
}

func (m Model) emitChange(p table.Patch) tea.Cmd {
	m.cfg.Logger.Debug("table committed", "patch", p.String())
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(p)
		return nil
	}
	return func() tea.Msg { return ChangeMsg{Patch: p} }
}
