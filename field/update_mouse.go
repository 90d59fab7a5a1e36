package field

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if !m.focused || m.collapsed {
		return m, nil
	}
	ox, oy := m.origin()
	msg.X -= ox
	msg.Y -= oy

	gridH := 0
	if m.value.Present() {
		gridH = lipgloss.Height(m.grid.View())
	}

	if msg.Y == gridH && msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && !m.grid.Dragging() {
		i, ok := m.buttonAt(msg.X)
		if !ok {
			return m, nil
		}
		m.button = i
		m.zone = focusBar
		m.syncFocus()
		return m.Press(m.Buttons()[i].Action)
	}

	if !m.value.Present() {
		return m, nil
	}
	if msg.Action == tea.MouseActionPress && msg.Y >= 0 && msg.Y < gridH {
		m.zone = focusGrid
		m.syncFocus()
	}
	return m.updateGrid(msg)
}
