package gridview

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/tablefield/table"
)

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if isWheelMouse(msg) {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	if !m.focused || !m.value.Present() {
		return m, nil
	}

	line := msg.Y
	if m.viewport.Height > 0 {
		line += m.viewport.YOffset
	}
	rows := m.value.Len()

	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		h := m.hitTest(msg.X, line)
		if h.zone == zoneNone {
			return m, nil
		}

		var cmds []tea.Cmd
		if m.editing && (h.zone != zoneCell || h.row != m.focus.Row || h.col != m.focus.Col) {
			var cmd tea.Cmd
			m, cmd = m.commitEdit()
			cmds = append(cmds, cmd)
		}

		switch h.zone {
		case zoneHandle:
			if !m.cfg.DisableReorder {
				m.drag = dragState{active: true, from: h.row, over: h.row}
				m.focus.Row = h.row
			}
		case zoneCell:
			m.focus = Focus{Row: h.row, Col: h.col}
		case zoneRowRemover:
			cmds = append(cmds, m.emit(table.Command{Kind: table.CmdRemoveRow, Row: h.row}))
		case zoneColRemover:
			cmds = append(cmds, m.emit(table.Command{Kind: table.CmdRemoveColumn, Cell: h.col}))
		}
		m.clampFocus()
		return m, tea.Batch(cmds...)

	case tea.MouseActionMotion:
		if m.drag.active {
			m.drag.over = clampInt(line, 0, rows-1)
		}

	case tea.MouseActionRelease:
		if !m.drag.active {
			return m, nil
		}
		from, to := m.drag.from, clampInt(line, 0, rows-1)
		m.drag = dragState{}
		if from == to {
			return m, nil
		}
		m.focus.Row = to
		m.clampFocus()
		return m, m.reorder(from, to)
	}

	return m, nil
}

func isWheelMouse(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress &&
		(msg.Button == tea.MouseButtonWheelUp ||
			msg.Button == tea.MouseButtonWheelDown ||
			msg.Button == tea.MouseButtonWheelLeft ||
			msg.Button == tea.MouseButtonWheelRight)
}
