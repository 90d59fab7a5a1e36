package gridview

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/tablefield/table"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused || !m.value.Present() {
		return m, nil
	}
	if m.editing {
		return m.updateEditKey(msg)
	}

	km := m.cfg.KeyMap
	rows, cols := m.value.Len(), m.columns()

	switch {
	case key.Matches(msg, km.MoveRowUp):
		return m.moveRow(-1)
	case key.Matches(msg, km.MoveRowDown):
		return m.moveRow(1)

	case key.Matches(msg, km.Left):
		m.moveFocus(0, -1)
	case key.Matches(msg, km.Right):
		m.moveFocus(0, 1)
	case key.Matches(msg, km.Up):
		m.moveFocus(-1, 0)
	case key.Matches(msg, km.Down):
		m.moveFocus(1, 0)
	case key.Matches(msg, km.Home):
		m.focus.Col = 0
	case key.Matches(msg, km.End):
		m.focus.Col = cols - 1
	case key.Matches(msg, km.NextCell):
		m.stepCell(1)
	case key.Matches(msg, km.PrevCell):
		m.stepCell(-1)

	case key.Matches(msg, km.Activate):
		return m.activate()
	case key.Matches(msg, km.RemoveRow):
		if m.focus.Row < rows {
			return m, m.emit(table.Command{Kind: table.CmdRemoveRow, Row: m.focus.Row})
		}
	case key.Matches(msg, km.RemoveColumn):
		if m.focus.Col < cols {
			return m, m.emit(table.Command{Kind: table.CmdRemoveColumn, Cell: m.focus.Col})
		}

	default:
		if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt && m.onCell() {
			var cmd tea.Cmd
			m, cmd = m.beginEdit()
			if !m.editing {
				return m, cmd
			}
			var typed tea.Cmd
			m, typed = m.updateEditKey(msg)
			return m, tea.Batch(cmd, typed)
		}
	}

	m.clampFocus()
	return m, nil
}

func (m Model) updateEditKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Cancel):
		return m.cancelEdit()
	case key.Matches(msg, km.Activate):
		return m.commitEdit()
	case key.Matches(msg, km.NextCell), key.Matches(msg, km.PrevCell):
		dir := 1
		if key.Matches(msg, km.PrevCell) {
			dir = -1
		}
		var cmd tea.Cmd
		m, cmd = m.commitEdit()
		m.stepCell(dir)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if !m.cfg.LiveEdit {
		return m, cmd
	}
	if cur, ok := m.value.Cell(m.focus.Row, m.focus.Col); ok && cur != m.input.Value() {
		return m, tea.Batch(cmd, m.emit(table.Command{
			Kind: table.CmdUpdateCell,
			Row:  m.focus.Row,
			Cell: m.focus.Col,
			Text: m.input.Value(),
		}))
	}
	return m, cmd
}

// onCell reports whether focus is on an editable cell.
func (m Model) onCell() bool {
	_, ok := m.value.Cell(m.focus.Row, m.focus.Col)
	return ok && m.focus.Col < m.columns()
}

func (m Model) activate() (Model, tea.Cmd) {
	rows, cols := m.value.Len(), m.columns()
	switch {
	case m.focus.Row == rows:
		return m, m.emit(table.Command{Kind: table.CmdRemoveColumn, Cell: m.focus.Col})
	case m.focus.Col == cols:
		return m, m.emit(table.Command{Kind: table.CmdRemoveRow, Row: m.focus.Row})
	default:
		return m.beginEdit()
	}
}

func (m Model) beginEdit() (Model, tea.Cmd) {
	if !m.onCell() {
		return m, nil
	}
	text, _ := m.value.Cell(m.focus.Row, m.focus.Col)

	l := m.layout()
	width := l.spanW
	if !m.value.Rows[m.focus.Row].IsHeading() {
		width = l.widths[m.focus.Col]
	}

	m.editing = true
	m.editOrig = text
	m.input.Width = maxInt(width-1, 1)
	m.input.SetValue(text)
	m.input.CursorEnd()
	return m, m.input.Focus()
}

// commitEdit ends the edit and emits update-cell when the text changed.
func (m Model) commitEdit() (Model, tea.Cmd) {
	if !m.editing {
		return m, nil
	}
	m.editing = false
	m.input.Blur()

	text := m.input.Value()
	cur, ok := m.value.Cell(m.focus.Row, m.focus.Col)
	if !ok || cur == text {
		return m, nil
	}
	return m, m.emit(table.Command{Kind: table.CmdUpdateCell, Row: m.focus.Row, Cell: m.focus.Col, Text: text})
}

// cancelEdit ends the edit. Live edits already emitted are reverted.
func (m Model) cancelEdit() (Model, tea.Cmd) {
	if !m.editing {
		return m, nil
	}
	m.editing = false
	m.input.Blur()

	cur, ok := m.value.Cell(m.focus.Row, m.focus.Col)
	if !m.cfg.LiveEdit || !ok || cur == m.editOrig {
		return m, nil
	}
	return m, m.emit(table.Command{Kind: table.CmdUpdateCell, Row: m.focus.Row, Cell: m.focus.Col, Text: m.editOrig})
}

// moveRow emits a reorder moving the focused row by delta and keeps focus
// on it.
func (m Model) moveRow(delta int) (Model, tea.Cmd) {
	if m.cfg.DisableReorder {
		return m, nil
	}
	rows := m.value.Len()
	from := m.focus.Row
	to := from + delta
	if from >= rows || to < 0 || to >= rows {
		return m, nil
	}
	m.focus.Row = to
	m.clampFocus()
	return m, m.reorder(from, to)
}

func (m Model) reorder(from, to int) tea.Cmd {
	return m.emit(table.Command{Kind: table.CmdReorder, Keys: table.MovedKeys(m.value.Keys(), from, to)})
}

func (m *Model) moveFocus(dr, dc int) {
	rows, cols := m.value.Len(), m.columns()
	f := m.focus
	f.Row = clampInt(f.Row+dr, 0, rows)
	if dc != 0 {
		if f.Row < rows && m.value.Rows[f.Row].IsHeading() {
			if dc > 0 {
				f.Col = cols
			} else {
				f.Col = 0
			}
		} else {
			f.Col = clampInt(f.Col+dc, 0, cols)
		}
	}
	m.focus = f
	m.clampFocus()
}

// stepCell moves focus to the next or previous editable cell in reading
// order, skipping removers.
func (m *Model) stepCell(dir int) {
	rows, cols := m.value.Len(), m.columns()
	if rows == 0 {
		return
	}
	width := func(r int) int {
		if m.value.Rows[r].IsHeading() {
			return 1
		}
		return cols
	}

	r, c := m.focus.Row, m.focus.Col
	if r >= rows {
		r, c = rows-1, width(rows-1)
	}
	if c > width(r) {
		c = width(r)
	}
	c += dir
	switch {
	case c >= width(r):
		if r+1 < rows {
			r, c = r+1, 0
		} else {
			c = width(r) - 1
		}
	case c < 0:
		if r > 0 {
			r, c = r-1, width(r-1)-1
		} else {
			c = 0
		}
	}
	m.focus = Focus{Row: r, Col: c}
	m.clampFocus()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
