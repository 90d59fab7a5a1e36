package field

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/tablefield/gridview"
	"github.com/iw2rmb/tablefield/table"
)

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		return m.updateMouse(msg)
	case gridview.CommandMsg:
		return m.Exec(msg.Command)
	}
	return m.updateGrid(msg)
}

// Exec applies c to the current value and commits the result.
//
// Rejected commands are logged and dropped; the value is unchanged.
func (m Model) Exec(c table.Command) (Model, tea.Cmd) {
	prev := m.value
	res, err := m.editor.Apply(prev, c)
	if err != nil {
		m.cfg.Logger.Error("table command rejected", "command", c.String(), "err", err)
		return m, nil
	}
	if !res.Changed() {
		m.cfg.Logger.Debug("table command ignored", "command", c.String())
		return m, nil
	}
	m.history.Record(prev)
	return m.commit(res.Table)
}

// Press runs a button bar action. Missing or disabled buttons do nothing.
func (m Model) Press(a Action) (Model, tea.Cmd) {
	for _, b := range m.Buttons() {
		if b.Action != a {
			continue
		}
		if b.Disabled {
			m.cfg.Logger.Debug("button disabled", "button", a.String())
			return m, nil
		}
		return m.Exec(a.command())
	}
	return m, nil
}

func (m Model) Undo() (Model, tea.Cmd) {
	prev, ok := m.history.Undo(m.value)
	if !ok {
		return m, nil
	}
	return m.commit(prev)
}

func (m Model) Redo() (Model, tea.Cmd) {
	next, ok := m.history.Redo(m.value)
	if !ok {
		return m, nil
	}
	return m.commit(next)
}

func (m Model) commit(next table.Table) (Model, tea.Cmd) {
	wasPresent := m.value.Present()
	m.value = next
	m.grid = m.grid.SetValue(next)
	if next.Present() && !wasPresent {
		m.zone = focusGrid
	}
	m.syncFocus()

	if !next.Present() {
		return m, m.emitChange(table.Unset())
	}
	return m, m.emitChange(table.Set(next))
}

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}
	if m.grid.Editing() {
		return m.updateGrid(msg)
	}

	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.ToggleCollapse):
		return m.SetCollapsed(!m.collapsed), nil
	case m.collapsed:
		return m, nil

	case key.Matches(msg, km.Undo):
		return m.Undo()
	case key.Matches(msg, km.Redo):
		return m.Redo()
	case key.Matches(msg, km.SwitchFocus):
		if m.zone == focusGrid {
			m.zone = focusBar
		} else {
			m.zone = focusGrid
		}
		m.syncFocus()
		return m, nil

	case key.Matches(msg, km.AddRow):
		return m.Press(ActionAddRow)
	case key.Matches(msg, km.AddHeading):
		return m.Press(ActionAddHeading)
	case key.Matches(msg, km.AddColumn):
		return m.Press(ActionAddColumn)
	case key.Matches(msg, km.Clear):
		return m.Press(ActionClear)
	}

	if m.zone == focusBar {
		return m.updateBarKey(msg)
	}
	return m.updateGrid(msg)
}

func (m Model) updateBarKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	km := m.cfg.KeyMap
	buttons := m.Buttons()
	switch {
	case key.Matches(msg, km.Left):
		m.button = (m.button - 1 + len(buttons)) % len(buttons)
	case key.Matches(msg, km.Right):
		m.button = (m.button + 1) % len(buttons)
	case key.Matches(msg, km.Press):
		return m.Press(buttons[m.button].Action)
	}
	return m, nil
}

// updateGrid forwards msg to the grid and executes the commands it produced.
func (m Model) updateGrid(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.grid, cmd = m.grid.Update(msg)

	queued := *m.pending
	*m.pending = nil

	cmds := []tea.Cmd{cmd}
	for _, c := range queued {
		var change tea.Cmd
		m, change = m.Exec(c)
		cmds = append(cmds, change)
	}
	return m, tea.Batch(cmds...)
}
