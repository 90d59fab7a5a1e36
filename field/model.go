package field

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/tablefield/gridview"
	"github.com/iw2rmb/tablefield/table"
)

type focusZone uint8

const (
	focusGrid focusZone = iota
	focusBar
)

// Model is a Bubble Tea component hosting one table value.
//
// Model owns the only authoritative copy of the value. The grid renders it
// and reports gestures back as commands.
type Model struct {
	cfg     Config
	editor  table.Editor
	value   table.Table
	grid    gridview.Model
	history *table.History

	// pending collects grid commands during a single Update.
	pending *[]table.Command

	focused   bool
	collapsed bool
	zone      focusZone
	button    int

	help   help.Model
	width  int
	height int
}

func New(cfg Config) Model {
	cfg = normalizeConfig(cfg)
	pending := &[]table.Command{}
	m := Model{
		cfg:       cfg,
		editor:    table.NewEditor(cfg.Options, cfg.EditorOptions...),
		value:     cfg.Value,
		history:   table.NewHistory(cfg.HistoryLimit),
		pending:   pending,
		focused:   true,
		collapsed: cfg.Options.Collapsible && cfg.Options.Collapsed,
		help:      help.New(),
	}
	m.grid = gridview.New(cfg.gridConfig(func(c table.Command) {
		*pending = append(*pending, c)
	}))
	if !m.value.Present() {
		m.zone = focusBar
	}
	m.syncFocus()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// Value returns the current table value.
func (m Model) Value() table.Table { return m.value }

// SetValue replaces the value without emitting a patch or recording undo.
func (m Model) SetValue(t table.Table) Model {
	m.value = t
	m.grid = m.grid.SetValue(t)
	if !t.Present() {
		m.zone = focusBar
	}
	m.syncFocus()
	return m
}

// Buttons returns the button bar for the current value.
func (m Model) Buttons() []Button { return buttonsFor(m.editor, m.value) }

func (m Model) Collapsed() bool { return m.collapsed }

// SetCollapsed collapses or expands the form. It is a no-op unless the
// options make the form collapsible.
func (m Model) SetCollapsed(v bool) Model {
	if !m.cfg.Options.Collapsible {
		return m
	}
	m.collapsed = v
	m.syncFocus()
	return m
}

func (m Model) CanUndo() bool { return m.history.CanUndo() }

func (m Model) CanRedo() bool { return m.history.CanRedo() }

// Grid exposes the embedded grid for inspection.
func (m Model) Grid() gridview.Model { return m.grid }

// GridFocused reports whether keys go to the grid rather than the buttons.
func (m Model) GridFocused() bool { return m.zone == focusGrid }

func (m Model) Focus() Model {
	m.focused = true
	m.syncFocus()
	return m
}

func (m Model) Blur() Model {
	m.focused = false
	m.syncFocus()
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) SetSize(width, height int) Model {
	m.width, m.height = width, height
	m.help.Width = width
	m.grid = m.grid.SetSize(m.gridSize())
	return m
}

func (m *Model) syncFocus() {
	if m.zone == focusGrid && !m.value.Present() {
		m.zone = focusBar
	}
	if n := len(m.Buttons()); m.button >= n {
		m.button = n - 1
	}
	if m.button < 0 {
		m.button = 0
	}
	if m.focused && !m.collapsed && m.zone == focusGrid {
		m.grid = m.grid.Focus()
	} else {
		m.grid = m.grid.Blur()
	}
}
