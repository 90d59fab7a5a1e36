package gridview

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/tablefield/table"
)

// Focus addresses a focusable grid position.
//
// Row == rows is the trailing column-remover row. Col == columns is the
// trailing row-remover column. Heading rows expose Col 0 and the remover.
type Focus struct {
	Row int
	Col int
}

type dragState struct {
	active bool
	from   int
	over   int
}

// Model is a Bubble Tea component that renders a table value as a grid.
type Model struct {
	cfg   Config
	value table.Table

	focused bool
	focus   Focus

	editing bool
	input   textinput.Model
	// editOrig is the cell text when editing started.
	editOrig string

	drag dragState

	viewport viewport.Model
}

func New(cfg Config) Model {
	cfg = normalizeConfig(cfg)
	in := textinput.New()
	in.Prompt = ""
	m := Model{
		cfg:      cfg,
		value:    cfg.Value,
		focused:  true,
		input:    in,
		viewport: viewport.New(0, 0),
	}
	m.clampFocus()
	m.rebuildContent()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// Value returns the table currently rendered.
func (m Model) Value() table.Table { return m.value }

// SetValue replaces the rendered value. Hosts call it after every commit.
//
// An edit in progress survives when its cell still exists.
func (m Model) SetValue(t table.Table) Model {
	m.value = t
	if m.editing {
		if _, ok := t.Cell(m.focus.Row, m.focus.Col); !ok {
			m.editing = false
			m.input.Blur()
		}
	}
	if m.drag.active && (m.drag.from >= t.Len() || m.drag.over >= t.Len()) {
		m.drag = dragState{}
	}
	m.clampFocus()
	m.rebuildContent()
	return m
}

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.viewport.Width = width
	m.viewport.Height = height
	m.rebuildContent()
	m.followFocus()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

// Cursor returns the focused grid position.
func (m Model) Cursor() Focus { return m.focus }

// SetCursor moves focus, clamped into the grid.
func (m Model) SetCursor(f Focus) Model {
	m.focus = f
	m.clampFocus()
	m.rebuildContent()
	m.followFocus()
	return m
}

// Editing reports whether a cell edit is in progress.
func (m Model) Editing() bool { return m.editing }

// Dragging reports whether a row drag gesture is in progress.
func (m Model) Dragging() bool { return m.drag.active }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		var cmd tea.Cmd
		m, cmd = m.updateKey(msg)
		m.rebuildContent()
		m.followFocus()
		return m, cmd
	case tea.MouseMsg:
		var cmd tea.Cmd
		m, cmd = m.updateMouse(msg)
		m.rebuildContent()
		return m, cmd
	default:
		if m.editing {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		return m, nil
	}
}

// View renders nothing for an absent table.
func (m Model) View() string {
	if !m.value.Present() {
		return ""
	}
	if m.viewport.Height <= 0 {
		return m.renderContent()
	}
	return m.viewport.View()
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

// columns returns the grid width in columns used for focus and layout.
func (m Model) columns() int {
	if n := table.ColumnCount(m.value); n > 0 {
		return n
	}
	if m.value.Present() {
		return 1
	}
	return 0
}

func (m *Model) clampFocus() {
	rows := m.value.Len()
	if rows == 0 {
		m.focus = Focus{}
		return
	}
	cols := m.columns()
	m.focus.Row = clampInt(m.focus.Row, 0, rows)
	m.focus.Col = clampInt(m.focus.Col, 0, cols)
	if m.focus.Row == rows && m.focus.Col == cols {
		m.focus.Col = cols - 1
	}
	if m.focus.Row < rows && m.value.Rows[m.focus.Row].IsHeading() && m.focus.Col > 0 && m.focus.Col < cols {
		m.focus.Col = 0
	}
}

func (m *Model) followFocus() {
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}
	y := m.viewport.YOffset
	if m.focus.Row < y {
		m.viewport.SetYOffset(m.focus.Row)
		return
	}
	if m.focus.Row >= y+h {
		m.viewport.SetYOffset(m.focus.Row - h + 1)
	}
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
