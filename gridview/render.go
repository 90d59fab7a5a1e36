package gridview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/tablefield/internal/grapheme"
)

func (m *Model) renderContent() string {
	if !m.value.Present() {
		return ""
	}

	st := m.cfg.Style
	l := m.layout()
	handle, remover, sep := st.glyphs()
	cols := len(l.widths)

	out := make([]string, 0, m.value.Len()+1)
	for r, row := range m.value.Rows {
		var sb strings.Builder

		if !m.cfg.DisableReorder {
			hs := st.Handle
			switch {
			case m.drag.active && m.drag.from == r:
				hs = st.HandleDrag
			case m.drag.active && m.drag.over == r:
				hs = st.DropTarget
			}
			sb.WriteString(hs.Render(grapheme.Fit(handle, l.handleW)))
		}

		if row.IsHeading() {
			text := ""
			if len(row.Cells) > 0 {
				text = row.Cells[0]
			}
			sb.WriteString(m.renderCell(r, 0, text, l.spanW, st.Heading))
		} else {
			for c, w := range l.widths {
				if c > 0 {
					sb.WriteString(st.Separator.Render(sep))
				}
				text := ""
				if c < len(row.Cells) {
					text = row.Cells[c]
				}
				sb.WriteString(m.renderCell(r, c, text, w, st.Cell))
			}
		}

		sb.WriteByte(' ')
		sb.WriteString(m.removerStyle(r, cols).Render(remover))
		out = append(out, sb.String())
	}

	rows := m.value.Len()
	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", l.handleW))
	for c, w := range l.widths {
		if c > 0 {
			sb.WriteString(strings.Repeat(" ", l.sepW))
		}
		sb.WriteString(m.removerStyle(rows, c).Render(grapheme.Center(remover, w)))
	}
	out = append(out, sb.String())

	return strings.Join(out, "\n")
}

func (m *Model) renderCell(row, col int, text string, width int, base lipgloss.Style) string {
	focused := m.focused && m.focus.Row == row && m.focus.Col == col
	if focused && m.editing {
		return lipgloss.PlaceHorizontal(width, lipgloss.Left, m.input.View())
	}

	s := base
	if m.cfg.HighlightFirstRow && row == 0 {
		s = m.cfg.Style.FirstRow
	}
	if focused {
		s = m.cfg.Style.CellFocused
	}
	return s.Render(grapheme.Fit(grapheme.Flatten(text), width))
}

func (m *Model) removerStyle(row, col int) lipgloss.Style {
	if m.focused && m.focus.Row == row && m.focus.Col == col {
		return m.cfg.Style.RemoverFocused
	}
	return m.cfg.Style.Remover
}
