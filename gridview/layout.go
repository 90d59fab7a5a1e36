package gridview

import (
	"github.com/iw2rmb/tablefield/internal/grapheme"
	"github.com/iw2rmb/tablefield/table"
)

// zone identifies what a screen cell hits.
type zone uint8

const (
	zoneNone zone = iota
	zoneHandle
	zoneCell
	zoneRowRemover
	zoneColRemover
)

type hit struct {
	zone zone
	row  int
	col  int
}

// gridLayout holds horizontal geometry shared by rendering and hit-testing.
//
// A grid line is: handle, then cells separated by sep, then " " and the
// row remover. Heading rows replace the cells with one spanning cell.
type gridLayout struct {
	handleW  int
	sepW     int
	removerW int
	widths   []int
	// starts[i] is the x of column i.
	starts []int
	// spanW is the width of a heading cell.
	spanW int
	// removerX is the x of the row remover.
	removerX int
}

func (m Model) layout() gridLayout {
	handle, remover, sep := m.cfg.Style.glyphs()
	l := gridLayout{
		sepW:     grapheme.Width(sep),
		removerW: grapheme.Width(remover),
	}
	if !m.cfg.DisableReorder {
		l.handleW = grapheme.Width(handle) + 1
	}

	l.widths = columnWidths(m.value, m.columns(), m.cfg.MinCellWidth, m.cfg.MaxCellWidth)
	x := l.handleW
	l.starts = make([]int, len(l.widths))
	for i, w := range l.widths {
		if i > 0 {
			x += l.sepW
		}
		l.starts[i] = x
		x += w
	}
	l.spanW = x - l.handleW
	l.removerX = x + 1
	return l
}

// columnWidths sizes each column to its widest normal-row cell within
// [minW, maxW].
func columnWidths(t table.Table, cols, minW, maxW int) []int {
	widths := make([]int, cols)
	for i := range widths {
		widths[i] = minW
	}
	for _, r := range t.Rows {
		if r.IsHeading() {
			continue
		}
		for i, c := range r.Cells {
			if i >= cols {
				break
			}
			w := grapheme.Width(grapheme.Flatten(c)) + 1
			if w > widths[i] {
				widths[i] = w
			}
		}
	}
	for i := range widths {
		if widths[i] > maxW {
			widths[i] = maxW
		}
	}
	return widths
}

// hitTest maps content coordinates (line index, x) to a grid zone.
func (m Model) hitTest(x, line int) hit {
	rows := m.value.Len()
	if rows == 0 || x < 0 || line < 0 || line > rows {
		return hit{}
	}
	l := m.layout()

	if line == rows {
		for i, start := range l.starts {
			if x >= start && x < start+l.widths[i] {
				return hit{zone: zoneColRemover, row: rows, col: i}
			}
		}
		return hit{}
	}

	if x < l.handleW {
		return hit{zone: zoneHandle, row: line}
	}
	if x >= l.removerX && x < l.removerX+l.removerW {
		return hit{zone: zoneRowRemover, row: line, col: len(l.widths)}
	}
	if m.value.Rows[line].IsHeading() {
		if x < l.handleW+l.spanW {
			return hit{zone: zoneCell, row: line, col: 0}
		}
		return hit{}
	}
	for i, start := range l.starts {
		if x >= start && x < start+l.widths[i] {
			return hit{zone: zoneCell, row: line, col: i}
		}
	}
	return hit{}
}
