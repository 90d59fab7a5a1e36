package table

// Mode is the row variant.
type Mode string

const (
	ModeRow     Mode = "row"
	ModeHeading Mode = "heading"
)

// RowType is the structured-value type marker written with every row.
const RowType = "tableRow"

// Row is one horizontal unit of the grid.
//
// Key is assigned once at creation and never recomputed from position.
type Row struct {
	Key   string
	Mode  Mode
	Cells []string
}

// IsHeading reports whether r is a heading row.
func (r Row) IsHeading() bool { return r.Mode == ModeHeading }

func (r Row) clone() Row {
	r.Cells = append([]string(nil), r.Cells...)
	return r
}

// Table is the full grid value. The zero Table is absent.
type Table struct {
	Rows []Row
}

// Present reports whether t holds a table. Tables with no rows are never
// produced by this package; they normalize to absent.
func (t Table) Present() bool { return len(t.Rows) > 0 }

// Len returns the number of rows.
func (t Table) Len() int { return len(t.Rows) }

// Cell returns the text at (row, cell) and whether the address exists.
func (t Table) Cell(row, cell int) (string, bool) {
	if row < 0 || row >= len(t.Rows) {
		return "", false
	}
	cells := t.Rows[row].Cells
	if cell < 0 || cell >= len(cells) {
		return "", false
	}
	return cells[cell], true
}

// Keys returns row keys in order.
func (t Table) Keys() []string {
	if len(t.Rows) == 0 {
		return nil
	}
	out := make([]string, len(t.Rows))
	for i, r := range t.Rows {
		out[i] = r.Key
	}
	return out
}

// Clone returns a deep copy of t.
func (t Table) Clone() Table {
	if len(t.Rows) == 0 {
		return Table{}
	}
	rows := make([]Row, len(t.Rows))
	for i, r := range t.Rows {
		rows[i] = r.clone()
	}
	return Table{Rows: rows}
}

// Equal reports whether a and b hold the same rows, keys and cells.
func Equal(a, b Table) bool {
	if len(a.Rows) != len(b.Rows) {
		return false
	}
	for i := range a.Rows {
		ra, rb := a.Rows[i], b.Rows[i]
		if ra.Key != rb.Key || ra.Mode != rb.Mode || len(ra.Cells) != len(rb.Cells) {
			return false
		}
		for j := range ra.Cells {
			if ra.Cells[j] != rb.Cells[j] {
				return false
			}
		}
	}
	return true
}

// ColumnCount returns the cell count of the first row-mode row.
// Heading rows are skipped. Returns 0 for an absent table.
func ColumnCount(t Table) int {
	for _, r := range t.Rows {
		if r.Mode == ModeRow {
			return len(r.Cells)
		}
	}
	return 0
}
