package table

import (
	"strconv"

	"github.com/google/uuid"
)

// Outcome classifies the result of a command.
type Outcome uint8

const (
	// Noop means the command was rejected and the value is unchanged.
	Noop Outcome = iota
	// Replaced means Result.Table is the new present value.
	Replaced
	// Cleared means the value is now absent.
	Cleared
)

func (o Outcome) String() string {
	switch o {
	case Noop:
		return "noop"
	case Replaced:
		return "replaced"
	case Cleared:
		return "cleared"
	default:
		return "outcome(" + strconv.Itoa(int(o)) + ")"
	}
}

// Result is the next value produced by a command.
//
// For Noop, Table is the input value. For Cleared, Table is absent.
type Result struct {
	Outcome Outcome
	Table   Table
}

// Changed reports whether the host should commit Result.Table.
func (r Result) Changed() bool { return r.Outcome != Noop }

// Patch returns the host-facing patch for r. ok is false for Noop.
func (r Result) Patch() (p Patch, ok bool) {
	switch r.Outcome {
	case Replaced:
		return Set(r.Table), true
	case Cleared:
		return Unset(), true
	default:
		return Patch{}, false
	}
}

func noop(t Table) Result     { return Result{Outcome: Noop, Table: t} }
func replaced(t Table) Result { return Result{Outcome: Replaced, Table: t} }
func cleared() Result         { return Result{Outcome: Cleared} }

// Editor applies table commands under a fixed set of Options.
//
// Editor holds configuration only; it never retains a table between calls.
type Editor struct {
	opt    Options
	newKey func() string
}

// EditorOption configures an Editor.
type EditorOption func(*Editor)

// WithKeyFunc overrides row key generation. fn must return unique keys.
func WithKeyFunc(fn func() string) EditorOption {
	return func(e *Editor) {
		if fn != nil {
			e.newKey = fn
		}
	}
}

// NewEditor returns an Editor for opt with defaults applied.
func NewEditor(opt Options, opts ...EditorOption) Editor {
	e := Editor{opt: opt.Normalize(), newKey: uuid.NewString}
	for _, o := range opts {
		o(&e)
	}
	return e
}

// Options returns the normalized options.
func (e Editor) Options() Options { return e.opt }

func (e Editor) key() string {
	if e.newKey == nil {
		return uuid.NewString()
	}
	return e.newKey()
}

func (e Editor) buildRow(mode Mode, cells int) Row {
	if mode == "" {
		mode = ModeRow
	}
	return Row{Key: e.key(), Mode: mode, Cells: make([]string, cells)}
}

// Initialize builds a fresh table of InitialRows x InitialColumns empty cells.
func (e Editor) Initialize() Result {
	opt := e.opt.Normalize()
	rows := make([]Row, opt.InitialRows)
	for i := range rows {
		rows[i] = e.buildRow(ModeRow, opt.InitialColumns)
	}
	return replaced(Table{Rows: rows})
}

// UpdateCell replaces the text of exactly one cell.
func (e Editor) UpdateCell(t Table, row, cell int, text string) (Result, error) {
	if !t.Present() {
		return noop(t), &ContractError{Op: "update cell", Err: ErrAbsent}
	}
	cur, ok := t.Cell(row, cell)
	if !ok {
		return noop(t), contractErr("update cell", ErrOutOfRange, "row=%d cell=%d", row, cell)
	}
	if cur == text {
		return noop(t), nil
	}

	next := t.Clone()
	next.Rows[row].Cells[cell] = text
	return replaced(next), nil
}

// AddRow appends a row. An absent table is initialized instead and mode is
// ignored. Heading rows get a single spanning cell.
func (e Editor) AddRow(t Table, mode Mode) Result {
	if !t.Present() {
		return e.Initialize()
	}
	if e.opt.rowsFull(len(t.Rows)) {
		return noop(t)
	}

	cells := 1
	if mode != ModeHeading {
		cells = e.rowWidth(t)
	}
	next := t.Clone()
	next.Rows = append(next.Rows, e.buildRow(mode, cells))
	return replaced(next)
}

// rowWidth is the cell count for a new normal row. A table holding only
// heading rows gets a single column.
func (e Editor) rowWidth(t Table) int {
	if n := ColumnCount(t); n > 0 {
		return n
	}
	return 1
}

// RemoveRow removes the row at index. Removing the last row clears the table.
func (e Editor) RemoveRow(t Table, index int) (Result, error) {
	if !t.Present() {
		return noop(t), &ContractError{Op: "remove row", Err: ErrAbsent}
	}
	if len(t.Rows) <= e.opt.MinRows {
		return noop(t), nil
	}
	if index < 0 || index >= len(t.Rows) {
		return noop(t), contractErr("remove row", ErrOutOfRange, "row=%d rows=%d", index, len(t.Rows))
	}
	if len(t.Rows) == 1 {
		return cleared(), nil
	}

	rows := make([]Row, 0, len(t.Rows)-1)
	for i, r := range t.Rows {
		if i == index {
			continue
		}
		rows = append(rows, r.clone())
	}
	return replaced(Table{Rows: rows}), nil
}

// AddColumn appends an empty cell to every normal row. Heading rows keep
// their single cell. An absent table is initialized instead.
func (e Editor) AddColumn(t Table) Result {
	if !t.Present() {
		return e.Initialize()
	}
	if e.opt.columnsFull(ColumnCount(t)) {
		return noop(t)
	}

	next := t.Clone()
	changed := false
	for i := range next.Rows {
		if next.Rows[i].IsHeading() {
			continue
		}
		next.Rows[i].Cells = append(next.Rows[i].Cells, "")
		changed = true
	}
	if !changed {
		return noop(t)
	}
	return replaced(next)
}

// RemoveColumn removes the cell at index from every row that has one there.
// Heading rows are treated as rows of length 1, so index 0 empties them.
// When the first row is left without cells the table is cleared.
func (e Editor) RemoveColumn(t Table, index int) (Result, error) {
	if !t.Present() {
		return noop(t), &ContractError{Op: "remove column", Err: ErrAbsent}
	}
	cols := ColumnCount(t)
	if cols <= e.opt.MinColumns {
		return noop(t), nil
	}
	if index < 0 || index >= cols {
		return noop(t), contractErr("remove column", ErrOutOfRange, "cell=%d columns=%d", index, cols)
	}

	next := t.Clone()
	for i := range next.Rows {
		cells := next.Rows[i].Cells
		if index >= len(cells) {
			continue
		}
		next.Rows[i].Cells = append(cells[:index:index], cells[index+1:]...)
	}
	if len(next.Rows[0].Cells) == 0 {
		return cleared(), nil
	}
	return replaced(next), nil
}

// Reorder returns t with rows arranged in keys order. keys must be a
// permutation of t's row keys.
func (e Editor) Reorder(t Table, keys []string) (Result, error) {
	if !t.Present() {
		return noop(t), &ContractError{Op: "reorder", Err: ErrAbsent}
	}
	if len(keys) != len(t.Rows) {
		return noop(t), contractErr("reorder", ErrNotPermutation, "got %d keys for %d rows", len(keys), len(t.Rows))
	}

	byKey := make(map[string]int, len(t.Rows))
	for i, r := range t.Rows {
		if _, dup := byKey[r.Key]; dup {
			return noop(t), contractErr("reorder", ErrNotPermutation, "duplicate row key %q", r.Key)
		}
		byKey[r.Key] = i
	}

	rows := make([]Row, 0, len(keys))
	same := true
	for i, k := range keys {
		idx, ok := byKey[k]
		if !ok {
			return noop(t), contractErr("reorder", ErrNotPermutation, "unknown or repeated key %q", k)
		}
		delete(byKey, k)
		if idx != i {
			same = false
		}
		rows = append(rows, t.Rows[idx].clone())
	}
	if same {
		return noop(t), nil
	}
	return replaced(Table{Rows: rows}), nil
}

// MoveRow moves the row at from to position to and delegates to Reorder.
func (e Editor) MoveRow(t Table, from, to int) (Result, error) {
	if !t.Present() {
		return noop(t), &ContractError{Op: "move row", Err: ErrAbsent}
	}
	n := len(t.Rows)
	if from < 0 || from >= n || to < 0 || to >= n {
		return noop(t), contractErr("move row", ErrOutOfRange, "from=%d to=%d rows=%d", from, to, n)
	}
	return e.Reorder(t, MovedKeys(t.Keys(), from, to))
}

// MovedKeys returns a copy of keys with the element at from moved to to.
func MovedKeys(keys []string, from, to int) []string {
	out := append([]string(nil), keys...)
	if from == to || from < 0 || to < 0 || from >= len(out) || to >= len(out) {
		return out
	}
	k := out[from]
	out = append(out[:from], out[from+1:]...)
	out = append(out[:to], append([]string{k}, out[to:]...)...)
	return out
}

// Clear returns the absent value unconditionally.
func (e Editor) Clear(Table) Result { return cleared() }

// CanAddRow reports whether AddRow would append to t.
func (e Editor) CanAddRow(t Table) bool {
	return !t.Present() || !e.opt.rowsFull(len(t.Rows))
}

// CanAddColumn reports whether AddColumn would widen t.
func (e Editor) CanAddColumn(t Table) bool {
	return !t.Present() || !e.opt.columnsFull(ColumnCount(t))
}
