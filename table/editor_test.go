package table

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seqKeys() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("k%d", n)
	}
}

func newTestEditor(opt Options) Editor {
	return NewEditor(opt, WithKeyFunc(seqKeys()))
}

func cells(t Table) [][]string {
	out := make([][]string, len(t.Rows))
	for i, r := range t.Rows {
		out[i] = append([]string{}, r.Cells...)
	}
	return out
}

func TestInitialize_Defaults(t *testing.T) {
	res := NewEditor(Options{}).Initialize()
	require.Equal(t, Replaced, res.Outcome)
	require.Len(t, res.Table.Rows, 1)
	assert.Equal(t, ModeRow, res.Table.Rows[0].Mode)
	assert.Equal(t, []string{""}, res.Table.Rows[0].Cells)
	assert.NotEmpty(t, res.Table.Rows[0].Key)
}

func TestInitialize_SizeAndDistinctKeys(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{{1, 1}, {2, 3}, {4, 1}, {3, 5}} {
		t.Run(fmt.Sprintf("%dx%d", tc.rows, tc.cols), func(t *testing.T) {
			ed := NewEditor(Options{InitialRows: tc.rows, InitialColumns: tc.cols, MaxRows: 10, MaxColumns: 10})
			tbl := ed.Initialize().Table

			require.Len(t, tbl.Rows, tc.rows)
			seen := map[string]bool{}
			for _, r := range tbl.Rows {
				assert.Equal(t, ModeRow, r.Mode)
				require.Len(t, r.Cells, tc.cols)
				for _, c := range r.Cells {
					assert.Equal(t, "", c)
				}
				assert.False(t, seen[r.Key], "duplicate key %q", r.Key)
				seen[r.Key] = true
			}
			assert.NoError(t, Validate(tbl))
		})
	}
}

func TestUpdateCell(t *testing.T) {
	ed := newTestEditor(Options{InitialRows: 2, InitialColumns: 2})
	orig := ed.Initialize().Table

	res, err := ed.UpdateCell(orig, 1, 0, "hello")
	require.NoError(t, err)
	require.Equal(t, Replaced, res.Outcome)
	assert.Equal(t, [][]string{{"", ""}, {"hello", ""}}, cells(res.Table))
	assert.Equal(t, [][]string{{"", ""}, {"", ""}}, cells(orig), "input must not be mutated")
	assert.Equal(t, orig.Keys(), res.Table.Keys())
}

func TestUpdateCell_SingleCell(t *testing.T) {
	ed := newTestEditor(Options{})
	tbl := ed.Initialize().Table

	res, err := ed.UpdateCell(tbl, 0, 0, "hello")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"hello"}}, cells(res.Table))
}

func TestUpdateCell_SameTextIsNoop(t *testing.T) {
	ed := newTestEditor(Options{})
	tbl := ed.Initialize().Table

	res, err := ed.UpdateCell(tbl, 0, 0, "")
	require.NoError(t, err)
	assert.Equal(t, Noop, res.Outcome)
	assert.False(t, res.Changed())
}

func TestUpdateCell_ContractViolations(t *testing.T) {
	ed := newTestEditor(Options{})
	tbl := ed.Initialize().Table

	_, err := ed.UpdateCell(tbl, 1, 0, "x")
	require.ErrorIs(t, err, ErrOutOfRange)
	var ce *ContractError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "update cell", ce.Op)

	_, err = ed.UpdateCell(tbl, 0, -1, "x")
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = ed.UpdateCell(Table{}, 0, 0, "x")
	assert.ErrorIs(t, err, ErrAbsent)
}

func TestAddRow_AbsentInitializesAndIgnoresMode(t *testing.T) {
	ed := newTestEditor(Options{InitialRows: 2, InitialColumns: 3})
	res := ed.AddRow(Table{}, ModeHeading)
	require.Equal(t, Replaced, res.Outcome)
	require.Len(t, res.Table.Rows, 2)
	for _, r := range res.Table.Rows {
		assert.Equal(t, ModeRow, r.Mode)
		assert.Len(t, r.Cells, 3)
	}
}

func TestAddRow_NormalAndHeading(t *testing.T) {
	ed := newTestEditor(Options{InitialColumns: 3})
	tbl := ed.Initialize().Table

	tbl = ed.AddRow(tbl, ModeRow).Table
	tbl = ed.AddRow(tbl, ModeHeading).Table

	require.Len(t, tbl.Rows, 3)
	assert.Len(t, tbl.Rows[1].Cells, 3)
	assert.Equal(t, ModeHeading, tbl.Rows[2].Mode)
	assert.Equal(t, []string{""}, tbl.Rows[2].Cells)
	assert.Equal(t, []string{"k1", "k2", "k3"}, tbl.Keys())
}

func TestAddRow_WidthSkipsLeadingHeading(t *testing.T) {
	ed := newTestEditor(Options{InitialColumns: 3})
	tbl := ed.Initialize().Table
	tbl = ed.AddRow(tbl, ModeHeading).Table
	moved, err := ed.MoveRow(tbl, 1, 0)
	require.NoError(t, err)
	require.True(t, moved.Table.Rows[0].IsHeading())

	res := ed.AddRow(moved.Table, ModeRow)
	assert.Len(t, res.Table.Rows[2].Cells, 3)
	assert.NoError(t, Validate(res.Table))
}

func TestAddRow_MaxRows(t *testing.T) {
	ed := newTestEditor(Options{MaxRows: 3})
	tbl := ed.Initialize().Table
	for i := 0; i < 5; i++ {
		tbl = ed.AddRow(tbl, ModeRow).Table
	}
	assert.Len(t, tbl.Rows, 3)

	res := ed.AddRow(tbl, ModeRow)
	assert.Equal(t, Noop, res.Outcome)
	assert.True(t, Equal(tbl, res.Table))
	assert.False(t, ed.CanAddRow(tbl))

	res = ed.AddRow(tbl, ModeHeading)
	assert.Equal(t, Noop, res.Outcome)
}

func TestRemoveRow(t *testing.T) {
	ed := newTestEditor(Options{InitialRows: 3, InitialColumns: 1})
	tbl := ed.Initialize().Table

	res, err := ed.RemoveRow(tbl, 1)
	require.NoError(t, err)
	require.Equal(t, Replaced, res.Outcome)
	assert.Equal(t, []string{"k1", "k3"}, res.Table.Keys())
	assert.Len(t, tbl.Rows, 3, "input must not be mutated")
}

func TestRemoveRow_MinRows(t *testing.T) {
	ed := newTestEditor(Options{InitialRows: 2, MinRows: 2})
	tbl := ed.Initialize().Table

	res, err := ed.RemoveRow(tbl, 0)
	require.NoError(t, err)
	assert.Equal(t, Noop, res.Outcome)
	assert.Len(t, res.Table.Rows, 2)
}

func TestRemoveRow_LastRowClears(t *testing.T) {
	ed := newTestEditor(Options{})
	tbl := ed.Initialize().Table

	res, err := ed.RemoveRow(tbl, 0)
	require.NoError(t, err)
	assert.Equal(t, Cleared, res.Outcome)
	assert.False(t, res.Table.Present())
	assert.Nil(t, res.Table.Rows)

	p, ok := res.Patch()
	require.True(t, ok)
	assert.Equal(t, PatchUnset, p.Type)
}

func TestRemoveRow_BadIndex(t *testing.T) {
	ed := newTestEditor(Options{InitialRows: 2})
	tbl := ed.Initialize().Table

	_, err := ed.RemoveRow(tbl, 2)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = ed.RemoveRow(Table{}, 0)
	assert.ErrorIs(t, err, ErrAbsent)
}

func TestAddColumn_SkipsHeadings(t *testing.T) {
	ed := newTestEditor(Options{InitialColumns: 2})
	tbl := ed.Initialize().Table
	tbl = ed.AddRow(tbl, ModeHeading).Table

	res := ed.AddColumn(tbl)
	require.Equal(t, Replaced, res.Outcome)
	assert.Equal(t, [][]string{{"", "", ""}, {""}}, cells(res.Table))
	assert.Equal(t, 3, ColumnCount(res.Table))
}

func TestAddColumn_AbsentInitializes(t *testing.T) {
	ed := newTestEditor(Options{InitialColumns: 2})
	res := ed.AddColumn(Table{})
	require.Equal(t, Replaced, res.Outcome)
	assert.Equal(t, [][]string{{"", ""}}, cells(res.Table))
}

func TestAddColumn_MaxColumns(t *testing.T) {
	ed := newTestEditor(Options{MaxColumns: 2})
	tbl := ed.Initialize().Table
	for i := 0; i < 4; i++ {
		tbl = ed.AddColumn(tbl).Table
	}
	assert.Equal(t, 2, ColumnCount(tbl))
	assert.Equal(t, Noop, ed.AddColumn(tbl).Outcome)
	assert.False(t, ed.CanAddColumn(tbl))
}

func TestRemoveColumn(t *testing.T) {
	ed := newTestEditor(Options{InitialRows: 2, InitialColumns: 3})
	tbl := ed.Initialize().Table
	for r := 0; r < 2; r++ {
		for c := 0; c < 3; c++ {
			res, err := ed.UpdateCell(tbl, r, c, fmt.Sprintf("%d%d", r, c))
			require.NoError(t, err)
			tbl = res.Table
		}
	}

	res, err := ed.RemoveColumn(tbl, 1)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"00", "02"}, {"10", "12"}}, cells(res.Table))
	assert.Equal(t, [][]string{{"00", "01", "02"}, {"10", "11", "12"}}, cells(tbl), "input must not be mutated")
}

func TestRemoveColumn_MinColumns(t *testing.T) {
	ed := newTestEditor(Options{InitialColumns: 2, MinColumns: 2})
	tbl := ed.Initialize().Table

	res, err := ed.RemoveColumn(tbl, 0)
	require.NoError(t, err)
	assert.Equal(t, Noop, res.Outcome)
}

func TestRemoveColumn_LastColumnClears(t *testing.T) {
	ed := newTestEditor(Options{InitialRows: 3})
	tbl := ed.Initialize().Table

	res, err := ed.RemoveColumn(tbl, 0)
	require.NoError(t, err)
	assert.Equal(t, Cleared, res.Outcome)
	assert.False(t, res.Table.Present())
}

func TestRemoveColumn_HeadingOnlyLosesIndexZero(t *testing.T) {
	ed := newTestEditor(Options{InitialColumns: 3})
	tbl := ed.Initialize().Table
	tbl = ed.AddRow(tbl, ModeHeading).Table
	res, err := ed.UpdateCell(tbl, 1, 0, "title")
	require.NoError(t, err)
	tbl = res.Table

	res, err = ed.RemoveColumn(tbl, 2)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"", ""}, {"title"}}, cells(res.Table))

	res, err = ed.RemoveColumn(res.Table, 0)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{""}, {}}, cells(res.Table))
}

func TestRemoveColumn_LeadingHeadingEmptiedClears(t *testing.T) {
	ed := newTestEditor(Options{InitialColumns: 2})
	tbl := ed.Initialize().Table
	tbl = ed.AddRow(tbl, ModeHeading).Table
	res, err := ed.MoveRow(tbl, 1, 0)
	require.NoError(t, err)
	tbl = res.Table
	require.Equal(t, ModeHeading, tbl.Rows[0].Mode)

	res, err = ed.RemoveColumn(tbl, 0)
	require.NoError(t, err)
	assert.Equal(t, Cleared, res.Outcome)
	assert.False(t, res.Table.Present())
}

func TestRemoveColumn_LeadingHeadingKeptForOtherIndex(t *testing.T) {
	ed := newTestEditor(Options{InitialColumns: 2})
	tbl := ed.Initialize().Table
	tbl = ed.AddRow(tbl, ModeHeading).Table
	res, err := ed.MoveRow(tbl, 1, 0)
	require.NoError(t, err)

	res, err = ed.RemoveColumn(res.Table, 1)
	require.NoError(t, err)
	assert.Equal(t, Replaced, res.Outcome)
	assert.Equal(t, [][]string{{""}, {""}}, cells(res.Table))
}

func TestRemoveColumn_BadIndex(t *testing.T) {
	ed := newTestEditor(Options{InitialColumns: 2})
	tbl := ed.Initialize().Table

	_, err := ed.RemoveColumn(tbl, 2)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = ed.RemoveColumn(Table{}, 0)
	assert.ErrorIs(t, err, ErrAbsent)
}

func TestReorder_PreservesKeysAndCells(t *testing.T) {
	ed := NewEditor(Options{InitialRows: 3, InitialColumns: 2}, WithKeyFunc(func() func() string {
		keys := []string{"A", "B", "C"}
		i := 0
		return func() string { k := keys[i]; i++; return k }
	}()))
	tbl := ed.Initialize().Table
	for i, k := range []string{"A", "B", "C"} {
		res, err := ed.UpdateCell(tbl, i, 0, k+"0")
		require.NoError(t, err)
		tbl = res.Table
	}
	byKey := map[string][]string{}
	for _, r := range tbl.Rows {
		byKey[r.Key] = r.Cells
	}

	res, err := ed.Reorder(tbl, []string{"C", "A", "B"})
	require.NoError(t, err)
	require.Equal(t, Replaced, res.Outcome)
	assert.Equal(t, []string{"C", "A", "B"}, res.Table.Keys())
	for _, r := range res.Table.Rows {
		assert.Equal(t, byKey[r.Key], r.Cells)
	}
	assert.Equal(t, []string{"A", "B", "C"}, tbl.Keys(), "input must not be mutated")
}

func TestReorder_SameOrderIsNoop(t *testing.T) {
	ed := newTestEditor(Options{InitialRows: 2})
	tbl := ed.Initialize().Table

	res, err := ed.Reorder(tbl, tbl.Keys())
	require.NoError(t, err)
	assert.Equal(t, Noop, res.Outcome)
}

func TestReorder_RejectsNonPermutation(t *testing.T) {
	ed := newTestEditor(Options{InitialRows: 3})
	tbl := ed.Initialize().Table

	for _, keys := range [][]string{
		{"k1", "k2"},
		{"k1", "k2", "k2"},
		{"k1", "k2", "zz"},
		{"k1", "k2", "k3", "k4"},
	} {
		_, err := ed.Reorder(tbl, keys)
		assert.ErrorIs(t, err, ErrNotPermutation, "keys=%v", keys)
	}
}

func TestMoveRow(t *testing.T) {
	ed := newTestEditor(Options{InitialRows: 4})
	tbl := ed.Initialize().Table

	res, err := ed.MoveRow(tbl, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"k2", "k3", "k1", "k4"}, res.Table.Keys())

	res, err = ed.MoveRow(tbl, 3, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"k4", "k1", "k2", "k3"}, res.Table.Keys())

	_, err = ed.MoveRow(tbl, 0, 4)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestClear(t *testing.T) {
	ed := newTestEditor(Options{})
	tbl := ed.Initialize().Table

	res := ed.Clear(tbl)
	assert.Equal(t, Cleared, res.Outcome)
	assert.False(t, res.Table.Present())
	assert.Equal(t, Cleared, ed.Clear(Table{}).Outcome)
}

func TestColumnCount(t *testing.T) {
	assert.Equal(t, 0, ColumnCount(Table{}))
	assert.Equal(t, 0, ColumnCount(Table{Rows: []Row{{Key: "h", Mode: ModeHeading, Cells: []string{""}}}}))
	assert.Equal(t, 2, ColumnCount(Table{Rows: []Row{
		{Key: "h", Mode: ModeHeading, Cells: []string{""}},
		{Key: "r", Mode: ModeRow, Cells: []string{"", ""}},
	}}))
}

// Absent table, bounds 1..3 both ways: create, widen, add a heading, then
// drop column 0, which also empties the heading row.
func TestScenario_HeadingRowLosesCellOnRemoveColumn(t *testing.T) {
	ed := newTestEditor(Options{MinRows: 1, MaxRows: 3, MinColumns: 1, MaxColumns: 3, InitialRows: 1, InitialColumns: 1})

	var tbl Table
	res := ed.AddRow(tbl, ModeRow)
	require.Equal(t, Replaced, res.Outcome)
	tbl = res.Table
	assert.Equal(t, [][]string{{""}}, cells(tbl))

	tbl = ed.AddColumn(tbl).Table
	assert.Equal(t, [][]string{{"", ""}}, cells(tbl))

	tbl = ed.AddRow(tbl, ModeHeading).Table
	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, []string{"", ""}, tbl.Rows[0].Cells)
	assert.Equal(t, ModeHeading, tbl.Rows[1].Mode)
	assert.Equal(t, []string{""}, tbl.Rows[1].Cells)

	res, err := ed.RemoveColumn(tbl, 0)
	require.NoError(t, err)
	require.Equal(t, Replaced, res.Outcome)
	assert.True(t, res.Table.Present())
	assert.Equal(t, []string{""}, res.Table.Rows[0].Cells)
	assert.Equal(t, ModeHeading, res.Table.Rows[1].Mode)
	assert.Empty(t, res.Table.Rows[1].Cells)
	assert.NoError(t, Validate(res.Table))

	// At MinColumns now: further removal is rejected.
	res, err = ed.RemoveColumn(res.Table, 0)
	require.NoError(t, err)
	assert.Equal(t, Noop, res.Outcome)
}

func TestMovedKeys(t *testing.T) {
	keys := []string{"a", "b", "c", "d"}
	assert.Equal(t, []string{"b", "c", "a", "d"}, MovedKeys(keys, 0, 2))
	assert.Equal(t, []string{"d", "a", "b", "c"}, MovedKeys(keys, 3, 0))
	assert.Equal(t, keys, MovedKeys(keys, 1, 1))
	assert.Equal(t, []string{"a", "b", "c", "d"}, keys)
}
