package table

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleTable() Table {
	return Table{Rows: []Row{
		{Key: "a", Mode: ModeRow, Cells: []string{"x", "y"}},
		{Key: "b", Mode: ModeHeading, Cells: []string{"title"}},
	}}
}

func TestTable_MarshalJSONShape(t *testing.T) {
	data, err := json.Marshal(sampleTable())
	require.NoError(t, err)
	assert.JSONEq(t, `{"rows":[
		{"_type":"tableRow","_key":"a","mode":"row","cells":["x","y"]},
		{"_type":"tableRow","_key":"b","mode":"heading","cells":["title"]}
	]}`, string(data))
}

func TestTable_AbsentIsNull(t *testing.T) {
	data, err := json.Marshal(Table{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))

	for _, in := range []string{`null`, `{"rows":[]}`, `{}`} {
		tbl := sampleTable()
		require.NoError(t, json.Unmarshal([]byte(in), &tbl))
		assert.False(t, tbl.Present(), "input %s", in)
	}
}

func TestTable_UnmarshalDefaultsMode(t *testing.T) {
	var tbl Table
	require.NoError(t, json.Unmarshal([]byte(`{"rows":[{"_key":"a","cells":["1"]}]}`), &tbl))
	require.Len(t, tbl.Rows, 1)
	assert.Equal(t, ModeRow, tbl.Rows[0].Mode)
}

func TestTable_EmptyHeadingEncodesEmptyCells(t *testing.T) {
	tbl := Table{Rows: []Row{
		{Key: "a", Mode: ModeRow, Cells: []string{""}},
		{Key: "b", Mode: ModeHeading},
	}}
	data, err := json.Marshal(tbl)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"cells":[]`)
}

func TestTable_YAML(t *testing.T) {
	data, err := yaml.Marshal(sampleTable())
	require.NoError(t, err)
	assert.Contains(t, string(data), "_type: tableRow")

	var got Table
	require.NoError(t, yaml.Unmarshal(data, &got))
	assert.True(t, Equal(sampleTable(), got))
}

func TestPatch_JSON(t *testing.T) {
	data, err := json.Marshal(Set(sampleTable()))
	require.NoError(t, err)

	var p Patch
	require.NoError(t, json.Unmarshal(data, &p))
	assert.Equal(t, PatchSet, p.Type)
	assert.True(t, Equal(sampleTable(), p.Apply()))

	data, err = json.Marshal(Unset())
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"unset"}`, string(data))
	require.NoError(t, json.Unmarshal(data, &p))
	assert.False(t, p.Apply().Present())

	assert.Error(t, json.Unmarshal([]byte(`{"type":"merge"}`), &p))
}

func TestSet_CopiesValue(t *testing.T) {
	tbl := sampleTable()
	p := Set(tbl)
	tbl.Rows[0].Cells[0] = "changed"
	assert.Equal(t, "x", p.Value.Rows[0].Cells[0])
}
