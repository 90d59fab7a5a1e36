package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions_Normalize(t *testing.T) {
	got := Options{InitialRows: 0, InitialColumns: -2, MinRows: -1, MaxColumns: -5}.Normalize()
	assert.Equal(t, 1, got.InitialRows)
	assert.Equal(t, 1, got.InitialColumns)
	assert.Equal(t, 0, got.MinRows)
	assert.Equal(t, 0, got.MaxColumns)
}

func TestOptions_Validate(t *testing.T) {
	cases := []struct {
		name  string
		opt   Options
		field string
	}{
		{name: "zero value", opt: Options{}},
		{name: "bounded", opt: Options{MinRows: 1, MaxRows: 3, MinColumns: 1, MaxColumns: 3, InitialRows: 2, InitialColumns: 3}},
		{name: "negative", opt: Options{MaxRows: -1}, field: "max_rows"},
		{name: "inverted rows", opt: Options{MinRows: 4, MaxRows: 2}, field: "min_rows"},
		{name: "inverted columns", opt: Options{MinColumns: 4, MaxColumns: 2}, field: "min_columns"},
		{name: "initial rows above max", opt: Options{InitialRows: 5, MaxRows: 2}, field: "initial_rows"},
		{name: "initial columns above max", opt: Options{InitialColumns: 5, MaxColumns: 2}, field: "initial_columns"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.opt.Validate()
			if tc.field == "" {
				assert.NoError(t, err)
				return
			}
			var oe *OptionsError
			require.ErrorAs(t, err, &oe)
			assert.Equal(t, tc.field, oe.Field)
		})
	}
}

func TestEditor_OptionsAreNormalized(t *testing.T) {
	ed := NewEditor(Options{InitialRows: -3})
	assert.Equal(t, 1, ed.Options().InitialRows)
}
