package table

import "fmt"

// Options configures table bounds and presentation.
//
// Zero values are meaningful: InitialRows/InitialColumns default to 1,
// Min* default to 0 and Max* of 0 means no limit.
type Options struct {
	// AllowHeadings lets the host offer heading rows.
	AllowHeadings bool `yaml:"allow_headings,omitempty" json:"allowHeadings,omitempty"`

	// Presentation only.
	Collapsible       bool `yaml:"collapsible,omitempty" json:"collapsible,omitempty"`
	Collapsed         bool `yaml:"collapsed,omitempty" json:"collapsed,omitempty"`
	HighlightFirstRow bool `yaml:"highlight_first_row,omitempty" json:"highlightFirstRow,omitempty"`

	InitialRows    int `yaml:"initial_rows,omitempty" json:"initialRows,omitempty"`
	InitialColumns int `yaml:"initial_columns,omitempty" json:"initialColumns,omitempty"`

	MinRows    int `yaml:"min_rows,omitempty" json:"minRows,omitempty"`
	MinColumns int `yaml:"min_columns,omitempty" json:"minColumns,omitempty"`

	MaxRows    int `yaml:"max_rows,omitempty" json:"maxRows,omitempty"`
	MaxColumns int `yaml:"max_columns,omitempty" json:"maxColumns,omitempty"`
}

// OptionsError reports an invalid Options field.
type OptionsError struct {
	Field   string
	Message string
}

func (e *OptionsError) Error() string {
	return fmt.Sprintf("table options: %s: %s", e.Field, e.Message)
}

// Normalize returns o with defaults applied.
func (o Options) Normalize() Options {
	if o.InitialRows < 1 {
		o.InitialRows = 1
	}
	if o.InitialColumns < 1 {
		o.InitialColumns = 1
	}
	if o.MinRows < 0 {
		o.MinRows = 0
	}
	if o.MinColumns < 0 {
		o.MinColumns = 0
	}
	if o.MaxRows < 0 {
		o.MaxRows = 0
	}
	if o.MaxColumns < 0 {
		o.MaxColumns = 0
	}
	return o
}

// Validate rejects negative bounds and bounds that exclude the initial size.
func (o Options) Validate() error {
	for _, f := range []struct {
		name string
		v    int
	}{
		{"initial_rows", o.InitialRows},
		{"initial_columns", o.InitialColumns},
		{"min_rows", o.MinRows},
		{"min_columns", o.MinColumns},
		{"max_rows", o.MaxRows},
		{"max_columns", o.MaxColumns},
	} {
		if f.v < 0 {
			return &OptionsError{Field: f.name, Message: fmt.Sprintf("must be >= 0, got %d", f.v)}
		}
	}

	n := o.Normalize()
	if n.MaxRows > 0 && n.MinRows > n.MaxRows {
		return &OptionsError{Field: "min_rows", Message: fmt.Sprintf("%d exceeds max_rows %d", n.MinRows, n.MaxRows)}
	}
	if n.MaxColumns > 0 && n.MinColumns > n.MaxColumns {
		return &OptionsError{Field: "min_columns", Message: fmt.Sprintf("%d exceeds max_columns %d", n.MinColumns, n.MaxColumns)}
	}
	if n.MaxRows > 0 && n.InitialRows > n.MaxRows {
		return &OptionsError{Field: "initial_rows", Message: fmt.Sprintf("%d exceeds max_rows %d", n.InitialRows, n.MaxRows)}
	}
	if n.MaxColumns > 0 && n.InitialColumns > n.MaxColumns {
		return &OptionsError{Field: "initial_columns", Message: fmt.Sprintf("%d exceeds max_columns %d", n.InitialColumns, n.MaxColumns)}
	}
	return nil
}

func (o Options) rowsFull(n int) bool {
	return o.MaxRows > 0 && n >= o.MaxRows
}

func (o Options) columnsFull(n int) bool {
	return o.MaxColumns > 0 && n >= o.MaxColumns
}
