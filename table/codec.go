package table

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// storedRow is the structured-value shape of a row in the host store.
type storedRow struct {
	Type  string   `json:"_type" yaml:"_type"`
	Key   string   `json:"_key" yaml:"_key"`
	Mode  Mode     `json:"mode" yaml:"mode"`
	Cells []string `json:"cells" yaml:"cells"`
}

type storedTable struct {
	Rows []storedRow `json:"rows" yaml:"rows"`
}

func toStored(t Table) *storedTable {
	if !t.Present() {
		return nil
	}
	st := &storedTable{Rows: make([]storedRow, len(t.Rows))}
	for i, r := range t.Rows {
		cells := r.Cells
		if cells == nil {
			cells = []string{}
		}
		st.Rows[i] = storedRow{Type: RowType, Key: r.Key, Mode: r.Mode, Cells: cells}
	}
	return st
}

func fromStored(st *storedTable) Table {
	if st == nil || len(st.Rows) == 0 {
		return Table{}
	}
	rows := make([]Row, len(st.Rows))
	for i, r := range st.Rows {
		mode := r.Mode
		if mode == "" {
			mode = ModeRow
		}
		rows[i] = Row{Key: r.Key, Mode: mode, Cells: append([]string(nil), r.Cells...)}
	}
	return Table{Rows: rows}
}

// MarshalJSON encodes an absent table as null.
func (t Table) MarshalJSON() ([]byte, error) {
	return json.Marshal(toStored(t))
}

// UnmarshalJSON decodes null or an empty rows list as the absent table.
func (t *Table) UnmarshalJSON(data []byte) error {
	var st *storedTable
	if err := json.Unmarshal(data, &st); err != nil {
		return err
	}
	*t = fromStored(st)
	return nil
}

// MarshalYAML mirrors MarshalJSON.
func (t Table) MarshalYAML() (any, error) {
	return toStored(t), nil
}

// UnmarshalYAML mirrors UnmarshalJSON.
func (t *Table) UnmarshalYAML(node *yaml.Node) error {
	var st *storedTable
	if err := node.Decode(&st); err != nil {
		return err
	}
	*t = fromStored(st)
	return nil
}
