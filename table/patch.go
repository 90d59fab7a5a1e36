package table

import (
	"encoding/json"
	"fmt"
)

// PatchType is the kind of committed-value notification.
type PatchType string

const (
	PatchSet   PatchType = "set"
	PatchUnset PatchType = "unset"
)

// Patch is the full replacement value emitted to the host after a command.
// It is never an incremental edit.
type Patch struct {
	Type  PatchType
	Value Table
}

// Set returns a patch replacing the host value with t.
func Set(t Table) Patch { return Patch{Type: PatchSet, Value: t.Clone()} }

// Unset returns a patch clearing the host value.
func Unset() Patch { return Patch{Type: PatchUnset} }

// Apply returns the value after p is committed.
func (p Patch) Apply() Table {
	if p.Type == PatchSet {
		return p.Value
	}
	return Table{}
}

func (p Patch) String() string {
	if p.Type == PatchSet {
		return fmt.Sprintf("set(%d rows)", p.Value.Len())
	}
	return string(p.Type)
}

type patchJSON struct {
	Type  PatchType `json:"type"`
	Value *Table    `json:"value,omitempty"`
}

func (p Patch) MarshalJSON() ([]byte, error) {
	out := patchJSON{Type: p.Type}
	if p.Type == PatchSet {
		v := p.Value
		out.Value = &v
	}
	return json.Marshal(out)
}

func (p *Patch) UnmarshalJSON(data []byte) error {
	var in patchJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	switch in.Type {
	case PatchSet:
		*p = Patch{Type: PatchSet}
		if in.Value != nil {
			p.Value = *in.Value
		}
	case PatchUnset:
		*p = Unset()
	default:
		return fmt.Errorf("patch: unknown type %q", in.Type)
	}
	return nil
}
