package table

import "fmt"

// CommandKind identifies a table command.
type CommandKind uint8

const (
	CmdInitialize CommandKind = iota
	CmdUpdateCell
	CmdAddRow
	CmdRemoveRow
	CmdAddColumn
	CmdRemoveColumn
	CmdReorder
	CmdMoveRow
	CmdClear
)

var commandNames = [...]string{
	CmdInitialize:   "initialize",
	CmdUpdateCell:   "update-cell",
	CmdAddRow:       "add-row",
	CmdRemoveRow:    "remove-row",
	CmdAddColumn:    "add-column",
	CmdRemoveColumn: "remove-column",
	CmdReorder:      "reorder",
	CmdMoveRow:      "move-row",
	CmdClear:        "clear",
}

func (k CommandKind) String() string {
	if int(k) < len(commandNames) {
		return commandNames[k]
	}
	return fmt.Sprintf("command(%d)", uint8(k))
}

// Command is a discrete request produced by a gesture.
//
// Only the fields relevant to Kind are read:
//   - CmdUpdateCell: Row, Cell, Text
//   - CmdAddRow: Mode
//   - CmdRemoveRow: Row
//   - CmdRemoveColumn: Cell
//   - CmdReorder: Keys
//   - CmdMoveRow: Row (from), To
type Command struct {
	Kind CommandKind
	Row  int
	Cell int
	To   int
	Text string
	Mode Mode
	Keys []string
}

func (c Command) String() string {
	switch c.Kind {
	case CmdUpdateCell:
		return fmt.Sprintf("%s(%d,%d)", c.Kind, c.Row, c.Cell)
	case CmdAddRow:
		if c.Mode == ModeHeading {
			return fmt.Sprintf("%s(%s)", c.Kind, c.Mode)
		}
	case CmdRemoveRow:
		return fmt.Sprintf("%s(%d)", c.Kind, c.Row)
	case CmdRemoveColumn:
		return fmt.Sprintf("%s(%d)", c.Kind, c.Cell)
	case CmdMoveRow:
		return fmt.Sprintf("%s(%d->%d)", c.Kind, c.Row, c.To)
	}
	return c.Kind.String()
}

// Apply dispatches c against t.
func (e Editor) Apply(t Table, c Command) (Result, error) {
	switch c.Kind {
	case CmdInitialize:
		if t.Present() {
			return noop(t), nil
		}
		return e.Initialize(), nil
	case CmdUpdateCell:
		return e.UpdateCell(t, c.Row, c.Cell, c.Text)
	case CmdAddRow:
		return e.AddRow(t, c.Mode), nil
	case CmdRemoveRow:
		return e.RemoveRow(t, c.Row)
	case CmdAddColumn:
		return e.AddColumn(t), nil
	case CmdRemoveColumn:
		return e.RemoveColumn(t, c.Cell)
	case CmdReorder:
		return e.Reorder(t, c.Keys)
	case CmdMoveRow:
		return e.MoveRow(t, c.Row, c.To)
	case CmdClear:
		return e.Clear(t), nil
	default:
		return noop(t), fmt.Errorf("apply: unknown command %s", c.Kind)
	}
}
