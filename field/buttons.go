package field

import "github.com/iw2rmb/tablefield/table"

// Action identifies a button bar action.
type Action uint8

const (
	ActionNewTable Action = iota
	ActionAddRow
	ActionAddHeading
	ActionAddColumn
	ActionClear
)

func (a Action) String() string {
	switch a {
	case ActionNewTable:
		return "New Table"
	case ActionAddRow:
		return "Add Row"
	case ActionAddHeading:
		return "Add Heading"
	case ActionAddColumn:
		return "Add Column"
	case ActionClear:
		return "Clear"
	default:
		return "?"
	}
}

// Button is one entry of the button bar.
type Button struct {
	Action   Action
	Disabled bool
}

// buttonsFor returns the bar for v: "New Table" while absent, the edit
// actions otherwise.
func buttonsFor(ed table.Editor, v table.Table) []Button {
	if !v.Present() {
		return []Button{{Action: ActionNewTable}}
	}
	out := []Button{{Action: ActionAddRow, Disabled: !ed.CanAddRow(v)}}
	if ed.Options().AllowHeadings {
		out = append(out, Button{Action: ActionAddHeading, Disabled: !ed.CanAddRow(v)})
	}
	out = append(out,
		Button{Action: ActionAddColumn, Disabled: !ed.CanAddColumn(v)},
		Button{Action: ActionClear},
	)
	return out
}

// command maps an action to the table command it issues.
func (a Action) command() table.Command {
	switch a {
	case ActionNewTable:
		return table.Command{Kind: table.CmdInitialize}
	case ActionAddRow:
		return table.Command{Kind: table.CmdAddRow, Mode: table.ModeRow}
	case ActionAddHeading:
		return table.Command{Kind: table.CmdAddRow, Mode: table.ModeHeading}
	case ActionAddColumn:
		return table.Command{Kind: table.CmdAddColumn}
	default:
		return table.Command{Kind: table.CmdClear}
	}
}
