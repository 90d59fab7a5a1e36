package gridview

import "github.com/iw2rmb/tablefield/table"

// Config configures the grid Model.
type Config struct {
	// Initial value to render.
	Value table.Table

	// HighlightFirstRow renders the first row with Style.FirstRow.
	HighlightFirstRow bool

	// DisableReorder hides drag handles and ignores reorder gestures.
	DisableReorder bool

	// LiveEdit emits an update-cell command on every keystroke that changes
	// the edited text instead of once when the edit is committed.
	LiveEdit bool

	// Column width bounds in terminal cells. Defaults: 6 and 24.
	MinCellWidth int
	MaxCellWidth int

	Style  Style
	KeyMap KeyMap

	// OnCommand receives commands synchronously. When nil, commands are
	// returned from Update as a tea.Cmd producing CommandMsg.
	OnCommand func(table.Command)
}

const (
	defaultMinCellWidth = 6
	defaultMaxCellWidth = 24
)

func normalizeConfig(cfg Config) Config {
	if cfg.MinCellWidth <= 0 {
		cfg.MinCellWidth = defaultMinCellWidth
	}
	if cfg.MaxCellWidth <= 0 {
		cfg.MaxCellWidth = defaultMaxCellWidth
	}
	if cfg.MaxCellWidth < cfg.MinCellWidth {
		cfg.MaxCellWidth = cfg.MinCellWidth
	}
	if len(cfg.KeyMap.Activate.Keys()) == 0 {
		cfg.KeyMap = DefaultKeyMap()
	}
	return cfg
}
