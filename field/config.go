package field

import (
	"log/slog"

	"github.com/iw2rmb/tablefield/gridview"
	"github.com/iw2rmb/tablefield/table"
)

type Config struct {
	// Legend and optional description shown above the grid.
	Title       string
	Description string

	Options table.Options
	Value   table.Table

	// EditorOptions are passed to table.NewEditor.
	EditorOptions []table.EditorOption

	// HistoryLimit bounds undo steps. 0 uses the default; negative disables
	// undo.
	HistoryLimit int

	// LiveEdit is forwarded to the grid.
	LiveEdit bool

	Style  Style
	KeyMap KeyMap

	// ShowHelp renders a short key help line under the buttons.
	ShowHelp bool

	// OnChange receives one patch per committed change. When nil, patches are
	// returned from Update as a tea.Cmd producing ChangeMsg.
	OnChange func(table.Patch)

	// Logger receives dropped commands. Defaults to slog.Default().
	Logger *slog.Logger
}

const defaultHistoryLimit = 100

func normalizeConfig(cfg Config) Config {
	if cfg.HistoryLimit == 0 {
		cfg.HistoryLimit = defaultHistoryLimit
	}
	if len(cfg.KeyMap.SwitchFocus.Keys()) == 0 {
		cfg.KeyMap = DefaultKeyMap()
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return cfg
}

func (cfg Config) gridConfig(onCommand func(table.Command)) gridview.Config {
	return gridview.Config{
		Value:             cfg.Value,
		HighlightFirstRow: cfg.Options.HighlightFirstRow,
		LiveEdit:          cfg.LiveEdit,
		Style:             cfg.Style.Grid,
		OnCommand:         onCommand,
	}
}
