package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/tablefield"
	"github.com/iw2rmb/tablefield/internal/config"
	"github.com/iw2rmb/tablefield/internal/logging"
	"github.com/iw2rmb/tablefield/internal/store"
)

// globals holds state resolved by the root pre-run.
type globals struct {
	configPath string
	docPath    string
	debug      bool
	logJSON    bool
	noColor    bool

	cfg    *config.Config
	logger *slog.Logger
}

func newRootCmd(app *App) *cobra.Command {
	g := &globals{}

	root := &cobra.Command{
		Use:           "tablefield",
		Short:         "Edit a table value stored in a JSON document",
		Version:       tablefield.Version(),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return g.resolve(app, cmd)
		},
	}

	root.SetVersionTemplate(tablefield.VersionLine() + "\n")

	flags := root.PersistentFlags()
	flags.StringVar(&g.configPath, "config", "", "config file (default ~/.config/tablefield/config.yaml)")
	flags.StringVarP(&g.docPath, "path", "p", "", "path of the table inside the document (default \"table\")")
	flags.BoolVar(&g.debug, "debug", false, "enable debug logging")
	flags.BoolVar(&g.logJSON, "log-json", false, "write logs as JSON")
	flags.BoolVar(&g.noColor, "no-color", false, "disable colored output")

	root.AddCommand(
		newInitCmd(app, g),
		newShowCmd(app, g),
		newValidateCmd(app, g),
		newEditCmd(app, g),
	)
	return root
}

func (g *globals) resolve(app *App, cmd *cobra.Command) error {
	var (
		cfg *config.Config
		err error
	)
	if g.configPath != "" {
		cfg, err = config.LoadFromPath(g.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if g.docPath != "" {
		cfg.DocumentPath = g.docPath
	}
	g.cfg = cfg

	if g.noColor || os.Getenv("NO_COLOR") != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	// The editor owns the terminal; its logs go to a file or nowhere.
	if cmd.Name() == "edit" {
		g.logger = logging.Discard()
		return nil
	}
	g.logger = g.setupLogging(app.Stderr)
	return nil
}

func (g *globals) setupLogging(w io.Writer) *slog.Logger {
	if g.logJSON {
		return logging.SetupJSON(g.debug, w)
	}
	return logging.Setup(g.debug, w)
}

func (g *globals) open(file string) (*store.Document, error) {
	return store.Open(file, g.cfg.Path(), store.WithLogger(g.logger))
}

// colorOutput returns a termenv output honoring --no-color.
func (g *globals) colorOutput(w io.Writer) *termenv.Output {
	if g.noColor || os.Getenv("NO_COLOR") != "" {
		return termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii))
	}
	return termenv.NewOutput(w)
}
