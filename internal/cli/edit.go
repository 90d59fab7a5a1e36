package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/tablefield/field"
	"github.com/iw2rmb/tablefield/internal/logging"
	"github.com/iw2rmb/tablefield/internal/store"
	"github.com/iw2rmb/tablefield/table"
)

// ErrNotTerminal is returned by edit when stdout is not a terminal.
var ErrNotTerminal = errors.New("edit needs an interactive terminal")

func newEditCmd(app *App, g *globals) *cobra.Command {
	var (
		logFile string
		live    bool
		sizes   sizeFlags
	)
	cmd := &cobra.Command{
		Use:   "edit FILE",
		Short: "Edit the table in a document interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.IsTerminal() {
				return ErrNotTerminal
			}
			if logFile == "" {
				logFile = g.cfg.LogFile
			}
			if logFile != "" {
				f, err := logging.OpenFile(logFile)
				if err != nil {
					return fmt.Errorf("open log file: %w", err)
				}
				defer f.Close()
				g.logger = g.setupLogging(f)
			}
			opt := sizes.apply(cmd.Flags(), g.cfg.Options)
			if err := opt.Validate(); err != nil {
				return err
			}

			doc, err := g.open(args[0])
			if err != nil {
				return err
			}
			value, err := doc.Table()
			if err != nil {
				return err
			}

			sess := &editSession{doc: doc, logger: g.logger}
			title := g.cfg.Title
			if title == "" {
				title = filepath.Base(args[0]) + " › " + doc.Path()
			}
			fm := field.New(field.Config{
				Title:        title,
				Description:  g.cfg.Description,
				Options:      opt,
				Value:        value,
				LiveEdit:     live || g.cfg.LiveEdit,
				HistoryLimit: g.cfg.HistoryLimit,
				Style:        field.DefaultStyle(),
				ShowHelp:     true,
				OnChange:     sess.onChange,
				Logger:       g.logger,
			})

			g.logger.Info("edit session started", "file", args[0], "path", doc.Path())
			final, err := app.RunProgram(cmd.Context(), editModel{field: fm, sess: sess})
			if err != nil {
				return err
			}
			if m, ok := final.(editModel); ok {
				if err := m.sess.result(); err != nil {
					return err
				}
			}
			_, err = fmt.Fprintf(app.Stdout, "saved %d change(s) to %s\n", sess.saved, args[0])
			return err
		},
	}
	cmd.Flags().StringVar(&logFile, "log-file", "", "write logs to this file (default from config, otherwise discarded)")
	cmd.Flags().BoolVar(&live, "live", false, "save on every keystroke while editing a cell")
	sizes.bind(cmd.Flags())
	return cmd
}

// editSession saves every patch the form emits. Failures are counted for
// the whole session; err holds the most recent one.
type editSession struct {
	doc    *store.Document
	logger *slog.Logger
	saved  int
	failed int
	err    error
}

func (s *editSession) onChange(p table.Patch) {
	if err := s.doc.Apply(p); err != nil {
		s.failed++
		s.err = err
		s.logger.Error("save failed", "file", s.doc.File(), "failed", s.failed, "err", err)
		return
	}
	s.saved++
}

// result reports the session outcome once the program exits.
func (s *editSession) result() error {
	if s.failed == 0 {
		return nil
	}
	s.logger.Error("edit session had failed saves", "file", s.doc.File(), "saved", s.saved, "failed", s.failed)
	return fmt.Errorf("%d of %d change(s) failed to save to %s: %w", s.failed, s.saved+s.failed, s.doc.File(), s.err)
}

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// editModel is the program root: the form plus a status line.
type editModel struct {
	field field.Model
	sess  *editSession
}

func (m editModel) Init() tea.Cmd { return m.field.Init() }

func (m editModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.field = m.field.SetSize(msg.Width, msg.Height-1)
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.field, cmd = m.field.Update(msg)
	return m, cmd
}

func (m editModel) View() string {
	return m.field.View() + "\n" + m.status()
}

func (m editModel) status() string {
	if m.sess.failed > 0 {
		return errorStyle.Render(fmt.Sprintf("%s · %d saved · %d failed: %v", m.sess.doc.File(), m.sess.saved, m.sess.failed, m.sess.err))
	}
	return statusStyle.Render(fmt.Sprintf("%s · %d saved · ctrl+c quits", m.sess.doc.File(), m.sess.saved))
}
