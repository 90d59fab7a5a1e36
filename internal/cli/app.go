// Package cli wires the tablefield command tree.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// App owns CLI wiring and execution configuration.
type App struct {
	Stdout io.Writer
	Stderr io.Writer

	// IsTerminal reports whether interactive editing is possible.
	IsTerminal func() bool

	// RunProgram runs the interactive editor.
	RunProgram func(ctx context.Context, m tea.Model) (tea.Model, error)
}

func NewApp() *App {
	return &App{
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		IsTerminal: stdoutIsTerminal,
		RunProgram: runProgram,
	}
}

// Execute runs the CLI with the provided args.
func (a *App) Execute(ctx context.Context, args []string) error {
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetOut(a.Stdout)
	root.SetErr(a.Stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		_, _ = fmt.Fprintln(a.Stderr, "Error:", err)
		return err
	}
	return nil
}

// RootCommand exposes the root command for tests.
func (a *App) RootCommand() *cobra.Command {
	return newRootCmd(a)
}

func stdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func runProgram(ctx context.Context, m tea.Model) (tea.Model, error) {
	p := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen(), tea.WithMouseAllMotion())
	return p.Run()
}
