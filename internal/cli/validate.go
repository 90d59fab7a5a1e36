package cli

import (
	"fmt"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/tablefield/table"
)

func newValidateCmd(app *App, g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE",
		Short: "Check the table in a document against the grid rules and bounds",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := g.colorOutput(app.Stdout)

			doc, err := g.open(args[0])
			if err != nil {
				return err
			}
			t, err := doc.Table()
			if err != nil {
				_, _ = fmt.Fprintln(app.Stdout, out.String("✗ "+err.Error()).Foreground(termenv.ANSIRed))
				return err
			}
			if !t.Present() {
				_, err := fmt.Fprintln(app.Stdout, out.String("✓ no table at "+doc.Path()).Foreground(termenv.ANSIGreen))
				return err
			}

			for _, w := range boundWarnings(g.cfg.Options, t) {
				_, _ = fmt.Fprintln(app.Stdout, out.String("⚠ "+w).Foreground(termenv.ANSIYellow))
			}
			_, err = fmt.Fprintln(app.Stdout, out.String(fmt.Sprintf("✓ %d rows x %d columns", t.Len(), table.ColumnCount(t))).Foreground(termenv.ANSIGreen))
			return err
		},
	}
}

// boundWarnings reports where a stored table lies outside the configured
// bounds. Commands never produce such tables but hand-edited documents can.
func boundWarnings(opt table.Options, t table.Table) []string {
	var out []string
	rows, cols := t.Len(), table.ColumnCount(t)
	if opt.MaxRows > 0 && rows > opt.MaxRows {
		out = append(out, fmt.Sprintf("%d rows exceed max_rows %d", rows, opt.MaxRows))
	}
	if opt.MaxColumns > 0 && cols > opt.MaxColumns {
		out = append(out, fmt.Sprintf("%d columns exceed max_columns %d", cols, opt.MaxColumns))
	}
	if rows < opt.MinRows {
		out = append(out, fmt.Sprintf("%d rows below min_rows %d", rows, opt.MinRows))
	}
	if cols < opt.MinColumns {
		out = append(out, fmt.Sprintf("%d columns below min_columns %d", cols, opt.MinColumns))
	}
	if !opt.AllowHeadings {
		for i, r := range t.Rows {
			if r.IsHeading() {
				out = append(out, fmt.Sprintf("row %d is a heading but allow_headings is off", i))
			}
		}
	}
	return out
}
