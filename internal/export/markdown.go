package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/iw2rmb/tablefield/table"
)

var mdEscaper = strings.NewReplacer("|", `\|`, "\r\n", "<br>", "\n", "<br>")

func writeMarkdown(w io.Writer, t table.Table, opt Options) error {
	if !t.Present() {
		return nil
	}
	cols := columns(t)
	rows := records(t, cols)
	for i, r := range t.Rows {
		for j := range rows[i] {
			rows[i][j] = mdEscaper.Replace(rows[i][j])
		}
		if r.IsHeading() && rows[i][0] != "" {
			rows[i][0] = "**" + rows[i][0] + "**"
		}
	}

	header := make([]string, cols)
	if opt.FirstRowHeader && !t.Rows[0].IsHeading() {
		header, rows = rows[0], rows[1:]
	}

	// Minimum 3 for the separator dashes.
	widths := make([]int, cols)
	for i := range widths {
		widths[i] = 3
	}
	for _, row := range append([][]string{header}, rows...) {
		for i, cell := range row {
			if wd := runewidth.StringWidth(cell); wd > widths[i] {
				widths[i] = wd
			}
		}
	}

	if err := writeMarkdownRow(w, header, widths); err != nil {
		return err
	}
	sep := make([]string, cols)
	for i, wd := range widths {
		sep[i] = strings.Repeat("-", wd)
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(sep, " | ")); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writeMarkdownRow(w, row, widths); err != nil {
			return err
		}
	}
	return nil
}

func writeMarkdownRow(w io.Writer, cells []string, widths []int) error {
	padded := make([]string, len(widths))
	for i, wd := range widths {
		padded[i] = runewidth.FillRight(cells[i], wd)
	}
	_, err := fmt.Fprintf(w, "| %s |\n", strings.Join(padded, " | "))
	return err
}
