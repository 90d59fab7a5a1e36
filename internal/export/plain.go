package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/iw2rmb/tablefield/table"
)

const plainGap = "  "

func writePlain(w io.Writer, t table.Table, opt Options) error {
	if !t.Present() {
		return nil
	}
	cols := columns(t)
	widths := make([]int, cols)
	for _, r := range t.Rows {
		if r.IsHeading() {
			continue
		}
		for i, c := range r.Cells {
			if wd := runewidth.StringWidth(flatten(c)); i < cols && wd > widths[i] {
				widths[i] = wd
			}
		}
	}
	total := 0
	for _, wd := range widths {
		total += wd
	}
	total += len(plainGap) * (cols - 1)

	for i, r := range t.Rows {
		var line string
		if r.IsHeading() {
			text := ""
			if len(r.Cells) > 0 {
				text = flatten(r.Cells[0])
			}
			line = "# " + text
		} else {
			parts := make([]string, cols)
			for j := range parts {
				cell := ""
				if j < len(r.Cells) {
					cell = flatten(r.Cells[j])
				}
				parts[j] = runewidth.FillRight(cell, widths[j])
			}
			line = strings.Join(parts, plainGap)
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(line, " ")); err != nil {
			return err
		}
		if i == 0 && opt.FirstRowHeader && !r.IsHeading() {
			if _, err := fmt.Fprintln(w, strings.Repeat("-", total)); err != nil {
				return err
			}
		}
	}
	return nil
}

func flatten(s string) string {
	return strings.Join(strings.Fields(strings.ReplaceAll(s, "\n", " ")), " ")
}
