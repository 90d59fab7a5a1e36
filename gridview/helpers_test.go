package gridview

import (
	"regexp"
	"strings"

	"github.com/iw2rmb/tablefield/table"
)

var ansiRE = regexp.MustCompile(`\x1b\[[0-9;?]*[A-Za-z]`)

func stripANSI(s string) string { return ansiRE.ReplaceAllString(s, "") }

func viewLines(m Model) []string {
	lines := strings.Split(m.View(), "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(stripANSI(lines[i]), " ")
	}
	return lines
}

func grid(rows ...[]string) table.Table {
	out := table.Table{}
	for i, cells := range rows {
		out.Rows = append(out.Rows, table.Row{
			Key:   string(rune('a' + i)),
			Mode:  table.ModeRow,
			Cells: append([]string(nil), cells...),
		})
	}
	return out
}

func withHeading(t table.Table, at int, text string) table.Table {
	rows := append([]table.Row(nil), t.Rows[:at]...)
	rows = append(rows, table.Row{Key: "h", Mode: table.ModeHeading, Cells: []string{text}})
	rows = append(rows, t.Rows[at:]...)
	return table.Table{Rows: rows}
}

type recorder struct {
	cmds []table.Command
}

func (r *recorder) on(c table.Command) { r.cmds = append(r.cmds, c) }

func (r *recorder) last() (table.Command, bool) {
	if len(r.cmds) == 0 {
		return table.Command{}, false
	}
	return r.cmds[len(r.cmds)-1], true
}

func newRecorded(cfg Config) (Model, *recorder) {
	rec := &recorder{}
	cfg.OnCommand = rec.on
	cfg.MinCellWidth = 3
	return New(cfg), rec
}
