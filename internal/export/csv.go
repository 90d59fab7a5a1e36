package export

import (
	"encoding/csv"
	"io"

	"github.com/iw2rmb/tablefield/table"
)

// writeCSV writes one record per row. Heading rows are padded to the
// column count so every record has the same number of fields.
func writeCSV(w io.Writer, t table.Table) error {
	if !t.Present() {
		return nil
	}
	cw := csv.NewWriter(w)
	for _, rec := range records(t, columns(t)) {
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
