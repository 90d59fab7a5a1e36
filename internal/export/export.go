// Package export renders table values for non-interactive output.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/iw2rmb/tablefield/table"
)

// Format names an output format.
type Format string

const (
	Plain    Format = "plain"
	Markdown Format = "markdown"
	CSV      Format = "csv"
	JSON     Format = "json"
	YAML     Format = "yaml"
)

// ErrUnknownFormat is returned by ParseFormat.
var ErrUnknownFormat = errors.New("unknown format")

var formats = []Format{Plain, Markdown, CSV, JSON, YAML}

// Formats lists the accepted format names.
func Formats() []string {
	out := make([]string, len(formats))
	for i, f := range formats {
		out[i] = string(f)
	}
	return out
}

func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "md":
		return Markdown, nil
	case "yml":
		return YAML, nil
	case "txt", "text", "":
		return Plain, nil
	}
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w %q (want one of %s)", ErrUnknownFormat, s, strings.Join(Formats(), ", "))
}

// Options tweak rendering.
type Options struct {
	// FirstRowHeader treats the first row as a header where the format has
	// one (markdown) and separates it with a rule in plain output.
	FirstRowHeader bool
}

// Write renders t in format f. Absent tables produce no output in the
// tabular formats and null in JSON and YAML.
func Write(w io.Writer, t table.Table, f Format, opt Options) error {
	switch f {
	case Plain:
		return writePlain(w, t, opt)
	case Markdown:
		return writeMarkdown(w, t, opt)
	case CSV:
		return writeCSV(w, t)
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(t)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(t); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w %q", ErrUnknownFormat, f)
	}
}

// records flattens t into rows of exactly cols cells. Heading text goes in
// the first cell.
func records(t table.Table, cols int) [][]string {
	out := make([][]string, len(t.Rows))
	for i, r := range t.Rows {
		rec := make([]string, cols)
		copy(rec, r.Cells)
		out[i] = rec
	}
	return out
}

func columns(t table.Table) int {
	n := table.ColumnCount(t)
	if n == 0 && t.Present() {
		n = 1
	}
	return n
}
