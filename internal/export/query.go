package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/itchyny/gojq"

	"github.com/iw2rmb/tablefield/table"
)

// normalize converts t to the generic map/slice form used by query engines.
func normalize(t table.Table) (any, error) {
	data, err := json.Marshal(t)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Query runs a jq expression over the stored form of t.
func Query(t table.Table, expr string) ([]any, error) {
	parsed, err := gojq.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid --query: %w", err)
	}
	code, err := gojq.Compile(parsed)
	if err != nil {
		return nil, fmt.Errorf("invalid --query: %w", err)
	}
	data, err := normalize(t)
	if err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}

	var results []any
	iter := code.Run(data)
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if qerr, isErr := v.(error); isErr {
			return nil, fmt.Errorf("query error: %w", qerr)
		}
		results = append(results, v)
	}
	return results, nil
}

// JSONPath evaluates a JSONPath expression over the stored form of t.
// A leading "$" is optional.
func JSONPath(t table.Table, path string) (any, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("invalid --jsonpath: empty")
	}
	if !strings.HasPrefix(path, "$") {
		path = "$." + strings.TrimPrefix(path, ".")
	}
	data, err := normalize(t)
	if err != nil {
		return nil, err
	}
	v, err := jsonpath.Get(path, data)
	if err != nil {
		return nil, fmt.Errorf("invalid --jsonpath: %w", err)
	}
	return v, nil
}

// WriteValues writes each value as one line of compact JSON.
func WriteValues(w io.Writer, vals []any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, v := range vals {
		if err := enc.Encode(v); err != nil {
			return err
		}
	}
	return nil
}
