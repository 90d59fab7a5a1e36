// Package store reads and writes a table value inside a JSON document on
// disk.
//
// The table lives at a gjson/sjson path, so the rest of the document is
// preserved byte for byte apart from pretty-printing on save.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/iw2rmb/tablefield/table"
)

// ErrInvalidDocument reports a file that is not a JSON object.
var ErrInvalidDocument = errors.New("store: document is not valid JSON")

// Document is a JSON file holding a table value at Path.
type Document struct {
	file string
	path string
	data []byte
	mode fs.FileMode
	log  *slog.Logger
}

// Option configures a Document.
type Option func(*Document)

// WithLogger sets the logger used for load/save records.
func WithLogger(l *slog.Logger) Option {
	return func(d *Document) {
		if l != nil {
			d.log = l
		}
	}
}

// Open reads file. A missing file is an empty document; it is created on
// the first save.
func Open(file, path string, opts ...Option) (*Document, error) {
	if path == "" {
		return nil, fmt.Errorf("store: empty document path")
	}
	d := &Document{
		file: file,
		path: path,
		data: []byte("{}"),
		mode: 0o644,
		log:  slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}

	data, err := os.ReadFile(file)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		d.log.Debug("document missing, starting empty", "file", file)
		return d, nil
	case err != nil:
		return nil, err
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDocument, file)
	}
	if info, err := os.Stat(file); err == nil {
		d.mode = info.Mode().Perm()
	}
	d.data = data
	d.log.Debug("document loaded", "file", file, "bytes", len(data))
	return d, nil
}

func (d *Document) File() string { return d.file }

// Path returns the gjson path of the table value.
func (d *Document) Path() string { return d.path }

// Bytes returns the current document contents.
func (d *Document) Bytes() []byte { return d.data }

// Table decodes the value at Path. A missing or null value is absent.
func (d *Document) Table() (table.Table, error) {
	res := gjson.GetBytes(d.data, d.path)
	if !res.Exists() || res.Type == gjson.Null {
		return table.Table{}, nil
	}
	var t table.Table
	if err := json.Unmarshal([]byte(res.Raw), &t); err != nil {
		return table.Table{}, fmt.Errorf("store: decode %s: %w", d.path, err)
	}
	if err := table.Validate(t); err != nil {
		return table.Table{}, fmt.Errorf("store: %s: %w", d.path, err)
	}
	return t, nil
}

// Apply writes p into the document and saves it.
func (d *Document) Apply(p table.Patch) error {
	var (
		next []byte
		err  error
	)
	switch p.Type {
	case table.PatchSet:
		raw, merr := json.Marshal(p.Value)
		if merr != nil {
			return fmt.Errorf("store: encode table: %w", merr)
		}
		next, err = sjson.SetRawBytes(d.data, d.path, raw)
	case table.PatchUnset:
		next, err = sjson.DeleteBytes(d.data, d.path)
	default:
		return fmt.Errorf("store: unknown patch type %q", p.Type)
	}
	if err != nil {
		return fmt.Errorf("store: %s %s: %w", p.Type, d.path, err)
	}
	d.data = next
	return d.Save()
}

// Save writes the document atomically: a temp file in the same directory
// is renamed over the target.
func (d *Document) Save() error {
	dir := filepath.Dir(d.file)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".tablefield-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		if tmpName != "" {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(pretty.Pretty(d.data)); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, d.mode); err != nil {
		return err
	}
	if err := os.Rename(tmpName, d.file); err != nil {
		return err
	}
	tmpName = ""
	d.log.Info("document saved", "file", d.file, "path", d.path)
	return nil
}
