// Package field is the host form around a table value.
//
// It renders a legend, an optional description, the grid and a button bar,
// applies every gesture through table.Editor and reports each committed
// value as a table.Patch. Undo and redo replay whole committed values.
package field
