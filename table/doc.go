// Package table implements the pure table-editing model for tablefield.
//
// A Table is an immutable value: every command returns a freshly built Table
// and never mutates its input. The zero Table is the absent value.
// Coordinates are 0-based (row index, cell index).
package table
