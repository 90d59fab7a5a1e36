// Package gridview provides a Bubble Tea component that renders a table
// value as an editable grid.
//
// The component never owns the table data. It renders the value the host
// passes in with SetValue and turns user gestures (cell edits, row and
// column removal, drag or keyboard reordering) into table.Command values
// delivered back to the host.
package gridview
