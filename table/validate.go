package table

// Validate checks the grid invariants of a present table: rows exist, keys
// are unique and non-empty, every normal row has the same width and heading
// rows hold at most one cell. The absent table is valid.
//
// Heading rows with zero cells are accepted: RemoveColumn(0) leaves them so.
func Validate(t Table) error {
	if t.Rows == nil {
		return nil
	}
	if len(t.Rows) == 0 {
		return &InvariantError{Row: -1, Message: "present table has no rows"}
	}

	seen := make(map[string]struct{}, len(t.Rows))
	width := -1
	for i, r := range t.Rows {
		if r.Key == "" {
			return &InvariantError{Row: i, Message: "empty key"}
		}
		if _, dup := seen[r.Key]; dup {
			return &InvariantError{Row: i, Message: "duplicate key " + r.Key}
		}
		seen[r.Key] = struct{}{}

		switch r.Mode {
		case ModeHeading:
			if len(r.Cells) > 1 {
				return &InvariantError{Row: i, Message: "heading row has more than one cell"}
			}
		case ModeRow:
			if width < 0 {
				width = len(r.Cells)
				if width == 0 {
					return &InvariantError{Row: i, Message: "row has no cells"}
				}
				continue
			}
			if len(r.Cells) != width {
				return &InvariantError{Row: i, Message: "row width differs from first row"}
			}
		default:
			return &InvariantError{Row: i, Message: "unknown mode " + string(r.Mode)}
		}
	}
	return nil
}
