package table

// History keeps committed table values for undo and redo.
//
// It stores whole values, matching the replace-only commit model.
type History struct {
	limit int
	undo  []Table
	redo  []Table
}

// NewHistory returns a History holding at most limit undo steps.
// limit <= 0 disables recording.
func NewHistory(limit int) *History {
	return &History{limit: limit}
}

// Record pushes prev (the value before a commit) and drops the redo stack.
func (h *History) Record(prev Table) {
	if h.limit <= 0 {
		return
	}
	h.undo = append(h.undo, prev.Clone())
	if len(h.undo) > h.limit {
		h.undo = h.undo[len(h.undo)-h.limit:]
	}
	h.redo = nil
}

func (h *History) CanUndo() bool { return len(h.undo) > 0 }

func (h *History) CanRedo() bool { return len(h.redo) > 0 }

// Undo returns the value preceding cur and remembers cur for Redo.
func (h *History) Undo(cur Table) (Table, bool) {
	if len(h.undo) == 0 {
		return cur, false
	}
	i := len(h.undo) - 1
	prev := h.undo[i]
	h.undo = h.undo[:i]
	h.redo = append(h.redo, cur.Clone())
	return prev, true
}

// Redo returns the value undone last and remembers cur for Undo.
func (h *History) Redo(cur Table) (Table, bool) {
	if len(h.redo) == 0 {
		return cur, false
	}
	i := len(h.redo) - 1
	next := h.redo[i]
	h.redo = h.redo[:i]

	if h.limit > 0 {
		h.undo = append(h.undo, cur.Clone())
		if len(h.undo) > h.limit {
			h.undo = h.undo[len(h.undo)-h.limit:]
		}
	}
	return next, true
}
