package table

import (
	"errors"
	"fmt"
)

var (
	// ErrAbsent is returned when a command needs a present table.
	ErrAbsent = errors.New("table is absent")
	// ErrOutOfRange is returned for a row or cell index outside the table.
	ErrOutOfRange = errors.New("index out of range")
	// ErrNotPermutation is returned when a reorder does not keep the row set.
	ErrNotPermutation = errors.New("not a permutation of existing rows")
)

// ContractError reports a command called with arguments that could not have
// been derived from the current value. Callers should treat it as a bug.
type ContractError struct {
	Op  string
	Err error
	// Detail is optional context such as the offending index.
	Detail string
}

func (e *ContractError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %v (%s)", e.Op, e.Err, e.Detail)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ContractError) Unwrap() error { return e.Err }

func contractErr(op string, err error, format string, args ...any) *ContractError {
	return &ContractError{Op: op, Err: err, Detail: fmt.Sprintf(format, args...)}
}

// InvariantError reports a table value that breaks the grid invariants.
type InvariantError struct {
	Row     int
	Message string
}

func (e *InvariantError) Error() string {
	if e.Row < 0 {
		return "invalid table: " + e.Message
	}
	return fmt.Sprintf("invalid table: row %d: %s", e.Row, e.Message)
}
