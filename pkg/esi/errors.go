package esi

import (
	"errors"
	"fmt"
)

// ErrDateOutOfRange indicates a ranking query for a period with no data
// row for at least one entity. Ranking queries never return partial
// results; the whole operation fails with this error.
var ErrDateOutOfRange = errors.New("date given is out of range")

// SchemaError indicates a table row that does not match the six-column
// component schema, i.e. the source layout has drifted.
type SchemaError struct {
	Want int
	Got  int
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("component schema mismatch: want %d columns, got %d", e.Want, e.Got)
}

// ImportError wraps a failure while building or persisting one entity's
// table.
type ImportError struct {
	Entity string
	Err    error
}

func (e *ImportError) Error() string {
	return fmt.Sprintf("entity %q: %v", e.Entity, e.Err)
}

func (e *ImportError) Unwrap() error {
	return e.Err
}
