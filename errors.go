package depot

import (
	"fmt"

	"github.com/rotisserie/eris"
)

// Absence errors. Looking up a component type with no storage is the same
// condition as a missing component, never a distinct failure.
var (
	ErrEntityNotFound    = eris.New("entity does not exist")
	ErrComponentNotFound = eris.New("component not found on entity")
)

// AccessConflictError reports a guard acquisition that violated the
// shared/exclusive rule. The failing call site recovers by releasing the
// outstanding reference and retrying; nothing blocks.
type AccessConflictError struct {
	Entity    EntityID
	Component string
	Readers   int
	Exclusive bool
}

func (e AccessConflictError) Error() string {
	if e.Exclusive {
		return fmt.Sprintf("component %s on entity %d already borrowed exclusively", e.Component, e.Entity)
	}
	return fmt.Sprintf("component %s on entity %d has %d active shared borrows", e.Component, e.Entity, e.Readers)
}
