// Package lifecycle validates status changes against a per-entity transition table.
package lifecycle

import "github.com/DhavalSuthar-24/schoolsports/pkg/apperrors"

// Table maps a status to the statuses it may move to. A status with no entry is terminal.
type Table[S ~string] struct {
	Entity string
	Edges  map[S][]S
}

// Allowed reports whether from -> to is an edge of the table.
func (t Table[S]) Allowed(from, to S) bool {
	for _, next := range t.Edges[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Terminal reports whether no transition leaves s.
func (t Table[S]) Terminal(s S) bool {
	return len(t.Edges[s]) == 0
}

// Check returns an invalid-transition error when from -> to is not allowed.
func (t Table[S]) Check(op string, from, to S) error {
	if t.Allowed(from, to) {
		return nil
	}
	if t.Terminal(from) {
		return apperrors.InvalidTransition(t.Entity, op,
			"%s is %s and can no longer change status", t.Entity, from)
	}
	return apperrors.InvalidTransition(t.Entity, op,
		"cannot change %s status from %s to %s", t.Entity, from, to)
}
