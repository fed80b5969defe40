package student

import "fmt"

// State describes where a record is in its lifecycle.
//
// Every record moves through exactly one path:
//
//	Uninitialized → Constructed → Destroyed
//
// There are no intermediate states and Destroyed is terminal.
type State string

const (
	StateUninitialized State = "UNINITIALIZED"
	StateConstructed   State = "CONSTRUCTED"
	StateDestroyed     State = "DESTROYED"
)

// IsTerminal reports whether the state is terminal (no further
// transitions are possible).
func IsTerminal(s State) bool {
	return s == StateDestroyed
}

// transition validates and applies a single lifecycle step.
// The caller supplies the expected prior state so that misuse
// (e.g. destroying a record twice) surfaces as an error rather
// than silently re-emitting side effects.
func (r *Record) transition(from, to State) error {
	if r.state != from {
		return fmt.Errorf("invalid transition: expected %s, got %s", from, r.state)
	}
	if !isAllowedTransition(from, to) {
		return fmt.Errorf("disallowed transition: %s -> %s", from, to)
	}
	r.state = to
	return nil
}

func isAllowedTransition(from, to State) bool {
	switch from {
	case StateUninitialized:
		return to == StateConstructed
	case StateConstructed:
		return to == StateDestroyed
	default:
		return false
	}
}
