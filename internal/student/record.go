// Package student implements the Student record lifecycle: two
// construction paths, a display operation, and a teardown step that
// emits an observable notification.
//
// CONSTRUCTION PATHS:
// ────────────────────
// Go has no constructors, so the community convention is package-level
// New functions that return an initialised instance:
//
//	New(out)                      — "default constructor": fields get
//	                                safe zero values and a notification
//	                                line is written to out.
//	NewWithValues(out, name, roll) — "parameterized constructor": fields
//	                                are assigned directly, nothing is
//	                                validated, nothing is written.
//
// Go likewise has no destructors. Scope-exit teardown is expressed with
// the idiomatic Close method, which callers run with defer — deferred
// calls execute in last-in-first-out order, which is exactly the
// reverse-declaration-order unwind the lifecycle requires.
package student

import (
	"errors"
	"fmt"
	"io"

	"github.com/aanand-mishra/student-registry/internal/types"
)

// Notification lines emitted as observable side effects of the
// lifecycle. They are written verbatim, one per line.
const (
	defaultConstructedNotice = "Default Constructor Called"
	destroyedNotice          = "Destructor Called"
)

// ErrDestroyed is returned when an operation is attempted on a record
// whose teardown has already run.
var ErrDestroyed = errors.New("record already destroyed")

// Record is a Student together with its lifecycle state and the stream
// its notifications and display output are written to.
//
// Each Record is exclusively owned by the code that declared it: it is
// never shared, never aliased, and torn down exactly once.
type Record struct {
	student types.Student
	out     io.Writer
	state   State
}

// New is the default construction path. The student's fields are left
// at safe zero values (empty name, roll 0), and a "default constructor"
// notice is written to out as an observable side effect.
func New(out io.Writer) (*Record, error) {
	r := &Record{out: out, state: StateUninitialized}
	if err := r.transition(StateUninitialized, StateConstructed); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	if _, err := fmt.Fprintln(out, defaultConstructedNotice); err != nil {
		return nil, fmt.Errorf("New: write notice: %w", err)
	}
	return r, nil
}

// NewWithValues is the parameterized construction path. The supplied
// name and roll are assigned directly — no constraints are checked and
// no notification is emitted.
func NewWithValues(out io.Writer, name string, roll int) (*Record, error) {
	r := &Record{
		student: types.Student{Name: name, Roll: roll},
		out:     out,
		state:   StateUninitialized,
	}
	if err := r.transition(StateUninitialized, StateConstructed); err != nil {
		return nil, fmt.Errorf("NewWithValues: %w", err)
	}
	return r, nil
}

// Display writes the record's fields to its output stream in the fixed
// format:
//
//	Name: <name>\tRollNo: <roll>
//
// followed by a newline.
func (r *Record) Display() error {
	if IsTerminal(r.state) {
		return fmt.Errorf("Display: %w", ErrDestroyed)
	}
	if _, err := fmt.Fprintf(r.out, "Name: %s\tRollNo: %d\n", r.student.Name, r.student.Roll); err != nil {
		return fmt.Errorf("Display: %w", err)
	}
	return nil
}

// Close is the teardown step. It writes a "destructor" notice to the
// output stream and marks the record destroyed. A second Close returns
// ErrDestroyed instead of re-emitting the notice.
//
// No resources are released here — the record owns no heap or external
// resources beyond its fields.
func (r *Record) Close() error {
	if IsTerminal(r.state) {
		return fmt.Errorf("Close: %w", ErrDestroyed)
	}
	if err := r.transition(StateConstructed, StateDestroyed); err != nil {
		return fmt.Errorf("Close: %w", err)
	}
	if _, err := fmt.Fprintln(r.out, destroyedNotice); err != nil {
		return fmt.Errorf("Close: write notice: %w", err)
	}
	return nil
}

// State returns the record's current lifecycle state.
func (r *Record) State() State {
	return r.state
}

// Student returns a copy of the underlying student value.
func (r *Record) Student() types.Student {
	return r.student
}
