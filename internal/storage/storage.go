// Package storage defines the Storage interface — a contract that any
// roster backend must satisfy to work with this application.
//
// The registry depends only on this interface, never on a concrete
// backend. That keeps two doors open:
//
//   - Switching backends = implement the interface for the new store,
//     change one line in main.go. Zero registry changes.
//
//   - Writing tests = pass a fake that satisfies the interface.
//     No real database needed for registry unit tests.
package storage

import (
	"errors"

	"github.com/aanand-mishra/student-registry/internal/types"
)

// ErrRollNotFound is the sentinel returned (wrapped) by lookups that
// match no roster row. Callers test for it with errors.Is.
var ErrRollNotFound = errors.New("no student with that roll number")

// Storage is the roster contract.
// Any concrete type that implements ALL of these methods automatically
// satisfies this interface — Go does this implicitly (no "implements"
// keyword required).
//
// Roll numbers are the natural key of the roster: every lookup,
// update, and delete addresses a student by roll, and the backend
// enforces roll uniqueness.
type Storage interface {
	// CreateStudent inserts a new roster row and returns the auto-
	// generated primary-key ID. Fails if the roll is already taken.
	CreateStudent(name string, roll int) (int64, error)

	// GetStudentByRoll fetches a single student by roll number.
	// Returns an error wrapping ErrRollNotFound if no row matches.
	GetStudentByRoll(roll int) (types.Student, error)

	// GetStudents returns every student on the roster.
	// Returns an empty slice (not nil) when the roster is empty.
	GetStudents() ([]types.Student, error)

	// UpdateStudentByRoll replaces the fields of an existing student.
	// Returns the updated record or an error.
	UpdateStudentByRoll(roll int, student types.Student) (types.Student, error)

	// DeleteStudentByRoll removes a roster row permanently.
	DeleteStudentByRoll(roll int) error
}
