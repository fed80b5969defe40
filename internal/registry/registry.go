// Package registry manages the student roster: enrollment with
// validation and duplicate-roll rejection, lookups, listing, and
// withdrawal.
//
// The registry depends on the storage.Storage interface, not on a
// concrete backend — the same dependency-injection shape the rest of
// the application uses.
package registry

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/aanand-mishra/student-registry/internal/storage"
	"github.com/aanand-mishra/student-registry/internal/types"
	"github.com/aanand-mishra/student-registry/internal/utils/message"
)

// ErrDuplicateRoll is returned by Enroll when the roll number is
// already on the roster.
var ErrDuplicateRoll = errors.New("roll number already enrolled")

// ErrNotFound is returned by Lookup and Withdraw when no student has
// the requested roll number.
var ErrNotFound = storage.ErrRollNotFound

// Registry is the roster service. The zero value is not usable;
// construct with New.
type Registry struct {
	store storage.Storage
	check *validator.Validate
}

// New returns a Registry backed by the given store.
func New(store storage.Storage) *Registry {
	return &Registry{
		store: store,
		check: validator.New(),
	}
}

// Enroll validates the student and adds them to the roster.
//
// Order of checks:
//
//  1. Struct validation (validate tags on types.Student) — failures
//     come back as one human-readable message.
//  2. Duplicate roll — the roll number is the roster's natural key, so
//     a second enrollment with the same roll is rejected with
//     ErrDuplicateRoll before the store is touched.
//
// On success the generated storage ID is returned.
func (r *Registry) Enroll(s types.Student) (int64, error) {
	slog.Debug("enrolling student",
		slog.String("name", s.Name),
		slog.Int("roll", s.Roll),
	)

	if err := r.check.Struct(s); err != nil {
		validateErrs := err.(validator.ValidationErrors)
		return 0, fmt.Errorf("Enroll: %s", message.FromValidationErrors(validateErrs))
	}

	_, err := r.store.GetStudentByRoll(s.Roll)
	if err == nil {
		return 0, fmt.Errorf("Enroll: roll %d: %w", s.Roll, ErrDuplicateRoll)
	}
	if !errors.Is(err, storage.ErrRollNotFound) {
		return 0, fmt.Errorf("Enroll: check roll: %w", err)
	}

	id, err := r.store.CreateStudent(s.Name, s.Roll)
	if err != nil {
		return 0, fmt.Errorf("Enroll: %w", err)
	}

	slog.Info("student enrolled",
		slog.Int64("id", id),
		slog.Int("roll", s.Roll),
	)
	return id, nil
}

// Lookup fetches a student by roll number.
func (r *Registry) Lookup(roll int) (types.Student, error) {
	s, err := r.store.GetStudentByRoll(roll)
	if err != nil {
		return types.Student{}, fmt.Errorf("Lookup: %w", err)
	}
	return s, nil
}

// List returns every enrolled student. An empty roster lists as an
// empty slice, never nil.
func (r *Registry) List() ([]types.Student, error) {
	students, err := r.store.GetStudents()
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	return students, nil
}

// Withdraw removes a student from the roster by roll number.
func (r *Registry) Withdraw(roll int) error {
	if err := r.store.DeleteStudentByRoll(roll); err != nil {
		return fmt.Errorf("Withdraw: %w", err)
	}
	slog.Info("student withdrawn", slog.Int("roll", roll))
	return nil
}
