// Package scenario runs the fixed record-lifecycle demonstration:
// three Student records are declared, two are displayed, and all three
// are torn down in reverse declaration order when the scope ends.
//
// The output written to w is an exact, byte-for-byte contract:
//
//	Default Constructor Called
//	Name: Ali	RollNo: 32
//	Name: Rayyan	RollNo: 20
//	Destructor Called
//	Destructor Called
//	Destructor Called
//
// Teardown ordering comes for free from defer: deferred calls run
// last-in-first-out, so deferring each Close in declaration order
// unwinds the records in reverse (s3, then s2, then s1).
package scenario

import (
	"fmt"
	"io"

	"github.com/aanand-mishra/student-registry/internal/student"
	"github.com/aanand-mishra/student-registry/internal/types"
)

// The two parameterized records the demo displays. The default-
// constructed record is intentionally nameless — it is created, never
// displayed, and torn down last.
var enrollees = []types.Student{
	{Name: "Ali", Roll: 32},
	{Name: "Rayyan", Roll: 20},
}

// Run executes the demonstration, writing every notification and
// display line to w. It returns the first construction or display
// error; teardown runs regardless via the deferred Closes.
func Run(w io.Writer) error {
	// s1: default construction — emits the one "default constructor"
	// notice before anything else reaches w.
	s1, err := student.New(w)
	if err != nil {
		return fmt.Errorf("scenario.Run: %w", err)
	}
	defer s1.Close()

	s2, err := student.NewWithValues(w, enrollees[0].Name, enrollees[0].Roll)
	if err != nil {
		return fmt.Errorf("scenario.Run: %w", err)
	}
	defer s2.Close()

	s3, err := student.NewWithValues(w, enrollees[1].Name, enrollees[1].Roll)
	if err != nil {
		return fmt.Errorf("scenario.Run: %w", err)
	}
	defer s3.Close()

	if err := s2.Display(); err != nil {
		return fmt.Errorf("scenario.Run: %w", err)
	}
	if err := s3.Display(); err != nil {
		return fmt.Errorf("scenario.Run: %w", err)
	}

	return nil
}

// Enrollees returns the students the demo displays, for seeding the
// roster registry after the demonstration has run.
func Enrollees() []types.Student {
	out := make([]types.Student, len(enrollees))
	copy(out, enrollees)
	return out
}
