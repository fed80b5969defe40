package registry

import (
	"errors"
	"strings"
	"testing"

	"github.com/aanand-mishra/student-registry/internal/storage"
	"github.com/aanand-mishra/student-registry/internal/types"
)

// fakeStorage satisfies storage.Storage in memory — no database needed
// to exercise the registry.
type fakeStorage struct {
	byRoll map[int]types.Student
	nextID int64
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{byRoll: map[int]types.Student{}}
}

func (f *fakeStorage) CreateStudent(name string, roll int) (int64, error) {
	if _, ok := f.byRoll[roll]; ok {
		return 0, errors.New("UNIQUE constraint failed: students.roll")
	}
	f.nextID++
	f.byRoll[roll] = types.Student{ID: f.nextID, Name: name, Roll: roll}
	return f.nextID, nil
}

func (f *fakeStorage) GetStudentByRoll(roll int) (types.Student, error) {
	s, ok := f.byRoll[roll]
	if !ok {
		return types.Student{}, storage.ErrRollNotFound
	}
	return s, nil
}

func (f *fakeStorage) GetStudents() ([]types.Student, error) {
	students := make([]types.Student, 0, len(f.byRoll))
	for _, s := range f.byRoll {
		students = append(students, s)
	}
	return students, nil
}

func (f *fakeStorage) UpdateStudentByRoll(roll int, s types.Student) (types.Student, error) {
	old, ok := f.byRoll[roll]
	if !ok {
		return types.Student{}, storage.ErrRollNotFound
	}
	delete(f.byRoll, roll)
	s.ID = old.ID
	f.byRoll[s.Roll] = s
	return s, nil
}

func (f *fakeStorage) DeleteStudentByRoll(roll int) error {
	if _, ok := f.byRoll[roll]; !ok {
		return storage.ErrRollNotFound
	}
	delete(f.byRoll, roll)
	return nil
}

func TestEnroll_Valid(t *testing.T) {
	reg := New(newFakeStorage())

	id, err := reg.Enroll(types.Student{Name: "Ali", Roll: 32})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id == 0 {
		t.Fatalf("expected a generated id, got 0")
	}

	got, err := reg.Lookup(32)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "Ali" {
		t.Fatalf("unexpected student: %+v", got)
	}
}

func TestEnroll_MissingNameRejected(t *testing.T) {
	store := newFakeStorage()
	reg := New(store)

	_, err := reg.Enroll(types.Student{Roll: 32})
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if !strings.Contains(err.Error(), "field Name is required") {
		t.Fatalf("expected readable validation message, got %q", err.Error())
	}
	if len(store.byRoll) != 0 {
		t.Fatalf("invalid student must not reach the store")
	}
}

func TestEnroll_NonPositiveRollRejected(t *testing.T) {
	reg := New(newFakeStorage())

	_, err := reg.Enroll(types.Student{Name: "Ali", Roll: -3})
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if !strings.Contains(err.Error(), "field Roll must be greater than 0") {
		t.Fatalf("expected readable validation message, got %q", err.Error())
	}
}

func TestEnroll_DuplicateRollRejected(t *testing.T) {
	reg := New(newFakeStorage())

	if _, err := reg.Enroll(types.Student{Name: "Ali", Roll: 32}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := reg.Enroll(types.Student{Name: "Someone Else", Roll: 32})
	if !errors.Is(err, ErrDuplicateRoll) {
		t.Fatalf("expected ErrDuplicateRoll, got %v", err)
	}
}

func TestLookup_NotFound(t *testing.T) {
	reg := New(newFakeStorage())

	_, err := reg.Lookup(99)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestList_EmptyRosterIsNonNil(t *testing.T) {
	reg := New(newFakeStorage())

	students, err := reg.List()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if students == nil || len(students) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", students)
	}
}

func TestWithdraw(t *testing.T) {
	reg := New(newFakeStorage())

	if _, err := reg.Enroll(types.Student{Name: "Rayyan", Roll: 20}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := reg.Withdraw(20); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := reg.Withdraw(20); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second withdraw, got %v", err)
	}
}
