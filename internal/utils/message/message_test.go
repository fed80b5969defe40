package message

import (
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"

	"github.com/aanand-mishra/student-registry/internal/types"
)

func validationErrors(t *testing.T, s types.Student) validator.ValidationErrors {
	t.Helper()

	err := validator.New().Struct(s)
	if err == nil {
		t.Fatalf("expected validation to fail for %+v", s)
	}
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		t.Fatalf("expected ValidationErrors, got %T", err)
	}
	return errs
}

func TestFromValidationErrors_RequiredField(t *testing.T) {
	got := FromValidationErrors(validationErrors(t, types.Student{Roll: 32}))

	if got != "field Name is required" {
		t.Fatalf("unexpected message: %q", got)
	}
}

func TestFromValidationErrors_GreaterThanBound(t *testing.T) {
	got := FromValidationErrors(validationErrors(t, types.Student{Name: "Ali", Roll: -1}))

	if got != "field Roll must be greater than 0" {
		t.Fatalf("unexpected message: %q", got)
	}
}

func TestFromValidationErrors_JoinsMultipleFields(t *testing.T) {
	got := FromValidationErrors(validationErrors(t, types.Student{}))

	if !strings.Contains(got, "field Name is required") {
		t.Fatalf("missing Name message: %q", got)
	}
	if !strings.Contains(got, "field Roll is required") {
		t.Fatalf("missing Roll message: %q", got)
	}
	if !strings.Contains(got, ", ") {
		t.Fatalf("messages not joined: %q", got)
	}
}
