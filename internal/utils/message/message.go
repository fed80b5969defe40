// Package message formats validation failures as a single
// human-readable string.
//
// The go-playground/validator package returns one FieldError per
// failing struct field. Surfacing those errors raw ("Key: 'Student.Name'
// Error:Field validation for 'Name' failed on the 'required' tag") is
// unreadable in a log line or console message, so we convert each to a
// plain English sentence and join them with ", ".
package message

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FromValidationErrors converts a slice of validator.FieldError values
// into one descriptive string.
//
// Example output:
//
//	field Name is required, field Roll must be greater than 0
func FromValidationErrors(errs validator.ValidationErrors) string {
	var errMessages []string

	for _, e := range errs {
		switch e.ActualTag() {
		// "required" tag — field was missing or zero-valued
		case "required":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s is required", e.Field()))
		// "gt" tag — numeric field at or below the bound
		case "gt":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s must be greater than %s", e.Field(), e.Param()))
		// Catch-all for any other validation tag (min, max, len, etc.)
		default:
			errMessages = append(errMessages,
				fmt.Sprintf("field %s is invalid", e.Field()))
		}
	}

	return strings.Join(errMessages, ", ")
}
