// Package types holds all shared data structures (models) used across
// the application. Keeping them in one place prevents import cycles —
// the record lifecycle, registry, and storage can all import types
// without depending on each other.
package types

// Student represents a student record in our system.
//
// Struct tags serve two purposes:
//
//  1. json:"..."  — controls how the field appears when encoded to JSON
//     (lowercase names, e.g. in structured log output).
//
//  2. validate:"..." — rules checked by the go-playground/validator
//     package. "required" means the field must be non-zero / non-empty;
//     "gt=0" means the roll number must be positive.
//
// The validate tags are enforced by the registry when a student is
// enrolled. Plain record construction never validates — a record built
// with NewWithValues holds exactly the values it was given.
type Student struct {
	ID   int64  `json:"id"`
	Name string `json:"name" validate:"required"`
	Roll int    `json:"roll" validate:"required,gt=0"`
}
