// Package validation contains input validation for create and update
// payloads.
package validation

import "github.com/go-playground/validator/v10"

var validate = validator.New(validator.WithRequiredStructEnabled())

// Struct validates the struct's `validate` tags and returns the first
// violation found.
func Struct(v any) error {
	return validate.Struct(v)
}
