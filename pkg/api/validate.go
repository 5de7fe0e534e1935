package api

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks a request body against its struct tags.
func Validate(v any) error {
	return validate.Struct(v)
}
