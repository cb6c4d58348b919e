package httpserver

import (
	"github.com/go-playground/validator/v10"
)

// Validator adapts go-playground/validator to echo's Validator interface.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a request body validator.
func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

// Validate checks the struct tags of i and returns the raw validation error;
// handlers decide how to report it.
func (v *Validator) Validate(i any) error {
	return v.validate.Struct(i)
}
