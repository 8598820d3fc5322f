// Package validator adapts the entity validator to echo.
package validator

import (
	"autoconnect/internal/domain/entity"
)

// Validator implements echo.Validator. Failures are domain ValidationErrors whose
// field paths use JSON names.
type Validator struct{}

// New creates an echo validator
func New() *Validator {
	return &Validator{}
}

// Validate runs the struct tag rules on i
func (v *Validator) Validate(i any) error {
	return entity.ValidateStruct(i)
}
