// Package validator wires go-playground validation into Echo's binding step.
package validator

import (
	domainerrors "bid4service/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// RequestValidator implements echo.Validator on top of go-playground/validator.
type RequestValidator struct {
	validate *validator.Validate
}

// New creates the validator used by the Echo server.
func New() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// Validate checks a bound request struct against its `validate` tags.
func (v *RequestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
