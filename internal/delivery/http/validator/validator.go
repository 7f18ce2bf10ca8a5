// Package validator adapts go-playground/validator to echo's Validator hook.
package validator

import (
	domainerrors "solarad/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// echoValidator implements echo.Validator.
type echoValidator struct {
	validate *validator.Validate
}

// New is the constructor for echoValidator.
func New() *echoValidator {
	return &echoValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate checks a bound request struct against its validation tags.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
