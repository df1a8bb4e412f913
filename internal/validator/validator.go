package validator

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// patronNameRgx allows unicode letters plus the separators that occur in real
// display names (spaces, hyphens, apostrophes, dots).
var patronNameRgx = regexp.MustCompile(`^[\p{L}]+(?:[ '.\-][\p{L}]+)*$`)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterValidation("patron_name", validatePatronName)

	return validator
}

func validatePatronName(fl validator.FieldLevel) bool {
	return patronNameRgx.MatchString(fl.Field().String())
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s characters long", err.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters long", err.Param())
	case "patron_name":
		return "must contain only letters, spaces, hyphens, apostrophes, and dots"
	default:
		return "is invalid"
	}
}
