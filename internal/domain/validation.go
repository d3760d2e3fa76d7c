package domain

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is the package-level validator instance used for bounds checks.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Validator returns the shared validator instance so other packages validate
// their structs with the same configuration.
func Validator() *validator.Validate { return validate }

// boundsTag renders an inclusive range as a validator tag (e.g. "gte=0,lte=10").
func boundsTag(lo, hi float64) string {
	return fmt.Sprintf("gte=%g,lte=%g", lo, hi)
}
