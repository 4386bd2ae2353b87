// Package validator checks user-submitted adjustment factor values.
//
// Failures here are user input errors: they are returned as field-scoped
// messages for the form, never as Go errors.
package validator

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// MaxFactorDecimalPlaces is the precision ceiling callers pass for the
// aggregate and charge adjustment factors.
const MaxFactorDecimalPlaces = 15

// FieldError is a validation failure scoped to a single form field.
type FieldError struct {
	Message string
}

// ValidateFactor validates a raw submitted factor value against numeric and
// precision constraints. On success it returns the parsed decimal; on failure
// the zero decimal and a field error carrying the message to display.
//
// Two stages. The numeric stage rejects missing, unparsable and negative
// values. The precision stage splits the canonical decimal string on the
// decimal point and rejects fractional parts longer than maxDecimalPlaces;
// string splitting is deliberate, as rounding through a float would
// misreport values with many fractional digits.
//
// There is no upper bound: 1 and above pass. Only the lower bound of 0 and
// the precision ceiling are enforced.
func ValidateFactor(raw *string, maxDecimalPlaces int, fieldLabel string) (decimal.Decimal, *FieldError) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return decimal.Zero, &FieldError{Message: fmt.Sprintf("Enter a %s factor", fieldLabel)}
	}

	value, err := decimal.NewFromString(strings.TrimSpace(*raw))
	if err != nil {
		return decimal.Zero, &FieldError{Message: fmt.Sprintf("The %s factor must be a number", fieldLabel)}
	}
	if value.IsNegative() {
		return decimal.Zero, &FieldError{Message: fmt.Sprintf("The %s factor must be greater than 0", fieldLabel)}
	}

	if places := decimalPlaces(value); places > maxDecimalPlaces {
		return decimal.Zero, &FieldError{
			Message: fmt.Sprintf("The %s factor must not have more than %d decimal places", fieldLabel, maxDecimalPlaces),
		}
	}

	return value, nil
}

// decimalPlaces counts the significant fractional digits of the canonical
// string form. Trailing zeros carry no precision, so "0.500" counts as one
// place, matching how a numeric canonicalisation would render it.
func decimalPlaces(value decimal.Decimal) int {
	parts := strings.SplitN(value.String(), ".", 2)
	if len(parts) < 2 {
		return 0
	}
	return len(strings.TrimRight(parts[1], "0"))
}
