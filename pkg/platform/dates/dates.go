// Package dates provides the display date formats used across billing
// view models.
package dates

import (
	"fmt"
	"time"
)

// LongDate formats a date the way billing pages display it: "1 April 2023".
// Day numbers are not zero-padded.
func LongDate(t time.Time) string {
	return t.Format("2 January 2006")
}

// FinancialYear renders a financial year from its ending year, e.g.
// FinancialYear(2024) returns "2023 to 2024". Financial years run 1 April
// to 31 March and are identified by the calendar year they end in.
func FinancialYear(financialYearEnding int) string {
	return fmt.Sprintf("%d to %d", financialYearEnding-1, financialYearEnding)
}

// StartOfDay truncates t to midnight in its own location. Status derivation
// compares calendar days, not instants, so an afternoon "now" must not shift
// a same-day boundary.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
