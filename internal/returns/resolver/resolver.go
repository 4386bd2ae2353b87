// Package resolver derives the display status of a return log from its
// stored status and the current date. The derivation is recomputed on every
// read; nothing here is persisted.
package resolver

import (
	"time"

	"waterbilling/internal/returns/models"
	"waterbilling/pkg/platform/dates"
)

// DuePeriodDays is the span of the due window before the due date. The window
// is 28 days INCLUSIVE of the due date itself, so the start is dueDate minus
// 27 days. A value of 28 here would shift the window start a day early.
const DuePeriodDays = 27

// Resolve computes the display status for a return log.
//
// The now parameter must be captured once per evaluation and passed in, never
// read from the system clock inside a derivation, so a single page render
// cannot straddle a midnight boundary. All comparisons are calendar-day
// comparisons.
//
// Precedence, first match wins:
//
//  1. completed stores display as complete
//  2. received and void store display verbatim
//  3. still inside the return period: not due yet
//  4. no due date: open
//  5. past the due date: overdue
//  6. inside the due window: due
//  7. before the due window: open
func Resolve(log models.ReturnLog, now time.Time) models.DisplayStatus {
	switch log.Status {
	case models.StoredStatusCompleted:
		return models.DisplayComplete
	case models.StoredStatusReceived:
		return models.DisplayReceived
	case models.StoredStatusVoid:
		return models.DisplayVoid
	}

	today := dates.StartOfDay(now)
	endDate := dates.StartOfDay(log.EndDate)

	if !today.After(endDate) {
		return models.DisplayNotDueYet
	}
	if log.DueDate == nil {
		return models.DisplayOpen
	}

	dueDate := dates.StartOfDay(*log.DueDate)
	if dueDate.Before(today) {
		return models.DisplayOverdue
	}

	duePeriodStart := dueDate.AddDate(0, 0, -DuePeriodDays)
	if !today.Before(duePeriodStart) {
		return models.DisplayDue
	}
	return models.DisplayOpen
}
