// Package classifier maps a bill run's raw attributes to the display labels
// and titles the rest of the service shows for it. Every function is pure and
// total over the enumerated inputs.
package classifier

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"waterbilling/internal/billrun/models"
)

// TypeLabel returns the display label for a bill run's type. The rule table
// is first match wins:
//
//  1. a non two-part batch type is simply title-cased
//  2. two_part_supplementary has a single fixed label
//  3. current-scheme two-part tariff ignores the summer flag
//  4. old-scheme two-part tariff splits on summer vs winter and all year
func TypeLabel(batchType models.BatchType, scheme models.Scheme, summer bool) string {
	if !batchType.IsTwoPart() {
		return titleCase(string(batchType))
	}
	if batchType == models.BatchTypeTwoPartSupplementary {
		return "Two-part tariff supplementary"
	}
	if scheme == models.SchemeCurrent {
		return "Two-part tariff"
	}
	if summer {
		return "Two-part tariff summer"
	}
	return "Two-part tariff winter and all year"
}

// SchemeLabel returns the display label for a charge scheme.
func SchemeLabel(scheme models.Scheme) string {
	if scheme == models.SchemeOld {
		return "Old"
	}
	return "Current"
}

// Title builds the page title for a bill run, for example
// "Anglian two-part tariff winter and all year".
func Title(regionName string, batchType models.BatchType, scheme models.Scheme, summer bool) string {
	return titleCase(regionName) + " " + strings.ToLower(TypeLabel(batchType, scheme, summer))
}

// StatusLabel returns the status tag text shown for a bill run. The batch
// pipeline's transient states all display as "processing"; unrecognized
// statuses fall back to their raw value rather than failing.
func StatusLabel(status models.Status) string {
	switch status {
	case models.StatusQueued, models.StatusProcessing, models.StatusSending:
		return "processing"
	case models.StatusCancel:
		return "cancelled"
	default:
		return status.String()
	}
}

// titleCase capitalises each word. A cases.Caser is not safe for concurrent
// use, so one is built per call.
func titleCase(s string) string {
	return cases.Title(language.BritishEnglish).String(s)
}
