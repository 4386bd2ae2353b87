package models

import (
	"time"

	id "waterbilling/pkg/domain"
	dErrors "waterbilling/pkg/domain-errors"
)

// BatchType categorizes a bill run by the kind of batch billing work it
// performs.
type BatchType string

const (
	BatchTypeAnnual               BatchType = "annual"
	BatchTypeSupplementary        BatchType = "supplementary"
	BatchTypeTwoPartTariff        BatchType = "two_part_tariff"
	BatchTypeTwoPartSupplementary BatchType = "two_part_supplementary"
)

// IsValid checks if the batch type is one of the supported enum values.
func (t BatchType) IsValid() bool {
	switch t {
	case BatchTypeAnnual, BatchTypeSupplementary, BatchTypeTwoPartTariff, BatchTypeTwoPartSupplementary:
		return true
	}
	return false
}

// IsTwoPart reports whether the batch type is one of the two-part tariff
// variants.
func (t BatchType) IsTwoPart() bool {
	return t == BatchTypeTwoPartTariff || t == BatchTypeTwoPartSupplementary
}

// DisplaysCreditDebitTotals reports whether bill runs of this batch type show
// separate credit and debit totals. Only supplementary variants may
// legitimately contain both credit and debit lines.
func (t BatchType) DisplaysCreditDebitTotals() bool {
	return t == BatchTypeSupplementary || t == BatchTypeTwoPartSupplementary
}

// ParseBatchType creates a BatchType from a string, validating it.
func ParseBatchType(s string) (BatchType, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "batch type cannot be empty")
	}
	t := BatchType(s)
	if !t.IsValid() {
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid batch type: "+s)
	}
	return t, nil
}

// String returns the string representation.
func (t BatchType) String() string {
	return string(t)
}

// Scheme identifies which charge scheme era a bill run belongs to.
type Scheme string

const (
	// SchemeOld is the pre-2022 (PRESROC) charge scheme.
	SchemeOld Scheme = "alcs"
	// SchemeCurrent is the SROC charge scheme in force from 2022-23 onwards.
	SchemeCurrent Scheme = "sroc"
)

// LastOldSchemeYear is the final financial year ending charged under the old
// scheme. Bill runs for later years always use the current scheme.
const LastOldSchemeYear = 2022

// IsValid checks if the scheme is one of the supported enum values.
func (s Scheme) IsValid() bool {
	return s == SchemeOld || s == SchemeCurrent
}

// ParseScheme creates a Scheme from a string, validating it.
func ParseScheme(raw string) (Scheme, error) {
	if raw == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "scheme cannot be empty")
	}
	s := Scheme(raw)
	if !s.IsValid() {
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid scheme: "+raw)
	}
	return s, nil
}

// String returns the string representation.
func (s Scheme) String() string {
	return string(s)
}

// Status tracks a bill run through the external batch pipeline. This core
// only reads it; transitions belong to the batch engine.
type Status string

const (
	StatusQueued     Status = "queued"
	StatusEmpty      Status = "empty"
	StatusProcessing Status = "processing"
	StatusReady      Status = "ready"
	StatusReview     Status = "review"
	StatusSending    Status = "sending"
	StatusSent       Status = "sent"
	StatusError      Status = "error"
	StatusCancel     Status = "cancel"
)

// IsValid checks if the status is one of the supported enum values.
func (s Status) IsValid() bool {
	switch s {
	case StatusQueued, StatusEmpty, StatusProcessing, StatusReady, StatusReview,
		StatusSending, StatusSent, StatusError, StatusCancel:
		return true
	}
	return false
}

// String returns the string representation.
func (s Status) String() string {
	return string(s)
}

// BillRun is a read-only projection of one batch unit of billing work for a
// region/financial-year/type combination.
//
// Invariants:
//   - The triple (BatchType, Scheme, Summer) maps to exactly one display
//     label.
//   - Summer is meaningful only when Scheme is old and BatchType is
//     two_part_tariff; it is ignored everywhere else.
type BillRun struct {
	ID                    id.BillRunID
	BatchType             BatchType
	Scheme                Scheme
	Summer                bool
	Status                Status
	RegionID              id.RegionID
	RegionName            string
	ToFinancialYearEnding int
	CreatedAt             time.Time
	ErrorCode             *int
}

// batchErrorMessages maps batch engine error codes to operator-facing
// descriptions. The zero/unknown case falls back rather than failing.
var batchErrorMessages = map[int]string{
	10:  "Error when populating the charge versions.",
	20:  "Error when processing the charge versions.",
	30:  "Error when preparing the transactions.",
	40:  "Error when requesting or processing a customer file.",
	50:  "Error when creating the bill run.",
	60:  "Error when deleting an invoice.",
	70:  "Error when processing two-part tariff.",
	80:  "Error due to no licences with charge versions.",
	90:  "Error when getting the Charge Module bill run summary.",
	100: "Error when volume matching two-part tariff.",
	110: "Error when deleting charge info.",
}

// ErrorMessage returns the description for the bill run's error code, or the
// documented fallback when no code was assigned or the code is unmapped.
func (b BillRun) ErrorMessage() string {
	if b.ErrorCode != nil {
		if msg, ok := batchErrorMessages[*b.ErrorCode]; ok {
			return msg
		}
	}
	return "No error code was assigned. We have no further information at this time."
}
