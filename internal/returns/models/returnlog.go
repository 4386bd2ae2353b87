package models

import (
	"time"

	dErrors "waterbilling/pkg/domain-errors"
)

// StoredStatus is the authoritative status persisted on a return log by the
// external return-submission workflow. This core never mutates it.
type StoredStatus string

const (
	StoredStatusDue       StoredStatus = "due"
	StoredStatusReceived  StoredStatus = "received"
	StoredStatusCompleted StoredStatus = "completed"
	StoredStatusVoid      StoredStatus = "void"
)

// IsValid checks if the stored status is one of the supported enum values.
func (s StoredStatus) IsValid() bool {
	switch s {
	case StoredStatusDue, StoredStatusReceived, StoredStatusCompleted, StoredStatusVoid:
		return true
	}
	return false
}

// ParseStoredStatus creates a StoredStatus from a string, validating it.
func ParseStoredStatus(raw string) (StoredStatus, error) {
	if raw == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "return log status cannot be empty")
	}
	s := StoredStatus(raw)
	if !s.IsValid() {
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid return log status: "+raw)
	}
	return s, nil
}

// String returns the string representation.
func (s StoredStatus) String() string {
	return string(s)
}

// DisplayStatus is what a return log shows as on screen. It is derived on
// every read from the stored status plus the current date, never persisted.
type DisplayStatus string

const (
	DisplayComplete  DisplayStatus = "complete"
	DisplayReceived  DisplayStatus = "received"
	DisplayVoid      DisplayStatus = "void"
	DisplayNotDueYet DisplayStatus = "not due yet"
	DisplayOpen      DisplayStatus = "open"
	DisplayOverdue   DisplayStatus = "overdue"
	DisplayDue       DisplayStatus = "due"
)

// String returns the string representation.
func (s DisplayStatus) String() string {
	return string(s)
}

// ReturnLog is a read-only projection of one return log record.
type ReturnLog struct {
	Status  StoredStatus
	EndDate time.Time
	// DueDate is nil for return logs with no submission deadline.
	DueDate *time.Time
}
