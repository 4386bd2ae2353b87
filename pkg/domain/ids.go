// Package domain holds typed identifiers shared across feature modules.
// Distinct ID types make it a compile error to pass, say, a licence ID where
// a bill run ID is expected.
package domain

import (
	"github.com/google/uuid"

	dErrors "waterbilling/pkg/domain-errors"
)

// BillRunID identifies a bill run.
type BillRunID uuid.UUID

// LicenceID identifies an abstraction licence.
type LicenceID uuid.UUID

// ReviewChargeReferenceID identifies a charge reference under two-part
// tariff review.
type ReviewChargeReferenceID uuid.UUID

// RegionID identifies a billing region.
type RegionID uuid.UUID

func NewBillRunID() BillRunID { return BillRunID(uuid.New()) }

func NewLicenceID() LicenceID { return LicenceID(uuid.New()) }

func NewReviewChargeReferenceID() ReviewChargeReferenceID {
	return ReviewChargeReferenceID(uuid.New())
}

func NewRegionID() RegionID { return RegionID(uuid.New()) }

// ParseBillRunID validates and returns a BillRunID.
func ParseBillRunID(s string) (BillRunID, error) {
	u, err := parseUUID(s, "bill run id")
	return BillRunID(u), err
}

// ParseLicenceID validates and returns a LicenceID.
func ParseLicenceID(s string) (LicenceID, error) {
	u, err := parseUUID(s, "licence id")
	return LicenceID(u), err
}

// ParseReviewChargeReferenceID validates and returns a ReviewChargeReferenceID.
func ParseReviewChargeReferenceID(s string) (ReviewChargeReferenceID, error) {
	u, err := parseUUID(s, "review charge reference id")
	return ReviewChargeReferenceID(u), err
}

// ParseRegionID validates and returns a RegionID.
func ParseRegionID(s string) (RegionID, error) {
	u, err := parseUUID(s, "region id")
	return RegionID(u), err
}

func (id BillRunID) String() string { return uuid.UUID(id).String() }
func (id BillRunID) IsNil() bool    { return uuid.UUID(id) == uuid.Nil }

func (id LicenceID) String() string { return uuid.UUID(id).String() }
func (id LicenceID) IsNil() bool    { return uuid.UUID(id) == uuid.Nil }

func (id ReviewChargeReferenceID) String() string { return uuid.UUID(id).String() }
func (id ReviewChargeReferenceID) IsNil() bool    { return uuid.UUID(id) == uuid.Nil }

func (id RegionID) String() string { return uuid.UUID(id).String() }
func (id RegionID) IsNil() bool    { return uuid.UUID(id) == uuid.Nil }

// parseUUID enforces the shared invariant: IDs must be valid, non-nil UUIDs.
func parseUUID(s, what string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, what+" cannot be empty")
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.Wrap(err, dErrors.CodeInvalidInput, "invalid "+what)
	}
	if u == uuid.Nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, what+" cannot be the nil UUID")
	}
	return u, nil
}
