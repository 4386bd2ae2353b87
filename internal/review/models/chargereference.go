package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	id "waterbilling/pkg/domain"
)

// ReviewChargeVersion carries the charge period a reviewed charge reference
// applies to.
type ReviewChargeVersion struct {
	ChargePeriodStartDate time.Time
	ChargePeriodEndDate   time.Time
}

// ChargeCategory identifies the priced category a charge reference bills
// under.
type ChargeCategory struct {
	Reference        string
	ShortDescription string
}

// ReviewChargeReference is one charge reference under two-part tariff review.
// It is created when a bill run enters review and lives until the bill run
// leaves review. The amended factors are the only fields this core mutates,
// via the adjustment workflow's two independent patches.
//
// Adjustment factors are decimals end to end. Users may submit up to 15
// decimal places, which float64 cannot represent faithfully.
type ReviewChargeReference struct {
	ID        id.ReviewChargeReferenceID
	BillRunID id.BillRunID
	LicenceID id.LicenceID

	Volume         decimal.Decimal
	ChargeCategory ChargeCategory

	// SupportedSourceName is nil when no supported source charge applies.
	SupportedSourceName *string
	// WaterCompanyCharge is nil when the public water supply charge is not
	// applicable at all, as opposed to applicable-but-false.
	WaterCompanyCharge *bool

	AmendedAggregate        decimal.Decimal
	AmendedChargeAdjustment decimal.Decimal
	// AbatementAgreement of exactly 1 means no abatement applies.
	AbatementAgreement          decimal.Decimal
	WinterDiscount              bool
	TwoPartTariffAgreement      bool
	CanalAndRiverTrustAgreement bool

	ReviewChargeVersion ReviewChargeVersion
}

// OtherAdjustments lists the adjustments applying to the reference beyond the
// two user-editable factors. The evaluation order is fixed and is part of the
// display contract; an empty slice means no other adjustments apply.
func (r ReviewChargeReference) OtherAdjustments() []string {
	adjustments := []string{}

	if r.SupportedSourceName != nil && *r.SupportedSourceName != "" {
		adjustments = append(adjustments, fmt.Sprintf("Supported source %s", *r.SupportedSourceName))
	}
	if r.WaterCompanyCharge != nil && *r.WaterCompanyCharge {
		adjustments = append(adjustments, "Public Water Supply")
	}
	if !r.AbatementAgreement.Equal(decimal.NewFromInt(1)) {
		adjustments = append(adjustments, fmt.Sprintf("Abatement agreement (%s)", r.AbatementAgreement.String()))
	}
	if r.WinterDiscount {
		adjustments = append(adjustments, "Winter discount")
	}
	if r.TwoPartTariffAgreement {
		adjustments = append(adjustments, "Two part tariff agreement")
	}
	if r.CanalAndRiverTrustAgreement {
		adjustments = append(adjustments, "Canal and River trust agreement")
	}

	return adjustments
}
