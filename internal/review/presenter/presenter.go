// Package presenter assembles the view models for the amend-adjustment-factor
// pages. Field names are the contract the external template renderer depends
// on.
package presenter

import (
	billrun "waterbilling/internal/billrun/models"
	"waterbilling/internal/review/models"
	"waterbilling/pkg/platform/dates"
)

// FieldErrorView is a field-scoped validation message for the form.
type FieldErrorView struct {
	Text string `json:"text"`
}

// FactorsView is the amend-factors page view model. The read-only parts
// always reflect the stored record; on a failed submission the Inputted
// values echo the user's raw input back into the form fields alongside the
// collected errors.
type FactorsView struct {
	BillRunID         string   `json:"billRunId"`
	LicenceID         string   `json:"licenceId"`
	FinancialYear     string   `json:"financialYear"`
	ChargePeriod      string   `json:"chargePeriod"`
	ChargeReference   string   `json:"chargeReference"`
	ChargeDescription string   `json:"chargeDescription"`
	AggregateFactor   string   `json:"aggregateFactor"`
	ChargeAdjustment  string   `json:"chargeAdjustment"`
	OtherAdjustments  []string `json:"otherAdjustments"`

	InputtedAggregateValue  string          `json:"inputtedAggregateValue,omitempty"`
	InputtedChargeValue     string          `json:"inputtedChargeValue,omitempty"`
	AggregateFactorElement  *FieldErrorView `json:"aggregateFactorElement,omitempty"`
	ChargeAdjustmentElement *FieldErrorView `json:"chargeAdjustmentElement,omitempty"`
}

// Present builds the view model from stored values. The amended factors are
// rendered in canonical decimal form; a stored value of exactly 0 displays
// as "0", never as an empty field.
func Present(run billrun.BillRun, ref models.ReviewChargeReference) FactorsView {
	period := ref.ReviewChargeVersion

	return FactorsView{
		BillRunID:         ref.BillRunID.String(),
		LicenceID:         ref.LicenceID.String(),
		FinancialYear:     dates.FinancialYear(run.ToFinancialYearEnding),
		ChargePeriod:      dates.LongDate(period.ChargePeriodStartDate) + " to " + dates.LongDate(period.ChargePeriodEndDate),
		ChargeReference:   ref.ChargeCategory.Reference,
		ChargeDescription: ref.ChargeCategory.ShortDescription,
		AggregateFactor:   ref.AmendedAggregate.String(),
		ChargeAdjustment:  ref.AmendedChargeAdjustment.String(),
		OtherAdjustments:  ref.OtherAdjustments(),
	}
}
