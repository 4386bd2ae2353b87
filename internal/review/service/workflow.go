package service

import (
	"context"
	"fmt"
	"log/slog"

	billrun "waterbilling/internal/billrun/models"
	"waterbilling/internal/review/metrics"
	"waterbilling/internal/review/presenter"
	"waterbilling/internal/review/store"
	"waterbilling/internal/review/validator"
	id "waterbilling/pkg/domain"
	dErrors "waterbilling/pkg/domain-errors"
)

// BillRunReader supplies the bill run header the amend-factors page renders
// under. Fetching bill runs is owned by the surrounding persistence layer;
// this is the narrow slice of it the workflow needs.
type BillRunReader interface {
	Get(ctx context.Context, billRunID id.BillRunID) (billrun.BillRun, error)
}

// SubmitResult is the outcome of one factor submission. Exactly one of the
// two shapes applies: Saved with a confirmation notification, or not saved
// with the rebuilt form view carrying the collected field errors.
type SubmitResult struct {
	Saved        bool
	Notification string
	View         *presenter.FactorsView
}

// Workflow orchestrates validation and persistence of amended charge
// reference factors.
//
// Both field validations always run, so a user fixing one field sees any
// problem with the other at the same time. On success the two factors are
// persisted as independent field patches; they touch disjoint columns and
// their order is not significant.
type Workflow struct {
	store    store.Store
	billRuns BillRunReader
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

type Option func(*Workflow)

func WithLogger(logger *slog.Logger) Option {
	return func(w *Workflow) {
		w.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(w *Workflow) {
		w.metrics = m
	}
}

func New(s store.Store, billRuns BillRunReader, opts ...Option) (*Workflow, error) {
	if s == nil {
		return nil, fmt.Errorf("review charge reference store is required")
	}
	if billRuns == nil {
		return nil, fmt.Errorf("bill run reader is required")
	}

	w := &Workflow{
		store:    s,
		billRuns: billRuns,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// View builds the amend-factors page view model from stored values.
func (w *Workflow) View(ctx context.Context, billRunID id.BillRunID, refID id.ReviewChargeReferenceID) (presenter.FactorsView, error) {
	run, err := w.billRuns.Get(ctx, billRunID)
	if err != nil {
		return presenter.FactorsView{}, dErrors.Wrap(err, dErrors.CodeInternal, "fetch bill run for factors view")
	}
	ref, err := w.store.Get(ctx, refID)
	if err != nil {
		return presenter.FactorsView{}, err
	}
	return presenter.Present(run, *ref), nil
}

// Submit validates the two submitted factors and either persists them or
// returns the form view with errors. Returned errors are infrastructure
// failures only; validation failures live inside the result.
func (w *Workflow) Submit(
	ctx context.Context,
	billRunID id.BillRunID,
	licenceID id.LicenceID,
	refID id.ReviewChargeReferenceID,
	submittedAggregate, submittedCharge *string,
) (SubmitResult, error) {
	aggregate, aggregateErr := validator.ValidateFactor(submittedAggregate, validator.MaxFactorDecimalPlaces, "aggregate")
	charge, chargeErr := validator.ValidateFactor(submittedCharge, validator.MaxFactorDecimalPlaces, "charge")

	if aggregateErr == nil && chargeErr == nil {
		if err := w.store.PatchAmendedAggregate(ctx, refID, aggregate); err != nil {
			return SubmitResult{}, err
		}
		if err := w.store.PatchAmendedChargeAdjustment(ctx, refID, charge); err != nil {
			return SubmitResult{}, err
		}

		if w.metrics != nil {
			w.metrics.IncrementAmendment()
		}
		if w.logger != nil {
			w.logger.Info("charge reference factors amended",
				"bill_run_id", billRunID,
				"licence_id", licenceID,
				"review_charge_reference_id", refID,
				"amended_aggregate", aggregate.String(),
				"amended_charge_adjustment", charge.String(),
			)
		}

		return SubmitResult{
			Saved:        true,
			Notification: "The aggregate factor and charge adjustment for this licence have been updated",
		}, nil
	}

	if w.metrics != nil {
		if aggregateErr != nil {
			w.metrics.IncrementValidationFailure("aggregate")
		}
		if chargeErr != nil {
			w.metrics.IncrementValidationFailure("charge")
		}
	}

	view, err := w.View(ctx, billRunID, refID)
	if err != nil {
		return SubmitResult{}, err
	}

	// Echo the raw inputs back into the form fields so the user can correct
	// them in place; the read-only parts keep showing the stored values.
	if submittedAggregate != nil {
		view.InputtedAggregateValue = *submittedAggregate
	}
	if submittedCharge != nil {
		view.InputtedChargeValue = *submittedCharge
	}
	if aggregateErr != nil {
		view.AggregateFactorElement = &presenter.FieldErrorView{Text: aggregateErr.Message}
	}
	if chargeErr != nil {
		view.ChargeAdjustmentElement = &presenter.FieldErrorView{Text: chargeErr.Message}
	}

	return SubmitResult{View: &view}, nil
}
