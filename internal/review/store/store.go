// Package store persists review charge references. The adjustment workflow
// only ever reads a reference and patches its two amended factor columns.
package store

import (
	"context"

	"github.com/shopspring/decimal"

	"waterbilling/internal/review/models"
	id "waterbilling/pkg/domain"
)

// Store is the persistence contract for review charge references.
//
// The two patch operations update disjoint fields and are deliberately
// independent: no ordering or transactional coupling is assumed. Concurrent
// edits race last-write-wins, which is accepted for the review workflow.
type Store interface {
	Get(ctx context.Context, refID id.ReviewChargeReferenceID) (*models.ReviewChargeReference, error)
	PatchAmendedAggregate(ctx context.Context, refID id.ReviewChargeReferenceID, value decimal.Decimal) error
	PatchAmendedChargeAdjustment(ctx context.Context, refID id.ReviewChargeReferenceID, value decimal.Decimal) error
}
