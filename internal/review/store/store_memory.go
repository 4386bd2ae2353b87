package store

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"waterbilling/internal/review/models"
	id "waterbilling/pkg/domain"
	dErrors "waterbilling/pkg/domain-errors"
)

// InMemory is a map-backed store used by unit suites and local wiring.
type InMemory struct {
	mu   sync.RWMutex
	refs map[id.ReviewChargeReferenceID]*models.ReviewChargeReference
}

func NewInMemory() *InMemory {
	return &InMemory{
		refs: make(map[id.ReviewChargeReferenceID]*models.ReviewChargeReference),
	}
}

// Seed inserts a reference, replacing any existing record with the same ID.
func (s *InMemory) Seed(ref *models.ReviewChargeReference) {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *ref
	s.refs[ref.ID] = &copied
}

func (s *InMemory) Get(_ context.Context, refID id.ReviewChargeReferenceID) (*models.ReviewChargeReference, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ref, ok := s.refs[refID]
	if !ok {
		return nil, dErrors.New(dErrors.CodeNotFound, "review charge reference not found")
	}
	copied := *ref
	return &copied, nil
}

func (s *InMemory) PatchAmendedAggregate(_ context.Context, refID id.ReviewChargeReferenceID, value decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ref, ok := s.refs[refID]
	if !ok {
		return dErrors.New(dErrors.CodeNotFound, "review charge reference not found")
	}
	ref.AmendedAggregate = value
	return nil
}

func (s *InMemory) PatchAmendedChargeAdjustment(_ context.Context, refID id.ReviewChargeReferenceID, value decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ref, ok := s.refs[refID]
	if !ok {
		return dErrors.New(dErrors.CodeNotFound, "review charge reference not found")
	}
	ref.AmendedChargeAdjustment = value
	return nil
}
