package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"waterbilling/internal/billrun/models"
	id "waterbilling/pkg/domain"
)

type EvaluatorSuite struct {
	suite.Suite
	evaluator *Evaluator
	candidate CandidateBillRun
}

func TestEvaluatorSuite(t *testing.T) {
	suite.Run(t, new(EvaluatorSuite))
}

func (s *EvaluatorSuite) SetupTest() {
	s.evaluator = NewEvaluator()
	s.candidate = CandidateBillRun{
		RegionID:              id.NewRegionID(),
		ToFinancialYearEnding: 2024,
		BatchType:             models.BatchTypeAnnual,
		Scheme:                models.SchemeCurrent,
	}
}

func (s *EvaluatorSuite) match(batchType models.BatchType, status models.Status) models.BillRun {
	return models.BillRun{
		ID:                    id.NewBillRunID(),
		BatchType:             batchType,
		Scheme:                models.SchemeCurrent,
		Status:                status,
		RegionID:              s.candidate.RegionID,
		ToFinancialYearEnding: 2024,
		CreatedAt:             time.Date(2024, time.April, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (s *EvaluatorSuite) TestEvaluate() {
	s.Run("no matches means not blocked", func() {
		decision := s.evaluator.Evaluate(s.candidate, nil)
		s.False(decision.Blocked)
		s.Empty(decision.Title)
		s.Empty(decision.Link)
	})

	s.Run("supplementary match blocks regardless of status", func() {
		for _, status := range []models.Status{models.StatusReady, models.StatusSent, models.StatusProcessing} {
			decision := s.evaluator.Evaluate(s.candidate, []models.BillRun{s.match(models.BatchTypeSupplementary, status)})
			s.True(decision.Blocked)
			s.Equal("This bill run is blocked", decision.Title)
			s.Equal("You need to confirm or cancel this bill run before you can create a new one", decision.Message)
		}
	})

	s.Run("unsent non-supplementary match asks for cancellation", func() {
		decision := s.evaluator.Evaluate(s.candidate, []models.BillRun{s.match(models.BatchTypeAnnual, models.StatusReady)})
		s.True(decision.Blocked)
		s.Equal("This bill run already exists", decision.Title)
		s.Equal("You need to cancel this bill run before you can create a new one", decision.Message)
	})

	s.Run("sent non-supplementary match states the one per year rule", func() {
		decision := s.evaluator.Evaluate(s.candidate, []models.BillRun{s.match(models.BatchTypeAnnual, models.StatusSent)})
		s.True(decision.Blocked)
		s.Equal("This bill run already exists", decision.Title)
		s.Equal("You can only have one Annual bill run per region in a financial year", decision.Message)
	})

	s.Run("sent two-part tariff names the full type label", func() {
		match := s.match(models.BatchTypeTwoPartTariff, models.StatusSent)
		match.Scheme = models.SchemeOld
		match.Summer = true
		decision := s.evaluator.Evaluate(s.candidate, []models.BillRun{match})
		s.Equal("You can only have one Two-part tariff summer bill run per region in a financial year", decision.Message)
	})

	s.Run("only the first match is consulted", func() {
		first := s.match(models.BatchTypeAnnual, models.StatusSent)
		second := s.match(models.BatchTypeSupplementary, models.StatusReady)
		decision := s.evaluator.Evaluate(s.candidate, []models.BillRun{first, second})
		s.Equal("This bill run already exists", decision.Title)
		s.Contains(decision.Link, first.ID.String())
	})
}

func (s *EvaluatorSuite) TestConflictLink() {
	s.Run("non-review status links to the standard view", func() {
		match := s.match(models.BatchTypeAnnual, models.StatusReady)
		decision := s.evaluator.Evaluate(s.candidate, []models.BillRun{match})
		s.Equal("/system/bill-runs/"+match.ID.String(), decision.Link)
	})

	s.Run("review status after the old scheme links to the review screen", func() {
		match := s.match(models.BatchTypeTwoPartTariff, models.StatusReview)
		match.ToFinancialYearEnding = 2023
		decision := s.evaluator.Evaluate(s.candidate, []models.BillRun{match})
		s.Equal("/system/bill-runs/"+match.ID.String()+"/review", decision.Link)
	})

	s.Run("review status in the old scheme links to the legacy screen", func() {
		match := s.match(models.BatchTypeTwoPartTariff, models.StatusReview)
		match.ToFinancialYearEnding = 2022
		match.Scheme = models.SchemeOld
		decision := s.evaluator.Evaluate(s.candidate, []models.BillRun{match})
		s.Equal("/billing/batch/"+match.ID.String()+"/two-part-tariff-review", decision.Link)
	})
}
