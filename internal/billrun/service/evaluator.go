package service

import (
	"fmt"
	"log/slog"

	"waterbilling/internal/billrun/classifier"
	"waterbilling/internal/billrun/metrics"
	"waterbilling/internal/billrun/models"
	id "waterbilling/pkg/domain"
)

// CandidateBillRun describes the bill run a user is asking to create.
type CandidateBillRun struct {
	RegionID              id.RegionID
	ToFinancialYearEnding int
	BatchType             models.BatchType
	Scheme                models.Scheme
	Summer                bool
}

// Decision is the outcome of a blocking check. When Blocked is false the
// remaining fields are zero; an empty matches input is the normal unblocked
// case, not an error.
type Decision struct {
	Blocked bool
	Title   string
	Message string
	// Link points at the conflicting bill run so the user can resolve it.
	Link string
}

// Blocking reasons, used as metric labels.
const (
	reasonSupplementaryOutstanding = "supplementary_outstanding"
	reasonDuplicateInProgress      = "duplicate_in_progress"
	reasonTypeAlreadySent          = "type_already_sent"
)

// Evaluator decides whether creating a bill run is blocked by existing ones.
type Evaluator struct {
	logger  *slog.Logger
	metrics *metrics.Metrics
}

type Option func(*Evaluator)

func WithLogger(logger *slog.Logger) Option {
	return func(e *Evaluator) {
		e.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(e *Evaluator) {
		e.metrics = m
	}
}

func NewEvaluator(opts ...Option) *Evaluator {
	e := &Evaluator{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate decides whether the candidate is blocked by the supplied matching
// bill runs. Callers are expected to have filtered matches to the relevant
// region, year and type class; only the first match is consulted and no
// ordering is imposed here.
func (e *Evaluator) Evaluate(candidate CandidateBillRun, matches []models.BillRun) Decision {
	if len(matches) == 0 {
		return Decision{}
	}

	match := matches[0]
	decision := Decision{
		Blocked: true,
		Link:    conflictLink(match),
	}

	var reason string
	switch {
	case match.BatchType == models.BatchTypeSupplementary:
		reason = reasonSupplementaryOutstanding
		decision.Title = "This bill run is blocked"
		decision.Message = "You need to confirm or cancel this bill run before you can create a new one"
	case match.Status != models.StatusSent:
		reason = reasonDuplicateInProgress
		decision.Title = "This bill run already exists"
		decision.Message = "You need to cancel this bill run before you can create a new one"
	default:
		reason = reasonTypeAlreadySent
		typeLabel := classifier.TypeLabel(match.BatchType, match.Scheme, match.Summer)
		decision.Title = "This bill run already exists"
		decision.Message = fmt.Sprintf("You can only have one %s bill run per region in a financial year", typeLabel)
	}

	if e.metrics != nil {
		e.metrics.IncrementCreationBlocked(reason)
	}
	if e.logger != nil {
		e.logger.Info("bill run creation blocked",
			"reason", reason,
			"region_id", candidate.RegionID,
			"financial_year_ending", candidate.ToFinancialYearEnding,
			"existing_bill_run_id", match.ID,
		)
	}

	return decision
}

// conflictLink resolves where to send the user for the conflicting bill run.
// Bill runs still in review link to the review screen for their scheme era;
// everything else links to the standard view.
func conflictLink(match models.BillRun) string {
	if match.Status != models.StatusReview {
		return fmt.Sprintf("/system/bill-runs/%s", match.ID)
	}
	if match.ToFinancialYearEnding > models.LastOldSchemeYear {
		return fmt.Sprintf("/system/bill-runs/%s/review", match.ID)
	}
	return fmt.Sprintf("/billing/batch/%s/two-part-tariff-review", match.ID)
}
