package review

import (
	"log/slog"

	"waterbilling/internal/review/metrics"
	"waterbilling/internal/review/service"
	"waterbilling/internal/review/store"
)

// Workflow orchestrates charge reference factor amendments.
type Workflow = service.Workflow

// Store is the review charge reference persistence contract.
type Store = store.Store

// NewWorkflow constructs the adjustment workflow with standard wiring.
func NewWorkflow(s store.Store, billRuns service.BillRunReader, logger *slog.Logger, m *metrics.Metrics) (*Workflow, error) {
	return service.New(s, billRuns, service.WithLogger(logger), service.WithMetrics(m))
}
