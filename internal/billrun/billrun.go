package billrun

import (
	"log/slog"

	"waterbilling/internal/billrun/metrics"
	"waterbilling/internal/billrun/service"
)

// Evaluator decides whether a new bill run is blocked by existing ones.
type Evaluator = service.Evaluator

// NewEvaluator constructs the blocking evaluator with standard wiring.
func NewEvaluator(logger *slog.Logger, m *metrics.Metrics) *Evaluator {
	return service.NewEvaluator(service.WithLogger(logger), service.WithMetrics(m))
}
