package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the two-part tariff review module.
type Metrics struct {
	ValidationFailures *prometheus.CounterVec
	Amendments         prometheus.Counter
}

// New creates a Metrics instance with all review module metrics registered.
func New() *Metrics {
	return &Metrics{
		ValidationFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "waterbilling_factor_validation_failures_total",
			Help: "Adjustment factor submissions rejected by validation, by field",
		}, []string{"field"}),
		Amendments: promauto.NewCounter(prometheus.CounterOpts{
			Name: "waterbilling_charge_reference_amendments_total",
			Help: "Successful charge reference factor amendments",
		}),
	}
}

// IncrementValidationFailure records a rejected factor submission.
func (m *Metrics) IncrementValidationFailure(field string) {
	m.ValidationFailures.WithLabelValues(field).Inc()
}

// IncrementAmendment records a successfully persisted amendment.
func (m *Metrics) IncrementAmendment() {
	m.Amendments.Inc()
}
