package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the bill run module.
type Metrics struct {
	CreationBlocked *prometheus.CounterVec
}

// New creates a Metrics instance with all bill run metrics registered.
func New() *Metrics {
	return &Metrics{
		CreationBlocked: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "waterbilling_bill_run_creation_blocked_total",
			Help: "Bill run creation requests blocked by an existing bill run, by reason",
		}, []string{"reason"}),
	}
}

// IncrementCreationBlocked records a blocked creation decision.
func (m *Metrics) IncrementCreationBlocked(reason string) {
	m.CreationBlocked.WithLabelValues(reason).Inc()
}
