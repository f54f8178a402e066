// Package metrics exposes operational counters for the verification core.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for the verification counter.
const (
	OutcomeAccepted         = "accepted"
	OutcomeRejectedExpired  = "rejected_expired"
	OutcomeRejectedInactive = "rejected_inactive"
	OutcomeNotFound         = "not_found"
	OutcomeConflict         = "invalidation_conflict"
	OutcomeInfraError       = "infra_error"
)

// AccessMetrics bundles the registry and the counters the verification
// service records into. TriggerFailures is the alert signal for the degraded
// state where secrets are consumed but the door does not open.
type AccessMetrics struct {
	Registry        *prometheus.Registry
	Verifications   *prometheus.CounterVec
	TriggerFailures prometheus.Counter
}

// New builds a dedicated registry with the doorman collectors.
func New() *AccessMetrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	m := &AccessMetrics{
		Registry: registry,
		Verifications: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "doorman",
			Name:      "verifications_total",
			Help:      "Verification attempts by outcome.",
		}, []string{"outcome"}),
		TriggerFailures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "doorman",
			Name:      "trigger_failures_total",
			Help:      "Unlock trigger emissions that failed after a secret was already consumed.",
		}),
	}

	registry.MustRegister(collectors.NewGoCollector())

	return m
}

// ObserveOutcome increments the verification counter for the given outcome.
func (m *AccessMetrics) ObserveOutcome(outcome string) {
	m.Verifications.WithLabelValues(outcome).Inc()
}
