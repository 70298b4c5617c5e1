// Package metrics registers the Prometheus collectors for the canopy
// server: evaluation throughput and latency, the current health score,
// and alert counts by status band.
package metrics

import (
	"time"

	"github.com/canopyhq/canopy/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics bundles the canopy collectors.
type Metrics struct {
	Evaluations        prometheus.Counter
	EvaluationDuration prometheus.Histogram
	HealthScore        prometheus.Gauge
	Alerts             *prometheus.GaugeVec
}

// New creates and registers the collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Evaluations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "canopy_evaluations_total",
			Help: "Total number of tree evaluations",
		}),
		EvaluationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "canopy_evaluation_duration_seconds",
			Help:    "Duration of tree evaluations",
			Buckets: prometheus.DefBuckets,
		}),
		HealthScore: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "canopy_health_score",
			Help: "Current supply chain health score (tree root)",
		}),
		Alerts: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "canopy_alerts",
			Help: "Number of alerting nodes in the latest evaluation",
		}, []string{"status"}),
	}
	reg.MustRegister(m.Evaluations, m.EvaluationDuration, m.HealthScore, m.Alerts)
	return m
}

// ObserveSnapshot records one evaluation. Safe to call on a nil receiver
// so hosts without metrics can skip the wiring.
func (m *Metrics) ObserveSnapshot(snap *domain.Snapshot, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.Evaluations.Inc()
	m.EvaluationDuration.Observe(elapsed.Seconds())

	if health, ok := snap.Health(); ok {
		m.HealthScore.Set(health.Score)
	}

	counts := map[domain.Status]int{}
	for _, a := range snap.Alerts {
		counts[a.Node.Status]++
	}
	for _, st := range []domain.Status{domain.StatusAmber, domain.StatusRed} {
		m.Alerts.WithLabelValues(string(st)).Set(float64(counts[st]))
	}
}
