package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Autobet agrupa as métricas do fluxo de apostas; um *Autobet nil não registra nada
type Autobet struct {
	outcomes       *prometheus.CounterVec
	snapshotErrors *prometheus.CounterVec
	requestSeconds *prometheus.HistogramVec
}

func NewAutobet(reg prometheus.Registerer) *Autobet {
	m := &Autobet{
		outcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "autobet_outcomes_total",
			Help: "resultados de Execute por tipo e código",
		}, []string{"kind", "code"}),
		snapshotErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "autobet_snapshot_errors_total",
			Help: "falhas ao carregar snapshots na construção do cliente",
		}, []string{"snapshot"}),
		requestSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "autobet_sportsbook_request_seconds",
			Help:    "latência das chamadas à casa de apostas",
			Buckets: prometheus.DefBuckets,
		}, []string{"op"}),
	}
	reg.MustRegister(m.outcomes, m.snapshotErrors, m.requestSeconds)
	return m
}

func (m *Autobet) Outcome(kind, code string) {
	if m == nil {
		return
	}
	m.outcomes.WithLabelValues(kind, code).Inc()
}

func (m *Autobet) SnapshotError(snapshot string) {
	if m == nil {
		return
	}
	m.snapshotErrors.WithLabelValues(snapshot).Inc()
}

func (m *Autobet) ObserveRequest(op string, start time.Time) {
	if m == nil {
		return
	}
	m.requestSeconds.WithLabelValues(op).Observe(time.Since(start).Seconds())
}
