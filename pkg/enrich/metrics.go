package enrich

import "github.com/prometheus/client_golang/prometheus"

const (
	kindPhoto   = "photo"
	kindWeather = "weather"

	outcomeHit      = "hit"
	outcomeFetched  = "fetched"
	outcomeFallback = "fallback"
)

type Metrics struct {
	lookups *prometheus.CounterVec
}

// NewMetrics registers the enrichment counters on reg. A nil reg leaves
// them unregistered, which tests use.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	lookups := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "wanderplan_enrichment_lookups_total",
		Help: "Place enrichment lookups by kind and outcome.",
	}, []string{"kind", "outcome"})
	if reg != nil {
		reg.MustRegister(lookups)
	}
	return &Metrics{lookups: lookups}
}

func (m *Metrics) observe(kind, outcome string) {
	if m == nil {
		return
	}
	m.lookups.WithLabelValues(kind, outcome).Inc()
}
