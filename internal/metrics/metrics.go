package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	sharesCreated prometheus.Counter
	shareLookups  *prometheus.CounterVec

	initOnce sync.Once
)

// Lookup outcomes.
const (
	OutcomeHit   = "hit"
	OutcomeMiss  = "miss"
	OutcomeError = "error"
)

// Init registers the share metrics with the default registry.
// Must be called once at startup; recording before Init is a no-op.
func Init() {
	initOnce.Do(func() {
		sharesCreated = prometheus.NewCounter(prometheus.CounterOpts{
			Name: "promptlink_shares_created_total",
			Help: "Total shares persisted via the store endpoint",
		})
		shareLookups = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "promptlink_share_lookups_total",
			Help: "Total share lookups by outcome",
		}, []string{"outcome"})

		prometheus.MustRegister(sharesCreated, shareLookups)
	})
}

// RecordShareCreated counts a successful share write.
func RecordShareCreated() {
	if sharesCreated == nil {
		return
	}
	sharesCreated.Inc()
}

// RecordShareLookup counts a share lookup with the given outcome.
func RecordShareLookup(outcome string) {
	if shareLookups == nil {
		return
	}
	shareLookups.WithLabelValues(outcome).Inc()
}
