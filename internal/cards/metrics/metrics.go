package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for RequestsTotal.
const (
	OutcomeSuccess         = "success"
	OutcomeUnavailable     = "remote_unavailable"
	OutcomeRemoteError     = "remote_error"
	OutcomeDeserialization = "deserialization_error"
)

type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration prometheus.Histogram
	CardsReturned   prometheus.Histogram
}

// New registers the outbound cards metrics with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "accounts_cards_requests_total",
			Help: "Outbound cards lookups by outcome",
		}, []string{"outcome"}),
		RequestDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "accounts_cards_request_duration_seconds",
			Help:    "Duration of outbound cards lookups",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
		CardsReturned: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "accounts_cards_returned",
			Help:    "Number of cards returned per successful lookup",
			Buckets: []float64{0, 1, 2, 5, 10, 25},
		}),
	}
}

func (m *Metrics) IncrementRequest(outcome string) {
	m.RequestsTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveRequest(start time.Time) {
	m.RequestDuration.Observe(time.Since(start).Seconds())
}

func (m *Metrics) ObserveCardsReturned(n int) {
	m.CardsReturned.Observe(float64(n))
}
