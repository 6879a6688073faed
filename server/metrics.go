package server

import (
	"net/http"

	"github.com/epishuffle/epishuffle/catalog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Pick outcomes reported in the picks counter.
const (
	outcomePicked  = "picked"
	outcomeUnknown = "unknown"
	outcomeError   = "error"
)

// metrics lives in its own registry so that several servers can coexist in one process.
type metrics struct {
	registry *prometheus.Registry
	picks    *prometheus.CounterVec
	requests *prometheus.CounterVec
}

func newMetrics(c *catalog.Catalog) *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		picks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "epishuffle",
			Name:      "picks_total",
			Help:      "Random episode picks by show and outcome.",
		}, []string{"show", "outcome"}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "epishuffle",
			Name:      "http_requests_total",
			Help:      "HTTP requests by status code and method.",
		}, []string{"code", "method"}),
	}

	stats := c.Stats()
	m.registry.MustRegister(
		m.picks,
		m.requests,
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: "epishuffle",
			Name:      "catalog_shows",
			Help:      "Shows in the loaded catalog.",
		}, func() float64 { return float64(stats.Shows) }),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: "epishuffle",
			Name:      "catalog_episodes",
			Help:      "Episodes in the loaded catalog.",
		}, func() float64 { return float64(stats.Episodes) }),
	)
	return m
}

// observePick counts one pick. Unknown keys share an empty show label to bound cardinality.
func (m *metrics) observePick(key string, found bool, err error) {
	switch {
	case err != nil:
		m.picks.WithLabelValues(key, outcomeError).Inc()
	case found:
		m.picks.WithLabelValues(key, outcomePicked).Inc()
	default:
		m.picks.WithLabelValues("", outcomeUnknown).Inc()
	}
}

func (m *metrics) middleware(next http.Handler) http.Handler {
	return promhttp.InstrumentHandlerCounter(m.requests, next)
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
