package status

import (
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Namespace prefixes every exported metric name
const Namespace = "shipwright"

// Registry is the central metrics facade
// Systems cache metrics during construction; Update loops and event handlers write directly
// Counters and gauges are exported through Prometheus; strings feed the HUD only
type Registry struct {
	prom *prometheus.Registry

	Counters *MetricMap[prometheus.Counter]
	Gauges   *MetricMap[prometheus.Gauge]
	Strings  *MetricMap[*AtomicString]
}

// NewRegistry creates an initialized Registry backed by a private Prometheus registry
func NewRegistry() *Registry {
	r := &Registry{prom: prometheus.NewRegistry()}

	r.Counters = NewMetricMap(func(key string) prometheus.Counter {
		c := prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      metricName(key) + "_total",
			Help:      "Count of " + key + ".",
		})
		r.prom.MustRegister(c)
		return c
	})
	r.Gauges = NewMetricMap(func(key string) prometheus.Gauge {
		g := prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      metricName(key),
			Help:      "Current " + key + ".",
		})
		r.prom.MustRegister(g)
		return g
	})
	r.Strings = NewMetricMap(func(string) *AtomicString {
		return new(AtomicString)
	})
	return r
}

// metricName converts a dotted key such as "walls.committed" to a Prometheus name
func metricName(key string) string {
	return strings.NewReplacer(".", "_", "-", "_", " ", "_").Replace(key)
}

// Gatherer exposes the underlying registry for scraping and tests
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.prom
}

// Handler serves the registry in Prometheus text format
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.prom, promhttp.HandlerOpts{})
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Counters.Count() + r.Gauges.Count() + r.Strings.Count()
}
