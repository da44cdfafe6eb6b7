// Package metrics provides Prometheus instrumentation for stockpilot.
//
// The client is outbound-only, so the built-in metrics cover API calls made
// against the backend rather than served requests. The demo stub server
// mounts Handler() on /metrics so the numbers can be scraped locally.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// APICallDuration tracks how long each backend call takes, broken down
	// by logical operation ("products.list", "orders.update_status", ...)
	// and status code ("200", "404", "transport").
	APICallDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "stockpilot",
			Subsystem: "api",
			Name:      "call_duration_seconds",
			Help:      "Duration of backend API calls in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation", "status"},
	)

	// APICallTotal counts all backend API calls.
	APICallTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "stockpilot",
			Subsystem: "api",
			Name:      "calls_total",
			Help:      "Total number of backend API calls.",
		},
		[]string{"operation", "status"},
	)

	// APICallsInFlight tracks concurrently outstanding backend calls.
	APICallsInFlight = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "stockpilot",
		Subsystem: "api",
		Name:      "calls_in_flight",
		Help:      "Number of backend API calls currently outstanding.",
	})

	// MutationsRejected counts mutations refused by the per-record
	// in-flight guard.
	MutationsRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "stockpilot",
			Subsystem: "store",
			Name:      "mutations_rejected_total",
			Help:      "Mutations rejected because another one was pending on the same record.",
		},
		[]string{"entity"},
	)

	// ReordersCreated counts purchase orders raised from low-stock alerts.
	ReordersCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "stockpilot",
		Subsystem: "dashboard",
		Name:      "reorders_created_total",
		Help:      "Total purchase orders created via the reorder action.",
	})
)

// DefaultRegistry is the Prometheus registry used by stockpilot.
var DefaultRegistry = prometheus.NewRegistry()

func init() {
	DefaultRegistry.MustRegister(collectors.NewGoCollector())
	DefaultRegistry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	DefaultRegistry.MustRegister(
		APICallDuration,
		APICallTotal,
		APICallsInFlight,
		MutationsRejected,
		ReordersCreated,
	)
}

// MustRegister adds custom collectors to the stockpilot registry.
func MustRegister(c ...prometheus.Collector) {
	DefaultRegistry.MustRegister(c...)
}

// ObserveAPICall records one completed backend call. statusCode <= 0 means
// the request never produced a response (transport failure).
//
//	defer func() { metrics.ObserveAPICall("products.list", code, start) }()
func ObserveAPICall(operation string, statusCode int, start time.Time) {
	status := "transport"
	if statusCode > 0 {
		status = strconv.Itoa(statusCode)
	}
	APICallDuration.WithLabelValues(operation, status).Observe(time.Since(start).Seconds())
	APICallTotal.WithLabelValues(operation, status).Inc()
}

// Handler returns an http.HandlerFunc that exposes the metrics page.
func Handler() http.HandlerFunc {
	h := promhttp.HandlerFor(DefaultRegistry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
	return h.ServeHTTP
}
