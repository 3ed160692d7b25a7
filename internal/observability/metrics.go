// ABOUTME: Prometheus metrics for workout aggregation and source selection.
// ABOUTME: Exposed by the MCP server when a metrics address is configured.
package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	summariesCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fittrack",
		Subsystem: "workouts",
		Name:      "summaries_total",
		Help:      "Number of workout summaries served, labeled by source.",
	}, []string{"source"})

	fallbackCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "fittrack",
		Subsystem: "workouts",
		Name:      "static_fallbacks_total",
		Help:      "Number of workout requests answered by the static catalog because no other source had data.",
	})

	sourceErrorCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fittrack",
		Subsystem: "workouts",
		Name:      "source_errors_total",
		Help:      "Number of failed workout source reads, labeled by source.",
	}, []string{"source"})

	activityLoggedGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "fittrack",
		Subsystem: "activities",
		Name:      "last_logged_timestamp_seconds",
		Help:      "Unix timestamp of the most recently logged activity.",
	})
)

func init() {
	prometheus.MustRegister(summariesCounter, fallbackCounter, sourceErrorCounter, activityLoggedGauge)
}

// RecordSummaries counts n summaries served by source.
func RecordSummaries(source string, n int) {
	if n <= 0 {
		return
	}
	summariesCounter.WithLabelValues(source).Add(float64(n))
}

// RecordFallback counts one static catalog fallback.
func RecordFallback() {
	fallbackCounter.Inc()
}

// RecordSourceError counts one failed read from source.
func RecordSourceError(source string) {
	sourceErrorCounter.WithLabelValues(source).Inc()
}

// RecordActivityLogged updates the last-logged watermark gauge.
func RecordActivityLogged(ts time.Time) {
	if ts.IsZero() {
		return
	}
	activityLoggedGauge.Set(float64(ts.Unix()))
}

// Handler serves the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}
