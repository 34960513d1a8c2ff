package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	PreferencesSaved prometheus.Counter
	DataDeletions    prometheus.Counter
	LocationSaves    prometheus.Counter
	RequestDuration  *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics.
// Call once per process; promauto registers against the default registry.
func New() *Metrics {
	return &Metrics{
		PreferencesSaved: promauto.NewCounter(prometheus.CounterOpts{
			Name: "consentry_preferences_saved_total",
			Help: "Total number of consent preference upserts",
		}),
		DataDeletions: promauto.NewCounter(prometheus.CounterOpts{
			Name: "consentry_data_deletions_total",
			Help: "Total number of GDPR data deletions",
		}),
		LocationSaves: promauto.NewCounter(prometheus.CounterOpts{
			Name: "consentry_location_saves_total",
			Help: "Total number of location records saved",
		}),
		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "consentry_http_request_duration_ms",
			Help:    "HTTP request latency in milliseconds",
			Buckets: []float64{1, 2.5, 5, 10, 25, 50, 100, 250, 500, 1000},
		}, []string{"method", "path", "status"}),
	}
}

// IncrementPreferencesSaved increments the preference upsert counter by 1.
func (m *Metrics) IncrementPreferencesSaved() {
	if m == nil {
		return
	}
	m.PreferencesSaved.Inc()
}

// IncrementDataDeletions increments the GDPR deletion counter by 1.
func (m *Metrics) IncrementDataDeletions() {
	if m == nil {
		return
	}
	m.DataDeletions.Inc()
}

// IncrementLocationSaves increments the location save counter by 1.
func (m *Metrics) IncrementLocationSaves() {
	if m == nil {
		return
	}
	m.LocationSaves.Inc()
}

// ObserveRequest records the latency of a completed HTTP request.
func (m *Metrics) ObserveRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.RequestDuration.
		WithLabelValues(method, path, strconv.Itoa(status)).
		Observe(float64(duration.Microseconds()) / 1000.0)
}
