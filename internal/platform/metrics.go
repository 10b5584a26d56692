package platform

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/common/expfmt"
)

// Metrics owns the application's registry and the collectors registered on
// it. The vectors are unexported so every update goes through the methods
// below.
type Metrics struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	duration prometheus.Histogram
}

// MetricsConfig controls what gets registered besides the app metrics.
type MetricsConfig struct {
	// RuntimeCollectors adds the Go runtime and process collectors. Their
	// samples change between scrapes, so output is no longer stable.
	RuntimeCollectors bool
}

// NewMetrics creates the request counter and duration histogram and
// registers them on a fresh registry.
func NewMetrics(cfg MetricsConfig) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "app_requests_total",
			Help: "Total requests",
		}, []string{"method", "endpoint"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "app_request_duration_seconds",
			Help:    "Request duration",
			Buckets: prometheus.DefBuckets,
		}),
	}

	m.registry.MustRegister(m.requests, m.duration)
	if cfg.RuntimeCollectors {
		m.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	return m
}

// IncRequest counts one request for the method/endpoint pair.
func (m *Metrics) IncRequest(method, endpoint string) {
	m.requests.WithLabelValues(method, endpoint).Inc()
}

// ObserveDuration records d, in seconds, into the duration histogram.
func (m *Metrics) ObserveDuration(d time.Duration) {
	m.duration.Observe(d.Seconds())
}

// StartTimer starts timing against the duration histogram. Callers commit
// the observation with defer t.ObserveDuration().
func (m *Metrics) StartTimer() *prometheus.Timer {
	return prometheus.NewTimer(m.duration)
}

// Time runs fn and records its wall-clock duration exactly once, whether fn
// returns normally, returns an error or panics.
func (m *Metrics) Time(fn func() error) error {
	timer := m.StartTimer()
	defer timer.ObserveDuration()
	return fn()
}

// Render writes every registered family in the text exposition format.
func (m *Metrics) Render(w io.Writer) error {
	families, err := m.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("encode %s: %w", mf.GetName(), err)
		}
	}
	return nil
}

// Handler serves the registry. The handler itself is not instrumented, so
// scraping never changes what the next scrape returns.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		ErrorLog:      slog.NewLogLogger(slog.Default().Handler(), slog.LevelError),
		ErrorHandling: promhttp.ContinueOnError,
	})
}
