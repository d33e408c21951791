package live

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures session metrics.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "vango").
	Namespace string

	// Subsystem is the metrics subsystem (default: "controls").
	Subsystem string

	// Buckets are the histogram buckets for render duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// Metrics holds the Prometheus collectors shared by all sessions of a
// process. Create it once with NewMetrics.
type Metrics struct {
	eventsTotal    *prometheus.CounterVec
	eventErrors    *prometheus.CounterVec
	rendersTotal   prometheus.Counter
	renderDuration prometheus.Histogram
	outsideClicks  prometheus.Counter
	activeSessions prometheus.Gauge
}

// NewMetrics registers the session collectors.
//
// Metrics collected:
//   - vango_controls_events_total: events by type
//   - vango_controls_event_errors_total: failed events by type
//   - vango_controls_renders_total: render passes
//   - vango_controls_render_duration_seconds: time to settle a render
//   - vango_controls_outside_clicks_total: click-outside notifications
//   - vango_controls_active_sessions: open sessions
func NewMetrics(config MetricsConfig) *Metrics {
	if config.Namespace == "" {
		config.Namespace = "vango"
	}
	if config.Subsystem == "" {
		config.Subsystem = "controls"
	}
	if config.Buckets == nil {
		config.Buckets = prometheus.DefBuckets
	}
	if config.Registry == nil {
		config.Registry = prometheus.DefaultRegisterer
	}

	factory := promauto.With(config.Registry)

	return &Metrics{
		eventsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: config.Namespace,
			Subsystem: config.Subsystem,
			Name:      "events_total",
			Help:      "Total number of events dispatched to sessions",
		}, []string{"type"}),

		eventErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: config.Namespace,
			Subsystem: config.Subsystem,
			Name:      "event_errors_total",
			Help:      "Total number of events that failed",
		}, []string{"type"}),

		rendersTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: config.Namespace,
			Subsystem: config.Subsystem,
			Name:      "renders_total",
			Help:      "Total number of render passes",
		}),

		renderDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: config.Namespace,
			Subsystem: config.Subsystem,
			Name:      "render_duration_seconds",
			Help:      "Time to render a session until its tree settles",
			Buckets:   config.Buckets,
		}),

		outsideClicks: factory.NewCounter(prometheus.CounterOpts{
			Namespace: config.Namespace,
			Subsystem: config.Subsystem,
			Name:      "outside_clicks_total",
			Help:      "Total number of click-outside notifications",
		}),

		activeSessions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: config.Namespace,
			Subsystem: config.Subsystem,
			Name:      "active_sessions",
			Help:      "Number of open sessions",
		}),
	}
}

// The methods below tolerate a nil *Metrics so sessions can run without
// instrumentation.

func (m *Metrics) event(kind string) {
	if m != nil {
		m.eventsTotal.WithLabelValues(kind).Inc()
	}
}

func (m *Metrics) eventError(kind string) {
	if m != nil {
		m.eventErrors.WithLabelValues(kind).Inc()
	}
}

func (m *Metrics) render(seconds float64, passes int) {
	if m != nil {
		m.rendersTotal.Add(float64(passes))
		m.renderDuration.Observe(seconds)
	}
}

func (m *Metrics) outsideClick() {
	if m != nil {
		m.outsideClicks.Inc()
	}
}

func (m *Metrics) sessionOpened() {
	if m != nil {
		m.activeSessions.Inc()
	}
}

func (m *Metrics) sessionClosed() {
	if m != nil {
		m.activeSessions.Dec()
	}
}
