package live

import (
	"log/slog"

	"go.opentelemetry.io/otel/trace"
)

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger (default slog.Default()).
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMetrics records session activity on m.
func WithMetrics(m *Metrics) Option {
	return func(s *Session) {
		s.metrics = m
	}
}

// WithTracer sets the tracer used for event and render spans
// (default: the global provider's "vango/live" tracer).
func WithTracer(tracer trace.Tracer) Option {
	return func(s *Session) {
		if tracer != nil {
			s.tracer = tracer
		}
	}
}

// WithPath sets the initial location path.
func WithPath(path string) Option {
	return func(s *Session) {
		s.path = path
	}
}

// WithID sets the session ID (default: a generated "s<n>" ID).
func WithID(id string) Option {
	return func(s *Session) {
		if id != "" {
			s.id = id
		}
	}
}
