package scope

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registration results recorded by Metrics.
const (
	resultDefined = "defined"
	resultSkipped = "skipped"
	resultInvalid = "invalid"
)

// MetricsConfig configures scope metrics.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "charm").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures scope metrics.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithRegisterer sets the Prometheus registry.
func WithRegisterer(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

// Metrics records registration activity. A nil *Metrics records nothing.
type Metrics struct {
	registrations *prometheus.CounterVec
	tags          prometheus.Gauge
	suffixChanges prometheus.Counter
}

// NewMetrics registers the scope metrics:
//   - charm_registrations_total: registrations by result (defined, skipped, invalid)
//   - charm_registered_tags: tags defined through scopes using these metrics
//   - charm_suffix_changes_total: suffix changes that replayed registrations
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := MetricsConfig{
		Namespace: "charm",
		Registry:  prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(&config)
	}

	factory := promauto.With(config.Registry)

	return &Metrics{
		registrations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "registrations_total",
			Help:        "Component registrations by result",
			ConstLabels: config.ConstLabels,
		}, []string{"result"}),

		tags: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "registered_tags",
			Help:        "Number of element tags defined",
			ConstLabels: config.ConstLabels,
		}),

		suffixChanges: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "suffix_changes_total",
			Help:        "Scope suffix changes",
			ConstLabels: config.ConstLabels,
		}),
	}
}

func (m *Metrics) registration(result string) {
	if m == nil {
		return
	}
	m.registrations.WithLabelValues(result).Inc()
	if result == resultDefined {
		m.tags.Inc()
	}
}

func (m *Metrics) suffixChanged() {
	if m == nil {
		return
	}
	m.suffixChanges.Inc()
}
