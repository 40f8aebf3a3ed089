// Package metrics collects Prometheus metrics of a generator run and writes
// them to a text file, ready for the node_exporter textfile collector.
package metrics

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/passgen/passgen/internal/strength"
)

const namespace = "passgen"

// Metrics holds the collectors of a single run.
type Metrics struct {
	registry *prometheus.Registry

	LogStatements      *prometheus.CounterVec
	PasswordsGenerated prometheus.Counter
	PasswordLength     prometheus.Gauge
	PossibleChars      prometheus.Gauge
	EntropyBits        prometheus.Gauge
	LastGenerated      prometheus.Gauge
}

// New registers all collectors in a fresh registry.
func New(appName string) *Metrics {
	labels := prometheus.Labels{"app": appName}

	m := &Metrics{
		registry: prometheus.NewRegistry(),
		LogStatements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "log_statements_total",
			Help:        "Number of log statements, differentiated by log level.",
			ConstLabels: labels,
		}, []string{"level"}),
		PasswordsGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "passwords_generated_total",
			Help:        "Number of passwords generated.",
			ConstLabels: labels,
		}),
		PasswordLength: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "password_length",
			Help:        "Length of the generated passwords.",
			ConstLabels: labels,
		}),
		PossibleChars: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "possible_chars",
			Help:        "Number of characters each position is drawn from.",
			ConstLabels: labels,
		}),
		EntropyBits: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "password_entropy_bits",
			Help:        "Entropy of the generated passwords in bits.",
			ConstLabels: labels,
		}),
		LastGenerated: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "last_generated_timestamp_seconds",
			Help:        "Unix time of the last run generating passwords.",
			ConstLabels: labels,
		}),
	}

	m.registry.MustRegister(
		m.LogStatements,
		m.PasswordsGenerated,
		m.PasswordLength,
		m.PossibleChars,
		m.EntropyBits,
		m.LastGenerated,
	)

	return m
}

// Observe records count passwords generated under est.
func (m *Metrics) Observe(est strength.Estimate, count int) {
	m.PasswordsGenerated.Add(float64(count))
	m.PasswordLength.Set(float64(est.Length))
	m.PossibleChars.Set(float64(est.PossibleChars))
	m.EntropyBits.Set(est.EntropyBits)
	m.LastGenerated.SetToCurrentTime()
}

// Gatherer returns the registry holding all collectors.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

// WriteTextfile writes all metrics to filename in the Prometheus text format.
func (m *Metrics) WriteTextfile(filename string) error {
	if err := prometheus.WriteToTextfile(filename, m.registry); err != nil {
		return errors.Wrapf(err, "failed to write metrics to %s", filename)
	}

	return nil
}
