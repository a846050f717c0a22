// Package metrics exposes prometheus counters for sheet actions
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/KirkDiggler/godbound-api/internal/errors"
)

const namespace = "godbound"

// Metrics owns its registry so tests and multiple servers don't collide on
// the global default. Methods are safe on a nil receiver.
type Metrics struct {
	registry *prometheus.Registry

	intents *prometheus.CounterVec
	checks  *prometheus.CounterVec
	effort  *prometheus.CounterVec
	damage  *prometheus.CounterVec
}

// New creates the counters on a fresh registry
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		intents: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sheet_intents_total",
			Help:      "Sheet intents dispatched, partitioned by intent and result code.",
		}, []string{"intent", "code"}),
		checks: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "checks_resolved_total",
			Help:      "Checks resolved, partitioned by kind and outcome.",
		}, []string{"kind", "outcome"}),
		effort: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "effort_changes_total",
			Help:      "Effort commits and reclaims, partitioned by category and direction.",
		}, []string{"category", "direction"}),
		damage: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "damage_applied_total",
			Help:      "Damage applied to subjects, partitioned by pool.",
		}, []string{"pool"}),
	}
}

// ObserveIntent counts a dispatched intent by its result code
func (m *Metrics) ObserveIntent(intent string, err error) {
	if m == nil {
		return
	}
	code := errors.CodeOK
	if err != nil {
		code = errors.GetCode(err)
	}
	m.intents.WithLabelValues(intent, code.String()).Inc()
}

// ObserveCheck counts a resolved check
func (m *Metrics) ObserveCheck(kind string, succeeded bool) {
	if m == nil {
		return
	}
	outcome := "failure"
	if succeeded {
		outcome = "success"
	}
	m.checks.WithLabelValues(kind, outcome).Inc()
}

// ObserveEffort counts an effort change
func (m *Metrics) ObserveEffort(category string, change int) {
	if m == nil {
		return
	}
	direction := "commit"
	if change < 0 {
		direction = "reclaim"
	}
	m.effort.WithLabelValues(category, direction).Inc()
}

// AddDamage adds amount to the damage counter for a pool
func (m *Metrics) AddDamage(pool string, amount int) {
	if m == nil || amount <= 0 {
		return
	}
	m.damage.WithLabelValues(pool).Add(float64(amount))
}

// Registry returns the underlying registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
