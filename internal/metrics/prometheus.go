package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/prajwal2403/task-backend/types"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	rotations         *prometheus.CounterVec
	rotationDuration  prometheus.Histogram
	rosterPeople      prometheus.Gauge
	rosterTasks       prometheus.Gauge
	schedulerWakes    *prometheus.CounterVec
	schedulerFailures prometheus.Counter
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer interface (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Prometheus metrics namespace (defaults to "taskbackend" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "taskbackend"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.rotations = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "engine",
			Name:      "rotations_total",
			Help:      "Total rotation attempts by trigger and result.",
		}, []string{"trigger", "result"})

		p.rotationDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "engine",
			Name:      "rotation_duration_seconds",
			Help:      "Latency of rotation operations in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 12), // 100us .. ~0.4s
		})

		p.rosterPeople = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "roster",
			Name:      "people",
			Help:      "Current number of people in the roster.",
		})

		p.rosterTasks = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "roster",
			Name:      "tasks",
			Help:      "Current number of tasks in the catalog.",
		})

		p.schedulerWakes = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "scheduler",
			Name:      "wakes_total",
			Help:      "Total scheduler wake cycles by trigger outcome.",
		}, []string{"triggered"})

		p.schedulerFailures = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "scheduler",
			Name:      "failures_total",
			Help:      "Total failed scheduler wake cycles.",
		})

		p.reg.MustRegister(p.rotations)
		p.reg.MustRegister(p.rotationDuration)
		p.reg.MustRegister(p.rosterPeople)
		p.reg.MustRegister(p.rosterTasks)
		p.reg.MustRegister(p.schedulerWakes)
		p.reg.MustRegister(p.schedulerFailures)
	})
}

// RecordRotation records a rotation attempt outcome for the given trigger.
func (p *PrometheusCollector) RecordRotation(trigger string, success bool) {
	p.ensureRegistered()
	result := "success"
	if !success {
		result = "failure"
	}
	p.rotations.WithLabelValues(trigger, result).Inc()
}

// ObserveRotationDuration observes rotation latency.
func (p *PrometheusCollector) ObserveRotationDuration(seconds float64) {
	p.ensureRegistered()
	p.rotationDuration.Observe(seconds)
}

// SetRosterSize sets the roster gauges.
func (p *PrometheusCollector) SetRosterSize(people, tasks int) {
	p.ensureRegistered()
	p.rosterPeople.Set(float64(people))
	p.rosterTasks.Set(float64(tasks))
}

// RecordSchedulerWake increments the wake counter with the trigger outcome.
func (p *PrometheusCollector) RecordSchedulerWake(triggered bool) {
	p.ensureRegistered()
	outcome := "false"
	if triggered {
		outcome = "true"
	}
	p.schedulerWakes.WithLabelValues(outcome).Inc()
}

// RecordSchedulerFailure increments the scheduler failure counter.
func (p *PrometheusCollector) RecordSchedulerFailure() {
	p.ensureRegistered()
	p.schedulerFailures.Inc()
}
