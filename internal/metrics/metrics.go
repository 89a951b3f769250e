// Package metrics exposes create-employee counters to Prometheus.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"employee-portal/internal/workflow"
)

type Metrics struct {
	registry    *prometheus.Registry
	submissions *prometheus.CounterVec
	rejections  *prometheus.CounterVec
	stepFailure *prometheus.CounterVec
	duration    prometheus.Histogram
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "employee_portal",
			Name:      "employee_submissions_total",
			Help:      "Create-employee submissions that reached the backend, by result.",
		}, []string{"result"}),
		rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "employee_portal",
			Name:      "employee_form_rejections_total",
			Help:      "Create-employee submissions rejected by a form rule.",
		}, []string{"rule"}),
		stepFailure: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "employee_portal",
			Name:      "employee_step_failures_total",
			Help:      "Backend step failures while creating employees.",
		}, []string{"step"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "employee_portal",
			Name:      "employee_submission_duration_seconds",
			Help:      "Time spent on the backend steps of a submission.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(
		m.submissions, m.rejections, m.stepFailure, m.duration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) Rejected(rule workflow.Rule) {
	m.rejections.WithLabelValues(string(rule)).Inc()
}

func (m *Metrics) StepFailed(step workflow.Step) {
	m.stepFailure.WithLabelValues(string(step)).Inc()
}

func (m *Metrics) Completed(created bool, elapsed time.Duration) {
	result := "failed"
	if created {
		result = "created"
	}
	m.submissions.WithLabelValues(result).Inc()
	m.duration.Observe(elapsed.Seconds())
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
