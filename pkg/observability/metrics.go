package observability

import (
	"context"
	"net/http"

	"github.com/paddison/lesolver/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors fed by the pipeline hooks.
type Metrics struct {
	Invocations        *prometheus.CounterVec
	StageDuration      *prometheus.HistogramVec
	InvocationDuration prometheus.Histogram

	gatherer prometheus.Gatherer
}

// NewMetrics creates the collectors and registers them on a fresh registry.
func NewMetrics() *Metrics {
	return NewMetricsWith(prometheus.NewRegistry())
}

// NewMetricsWith registers the collectors on reg.
func NewMetricsWith(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		Invocations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lesolver_invocations_total",
				Help: "Total number of invocations by outcome status and failed stage",
			},
			[]string{"status", "stage"},
		),
		StageDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "lesolver_stage_duration_seconds",
				Help:    "Duration of pipeline stages",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"stage", "result"},
		),
		InvocationDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "lesolver_invocation_duration_seconds",
				Help:    "End-to-end duration of invocations",
				Buckets: prometheus.DefBuckets,
			},
		),
		gatherer: reg,
	}
	reg.MustRegister(m.Invocations, m.StageDuration, m.InvocationDuration)

	// Every outcome series exists from the start, so rates over failures read 0, not absent.
	m.Invocations.WithLabelValues(string(domain.StatusSuccess), string(domain.StageDone))
	for _, stage := range domain.Stages {
		m.Invocations.WithLabelValues(string(domain.StatusFailure), string(stage))
	}
	return m
}

// Hooks returns lifecycle hooks that record into the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStageLeave: func(ctx context.Context, e *domain.StageEvent) {
			result := "ok"
			if e.Err != nil {
				result = "error"
			}
			m.StageDuration.WithLabelValues(string(e.Stage), result).Observe(e.Duration.Seconds())
		},
		OnOutcome: func(ctx context.Context, e *domain.OutcomeEvent) {
			stage := string(e.Outcome.Stage)
			if e.Outcome.Succeeded() {
				stage = string(domain.StageDone)
			}
			m.Invocations.WithLabelValues(string(e.Outcome.Status), stage).Inc()
			m.InvocationDuration.Observe(e.Duration.Seconds())
		},
	}
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
