// Package metrics exposes Prometheus collectors for analyses, storage and
// job search calls.
package metrics

import (
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "career_insights"

// Analysis modes.
const (
	ModeResume    = "resume"
	ModeInterview = "interview"
)

// Outcome labels.
const (
	OutcomeOK       = "ok"
	OutcomeEmpty    = "empty"
	OutcomeError    = "error"
	OutcomeNotFound = "not_found"
)

// Metrics holds the service collectors. A nil *Metrics is a no-op.
type Metrics struct {
	analyses         *prometheus.CounterVec
	analysisDuration *prometheus.HistogramVec
	scores           *prometheus.HistogramVec
	storeOps         *prometheus.CounterVec
	jobSearches      *prometheus.CounterVec
}

// MustNewMetrics constructs the collectors and registers them with reg,
// panicking on registration errors other than re-registration.
func MustNewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		analyses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "analyses_total",
				Help:      "Analyses performed by mode and outcome.",
			},
			[]string{"mode", "outcome"},
		),
		analysisDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "analysis_duration_seconds",
				Help:      "Time spent scoring one input.",
				Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25},
			},
			[]string{"mode"},
		),
		scores: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "score",
				Help:      "Distribution of produced scores by mode and dimension.",
				Buckets:   prometheus.LinearBuckets(10, 10, 10),
			},
			[]string{"mode", "dimension"},
		),
		storeOps: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "store",
				Name:      "operations_total",
				Help:      "Report store operations by operation and outcome.",
			},
			[]string{"operation", "outcome"},
		),
		jobSearches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "jobsearch",
				Name:      "requests_total",
				Help:      "Outbound job search requests by outcome.",
			},
			[]string{"outcome"},
		),
	}

	m.analyses = register(reg, m.analyses)
	m.analysisDuration = register(reg, m.analysisDuration)
	m.scores = register(reg, m.scores)
	m.storeOps = register(reg, m.storeOps)
	m.jobSearches = register(reg, m.jobSearches)
	return m
}

// register adds c to reg, reusing an identical collector registered earlier.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	if err := reg.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(C); ok {
				return existing
			}
		}
		panic(err)
	}
	return c
}

// ObserveAnalysis records one analysis and how long it took.
func (m *Metrics) ObserveAnalysis(mode, outcome string, duration time.Duration) {
	if m == nil {
		return
	}
	m.analyses.WithLabelValues(mode, outcome).Inc()
	m.analysisDuration.WithLabelValues(mode).Observe(duration.Seconds())
}

// ObserveScores records the dimension scores of one report.
func (m *Metrics) ObserveScores(mode string, scores map[string]int) {
	if m == nil {
		return
	}
	for dimension, score := range scores {
		m.scores.WithLabelValues(mode, dimension).Observe(float64(score))
	}
}

// IncStoreOperation counts a store read or write.
func (m *Metrics) IncStoreOperation(operation, outcome string) {
	if m == nil {
		return
	}
	m.storeOps.WithLabelValues(operation, outcome).Inc()
}

// IncJobSearch counts an outbound job search request.
func (m *Metrics) IncJobSearch(outcome string) {
	if m == nil {
		return
	}
	m.jobSearches.WithLabelValues(outcome).Inc()
}

// Handler serves the metrics gathered by g in the Prometheus text format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
