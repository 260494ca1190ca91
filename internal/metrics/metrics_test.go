package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveAnalysis(t *testing.T) {
	m := MustNewMetrics(prometheus.NewRegistry())

	m.ObserveAnalysis(ModeResume, OutcomeOK, 2*time.Millisecond)
	m.ObserveAnalysis(ModeResume, OutcomeOK, time.Millisecond)
	m.ObserveAnalysis(ModeInterview, OutcomeEmpty, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.analyses.WithLabelValues(ModeResume, OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.analyses.WithLabelValues(ModeInterview, OutcomeEmpty)))
	assert.Equal(t, 2, testutil.CollectAndCount(m.analysisDuration))
}

func TestObserveScores(t *testing.T) {
	m := MustNewMetrics(prometheus.NewRegistry())

	m.ObserveScores(ModeInterview, map[string]int{"communication": 5, "delivery": 7})

	assert.Equal(t, 2, testutil.CollectAndCount(m.scores))
}

func TestCounters(t *testing.T) {
	m := MustNewMetrics(prometheus.NewRegistry())

	m.IncStoreOperation("get", OutcomeNotFound)
	m.IncJobSearch(OutcomeError)
	m.IncJobSearch(OutcomeError)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.storeOps.WithLabelValues("get", OutcomeNotFound)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.jobSearches.WithLabelValues(OutcomeError)))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveAnalysis(ModeResume, OutcomeOK, time.Millisecond)
		m.ObserveScores(ModeResume, map[string]int{"ats": 50})
		m.IncStoreOperation("set", OutcomeOK)
		m.IncJobSearch(OutcomeOK)
	})
}

func TestMustNewMetrics_ReusesRegisteredCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	first := MustNewMetrics(reg)
	second := MustNewMetrics(reg)

	first.IncJobSearch(OutcomeOK)
	assert.Equal(t, 1.0, testutil.ToFloat64(second.jobSearches.WithLabelValues(OutcomeOK)))
}

func TestHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := MustNewMetrics(reg)
	m.ObserveAnalysis(ModeResume, OutcomeOK, time.Millisecond)

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `career_insights_analyses_total{mode="resume",outcome="ok"} 1`)
}
