package reports

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/career-insights/internal/interview"
	"github.com/jonathan/career-insights/internal/resume"
	"github.com/jonathan/career-insights/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepository(t *testing.T) *Repository {
	t.Helper()
	s, err := store.NewMemory(16)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return NewRepository(s)
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "users/u1/resume", ResumeKey("u1"))
	assert.Equal(t, "users/u1/interviews/s9", InterviewKey("u1", "s9"))
}

func TestResumeReportRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := newRepository(t)

	seed := int64(3)
	report, err := resume.NewAnalyzer(resume.Options{Seed: &seed}).
		ScoreResume("Jane Doe jane@example.com 555-123-4567. Led a team building python services.")
	require.NoError(t, err)

	require.NoError(t, repo.SaveResumeReport(ctx, "u1", report))

	got, err := repo.GetResumeReport(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, report.ID, got.ID)
	assert.Equal(t, report.ATSScore, got.ATSScore)
	assert.Equal(t, report.Strengths, got.Strengths)
	assert.Equal(t, report.Features, got.Features)
	assert.True(t, report.AnalysisDate.Equal(got.AnalysisDate))
}

func TestResumeReport_LatestWins(t *testing.T) {
	ctx := context.Background()
	repo := newRepository(t)

	first, err := resume.ScoreResume("first resume with python")
	require.NoError(t, err)
	second, err := resume.ScoreResume("second resume with golang")
	require.NoError(t, err)

	require.NoError(t, repo.SaveResumeReport(ctx, "u1", first))
	require.NoError(t, repo.SaveResumeReport(ctx, "u1", second))

	got, err := repo.GetResumeReport(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, second.ID, got.ID)
}

func TestInterviewReportRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := newRepository(t)

	report := interview.NewAnalyzer(interview.Options{Now: func() time.Time {
		return time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)
	}}).ScoreInterview("I designed the API and the result was great. The situation was tough.", []string{"q"})

	require.NoError(t, repo.SaveInterviewReport(ctx, "u1", report))
	require.NotEmpty(t, report.SessionID)
	_, err := uuid.Parse(report.SessionID)
	assert.NoError(t, err)

	got, err := repo.GetInterviewReport(ctx, "u1", report.SessionID)
	require.NoError(t, err)
	assert.Equal(t, report.OverallScore, got.OverallScore)
	assert.Equal(t, report.Metrics, got.Metrics)
	assert.Equal(t, report.Feedback, got.Feedback)
}

func TestNotFound(t *testing.T) {
	ctx := context.Background()
	repo := newRepository(t)

	_, err := repo.GetResumeReport(ctx, "nobody")
	var notFound *NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "users/nobody/resume", notFound.Key)
	assert.True(t, errors.Is(err, store.ErrNotFound))

	_, err = repo.GetInterviewReport(ctx, "nobody", "s1")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestInvalidIdentifiers(t *testing.T) {
	ctx := context.Background()
	repo := newRepository(t)

	tests := []struct {
		name string
		run  func() error
	}{
		{"blank user", func() error { _, err := repo.GetResumeReport(ctx, " "); return err }},
		{"slash in user", func() error { _, err := repo.GetResumeReport(ctx, "a/b"); return err }},
		{"blank session", func() error { _, err := repo.GetInterviewReport(ctx, "u1", ""); return err }},
		{"slash in session", func() error {
			r := interview.ScoreInterview("", nil)
			r.SessionID = "x/y"
			return repo.SaveInterviewReport(ctx, "u1", r)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run()
			require.Error(t, err)
			assert.False(t, errors.Is(err, store.ErrNotFound))
			var invalid *InvalidIDError
			assert.True(t, errors.As(err, &invalid))
		})
	}
}
