package interview

import (
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/career-insights/internal/textanalysis"
	"github.com/jonathan/career-insights/internal/types"
)

// Options configures an Analyzer.
type Options struct {
	// Now stamps the report; defaults to time.Now.
	Now func() time.Time
}

// Analyzer scores interview transcripts. It holds no mutable state and is
// safe for concurrent use.
type Analyzer struct {
	opts Options
}

// NewAnalyzer creates an Analyzer with the given options.
func NewAnalyzer(opts Options) *Analyzer {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Analyzer{opts: opts}
}

// ScoreInterview analyzes a transcript against the prompts it answered.
// A blank transcript yields a zero-score report carrying NoSpeechMessage
// instead of an error.
func (a *Analyzer) ScoreInterview(transcript string, prompts []string) *types.InterviewReport {
	doc, err := textanalysis.Normalize(transcript)
	if err != nil {
		return a.emptyReport()
	}

	features := ExtractFeatures(doc, prompts)
	scores := Score(features)

	return &types.InterviewReport{
		ID:            uuid.New(),
		Communication: scores.Communication,
		Confidence:    scores.Confidence,
		Content:       scores.Content,
		Delivery:      scores.Delivery,
		OverallScore:  scores.Overall,
		Metrics:       features,
		Feedback:      Feedback(features, scores),
		AnalysisDate:  a.opts.Now().UTC(),
	}
}

func (a *Analyzer) emptyReport() *types.InterviewReport {
	return &types.InterviewReport{
		ID:           uuid.New(),
		Feedback:     NoSpeechMessage,
		AnalysisDate: a.opts.Now().UTC(),
	}
}

// ScoreInterview analyzes a transcript with a default analyzer.
func ScoreInterview(transcript string, prompts []string) *types.InterviewReport {
	return NewAnalyzer(Options{}).ScoreInterview(transcript, prompts)
}
