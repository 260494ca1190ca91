package resume

import (
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/career-insights/internal/textanalysis"
	"github.com/jonathan/career-insights/internal/types"
)

// Options configures an Analyzer.
type Options struct {
	// Seed pins score jitter and feedback selection. Nil varies run to run.
	Seed *int64
	// Now stamps the report; defaults to time.Now.
	Now func() time.Time
}

// Analyzer scores resumes. It holds no mutable state and is safe for
// concurrent use.
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

// WithSeed returns a copy of the analyzer using seed. A nil seed keeps the
// current one.
func (a *Analyzer) WithSeed(seed *int64) *Analyzer {
	if seed == nil {
		return a
	}
	opts := a.opts
	opts.Seed = seed
	return &Analyzer{opts: opts}
}

// ScoreResume analyzes plain resume text. Blank text fails with
// *textanalysis.EmptyInputError.
func (a *Analyzer) ScoreResume(rawText string) (*types.ResumeReport, error) {
	return a.score(rawText, textanalysis.NewRand(a.opts.Seed))
}

func (a *Analyzer) score(rawText string, rng textanalysis.Rand) (*types.ResumeReport, error) {
	doc, err := textanalysis.Normalize(rawText)
	if err != nil {
		return nil, &textanalysis.EmptyInputError{Source: "resume"}
	}

	features := ExtractFeatures(doc)
	scores := Score(features, rng)

	return &types.ResumeReport{
		ID:               uuid.New(),
		ATSScore:         scores.ATS,
		FormatScore:      scores.Format,
		ContentScore:     scores.Content,
		KeywordScore:     scores.Keyword,
		Strengths:        Strengths(features, scores, rng),
		Improvements:     Improvements(features, scores),
		Recommendations:  Recommendations(features, scores, rng),
		DetailedAnalysis: BuildDetailedAnalysis(features),
		IndustryInsights: IndustryInsights(features),
		Features:         features,
		AnalysisDate:     a.opts.Now().UTC(),
	}, nil
}

// ScoreResume analyzes resume text with a clock-seeded analyzer.
func ScoreResume(rawText string) (*types.ResumeReport, error) {
	return NewAnalyzer(Options{}).ScoreResume(rawText)
}
