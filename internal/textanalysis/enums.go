package textanalysis

// Complexity buckets the mean number of words per sentence.
type Complexity string

const (
	ComplexitySimple   Complexity = "simple"
	ComplexityModerate Complexity = "moderate"
	ComplexityComplex  Complexity = "complex"
)

func (c Complexity) String() string { return string(c) }

// ClassifyComplexity buckets wordCount/sentenceCount: above 20 is complex,
// above 12 is moderate, anything else is simple. A zero sentence count is
// treated as one.
func ClassifyComplexity(wordCount, sentenceCount int) Complexity {
	avg := float64(wordCount) / float64(max(1, sentenceCount))
	switch {
	case avg > 20:
		return ComplexityComplex
	case avg > 12:
		return ComplexityModerate
	default:
		return ComplexitySimple
	}
}

// Pace buckets the speaking pace of an interview transcript.
type Pace string

const (
	PaceSlow     Pace = "slow"
	PaceBalanced Pace = "balanced"
	PaceFast     Pace = "fast"
)

func (p Pace) String() string { return string(p) }

// Clarity flags transcripts with too many overlong sentences.
type Clarity string

const (
	ClarityGood    Clarity = "good"
	ClarityTooLong Clarity = "too_long"
)

func (c Clarity) String() string { return string(c) }

// StarUsage records whether an answer follows the STAR structure.
type StarUsage string

const (
	StarNotUsed StarUsage = "not_used"
	StarUsed    StarUsage = "used"
)

func (s StarUsage) String() string { return string(s) }
