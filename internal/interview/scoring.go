package interview

import (
	"github.com/jonathan/career-insights/internal/textanalysis"
	"github.com/jonathan/career-insights/internal/types"
)

const (
	baseScore = 5
	minScore  = 1
	maxScore  = 10

	heavyFillerCount   = 10
	heavyFillerRatio   = 0.1
	positiveWordBonus  = 4
	longAnswerWords    = 150
	technicalTermBonus = 4
	shortAnswerWords   = 10
)

// Scores holds the four interview dimensions and their rounded mean.
type Scores struct {
	Communication int
	Confidence    int
	Content       int
	Delivery      int
	Overall       int
}

// Score derives the dimension scores from the feature vector.
func Score(f types.InterviewFeatures) Scores {
	s := Scores{
		Communication: scoreCommunication(f),
		Confidence:    scoreConfidence(f),
		Content:       scoreContent(f),
		Delivery:      scoreDelivery(f),
	}
	s.Overall = textanalysis.RoundDiv(s.Communication+s.Confidence+s.Content+s.Delivery, 4)
	return s
}

func scoreCommunication(f types.InterviewFeatures) int {
	score := baseScore

	switch f.SentenceComplexity {
	case textanalysis.ComplexityComplex:
		score++
	case textanalysis.ComplexityModerate, textanalysis.ComplexitySimple:
	}

	if f.FillerWordCount > heavyFillerCount {
		score -= 2
	}

	switch f.Clarity {
	case textanalysis.ClarityTooLong:
		score -= 2
	case textanalysis.ClarityGood:
	}

	return textanalysis.Clamp(score, minScore, maxScore)
}

func scoreConfidence(f types.InterviewFeatures) int {
	score := baseScore

	if f.PositiveWordCount > positiveWordBonus {
		score += 2
	}
	if textanalysis.Ratio(f.FillerWordCount, f.WordCount) > heavyFillerRatio {
		score -= 2
	}
	if f.WordCount > longAnswerWords {
		score++
	}

	return textanalysis.Clamp(score, minScore, maxScore)
}

func scoreContent(f types.InterviewFeatures) int {
	score := baseScore

	if f.TechnicalTermCount > technicalTermBonus {
		score += 2
	}
	if f.AverageWordsPerQuestion < shortAnswerWords {
		score -= 2
	}

	switch f.StarUsage {
	case textanalysis.StarUsed:
		score += 2
	case textanalysis.StarNotUsed:
	}

	return textanalysis.Clamp(score, minScore, maxScore)
}

func scoreDelivery(f types.InterviewFeatures) int {
	score := baseScore

	switch f.SpeakingPace {
	case textanalysis.PaceBalanced:
		score += 2
	case textanalysis.PaceFast:
		score--
	case textanalysis.PaceSlow:
	}

	switch f.SentenceComplexity {
	case textanalysis.ComplexitySimple:
		score--
	case textanalysis.ComplexityModerate, textanalysis.ComplexityComplex:
	}

	return textanalysis.Clamp(score, minScore, maxScore)
}
