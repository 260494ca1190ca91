// Package interview scores mock-interview transcripts for communication,
// confidence, content and delivery, and renders narrative feedback.
package interview

import (
	"unicode/utf8"

	"github.com/jonathan/career-insights/internal/textanalysis"
	"github.com/jonathan/career-insights/internal/types"
)

const (
	fastPaceWords     = 180
	slowPaceWords     = 80
	longSentenceChars = 180
	maxLongSentences  = 2
	minStarKeywords   = 2
)

// ExtractFeatures computes the interview feature vector from a normalized
// transcript and the prompts it answered. It is deterministic.
func ExtractFeatures(doc *textanalysis.Document, prompts []string) types.InterviewFeatures {
	wordCount := doc.WordCount()
	fillers := textanalysis.FillerWords.Count(doc.Tokens)
	longSentences := countLongSentences(doc.Sentences)
	starKeywords := textanalysis.StarKeywords.CountSubstrings(doc.Lower)

	return types.InterviewFeatures{
		WordCount:               wordCount,
		FillerWordCount:         fillers,
		PositiveWordCount:       textanalysis.PositiveWords.Count(doc.Tokens),
		TechnicalTermCount:      textanalysis.TechnicalTerms.Count(doc.Tokens),
		SoftSkillCount:          textanalysis.SoftSkills.Count(doc.Tokens),
		ActionVerbCount:         textanalysis.ActionVerbs.Count(doc.Tokens),
		QuestionCount:           len(prompts),
		SentenceCount:           len(doc.Sentences),
		AverageWordsPerQuestion: averageWordsPerQuestion(wordCount, len(prompts)),
		SentenceComplexity:      textanalysis.ClassifyComplexity(wordCount, doc.SentenceCount()),
		SpeakingPace:            classifyPace(wordCount),
		LongSentenceCount:       longSentences,
		Clarity:                 classifyClarity(longSentences),
		StarKeywordCount:        starKeywords,
		StarUsage:               classifyStar(starKeywords),
		FillerRatio:             textanalysis.Ratio(fillers, wordCount),
	}
}

func averageWordsPerQuestion(wordCount, promptCount int) int {
	if promptCount == 0 {
		return wordCount
	}
	return textanalysis.RoundDiv(wordCount, promptCount)
}

func classifyPace(wordCount int) textanalysis.Pace {
	switch {
	case wordCount > fastPaceWords:
		return textanalysis.PaceFast
	case wordCount < slowPaceWords:
		return textanalysis.PaceSlow
	default:
		return textanalysis.PaceBalanced
	}
}

func countLongSentences(sentences []string) int {
	n := 0
	for _, s := range sentences {
		if utf8.RuneCountInString(s) > longSentenceChars {
			n++
		}
	}
	return n
}

func classifyClarity(longSentences int) textanalysis.Clarity {
	if longSentences > maxLongSentences {
		return textanalysis.ClarityTooLong
	}
	return textanalysis.ClarityGood
}

func classifyStar(keywords int) textanalysis.StarUsage {
	if keywords >= minStarKeywords {
		return textanalysis.StarUsed
	}
	return textanalysis.StarNotUsed
}
