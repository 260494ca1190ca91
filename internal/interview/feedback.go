package interview

import (
	"fmt"
	"strings"

	"github.com/jonathan/career-insights/internal/textanalysis"
	"github.com/jonathan/career-insights/internal/types"
)

// NoSpeechMessage is the feedback returned for an empty transcript.
const NoSpeechMessage = "No speech was detected in your recording. Please check that your microphone is working and try again."

const maxSuggestions = 5

// Section headers of the narrative feedback, in order.
const (
	HeaderCommunication = "Communication:"
	HeaderConfidence    = "Confidence:"
	HeaderContent       = "Content Quality:"
	HeaderDelivery      = "Delivery:"
	HeaderSuggestions   = "Suggestions for Improvement:"
)

// Feedback renders the narrative for a scored transcript.
func Feedback(f types.InterviewFeatures, s Scores) string {
	var sb strings.Builder

	sb.WriteString(HeaderCommunication + "\n")
	sb.WriteString(fmt.Sprintf(
		"Your communication score is %d/10. Your sentences were %s in structure and you used %d filler words.\n\n",
		s.Communication, f.SentenceComplexity, f.FillerWordCount))

	sb.WriteString(HeaderConfidence + "\n")
	sb.WriteString(fmt.Sprintf(
		"Your confidence score is %d/10. You used %d positive words, and filler words made up %.1f%% of your answer.\n\n",
		s.Confidence, f.PositiveWordCount, f.FillerRatio*100))

	sb.WriteString(HeaderContent + "\n")
	sb.WriteString(fmt.Sprintf(
		"Your content score is %d/10. You mentioned %d technical terms and averaged %d words per question. %s\n\n",
		s.Content, f.TechnicalTermCount, f.AverageWordsPerQuestion, starSentence(f.StarUsage)))

	sb.WriteString(HeaderDelivery + "\n")
	sb.WriteString(fmt.Sprintf(
		"Your delivery score is %d/10. Your speaking pace was %s at %d words, and your clarity was rated %s.\n\n",
		s.Delivery, f.SpeakingPace, f.WordCount, clarityLabel(f.Clarity)))

	sb.WriteString(HeaderSuggestions + "\n")
	for _, suggestion := range Suggestions(f) {
		sb.WriteString("- " + suggestion + "\n")
	}

	return strings.TrimRight(sb.String(), "\n")
}

// Suggestions lists the improvements that apply to the transcript.
func Suggestions(f types.InterviewFeatures) []string {
	list := textanalysis.NewStatementList()

	list.AddIf(f.FillerWordCount > 5, `Reduce filler words such as "um", "uh" and "like"`)
	list.AddIf(f.StarUsage == textanalysis.StarNotUsed,
		"Structure behavioral answers with the STAR method (Situation, Task, Action, Result)")
	list.AddIf(f.TechnicalTermCount <= technicalTermBonus, "Include more specific technical details and examples")

	switch f.SpeakingPace {
	case textanalysis.PaceSlow:
		list.Add("Elaborate more on each answer with concrete examples")
	case textanalysis.PaceFast:
		list.Add("Slow down and pause between key points")
	case textanalysis.PaceBalanced:
	}

	list.AddIf(f.Clarity == textanalysis.ClarityTooLong, "Break long sentences into shorter, clearer statements")
	list.AddIf(f.PositiveWordCount <= positiveWordBonus, "Use more confident, positive language about your work")
	list.AddIf(f.AverageWordsPerQuestion < shortAnswerWords, "Give fuller answers to each question")

	list.Fill(1, []string{"Keep practicing to maintain your strong performance"})
	return list.Items(maxSuggestions)
}

func starSentence(u textanalysis.StarUsage) string {
	switch u {
	case textanalysis.StarUsed:
		return "You structured your answers using the STAR method."
	case textanalysis.StarNotUsed:
		return "You did not clearly use the STAR method."
	}
	return ""
}

func clarityLabel(c textanalysis.Clarity) string {
	switch c {
	case textanalysis.ClarityTooLong:
		return "too long"
	case textanalysis.ClarityGood:
		return "good"
	}
	return string(c)
}
