package types

import (
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/career-insights/internal/textanalysis"
)

// InterviewFeatures is the feature vector extracted from an interview transcript.
type InterviewFeatures struct {
	WordCount               int                     `json:"wordCount"`
	FillerWordCount         int                     `json:"fillerWordCount"`
	PositiveWordCount       int                     `json:"positiveWordCount"`
	TechnicalTermCount      int                     `json:"technicalTermCount"`
	SoftSkillCount          int                     `json:"softSkillCount"`
	ActionVerbCount         int                     `json:"actionVerbCount"`
	QuestionCount           int                     `json:"questionCount"`
	SentenceCount           int                     `json:"sentenceCount"`
	AverageWordsPerQuestion int                     `json:"averageWordsPerQuestion"`
	SentenceComplexity      textanalysis.Complexity `json:"sentenceComplexity,omitempty"`
	SpeakingPace            textanalysis.Pace       `json:"speakingPace,omitempty"`
	LongSentenceCount       int                     `json:"longSentenceCount"`
	Clarity                 textanalysis.Clarity    `json:"clarity,omitempty"`
	StarKeywordCount        int                     `json:"starKeywordCount"`
	StarUsage               textanalysis.StarUsage  `json:"starUsage,omitempty"`
	FillerRatio             float64                 `json:"fillerRatio"`
}

// InterviewReport is the result of scoring a mock-interview transcript.
type InterviewReport struct {
	ID            uuid.UUID         `json:"id"`
	SessionID     string            `json:"sessionId,omitempty"`
	Communication int               `json:"communication"`
	Confidence    int               `json:"confidence"`
	Content       int               `json:"content"`
	Delivery      int               `json:"delivery"`
	OverallScore  int               `json:"overallScore"`
	Metrics       InterviewFeatures `json:"metrics"`
	Feedback      string            `json:"feedback"`
	AnalysisDate  time.Time         `json:"analysisDate"`
}
