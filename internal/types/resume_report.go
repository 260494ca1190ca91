// Package types provides type definitions for the reports and requests shared
// across the career-insights service.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/career-insights/internal/textanalysis"
)

// ResumeFeatures is the feature vector extracted from resume text.
type ResumeFeatures struct {
	WordCount              int                     `json:"wordCount"`
	TechnicalSkillCount    int                     `json:"technicalSkillCount"`
	SoftSkillCount         int                     `json:"softSkillCount"`
	ActionVerbCount        int                     `json:"actionVerbCount"`
	ExperienceKeywordCount int                     `json:"experienceKeywordCount"`
	SentenceComplexity     textanalysis.Complexity `json:"sentenceComplexity"`
	HasEmail               bool                    `json:"hasEmail"`
	HasPhone               bool                    `json:"hasPhone"`
	HasLinkedIn            bool                    `json:"hasLinkedIn"`
	HasGitHub              bool                    `json:"hasGitHub"`
	HasEducation           bool                    `json:"hasEducation"`
	HasSummary             bool                    `json:"hasSummary"`
	HasQuantifiedResults   bool                    `json:"hasQuantifiedResults"`
	HasExperienceSection   bool                    `json:"hasExperienceSection"`
	HasSkillsSection       bool                    `json:"hasSkillsSection"`
	TechnicalSkills        []string                `json:"technicalSkills"`
	SoftSkills             []string                `json:"softSkills"`
}

// ContactInfo records which contact channels a resume exposes.
type ContactInfo struct {
	Email    bool `json:"email"`
	Phone    bool `json:"phone"`
	LinkedIn bool `json:"linkedIn"`
	GitHub   bool `json:"gitHub"`
}

// SectionPresence records which conventional resume sections were detected.
type SectionPresence struct {
	Summary    bool `json:"summary"`
	Experience bool `json:"experience"`
	Education  bool `json:"education"`
	Skills     bool `json:"skills"`
}

// DetailedAnalysis is the structured breakdown returned alongside resume scores.
type DetailedAnalysis struct {
	WordCount              int                     `json:"wordCount"`
	ContactInfo            ContactInfo             `json:"contactInfo"`
	Sections               SectionPresence         `json:"sections"`
	TechnicalSkills        []string                `json:"technicalSkills"`
	SoftSkills             []string                `json:"softSkills"`
	ActionVerbCount        int                     `json:"actionVerbCount"`
	ExperienceKeywordCount int                     `json:"experienceKeywordCount"`
	QuantifiedResults      bool                    `json:"quantifiedResults"`
	SentenceComplexity     textanalysis.Complexity `json:"sentenceComplexity"`
	Summary                string                  `json:"summary"`
}

// ResumeReport is the result of scoring a resume.
type ResumeReport struct {
	ID               uuid.UUID        `json:"id"`
	ATSScore         int              `json:"atsScore"`
	FormatScore      int              `json:"formatScore"`
	ContentScore     int              `json:"contentScore"`
	KeywordScore     int              `json:"keywordScore"`
	Strengths        []string         `json:"strengths"`
	Improvements     []string         `json:"improvements"`
	Recommendations  []string         `json:"recommendations"`
	DetailedAnalysis DetailedAnalysis `json:"detailedAnalysis"`
	IndustryInsights []string         `json:"industryInsights"`
	Features         ResumeFeatures   `json:"features"`
	AnalysisDate     time.Time        `json:"analysisDate"`
}
