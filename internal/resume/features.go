// Package resume scores the ATS compatibility of plain resume text and turns
// the scores into strengths, improvements and recommendations.
package resume

import (
	"regexp"
	"strings"

	"github.com/jonathan/career-insights/internal/textanalysis"
	"github.com/jonathan/career-insights/internal/types"
)

var (
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	phonePattern = regexp.MustCompile(`(\+?1[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	digitPattern = regexp.MustCompile(`\d`)

	// Section headings must start a line.
	experienceHeading = regexp.MustCompile(`(?im)^\s*(work\s+|professional\s+)?experience\b`)
	skillsHeading     = regexp.MustCompile(`(?im)^\s*(technical\s+|core\s+)?skills\b`)
)

// ExtractFeatures computes the resume feature vector. It is deterministic.
func ExtractFeatures(doc *textanalysis.Document) types.ResumeFeatures {
	technical := textanalysis.TechnicalTerms.Matches(doc.Tokens)
	soft := textanalysis.SoftSkills.Matches(doc.Tokens)

	return types.ResumeFeatures{
		WordCount:              doc.WordCount(),
		TechnicalSkillCount:    textanalysis.TechnicalTerms.Count(doc.Tokens),
		SoftSkillCount:         textanalysis.SoftSkills.Count(doc.Tokens),
		ActionVerbCount:        textanalysis.ActionVerbs.Count(doc.Tokens),
		ExperienceKeywordCount: textanalysis.ExperienceKeywords.Count(doc.Tokens),
		SentenceComplexity:     textanalysis.ClassifyComplexity(doc.WordCount(), doc.SentenceCount()),
		HasEmail:               emailPattern.MatchString(doc.Raw),
		HasPhone:               phonePattern.MatchString(doc.Raw),
		HasLinkedIn:            strings.Contains(doc.Lower, "linkedin"),
		HasGitHub:              strings.Contains(doc.Lower, "github"),
		HasEducation:           textanalysis.EducationMarkers.ContainsAnySubstring(doc.Lower),
		HasSummary:             textanalysis.SummaryMarkers.ContainsAnySubstring(doc.Lower),
		HasQuantifiedResults:   hasQuantifiedResults(doc),
		HasExperienceSection:   experienceHeading.MatchString(doc.Raw),
		HasSkillsSection:       skillsHeading.MatchString(doc.Raw),
		TechnicalSkills:        nonNil(technical),
		SoftSkills:             nonNil(soft),
	}
}

// hasQuantifiedResults looks for '%' or '$', or a change verb such as
// "increased" alongside at least one digit.
func hasQuantifiedResults(doc *textanalysis.Document) bool {
	if strings.ContainsAny(doc.Raw, "%$") {
		return true
	}
	return textanalysis.QuantifierVerbs.ContainsAnySubstring(doc.Lower) && digitPattern.MatchString(doc.Raw)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
