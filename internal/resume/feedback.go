package resume

import (
	"fmt"
	"strings"

	"github.com/jonathan/career-insights/internal/textanalysis"
	"github.com/jonathan/career-insights/internal/types"
)

// List bounds. Fewer matches than the minimum are topped up with generic
// statements; longer lists are truncated.
const (
	minStrengths       = 3
	maxStrengths       = 6
	minImprovements    = 3
	maxImprovements    = 5
	minRecommendations = 5
	maxRecommendations = 8
	minInsights        = 3
	maxInsights        = 5

	lowContentScore = 60
)

var (
	genericStrengths = []string{
		"Resume is organized in a readable structure",
		"Relevant experience is presented in the document",
		"Content is written in a professional tone",
		"Resume covers the key areas recruiters look for",
	}

	genericImprovements = []string{
		"Tailor your resume to each job description",
		"Review formatting for consistency across sections",
		"Proofread carefully for spelling and grammar",
	}

	genericRecommendations = []string{
		"Keep your resume updated with recent accomplishments",
		"Tailor your resume for each application",
		"Use consistent date formats throughout",
		"Include relevant certifications and courses",
		"Keep the resume to one or two pages",
	}
)

// Strengths lists what the resume already does well.
func Strengths(f types.ResumeFeatures, s Scores, rng textanalysis.Rand) []string {
	list := textanalysis.NewStatementList()

	list.AddIf(f.HasEmail && f.HasPhone, "Complete contact information makes it easy for recruiters to reach you")
	list.AddIf(f.HasLinkedIn, "LinkedIn profile included for professional networking")
	list.AddIf(f.HasGitHub, "GitHub profile showcases your technical work")
	list.AddIf(f.TechnicalSkillCount >= 5,
		fmt.Sprintf("Strong technical skill set with %d relevant technology mentions", f.TechnicalSkillCount))
	list.AddIf(f.SoftSkillCount >= 2 && len(f.SoftSkills) > 0,
		fmt.Sprintf("Demonstrates valuable soft skills such as %s", strings.Join(firstN(f.SoftSkills, 2), " and ")))
	list.AddIf(f.ActionVerbCount >= 5, "Effective use of action verbs to describe accomplishments")
	list.AddIf(f.HasQuantifiedResults, "Quantified achievements demonstrate measurable impact")
	list.AddIf(f.HasEducation, "Education background is clearly presented")
	list.AddIf(f.HasSummary, "Professional summary provides a strong introduction")
	list.AddIf(f.WordCount >= 300 && f.WordCount <= 800, "Resume length is well suited for ATS screening")
	list.AddIf(s.ATS >= 80, "High ATS compatibility score")
	list.AddIf(rng.Float64() > 0.5, "Clear and consistent formatting throughout")

	list.Fill(minStrengths, genericStrengths)
	return list.Items(maxStrengths)
}

// Improvements lists the gaps that most affect the scores. A low content
// score adds advice on the bullet points themselves.
func Improvements(f types.ResumeFeatures, s Scores) []string {
	list := textanalysis.NewStatementList()

	list.AddIf(!f.HasEmail, "Add a professional email address")
	list.AddIf(!f.HasPhone, "Include a phone number so recruiters can contact you")
	list.AddIf(!f.HasLinkedIn, "Add your LinkedIn profile URL")
	list.AddIf(f.TechnicalSkillCount < 5, "Include more technical skills relevant to your target roles")
	list.AddIf(!f.HasQuantifiedResults, "Quantify achievements with numbers, percentages, or dollar amounts")
	list.AddIf(f.ActionVerbCount < 3, "Start bullet points with strong action verbs")
	list.AddIf(!f.HasSummary, "Add a professional summary at the top of your resume")
	list.AddIf(!f.HasEducation, "Include an education section")
	list.AddIf(f.WordCount < 300, "Expand your resume with more detail about your experience")
	list.AddIf(f.WordCount > 800, "Condense your resume to keep it focused and concise")
	list.AddIf(f.SentenceComplexity == textanalysis.ComplexityComplex, "Shorten long sentences to improve readability")
	list.AddIf(f.SoftSkillCount < 2, "Highlight soft skills such as leadership and communication")
	list.AddIf(s.Content < lowContentScore, "Strengthen bullet points with specific accomplishments and outcomes")

	list.Fill(minImprovements, genericImprovements)
	return list.Items(maxImprovements)
}

// Recommendations lists concrete next steps. Some entries are picked at
// random and may or may not appear for the same input.
func Recommendations(f types.ResumeFeatures, s Scores, rng textanalysis.Rand) []string {
	list := textanalysis.NewStatementList()

	list.AddIf(!f.HasGitHub && f.TechnicalSkillCount >= 3, "Add a GitHub link to showcase your projects")
	list.AddIf(!f.HasQuantifiedResults,
		"Rewrite accomplishments to include measurable outcomes, for example \"reduced latency by 30%\"")
	list.AddIf(!f.HasSkillsSection || f.TechnicalSkillCount < 5,
		"Create a dedicated skills section listing your tools and technologies")
	list.AddIf(f.ExperienceKeywordCount < 6, "Describe your roles, teams, and projects in more detail")
	list.AddIf(s.Keyword < 70, "Mirror keywords from the job descriptions you target")
	list.AddIf(s.Format < 70, "Use standard section headings such as Summary, Experience, Education, and Skills")
	list.AddIf(rng.Float64() > 0.5, "Use a simple single-column layout so ATS software parses it correctly")
	list.AddIf(rng.Float64() > 0.5, "Submit your resume as a PDF unless the employer asks otherwise")
	list.AddIf(rng.Float64() > 0.7, "Ask a mentor or peer to review your resume")

	list.Fill(minRecommendations, genericRecommendations)
	return list.Items(maxRecommendations)
}

func firstN(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}
