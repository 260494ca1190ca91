package resume

import (
	"fmt"
	"slices"

	"github.com/jonathan/career-insights/internal/textanalysis"
	"github.com/jonathan/career-insights/internal/types"
)

// skillFamily groups technical skills that share a market insight.
type skillFamily struct {
	members []string
	insight string
}

var skillFamilies = []skillFamily{
	{
		members: []string{"aws", "azure", "gcp", "cloud", "kubernetes", "docker", "infrastructure"},
		insight: "Cloud and container skills are among the most requested in current job postings",
	},
	{
		members: []string{"sql", "nosql", "postgresql", "mysql", "mongodb", "redis", "database", "databases", "machine learning"},
		insight: "Data and database experience is valued across nearly every industry",
	},
	{
		members: []string{"react", "angular", "vue", "javascript", "typescript", "frontend"},
		insight: "Modern frontend frameworks remain in high demand for product teams",
	},
	{
		members: []string{"api", "apis", "microservices", "backend", "golang", "java", "python", "node.js", "distributed systems"},
		insight: "Backend and distributed systems experience is sought after by growing companies",
	},
}

var genericInsights = []string{
	"Employers increasingly rely on ATS software to screen applicants",
	"Quantified achievements help resumes stand out to hiring managers",
	"Remote and hybrid roles have widened the pool of competing applicants",
	"Continuous learning and recent certifications signal adaptability",
}

// IndustryInsights returns market observations tied to the detected skills.
func IndustryInsights(f types.ResumeFeatures) []string {
	list := textanalysis.NewStatementList()

	for _, family := range skillFamilies {
		if containsAny(f.TechnicalSkills, family.members) {
			list.Add(family.insight)
		}
	}
	list.AddIf(containsAny(f.SoftSkills, []string{"leadership", "mentoring", "mentored"}),
		"Leadership and mentoring experience signals readiness for senior roles")

	list.Fill(minInsights, genericInsights)
	return list.Items(maxInsights)
}

// BuildDetailedAnalysis summarises the feature vector for display.
func BuildDetailedAnalysis(f types.ResumeFeatures) types.DetailedAnalysis {
	return types.DetailedAnalysis{
		WordCount: f.WordCount,
		ContactInfo: types.ContactInfo{
			Email:    f.HasEmail,
			Phone:    f.HasPhone,
			LinkedIn: f.HasLinkedIn,
			GitHub:   f.HasGitHub,
		},
		Sections: types.SectionPresence{
			Summary:    f.HasSummary,
			Experience: f.HasExperienceSection,
			Education:  f.HasEducation,
			Skills:     f.HasSkillsSection,
		},
		TechnicalSkills:        f.TechnicalSkills,
		SoftSkills:             f.SoftSkills,
		ActionVerbCount:        f.ActionVerbCount,
		ExperienceKeywordCount: f.ExperienceKeywordCount,
		QuantifiedResults:      f.HasQuantifiedResults,
		SentenceComplexity:     f.SentenceComplexity,
		Summary: fmt.Sprintf(
			"Your resume contains %d words with %s sentence structure. We detected %d technical skill mentions, %d soft skill mentions and %d action verbs.",
			f.WordCount, f.SentenceComplexity, f.TechnicalSkillCount, f.SoftSkillCount, f.ActionVerbCount,
		),
	}
}

func containsAny(haystack, needles []string) bool {
	for _, n := range needles {
		if slices.Contains(haystack, n) {
			return true
		}
	}
	return false
}
