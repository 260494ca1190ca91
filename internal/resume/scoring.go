package resume

import (
	"github.com/jonathan/career-insights/internal/textanalysis"
	"github.com/jonathan/career-insights/internal/types"
)

// Jitter bases and clamp ranges per dimension. Each score starts at
// base + rng.Intn(jitterRange) so near-identical resumes do not score the same.
const (
	jitterRange = 10

	atsBase     = 45
	formatBase  = 50
	contentBase = 45
	keywordBase = 40

	atsMin, atsMax         = 35, 96
	formatMin, formatMax   = 40, 92
	contentMin, contentMax = 45, 94
	keywordMin, keywordMax = 35, 96
)

// Scores holds the four resume dimensions.
type Scores struct {
	ATS     int
	Format  int
	Content int
	Keyword int
}

// Score derives all four dimension scores. The rng is drawn once per
// dimension in the order ATS, format, content, keyword.
func Score(f types.ResumeFeatures, rng textanalysis.Rand) Scores {
	return Scores{
		ATS:     scoreATS(f, rng),
		Format:  scoreFormat(f, rng),
		Content: scoreContent(f, rng),
		Keyword: scoreKeyword(f, rng),
	}
}

func scoreATS(f types.ResumeFeatures, rng textanalysis.Rand) int {
	score := atsBase + rng.Intn(jitterRange)

	if f.HasEmail {
		score += 12
	}
	if f.HasPhone {
		score += 8
	}
	if f.HasLinkedIn {
		score += 5
	}

	switch {
	case f.TechnicalSkillCount >= 8:
		score += 15
	case f.TechnicalSkillCount >= 5:
		score += 10
	case f.TechnicalSkillCount >= 3:
		score += 5
	}

	switch {
	case f.ExperienceKeywordCount >= 10:
		score += 12
	case f.ExperienceKeywordCount >= 6:
		score += 8
	case f.ExperienceKeywordCount >= 3:
		score += 4
	}

	if f.HasEducation {
		score += 6
	}
	if f.HasSummary {
		score += 4
	}

	return textanalysis.Clamp(score, atsMin, atsMax)
}

func scoreFormat(f types.ResumeFeatures, rng textanalysis.Rand) int {
	score := formatBase + rng.Intn(jitterRange)

	switch {
	case f.WordCount >= 300 && f.WordCount <= 800:
		score += 15
	case f.WordCount >= 200 && f.WordCount <= 1000:
		score += 10
	default:
		score += 5
	}

	if f.HasEmail && f.HasPhone {
		score += 10
	}
	if f.HasLinkedIn || f.HasGitHub {
		score += 5
	}
	if f.HasSummary {
		score += 8
	}
	if f.HasEducation {
		score += 7
	}

	return textanalysis.Clamp(score, formatMin, formatMax)
}

func scoreContent(f types.ResumeFeatures, rng textanalysis.Rand) int {
	score := contentBase + rng.Intn(jitterRange)

	switch {
	case f.ExperienceKeywordCount >= 12:
		score += 20
	case f.ExperienceKeywordCount >= 8:
		score += 15
	case f.ExperienceKeywordCount >= 4:
		score += 10
	}

	skills := f.TechnicalSkillCount + f.SoftSkillCount
	switch {
	case skills >= 12:
		score += 15
	case skills >= 8:
		score += 10
	case skills >= 5:
		score += 5
	}

	if f.HasQuantifiedResults {
		score += 10
	}

	switch {
	case f.ActionVerbCount >= 6:
		score += 8
	case f.ActionVerbCount >= 3:
		score += 5
	}

	return textanalysis.Clamp(score, contentMin, contentMax)
}

func scoreKeyword(f types.ResumeFeatures, rng textanalysis.Rand) int {
	score := keywordBase + rng.Intn(jitterRange)

	switch {
	case f.TechnicalSkillCount >= 10:
		score += 25
	case f.TechnicalSkillCount >= 6:
		score += 18
	case f.TechnicalSkillCount >= 3:
		score += 12
	}

	switch {
	case f.SoftSkillCount >= 4:
		score += 15
	case f.SoftSkillCount >= 2:
		score += 10
	}

	switch {
	case f.ActionVerbCount >= 5:
		score += 12
	case f.ActionVerbCount >= 3:
		score += 8
	}

	if f.HasGitHub {
		score += 5
	}

	return textanalysis.Clamp(score, keywordMin, keywordMax)
}
