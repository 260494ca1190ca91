package jobsearch

import (
	"log"
	"strings"
	"time"

	"github.com/jonathan/career-insights/internal/fetch"
)

type searchResponse struct {
	Status string   `json:"status"`
	Data   []apiJob `json:"data"`
}

type apiJob struct {
	JobID          string `json:"job_id"`
	Title          string `json:"job_title"`
	Employer       string `json:"employer_name"`
	City           string `json:"job_city"`
	State          string `json:"job_state"`
	Country        string `json:"job_country"`
	Description    string `json:"job_description"`
	ApplyLink      string `json:"job_apply_link"`
	EmploymentType string `json:"job_employment_type"`
	IsRemote       bool   `json:"job_is_remote"`
	PostedAt       string `json:"job_posted_at_datetime_utc"`
}

func (j apiJob) toPosting() Posting {
	return Posting{
		ID:             j.JobID,
		Title:          strings.TrimSpace(j.Title),
		Company:        strings.TrimSpace(j.Employer),
		Location:       joinLocation(j.City, j.State, j.Country),
		Description:    flattenDescription(j.JobID, j.Description),
		ApplyURL:       j.ApplyLink,
		EmploymentType: j.EmploymentType,
		Remote:         j.IsRemote,
		PostedAt:       parsePostedAt(j.PostedAt),
	}
}

func joinLocation(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, ", ")
}

// flattenDescription converts HTML descriptions to text. Plain descriptions
// pass through unchanged.
func flattenDescription(jobID, description string) string {
	if !strings.Contains(description, "<") {
		return strings.TrimSpace(description)
	}
	text, err := fetch.HTMLToText(description)
	if err != nil {
		log.Printf("[jobsearch] Warning: could not flatten description of %s: %v", jobID, err)
		return strings.TrimSpace(description)
	}
	return text
}

func parsePostedAt(value string) *time.Time {
	if value == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil
	}
	t = t.UTC()
	return &t
}
