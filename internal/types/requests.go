package types

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"
)

// AnalyzeResumeRequest is the body of POST /analyze/resume.
type AnalyzeResumeRequest struct {
	Text   string `json:"text"`
	UserID string `json:"user_id,omitempty" validate:"omitempty,max=128,excludesall=/"`
	Seed   *int64 `json:"seed,omitempty"`
}

// AnalyzeInterviewRequest is the body of POST /analyze/interview.
// Prompts is kept raw so a malformed list can be recovered from instead of
// failing the whole request.
type AnalyzeInterviewRequest struct {
	Transcript string          `json:"transcript"`
	Prompts    json.RawMessage `json:"prompts,omitempty"`
	UserID     string          `json:"user_id,omitempty" validate:"omitempty,max=128,excludesall=/"`
	SessionID  string          `json:"session_id,omitempty" validate:"omitempty,max=128,excludesall=/"`
}

// JobSearchRequest carries the query parameters of GET /jobs/search.
type JobSearchRequest struct {
	Query    string `json:"query" validate:"required,max=200"`
	Location string `json:"location,omitempty" validate:"max=200"`
	Page     int    `json:"page,omitempty" validate:"gte=0,lte=50"`
}

// Validate validates the AnalyzeResumeRequest using the validator.
func (r *AnalyzeResumeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the AnalyzeInterviewRequest using the validator.
func (r *AnalyzeInterviewRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the JobSearchRequest using the validator.
func (r *JobSearchRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
