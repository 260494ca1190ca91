// Package schemas embeds the JSON Schemas describing the service's report
// documents.
package schemas

import "embed"

// Schema file names.
const (
	ResumeReport    = "resume_report.schema.json"
	InterviewReport = "interview_report.schema.json"
)

// FS holds every *.schema.json file in this directory.
//
//go:embed *.schema.json
var FS embed.FS
