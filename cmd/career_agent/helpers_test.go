package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleResume = `Jane Doe
jane.doe@example.com | (555) 123-4567 | linkedin.com/in/janedoe | github.com/janedoe

Summary
Senior software engineer with 8 years of experience building distributed systems.

Experience
Senior Engineer, Acme Corp
- Led migration of 40 services to Kubernetes, reducing deploy time by 60%
- Developed Go and Python APIs serving 2M requests per day

Education
B.S. Computer Science, State University

Skills
Go, Python, Kubernetes, Docker, AWS, SQL, leadership, communication`

const sampleTranscript = `I led a project where our team had to migrate a legacy system to the cloud.
The situation was difficult because the deadline was tight. My task was to design the new architecture.
I implemented a plan with Kubernetes and Docker, and the result was a successful launch.`

// writeTempFile writes content to name inside a fresh temp dir.
func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
