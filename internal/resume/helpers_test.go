package resume

// fixedRand returns the same jitter and threshold draw every time.
type fixedRand struct {
	n int
	f float64
}

func (r fixedRand) Intn(n int) int {
	if r.n >= n {
		return n - 1
	}
	return r.n
}

func (r fixedRand) Float64() float64 { return r.f }

const sampleResume = `Jane Doe
jane.doe@example.com | (555) 123-4567 | linkedin.com/in/janedoe | github.com/janedoe

Summary
Backend engineer with 6 years of experience building scalable systems.

Experience
Senior Engineer, Acme Corp
- Led a team of 5 engineers and improved API latency by 40%
- Designed and implemented microservices in golang and python on aws

Skills
Python, Golang, Docker, Kubernetes, PostgreSQL, leadership, communication

Education
B.S. Computer Science, State University
`
