package textanalysis

import "fmt"

// EmptyInputError is returned when the text to analyze is empty or
// whitespace only.
type EmptyInputError struct {
	Source string
}

func (e *EmptyInputError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("empty input: %s contains no text to analyze", e.Source)
	}
	return "empty input: no text to analyze"
}

// MalformedPromptListError indicates the prompts argument was not a list of
// strings. Callers recover by analyzing with an empty prompt list.
type MalformedPromptListError struct {
	Message string
	Cause   error
}

func (e *MalformedPromptListError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("malformed prompt list: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("malformed prompt list: %s", e.Message)
}

func (e *MalformedPromptListError) Unwrap() error {
	return e.Cause
}
