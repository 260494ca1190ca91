package textanalysis

import (
	"bytes"
	"encoding/json"
)

// DecodePrompts decodes a raw JSON prompt list. Absent or null input yields an
// empty list. Anything other than an array of strings fails with
// *MalformedPromptListError.
func DecodePrompts(raw json.RawMessage) ([]string, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}

	var prompts []string
	if err := json.Unmarshal(trimmed, &prompts); err != nil {
		return nil, &MalformedPromptListError{
			Message: "expected a JSON array of strings",
			Cause:   err,
		}
	}
	return prompts, nil
}
