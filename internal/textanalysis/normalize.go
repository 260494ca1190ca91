package textanalysis

import "strings"

// Document is raw text split into the token and sentence streams used by the
// feature extractors.
type Document struct {
	Raw       string
	Lower     string
	Tokens    []string
	Sentences []string
}

// Normalize lowercases and tokenizes raw text. Tokens are whitespace
// delimited; sentences are split on '.', '!' and '?' with blank ones dropped.
// Blank input fails with *EmptyInputError.
func Normalize(raw string) (*Document, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, &EmptyInputError{}
	}

	lower := strings.ToLower(raw)
	return &Document{
		Raw:       raw,
		Lower:     lower,
		Tokens:    strings.Fields(lower),
		Sentences: SplitSentences(raw),
	}, nil
}

// SplitSentences splits text on sentence terminators, trimming each sentence
// and discarding empty ones.
func SplitSentences(text string) []string {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})

	sentences := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			sentences = append(sentences, part)
		}
	}
	return sentences
}

// WordCount returns the number of tokens.
func (d *Document) WordCount() int {
	return len(d.Tokens)
}

// SentenceCount returns the number of sentences, never less than one so it is
// safe to divide by.
func (d *Document) SentenceCount() int {
	return max(1, len(d.Sentences))
}
