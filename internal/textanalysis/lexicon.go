// Package textanalysis provides the shared pieces of the heuristic text-scoring
// engine: keyword lexicons, tokenization, enums and the injected random source.
package textanalysis

import "strings"

// tokenPunctuation is stripped from both ends of a token before lexicon lookup.
// Internal punctuation is kept so entries like "node.js" and "ci/cd" still match.
const tokenPunctuation = ".,;:!?\"'()[]{}<>“”‘’…"

// Lexicon is a fixed set of keywords belonging to one semantic category.
// Entries may be multi-word phrases; those match consecutive tokens.
type Lexicon struct {
	name    string
	entries []string
	words   map[string]bool
	phrases [][]string
}

// NewLexicon builds a lexicon from lowercase entries.
func NewLexicon(name string, entries ...string) *Lexicon {
	l := &Lexicon{
		name:    name,
		entries: make([]string, 0, len(entries)),
		words:   make(map[string]bool),
	}
	for _, entry := range entries {
		entry = strings.ToLower(strings.TrimSpace(entry))
		if entry == "" {
			continue
		}
		l.entries = append(l.entries, entry)
		parts := strings.Fields(entry)
		if len(parts) > 1 {
			l.phrases = append(l.phrases, parts)
			continue
		}
		l.words[entry] = true
	}
	return l
}

// Name returns the category name of the lexicon.
func (l *Lexicon) Name() string {
	return l.name
}

// Entries returns a copy of the lexicon entries in declaration order.
func (l *Lexicon) Entries() []string {
	out := make([]string, len(l.entries))
	copy(out, l.entries)
	return out
}

// Contains reports whether a single token is a word entry of the lexicon.
func (l *Lexicon) Contains(token string) bool {
	return tokenIn(l.words, token)
}

// Count returns the number of lexicon occurrences in the token stream.
// A phrase occurrence consumes its tokens, so they are not counted again.
func (l *Lexicon) Count(tokens []string) int {
	count := 0
	l.scan(tokens, func(string) { count++ })
	return count
}

// Matches returns the distinct entries found in the token stream, in the
// order they were first seen.
func (l *Lexicon) Matches(tokens []string) []string {
	seen := make(map[string]bool)
	var found []string
	l.scan(tokens, func(entry string) {
		if !seen[entry] {
			seen[entry] = true
			found = append(found, entry)
		}
	})
	return found
}

// CountSubstrings returns how many entries appear anywhere in text.
// text is expected to be lowercased already.
func (l *Lexicon) CountSubstrings(text string) int {
	count := 0
	for _, entry := range l.entries {
		if strings.Contains(text, entry) {
			count++
		}
	}
	return count
}

// ContainsAnySubstring reports whether any entry appears anywhere in text.
func (l *Lexicon) ContainsAnySubstring(text string) bool {
	for _, entry := range l.entries {
		if strings.Contains(text, entry) {
			return true
		}
	}
	return false
}

func (l *Lexicon) scan(tokens []string, onMatch func(entry string)) {
	for i := 0; i < len(tokens); {
		if n, entry := l.matchPhrase(tokens, i); n > 0 {
			onMatch(entry)
			i += n
			continue
		}
		tok := tokens[i]
		if l.words[tok] {
			onMatch(tok)
		} else if trimmed := TrimToken(tok); l.words[trimmed] {
			onMatch(trimmed)
		}
		i++
	}
}

func (l *Lexicon) matchPhrase(tokens []string, start int) (int, string) {
	for _, phrase := range l.phrases {
		if start+len(phrase) > len(tokens) {
			continue
		}
		matched := true
		for k, part := range phrase {
			tok := tokens[start+k]
			if tok != part && TrimToken(tok) != part {
				matched = false
				break
			}
		}
		if matched {
			return len(phrase), strings.Join(phrase, " ")
		}
	}
	return 0, ""
}

// TrimToken strips surrounding punctuation from a token.
func TrimToken(token string) string {
	return strings.Trim(token, tokenPunctuation)
}

func tokenIn(set map[string]bool, token string) bool {
	return set[token] || set[TrimToken(token)]
}

// Lexicon tables shared by the resume and interview analyzers.
var (
	FillerWords = NewLexicon("filler",
		"um", "uh", "like", "you know", "actually", "basically", "literally",
	)

	PositiveWords = NewLexicon("positive",
		"confident", "excited", "passionate", "successful", "success",
		"achieved", "accomplished", "improved", "great", "excellent",
		"proud", "effective", "motivated", "strong", "enjoy", "love",
		"happy", "opportunity", "grow", "learned",
	)

	TechnicalTerms = NewLexicon("technical",
		"algorithm", "algorithms", "architecture", "api", "apis",
		"database", "databases", "system", "systems", "framework",
		"backend", "frontend", "deployment", "scalable", "scalability",
		"performance", "optimization", "cloud", "microservices",
		"infrastructure", "testing", "security", "kubernetes", "docker",
		"aws", "azure", "gcp", "python", "java", "javascript", "typescript",
		"go", "golang", "rust", "c++", "sql", "nosql", "postgresql", "mysql",
		"mongodb", "redis", "react", "angular", "vue", "node.js", "git",
		"ci/cd", "linux", "graphql", "rest", "machine learning",
		"data structures", "distributed systems",
	)

	SoftSkills = NewLexicon("soft_skill",
		"leadership", "communication", "teamwork", "collaboration",
		"problem-solving", "problem solving", "adaptability", "creativity",
		"mentoring", "mentored", "initiative", "organized", "organization",
		"negotiation", "empathy", "time management", "critical thinking",
		"collaborated",
	)

	ActionVerbs = NewLexicon("action_verb",
		"achieved", "built", "created", "delivered", "designed", "developed",
		"engineered", "implemented", "improved", "increased", "launched",
		"led", "managed", "optimized", "reduced", "scaled", "shipped",
		"spearheaded", "streamlined", "transformed", "architected",
		"automated", "coordinated", "established",
	)

	ExperienceKeywords = NewLexicon("experience",
		"experience", "managed", "developed", "led", "project", "projects",
		"team", "responsible", "worked", "years", "role", "company",
		"internship", "position", "client", "clients", "stakeholders",
		"production",
	)

	StarKeywords     = NewLexicon("star", "situation", "task", "action", "result")
	EducationMarkers = NewLexicon("education", "education", "degree", "university", "college")
	SummaryMarkers   = NewLexicon("summary", "summary", "objective", "profile")
	QuantifierVerbs  = NewLexicon("quantifier", "increased", "decreased", "improved", "reduced")
)
