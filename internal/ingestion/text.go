// Package ingestion turns uploaded resumes and transcripts into clean plain
// text for the analyzers.
package ingestion

import (
	"regexp"
	"strings"
)

var (
	innerSpace      = regexp.MustCompile(`[ \t\f\v\x{00A0}]+`)
	blankLineRun    = regexp.MustCompile(`\n{3,}`)
	bulletPrefixes  = []string{"- ", "* ", "• ", "· ", "▪ "}
	invisibleRunes  = strings.NewReplacer("\u200b", "", "\ufeff", "", "\u00ad", "")
	lineTerminators = strings.NewReplacer("\r\n", "\n", "\r", "\n", "\u2028", "\n", "\u2029", "\n")
)

// CleanText normalizes line endings and whitespace while keeping headings,
// bullets and paragraph breaks. At most one blank line separates paragraphs.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = lineTerminators.Replace(content)
	content = invisibleRunes.Replace(content)

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = cleanLine(line)
	}

	result := blankLineRun.ReplaceAllString(strings.Join(lines, "\n"), "\n\n")
	return strings.TrimSpace(result)
}

// cleanLine collapses runs of inner whitespace. Leading indentation is kept
// for bullets and plain lines; headings are flush left.
func cleanLine(line string) string {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return ""
	}

	if strings.HasPrefix(trimmed, "#") {
		return innerSpace.ReplaceAllString(trimmed, " ")
	}

	indent := len(line) - len(strings.TrimLeft(line, " \t"))
	body := innerSpace.ReplaceAllString(trimmed, " ")
	if indent > 0 {
		return strings.Repeat(" ", indent) + body
	}
	return body
}

// IsBulletLine reports whether a line is a list item.
func IsBulletLine(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	for _, prefix := range bulletPrefixes {
		if strings.HasPrefix(trimmed, prefix) {
			return true
		}
	}
	return false
}
