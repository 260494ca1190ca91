package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText_PreserveMarkdownHeadings(t *testing.T) {
	input := "# Title\n## Subtitle\nContent here"
	result := CleanText(input)

	assert.Contains(t, result, "# Title")
	assert.Contains(t, result, "## Subtitle")
	assert.Contains(t, result, "Content here")
}

func TestCleanText_PreserveBulletLists(t *testing.T) {
	input := "- Item 1\n- Item 2\n* Item 3"
	result := CleanText(input)

	assert.Contains(t, result, "- Item 1")
	assert.Contains(t, result, "- Item 2")
	assert.Contains(t, result, "* Item 3")
}

func TestCleanText_NormalizeWhitespace(t *testing.T) {
	input := "Line    with    multiple    spaces"
	result := CleanText(input)

	assert.Contains(t, result, "Line with multiple spaces")
	assert.NotContains(t, result, "    ") // Should not have 4 spaces
}

func TestCleanText_RemoveExcessiveBlankLines(t *testing.T) {
	input := "Line 1\n\n\n\n\nLine 2"
	result := CleanText(input)

	// Should have max 2 consecutive newlines
	assert.NotContains(t, result, "\n\n\n\n")
	// But should preserve up to 2
	assert.Contains(t, result, "\n\n")
}

func TestCleanText_NormalizeLineEndings(t *testing.T) {
	input := "Line 1\r\nLine 2\rLine 3\nLine 4"
	result := CleanText(input)

	// All should be normalized to LF
	assert.NotContains(t, result, "\r\n")
	assert.NotContains(t, result, "\r")
	assert.Contains(t, result, "\n")
}

func TestCleanText_DeterministicOutput(t *testing.T) {
	input := "Test content   with   spaces\n\n\nMultiple   blank   lines"
	result1 := CleanText(input)
	result2 := CleanText(input)
	require.NotEmpty(t, result1)

	// Same input should produce identical output
	assert.Equal(t, result1, result2)
}

func TestCleanText_EmptyInput(t *testing.T) {
	result := CleanText("")
	assert.Empty(t, result)
}

func TestCleanText_OnlyWhitespace(t *testing.T) {
	result := CleanText("   \n  \n  ")
	assert.Empty(t, result)
}

func TestCleanText_SpecialCharacters(t *testing.T) {
	input := "Test with émojis 🚀 and spéciàl chàracters"
	result := CleanText(input)

	assert.Contains(t, result, "émojis")
	assert.Contains(t, result, "🚀")
	assert.Contains(t, result, "spéciàl chàracters")
}

func TestCleanText_PreserveIndentation(t *testing.T) {
	input := "    Indented line\n  Less indented"
	result := CleanText(input)

	// Should preserve relative indentation
	assert.Contains(t, result, "Indented")
	assert.Contains(t, result, "Less indented")
}

func TestCleanText_UnicodeLineBreaksAndInvisibles(t *testing.T) {
	input := "Summary\u2028Engineer\u200b with\u00a0\u00a0Go\ufeff"
	result := CleanText(input)

	assert.Equal(t, "Summary\nEngineer with Go", result)
}

func TestCleanText_HeadingsAreFlushLeft(t *testing.T) {
	result := CleanText("   ##   Experience  ")
	assert.Equal(t, "## Experience", result)
}

func TestIsBulletLine(t *testing.T) {
	tests := []struct {
		line     string
		expected bool
	}{
		{"- Led migrations", true},
		{"  * Built pipelines", true},
		{"• Shipped features", true},
		{"-no space", false},
		{"Plain sentence", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, IsBulletLine(tt.line), tt.line)
	}
}
