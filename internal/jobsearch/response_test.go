package jobsearch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoinLocation(t *testing.T) {
	tests := []struct {
		name  string
		parts []string
		want  string
	}{
		{name: "all parts", parts: []string{"Austin", "TX", "US"}, want: "Austin, TX, US"},
		{name: "skips blanks", parts: []string{"", " TX ", ""}, want: "TX"},
		{name: "nothing", parts: []string{"", " "}, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, joinLocation(tt.parts...))
		})
	}
}

func TestFlattenDescription(t *testing.T) {
	assert.Equal(t, "Build APIs in Go.", flattenDescription("1", "  Build APIs in Go.  "))

	got := flattenDescription("2", "<p>Build <b>APIs</b> in Go.</p>")
	assert.Contains(t, got, "Build")
	assert.Contains(t, got, "APIs")
	assert.NotContains(t, got, "<")
}

func TestParsePostedAt(t *testing.T) {
	assert.Nil(t, parsePostedAt(""))
	assert.Nil(t, parsePostedAt("yesterday"))

	got := parsePostedAt("2025-03-01T10:30:00-05:00")
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2025, 3, 1, 15, 30, 0, 0, time.UTC), *got)
}
