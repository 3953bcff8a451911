package service

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestKeywordExtract(t *testing.T) {
	text := "Built REST services in Python and Flask, deployed with Docker on AWS.\nFamiliar with git workflows."

	parsed := keywordExtract(text)

	assert.ElementsMatch(t, []string{"Python", "Flask", "Docker", "AWS", "Git"}, parsed.Skills)
	assert.Empty(t, parsed.Achievements)
	assert.Empty(t, parsed.Experience)
	assert.NotContains(t, parsed.Summary, "\n")
	assert.LessOrEqual(t, len(parsed.Summary), 300)
}

func TestKeywordExtractLongTextTruncatesSummary(t *testing.T) {
	parsed := keywordExtract(strings.Repeat("x", 1000))
	assert.Len(t, parsed.Summary, 300)
}

func TestKeywordExtractSummaryStaysValidUTF8(t *testing.T) {
	parsed := keywordExtract(strings.Repeat("a", 299) + strings.Repeat("é", 10))

	assert.True(t, utf8.ValidString(parsed.Summary))
	assert.LessOrEqual(t, utf8.RuneCountInString(parsed.Summary), 300)
}

func TestTruncateRunes(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		limit int
		want  string
	}{
		{"shorter than limit", "abc", 10, "abc"},
		{"exact limit", "abcde", 5, "abcde"},
		{"ascii cut", "abcdef", 3, "abc"},
		{"multibyte not split", "aéé", 2, "aé"},
		{"multibyte under byte limit", "ééé", 4, "ééé"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncateRunes(tt.in, tt.limit)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}

func TestParseUnreadablePDF(t *testing.T) {
	svc := NewResumeService(NullGenerator{})

	parsed := svc.Parse(context.Background(), []byte("this is not a pdf"))

	assert.Equal(t, "Could not extract text from this PDF.", parsed.Summary)
	assert.Empty(t, parsed.Skills)
	assert.Empty(t, parsed.Achievements)
	assert.Empty(t, parsed.Experience)
	assert.Empty(t, parsed.Publications)
}
