package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFallbackSwot(t *testing.T) {
	swot := fallbackSwot([]string{"Kubernetes", "AWS"})

	assert.Len(t, swot.Strengths, 2)
	assert.Len(t, swot.Weaknesses, 2)
	assert.Len(t, swot.Opportunities, 2)
	assert.Len(t, swot.Threats, 2)
	assert.Contains(t, swot.Weaknesses[0], "Kubernetes")
	assert.NotEmpty(t, swot.LLMAnalysis)
}

func TestFallbackSwotWithoutGaps(t *testing.T) {
	swot := fallbackSwot(nil)
	assert.Equal(t, "Skill gaps in key areas", swot.Weaknesses[0])
}

func TestHead(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, head([]string{"a", "b", "c"}, 2))
	assert.Equal(t, []string{"a"}, head([]string{"a"}, 5))
	assert.Empty(t, head(nil, 3))
}
