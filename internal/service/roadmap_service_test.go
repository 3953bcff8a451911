package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackRoadmap(t *testing.T) {
	weeks := fallbackRoadmap([]string{"SQL", "Docker", "AWS"})
	require.Len(t, weeks, roadmapWeeks)

	for i, w := range weeks {
		assert.Equal(t, i+1, w.Week)
		assert.NotEmpty(t, w.Theme)
		assert.NotEmpty(t, w.Tasks)
		assert.NotEmpty(t, w.Resources)
		assert.NotEmpty(t, w.Milestone)
		// the two top gaps drive the focus of every week
		assert.Equal(t, []string{"SQL", "Docker"}, w.SkillsFocus)
	}

	assert.Equal(t, "Foundation", weeks[0].Theme)
	assert.Equal(t, "Launch Ready", weeks[11].Theme)
}

func TestFallbackRoadmapWithoutGaps(t *testing.T) {
	weeks := fallbackRoadmap(nil)
	require.Len(t, weeks, roadmapWeeks)
	assert.Equal(t, []string{"Core Skills", "Problem Solving"}, weeks[0].SkillsFocus)
}
