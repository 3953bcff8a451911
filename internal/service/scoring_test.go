package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"skillbridge_backend/internal/model"
)

func TestLevelToScore(t *testing.T) {
	tests := []struct {
		level model.SkillLevel
		want  int
	}{
		{model.LevelBeginner, 30},
		{model.LevelIntermediate, 60},
		{model.LevelAdvanced, 90},
		{"Expert", 40},
		{"", 40},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelToScore(tt.level), "level %q", tt.level)
	}
}

func TestComputeMatchPercentage(t *testing.T) {
	tests := []struct {
		name     string
		user     []string
		required []string
		want     int
	}{
		{
			name:     "case insensitive partial match",
			user:     []string{"Python", "SQL", "Docker"},
			required: []string{"python", "React", "sql"},
			want:     67,
		},
		{
			name:     "no required skills scores zero",
			user:     []string{"Python"},
			required: nil,
			want:     0,
		},
		{
			name:     "full match",
			user:     []string{"go", "SQL"},
			required: []string{"Go", "sql"},
			want:     100,
		},
		{
			name:     "no overlap",
			user:     []string{"Rust"},
			required: []string{"Python", "SQL"},
			want:     0,
		},
		{
			name:     "one of three rounds to 33",
			user:     []string{"Python"},
			required: []string{"Python", "React", "AWS"},
			want:     33,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeMatchPercentage(tt.user, tt.required))
		})
	}
}

func TestClassifyGap(t *testing.T) {
	tests := []struct {
		name     string
		user     int
		industry int
		wantKind GapKind
		wantMag  int
	}{
		{"far below is critical", 30, 90, GapKindCritical, 60},
		{"boundary minus 41 is critical", 29, 70, GapKindCritical, 41},
		{"minus 40 is partial", 30, 70, GapKindPartial, 40},
		{"minus 21 is partial", 49, 70, GapKindPartial, 21},
		{"minus 20 is neutral", 50, 70, GapKindNeutral, 0},
		{"just below is neutral", 69, 70, GapKindNeutral, 0},
		{"equal is strength", 70, 70, GapKindStrength, 0},
		{"above is strength", 90, 70, GapKindStrength, 0},
		{"missing skill vs high bar", 0, 85, GapKindCritical, 85},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, mag := ClassifyGap(tt.user, tt.industry)
			assert.Equal(t, tt.wantKind, kind)
			assert.Equal(t, tt.wantMag, mag)
		})
	}
}

func TestOverallMatch(t *testing.T) {
	assert.Equal(t, 100, OverallMatch(0, 8))
	assert.Equal(t, 50, OverallMatch(4, 8))
	assert.Equal(t, 0, OverallMatch(8, 8))
	assert.Equal(t, 0, OverallMatch(10, 8))
	// zero required skills never divides by zero
	assert.Equal(t, 100, OverallMatch(0, 0))
}
