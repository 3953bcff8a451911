package service

import (
	"math"
	"strings"

	"skillbridge_backend/internal/model"
)

// Pure scoring functions shared by the derived-artifact services. No I/O,
// no side effects.

type GapKind string

const (
	GapKindCritical GapKind = "critical"
	GapKindPartial  GapKind = "partial"
	GapKindStrength GapKind = "strength"
	GapKindNeutral  GapKind = "neutral"
)

// LevelToScore maps a self-reported proficiency level onto the 0-100
// benchmark scale. Unrecognized levels score 40.
func LevelToScore(level model.SkillLevel) int {
	switch level {
	case model.LevelBeginner:
		return 30
	case model.LevelIntermediate:
		return 60
	case model.LevelAdvanced:
		return 90
	default:
		return 40
	}
}

// ComputeMatchPercentage counts how many required skills appear in the
// user's skill set, case-insensitively, as a rounded percentage. An empty
// requirement list scores 0.
func ComputeMatchPercentage(userSkills []string, requiredSkills []string) int {
	if len(requiredSkills) == 0 {
		return 0
	}

	userSet := make(map[string]bool, len(userSkills))
	for _, s := range userSkills {
		userSet[strings.ToLower(s)] = true
	}

	matched := 0
	for _, s := range requiredSkills {
		if userSet[strings.ToLower(s)] {
			matched++
		}
	}

	return int(math.Round(float64(matched) / float64(len(requiredSkills)) * 100))
}

// ClassifyGap buckets a user score against an industry benchmark by
// diff = user - industry:
//
//	diff < -40         critical gap
//	-40 <= diff < -20  partial gap
//	diff >= 0          strength
//	-20 <= diff < 0    neutral
//
// The neutral band is intentional: skills within 20 points below the
// benchmark belong to neither list. The returned magnitude is the absolute
// shortfall, zero for strengths and neutrals.
func ClassifyGap(userScore, industryScore int) (GapKind, int) {
	diff := userScore - industryScore
	switch {
	case diff < -40:
		return GapKindCritical, -diff
	case diff < -20:
		return GapKindPartial, -diff
	case diff >= 0:
		return GapKindStrength, 0
	default:
		return GapKindNeutral, 0
	}
}

// OverallMatch derives a 0-100 readiness score from the share of required
// skills that turned out to be gaps.
func OverallMatch(gapsCount, requiredCount int) int {
	if requiredCount < 1 {
		requiredCount = 1
	}
	score := 100 - int(math.Round(float64(gapsCount)/float64(requiredCount)*100))
	if score < 0 {
		return 0
	}
	return score
}
