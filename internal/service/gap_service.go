package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"skillbridge_backend/internal/model"
	"skillbridge_backend/internal/repository"
)

type GapService struct {
	Records   *repository.RecordRepository
	Generator TextGenerator
}

func NewGapService(records *repository.RecordRepository, gen TextGenerator) *GapService {
	return &GapService{Records: records, Generator: gen}
}

// Analyze compares the user's self-reported skills against the industry
// benchmark for their career interest and persists the result under the
// gap_analysis key. Recomputed fresh on every call.
func (s *GapService) Analyze(ctx context.Context, email string) (model.GapAnalysis, error) {
	return runDerived(s.Records, email, repository.FieldGapAnalysis, func(rec *model.UserRecord) (model.GapAnalysis, error) {
		career, role := BenchmarkForCareer(rec.CareerInterest())

		userScores := make(map[string]int)
		for _, sk := range rec.SkillList() {
			userScores[sk.Name] = LevelToScore(sk.Level)
		}

		radar := make([]model.RadarPoint, 0, len(role.Skills))
		gaps := []model.SkillGap{}
		strengths := []model.SkillStrength{}
		for _, skill := range role.Skills {
			userScore := userScores[skill]
			industryScore := role.LevelFor(skill)
			radar = append(radar, model.RadarPoint{Skill: skill, User: userScore, Industry: industryScore})

			kind, magnitude := ClassifyGap(userScore, industryScore)
			switch kind {
			case GapKindCritical:
				gaps = append(gaps, model.SkillGap{Skill: skill, User: userScore, Industry: industryScore,
					Severity: model.SeverityCritical, Gap: magnitude})
			case GapKindPartial:
				gaps = append(gaps, model.SkillGap{Skill: skill, User: userScore, Industry: industryScore,
					Severity: model.SeverityPartial, Gap: magnitude})
			case GapKindStrength:
				strengths = append(strengths, model.SkillStrength{Skill: skill, User: userScore, Industry: industryScore})
			}
		}

		return model.GapAnalysis{
			CareerInterest: career,
			RadarData:      radar,
			Gaps:           gaps,
			Strengths:      strengths,
			LLMExplanation: s.explanation(ctx, userScores, gaps, career),
			OverallMatch:   OverallMatch(len(gaps), len(role.Skills)),
			CreatedAt:      time.Now().UTC().Format(time.RFC3339),
		}, nil
	})
}

func (s *GapService) explanation(ctx context.Context, userScores map[string]int, gaps []model.SkillGap, career string) string {
	gapNames := make([]string, 0, len(gaps))
	for _, g := range gaps {
		gapNames = append(gapNames, g.Skill)
	}
	skillsJSON, _ := json.Marshal(userScores)
	gapsJSON, _ := json.Marshal(gapNames)

	prompt := fmt.Sprintf(`You are a career coach. The user is targeting %s.

Their skills: %s
Skill gaps identified: %s

Write a concise 3-4 sentence analysis:
1. Acknowledge their existing strengths
2. Highlight the top 2 most critical gaps to close
3. Give one actionable improvement tip

Keep it direct and motivating.`, career, skillsJSON, gapsJSON)

	text, _ := GenerateText(ctx, s.Generator, "gap_analysis", prompt, func() string {
		return "Enable GEMINI_API_KEY for AI-powered gap analysis."
	})
	return text
}
