package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"skillbridge_backend/internal/model"
	"skillbridge_backend/internal/repository"
)

type SwotService struct {
	Records   *repository.RecordRepository
	Generator TextGenerator
}

func NewSwotService(records *repository.RecordRepository, gen TextGenerator) *SwotService {
	return &SwotService{Records: records, Generator: gen}
}

// Analyze builds a SWOT from the profile, skills and the latest stored gap
// analysis, persisting under the swot key. The stored gap analysis may be
// stale or absent; the prompt simply carries less context then.
func (s *SwotService) Analyze(ctx context.Context, email string) (model.SwotResult, error) {
	return runDerived(s.Records, email, repository.FieldSwot, func(rec *model.UserRecord) (model.SwotResult, error) {
		profile := rec.ProfileData()
		career := rec.CareerInterest()

		skillNames := []string{}
		for _, sk := range rec.SkillList() {
			skillNames = append(skillNames, sk.Name)
		}

		gapData := rec.GapData()
		gapNames := []string{}
		for _, g := range gapData.Gaps {
			gapNames = append(gapNames, g.Skill)
		}
		strengthNames := []string{}
		for _, st := range gapData.Strengths {
			strengthNames = append(strengthNames, st.Skill)
		}

		prompt := fmt.Sprintf(`Generate a concise SWOT analysis for a student with this profile:
Career Goal: %s
Skills: %s
Skill Strengths: %s
Skill Gaps: %s
College: %s
Branch: %s

Return ONLY valid JSON:
{
  "strengths": ["point1", "point2", "point3", "point4"],
  "weaknesses": ["point1", "point2", "point3", "point4"],
  "opportunities": ["point1", "point2", "point3", "point4"],
  "threats": ["point1", "point2", "point3", "point4"],
  "llmAnalysis": "2-3 sentence overall assessment"
}
JSON only, no markdown.`,
			career,
			strings.Join(head(skillNames, 15), ", "),
			strings.Join(head(strengthNames, 5), ", "),
			strings.Join(head(gapNames, 5), ", "),
			orUnknown(profile.College),
			orUnknown(profile.Branch))

		swot, _ := GenerateJSON(ctx, s.Generator, "swot", prompt, func() model.SwotResult {
			return fallbackSwot(gapNames)
		})
		swot.CreatedAt = time.Now().UTC().Format(time.RFC3339)
		return swot, nil
	})
}

func fallbackSwot(gapNames []string) model.SwotResult {
	weakness := "Skill gaps in key areas"
	if len(gapNames) > 0 {
		weakness = "Gaps in " + gapNames[0]
	}
	return model.SwotResult{
		Strengths:     []string{"Strong technical foundation", "Motivated learner"},
		Weaknesses:    []string{weakness, "Limited industry experience"},
		Opportunities: []string{"Growing tech industry", "Online learning resources"},
		Threats:       []string{"Competitive job market", "Rapid tech change"},
		LLMAnalysis:   "Enable GEMINI_API_KEY for detailed AI SWOT analysis.",
	}
}

func head(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}
