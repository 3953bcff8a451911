package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"skillbridge_backend/internal/model"
	"skillbridge_backend/internal/repository"
)

type CareerService struct {
	Records   *repository.RecordRepository
	Generator TextGenerator
}

func NewCareerService(records *repository.RecordRepository, gen TextGenerator) *CareerService {
	return &CareerService{Records: records, Generator: gen}
}

// Match scores the user's skills against every candidate career and
// returns the top three with per-career guidance, persisting under the
// career_match key.
func (s *CareerService) Match(ctx context.Context, email string) (model.CareerMatchResult, error) {
	return runDerived(s.Records, email, repository.FieldCareerMatch, func(rec *model.UserRecord) (model.CareerMatchResult, error) {
		userSkills := []string{}
		userSet := make(map[string]bool)
		for _, sk := range rec.SkillList() {
			userSkills = append(userSkills, sk.Name)
			userSet[strings.ToLower(sk.Name)] = true
		}

		matches := make([]model.CareerMatch, 0, len(careerPaths))
		for _, career := range careerPaths {
			gaps := []string{}
			for _, req := range career.RequiredSkills {
				if !userSet[strings.ToLower(req)] {
					gaps = append(gaps, req)
				}
			}
			matches = append(matches, model.CareerMatch{
				CareerPath: career,
				MatchPct:   ComputeMatchPercentage(userSkills, career.RequiredSkills),
				Gaps:       gaps,
			})
		}

		sort.SliceStable(matches, func(i, j int) bool {
			return matches[i].MatchPct > matches[j].MatchPct
		})
		if len(matches) > 3 {
			matches = matches[:3]
		}

		for i := range matches {
			matches[i].Guidance = s.guidance(ctx, matches[i], userSkills)
		}

		top := model.DefaultCareerInterest
		if len(matches) > 0 {
			top = matches[0].Title
		}

		return model.CareerMatchResult{
			Matches:   matches,
			TopCareer: top,
			CreatedAt: time.Now().UTC().Format(time.RFC3339),
		}, nil
	})
}

func (s *CareerService) guidance(ctx context.Context, m model.CareerMatch, userSkills []string) string {
	prompt := fmt.Sprintf(`Career: %s | Match: %d%%
User skills: %s
Missing skills: %s

Write 2 sentences of personalized career guidance: why this role suits them and what one thing they should do next.`,
		m.Title, m.MatchPct,
		strings.Join(head(userSkills, 10), ", "),
		strings.Join(head(m.Gaps, 5), ", "))

	text, _ := GenerateText(ctx, s.Generator, "career_match", prompt, func() string {
		return fmt.Sprintf("Strong match for %s. Focus on closing skill gaps to reach %d%%+ readiness.", m.Title, m.MatchPct)
	})
	return text
}
