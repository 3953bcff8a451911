package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"skillbridge_backend/internal/model"
	"skillbridge_backend/internal/repository"
)

const roadmapWeeks = 12

type RoadmapService struct {
	Records   *repository.RecordRepository
	Generator TextGenerator
}

func NewRoadmapService(records *repository.RecordRepository, gen TextGenerator) *RoadmapService {
	return &RoadmapService{Records: records, Generator: gen}
}

// Build generates a 12-week learning roadmap targeting the stored top
// career match, or the profile's career interest when no match has been
// computed yet. Persists under the roadmap key.
func (s *RoadmapService) Build(ctx context.Context, email string) (model.Roadmap, error) {
	return runDerived(s.Records, email, repository.FieldRoadmap, func(rec *model.UserRecord) (model.Roadmap, error) {
		career := rec.CareerData().TopCareer
		if career == "" {
			career = rec.CareerInterest()
		}

		userSkills := []string{}
		for _, sk := range rec.SkillList() {
			userSkills = append(userSkills, sk.Name)
		}
		gapNames := []string{}
		for _, g := range rec.GapData().Gaps {
			gapNames = append(gapNames, g.Skill)
		}

		name := rec.FullName
		if name == "" {
			name = "a student"
		}

		prompt := fmt.Sprintf(`Create a personalised 12-week learning roadmap for %s.
Career Goal: %s
Current Skills: %s
Top Skill Gaps: %s

Return ONLY valid JSON, an array of 12 week objects:
[
  {
    "week": 1,
    "theme": "Foundation",
    "skillsFocus": ["Skill1", "Skill2"],
    "tasks": ["Complete X course", "Build Y mini-project"],
    "resources": ["resource1", "resource2"],
    "milestone": "Milestone description"
  },
  ...12 items total
]
JSON only, no markdown, no extra text.`,
			name, career,
			strings.Join(head(userSkills, 12), ", "),
			strings.Join(head(gapNames, 6), ", "))

		weeks, _ := GenerateJSON(ctx, s.Generator, "roadmap", prompt, func() []model.RoadmapWeek {
			return fallbackRoadmap(gapNames)
		})
		if len(weeks) != roadmapWeeks {
			weeks = fallbackRoadmap(gapNames)
		}

		return model.Roadmap{
			Career:     career,
			Weeks:      weeks,
			TotalWeeks: len(weeks),
			CreatedAt:  time.Now().UTC().Format(time.RFC3339),
		}, nil
	})
}

var roadmapThemes = [roadmapWeeks]string{
	"Foundation", "Core Skills", "Deep Dive", "Project Building",
	"Advanced Topics", "Real Projects", "System Design", "Portfolio",
	"Interview Prep", "Mock Interviews", "Final Projects", "Launch Ready",
}

func fallbackRoadmap(gapNames []string) []model.RoadmapWeek {
	focus := head(gapNames, 2)
	if len(focus) == 0 {
		focus = []string{"Core Skills", "Problem Solving"}
	}

	weeks := make([]model.RoadmapWeek, roadmapWeeks)
	for i, theme := range roadmapThemes {
		weeks[i] = model.RoadmapWeek{
			Week:        i + 1,
			Theme:       theme,
			SkillsFocus: focus,
			Tasks: []string{
				fmt.Sprintf("Complete %s module on Udemy/Coursera", theme),
				fmt.Sprintf("Build a %s project", strings.ToLower(theme)),
			},
			Resources: []string{"Udemy", "LeetCode", "GitHub"},
			Milestone: fmt.Sprintf("Complete %s phase", theme),
		}
	}
	return weeks
}
