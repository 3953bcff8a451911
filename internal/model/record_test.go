package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func TestTypedAccessorsTolerateMissingColumns(t *testing.T) {
	rec := &UserRecord{Email: "user@example.com"}

	assert.Equal(t, Profile{}, rec.ProfileData())
	assert.Empty(t, rec.SkillList())
	assert.Empty(t, rec.RepoList())
	assert.Nil(t, rec.ResumeData())
	assert.Equal(t, GapAnalysis{}, rec.GapData())
	assert.Equal(t, CareerMatchResult{}, rec.CareerData())
}

func TestTypedAccessorsTolerateCorruptColumns(t *testing.T) {
	rec := &UserRecord{
		Email:   "user@example.com",
		Profile: datatypes.JSON(`{broken`),
		Skills:  datatypes.JSON(`"not a list"`),
		Resume:  datatypes.JSON(`[1,2,3]`),
	}

	assert.Equal(t, Profile{}, rec.ProfileData())
	assert.Empty(t, rec.SkillList())
	assert.Nil(t, rec.ResumeData())
}

func TestSkillListDecodes(t *testing.T) {
	rec := &UserRecord{
		Skills: datatypes.JSON(`[{"name":"Python","level":"Advanced","category":"Backend"}]`),
	}

	skills := rec.SkillList()
	assert.Len(t, skills, 1)
	assert.Equal(t, "Python", skills[0].Name)
	assert.Equal(t, LevelAdvanced, skills[0].Level)
}

func TestCareerInterestDefault(t *testing.T) {
	rec := &UserRecord{}
	assert.Equal(t, DefaultCareerInterest, rec.CareerInterest())

	rec.Profile = datatypes.JSON(`{"careerInterest":"DevOps Engineer"}`)
	assert.Equal(t, "DevOps Engineer", rec.CareerInterest())
}

func TestDashboardData(t *testing.T) {
	rec := &UserRecord{
		Skills: datatypes.JSON(`[{"name":"Go","level":"Intermediate"}]`),
		Repos:  datatypes.JSON(`[{"url":"https://github.com/a/b","name":"b"}]`),
	}

	dash := rec.DashboardData()
	assert.Len(t, dash.Skills, 1)
	assert.Len(t, dash.Repos, 1)
	assert.Nil(t, dash.Resume)
}
