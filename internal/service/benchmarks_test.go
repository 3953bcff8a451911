package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"skillbridge_backend/internal/model"
)

func TestBenchmarkForCareer(t *testing.T) {
	name, role := BenchmarkForCareer("Backend Developer")
	assert.Equal(t, "Backend Developer", name)
	assert.Contains(t, role.Skills, "Python")

	name, _ = BenchmarkForCareer("backend developer")
	assert.Equal(t, "Backend Developer", name)

	name, role = BenchmarkForCareer("Underwater Basket Weaver")
	assert.Equal(t, model.DefaultCareerInterest, name)
	assert.NotEmpty(t, role.Skills)

	name, _ = BenchmarkForCareer("")
	assert.Equal(t, model.DefaultCareerInterest, name)
}

func TestRoleBenchmarkLevelFor(t *testing.T) {
	_, role := BenchmarkForCareer("Frontend Developer")
	assert.Equal(t, 90, role.LevelFor("JavaScript"))
	assert.Equal(t, defaultIndustryLevel, role.LevelFor("COBOL"))
}

func TestCareerPathsHaveBenchmarks(t *testing.T) {
	for _, career := range careerPaths {
		name, _ := BenchmarkForCareer(career.Title)
		assert.Equal(t, career.Title, name, "career path %q should resolve to its own benchmark", career.Title)
		assert.NotEmpty(t, career.RequiredSkills)
	}
}
