package service

import (
	"strings"

	"skillbridge_backend/internal/model"
)

// Industry benchmark data: per-career expected proficiency per skill.
// Skills missing from a role's level map default to 70.

const defaultIndustryLevel = 70

type RoleBenchmark struct {
	Skills []string
	Levels map[string]int
}

var industryBenchmarks = map[string]RoleBenchmark{
	"Full Stack Developer": {
		Skills: []string{"JavaScript", "React", "Node.js", "SQL", "HTML", "CSS", "Git", "REST APIs"},
		Levels: map[string]int{
			"JavaScript": 85, "React": 80, "Node.js": 75, "SQL": 70,
			"HTML": 80, "CSS": 75, "Git": 70, "REST APIs": 75,
		},
	},
	"Backend Developer": {
		Skills: []string{"Python", "SQL", "Docker", "REST APIs", "Git", "Linux", "Redis"},
		Levels: map[string]int{
			"Python": 85, "SQL": 80, "Docker": 75, "REST APIs": 80,
			"Git": 70, "Linux": 70, "Redis": 60,
		},
	},
	"Frontend Developer": {
		Skills: []string{"JavaScript", "React", "TypeScript", "HTML", "CSS", "Git"},
		Levels: map[string]int{
			"JavaScript": 90, "React": 85, "TypeScript": 75,
			"HTML": 85, "CSS": 85, "Git": 65,
		},
	},
	"Data Scientist": {
		Skills: []string{"Python", "SQL", "Machine Learning", "Statistics", "Pandas", "Data Visualization"},
		Levels: map[string]int{
			"Python": 90, "SQL": 75, "Machine Learning": 80,
			"Statistics": 80, "Pandas": 75, "Data Visualization": 70,
		},
	},
	"DevOps Engineer": {
		Skills: []string{"Linux", "Docker", "Kubernetes", "AWS", "CI/CD", "Python", "Git"},
		Levels: map[string]int{
			"Linux": 85, "Docker": 85, "Kubernetes": 80, "AWS": 75,
			"CI/CD": 80, "Python": 65, "Git": 75,
		},
	},
	"Machine Learning Engineer": {
		Skills: []string{"Python", "TensorFlow", "PyTorch", "Machine Learning", "Docker", "SQL"},
		Levels: map[string]int{
			"Python": 90, "TensorFlow": 75, "PyTorch": 75,
			"Machine Learning": 85, "Docker": 65, "SQL": 70,
		},
	},
}

// BenchmarkForCareer resolves a career interest to its benchmark,
// falling back to Full Stack Developer for unknown careers.
func BenchmarkForCareer(career string) (string, RoleBenchmark) {
	if role, ok := industryBenchmarks[career]; ok {
		return career, role
	}
	for name, role := range industryBenchmarks {
		if strings.EqualFold(name, career) {
			return name, role
		}
	}
	return model.DefaultCareerInterest, industryBenchmarks[model.DefaultCareerInterest]
}

func (r RoleBenchmark) LevelFor(skill string) int {
	if lvl, ok := r.Levels[skill]; ok {
		return lvl
	}
	return defaultIndustryLevel
}

// careerPaths is the candidate set scored by the career-match feature.
var careerPaths = []model.CareerPath{
	{
		Title:          "Full Stack Developer",
		Description:    "Build and maintain both client and server halves of web applications.",
		RequiredSkills: []string{"JavaScript", "React", "Node.js", "SQL", "HTML", "CSS"},
		AvgSalary:      "₹6-12 LPA",
		Demand:         "High",
	},
	{
		Title:          "Backend Developer",
		Description:    "Design APIs, data models and the server-side systems behind products.",
		RequiredSkills: []string{"Python", "SQL", "Docker", "REST APIs", "Git"},
		AvgSalary:      "₹5-11 LPA",
		Demand:         "High",
	},
	{
		Title:          "Frontend Developer",
		Description:    "Craft responsive, accessible user interfaces for the web.",
		RequiredSkills: []string{"JavaScript", "React", "TypeScript", "HTML", "CSS"},
		AvgSalary:      "₹4-10 LPA",
		Demand:         "High",
	},
	{
		Title:          "Data Scientist",
		Description:    "Extract insight and predictions from data with statistics and ML.",
		RequiredSkills: []string{"Python", "SQL", "Machine Learning", "Statistics", "Pandas"},
		AvgSalary:      "₹8-16 LPA",
		Demand:         "Very High",
	},
	{
		Title:          "DevOps Engineer",
		Description:    "Automate build, deployment and operations of production systems.",
		RequiredSkills: []string{"Linux", "Docker", "Kubernetes", "AWS", "CI/CD"},
		AvgSalary:      "₹7-14 LPA",
		Demand:         "Very High",
	},
	{
		Title:          "Machine Learning Engineer",
		Description:    "Productionize ML models and the pipelines that feed them.",
		RequiredSkills: []string{"Python", "TensorFlow", "PyTorch", "Machine Learning", "Docker"},
		AvgSalary:      "₹9-18 LPA",
		Demand:         "Very High",
	},
}
