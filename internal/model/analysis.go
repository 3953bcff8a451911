package model

// Derived artifacts. Each is overwritten whole under its own document key
// on recomputation; none is versioned.

type GapSeverity = string

const (
	SeverityCritical GapSeverity = "critical"
	SeverityPartial  GapSeverity = "partial"
)

// RadarPoint is one axis of the radar chart: user score vs industry
// benchmark for a single skill.
type RadarPoint struct {
	Skill    string `json:"skill"`
	User     int    `json:"user"`
	Industry int    `json:"industry"`
}

// SkillGap is a skill where the user sits materially below the benchmark.
type SkillGap struct {
	Skill    string      `json:"skill"`
	User     int         `json:"user"`
	Industry int         `json:"industry"`
	Severity GapSeverity `json:"severity"`
	Gap      int         `json:"gap"`
}

// SkillStrength is a skill at or above the benchmark.
type SkillStrength struct {
	Skill    string `json:"skill"`
	User     int    `json:"user"`
	Industry int    `json:"industry"`
}

type GapAnalysis struct {
	CareerInterest string          `json:"careerInterest"`
	RadarData      []RadarPoint    `json:"radarData"`
	Gaps           []SkillGap      `json:"gaps"`
	Strengths      []SkillStrength `json:"strengths"`
	LLMExplanation string          `json:"llmExplanation"`
	OverallMatch   int             `json:"overallMatch"`
	CreatedAt      string          `json:"createdAt"`
}

// CareerPath is one candidate career with its benchmark skill list.
type CareerPath struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	RequiredSkills []string `json:"requiredSkills"`
	AvgSalary      string   `json:"avgSalary,omitempty"`
	Demand         string   `json:"demand,omitempty"`
}

// CareerMatch is a CareerPath scored against the user's skills.
type CareerMatch struct {
	CareerPath
	MatchPct int      `json:"matchPct"`
	Gaps     []string `json:"gaps"`
	Guidance string   `json:"guidance,omitempty"`
}

type CareerMatchResult struct {
	Matches   []CareerMatch `json:"matches"`
	TopCareer string        `json:"topCareer"`
	CreatedAt string        `json:"createdAt"`
}

// SwotResult carries four bullet lists plus a narrative assessment.
type SwotResult struct {
	Strengths     []string `json:"strengths"`
	Weaknesses    []string `json:"weaknesses"`
	Opportunities []string `json:"opportunities"`
	Threats       []string `json:"threats"`
	LLMAnalysis   string   `json:"llmAnalysis"`
	CreatedAt     string   `json:"createdAt,omitempty"`
}

// RoadmapWeek is one of exactly twelve entries in a learning roadmap.
type RoadmapWeek struct {
	Week        int      `json:"week"`
	Theme       string   `json:"theme"`
	SkillsFocus []string `json:"skillsFocus"`
	Tasks       []string `json:"tasks"`
	Resources   []string `json:"resources"`
	Milestone   string   `json:"milestone"`
}

type Roadmap struct {
	Career     string        `json:"career"`
	Weeks      []RoadmapWeek `json:"weeks"`
	TotalWeeks int           `json:"totalWeeks"`
	CreatedAt  string        `json:"createdAt"`
}
