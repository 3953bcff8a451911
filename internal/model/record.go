package model

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// UserRecord is the per-user document. Every top-level key lives in its own
// JSON column so a merge-write touches exactly one column and never clobbers
// siblings. Keyed by the normalized email from the token subject.
type UserRecord struct {
	Email       string         `gorm:"primaryKey;size:100" json:"email"`
	FullName    string         `gorm:"size:100" json:"full_name"`
	Profile     datatypes.JSON `json:"profile"`
	Skills      datatypes.JSON `json:"skills"`
	Repos       datatypes.JSON `json:"repos"`
	Resume      datatypes.JSON `json:"resume"`
	CareerMatch datatypes.JSON `gorm:"column:career_match" json:"career_match"`
	GapAnalysis datatypes.JSON `gorm:"column:gap_analysis" json:"gap_analysis"`
	Swot        datatypes.JSON `json:"swot"`
	Roadmap     datatypes.JSON `json:"roadmap"`
	CreatedAt   time.Time      `json:"-"`
	UpdatedAt   time.Time      `json:"-"`
}

func (UserRecord) TableName() string {
	return "user_records"
}

// Profile holds the data captured at profile setup.
type Profile struct {
	College        string `json:"college"`
	Branch         string `json:"branch"`
	Year           string `json:"year"`
	CareerInterest string `json:"careerInterest"`
	TargetCompany  string `json:"targetCompany"`
	Bio            string `json:"bio"`
	UpdatedAt      string `json:"updatedAt"`
}

type SkillLevel = string

const (
	LevelBeginner     SkillLevel = "Beginner"
	LevelIntermediate SkillLevel = "Intermediate"
	LevelAdvanced     SkillLevel = "Advanced"
)

// Skill is one self-reported skill on the dashboard.
type Skill struct {
	Name     string     `json:"name"`
	Level    SkillLevel `json:"level"`
	Category string     `json:"category"`
}

// RepoSummary is public metadata fetched for one GitHub repository.
// Fetch failures leave name/url filled and the rest zeroed.
type RepoSummary struct {
	URL         string   `json:"url"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	TechStack   []string `json:"techStack"`
	Stars       int      `json:"stars"`
	Language    string   `json:"language"`
	LastCommit  string   `json:"lastCommit"`
	ScrapedAt   string   `json:"scrapedAt"`
}

// ParsedResume is the structured extraction from an uploaded PDF resume.
type ParsedResume struct {
	Skills       []string `json:"skills"`
	Achievements []string `json:"achievements"`
	Experience   []string `json:"experience"`
	Publications []string `json:"publications"`
	Summary      string   `json:"summary"`
}

// ResumeRecord wraps the parsed resume with upload metadata.
type ResumeRecord struct {
	FileName   string       `json:"fileName"`
	Parsed     ParsedResume `json:"parsed"`
	StorageKey string       `json:"storageKey,omitempty"`
	UploadedAt string       `json:"uploadedAt"`
}

// Dashboard is the aggregate view returned by GET /api/dashboard.
type Dashboard struct {
	Skills []Skill       `json:"skills"`
	Repos  []RepoSummary `json:"repos"`
	Resume *ResumeRecord `json:"resume,omitempty"`
}

// The typed accessors below unmarshal a JSON column with permissive
// defaults: a missing or corrupt column reads as the zero value, never as
// an error. Feature orchestrators rely on this.

func (r *UserRecord) ProfileData() Profile {
	var p Profile
	decodeColumn(r.Profile, &p)
	return p
}

func (r *UserRecord) SkillList() []Skill {
	var s []Skill
	decodeColumn(r.Skills, &s)
	return s
}

func (r *UserRecord) RepoList() []RepoSummary {
	var repos []RepoSummary
	decodeColumn(r.Repos, &repos)
	return repos
}

func (r *UserRecord) ResumeData() *ResumeRecord {
	if len(r.Resume) == 0 {
		return nil
	}
	var res ResumeRecord
	if !decodeColumn(r.Resume, &res) {
		return nil
	}
	return &res
}

func (r *UserRecord) GapData() GapAnalysis {
	var g GapAnalysis
	decodeColumn(r.GapAnalysis, &g)
	return g
}

func (r *UserRecord) CareerData() CareerMatchResult {
	var c CareerMatchResult
	decodeColumn(r.CareerMatch, &c)
	return c
}

func (r *UserRecord) DashboardData() Dashboard {
	return Dashboard{
		Skills: r.SkillList(),
		Repos:  r.RepoList(),
		Resume: r.ResumeData(),
	}
}

// CareerInterest returns the profile's career interest, defaulting to
// "Full Stack Developer" when unset.
func (r *UserRecord) CareerInterest() string {
	if ci := r.ProfileData().CareerInterest; ci != "" {
		return ci
	}
	return DefaultCareerInterest
}

const DefaultCareerInterest = "Full Stack Developer"

func decodeColumn(raw datatypes.JSON, out interface{}) bool {
	if len(raw) == 0 {
		return false
	}
	return json.Unmarshal(raw, out) == nil
}
