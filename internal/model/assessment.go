package model

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

type QuestionType = string

const (
	QuestionMCQ  QuestionType = "mcq"
	QuestionCode QuestionType = "code"
)

// Question is one assessment question. MCQs carry options and the correct
// option index; code questions carry a language and starter code instead.
type Question struct {
	ID          int          `json:"id"`
	Type        QuestionType `json:"type"`
	Question    string       `json:"question"`
	Options     []string     `json:"options,omitempty"`
	Correct     *int         `json:"correct,omitempty"`
	Language    string       `json:"language,omitempty"`
	StarterCode string       `json:"starterCode,omitempty"`
}

// Assessment is the one derived entity addressable by its own id, because
// submit must reference it later. ID format: {email}_{timestamp}.
type Assessment struct {
	ID            string         `gorm:"primaryKey;size:160" json:"assessmentId"`
	UserEmail     string         `gorm:"size:100;index;not null" json:"-"`
	Skill         string         `gorm:"size:100" json:"skill"`
	Questions     datatypes.JSON `json:"questions"`
	Terminated    bool           `gorm:"default:false" json:"terminated"`
	Submitted     bool           `gorm:"default:false" json:"submitted"`
	Answers       datatypes.JSON `json:"answers,omitempty"`
	Score         int            `gorm:"default:0" json:"score"`
	TotalMCQ      int            `gorm:"column:total_mcq;default:0" json:"totalMcq"`
	McqPercentage int            `gorm:"default:0" json:"mcqPercentage"`
	CreatedAt     time.Time      `json:"createdAt"`
	SubmittedAt   *time.Time     `json:"submittedAt,omitempty"`
}

func (Assessment) TableName() string {
	return "assessments"
}

func (a *Assessment) QuestionList() []Question {
	var qs []Question
	if len(a.Questions) > 0 {
		json.Unmarshal(a.Questions, &qs)
	}
	return qs
}
