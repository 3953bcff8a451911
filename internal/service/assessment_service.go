package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"skillbridge_backend/internal/model"
	"skillbridge_backend/internal/repository"
	"skillbridge_backend/internal/util"
)

type AssessmentService struct {
	Assessments *repository.AssessmentRepository
	Generator   TextGenerator
}

func NewAssessmentService(assessments *repository.AssessmentRepository, gen TextGenerator) *AssessmentService {
	return &AssessmentService{Assessments: assessments, Generator: gen}
}

// SubmissionResult is what a graded submit returns to the client.
type SubmissionResult struct {
	Message       string `json:"message"`
	Score         int    `json:"score"`
	TotalMCQ      int    `json:"totalMcq"`
	McqPercentage int    `json:"mcqPercentage"`
	Terminated    bool   `json:"terminated"`
}

var codeLanguages = map[string]bool{
	"python": true, "java": true, "javascript": true, "c++": true,
}

// Generate produces a 7-question assessment (5 MCQ, 2 code) for the skill
// and persists it before returning. Generation failures fall back to a
// fixed question set; generate never fails for lack of the AI service.
func (s *AssessmentService) Generate(ctx context.Context, email, skill string) (*model.Assessment, error) {
	skill = strings.TrimSpace(skill)
	if skill == "" {
		skill = "Python"
	}

	lang := strings.ToLower(skill)
	if !codeLanguages[lang] {
		lang = "python"
	}

	prompt := fmt.Sprintf(`Generate a technical assessment for skill: "%s".

Create exactly 7 questions:
- Questions 1-5: Multiple Choice Questions (MCQ)
- Questions 6-7: Coding/Subjective questions

Return ONLY a valid JSON array with this structure:
[
  {
    "id": 1,
    "type": "mcq",
    "question": "What is ...?",
    "options": ["A", "B", "C", "D"],
    "correct": 0
  },
  ...
  {
    "id": 6,
    "type": "code",
    "question": "Write a function that ...",
    "language": "%s",
    "starterCode": "def solution():\n    pass"
  }
]

Make questions appropriate for intermediate level. JSON only, no markdown.`, skill, lang)

	questions, _ := GenerateJSON(ctx, s.Generator, "assessment", prompt, fallbackQuestions)
	if !validQuestionSet(questions) {
		questions = fallbackQuestions()
	}

	raw, err := json.Marshal(questions)
	if err != nil {
		return nil, err
	}

	a := &model.Assessment{
		ID:        fmt.Sprintf("%s_%s", email, time.Now().UTC().Format("20060102150405")),
		UserEmail: email,
		Skill:     skill,
		Questions: raw,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Assessments.Create(a); err != nil {
		return nil, err
	}
	return a, nil
}

// Submit grades the MCQ answers against the stored question set. A second
// submit against the same assessment is rejected.
func (s *AssessmentService) Submit(email, assessmentID string, answers map[string]interface{}, terminated bool) (*SubmissionResult, error) {
	a, err := s.Assessments.FindByOwner(assessmentID, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrAssessmentNotFound
		}
		return nil, err
	}
	if a.Submitted {
		return nil, util.ErrAlreadySubmitted
	}

	score, totalMCQ, pct := GradeAnswers(a.QuestionList(), answers)

	rawAnswers, err := json.Marshal(answers)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	a.Answers = rawAnswers
	a.Score = score
	a.TotalMCQ = totalMCQ
	a.McqPercentage = pct
	a.Terminated = terminated
	a.Submitted = true
	a.SubmittedAt = &now

	if err := s.Assessments.SaveSubmission(a); err != nil {
		return nil, err
	}

	return &SubmissionResult{
		Message:       "Assessment submitted",
		Score:         score,
		TotalMCQ:      totalMCQ,
		McqPercentage: pct,
		Terminated:    terminated,
	}, nil
}

func (s *AssessmentService) History(email string, limit int) ([]model.Assessment, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.Assessments.ListByUser(email, limit)
}

// GradeAnswers scores MCQ answers keyed by stringified question id. Answer
// values arrive as JSON numbers or strings; anything uncoercible counts
// wrong. Code questions are stored but not graded.
func GradeAnswers(questions []model.Question, answers map[string]interface{}) (score, totalMCQ, pct int) {
	for _, q := range questions {
		if q.Type != model.QuestionMCQ {
			continue
		}
		totalMCQ++
		if q.Correct == nil {
			continue
		}
		given, ok := answers[strconv.Itoa(q.ID)]
		if !ok {
			continue
		}
		if idx, ok := coerceInt(given); ok && idx == *q.Correct {
			score++
		}
	}

	if totalMCQ > 0 {
		pct = int(math.Round(float64(score) / float64(totalMCQ) * 100))
	}
	return score, totalMCQ, pct
}

func coerceInt(v interface{}) (int, bool) {
	switch t := v.(type) {
	case float64:
		return int(t), true
	case int:
		return t, true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(t))
		return n, err == nil
	default:
		return 0, false
	}
}

func validQuestionSet(qs []model.Question) bool {
	if len(qs) == 0 {
		return false
	}
	for _, q := range qs {
		if q.Type == model.QuestionMCQ && (len(q.Options) == 0 || q.Correct == nil) {
			return false
		}
	}
	return true
}

func intp(n int) *int { return &n }

// fallbackQuestions is the fixed assessment used when question generation
// is unavailable or returns garbage.
func fallbackQuestions() []model.Question {
	return []model.Question{
		{ID: 1, Type: model.QuestionMCQ, Question: "Which data structure uses LIFO?",
			Options: []string{"Queue", "Stack", "Tree", "Graph"}, Correct: intp(1)},
		{ID: 2, Type: model.QuestionMCQ, Question: "What is the time complexity of binary search?",
			Options: []string{"O(n)", "O(log n)", "O(n²)", "O(1)"}, Correct: intp(1)},
		{ID: 3, Type: model.QuestionMCQ, Question: "Which keyword is used to create a class in Python?",
			Options: []string{"def", "class", "struct", "type"}, Correct: intp(1)},
		{ID: 4, Type: model.QuestionMCQ, Question: "What does REST stand for?",
			Options: []string{"Representational State Transfer", "Remote Endpoint State Tool",
				"Real-time Event System Transfer", "Resource Exchange State Transfer"}, Correct: intp(0)},
		{ID: 5, Type: model.QuestionMCQ, Question: "Which of these is NOT a Python data type?",
			Options: []string{"list", "tuple", "array", "dict"}, Correct: intp(2)},
		{ID: 6, Type: model.QuestionCode, Question: "Write a function to reverse a string without using built-in reverse.",
			Language: "python", StarterCode: "def reverse_string(s: str) -> str:\n    # Your code here\n    pass"},
		{ID: 7, Type: model.QuestionCode, Question: "Implement a function to check if a number is prime.",
			Language: "python", StarterCode: "def is_prime(n: int) -> bool:\n    # Your code here\n    pass"},
	}
}
