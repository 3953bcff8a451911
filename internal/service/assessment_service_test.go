package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillbridge_backend/internal/model"
)

func TestGradeAnswers(t *testing.T) {
	questions := fallbackQuestions()

	t.Run("mixed string and numeric answers", func(t *testing.T) {
		answers := map[string]interface{}{
			"1": "1",        // correct
			"2": float64(1), // correct, JSON number
			"3": "9",        // wrong
			"4": float64(0), // correct
			"5": "2",        // correct
			"6": "def reverse_string(s): return s[::-1]",
		}
		score, totalMCQ, pct := GradeAnswers(questions, answers)
		assert.Equal(t, 4, score)
		assert.Equal(t, 5, totalMCQ)
		assert.Equal(t, 80, pct)
	})

	t.Run("missing answers count wrong", func(t *testing.T) {
		score, totalMCQ, pct := GradeAnswers(questions, map[string]interface{}{"1": "1"})
		assert.Equal(t, 1, score)
		assert.Equal(t, 5, totalMCQ)
		assert.Equal(t, 20, pct)
	})

	t.Run("uncoercible answer counts wrong", func(t *testing.T) {
		score, _, _ := GradeAnswers(questions, map[string]interface{}{"1": "not a number"})
		assert.Equal(t, 0, score)
	})

	t.Run("no mcq questions yields zero percent", func(t *testing.T) {
		codeOnly := []model.Question{
			{ID: 1, Type: model.QuestionCode, Question: "Write code", Language: "python"},
		}
		score, totalMCQ, pct := GradeAnswers(codeOnly, map[string]interface{}{"1": "0"})
		assert.Equal(t, 0, score)
		assert.Equal(t, 0, totalMCQ)
		assert.Equal(t, 0, pct)
	})

	t.Run("grading is deterministic", func(t *testing.T) {
		answers := map[string]interface{}{"1": "1", "4": "0"}
		s1, _, _ := GradeAnswers(questions, answers)
		s2, _, _ := GradeAnswers(questions, answers)
		assert.Equal(t, s1, s2)
	})
}

func TestCoerceInt(t *testing.T) {
	tests := []struct {
		in     interface{}
		want   int
		wantOK bool
	}{
		{float64(2), 2, true},
		{3, 3, true},
		{"1", 1, true},
		{" 4 ", 4, true},
		{"abc", 0, false},
		{nil, 0, false},
		{true, 0, false},
	}
	for _, tt := range tests {
		got, ok := coerceInt(tt.in)
		assert.Equal(t, tt.wantOK, ok, "input %v", tt.in)
		if ok {
			assert.Equal(t, tt.want, got, "input %v", tt.in)
		}
	}
}

func TestFallbackQuestions(t *testing.T) {
	qs := fallbackQuestions()
	require.Len(t, qs, 7)
	assert.True(t, validQuestionSet(qs))

	mcq, code := 0, 0
	for i, q := range qs {
		assert.Equal(t, i+1, q.ID)
		switch q.Type {
		case model.QuestionMCQ:
			mcq++
			require.NotNil(t, q.Correct)
			assert.Len(t, q.Options, 4)
			assert.GreaterOrEqual(t, *q.Correct, 0)
			assert.Less(t, *q.Correct, len(q.Options))
		case model.QuestionCode:
			code++
			assert.NotEmpty(t, q.Language)
			assert.NotEmpty(t, q.StarterCode)
		}
	}
	assert.Equal(t, 5, mcq)
	assert.Equal(t, 2, code)
}

func TestValidQuestionSet(t *testing.T) {
	assert.False(t, validQuestionSet(nil))
	assert.False(t, validQuestionSet([]model.Question{
		{ID: 1, Type: model.QuestionMCQ, Question: "no options"},
	}))
	assert.True(t, validQuestionSet(fallbackQuestions()))
}
