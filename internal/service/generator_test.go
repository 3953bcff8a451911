package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// stubGenerator returns a fixed reply or error.
type stubGenerator struct {
	reply string
	err   error
}

func (s stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	return s.reply, s.err
}

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"plain json untouched", `{"a":1}`, `{"a":1}`},
		{"fence with json tag", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"fence without tag", "```\n[1,2]\n```", "[1,2]"},
		{"surrounding whitespace", "  ```json\n{}\n```  ", "{}"},
		{"payload on fence line kept", "```{\"a\":1}\n```", `{"a":1}`},
		{"empty string", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripCodeFence(tt.raw))
		})
	}
}

func TestNullGeneratorAlwaysUnavailable(t *testing.T) {
	_, err := NullGenerator{}.Generate(context.Background(), "anything")
	assert.ErrorIs(t, err, ErrGeneratorUnavailable)
}

type roadmapStub struct {
	Theme string `json:"theme"`
}

func TestGenerateJSON(t *testing.T) {
	ctx := context.Background()
	fallback := func() roadmapStub { return roadmapStub{Theme: "static"} }

	t.Run("unconfigured service uses fallback", func(t *testing.T) {
		out, fromAI := GenerateJSON(ctx, NullGenerator{}, "test", "p", fallback)
		assert.False(t, fromAI)
		assert.Equal(t, "static", out.Theme)
	})

	t.Run("transport error uses fallback", func(t *testing.T) {
		gen := stubGenerator{err: errors.New("boom")}
		out, fromAI := GenerateJSON(ctx, gen, "test", "p", fallback)
		assert.False(t, fromAI)
		assert.Equal(t, "static", out.Theme)
	})

	t.Run("unparseable reply uses fallback", func(t *testing.T) {
		gen := stubGenerator{reply: "sure! here is your JSON: {broken"}
		out, fromAI := GenerateJSON(ctx, gen, "test", "p", fallback)
		assert.False(t, fromAI)
		assert.Equal(t, "static", out.Theme)
	})

	t.Run("fenced reply parses", func(t *testing.T) {
		gen := stubGenerator{reply: "```json\n{\"theme\":\"generated\"}\n```"}
		out, fromAI := GenerateJSON(ctx, gen, "test", "p", fallback)
		assert.True(t, fromAI)
		assert.Equal(t, "generated", out.Theme)
	})

	t.Run("nil generator behaves like null", func(t *testing.T) {
		out, fromAI := GenerateJSON(ctx, nil, "test", "p", fallback)
		assert.False(t, fromAI)
		assert.Equal(t, "static", out.Theme)
	})
}

func TestGenerateText(t *testing.T) {
	ctx := context.Background()
	fallback := func() string { return "static text" }

	out, fromAI := GenerateText(ctx, NullGenerator{}, "test", "p", fallback)
	assert.False(t, fromAI)
	assert.Equal(t, "static text", out)

	out, fromAI = GenerateText(ctx, stubGenerator{reply: "  generated  "}, "test", "p", fallback)
	assert.True(t, fromAI)
	assert.Equal(t, "generated", out)
}
