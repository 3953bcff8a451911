package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"skillbridge_backend/internal/config"
	"skillbridge_backend/pkg/logger"
	"skillbridge_backend/pkg/monitoring"
)

// TextGenerator is the capability boundary around the external
// text-generation service: one prompt in, raw text out.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ErrGeneratorUnavailable marks the no-credential variant; callers fall
// back without ever touching the network.
var ErrGeneratorUnavailable = errors.New("text generation service not configured")

// NullGenerator is the variant used when no API key is configured. It
// performs no I/O; every call degrades to the caller's fallback.
type NullGenerator struct{}

func (NullGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	return "", ErrGeneratorUnavailable
}

// GeminiGenerator calls the Gemini API once per Generate: no retries, no
// backoff, no caching. Model and timeout are snapshotted per call so a
// config reload takes effect without a restart.
type GeminiGenerator struct {
	client *genai.Client
	cfg    *config.Config
}

// NewTextGenerator picks the real or the null variant from config.
func NewTextGenerator(ctx context.Context, cfg *config.Config) TextGenerator {
	if cfg.AI.APIKey == "" {
		logger.L().Warn("GEMINI_API_KEY not set, all generation will use static fallbacks")
		return NullGenerator{}
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.AI.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		logger.L().Error("failed to create generation client, falling back to static output", zap.Error(err))
		return NullGenerator{}
	}

	return &GeminiGenerator{client: client, cfg: cfg}
}

func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	ai := g.cfg.AISettings()
	ctx, cancel := context.WithTimeout(ctx, time.Duration(ai.TimeoutSeconds)*time.Second)
	defer cancel()

	resp, err := g.client.Models.GenerateContent(ctx, ai.Model, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

// StripCodeFence removes a surrounding markdown code fence and its
// optional language tag from a model reply.
func StripCodeFence(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		tag := strings.TrimSpace(s[:i])
		if len(tag) <= 10 && !strings.ContainsAny(tag, "{}[]\"") {
			s = s[i+1:]
		}
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// GenerateJSON prompts gen and decodes the fence-stripped reply into T.
// Any failure (unconfigured service, transport error, unparseable output)
// yields fallback() and false. Callers never see the underlying error.
func GenerateJSON[T any](ctx context.Context, gen TextGenerator, feature, prompt string, fallback func() T) (T, bool) {
	raw, err := generate(ctx, gen, feature, prompt)
	if err != nil {
		return fallback(), false
	}

	var out T
	if err := json.Unmarshal([]byte(StripCodeFence(raw)), &out); err != nil {
		logger.L().Warn("generation returned unparseable JSON, using fallback",
			zap.String("feature", feature), zap.Error(err))
		monitoring.GenerationFallbacks.WithLabelValues(feature).Inc()
		return fallback(), false
	}
	return out, true
}

// GenerateText is the free-text flavor of GenerateJSON.
func GenerateText(ctx context.Context, gen TextGenerator, feature, prompt string, fallback func() string) (string, bool) {
	raw, err := generate(ctx, gen, feature, prompt)
	if err != nil {
		return fallback(), false
	}
	return strings.TrimSpace(raw), true
}

func generate(ctx context.Context, gen TextGenerator, feature, prompt string) (string, error) {
	if gen == nil {
		gen = NullGenerator{}
	}

	raw, err := gen.Generate(ctx, prompt)
	if err != nil {
		if !errors.Is(err, ErrGeneratorUnavailable) {
			logger.L().Warn("generation call failed, using fallback",
				zap.String("feature", feature), zap.Error(err))
		}
		monitoring.GenerationFallbacks.WithLabelValues(feature).Inc()
		return "", err
	}
	return raw, nil
}
