package config

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyReloadableConcurrentWithReads(t *testing.T) {
	cfg := &Config{
		AI:     AIConfig{Model: "gemini-1.5-flash", TimeoutSeconds: 30},
		GitHub: GitHubConfig{Token: "old-token"},
	}
	next := &Config{
		AI:     AIConfig{Model: "gemini-2.0-flash", TimeoutSeconds: 15},
		GitHub: GitHubConfig{Token: "new-token"},
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 500; j++ {
				ai := cfg.AISettings()
				oldPair := ai.Model == "gemini-1.5-flash" && ai.TimeoutSeconds == 30
				newPair := ai.Model == "gemini-2.0-flash" && ai.TimeoutSeconds == 15
				if !oldPair && !newPair {
					t.Errorf("torn snapshot: %q / %d", ai.Model, ai.TimeoutSeconds)
					return
				}
				_ = cfg.GitHubToken()
			}
		}()
	}

	for j := 0; j < 500; j++ {
		cfg.ApplyReloadable(next)
	}
	wg.Wait()

	assert.Equal(t, "gemini-2.0-flash", cfg.AISettings().Model)
	assert.Equal(t, 15, cfg.AISettings().TimeoutSeconds)
	assert.Equal(t, "new-token", cfg.GitHubToken())
}

func TestApplyReloadableLeavesStaticSettings(t *testing.T) {
	cfg := &Config{
		Server:    ServerConfig{Port: "8080"},
		AI:        AIConfig{Model: "gemini-1.5-flash", TimeoutSeconds: 30},
		RateLimit: RateLimitConfig{MaxRequests: 1000, WindowMinutes: 1},
	}
	next := &Config{
		Server:    ServerConfig{Port: "9090"},
		AI:        AIConfig{Model: "gemini-2.0-flash", TimeoutSeconds: 15},
		RateLimit: RateLimitConfig{MaxRequests: 5, WindowMinutes: 10},
	}

	cfg.ApplyReloadable(next)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 1000, cfg.RateLimit.MaxRequests)
	assert.Equal(t, "gemini-2.0-flash", cfg.AISettings().Model)
}
