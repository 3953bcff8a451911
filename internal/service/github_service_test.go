package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"skillbridge_backend/internal/util"
)

func TestParseRepoURL(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		wantOwner string
		wantRepo  string
		wantErr   bool
	}{
		{"https url", "https://github.com/gin-gonic/gin", "gin-gonic", "gin", false},
		{"trailing git suffix", "https://github.com/spf13/viper.git", "spf13", "viper", false},
		{"no scheme", "github.com/golang/go", "golang", "go", false},
		{"query string ignored", "https://github.com/a/b?tab=readme", "a", "b", false},
		{"not github", "https://gitlab.com/a/b", "", "", true},
		{"owner only", "https://github.com/solo", "", "", true},
		{"empty", "", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			owner, repo, err := ParseRepoURL(tt.url)
			if tt.wantErr {
				assert.ErrorIs(t, err, util.ErrInvalidRepoURL)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantOwner, owner)
			assert.Equal(t, tt.wantRepo, repo)
		})
	}
}
