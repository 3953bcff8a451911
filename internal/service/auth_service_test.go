package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"skillbridge_backend/internal/util"
)

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "user@example.com", NormalizeEmail("  User@Example.COM "))
	assert.Equal(t, "a@b.co", NormalizeEmail("a@b.co"))
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"valid", "Password1", false},
		{"too short", "Pw1", true},
		{"no uppercase", "password1", true},
		{"no digit", "Passwords", true},
		{"long and strong", "Sup3rSecretPass", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validatePassword(tt.password)
			if tt.wantErr {
				assert.ErrorIs(t, err, util.ErrWeakPassword)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEmailPattern(t *testing.T) {
	valid := []string{"user@example.com", "first.last@sub.domain.org", "a+b@c.io"}
	invalid := []string{"", "no-at.com", "user@", "@domain.com", "user@domain", "two@@at.com"}

	for _, e := range valid {
		assert.True(t, emailPattern.MatchString(e), "expected %q to be valid", e)
	}
	for _, e := range invalid {
		assert.False(t, emailPattern.MatchString(e), "expected %q to be invalid", e)
	}
}
