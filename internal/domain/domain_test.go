package domain_test

import (
	"errors"
	"testing"

	"github.com/kanoonai/kanoon-web/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestCheckPasswordStrength(t *testing.T) {
	tests := []struct {
		password string
		score    int
		label    string
	}{
		{"", 0, "Too Weak"},
		{"Ab1!", 0, "Too Weak"},
		{"abcdefgh", 1, "Weak"},
		{"abcdefg1", 2, "Medium"},
		{"Abcdefg1", 3, "Good"},
		{"Abcdef1!", 4, "Strong"},
		{"abcdefg ", 2, "Medium"},
		{"éééé", 0, "Too Weak"},
		{"éééééééé", 2, "Medium"},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			got := domain.CheckPasswordStrength(tt.password)
			assert.Equal(t, tt.score, got.Score)
			assert.Equal(t, tt.label, got.Label)
		})
	}
}

func TestSessionDisplay(t *testing.T) {
	var anon *domain.Session
	assert.Equal(t, "User", anon.DisplayName())
	assert.Equal(t, "user@example.com", anon.DisplayEmail())

	s := &domain.Session{Name: "Asha", Email: "asha@example.com"}
	assert.Equal(t, "Asha", s.DisplayName())
	assert.Equal(t, "asha@example.com", s.DisplayEmail())
}

func TestSessionMerge(t *testing.T) {
	base := domain.Session{ID: 7, Name: "Asha", Email: "asha@example.com", Phone: "98000", ProfilePicture: "data:image/png;base64,AA=="}

	t.Run("keeps prior fields the update leaves empty", func(t *testing.T) {
		got := base.Merge(domain.Session{Name: "Asha K"}, false)
		assert.Equal(t, "Asha K", got.Name)
		assert.Equal(t, "98000", got.Phone)
		assert.Equal(t, int64(7), got.ID)
		assert.Equal(t, base.ProfilePicture, got.ProfilePicture)
	})

	t.Run("clears the picture when asked", func(t *testing.T) {
		got := base.Merge(domain.Session{}, true)
		assert.Empty(t, got.ProfilePicture)
	})
}

func TestValidationError(t *testing.T) {
	err := domain.Invalid("Please enter a legal topic.")
	assert.True(t, errors.Is(err, domain.ErrValidation))
	assert.Equal(t, "Please enter a legal topic.", err.Error())
}
