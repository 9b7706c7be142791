package domain

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Validator Tests ---

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{"simple", "alice", false},
		{"with digits", "elf42", false},
		{"with underscore", "santa_helper", false},
		{"with dash", "north-pole", false},
		{"two chars", "ab", false},
		{"empty", "", true},
		{"one char", "a", true},
		{"spaces", "santa claus", true},
		{"emoji", "santa🎅", true},
		{"too long", "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.username)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateMessageType(t *testing.T) {
	require.NoError(t, ValidateMessageType(MessageTypeText))
	require.NoError(t, ValidateMessageType(MessageTypeImage))
	require.NoError(t, ValidateMessageType(MessageTypeAudio))
	require.Error(t, ValidateMessageType("video"))
	require.Error(t, ValidateMessageType(""))
}

func TestValidateMessageBody(t *testing.T) {
	tests := []struct {
		name    string
		msgType string
		body    string
		wantErr bool
	}{
		{"text with body", MessageTypeText, "ho ho ho", false},
		{"text empty", MessageTypeText, "", true},
		{"text blank", MessageTypeText, "   ", true},
		{"image with url", MessageTypeImage, "https://blob/x.png", false},
		{"image empty", MessageTypeImage, "", true},
		{"audio with url", MessageTypeAudio, "https://blob/x.webm", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMessageBody(tt.msgType, tt.body)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateRole(t *testing.T) {
	require.NoError(t, ValidateRole(RoleAdmin))
	require.NoError(t, ValidateRole(RoleUser))
	require.Error(t, ValidateRole("superelf"))
	require.Error(t, ValidateRole(""))
}

func TestValidatePassword(t *testing.T) {
	require.NoError(t, ValidatePassword("longenough"))
	require.Error(t, ValidatePassword("short"))
}

// --- Error Tests ---

func TestAppError(t *testing.T) {
	t.Run("message without cause", func(t *testing.T) {
		err := ErrValidation("bad input")
		assert.Equal(t, "VALIDATION_ERROR: bad input", err.Error())
		assert.Equal(t, 400, err.Status)
	})

	t.Run("message with cause", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := ErrInternal("query messages", cause)
		assert.Contains(t, err.Error(), "connection refused")
		assert.Equal(t, cause, errors.Unwrap(err))
	})

	t.Run("limit reached is distinct from internal", func(t *testing.T) {
		limit := ErrLimitReached("out of attempts")
		internal := ErrInternal("boom", nil)
		assert.NotEqual(t, limit.Code, internal.Code)
		assert.Equal(t, "LIMIT_REACHED", limit.Code)
	})
}

// --- Model Tests ---

func TestMessageJSONHidesSender(t *testing.T) {
	msg := Message{
		ID:           uuid.New(),
		FromUsername: "alice",
		ToUsername:   "bob",
		Body:         "merry christmas",
		Type:         MessageTypeText,
	}
	raw, err := json.Marshal(msg)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "alice")
	assert.Contains(t, string(raw), "bob")
}

func TestSolved(t *testing.T) {
	assert.False(t, Solved(nil))
	assert.False(t, Solved([]Guess{{IsCorrect: false}, {IsCorrect: false}}))
	assert.True(t, Solved([]Guess{{IsCorrect: false}, {IsCorrect: true}}))
}

func TestDefaultAvatar(t *testing.T) {
	assert.Equal(t, DefaultAdminAvatar, DefaultAvatar(RoleAdmin))
	assert.Equal(t, DefaultUserAvatar, DefaultAvatar(RoleUser))
}

func TestIsAdmin(t *testing.T) {
	var nilUser *User
	assert.False(t, nilUser.IsAdmin())
	assert.True(t, (&User{Role: RoleAdmin}).IsAdmin())
	assert.False(t, (&User{Role: RoleUser}).IsAdmin())
}
