package domain

import (
	"fmt"
	"regexp"
	"strings"
)

var usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_-]{2,32}$`)

// ValidateUsername checks the username format used across profiles,
// messages and guesses.
func ValidateUsername(username string) error {
	if username == "" {
		return fmt.Errorf("username is required")
	}
	if !usernameRe.MatchString(username) {
		return fmt.Errorf("invalid username: 2-32 letters, digits, _ or -")
	}
	return nil
}

// ValidateRole checks the role is one of the two known values.
func ValidateRole(role string) error {
	if role != RoleAdmin && role != RoleUser {
		return fmt.Errorf("invalid role %q", role)
	}
	return nil
}

// ValidateMessageType checks the payload type of a message.
func ValidateMessageType(t string) error {
	switch t {
	case MessageTypeText, MessageTypeImage, MessageTypeAudio:
		return nil
	}
	return fmt.Errorf("invalid message type %q", t)
}

// ValidateMessageBody checks the body for the given type: text must be
// non-blank, image/audio must carry the uploaded blob URL.
func ValidateMessageBody(msgType, body string) error {
	if strings.TrimSpace(body) == "" {
		if msgType == MessageTypeText {
			return fmt.Errorf("message body is required")
		}
		return fmt.Errorf("attachment URL is required")
	}
	return nil
}

// ValidatePassword enforces the minimum password length.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}
	return nil
}
