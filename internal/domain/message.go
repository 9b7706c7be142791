package domain

import (
	"time"

	"github.com/google/uuid"
)

// Message payload types.
const (
	MessageTypeText  = "text"
	MessageTypeImage = "image"
	MessageTypeAudio = "audio"
)

// DeleteWindow is how long a sender may delete their own message.
const DeleteWindow = 5 * time.Minute

// Message represents a messages row. FromUsername is ground truth for the
// guessing game and is never serialized. Anonymity is a presentation rule;
// the store always knows the sender.
type Message struct {
	ID           uuid.UUID `json:"id"`
	FromUsername string    `json:"-"`
	ToUsername   string    `json:"to_username"`
	Body         string    `json:"body"`
	Type         string    `json:"type"`
	CreatedAt    time.Time `json:"created_at"`
}

// SentMessage is the sender-facing view of a message: the recipient is
// visible and the delete deadline is precomputed for the client.
type SentMessage struct {
	Message
	DeletableUntil time.Time `json:"deletable_until"`
}

// Comment represents a comments row on a wall message.
type Comment struct {
	ID        uuid.UUID `json:"id"`
	MessageID uuid.UUID `json:"message_id"`
	Username  string    `json:"username"`
	Avatar    string    `json:"avatar"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// WallConfig is the app_config snapshot read at the start of every wall
// access check. It is passed by value so a toggle mid-request cannot be
// half-observed.
type WallConfig struct {
	PublicWallEnabled bool      `json:"public_wall_enabled"`
	UpdatedAt         time.Time `json:"updated_at"`
}
