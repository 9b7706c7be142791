package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// NewMessageSentEvent announces a freshly stored message. The sender is
// deliberately omitted from the payload: downstream consumers see the same
// anonymous view as the wall.
func NewMessageSentEvent(msg *Message) OutboxDraft {
	payload, _ := json.Marshal(map[string]string{
		"message_id": msg.ID.String(),
		"to":         msg.ToUsername,
		"type":       msg.Type,
	})
	return OutboxDraft{
		EventID:       uuid.New(),
		AggregateType: AggregateMessage,
		AggregateID:   msg.ID.String(),
		EventType:     EventMessageSent,
		PartitionKey:  msg.ToUsername,
		Payload:       payload,
		OccurredAt:    time.Now(),
	}
}

// NewMessageDeletedEvent announces a message removal (sender window or
// admin moderation).
func NewMessageDeletedEvent(messageID uuid.UUID, actor string) OutboxDraft {
	payload, _ := json.Marshal(map[string]string{
		"message_id": messageID.String(),
		"deleted_by": actor,
	})
	return OutboxDraft{
		EventID:       uuid.New(),
		AggregateType: AggregateMessage,
		AggregateID:   messageID.String(),
		EventType:     EventMessageDeleted,
		PartitionKey:  messageID.String(),
		Payload:       payload,
		OccurredAt:    time.Now(),
	}
}

// NewMessageSolvedEvent announces a correct guess.
func NewMessageSolvedEvent(g *Guess) OutboxDraft {
	payload, _ := json.Marshal(map[string]interface{}{
		"message_id": g.MessageID.String(),
		"guesser":    g.GuesserUsername,
		"attempt_no": g.AttemptNo,
	})
	return OutboxDraft{
		EventID:       uuid.New(),
		AggregateType: AggregateMessage,
		AggregateID:   g.MessageID.String(),
		EventType:     EventMessageSolved,
		PartitionKey:  g.GuesserUsername,
		Payload:       payload,
		OccurredAt:    time.Now(),
	}
}

// NewUserEvent announces a user lifecycle change.
func NewUserEvent(eventType EventType, username string) OutboxDraft {
	payload, _ := json.Marshal(map[string]string{"username": username})
	return OutboxDraft{
		EventID:       uuid.New(),
		AggregateType: AggregateUser,
		AggregateID:   username,
		EventType:     eventType,
		PartitionKey:  username,
		Payload:       payload,
		OccurredAt:    time.Now(),
	}
}
