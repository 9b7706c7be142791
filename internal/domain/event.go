package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// EventType enumerates all domain event types.
type EventType string

const (
	EventUserCreated    EventType = "santa.user.created"
	EventUserDeleted    EventType = "santa.user.deleted"
	EventMessageSent    EventType = "santa.message.sent"
	EventMessageDeleted EventType = "santa.message.deleted"
	EventMessageSolved  EventType = "santa.message.solved"
)

// AggregateType enumerates the aggregate root types for outbox events.
type AggregateType string

const (
	AggregateUser    AggregateType = "user"
	AggregateMessage AggregateType = "message"
)

// OutboxDraft is the payload written to the event_outbox table inside the
// same transaction as the state change it describes.
type OutboxDraft struct {
	EventID       uuid.UUID       `json:"event_id"`
	AggregateType AggregateType   `json:"aggregate_type"`
	AggregateID   string          `json:"aggregate_id"`
	EventType     EventType       `json:"event_type"`
	PartitionKey  string          `json:"partition_key"`
	Payload       json.RawMessage `json:"payload"`
	OccurredAt    time.Time       `json:"occurred_at"`
}
