package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/harshit-shukla-1/secret-santa/internal/domain"
	"github.com/harshit-shukla-1/secret-santa/internal/policy"
	"github.com/harshit-shukla-1/secret-santa/internal/repository"
)

// MessageService handles sending, listing and deleting anonymous messages.
type MessageService struct {
	pool     *pgxpool.Pool
	messages repository.MessageRepository
	users    repository.UserRepository
	config   repository.ConfigRepository
	outbox   repository.OutboxRepository
	logger   *slog.Logger
}

// NewMessageService creates a MessageService.
func NewMessageService(pool *pgxpool.Pool, messages repository.MessageRepository, users repository.UserRepository, config repository.ConfigRepository, outbox repository.OutboxRepository, logger *slog.Logger) *MessageService {
	return &MessageService{pool: pool, messages: messages, users: users, config: config, outbox: outbox, logger: logger}
}

// SendInput holds the fields for a new message.
type SendInput struct {
	ToUsername string `json:"to_username"`
	Body       string `json:"body"`
	Type       string `json:"type"`
}

// Send stores a new anonymous message and records a sent event in the
// same transaction.
func (s *MessageService) Send(ctx context.Context, sender string, input SendInput) (*domain.SentMessage, error) {
	if input.Type == "" {
		input.Type = domain.MessageTypeText
	}
	if err := domain.ValidateMessageType(input.Type); err != nil {
		return nil, err
	}
	if err := domain.ValidateMessageBody(input.Type, input.Body); err != nil {
		return nil, err
	}
	if input.ToUsername == sender {
		return nil, domain.ErrValidation("cannot send a message to yourself")
	}

	exists, err := s.users.Exists(ctx, s.pool, input.ToUsername)
	if err != nil {
		return nil, domain.ErrInternal("find recipient", err)
	}
	if !exists {
		return nil, domain.ErrValidation("unknown recipient: " + input.ToUsername)
	}

	msg := &domain.Message{
		ID:           uuid.New(),
		FromUsername: sender,
		ToUsername:   input.ToUsername,
		Body:         input.Body,
		Type:         input.Type,
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, domain.ErrInternal("begin tx", err)
	}
	defer tx.Rollback(ctx)

	if err := s.messages.Create(ctx, tx, msg); err != nil {
		return nil, domain.ErrInternal("create message", err)
	}
	if err := s.outbox.Insert(ctx, tx, domain.NewMessageSentEvent(msg)); err != nil {
		return nil, domain.ErrInternal("record sent event", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, domain.ErrInternal("commit tx", err)
	}

	s.logger.Info("message sent", "message_id", msg.ID, "to", msg.ToUsername, "type", msg.Type)
	return &domain.SentMessage{
		Message:        *msg,
		DeletableUntil: msg.CreatedAt.Add(domain.DeleteWindow),
	}, nil
}

// Inbox returns messages addressed to the user, newest first. Senders are
// never included in the serialized form.
func (s *MessageService) Inbox(ctx context.Context, username string) ([]domain.Message, error) {
	msgs, err := s.messages.ListFor(ctx, s.pool, username, repository.DirectionTo)
	if err != nil {
		return nil, domain.ErrInternal("list inbox", err)
	}
	return msgs, nil
}

// SentHistory returns messages the user has sent, each with its delete
// deadline precomputed.
func (s *MessageService) SentHistory(ctx context.Context, username string) ([]domain.SentMessage, error) {
	msgs, err := s.messages.ListFor(ctx, s.pool, username, repository.DirectionFrom)
	if err != nil {
		return nil, domain.ErrInternal("list sent", err)
	}

	sent := make([]domain.SentMessage, 0, len(msgs))
	for _, m := range msgs {
		sent = append(sent, domain.SentMessage{
			Message:        m,
			DeletableUntil: m.CreatedAt.Add(domain.DeleteWindow),
		})
	}
	return sent, nil
}

// Wall returns every message for the public wall. The wall toggle is read
// fresh on each call; when disabled only admins may view.
func (s *MessageService) Wall(ctx context.Context, viewer *domain.User) ([]domain.Message, error) {
	cfg, err := s.config.Get(ctx, s.pool)
	if err != nil {
		return nil, domain.ErrInternal("read wall config", err)
	}
	if !policy.CanViewWall(cfg, viewer) {
		return nil, domain.ErrForbidden("the public wall is currently disabled")
	}

	msgs, err := s.messages.ListAll(ctx, s.pool)
	if err != nil {
		return nil, domain.ErrInternal("list wall", err)
	}
	return msgs, nil
}

// Delete removes a message if the actor is allowed to: the sender within
// the delete window, or an admin at any time. Deleting an already absent
// message succeeds silently.
func (s *MessageService) Delete(ctx context.Context, messageID uuid.UUID, actor *domain.User) error {
	msg, err := s.messages.FindByID(ctx, s.pool, messageID)
	if err != nil {
		return domain.ErrInternal("find message", err)
	}
	if msg == nil {
		return nil
	}

	if !policy.CanDeleteMessage(msg, actor, time.Now()) {
		return domain.ErrForbidden("message can no longer be deleted")
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return domain.ErrInternal("begin tx", err)
	}
	defer tx.Rollback(ctx)

	removed, err := s.messages.DeleteByID(ctx, tx, messageID)
	if err != nil {
		return domain.ErrInternal("delete message", err)
	}
	if removed {
		if err := s.outbox.Insert(ctx, tx, domain.NewMessageDeletedEvent(messageID, actor.Username)); err != nil {
			return domain.ErrInternal("record delete event", err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return domain.ErrInternal("commit tx", err)
	}

	s.logger.Info("message deleted", "message_id", messageID, "by", actor.Username)
	return nil
}
