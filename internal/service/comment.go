package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/harshit-shukla-1/secret-santa/internal/domain"
	"github.com/harshit-shukla-1/secret-santa/internal/policy"
	"github.com/harshit-shukla-1/secret-santa/internal/repository"
)

const maxCommentLength = 500

// CommentService handles comments on wall messages.
type CommentService struct {
	pool     *pgxpool.Pool
	comments repository.CommentRepository
	messages repository.MessageRepository
	logger   *slog.Logger
}

// NewCommentService creates a CommentService.
func NewCommentService(pool *pgxpool.Pool, comments repository.CommentRepository, messages repository.MessageRepository, logger *slog.Logger) *CommentService {
	return &CommentService{pool: pool, comments: comments, messages: messages, logger: logger}
}

// Add posts a comment on a message. Unlike messages, comments are signed.
func (s *CommentService) Add(ctx context.Context, messageID uuid.UUID, author *domain.User, body string) (*domain.Comment, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, domain.ErrValidation("comment must not be empty")
	}
	if len(body) > maxCommentLength {
		return nil, domain.ErrValidation("comment too long")
	}

	msg, err := s.messages.FindByID(ctx, s.pool, messageID)
	if err != nil {
		return nil, domain.ErrInternal("find message", err)
	}
	if msg == nil {
		return nil, domain.ErrNotFound("message", messageID.String())
	}

	c := &domain.Comment{
		ID:        uuid.New(),
		MessageID: messageID,
		Username:  author.Username,
		Avatar:    author.Avatar,
		Body:      body,
	}
	if err := s.comments.Create(ctx, s.pool, c); err != nil {
		return nil, domain.ErrInternal("create comment", err)
	}
	return c, nil
}

// List returns all comments on a message, oldest first.
func (s *CommentService) List(ctx context.Context, messageID uuid.UUID) ([]domain.Comment, error) {
	comments, err := s.comments.ListByMessage(ctx, s.pool, messageID)
	if err != nil {
		return nil, domain.ErrInternal("list comments", err)
	}
	return comments, nil
}

// Delete removes a comment if the actor is its author or an admin.
func (s *CommentService) Delete(ctx context.Context, commentID uuid.UUID, actor *domain.User) error {
	c, err := s.comments.FindByID(ctx, s.pool, commentID)
	if err != nil {
		return domain.ErrInternal("find comment", err)
	}
	if c == nil {
		return nil
	}

	if !policy.CanDeleteComment(c, actor) {
		return domain.ErrForbidden("cannot delete another user's comment")
	}

	if _, err := s.comments.DeleteByID(ctx, s.pool, commentID); err != nil {
		return domain.ErrInternal("delete comment", err)
	}

	s.logger.Info("comment deleted", "comment_id", commentID, "by", actor.Username)
	return nil
}
