package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/harshit-shukla-1/secret-santa/internal/domain"
)

type commentRepo struct{}

// NewCommentRepository returns a pgx-backed CommentRepository.
func NewCommentRepository() CommentRepository {
	return &commentRepo{}
}

func (r *commentRepo) Create(ctx context.Context, db DBTX, c *domain.Comment) error {
	err := db.QueryRow(ctx, `
		INSERT INTO comments (id, message_id, username, avatar, body, created_at)
		VALUES ($1, $2, $3, $4, $5, now())
		RETURNING created_at`,
		c.ID, c.MessageID, c.Username, c.Avatar, c.Body).Scan(&c.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert comment: %w", err)
	}
	return nil
}

func (r *commentRepo) FindByID(ctx context.Context, db DBTX, id uuid.UUID) (*domain.Comment, error) {
	row := db.QueryRow(ctx, `
		SELECT id, message_id, username, avatar, body, created_at
		FROM comments WHERE id = $1`, id)

	var c domain.Comment
	err := row.Scan(&c.ID, &c.MessageID, &c.Username, &c.Avatar, &c.Body, &c.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scan comment: %w", err)
	}
	return &c, nil
}

func (r *commentRepo) ListByMessage(ctx context.Context, db DBTX, messageID uuid.UUID) ([]domain.Comment, error) {
	rows, err := db.Query(ctx, `
		SELECT id, message_id, username, avatar, body, created_at
		FROM comments WHERE message_id = $1
		ORDER BY created_at ASC`, messageID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	var comments []domain.Comment
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.ID, &c.MessageID, &c.Username, &c.Avatar, &c.Body, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

func (r *commentRepo) DeleteByID(ctx context.Context, db DBTX, id uuid.UUID) (bool, error) {
	tag, err := db.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete comment: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
