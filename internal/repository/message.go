package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/harshit-shukla-1/secret-santa/internal/domain"
)

type messageRepo struct{}

// NewMessageRepository returns a pgx-backed MessageRepository.
func NewMessageRepository() MessageRepository {
	return &messageRepo{}
}

const messageColumns = `id, from_username, to_username, body, type, created_at`

func (r *messageRepo) Create(ctx context.Context, db DBTX, msg *domain.Message) error {
	err := db.QueryRow(ctx, `
		INSERT INTO messages (id, from_username, to_username, body, type, created_at)
		VALUES ($1, $2, $3, $4, $5, now())
		RETURNING created_at`,
		msg.ID, msg.FromUsername, msg.ToUsername, msg.Body, msg.Type).Scan(&msg.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert message: %w", err)
	}
	return nil
}

func (r *messageRepo) FindByID(ctx context.Context, db DBTX, id uuid.UUID) (*domain.Message, error) {
	row := db.QueryRow(ctx, `
		SELECT `+messageColumns+`
		FROM messages WHERE id = $1`, id)
	return scanMessage(row)
}

func (r *messageRepo) ListFor(ctx context.Context, db DBTX, username string, dir MessageDirection) ([]domain.Message, error) {
	column := "to_username"
	if dir == DirectionFrom {
		column = "from_username"
	}
	rows, err := db.Query(ctx, `
		SELECT `+messageColumns+`
		FROM messages WHERE `+column+` = $1
		ORDER BY created_at DESC`, username)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer rows.Close()
	return collectMessages(rows)
}

func (r *messageRepo) ListAll(ctx context.Context, db DBTX) ([]domain.Message, error) {
	rows, err := db.Query(ctx, `
		SELECT `+messageColumns+`
		FROM messages ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list all messages: %w", err)
	}
	defer rows.Close()
	return collectMessages(rows)
}

func (r *messageRepo) DeleteByID(ctx context.Context, db DBTX, id uuid.UUID) (bool, error) {
	tag, err := db.Exec(ctx, `DELETE FROM messages WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete message: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func scanMessage(row pgx.Row) (*domain.Message, error) {
	var m domain.Message
	err := row.Scan(&m.ID, &m.FromUsername, &m.ToUsername, &m.Body, &m.Type, &m.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scan message: %w", err)
	}
	return &m, nil
}

func collectMessages(rows pgx.Rows) ([]domain.Message, error) {
	var msgs []domain.Message
	for rows.Next() {
		var m domain.Message
		if err := rows.Scan(&m.ID, &m.FromUsername, &m.ToUsername, &m.Body, &m.Type, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}
