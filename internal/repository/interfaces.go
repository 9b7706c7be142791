package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/harshit-shukla-1/secret-santa/internal/domain"
)

// DBTX abstracts pgx.Tx and pgxpool.Pool so repositories work with both.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

// DB is a DBTX that can also open transactions. *pgxpool.Pool satisfies it.
type DB interface {
	DBTX
	Begin(ctx context.Context) (pgx.Tx, error)
}

// MessageDirection selects which side of a message a listing filters on.
type MessageDirection string

const (
	DirectionTo   MessageDirection = "to"
	DirectionFrom MessageDirection = "from"
)

// UserRepository provides access to profiles.
type UserRepository interface {
	// FindByUsername returns a user, or (nil, nil) when absent.
	FindByUsername(ctx context.Context, db DBTX, username string) (*domain.User, error)

	// List returns all users ordered by username.
	List(ctx context.Context, db DBTX) ([]domain.User, error)

	// Exists reports whether the username is registered.
	Exists(ctx context.Context, db DBTX, username string) (bool, error)

	// Create inserts a new profile.
	Create(ctx context.Context, db DBTX, user *domain.User) error

	// Upsert inserts or overwrites a profile (admin reset path).
	Upsert(ctx context.Context, db DBTX, user *domain.User) error

	// Delete removes a profile. Returns whether a row was removed.
	Delete(ctx context.Context, db DBTX, username string) (bool, error)

	// UpdateAvatar changes the display glyph.
	UpdateAvatar(ctx context.Context, db DBTX, username, avatar string) error

	// UpdatePassword replaces the stored password hash.
	UpdatePassword(ctx context.Context, db DBTX, username, passwordHash string) error
}

// MessageRepository provides access to messages.
type MessageRepository interface {
	// Create inserts a new message.
	Create(ctx context.Context, db DBTX, msg *domain.Message) error

	// FindByID returns a message, or (nil, nil) when absent.
	FindByID(ctx context.Context, db DBTX, id uuid.UUID) (*domain.Message, error)

	// ListFor returns messages sent to or from the username,
	// ordered by created_at DESC.
	ListFor(ctx context.Context, db DBTX, username string, dir MessageDirection) ([]domain.Message, error)

	// ListAll returns every message ordered by created_at DESC.
	ListAll(ctx context.Context, db DBTX) ([]domain.Message, error)

	// DeleteByID removes a message. Idempotent; reports whether a row
	// was actually removed.
	DeleteByID(ctx context.Context, db DBTX, id uuid.UUID) (bool, error)
}

// GuessRepository provides access to the append-only guesses log.
type GuessRepository interface {
	// InsertAttempt atomically appends a guess while enforcing the
	// per-(message, guesser) cap. Returns (nil, nil) when the cap is
	// already reached, and ErrDuplicateAttempt when a concurrent insert
	// claimed the same attempt number.
	InsertAttempt(ctx context.Context, db DBTX, g *domain.Guess) (*domain.Guess, error)

	// ListByGuesser returns all guesses a user has submitted.
	ListByGuesser(ctx context.Context, db DBTX, guesser string) ([]domain.Guess, error)

	// CountForPair returns the stored attempts for (message, guesser).
	CountForPair(ctx context.Context, db DBTX, messageID uuid.UUID, guesser string) (int, error)

	// ListCorrect returns every correct guess (leaderboard input).
	ListCorrect(ctx context.Context, db DBTX) ([]domain.Guess, error)
}

// CommentRepository provides access to comments.
type CommentRepository interface {
	Create(ctx context.Context, db DBTX, c *domain.Comment) error
	FindByID(ctx context.Context, db DBTX, id uuid.UUID) (*domain.Comment, error)
	ListByMessage(ctx context.Context, db DBTX, messageID uuid.UUID) ([]domain.Comment, error)
	DeleteByID(ctx context.Context, db DBTX, id uuid.UUID) (bool, error)
}

// ConfigRepository provides access to app_config.
type ConfigRepository interface {
	// Get reads the current wall config. Callers read a fresh snapshot
	// at the start of every access check; nothing is cached in-process.
	Get(ctx context.Context, db DBTX) (domain.WallConfig, error)

	// SetWallEnabled flips the public wall toggle.
	SetWallEnabled(ctx context.Context, db DBTX, enabled bool) error
}

// OutboxRepository provides access to the event_outbox table.
type OutboxRepository interface {
	// Insert writes an outbox event (within the same transaction as the
	// state change it describes).
	Insert(ctx context.Context, db DBTX, draft domain.OutboxDraft) error

	// FetchUnpublished returns pending events with their sequence IDs.
	FetchUnpublished(ctx context.Context, db DBTX, limit int) ([]OutboxRow, error)

	// MarkPublished removes drained events.
	MarkPublished(ctx context.Context, db DBTX, ids []int64) error
}

// OutboxRow pairs an outbox draft with its table sequence ID.
type OutboxRow struct {
	SeqID int64
	Draft domain.OutboxDraft
}
