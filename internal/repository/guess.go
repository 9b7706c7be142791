package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/harshit-shukla-1/secret-santa/internal/domain"
)

// ErrDuplicateAttempt is returned when two concurrent submissions claim the
// same attempt number for a (message, guesser) pair. The caller re-reads the
// count and retries or reports the cap.
var ErrDuplicateAttempt = errors.New("guess attempt number already taken")

type guessRepo struct{}

// NewGuessRepository returns a pgx-backed GuessRepository.
func NewGuessRepository() GuessRepository {
	return &guessRepo{}
}

// InsertAttempt enforces the attempt cap and the append in one statement:
// the attempt number is derived from the stored count, and the HAVING clause
// blocks the insert once the cap is reached. A concurrent submission that
// derives the same attempt number trips the unique index
// (message_id, guesser_username, attempt_no) and surfaces as
// ErrDuplicateAttempt, so the cap holds without a read-then-write race.
func (r *guessRepo) InsertAttempt(ctx context.Context, db DBTX, g *domain.Guess) (*domain.Guess, error) {
	row := db.QueryRow(ctx, `
		INSERT INTO guesses (id, message_id, guesser_username, guessed_username, is_correct, attempt_no, created_at)
		SELECT $1, $2, $3, $4, $5, count(*) + 1, now()
		FROM guesses
		WHERE message_id = $2 AND guesser_username = $3
		HAVING count(*) < $6
		RETURNING attempt_no, created_at`,
		g.ID, g.MessageID, g.GuesserUsername, g.GuessedUsername, g.IsCorrect, domain.MaxGuessAttempts)

	err := row.Scan(&g.AttemptNo, &g.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil // cap reached, nothing written
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrDuplicateAttempt
		}
		return nil, fmt.Errorf("insert guess: %w", err)
	}
	return g, nil
}

func (r *guessRepo) ListByGuesser(ctx context.Context, db DBTX, guesser string) ([]domain.Guess, error) {
	rows, err := db.Query(ctx, `
		SELECT id, message_id, guesser_username, guessed_username, is_correct, attempt_no, created_at
		FROM guesses WHERE guesser_username = $1
		ORDER BY created_at ASC`, guesser)
	if err != nil {
		return nil, fmt.Errorf("list guesses: %w", err)
	}
	defer rows.Close()
	return collectGuesses(rows)
}

func (r *guessRepo) CountForPair(ctx context.Context, db DBTX, messageID uuid.UUID, guesser string) (int, error) {
	var count int
	err := db.QueryRow(ctx, `
		SELECT count(*) FROM guesses
		WHERE message_id = $1 AND guesser_username = $2`, messageID, guesser).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count guesses: %w", err)
	}
	return count, nil
}

func (r *guessRepo) ListCorrect(ctx context.Context, db DBTX) ([]domain.Guess, error) {
	rows, err := db.Query(ctx, `
		SELECT id, message_id, guesser_username, guessed_username, is_correct, attempt_no, created_at
		FROM guesses WHERE is_correct = true
		ORDER BY created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("list correct guesses: %w", err)
	}
	defer rows.Close()
	return collectGuesses(rows)
}

func collectGuesses(rows pgx.Rows) ([]domain.Guess, error) {
	var guesses []domain.Guess
	for rows.Next() {
		var g domain.Guess
		err := rows.Scan(&g.ID, &g.MessageID, &g.GuesserUsername, &g.GuessedUsername,
			&g.IsCorrect, &g.AttemptNo, &g.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan guess: %w", err)
		}
		guesses = append(guesses, g)
	}
	return guesses, rows.Err()
}
