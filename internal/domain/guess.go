package domain

import (
	"time"

	"github.com/google/uuid"
)

// MaxGuessAttempts is the permanent per-(message, guesser) cap. It never
// resets, not even after a correct guess.
const MaxGuessAttempts = 2

// Guess represents a guesses row. Rows are append-only: a guess is never
// mutated or deleted once stored.
type Guess struct {
	ID              uuid.UUID `json:"id"`
	MessageID       uuid.UUID `json:"message_id"`
	GuesserUsername string    `json:"guesser_username"`
	GuessedUsername string    `json:"guessed_username"`
	IsCorrect       bool      `json:"is_correct"`
	AttemptNo       int       `json:"attempt_no"`
	CreatedAt       time.Time `json:"created_at"`
}

// LeaderboardEntry is derived, never persisted: the score is recomputed from
// the guess log on every call.
type LeaderboardEntry struct {
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
	Score    int    `json:"score"`
}

// Solved reports whether any guess in the slice is correct. The solved state
// of a (message, guesser) pair is always derived from the log, never stored.
func Solved(guesses []Guess) bool {
	for _, g := range guesses {
		if g.IsCorrect {
			return true
		}
	}
	return false
}
