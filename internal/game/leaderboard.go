package game

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/harshit-shukla-1/secret-santa/internal/domain"
	"github.com/harshit-shukla-1/secret-santa/internal/repository"
)

// Aggregator recomputes the leaderboard on every call from the full guess
// log. No score column is maintained anywhere; O(correct guesses) per call
// is fine at party scale.
type Aggregator struct {
	db      repository.DB
	guesses repository.GuessRepository
	users   repository.UserRepository
}

// NewAggregator creates a leaderboard aggregator.
func NewAggregator(db repository.DB, guesses repository.GuessRepository, users repository.UserRepository) *Aggregator {
	return &Aggregator{db: db, guesses: guesses, users: users}
}

// Compute fetches the correct guesses and the directory and ranks them.
func (a *Aggregator) Compute(ctx context.Context) ([]domain.LeaderboardEntry, error) {
	correct, err := a.guesses.ListCorrect(ctx, a.db)
	if err != nil {
		return nil, domain.ErrInternal("list correct guesses", err)
	}
	users, err := a.users.List(ctx, a.db)
	if err != nil {
		return nil, domain.ErrInternal("list users", err)
	}
	return Rank(correct, users), nil
}

type pairKey struct {
	guesser   string
	messageID uuid.UUID
}

// Rank turns correct guesses into a sorted leaderboard. A guesser scores at
// most one point per message: the attempt cap leaves room for a second
// correct row on an already-solved pair, and counting it twice would inflate
// the score, so scoring is keyed by distinct (guesser, message) pairs.
// Sorted by score descending, ties broken by username ascending.
func Rank(correct []domain.Guess, users []domain.User) []domain.LeaderboardEntry {
	avatars := make(map[string]string, len(users))
	for _, u := range users {
		avatars[u.Username] = u.Avatar
	}

	seen := make(map[pairKey]struct{}, len(correct))
	scores := make(map[string]int)
	for _, g := range correct {
		if !g.IsCorrect {
			continue
		}
		key := pairKey{guesser: g.GuesserUsername, messageID: g.MessageID}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		scores[g.GuesserUsername]++
	}

	entries := make([]domain.LeaderboardEntry, 0, len(scores))
	for username, score := range scores {
		entries = append(entries, domain.LeaderboardEntry{
			Username: username,
			Avatar:   avatars[username],
			Score:    score,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].Username < entries[j].Username
	})
	return entries
}
