package game

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/harshit-shukla-1/secret-santa/internal/domain"
	"github.com/harshit-shukla-1/secret-santa/internal/repository"
)

// Outcome is the result of a guess submission.
type Outcome string

const (
	OutcomeCorrect      Outcome = "correct"
	OutcomeIncorrect    Outcome = "incorrect"
	OutcomeLimitReached Outcome = "limit_reached"
)

// SubmitResult is returned for every accepted submission, including ones
// rejected by the attempt cap.
type SubmitResult struct {
	Outcome      Outcome       `json:"outcome"`
	Guess        *domain.Guess `json:"guess,omitempty"`
	AttemptsLeft int           `json:"attempts_left"`
}

// Engine enforces the guessing rules: the permanent 2-attempt cap per
// (message, guesser) pair and server-side correctness against the stored
// sender, which is never exposed to the caller.
type Engine struct {
	db       repository.DB
	messages repository.MessageRepository
	guesses  repository.GuessRepository
	users    repository.UserRepository
	outbox   repository.OutboxRepository
	logger   *slog.Logger
}

// NewEngine creates a guessing engine over the given repositories.
func NewEngine(
	db repository.DB,
	messages repository.MessageRepository,
	guesses repository.GuessRepository,
	users repository.UserRepository,
	outbox repository.OutboxRepository,
	logger *slog.Logger,
) *Engine {
	return &Engine{
		db:       db,
		messages: messages,
		guesses:  guesses,
		users:    users,
		outbox:   outbox,
		logger:   logger,
	}
}

// SubmitGuess records one attempt for (messageID, guesser).
//
// The cap check and the insert are a single atomic statement in the
// repository; when two sessions of the same user race, the loser of the
// unique-index conflict retries once against the fresh count, so at most
// MaxGuessAttempts rows can ever exist for the pair.
func (e *Engine) SubmitGuess(ctx context.Context, messageID uuid.UUID, guesser, guessed string) (*SubmitResult, error) {
	msg, err := e.messages.FindByID(ctx, e.db, messageID)
	if err != nil {
		return nil, domain.ErrInternal("find message", err)
	}
	if msg == nil {
		// Moderation may delete a message while guesses are in flight.
		return nil, domain.ErrNotFound("message", messageID.String())
	}
	if guesser == msg.FromUsername {
		return nil, domain.ErrValidation("you cannot guess your own message")
	}
	exists, err := e.users.Exists(ctx, e.db, guessed)
	if err != nil {
		return nil, domain.ErrInternal("check guessed user", err)
	}
	if !exists {
		return nil, domain.ErrValidation("guessed user does not exist")
	}

	// Ground truth comparison happens here, never client-side.
	isCorrect := guessed == msg.FromUsername

	for attempt := 0; attempt < 2; attempt++ {
		result, err := e.tryRecord(ctx, msg, guesser, guessed, isCorrect)
		if err == nil {
			return result, nil
		}
		if errors.Is(err, repository.ErrDuplicateAttempt) {
			e.logger.Warn("concurrent guess detected, retrying",
				"message_id", messageID, "guesser", guesser)
			continue
		}
		return nil, err
	}

	// Both tries lost the attempt-number race: the concurrent submissions
	// filled the cap.
	count, err := e.guesses.CountForPair(ctx, e.db, messageID, guesser)
	if err != nil {
		return nil, domain.ErrInternal("count attempts", err)
	}
	if count >= domain.MaxGuessAttempts {
		return &SubmitResult{Outcome: OutcomeLimitReached}, nil
	}
	return nil, domain.ErrInternal("record guess", repository.ErrDuplicateAttempt)
}

func (e *Engine) tryRecord(ctx context.Context, msg *domain.Message, guesser, guessed string, isCorrect bool) (*SubmitResult, error) {
	tx, err := e.db.Begin(ctx)
	if err != nil {
		return nil, domain.ErrInternal("begin tx", err)
	}
	defer tx.Rollback(ctx)

	g := &domain.Guess{
		ID:              uuid.New(),
		MessageID:       msg.ID,
		GuesserUsername: guesser,
		GuessedUsername: guessed,
		IsCorrect:       isCorrect,
	}

	stored, err := e.guesses.InsertAttempt(ctx, tx, g)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateAttempt) {
			return nil, err
		}
		return nil, domain.ErrInternal("record guess", err)
	}
	if stored == nil {
		return &SubmitResult{Outcome: OutcomeLimitReached}, nil
	}

	if isCorrect {
		if err := e.outbox.Insert(ctx, tx, domain.NewMessageSolvedEvent(stored)); err != nil {
			return nil, domain.ErrInternal("record solved event", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, domain.ErrInternal("commit guess", err)
	}

	outcome := OutcomeIncorrect
	if isCorrect {
		outcome = OutcomeCorrect
	}
	return &SubmitResult{
		Outcome:      outcome,
		Guess:        stored,
		AttemptsLeft: domain.MaxGuessAttempts - stored.AttemptNo,
	}, nil
}

// History returns every guess the user has submitted, for the attempts-left
// and solved badges.
func (e *Engine) History(ctx context.Context, guesser string) ([]domain.Guess, error) {
	guesses, err := e.guesses.ListByGuesser(ctx, e.db, guesser)
	if err != nil {
		return nil, domain.ErrInternal("list guesses", err)
	}
	return guesses, nil
}

// GuessableMessages returns the wall minus the caller's own sent messages:
// nobody guesses their own gifts.
func (e *Engine) GuessableMessages(ctx context.Context, username string) ([]domain.Message, error) {
	all, err := e.messages.ListAll(ctx, e.db)
	if err != nil {
		return nil, domain.ErrInternal("list messages", err)
	}
	guessable := make([]domain.Message, 0, len(all))
	for _, m := range all {
		if m.FromUsername != username {
			guessable = append(guessable, m)
		}
	}
	return guessable, nil
}
