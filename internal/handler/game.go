package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/harshit-shukla-1/secret-santa/internal/auth"
	"github.com/harshit-shukla-1/secret-santa/internal/domain"
	"github.com/harshit-shukla-1/secret-santa/internal/game"
	"github.com/harshit-shukla-1/secret-santa/internal/guard"
)

// GameHandler handles sender guessing endpoints.
type GameHandler struct {
	engine  *game.Engine
	limiter *guard.RateLimiter
}

// NewGameHandler creates a new GameHandler.
func NewGameHandler(engine *game.Engine, limiter *guard.RateLimiter) *GameHandler {
	return &GameHandler{engine: engine, limiter: limiter}
}

// SubmitGuessInput holds the fields for a guess submission.
type SubmitGuessInput struct {
	MessageID       string `json:"message_id"`
	GuessedUsername string `json:"guessed_username"`
}

// SubmitGuess handles POST /game/guess.
func (h *GameHandler) SubmitGuess(w http.ResponseWriter, r *http.Request) {
	guesser := auth.UsernameFromContext(r.Context())

	if res := h.limiter.Check(guesser); !res.Allowed {
		RespondJSON(w, http.StatusTooManyRequests, map[string]string{
			"code":    "RATE_LIMITED",
			"message": res.Reason,
		})
		return
	}

	var input SubmitGuessInput
	if err := DecodeJSON(r, &input); err != nil {
		RespondJSON(w, http.StatusBadRequest, map[string]string{
			"code":    "VALIDATION_ERROR",
			"message": "invalid request body",
		})
		return
	}

	messageID, err := uuid.Parse(input.MessageID)
	if err != nil {
		RespondError(w, domain.ErrValidation("invalid message id"))
		return
	}

	result, err := h.engine.SubmitGuess(r.Context(), messageID, guesser, input.GuessedUsername)
	if err != nil {
		RespondError(w, err)
		return
	}

	RespondJSON(w, http.StatusOK, result)
}

// History handles GET /game/history.
func (h *GameHandler) History(w http.ResponseWriter, r *http.Request) {
	guesser := auth.UsernameFromContext(r.Context())
	guesses, err := h.engine.History(r.Context(), guesser)
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, map[string]interface{}{"guesses": guesses})
}

// Guessable handles GET /game/messages: wall messages the caller may
// guess on (their own sent messages are excluded).
func (h *GameHandler) Guessable(w http.ResponseWriter, r *http.Request) {
	username := auth.UsernameFromContext(r.Context())
	msgs, err := h.engine.GuessableMessages(r.Context(), username)
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, map[string]interface{}{"messages": msgs})
}
