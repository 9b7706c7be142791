package handler

import (
	"net/http"

	"github.com/harshit-shukla-1/secret-santa/internal/game"
)

// LeaderboardHandler handles leaderboard endpoints.
type LeaderboardHandler struct {
	agg *game.Aggregator
}

// NewLeaderboardHandler creates a new LeaderboardHandler.
func NewLeaderboardHandler(agg *game.Aggregator) *LeaderboardHandler {
	return &LeaderboardHandler{agg: agg}
}

// Leaderboard handles GET /leaderboard.
func (h *LeaderboardHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	entries, err := h.agg.Compute(r.Context())
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, map[string]interface{}{"leaderboard": entries})
}
