package handler

import (
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/harshit-shukla-1/secret-santa/internal/domain"
	"github.com/harshit-shukla-1/secret-santa/internal/repository"
	"github.com/harshit-shukla-1/secret-santa/internal/service"
)

// WallHandler handles the public wall and the recipient directory.
type WallHandler struct {
	msgSvc *service.MessageService
	pool   *pgxpool.Pool
	users  repository.UserRepository
}

// NewWallHandler creates a new WallHandler.
func NewWallHandler(msgSvc *service.MessageService, pool *pgxpool.Pool, users repository.UserRepository) *WallHandler {
	return &WallHandler{msgSvc: msgSvc, pool: pool, users: users}
}

// Wall handles GET /wall.
func (h *WallHandler) Wall(w http.ResponseWriter, r *http.Request) {
	viewer := Actor(r)
	msgs, err := h.msgSvc.Wall(r.Context(), viewer)
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, map[string]interface{}{"messages": msgs})
}

// Users handles GET /users: the directory of possible recipients and
// guess suspects. Password hashes never serialize.
func (h *WallHandler) Users(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context(), h.pool)
	if err != nil {
		RespondError(w, domain.ErrInternal("list users", err))
		return
	}
	RespondJSON(w, http.StatusOK, map[string]interface{}{"users": users})
}
