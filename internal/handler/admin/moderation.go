package admin

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/harshit-shukla-1/secret-santa/internal/domain"
	"github.com/harshit-shukla-1/secret-santa/internal/handler"
	"github.com/harshit-shukla-1/secret-santa/internal/service"
)

// ModerationHandler handles admin wall moderation. Admins see the full
// message rows, including senders, which the public surface never exposes.
type ModerationHandler struct {
	pool   *pgxpool.Pool
	msgSvc *service.MessageService
}

// NewModerationHandler creates a new ModerationHandler.
func NewModerationHandler(pool *pgxpool.Pool, msgSvc *service.MessageService) *ModerationHandler {
	return &ModerationHandler{pool: pool, msgSvc: msgSvc}
}

// ListMessages handles GET /admin/messages.
func (h *ModerationHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	rows, err := h.pool.Query(r.Context(), `
		SELECT id, from_username, to_username, body, type, created_at
		FROM messages ORDER BY created_at DESC LIMIT 200`)
	if err != nil {
		handler.RespondError(w, domain.ErrInternal("list messages", err))
		return
	}
	defer rows.Close()

	type moderatedMessage struct {
		ID           uuid.UUID `json:"id"`
		FromUsername string    `json:"from_username"`
		ToUsername   string    `json:"to_username"`
		Body         string    `json:"body"`
		Type         string    `json:"type"`
		CreatedAt    time.Time `json:"created_at"`
	}

	var msgs []moderatedMessage
	for rows.Next() {
		var m moderatedMessage
		if err := rows.Scan(&m.ID, &m.FromUsername, &m.ToUsername, &m.Body, &m.Type, &m.CreatedAt); err != nil {
			handler.RespondError(w, domain.ErrInternal("scan message", err))
			return
		}
		msgs = append(msgs, m)
	}

	handler.RespondJSON(w, http.StatusOK, map[string]interface{}{"messages": msgs})
}

// DeleteMessage handles DELETE /admin/messages/{id}. Admin deletes ignore
// the sender window.
func (h *ModerationHandler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		handler.RespondError(w, domain.ErrValidation("invalid message id"))
		return
	}

	actor := handler.Actor(r)
	if err := h.msgSvc.Delete(r.Context(), id, actor); err != nil {
		handler.RespondError(w, err)
		return
	}

	handler.RespondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
