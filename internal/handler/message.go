package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/harshit-shukla-1/secret-santa/internal/auth"
	"github.com/harshit-shukla-1/secret-santa/internal/domain"
	"github.com/harshit-shukla-1/secret-santa/internal/service"
)

// MessageHandler handles message endpoints.
type MessageHandler struct {
	msgSvc *service.MessageService
}

// NewMessageHandler creates a new MessageHandler.
func NewMessageHandler(msgSvc *service.MessageService) *MessageHandler {
	return &MessageHandler{msgSvc: msgSvc}
}

// Send handles POST /messages.
func (h *MessageHandler) Send(w http.ResponseWriter, r *http.Request) {
	var input service.SendInput
	if err := DecodeJSON(r, &input); err != nil {
		RespondJSON(w, http.StatusBadRequest, map[string]string{
			"code":    "VALIDATION_ERROR",
			"message": "invalid request body",
		})
		return
	}

	sender := auth.UsernameFromContext(r.Context())
	sent, err := h.msgSvc.Send(r.Context(), sender, input)
	if err != nil {
		RespondError(w, err)
		return
	}

	RespondJSON(w, http.StatusCreated, sent)
}

// Inbox handles GET /messages/inbox.
func (h *MessageHandler) Inbox(w http.ResponseWriter, r *http.Request) {
	username := auth.UsernameFromContext(r.Context())
	msgs, err := h.msgSvc.Inbox(r.Context(), username)
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, map[string]interface{}{"messages": msgs})
}

// Sent handles GET /messages/sent.
func (h *MessageHandler) Sent(w http.ResponseWriter, r *http.Request) {
	username := auth.UsernameFromContext(r.Context())
	sent, err := h.msgSvc.SentHistory(r.Context(), username)
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, map[string]interface{}{"messages": sent})
}

// Delete handles DELETE /messages/{id}.
func (h *MessageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		RespondError(w, domain.ErrValidation("invalid message id"))
		return
	}

	actor := Actor(r)
	if err := h.msgSvc.Delete(r.Context(), id, actor); err != nil {
		RespondError(w, err)
		return
	}

	RespondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
