package admin

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/harshit-shukla-1/secret-santa/internal/handler"
	"github.com/harshit-shukla-1/secret-santa/internal/service"
)

// UserAdminHandler handles admin user management.
type UserAdminHandler struct {
	adminSvc *service.AdminService
}

// NewUserAdminHandler creates a new UserAdminHandler.
func NewUserAdminHandler(adminSvc *service.AdminService) *UserAdminHandler {
	return &UserAdminHandler{adminSvc: adminSvc}
}

// ListUsers handles GET /admin/users.
func (h *UserAdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.adminSvc.ListUsers(r.Context())
	if err != nil {
		handler.RespondError(w, err)
		return
	}
	handler.RespondJSON(w, http.StatusOK, map[string]interface{}{"users": users})
}

// CreateUser handles POST /admin/users.
func (h *UserAdminHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var input service.CreateUserInput
	if err := handler.DecodeJSON(r, &input); err != nil {
		handler.RespondJSON(w, http.StatusBadRequest, map[string]string{
			"code":    "VALIDATION_ERROR",
			"message": "invalid request body",
		})
		return
	}

	user, err := h.adminSvc.CreateUser(r.Context(), input)
	if err != nil {
		handler.RespondError(w, err)
		return
	}

	handler.RespondJSON(w, http.StatusCreated, user)
}

// DeleteUser handles DELETE /admin/users/{username}.
func (h *UserAdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	target := chi.URLParam(r, "username")
	actor := handler.Actor(r)

	if err := h.adminSvc.DeleteUser(r.Context(), actor, target); err != nil {
		handler.RespondError(w, err)
		return
	}

	handler.RespondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// ResetAdmin handles POST /admin/reset.
func (h *UserAdminHandler) ResetAdmin(w http.ResponseWriter, r *http.Request) {
	if err := h.adminSvc.ResetAdmin(r.Context()); err != nil {
		handler.RespondError(w, err)
		return
	}
	handler.RespondJSON(w, http.StatusOK, map[string]string{"status": "admin reset"})
}
