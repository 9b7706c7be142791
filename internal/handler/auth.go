package handler

import (
	"net"
	"net/http"

	"github.com/harshit-shukla-1/secret-santa/internal/auth"
	"github.com/harshit-shukla-1/secret-santa/internal/domain"
	"github.com/harshit-shukla-1/secret-santa/internal/service"
)

// AuthHandler handles registration, login and profile endpoints.
type AuthHandler struct {
	authSvc *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authSvc *service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input service.RegisterInput
	if err := DecodeJSON(r, &input); err != nil {
		RespondJSON(w, http.StatusBadRequest, map[string]string{
			"code":    "VALIDATION_ERROR",
			"message": "invalid request body",
		})
		return
	}

	result, err := h.authSvc.Register(r.Context(), input)
	if err != nil {
		RespondError(w, err)
		return
	}

	RespondJSON(w, http.StatusCreated, result)
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input service.LoginInput
	if err := DecodeJSON(r, &input); err != nil {
		RespondJSON(w, http.StatusBadRequest, map[string]string{
			"code":    "VALIDATION_ERROR",
			"message": "invalid request body",
		})
		return
	}

	result, err := h.authSvc.Login(r.Context(), input, remoteIP(r))
	if err != nil {
		RespondError(w, err)
		return
	}

	RespondJSON(w, http.StatusOK, result)
}

// Me handles GET /auth/me.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFromContext(r.Context())
	if claims == nil {
		RespondError(w, domain.ErrUnauthorized("not authenticated"))
		return
	}
	RespondJSON(w, http.StatusOK, map[string]string{
		"username": claims.Subject,
		"role":     claims.Role,
		"avatar":   claims.Avatar,
	})
}

// ChangePassword handles POST /auth/password.
func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var input struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}
	if err := DecodeJSON(r, &input); err != nil {
		RespondJSON(w, http.StatusBadRequest, map[string]string{
			"code":    "VALIDATION_ERROR",
			"message": "invalid request body",
		})
		return
	}

	username := auth.UsernameFromContext(r.Context())
	if err := h.authSvc.ChangePassword(r.Context(), username, input.CurrentPassword, input.NewPassword); err != nil {
		RespondError(w, err)
		return
	}

	RespondJSON(w, http.StatusOK, map[string]string{"status": "password changed"})
}

// UpdateAvatar handles PUT /auth/avatar.
func (h *AuthHandler) UpdateAvatar(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Avatar string `json:"avatar"`
	}
	if err := DecodeJSON(r, &input); err != nil {
		RespondJSON(w, http.StatusBadRequest, map[string]string{
			"code":    "VALIDATION_ERROR",
			"message": "invalid request body",
		})
		return
	}

	username := auth.UsernameFromContext(r.Context())
	if err := h.authSvc.UpdateAvatar(r.Context(), username, input.Avatar); err != nil {
		RespondError(w, err)
		return
	}

	RespondJSON(w, http.StatusOK, map[string]string{"status": "avatar updated"})
}

// Actor rebuilds the acting user from verified JWT claims.
// Policy checks only need username and role, so no DB round trip.
func Actor(r *http.Request) *domain.User {
	claims := auth.ClaimsFromContext(r.Context())
	if claims == nil {
		return nil
	}
	return &domain.User{
		Username: claims.Subject,
		Role:     claims.Role,
		Avatar:   claims.Avatar,
	}
}

func remoteIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return fwd
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
