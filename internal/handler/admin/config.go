package admin

import (
	"net/http"

	"github.com/harshit-shukla-1/secret-santa/internal/handler"
	"github.com/harshit-shukla-1/secret-santa/internal/service"
)

// ConfigAdminHandler handles app configuration endpoints.
type ConfigAdminHandler struct {
	adminSvc *service.AdminService
}

// NewConfigAdminHandler creates a new ConfigAdminHandler.
func NewConfigAdminHandler(adminSvc *service.AdminService) *ConfigAdminHandler {
	return &ConfigAdminHandler{adminSvc: adminSvc}
}

// GetConfig handles GET /admin/config.
func (h *ConfigAdminHandler) GetConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.adminSvc.WallConfig(r.Context())
	if err != nil {
		handler.RespondError(w, err)
		return
	}
	handler.RespondJSON(w, http.StatusOK, cfg)
}

// SetWall handles PUT /admin/config/wall.
func (h *ConfigAdminHandler) SetWall(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Enabled bool `json:"enabled"`
	}
	if err := handler.DecodeJSON(r, &input); err != nil {
		handler.RespondJSON(w, http.StatusBadRequest, map[string]string{
			"code":    "VALIDATION_ERROR",
			"message": "invalid request body",
		})
		return
	}

	if err := h.adminSvc.SetWallEnabled(r.Context(), input.Enabled); err != nil {
		handler.RespondError(w, err)
		return
	}

	handler.RespondJSON(w, http.StatusOK, map[string]bool{"public_wall_enabled": input.Enabled})
}
