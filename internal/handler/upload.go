package handler

import (
	"net/http"

	"github.com/harshit-shukla-1/secret-santa/internal/auth"
	"github.com/harshit-shukla-1/secret-santa/internal/provider"
)

// UploadHandler issues presigned URLs for attachment uploads.
type UploadHandler struct {
	blobs *provider.BlobStore
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(blobs *provider.BlobStore) *UploadHandler {
	return &UploadHandler{blobs: blobs}
}

// Create handles POST /uploads. The client declares content type and size
// up front and receives a short-lived PUT URL.
func (h *UploadHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input struct {
		ContentType string `json:"content_type"`
		SizeBytes   int64  `json:"size_bytes"`
	}
	if err := DecodeJSON(r, &input); err != nil {
		RespondJSON(w, http.StatusBadRequest, map[string]string{
			"code":    "VALIDATION_ERROR",
			"message": "invalid request body",
		})
		return
	}

	username := auth.UsernameFromContext(r.Context())
	ticket, err := h.blobs.IssueUpload(r.Context(), username, input.ContentType, input.SizeBytes)
	if err != nil {
		RespondError(w, err)
		return
	}

	RespondJSON(w, http.StatusCreated, ticket)
}

// Download handles GET /uploads/url?key=...: a presigned GET for a
// previously stored attachment.
func (h *UploadHandler) Download(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	url, err := h.blobs.DownloadURL(r.Context(), key)
	if err != nil {
		RespondError(w, err)
		return
	}
	RespondJSON(w, http.StatusOK, map[string]string{"url": url})
}
