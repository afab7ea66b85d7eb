package web

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/tampadev/events-web/server/uploads"
)

// APIUploadRequest hands out a presigned PUT URL for a direct-to-storage
// upload. The binary itself never passes through this server; the client PUTs
// to the returned uploadUrl and then persists finalUrl via the matching
// profile or group update action.
func (h *handler) APIUploadRequest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if h.Uploads == nil {
		respondJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "Uploads are not configured"})
		return
	}

	var rq uploads.Request
	if err := json.NewDecoder(r.Body).Decode(&rq); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		return
	}

	// Validation failures never reach object storage.
	if err := h.Uploads.Validate(rq); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	descriptor, err := h.Uploads.Presign(ctx, rq)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to presign upload", slog.String("category", rq.Category), slog.Any("err", err))
		respondJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to create upload"})
		return
	}

	respondJSON(w, http.StatusOK, descriptor)
}
