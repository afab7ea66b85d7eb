package web

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode JSON response", slog.Any("err", err))
	}
}

// respondUnknownAction is the shared fallback for every action dispatcher.
// It runs before any upstream call is made.
func respondUnknownAction(w http.ResponseWriter) {
	respondJSON(w, http.StatusBadRequest, map[string]string{
		"error": "Unknown action",
	})
}

func respondActionError(w http.ResponseWriter, err error) {
	respondJSON(w, http.StatusOK, map[string]any{
		"success": false,
		"error":   err.Error(),
	})
}

func respondActionSuccess(w http.ResponseWriter, extra map[string]any) {
	payload := map[string]any{
		"success": true,
	}
	for k, v := range extra {
		payload[k] = v
	}
	respondJSON(w, http.StatusOK, payload)
}
