package web

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path"
	"strings"
)

// Image proxies avatars and cover photos hosted by the upstream API so pages
// can serve every asset from their own origin with long-lived caching.
func (h *handler) Image(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	imageID := r.PathValue("image_id")

	remoteImageURL := fmt.Sprintf("%s/images/%s", strings.TrimSuffix(h.Cfg.API.BaseURL, "/"), imageID)
	rq, err := http.NewRequestWithContext(ctx, http.MethodGet, remoteImageURL, nil)
	if err != nil {
		http.Error(w, "Failed to create request: "+err.Error(), http.StatusInternalServerError)
		return
	}

	rs, err := h.HTTPClient.Do(rq)
	if err != nil {
		http.Error(w, "Failed to fetch image: "+err.Error(), http.StatusInternalServerError)
		return
	}
	defer rs.Body.Close()

	if rs.StatusCode != http.StatusOK {
		http.Error(w, "Failed to fetch image: "+rs.Status, rs.StatusCode)
		return
	}

	header := w.Header()
	header.Set("Content-Type", rs.Header.Get("Content-Type"))
	header.Set("Content-Length", rs.Header.Get("Content-Length"))
	header.Set("Cache-Control", "public, max-age=31536000")

	if _, err = io.Copy(w, rs.Body); err != nil {
		slog.ErrorContext(ctx, "Failed to write image to response", slog.Any("err", err))
		return
	}
}

func imageURL(remoteURL string) string {
	if remoteURL == "" {
		return ""
	}

	return path.Join("/images", path.Base(remoteURL))
}
