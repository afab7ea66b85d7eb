package web

import (
	"fmt"
	"log/slog"
	"net/http"
	"path"

	"github.com/tampadev/events-web/internal/middlewares"
	"github.com/tampadev/events-web/server"
)

type handler struct {
	*server.Server
}

func Routes(srv *server.Server) http.Handler {
	h := &handler{
		Server: srv,
	}

	fileServer := http.FileServer(h.StaticFS)
	var fs http.Handler
	if srv.Cfg.IsDevelopment() {
		fs = fileServer
	} else {
		fs = middlewares.Cache(fileServer)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.Index)

	mux.HandleFunc("GET /calendar", h.Calendar)
	mux.HandleFunc("GET /map", h.Map)
	mux.HandleFunc("GET /leaderboard", h.Leaderboard)

	mux.HandleFunc("GET /p/{username}", h.PublicProfile)
	mux.HandleFunc("GET /p/{username}/following", h.PublicProfileFollowing)

	mux.HandleFunc("GET /profile", h.Profile)
	mux.HandleFunc("GET  /profile/settings", h.ProfileSettings)
	mux.HandleFunc("POST /profile/settings", h.ProfileSettingsAction)

	mux.HandleFunc("GET  /groups/{slug}/manage", h.GroupManage)
	mux.HandleFunc("POST /groups/{slug}/manage", h.GroupManageAction)
	mux.HandleFunc("GET  /groups/{slug}/manage/events/{event_id}", h.GroupManageEvent)
	mux.HandleFunc("POST /groups/{slug}/manage/events/{event_id}", h.GroupManageEventAction)
	mux.HandleFunc("GET  /groups/{slug}/manage/checkins", h.GroupManageCheckins)
	mux.HandleFunc("POST /groups/{slug}/manage/checkins", h.GroupManageCheckinsAction)
	mux.HandleFunc("GET  /groups/{slug}/manage/checkins/{code}/qr.png", h.CheckinCodeQR)
	mux.HandleFunc("GET  /checkin/{code}", h.Checkin)

	mux.HandleFunc("GET /admin", h.Admin)
	mux.HandleFunc("GET  /admin/groups/{group_id}", h.AdminGroup)
	mux.HandleFunc("POST /admin/groups/{group_id}", h.AdminGroupAction)
	mux.HandleFunc("GET  /admin/group-requests", h.AdminGroupRequests)
	mux.HandleFunc("POST /admin/group-requests", h.AdminGroupRequestsAction)

	mux.HandleFunc("GET /login", h.Login)
	mux.HandleFunc("GET /admin/login", h.Login)
	mux.HandleFunc("GET /login/callback", h.LoginCallback)
	mux.HandleFunc("GET  /auth/logout", h.Logout)
	mux.HandleFunc("POST /auth/logout", h.Logout)

	mux.HandleFunc("POST /api/uploads/request", h.APIUploadRequest)
	mux.HandleFunc("GET  /api/username-check", h.APIUsernameCheck)

	mux.HandleFunc("GET /images/{image_id}", h.Image)

	mux.Handle("GET  /static/", fs)
	mux.Handle("HEAD /static/", fs)

	if !srv.Cfg.IsProduction() {
		mux.HandleFunc("GET  /_dev/auth", h.DevAuth)
		mux.HandleFunc("POST /_dev/auth", h.DevAuth)
	}
	if srv.Cfg.IsDevelopment() {
		mux.HandleFunc("GET /dev/reload", h.DevReload)
	}

	mux.HandleFunc("/", h.NotFound)

	return cleanPath(requestLogger(h.auth(mux)))
}

func (h *handler) NotFound(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	w.WriteHeader(http.StatusNotFound)
	if err := h.Templates().ExecuteTemplate(w, "not_found.gohtml", nil); err != nil {
		slog.ErrorContext(ctx, "Failed to render not found template", slog.Any("err", err))
	}
}

func cleanPath(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.URL.Path = path.Clean(r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

// DevReload streams server-sent events telling the browser to refresh whenever
// the dev watcher sees a change on disk.
func (h *handler) DevReload(w http.ResponseWriter, r *http.Request) {
	if h.ReloadNotifier == nil {
		http.NotFound(w, r)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	cancel, ch := h.ReloadNotifier.Subscribe()
	defer cancel()

	if _, err := fmt.Fprint(w, ": connected\n\n"); err != nil {
		return
	}
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case _, ok := <-ch:
			if !ok {
				return
			}
			if _, err := fmt.Fprint(w, "data: reload\n\n"); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}
