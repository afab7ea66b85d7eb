package web

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/tampadev/events-web/internal/tsync"
	"github.com/tampadev/events-web/server/auth"
	"github.com/tampadev/events-web/server/events"
)

type AdminVars struct {
	Stats  events.AdminStats
	Groups []Group
	Error  string
}

func (h *handler) Admin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	apiAuth := events.Auth{SessionToken: auth.GetSession(r).Token}

	var (
		stats  *events.AdminStats
		groups []events.Group
	)

	eg, egCtx := tsync.ErrorGroupWithContext(ctx)
	eg.Go(func() error {
		var err error
		stats, err = h.API.GetAdminStats(egCtx, apiAuth)
		return err
	})
	eg.Go(func() error {
		var err error
		groups, err = h.API.GetAdminGroups(egCtx, apiAuth)
		return err
	})

	var errorMessage string
	if err := eg.Wait(); err != nil {
		if errors.Is(err, events.ErrUnauthorized) {
			h.forceLogin(w, r)
			return
		}
		if errors.Is(err, events.ErrForbidden) {
			http.Error(w, "You are not an admin", http.StatusForbidden)
			return
		}

		slog.ErrorContext(ctx, "Failed to load admin dashboard", slog.Any("err", err))
		errorMessage = "Failed to load some dashboard data"
	}

	vars := AdminVars{
		Error: errorMessage,
	}
	if stats != nil {
		vars.Stats = *stats
	}
	for _, group := range groups {
		vars.Groups = append(vars.Groups, newGroup(group))
	}

	if err := h.Templates().ExecuteTemplate(w, "admin.gohtml", vars); err != nil {
		slog.ErrorContext(ctx, "Failed to render admin template", slog.Any("err", err))
	}
}
