package web

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/tampadev/events-web/internal/tsync"
	"github.com/tampadev/events-web/server/auth"
	"github.com/tampadev/events-web/server/events"
)

type ProfileVars struct {
	ProfileUser
	ManagedGroups []Group
	Error         string
}

// Profile renders the signed-in user's dashboard: their own profile plus the
// groups they can manage.
func (h *handler) Profile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	apiAuth := events.Auth{SessionToken: auth.GetSession(r).Token}

	var (
		user   *events.User
		groups []events.Group
	)

	eg, egCtx := tsync.ErrorGroupWithContext(ctx)
	eg.Go(func() error {
		var err error
		user, err = h.API.GetProfile(egCtx, apiAuth)
		return err
	})
	eg.Go(func() error {
		var err error
		groups, err = h.API.GetManagedGroups(egCtx, apiAuth)
		return err
	})

	var errorMessage string
	if err := eg.Wait(); err != nil {
		if errors.Is(err, events.ErrUnauthorized) {
			h.forceLogin(w, r)
			return
		}
		if user == nil {
			slog.ErrorContext(ctx, "Failed to fetch profile", slog.Any("err", err))
			http.Error(w, "Failed to load profile", http.StatusInternalServerError)
			return
		}

		slog.ErrorContext(ctx, "Failed to fetch managed groups", slog.Any("err", err))
		errorMessage = "Failed to load your groups"
	}

	vars := ProfileVars{
		ProfileUser: newProfileUser(*user),
		Error:       errorMessage,
	}
	for _, group := range groups {
		vars.ManagedGroups = append(vars.ManagedGroups, newGroup(group))
	}

	if err := h.Templates().ExecuteTemplate(w, "profile.gohtml", vars); err != nil {
		slog.ErrorContext(ctx, "Failed to render profile template", slog.Any("err", err))
	}
}
