package web

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/tampadev/events-web/server/auth"
	"github.com/tampadev/events-web/server/events"
)

type PublicProfileVars struct {
	ProfileUser
}

func (h *handler) PublicProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	apiAuth := events.Auth{SessionToken: auth.GetSession(r).Token}

	username := r.PathValue("username")

	user, err := h.API.GetUser(ctx, apiAuth, username)
	if err != nil {
		if errors.Is(err, events.ErrNotFound) {
			h.NotFound(w, r)
			return
		}
		if errors.Is(err, events.ErrUnauthorized) {
			h.forceLogin(w, r)
			return
		}

		slog.ErrorContext(ctx, "Failed to fetch user profile", slog.String("username", username), slog.Any("err", err))
		http.Error(w, "Failed to load profile", http.StatusInternalServerError)
		return
	}

	if err = h.Templates().ExecuteTemplate(w, "profile_public.gohtml", PublicProfileVars{
		ProfileUser: newProfileUser(*user),
	}); err != nil {
		slog.ErrorContext(ctx, "Failed to render public profile template", slog.Any("err", err))
	}
}

type PublicProfileFollowingVars struct {
	ProfileUser
	Following []ProfileUser
	Error     string
}

func (h *handler) PublicProfileFollowing(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	apiAuth := events.Auth{SessionToken: auth.GetSession(r).Token}

	username := r.PathValue("username")

	// The profile is the primary resource; the following list degrades to an
	// inline error when it cannot be loaded.
	user, err := h.API.GetUser(ctx, apiAuth, username)
	if err != nil {
		if errors.Is(err, events.ErrNotFound) {
			h.NotFound(w, r)
			return
		}
		if errors.Is(err, events.ErrUnauthorized) {
			h.forceLogin(w, r)
			return
		}

		slog.ErrorContext(ctx, "Failed to fetch user profile", slog.String("username", username), slog.Any("err", err))
		http.Error(w, "Failed to load profile", http.StatusInternalServerError)
		return
	}

	vars := PublicProfileFollowingVars{
		ProfileUser: newProfileUser(*user),
	}

	following, err := h.API.GetUserFollowing(ctx, apiAuth, username)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to fetch following list", slog.String("username", username), slog.Any("err", err))
		vars.Error = "Failed to load the following list"
	}
	for _, followed := range following {
		vars.Following = append(vars.Following, newProfileUser(followed))
	}

	if err = h.Templates().ExecuteTemplate(w, "profile_following.gohtml", vars); err != nil {
		slog.ErrorContext(ctx, "Failed to render following template", slog.Any("err", err))
	}
}
