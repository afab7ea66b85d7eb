package web

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/tampadev/events-web/internal/omit"
	"github.com/tampadev/events-web/internal/xstrconv"
	"github.com/tampadev/events-web/server/auth"
	"github.com/tampadev/events-web/server/events"
)

type AdminGroupVars struct {
	Group
}

func (h *handler) AdminGroup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	apiAuth := events.Auth{SessionToken: auth.GetSession(r).Token}

	groupID := r.PathValue("group_id")

	group, err := h.API.GetAdminGroup(ctx, apiAuth, groupID)
	if err != nil {
		if errors.Is(err, events.ErrNotFound) {
			h.NotFound(w, r)
			return
		}
		if errors.Is(err, events.ErrUnauthorized) {
			h.forceLogin(w, r)
			return
		}
		if errors.Is(err, events.ErrForbidden) {
			http.Error(w, "You are not an admin", http.StatusForbidden)
			return
		}

		slog.ErrorContext(ctx, "Failed to fetch group", slog.String("group_id", groupID), slog.Any("err", err))
		http.Error(w, "Failed to load group", http.StatusInternalServerError)
		return
	}

	if err = h.Templates().ExecuteTemplate(w, "admin_group.gohtml", AdminGroupVars{
		Group: newGroup(*group),
	}); err != nil {
		slog.ErrorContext(ctx, "Failed to render admin group template", slog.Any("err", err))
	}
}

type adminGroupCommand interface {
	adminGroupCommand()
}

type toggleActiveCommand struct {
	Active bool
}

type toggleFeaturedCommand struct {
	Featured bool
}

type adminDeleteGroupCommand struct{}

type adminSyncGroupCommand struct{}

func (toggleActiveCommand) adminGroupCommand()     {}
func (toggleFeaturedCommand) adminGroupCommand()   {}
func (adminDeleteGroupCommand) adminGroupCommand() {}
func (adminSyncGroupCommand) adminGroupCommand()   {}

func parseAdminGroupCommand(form url.Values) (adminGroupCommand, error) {
	switch form.Get("intent") {
	case "toggleActive":
		active, err := xstrconv.ParseBool(form.Get("active"))
		if err != nil {
			return nil, errors.New("invalid active value")
		}
		return toggleActiveCommand{Active: active}, nil
	case "toggleFeatured":
		featured, err := xstrconv.ParseBool(form.Get("featured"))
		if err != nil {
			return nil, errors.New("invalid featured value")
		}
		return toggleFeaturedCommand{Featured: featured}, nil
	case "delete":
		return adminDeleteGroupCommand{}, nil
	case "sync":
		return adminSyncGroupCommand{}, nil
	default:
		return nil, nil
	}
}

func (h *handler) AdminGroupAction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	apiAuth := events.Auth{SessionToken: auth.GetSession(r).Token}

	groupID := r.PathValue("group_id")

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	command, err := parseAdminGroupCommand(r.PostForm)
	if err != nil {
		respondActionError(w, err)
		return
	}
	if command == nil {
		respondUnknownAction(w)
		return
	}

	switch cmd := command.(type) {
	case toggleActiveCommand:
		if _, err = h.API.UpdateGroup(ctx, apiAuth, groupID, events.GroupUpdate{
			Active: omit.New(cmd.Active),
		}); err != nil {
			respondActionError(w, err)
			return
		}
		respondActionSuccess(w, nil)

	case toggleFeaturedCommand:
		if _, err = h.API.UpdateGroup(ctx, apiAuth, groupID, events.GroupUpdate{
			Featured: omit.New(cmd.Featured),
		}); err != nil {
			respondActionError(w, err)
			return
		}
		respondActionSuccess(w, nil)

	case adminDeleteGroupCommand:
		if err = h.API.DeleteGroup(ctx, apiAuth, groupID); err != nil {
			respondActionError(w, err)
			return
		}
		h.SendNotification(ctx, fmt.Sprintf("Group `%s` was deleted from the admin console", groupID))
		http.Redirect(w, r, "/admin", http.StatusSeeOther)

	case adminSyncGroupCommand:
		if err = h.API.SyncGroup(ctx, apiAuth, groupID); err != nil {
			respondActionError(w, err)
			return
		}
		respondActionSuccess(w, nil)
	}
}
