package web

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"slices"
	"strings"

	"github.com/tampadev/events-web/internal/omit"
	"github.com/tampadev/events-web/internal/tsync"
	"github.com/tampadev/events-web/server/auth"
	"github.com/tampadev/events-web/server/events"
)

type GroupManageVars struct {
	Group
	Members []Member
	Events  []Event
	Error   string
}

func (h *handler) GroupManage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	apiAuth := events.Auth{SessionToken: auth.GetSession(r).Token}

	slug := r.PathValue("slug")

	// The group is the primary resource; members and events degrade to an
	// inline error when they cannot be loaded.
	group, err := h.API.GetGroup(ctx, apiAuth, slug)
	if err != nil {
		if errors.Is(err, events.ErrNotFound) {
			h.NotFound(w, r)
			return
		}
		if errors.Is(err, events.ErrUnauthorized) {
			h.forceLogin(w, r)
			return
		}

		slog.ErrorContext(ctx, "Failed to fetch group", slog.String("slug", slug), slog.Any("err", err))
		http.Error(w, "Failed to load group", http.StatusInternalServerError)
		return
	}

	var (
		members     []events.GroupMember
		groupEvents []events.Event
	)

	eg, egCtx := tsync.ErrorGroupWithContext(ctx)
	eg.Go(func() error {
		var err error
		members, err = h.API.GetGroupMembers(egCtx, apiAuth, group.ID)
		return err
	})
	eg.Go(func() error {
		var err error
		groupEvents, err = h.API.GetGroupEvents(egCtx, apiAuth, group.ID)
		return err
	})

	var errorMessage string
	if err = eg.Wait(); err != nil {
		if errors.Is(err, events.ErrUnauthorized) {
			h.forceLogin(w, r)
			return
		}

		slog.ErrorContext(ctx, "Failed to fetch group details", slog.String("slug", slug), slog.Any("err", err))
		errorMessage = "Failed to load members or events"
	}

	vars := GroupManageVars{
		Group: newGroup(*group),
		Error: errorMessage,
	}
	for _, member := range members {
		vars.Members = append(vars.Members, newMember(member))
	}
	for _, event := range groupEvents {
		vars.Events = append(vars.Events, newEvent(event, group.URLName))
	}

	if err = h.Templates().ExecuteTemplate(w, "group_manage.gohtml", vars); err != nil {
		slog.ErrorContext(ctx, "Failed to render group manage template", slog.Any("err", err))
	}
}

// Group management mutations, one type per intent.
type groupManageCommand interface {
	groupManageCommand()
}

type updateGroupCommand struct {
	Name        string
	Description string
	Website     string
	Tags        []string
	SocialLinks map[string]string
	LogoURL     string
}

type deleteGroupCommand struct{}

type syncGroupCommand struct{}

type addMemberCommand struct {
	Email string
	Role  string
}

type updateMemberRoleCommand struct {
	MemberID string
	Role     string
}

type removeMemberCommand struct {
	MemberID string
}

func (updateGroupCommand) groupManageCommand()      {}
func (deleteGroupCommand) groupManageCommand()      {}
func (syncGroupCommand) groupManageCommand()        {}
func (addMemberCommand) groupManageCommand()        {}
func (updateMemberRoleCommand) groupManageCommand() {}
func (removeMemberCommand) groupManageCommand()     {}

var memberRoles = []string{events.MemberRoleOwner, events.MemberRoleAdmin, events.MemberRoleMember}

func parseGroupManageCommand(form url.Values) (groupManageCommand, error) {
	switch form.Get("intent") {
	case "update":
		return updateGroupCommand{
			Name:        strings.TrimSpace(form.Get("name")),
			Description: form.Get("description"),
			Website:     strings.TrimSpace(form.Get("website")),
			Tags:        parseTags(form.Get("tags")),
			SocialLinks: parseSocialLinks(form.Get),
			LogoURL:     form.Get("logoUrl"),
		}, nil
	case "delete":
		return deleteGroupCommand{}, nil
	case "sync":
		return syncGroupCommand{}, nil
	case "addMember":
		role := form.Get("role")
		if !slices.Contains(memberRoles, role) {
			return nil, fmt.Errorf("invalid role: %s", role)
		}
		return addMemberCommand{
			Email: strings.TrimSpace(form.Get("email")),
			Role:  role,
		}, nil
	case "updateMemberRole":
		role := form.Get("role")
		if !slices.Contains(memberRoles, role) {
			return nil, fmt.Errorf("invalid role: %s", role)
		}
		return updateMemberRoleCommand{
			MemberID: form.Get("memberId"),
			Role:     role,
		}, nil
	case "removeMember":
		return removeMemberCommand{
			MemberID: form.Get("memberId"),
		}, nil
	default:
		return nil, nil
	}
}

func (h *handler) GroupManageAction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	apiAuth := events.Auth{SessionToken: auth.GetSession(r).Token}

	slug := r.PathValue("slug")

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	command, err := parseGroupManageCommand(r.PostForm)
	if err != nil {
		respondActionError(w, err)
		return
	}
	if command == nil {
		respondUnknownAction(w)
		return
	}

	group, err := h.API.GetGroup(ctx, apiAuth, slug)
	if err != nil {
		if errors.Is(err, events.ErrNotFound) {
			h.NotFound(w, r)
			return
		}
		if errors.Is(err, events.ErrUnauthorized) {
			h.forceLogin(w, r)
			return
		}
		respondActionError(w, err)
		return
	}

	switch cmd := command.(type) {
	case updateGroupCommand:
		updated, err := h.API.UpdateGroup(ctx, apiAuth, group.ID, events.GroupUpdate{
			Name:        omit.New(cmd.Name),
			Description: omit.New(cmd.Description),
			Website:     omit.New(cmd.Website),
			Tags:        omit.New(cmd.Tags),
			SocialLinks: omit.New(cmd.SocialLinks),
			LogoURL:     omit.New(cmd.LogoURL),
		})
		if err != nil {
			respondActionError(w, err)
			return
		}
		respondActionSuccess(w, map[string]any{"group": updated})

	case deleteGroupCommand:
		if err = h.API.DeleteGroup(ctx, apiAuth, group.ID); err != nil {
			respondActionError(w, err)
			return
		}
		h.SendNotification(ctx, fmt.Sprintf("Group `%s` was deleted", group.Name))
		http.Redirect(w, r, "/profile", http.StatusSeeOther)

	case syncGroupCommand:
		if err = h.API.SyncGroup(ctx, apiAuth, group.ID); err != nil {
			respondActionError(w, err)
			return
		}
		respondActionSuccess(w, nil)

	case addMemberCommand:
		member, err := h.API.AddGroupMember(ctx, apiAuth, group.ID, cmd.Email, cmd.Role)
		if err != nil {
			respondActionError(w, err)
			return
		}
		respondActionSuccess(w, map[string]any{"member": member})

	case updateMemberRoleCommand:
		if err = h.API.UpdateGroupMemberRole(ctx, apiAuth, group.ID, cmd.MemberID, cmd.Role); err != nil {
			respondActionError(w, err)
			return
		}
		respondActionSuccess(w, nil)

	case removeMemberCommand:
		if err = h.API.RemoveGroupMember(ctx, apiAuth, group.ID, cmd.MemberID); err != nil {
			respondActionError(w, err)
			return
		}
		respondActionSuccess(w, nil)
	}
}
