package web

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/tampadev/events-web/server/auth"
	"github.com/tampadev/events-web/server/events"
)

type GroupRequestRow struct {
	events.GroupRequest
	RequestedByURL string
}

type AdminGroupRequestsVars struct {
	Requests []GroupRequestRow
	Error    string
}

func (h *handler) AdminGroupRequests(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	apiAuth := events.Auth{SessionToken: auth.GetSession(r).Token}

	vars := AdminGroupRequestsVars{}

	requests, err := h.API.GetGroupRequests(ctx, apiAuth)
	if err != nil {
		if errors.Is(err, events.ErrUnauthorized) {
			h.forceLogin(w, r)
			return
		}
		if errors.Is(err, events.ErrForbidden) {
			http.Error(w, "You are not an admin", http.StatusForbidden)
			return
		}

		slog.ErrorContext(ctx, "Failed to fetch group requests", slog.Any("err", err))
		vars.Error = "Failed to load group requests"
	}
	for _, request := range requests {
		vars.Requests = append(vars.Requests, GroupRequestRow{
			GroupRequest:   request,
			RequestedByURL: "/p/" + request.RequestedBy.Username,
		})
	}

	if err = h.Templates().ExecuteTemplate(w, "admin_group_requests.gohtml", vars); err != nil {
		slog.ErrorContext(ctx, "Failed to render group requests template", slog.Any("err", err))
	}
}

type groupRequestCommand interface {
	groupRequestCommand()
}

type approveRequestCommand struct {
	RequestID string
}

type rejectRequestCommand struct {
	RequestID string
	Reason    string
}

func (approveRequestCommand) groupRequestCommand() {}
func (rejectRequestCommand) groupRequestCommand()  {}

func parseGroupRequestCommand(form url.Values) (groupRequestCommand, error) {
	requestID := form.Get("requestId")

	switch form.Get("intent") {
	case "approve":
		if requestID == "" {
			return nil, errors.New("missing request id")
		}
		return approveRequestCommand{RequestID: requestID}, nil
	case "reject":
		if requestID == "" {
			return nil, errors.New("missing request id")
		}
		return rejectRequestCommand{
			RequestID: requestID,
			Reason:    strings.TrimSpace(form.Get("reason")),
		}, nil
	default:
		return nil, nil
	}
}

func (h *handler) AdminGroupRequestsAction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	apiAuth := events.Auth{SessionToken: auth.GetSession(r).Token}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	command, err := parseGroupRequestCommand(r.PostForm)
	if err != nil {
		respondActionError(w, err)
		return
	}
	if command == nil {
		respondUnknownAction(w)
		return
	}

	switch cmd := command.(type) {
	case approveRequestCommand:
		group, err := h.API.ApproveGroupRequest(ctx, apiAuth, cmd.RequestID)
		if err != nil {
			respondActionError(w, err)
			return
		}
		h.SendNotification(ctx, fmt.Sprintf("Group request approved: `%s`", group.Name))
		respondActionSuccess(w, map[string]any{"group": group})

	case rejectRequestCommand:
		if err = h.API.RejectGroupRequest(ctx, apiAuth, cmd.RequestID, cmd.Reason); err != nil {
			respondActionError(w, err)
			return
		}
		respondActionSuccess(w, nil)
	}
}
