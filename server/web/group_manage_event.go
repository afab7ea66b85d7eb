package web

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tampadev/events-web/internal/omit"
	"github.com/tampadev/events-web/server/auth"
	"github.com/tampadev/events-web/server/events"
)

type GroupManageEventVars struct {
	Group
	Event Event
}

func (h *handler) GroupManageEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	apiAuth := events.Auth{SessionToken: auth.GetSession(r).Token}

	slug := r.PathValue("slug")
	eventID := r.PathValue("event_id")

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

	event, err := h.API.GetEvent(ctx, apiAuth, eventID)
	if err != nil {
		if errors.Is(err, events.ErrNotFound) {
			h.NotFound(w, r)
			return
		}
		if errors.Is(err, events.ErrUnauthorized) {
			h.forceLogin(w, r)
			return
		}

		slog.ErrorContext(ctx, "Failed to fetch event", slog.String("event_id", eventID), slog.Any("err", err))
		http.Error(w, "Failed to load event", http.StatusInternalServerError)
		return
	}

	if err = h.Templates().ExecuteTemplate(w, "group_manage_event.gohtml", GroupManageEventVars{
		Group: newGroup(*group),
		Event: newEvent(*event, group.URLName),
	}); err != nil {
		slog.ErrorContext(ctx, "Failed to render event manage template", slog.Any("err", err))
	}
}

type eventCommand interface {
	eventCommand()
}

type updateEventCommand struct {
	Title       string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string
	EventType   string
}

type cancelEventCommand struct{}

func (updateEventCommand) eventCommand() {}
func (cancelEventCommand) eventCommand() {}

func parseEventCommand(form url.Values) (eventCommand, error) {
	switch form.Get("intent") {
	case "updateEvent":
		cmd := updateEventCommand{
			Title:       strings.TrimSpace(form.Get("title")),
			Description: form.Get("description"),
			Timezone:    form.Get("timezone"),
			EventType:   form.Get("eventType"),
		}

		if raw := form.Get("startTime"); raw != "" {
			startTime, err := time.Parse(time.RFC3339, raw)
			if err != nil {
				return nil, errors.New("invalid start time")
			}
			cmd.StartTime = startTime
		}
		if raw := form.Get("endTime"); raw != "" {
			endTime, err := time.Parse(time.RFC3339, raw)
			if err != nil {
				return nil, errors.New("invalid end time")
			}
			cmd.EndTime = endTime
		}

		return cmd, nil
	case "cancelEvent":
		return cancelEventCommand{}, nil
	default:
		return nil, nil
	}
}

func (h *handler) GroupManageEventAction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	apiAuth := events.Auth{SessionToken: auth.GetSession(r).Token}

	eventID := r.PathValue("event_id")

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	command, err := parseEventCommand(r.PostForm)
	if err != nil {
		respondActionError(w, err)
		return
	}
	if command == nil {
		respondUnknownAction(w)
		return
	}

	switch cmd := command.(type) {
	case updateEventCommand:
		update := events.EventUpdate{
			Title:       omit.New(cmd.Title),
			Description: omit.New(cmd.Description),
		}
		if cmd.Timezone != "" {
			update.Timezone = omit.New(cmd.Timezone)
		}
		if cmd.EventType != "" {
			update.EventType = omit.New(cmd.EventType)
		}
		if !cmd.StartTime.IsZero() {
			update.StartTime = omit.New(cmd.StartTime)
		}
		if !cmd.EndTime.IsZero() {
			update.EndTime = omit.New(cmd.EndTime)
		}

		event, err := h.API.UpdateEvent(ctx, apiAuth, eventID, update)
		if err != nil {
			respondActionError(w, err)
			return
		}
		respondActionSuccess(w, map[string]any{"event": event})

	case cancelEventCommand:
		// Cancellation is terminal upstream; there is no un-cancel.
		if err = h.API.CancelEvent(ctx, apiAuth, eventID); err != nil {
			respondActionError(w, err)
			return
		}
		respondActionSuccess(w, nil)
	}
}
