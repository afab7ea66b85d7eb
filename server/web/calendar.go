package web

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/tampadev/events-web/internal/xquery"
	"github.com/tampadev/events-web/server/auth"
	"github.com/tampadev/events-web/server/events"
)

type CalendarVars struct {
	From   time.Time
	To     time.Time
	Events []Event
	Error  string
}

func (h *handler) Calendar(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()
	apiAuth := events.Auth{SessionToken: auth.GetSession(r).Token}

	now := time.Now()
	from := xquery.ParseTime(query, "from", time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local))
	to := xquery.ParseTime(query, "to", from.AddDate(0, 1, 0))

	vars := CalendarVars{
		From: from,
		To:   to,
	}

	calendarEvents, err := h.API.GetEvents(ctx, apiAuth, from, to)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to load calendar events", slog.Any("err", err))
		vars.Error = "Failed to load events"
	}
	for _, event := range calendarEvents {
		vars.Events = append(vars.Events, newEvent(event, ""))
	}

	if err = h.Templates().ExecuteTemplate(w, "calendar.gohtml", vars); err != nil {
		slog.ErrorContext(ctx, "Failed to render calendar template", slog.Any("err", err))
	}
}
