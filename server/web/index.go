package web

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/tampadev/events-web/internal/tsync"
	"github.com/tampadev/events-web/server/auth"
	"github.com/tampadev/events-web/server/events"
)

type IndexVars struct {
	Groups         []Group
	UpcomingEvents []Event
	Error          string
}

func (h *handler) Index(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	apiAuth := events.Auth{SessionToken: auth.GetSession(r).Token}

	var (
		groups   []events.Group
		upcoming []events.Event
	)

	// Groups and events are independent; fetch them concurrently.
	eg, egCtx := tsync.ErrorGroupWithContext(ctx)
	eg.Go(func() error {
		var err error
		groups, err = h.API.GetGroups(egCtx, apiAuth)
		return err
	})
	eg.Go(func() error {
		now := time.Now()
		var err error
		upcoming, err = h.API.GetEvents(egCtx, apiAuth, now, now.AddDate(0, 1, 0))
		return err
	})

	var errorMessage string
	if err := eg.Wait(); err != nil {
		slog.ErrorContext(ctx, "Failed to load homepage data", slog.Any("err", err))
		errorMessage = "Failed to load some homepage data"
	}

	vars := IndexVars{
		Error: errorMessage,
	}
	for _, group := range groups {
		if !group.Display {
			continue
		}
		vars.Groups = append(vars.Groups, newGroup(group))
	}
	for _, event := range upcoming {
		if event.Status != events.EventStatusActive {
			continue
		}
		vars.UpcomingEvents = append(vars.UpcomingEvents, newEvent(event, ""))
	}

	if err := h.Templates().ExecuteTemplate(w, "index.gohtml", vars); err != nil {
		slog.ErrorContext(ctx, "Failed to render index template", slog.Any("err", err))
	}
}
