package web

import (
	"log/slog"
	"net/http"

	"github.com/tampadev/events-web/server/auth"
	"github.com/tampadev/events-web/server/events"
)

type MapVars struct {
	Pins  []events.GroupPin
	Error string
}

func (h *handler) Map(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	apiAuth := events.Auth{SessionToken: auth.GetSession(r).Token}

	vars := MapVars{}

	pins, err := h.API.GetGroupPins(ctx, apiAuth)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to load group pins", slog.Any("err", err))
		vars.Error = "Failed to load the group map"
	}
	vars.Pins = pins

	if err = h.Templates().ExecuteTemplate(w, "map.gohtml", vars); err != nil {
		slog.ErrorContext(ctx, "Failed to render map template", slog.Any("err", err))
	}
}
