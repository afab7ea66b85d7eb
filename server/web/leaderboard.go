package web

import (
	"log/slog"
	"net/http"

	"github.com/tampadev/events-web/internal/xquery"
	"github.com/tampadev/events-web/server/auth"
	"github.com/tampadev/events-web/server/events"
)

type LeaderboardRow struct {
	events.LeaderboardEntry
	AvatarURL  string
	ProfileURL string
}

type LeaderboardVars struct {
	Period  string
	Entries []LeaderboardRow
	Error   string
}

func (h *handler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()
	apiAuth := events.Auth{SessionToken: auth.GetSession(r).Token}

	period := xquery.ParseString(query, "period", "all-time")

	vars := LeaderboardVars{
		Period: period,
	}

	entries, err := h.API.GetLeaderboard(ctx, apiAuth, period)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to load leaderboard", slog.String("period", period), slog.Any("err", err))
		vars.Error = "Failed to load the leaderboard"
	}
	for _, entry := range entries {
		vars.Entries = append(vars.Entries, LeaderboardRow{
			LeaderboardEntry: entry,
			AvatarURL:        imageURL(entry.User.AvatarURL),
			ProfileURL:       "/p/" + entry.User.Username,
		})
	}

	if err = h.Templates().ExecuteTemplate(w, "leaderboard.gohtml", vars); err != nil {
		slog.ErrorContext(ctx, "Failed to render leaderboard template", slog.Any("err", err))
	}
}
