package events

import (
	"context"
	"net/url"
)

func (c *Client) GetLeaderboard(ctx context.Context, auth Auth, period string) ([]LeaderboardEntry, error) {
	query := url.Values{}
	if period != "" {
		query.Set("period", period)
	}

	var entries []LeaderboardEntry
	if err := c.get(ctx, auth, "/leaderboard", query, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
