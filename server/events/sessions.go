package events

import (
	"context"
)

// CreateSession exchanges a bearer token obtained from the OAuth flow for an
// opaque session token. The token ends up in the session cookie; everything
// after login authenticates with it.
func (c *Client) CreateSession(ctx context.Context, auth Auth) (*Session, error) {
	var session Session
	if err := c.post(ctx, auth, "/auth/sessions", nil, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// RevokeSession invalidates the session behind the forwarded cookie. Logout
// calls this best-effort before clearing cookies.
func (c *Client) RevokeSession(ctx context.Context, auth Auth) error {
	return c.delete(ctx, auth, "/auth/sessions/current")
}
