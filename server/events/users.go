package events

import (
	"context"
	"fmt"
	"net/url"
)

func (c *Client) GetUser(ctx context.Context, auth Auth, username string) (*User, error) {
	var user User
	if err := c.get(ctx, auth, "/users/"+url.PathEscape(username), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) GetUserFollowing(ctx context.Context, auth Auth, username string) ([]User, error) {
	var users []User
	if err := c.get(ctx, auth, fmt.Sprintf("/users/%s/following", url.PathEscape(username)), nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// CheckUsername reports whether the given username is still available.
// Usernames are globally unique; the settings form checks before submitting.
func (c *Client) CheckUsername(ctx context.Context, auth Auth, username string) (bool, error) {
	query := url.Values{
		"username": {username},
	}

	var result struct {
		Available bool `json:"available"`
	}
	if err := c.get(ctx, auth, "/users/check-username", query, &result); err != nil {
		return false, err
	}
	return result.Available, nil
}
