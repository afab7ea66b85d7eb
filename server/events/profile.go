package events

import (
	"context"
	"net/url"

	"github.com/tampadev/events-web/internal/omit"
)

type ProfileUpdate struct {
	Name         omit.Omit[string]            `json:"name,omitzero"`
	Username     omit.Omit[string]            `json:"username,omitzero"`
	Bio          omit.Omit[string]            `json:"bio,omitzero"`
	ThemeColor   omit.Omit[string]            `json:"themeColor,omitzero"`
	AvatarURL    omit.Omit[string]            `json:"avatarUrl,omitzero"`
	HeroImageURL omit.Omit[string]            `json:"heroImageUrl,omitzero"`
	SocialLinks  omit.Omit[map[string]string] `json:"socialLinks,omitzero"`
}

type APITokenCreate struct {
	Name   string   `json:"name"`
	Scopes []string `json:"scopes"`
}

// CreatedAPIToken carries the one-time plaintext token alongside the stored
// token metadata. The plaintext is only ever returned on creation.
type CreatedAPIToken struct {
	APIToken
	Token string `json:"token"`
}

func (c *Client) GetProfile(ctx context.Context, auth Auth) (*User, error) {
	var user User
	if err := c.get(ctx, auth, "/profile", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) UpdateProfile(ctx context.Context, auth Auth, update ProfileUpdate) (*User, error) {
	var user User
	if err := c.patch(ctx, auth, "/profile", update, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) DeleteAccount(ctx context.Context, auth Auth) error {
	return c.delete(ctx, auth, "/profile")
}

func (c *Client) GetManagedGroups(ctx context.Context, auth Auth) ([]Group, error) {
	var groups []Group
	if err := c.get(ctx, auth, "/profile/groups", nil, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

func (c *Client) GetOAuthGrants(ctx context.Context, auth Auth) ([]OAuthGrant, error) {
	var grants []OAuthGrant
	if err := c.get(ctx, auth, "/oauth/grants", nil, &grants); err != nil {
		return nil, err
	}
	return grants, nil
}

func (c *Client) RevokeOAuthGrant(ctx context.Context, auth Auth, grantID string) error {
	return c.delete(ctx, auth, "/oauth/grants/"+url.PathEscape(grantID))
}

func (c *Client) GetAPITokens(ctx context.Context, auth Auth) ([]APIToken, error) {
	var tokens []APIToken
	if err := c.get(ctx, auth, "/profile/tokens", nil, &tokens); err != nil {
		return nil, err
	}
	return tokens, nil
}

func (c *Client) CreateAPIToken(ctx context.Context, auth Auth, create APITokenCreate) (*CreatedAPIToken, error) {
	var token CreatedAPIToken
	if err := c.post(ctx, auth, "/profile/tokens", create, &token); err != nil {
		return nil, err
	}
	return &token, nil
}

func (c *Client) RevokeAPIToken(ctx context.Context, auth Auth, tokenID string) error {
	return c.delete(ctx, auth, "/profile/tokens/"+url.PathEscape(tokenID))
}
