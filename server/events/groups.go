package events

import (
	"context"
	"fmt"
	"net/url"

	"github.com/tampadev/events-web/internal/omit"
)

// GroupUpdate is a partial update. Fields left unset are omitted from the
// request body so the upstream keeps their current values.
type GroupUpdate struct {
	Name        omit.Omit[string]            `json:"name,omitzero"`
	Description omit.Omit[string]            `json:"description,omitzero"`
	Website     omit.Omit[string]            `json:"website,omitzero"`
	Tags        omit.Omit[[]string]          `json:"tags,omitzero"`
	SocialLinks omit.Omit[map[string]string] `json:"socialLinks,omitzero"`
	LogoURL     omit.Omit[string]            `json:"logoUrl,omitzero"`
	Active      omit.Omit[bool]              `json:"active,omitzero"`
	Display     omit.Omit[bool]              `json:"display,omitzero"`
	Featured    omit.Omit[bool]              `json:"featured,omitzero"`
}

func (c *Client) GetGroup(ctx context.Context, auth Auth, slug string) (*Group, error) {
	var group Group
	if err := c.get(ctx, auth, "/groups/"+url.PathEscape(slug), nil, &group); err != nil {
		return nil, err
	}
	return &group, nil
}

func (c *Client) GetGroups(ctx context.Context, auth Auth) ([]Group, error) {
	var groups []Group
	if err := c.get(ctx, auth, "/groups", nil, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

func (c *Client) GetGroupPins(ctx context.Context, auth Auth) ([]GroupPin, error) {
	var pins []GroupPin
	if err := c.get(ctx, auth, "/groups/map", nil, &pins); err != nil {
		return nil, err
	}
	return pins, nil
}

func (c *Client) UpdateGroup(ctx context.Context, auth Auth, groupID string, update GroupUpdate) (*Group, error) {
	var group Group
	if err := c.patch(ctx, auth, "/groups/"+url.PathEscape(groupID), update, &group); err != nil {
		return nil, err
	}
	return &group, nil
}

func (c *Client) DeleteGroup(ctx context.Context, auth Auth, groupID string) error {
	return c.delete(ctx, auth, "/groups/"+url.PathEscape(groupID))
}

func (c *Client) SyncGroup(ctx context.Context, auth Auth, groupID string) error {
	return c.post(ctx, auth, fmt.Sprintf("/groups/%s/sync", url.PathEscape(groupID)), nil, nil)
}

func (c *Client) GetGroupMembers(ctx context.Context, auth Auth, groupID string) ([]GroupMember, error) {
	var members []GroupMember
	if err := c.get(ctx, auth, fmt.Sprintf("/groups/%s/members", url.PathEscape(groupID)), nil, &members); err != nil {
		return nil, err
	}
	return members, nil
}

func (c *Client) AddGroupMember(ctx context.Context, auth Auth, groupID string, email string, role string) (*GroupMember, error) {
	body := struct {
		Email string `json:"email"`
		Role  string `json:"role"`
	}{
		Email: email,
		Role:  role,
	}

	var member GroupMember
	if err := c.post(ctx, auth, fmt.Sprintf("/groups/%s/members", url.PathEscape(groupID)), body, &member); err != nil {
		return nil, err
	}
	return &member, nil
}

func (c *Client) UpdateGroupMemberRole(ctx context.Context, auth Auth, groupID string, memberID string, role string) error {
	body := struct {
		Role string `json:"role"`
	}{
		Role: role,
	}

	return c.patch(ctx, auth, fmt.Sprintf("/groups/%s/members/%s", url.PathEscape(groupID), url.PathEscape(memberID)), body, nil)
}

func (c *Client) RemoveGroupMember(ctx context.Context, auth Auth, groupID string, memberID string) error {
	return c.delete(ctx, auth, fmt.Sprintf("/groups/%s/members/%s", url.PathEscape(groupID), url.PathEscape(memberID)))
}
