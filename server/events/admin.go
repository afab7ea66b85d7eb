package events

import (
	"context"
	"fmt"
	"net/url"
)

func (c *Client) GetAdminStats(ctx context.Context, auth Auth) (*AdminStats, error) {
	var stats AdminStats
	if err := c.get(ctx, auth, "/admin/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *Client) GetAdminGroups(ctx context.Context, auth Auth) ([]Group, error) {
	var groups []Group
	if err := c.get(ctx, auth, "/admin/groups", nil, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

func (c *Client) GetAdminGroup(ctx context.Context, auth Auth, groupID string) (*Group, error) {
	var group Group
	if err := c.get(ctx, auth, "/admin/groups/"+url.PathEscape(groupID), nil, &group); err != nil {
		return nil, err
	}
	return &group, nil
}

func (c *Client) GetGroupRequests(ctx context.Context, auth Auth) ([]GroupRequest, error) {
	var requests []GroupRequest
	if err := c.get(ctx, auth, "/admin/group-requests", nil, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

func (c *Client) ApproveGroupRequest(ctx context.Context, auth Auth, requestID string) (*Group, error) {
	var group Group
	if err := c.post(ctx, auth, fmt.Sprintf("/admin/group-requests/%s/approve", url.PathEscape(requestID)), nil, &group); err != nil {
		return nil, err
	}
	return &group, nil
}

func (c *Client) RejectGroupRequest(ctx context.Context, auth Auth, requestID string, reason string) error {
	body := struct {
		Reason string `json:"reason"`
	}{
		Reason: reason,
	}

	return c.post(ctx, auth, fmt.Sprintf("/admin/group-requests/%s/reject", url.PathEscape(requestID)), body, nil)
}
