package events

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/tampadev/events-web/internal/omit"
)

type EventUpdate struct {
	Title       omit.Omit[string]    `json:"title,omitzero"`
	Description omit.Omit[string]    `json:"description,omitzero"`
	StartTime   omit.Omit[time.Time] `json:"startTime,omitzero"`
	EndTime     omit.Omit[time.Time] `json:"endTime,omitzero"`
	Timezone    omit.Omit[string]    `json:"timezone,omitzero"`
	EventType   omit.Omit[string]    `json:"eventType,omitzero"`
	Status      omit.Omit[string]    `json:"status,omitzero"`
	Venue       omit.Omit[Venue]     `json:"venue,omitzero"`
}

type CheckinCodeCreate struct {
	MaxUses   *int       `json:"maxUses,omitempty"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

func (c *Client) GetEvent(ctx context.Context, auth Auth, eventID string) (*Event, error) {
	var event Event
	if err := c.get(ctx, auth, "/events/"+url.PathEscape(eventID), nil, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

// GetEvents returns all public events within the given time range, for the
// calendar page.
func (c *Client) GetEvents(ctx context.Context, auth Auth, from time.Time, to time.Time) ([]Event, error) {
	query := url.Values{
		"from": {from.Format(time.RFC3339)},
		"to":   {to.Format(time.RFC3339)},
	}

	var evts []Event
	if err := c.get(ctx, auth, "/events", query, &evts); err != nil {
		return nil, err
	}
	return evts, nil
}

func (c *Client) GetGroupEvents(ctx context.Context, auth Auth, groupID string) ([]Event, error) {
	var evts []Event
	if err := c.get(ctx, auth, fmt.Sprintf("/groups/%s/events", url.PathEscape(groupID)), nil, &evts); err != nil {
		return nil, err
	}
	return evts, nil
}

func (c *Client) UpdateEvent(ctx context.Context, auth Auth, eventID string, update EventUpdate) (*Event, error) {
	var event Event
	if err := c.patch(ctx, auth, "/events/"+url.PathEscape(eventID), update, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

func (c *Client) CancelEvent(ctx context.Context, auth Auth, eventID string) error {
	return c.post(ctx, auth, fmt.Sprintf("/events/%s/cancel", url.PathEscape(eventID)), nil, nil)
}

func (c *Client) GetGroupCheckinCodes(ctx context.Context, auth Auth, groupID string) ([]CheckinCode, error) {
	var codes []CheckinCode
	if err := c.get(ctx, auth, fmt.Sprintf("/groups/%s/checkin-codes", url.PathEscape(groupID)), nil, &codes); err != nil {
		return nil, err
	}
	return codes, nil
}

func (c *Client) CreateCheckinCode(ctx context.Context, auth Auth, eventID string, create CheckinCodeCreate) (*CheckinCode, error) {
	var code CheckinCode
	if err := c.post(ctx, auth, fmt.Sprintf("/events/%s/checkin-codes", url.PathEscape(eventID)), create, &code); err != nil {
		return nil, err
	}
	return &code, nil
}

func (c *Client) DeleteCheckinCode(ctx context.Context, auth Auth, codeID string) error {
	return c.delete(ctx, auth, "/checkin-codes/"+url.PathEscape(codeID))
}
