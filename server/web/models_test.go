package web

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tampadev/events-web/server/events"
)

func intPtr(i int) *int {
	return &i
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestCheckinCodeStatus(t *testing.T) {
	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		code     events.CheckinCode
		expected CodeStatus
	}{
		{
			name:     "no limits",
			code:     events.CheckinCode{},
			expected: CodeStatusActive,
		},
		{
			name:     "under max uses",
			code:     events.CheckinCode{MaxUses: intPtr(5), CurrentUses: 4},
			expected: CodeStatusActive,
		},
		{
			name:     "at max uses",
			code:     events.CheckinCode{MaxUses: intPtr(5), CurrentUses: 5},
			expected: CodeStatusMaxedOut,
		},
		{
			name:     "over max uses",
			code:     events.CheckinCode{MaxUses: intPtr(5), CurrentUses: 6},
			expected: CodeStatusMaxedOut,
		},
		{
			name:     "not yet expired",
			code:     events.CheckinCode{ExpiresAt: timePtr(now.Add(time.Hour))},
			expected: CodeStatusActive,
		},
		{
			name:     "expired",
			code:     events.CheckinCode{ExpiresAt: timePtr(now.Add(-time.Hour))},
			expected: CodeStatusExpired,
		},
		{
			name: "maxed out wins over expired",
			code: events.CheckinCode{
				MaxUses:     intPtr(5),
				CurrentUses: 5,
				ExpiresAt:   timePtr(now.Add(-time.Hour)),
			},
			expected: CodeStatusMaxedOut,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, checkinCodeStatus(now, tt.code))
		})
	}
}

func TestParseTags(t *testing.T) {
	tests := []struct {
		raw      string
		expected []string
	}{
		{"cloud, ai, web", []string{"cloud", "ai", "web"}},
		{"cloud,ai,web", []string{"cloud", "ai", "web"}},
		{" cloud ,, ai ", []string{"cloud", "ai"}},
		{"", nil},
		{" , ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseTags(tt.raw))
		})
	}
}

func TestParseSocialLinks(t *testing.T) {
	form := url.Values{
		"social_twitter": {"https://twitter.com/jane"},
		"social_github":  {" https://github.com/jane "},
		"social_discord": {""},
		"unrelated":      {"ignored"},
	}

	assert.Equal(t, map[string]string{
		"twitter": "https://twitter.com/jane",
		"github":  "https://github.com/jane",
	}, parseSocialLinks(form.Get))
}

func TestRequiresAuth(t *testing.T) {
	assert.True(t, requiresAuth("/profile"))
	assert.True(t, requiresAuth("/profile/settings"))
	assert.True(t, requiresAuth("/groups/tampa-devs/manage"))
	assert.True(t, requiresAuth("/admin"))
	assert.True(t, requiresAuth("/admin/group-requests"))

	assert.False(t, requiresAuth("/"))
	assert.False(t, requiresAuth("/calendar"))
	assert.False(t, requiresAuth("/p/jane"))
	assert.False(t, requiresAuth("/admin/login"))
	assert.False(t, requiresAuth("/checkin/ABC123"))
}
