package events

import (
	"time"
)

const (
	RoleUser       = "user"
	RoleAdmin      = "admin"
	RoleSuperadmin = "superadmin"
)

const (
	MemberRoleOwner  = "owner"
	MemberRoleAdmin  = "admin"
	MemberRoleMember = "member"
)

const (
	EventStatusDraft     = "draft"
	EventStatusActive    = "active"
	EventStatusCancelled = "cancelled"
)

type User struct {
	ID             string            `json:"id"`
	Email          string            `json:"email"`
	Name           string            `json:"name"`
	Username       string            `json:"username"`
	AvatarURL      string            `json:"avatarUrl"`
	HeroImageURL   string            `json:"heroImageUrl"`
	Role           string            `json:"role"`
	Bio            string            `json:"bio"`
	ThemeColor     string            `json:"themeColor"`
	SocialLinks    map[string]string `json:"socialLinks"`
	Badges         []Badge           `json:"badges"`
	Achievements   []Achievement     `json:"achievements"`
	FollowerCount  int               `json:"followerCount"`
	FollowingCount int               `json:"followingCount"`
	JoinedAt       time.Time         `json:"joinedAt"`
}

type Badge struct {
	Slug  string `json:"slug"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

type Achievement struct {
	Key           string     `json:"key"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	Icon          string     `json:"icon"`
	Color         string     `json:"color"`
	Target        int        `json:"target"`
	Current       int        `json:"current"`
	RarityPercent float64    `json:"rarityPercent"`
	UnlockedAt    *time.Time `json:"unlockedAt"`
}

type Group struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	URLName     string            `json:"urlname"`
	Platform    string            `json:"platform"`
	PlatformID  string            `json:"platformId"`
	Description string            `json:"description"`
	Website     string            `json:"website"`
	LogoURL     string            `json:"logoUrl"`
	Tags        []string          `json:"tags"`
	SocialLinks map[string]string `json:"socialLinks"`
	MemberCount int               `json:"memberCount"`
	EventCount  int               `json:"eventCount"`
	Active      bool              `json:"active"`
	Display     bool              `json:"display"`
	Featured    bool              `json:"featured"`
	SyncedAt    *time.Time        `json:"syncedAt"`
}

type GroupMember struct {
	ID      string `json:"id"`
	GroupID string `json:"groupId"`
	Role    string `json:"role"`
	User    User   `json:"user"`
}

type Venue struct {
	Name    string  `json:"name"`
	Address string  `json:"address"`
	City    string  `json:"city"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

type Event struct {
	ID           string      `json:"id"`
	GroupID      string      `json:"groupId"`
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	StartTime    time.Time   `json:"startTime"`
	EndTime      time.Time   `json:"endTime"`
	Timezone     string      `json:"timezone"`
	EventType    string      `json:"eventType"`
	Venue        *Venue      `json:"venue"`
	Status       string      `json:"status"`
	RSVP         RSVPSummary `json:"rsvp"`
	CheckinCount int         `json:"checkinCount"`
	URL          string      `json:"url"`
}

type RSVPSummary struct {
	Yes      int `json:"yes"`
	No       int `json:"no"`
	Waitlist int `json:"waitlist"`
}

type CheckinCode struct {
	ID          string     `json:"id"`
	EventID     string     `json:"eventId"`
	Code        string     `json:"code"`
	MaxUses     *int       `json:"maxUses"`
	CurrentUses int        `json:"currentUses"`
	ExpiresAt   *time.Time `json:"expiresAt"`
	CreatedAt   time.Time  `json:"createdAt"`
}

type OAuthGrant struct {
	GrantID    string    `json:"grantId"`
	ClientID   string    `json:"clientId"`
	ClientName string    `json:"clientName"`
	Scopes     []string  `json:"scopes"`
	GrantedAt  time.Time `json:"grantedAt"`
}

type APIToken struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	TokenPrefix string     `json:"tokenPrefix"`
	Scopes      []string   `json:"scopes"`
	LastUsedAt  *time.Time `json:"lastUsedAt"`
	ExpiresAt   *time.Time `json:"expiresAt"`
}

type LeaderboardEntry struct {
	Rank     int  `json:"rank"`
	User     User `json:"user"`
	Points   int  `json:"points"`
	CheckIns int  `json:"checkIns"`
}

type GroupRequest struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	URLName     string    `json:"urlname"`
	Platform    string    `json:"platform"`
	PlatformURL string    `json:"platformUrl"`
	Reason      string    `json:"reason"`
	RequestedBy User      `json:"requestedBy"`
	CreatedAt   time.Time `json:"createdAt"`
}

type AdminStats struct {
	Users    int `json:"users"`
	Groups   int `json:"groups"`
	Events   int `json:"events"`
	CheckIns int `json:"checkIns"`
	Requests int `json:"requests"`
}

type GroupPin struct {
	GroupID string  `json:"groupId"`
	Name    string  `json:"name"`
	URLName string  `json:"urlname"`
	City    string  `json:"city"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}
