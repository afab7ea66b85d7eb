package web

import (
	"fmt"
	"strings"
	"time"

	"github.com/tampadev/events-web/server/events"
)

type CodeStatus string

const (
	CodeStatusActive   CodeStatus = "active"
	CodeStatusMaxedOut CodeStatus = "maxed-out"
	CodeStatusExpired  CodeStatus = "expired"
)

// checkinCodeStatus derives the displayed state of a checkin code. A code that
// hit its use cap counts as maxed-out even when it is also past its expiry.
func checkinCodeStatus(now time.Time, code events.CheckinCode) CodeStatus {
	if code.MaxUses != nil && code.CurrentUses >= *code.MaxUses {
		return CodeStatusMaxedOut
	}
	if code.ExpiresAt != nil && code.ExpiresAt.Before(now) {
		return CodeStatusExpired
	}
	return CodeStatusActive
}

// parseTags splits a comma-separated tag field into trimmed, non-empty tags.
func parseTags(raw string) []string {
	var tags []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		tags = append(tags, part)
	}
	return tags
}

// parseSocialLinks collects social_<network> form fields into a link map,
// dropping empty values.
func parseSocialLinks(formValue func(string) string) map[string]string {
	links := map[string]string{}
	for _, network := range []string{"twitter", "linkedin", "github", "instagram", "discord"} {
		if value := strings.TrimSpace(formValue("social_" + network)); value != "" {
			links[network] = value
		}
	}
	return links
}

func newGroup(group events.Group) Group {
	return Group{
		Group:     group,
		ManageURL: fmt.Sprintf("/groups/%s/manage", group.URLName),
		LogoURL:   imageURL(group.LogoURL),
	}
}

type Group struct {
	events.Group
	ManageURL string
	LogoURL   string
}

func newEvent(event events.Event, groupSlug string) Event {
	e := Event{
		Event: event,
	}
	if groupSlug != "" {
		e.ManageURL = fmt.Sprintf("/groups/%s/manage/events/%s", groupSlug, event.ID)
	}
	return e
}

type Event struct {
	events.Event
	ManageURL string
}

func newMember(member events.GroupMember) Member {
	return Member{
		GroupMember: member,
		AvatarURL:   imageURL(member.User.AvatarURL),
		ProfileURL:  fmt.Sprintf("/p/%s", member.User.Username),
	}
}

type Member struct {
	events.GroupMember
	AvatarURL  string
	ProfileURL string
}

func newCheckinCode(now time.Time, code events.CheckinCode, groupSlug string) CheckinCode {
	return CheckinCode{
		CheckinCode: code,
		Status:      checkinCodeStatus(now, code),
		QRURL:       fmt.Sprintf("/groups/%s/manage/checkins/%s/qr.png", groupSlug, code.Code),
	}
}

type CheckinCode struct {
	events.CheckinCode
	Status CodeStatus
	QRURL  string
}

func newProfileUser(user events.User) ProfileUser {
	return ProfileUser{
		User:         user,
		AvatarURL:    imageURL(user.AvatarURL),
		HeroImageURL: imageURL(user.HeroImageURL),
		ProfileURL:   fmt.Sprintf("/p/%s", user.Username),
		FollowingURL: fmt.Sprintf("/p/%s/following", user.Username),
	}
}

type ProfileUser struct {
	events.User
	AvatarURL    string
	HeroImageURL string
	ProfileURL   string
	FollowingURL string
}
