package auth

import (
	"context"
	"math/rand"
	"net/http"
)

var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ1234567890")

// Session is the auth context threaded through every upstream call. It only
// carries the opaque token from the session cookie; the upstream API is the
// authority on whether it is still valid.
type Session struct {
	Token string
}

func (s Session) IsAnonymous() bool {
	return s.Token == ""
}

type sessionKey struct{}

var sessionContextKey = &sessionKey{}

func SetSession(ctx context.Context, session Session) context.Context {
	return context.WithValue(ctx, sessionContextKey, session)
}

func GetSession(r *http.Request) Session {
	session, _ := r.Context().Value(sessionContextKey).(Session)
	return session
}

func RandomStr(length int) string {
	b := make([]rune, length)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}
