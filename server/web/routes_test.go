package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tampadev/events-web/server"
	"github.com/tampadev/events-web/server/auth"
	"github.com/tampadev/events-web/server/events"
)

// newTestHandler spins up a stub upstream API and returns the full route tree
// pointed at it.
func newTestHandler(t *testing.T, upstream http.Handler) http.Handler {
	t.Helper()

	api := httptest.NewServer(upstream)
	t.Cleanup(api.Close)

	srv, err := server.New(server.Config{
		Environment: server.EnvironmentProduction,
		API:         events.Config{BaseURL: api.URL},
		Auth:        auth.Config{PublicURL: "https://events.test"},
	})
	require.NoError(t, err)

	return Routes(srv)
}

func postForm(handler http.Handler, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	rq := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	rq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, cookie := range cookies {
		rq.AddCookie(cookie)
	}
	handler.ServeHTTP(rec, rq)
	return rec
}

func TestAnonymousRedirectsToLogin(t *testing.T) {
	handler := newTestHandler(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected upstream call: %s %s", r.Method, r.URL.Path)
	}))

	tests := []struct {
		path     string
		location string
	}{
		{"/profile", "/login?returnTo=%2Fprofile"},
		{"/profile/settings", "/login?returnTo=%2Fprofile%2Fsettings"},
		{"/groups/tampa-devs/manage", "/login?returnTo=%2Fgroups%2Ftampa-devs%2Fmanage"},
		{"/admin", "/admin/login?returnTo=%2Fadmin"},
		{"/admin/group-requests", "/admin/login?returnTo=%2Fadmin%2Fgroup-requests"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, http.StatusFound, rec.Code)
			assert.Equal(t, tt.location, rec.Header().Get("Location"))
		})
	}
}

func TestExpiredSessionRedirectsToLogin(t *testing.T) {
	handler := newTestHandler(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	rec := httptest.NewRecorder()
	rq := httptest.NewRequest(http.MethodGet, "/profile", nil)
	rq.AddCookie(&http.Cookie{Name: "session", Value: "stale"})
	handler.ServeHTTP(rec, rq)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login?returnTo=%2Fprofile", rec.Header().Get("Location"))
}

func TestUnknownActionShortCircuits(t *testing.T) {
	paths := []string{
		"/profile/settings",
		"/groups/tampa-devs/manage",
		"/groups/tampa-devs/manage/events/e1",
		"/groups/tampa-devs/manage/checkins",
		"/admin/groups/g1",
		"/admin/group-requests",
	}

	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			var hits atomic.Int32
			handler := newTestHandler(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				hits.Add(1)
				w.WriteHeader(http.StatusInternalServerError)
			}))

			rec := postForm(handler, path,
				url.Values{"intent": {"definitelyNotAnAction"}},
				&http.Cookie{Name: "session", Value: "tok"},
			)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, `{"error": "Unknown action"}`, rec.Body.String())
			assert.Zero(t, hits.Load())
		})
	}
}

func TestLogoutClearsSessionCookies(t *testing.T) {
	var revoked atomic.Bool
	handler := newTestHandler(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete && r.URL.Path == "/auth/sessions/current" {
			revoked.Store(true)
			w.WriteHeader(http.StatusNoContent)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))

	rec := postForm(handler, "/auth/logout", url.Values{}, &http.Cookie{Name: "session", Value: "tok"})

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	assert.True(t, revoked.Load())

	cleared := map[string]bool{}
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == "session" || cookie.Name == "session_staging" {
			assert.Empty(t, cookie.Value)
			assert.Negative(t, cookie.MaxAge)
			cleared[cookie.Name] = true
		}
	}
	assert.True(t, cleared["session"], "session cookie not cleared")
	assert.True(t, cleared["session_staging"], "session_staging cookie not cleared")
}

func TestUpdateGroupParsesTags(t *testing.T) {
	var captured struct {
		Tags []string `json:"tags"`
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /groups/tampa-devs", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(events.Group{ID: "g1", URLName: "tampa-devs", Name: "Tampa Devs"})
	})
	mux.HandleFunc("PATCH /groups/g1", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		_ = json.NewEncoder(w).Encode(events.Group{ID: "g1", URLName: "tampa-devs", Name: "Tampa Devs"})
	})
	handler := newTestHandler(t, mux)

	rec := postForm(handler, "/groups/tampa-devs/manage",
		url.Values{
			"intent": {"update"},
			"name":   {"Tampa Devs"},
			"tags":   {"cloud, ai, web"},
		},
		&http.Cookie{Name: "session", Value: "tok"},
	)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"cloud", "ai", "web"}, captured.Tags)

	var body struct {
		Success bool `json:"success"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
}

func TestPublicProfileNotFound(t *testing.T) {
	handler := newTestHandler(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/p/ghost", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "This page doesn't exist")
}

func TestPublicProfile(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /users/jane", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(events.User{
			ID:       "u1",
			Name:     "Jane Doe",
			Username: "jane",
			Bio:      "Gopher",
		})
	})
	handler := newTestHandler(t, mux)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/p/jane", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Jane Doe")
	assert.Contains(t, rec.Body.String(), "@jane")
}

func TestCheckinPage(t *testing.T) {
	handler := newTestHandler(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected upstream call: %s %s", r.Method, r.URL.Path)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/checkin/ABC123", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ABC123")
}

func TestCheckinURL(t *testing.T) {
	rq := httptest.NewRequest(http.MethodGet, "http://events.local/groups/x/manage/checkins/ABC123/qr.png", nil)

	assert.Equal(t, "https://events.test/checkin/ABC123", checkinURL("https://events.test", rq, "ABC123"))
	assert.Equal(t, "https://events.test/checkin/ABC123", checkinURL("https://events.test/", rq, "ABC123"))
	assert.Equal(t, "http://events.local/checkin/ABC123", checkinURL("", rq, "ABC123"))
}

func TestCheckinCodeQR(t *testing.T) {
	handler := newTestHandler(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected upstream call: %s %s", r.Method, r.URL.Path)
	}))

	rec := httptest.NewRecorder()
	rq := httptest.NewRequest(http.MethodGet, "/groups/tampa-devs/manage/checkins/ABC123/qr.png", nil)
	rq.AddCookie(&http.Cookie{Name: "session", Value: "tok"})
	handler.ServeHTTP(rec, rq)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Body.Bytes())
}

func TestIndex(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /groups", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]events.Group{
			{ID: "g1", Name: "Tampa Devs", URLName: "tampa-devs", Active: true, Display: true},
			{ID: "g2", Name: "Hidden Group", URLName: "hidden", Active: true, Display: false},
		})
	})
	mux.HandleFunc("GET /events", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]events.Event{})
	})
	handler := newTestHandler(t, mux)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Tampa Devs")
	assert.NotContains(t, rec.Body.String(), "Hidden Group")
}
