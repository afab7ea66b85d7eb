package web

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tampadev/events-web/server/auth"
	"github.com/tampadev/events-web/server/events"
)

// Cookie names for both deployments. Logout clears both so a stale staging
// session on the shared parent domain can never linger.
var sessionCookieNames = []string{"session", "session_staging"}

// auth reads the session cookie and stores its token in the request context.
// The token is never validated here; loaders find out from the upstream API
// whether it is still good.
func (h *handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var session auth.Session
		if !strings.HasPrefix(r.URL.Path, "/login/callback") {
			if cookie, err := r.Cookie(h.Cfg.SessionCookieName()); err == nil && cookie.Value != "" {
				session = auth.Session{Token: cookie.Value}
			}

			if session.IsAnonymous() && requiresAuth(r.URL.Path) {
				h.forceLogin(w, r)
				return
			}
		}

		r = r.WithContext(auth.SetSession(ctx, session))
		next.ServeHTTP(w, r)
	})
}

func requiresAuth(path string) bool {
	if path == "/admin/login" {
		return false
	}
	return strings.HasPrefix(path, "/profile") ||
		strings.HasPrefix(path, "/groups/") ||
		strings.HasPrefix(path, "/admin")
}

// forceLogin redirects to the matching login route, preserving the original
// path so the callback can send the user back.
func (h *handler) forceLogin(w http.ResponseWriter, r *http.Request) {
	loginPath := "/login"
	if strings.HasPrefix(r.URL.Path, "/admin") {
		loginPath = "/admin/login"
	}

	u := url.URL{
		Path:     loginPath,
		RawQuery: url.Values{"returnTo": {r.URL.Path}}.Encode(),
	}
	http.Redirect(w, r, u.String(), http.StatusFound)
}

func (h *handler) Login(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	redirect := query.Get("returnTo")
	if redirect == "" {
		if r.URL.Path == "/admin/login" {
			redirect = "/admin"
		} else {
			redirect = "/profile"
		}
	}

	state := h.Auth.NewState(redirect)

	expiration := time.Now().Add(auth.MaxLoginFlowDuration)
	addOauthCookie(w, state, expiration)
	http.Redirect(w, r, h.Auth.Config().AuthCodeURL(state), http.StatusTemporaryRedirect)
}

func (h *handler) LoginCallback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()

	oauthState, _ := r.Cookie("oauthstate")
	state := query.Get("state")
	code := query.Get("code")

	if oauthState == nil || state != oauthState.Value {
		http.Error(w, "Invalid OAuth state", http.StatusBadRequest)
		return
	}

	redirectURL, ok := h.Auth.GetState(state)
	if !ok {
		http.Error(w, "Unknown OAuth state", http.StatusBadRequest)
		return
	}

	token, err := h.Auth.Config().Exchange(ctx, code)
	if err != nil {
		slog.ErrorContext(ctx, "failed to exchange OAuth code", slog.Any("err", err))
		http.Error(w, "Failed to exchange OAuth code", http.StatusInternalServerError)
		return
	}

	session, err := h.API.CreateSession(ctx, events.Auth{BearerToken: token.AccessToken})
	if err != nil {
		slog.ErrorContext(ctx, "failed to create session", slog.Any("err", err))
		http.Error(w, "Failed to create session", http.StatusInternalServerError)
		return
	}

	h.addSessionCookie(w, session.Token)
	http.Redirect(w, r, redirectURL, http.StatusFound)
}

// Logout revokes the upstream session best-effort, clears both session
// cookies, and sends the user home.
func (h *handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	session := auth.GetSession(r)
	if !session.IsAnonymous() {
		if err := h.API.RevokeSession(ctx, events.Auth{SessionToken: session.Token}); err != nil {
			slog.WarnContext(ctx, "failed to revoke session", slog.Any("err", err))
		}
	}

	h.clearSessionCookies(w)
	http.Redirect(w, r, "/", http.StatusFound)
}

// DevAuth lets local development set a session token directly, bypassing the
// OAuth flow. Not registered in production.
func (h *handler) DevAuth(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if h.Cfg.IsProduction() {
		h.NotFound(w, r)
		return
	}

	if r.Method == http.MethodGet {
		if err := h.Templates().ExecuteTemplate(w, "dev_auth.gohtml", nil); err != nil {
			slog.ErrorContext(ctx, "Failed to render dev auth template", slog.Any("err", err))
		}
		return
	}

	token := r.FormValue("token")
	if token == "" {
		http.Error(w, "Missing token", http.StatusBadRequest)
		return
	}

	h.addSessionCookie(w, token)
	http.Redirect(w, r, "/profile", http.StatusFound)
}

func addOauthCookie(w http.ResponseWriter, state string, expiration time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     "oauthstate",
		Value:    state,
		Expires:  expiration,
		SameSite: http.SameSiteLaxMode,
		HttpOnly: true,
		Path:     "/login/callback",
	})
}

func removeOauthCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     "oauthstate",
		Value:    "",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		SameSite: http.SameSiteLaxMode,
		HttpOnly: true,
		Path:     "/login/callback",
	})
}

func (h *handler) addSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.Cfg.SessionCookieName(),
		Value:    token,
		MaxAge:   int(auth.SessionDuration.Seconds()),
		Domain:   h.Cfg.Auth.CookieDomain,
		SameSite: http.SameSiteLaxMode,
		Secure:   h.Cfg.IsProduction(),
		HttpOnly: true,
		Path:     "/",
	})

	removeOauthCookie(w)
}

func (h *handler) clearSessionCookies(w http.ResponseWriter) {
	for _, name := range sessionCookieNames {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			MaxAge:   -1,
			Domain:   h.Cfg.Auth.CookieDomain,
			SameSite: http.SameSiteLaxMode,
			Secure:   h.Cfg.IsProduction(),
			HttpOnly: true,
			Path:     "/",
		})
	}
}
