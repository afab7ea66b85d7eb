package web

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/tampadev/events-web/internal/omit"
	"github.com/tampadev/events-web/internal/tsync"
	"github.com/tampadev/events-web/server/auth"
	"github.com/tampadev/events-web/server/events"
)

type ProfileSettingsVars struct {
	ProfileUser
	Grants []events.OAuthGrant
	Tokens []events.APIToken
	Error  string
}

func (h *handler) ProfileSettings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	apiAuth := events.Auth{SessionToken: auth.GetSession(r).Token}

	var (
		user   *events.User
		grants []events.OAuthGrant
		tokens []events.APIToken
	)

	eg, egCtx := tsync.ErrorGroupWithContext(ctx)
	eg.Go(func() error {
		var err error
		user, err = h.API.GetProfile(egCtx, apiAuth)
		return err
	})
	eg.Go(func() error {
		var err error
		grants, err = h.API.GetOAuthGrants(egCtx, apiAuth)
		return err
	})
	eg.Go(func() error {
		var err error
		tokens, err = h.API.GetAPITokens(egCtx, apiAuth)
		return err
	})

	var errorMessage string
	if err := eg.Wait(); err != nil {
		if errors.Is(err, events.ErrUnauthorized) {
			h.forceLogin(w, r)
			return
		}
		if user == nil {
			slog.ErrorContext(ctx, "Failed to fetch profile", slog.Any("err", err))
			http.Error(w, "Failed to load settings", http.StatusInternalServerError)
			return
		}

		slog.ErrorContext(ctx, "Failed to fetch connected accounts", slog.Any("err", err))
		errorMessage = "Failed to load connected accounts or API tokens"
	}

	if err := h.Templates().ExecuteTemplate(w, "profile_settings.gohtml", ProfileSettingsVars{
		ProfileUser: newProfileUser(*user),
		Grants:      grants,
		Tokens:      tokens,
		Error:       errorMessage,
	}); err != nil {
		slog.ErrorContext(ctx, "Failed to render settings template", slog.Any("err", err))
	}
}

// Settings mutations, one type per intent.
type settingsCommand interface {
	settingsCommand()
}

type updateProfileCommand struct {
	Name         string
	Username     string
	Bio          string
	ThemeColor   string
	AvatarURL    string
	HeroImageURL string
	SocialLinks  map[string]string
}

type revokeGrantCommand struct {
	GrantID string
}

type createTokenCommand struct {
	Name   string
	Scopes []string
}

type revokeTokenCommand struct {
	TokenID string
}

type deleteAccountCommand struct{}

func (updateProfileCommand) settingsCommand() {}
func (revokeGrantCommand) settingsCommand()   {}
func (createTokenCommand) settingsCommand()   {}
func (revokeTokenCommand) settingsCommand()   {}
func (deleteAccountCommand) settingsCommand() {}

func parseSettingsCommand(form url.Values) settingsCommand {
	switch form.Get("intent") {
	case "updateProfile":
		return updateProfileCommand{
			Name:         strings.TrimSpace(form.Get("name")),
			Username:     strings.TrimSpace(form.Get("username")),
			Bio:          form.Get("bio"),
			ThemeColor:   form.Get("themeColor"),
			AvatarURL:    form.Get("avatarUrl"),
			HeroImageURL: form.Get("heroImageUrl"),
			SocialLinks:  parseSocialLinks(form.Get),
		}
	case "revokeGrant":
		return revokeGrantCommand{
			GrantID: form.Get("grantId"),
		}
	case "createToken":
		return createTokenCommand{
			Name:   strings.TrimSpace(form.Get("name")),
			Scopes: parseTags(form.Get("scopes")),
		}
	case "revokeToken":
		return revokeTokenCommand{
			TokenID: form.Get("tokenId"),
		}
	case "deleteAccount":
		return deleteAccountCommand{}
	default:
		return nil
	}
}

func (h *handler) ProfileSettingsAction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	apiAuth := events.Auth{SessionToken: auth.GetSession(r).Token}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	command := parseSettingsCommand(r.PostForm)
	if command == nil {
		respondUnknownAction(w)
		return
	}

	switch cmd := command.(type) {
	case updateProfileCommand:
		update := events.ProfileUpdate{
			Name:        omit.New(cmd.Name),
			Bio:         omit.New(cmd.Bio),
			ThemeColor:  omit.New(cmd.ThemeColor),
			SocialLinks: omit.New(cmd.SocialLinks),
		}
		if cmd.Username != "" {
			update.Username = omit.New(cmd.Username)
		}
		if cmd.AvatarURL != "" {
			update.AvatarURL = omit.New(cmd.AvatarURL)
		}
		if cmd.HeroImageURL != "" {
			update.HeroImageURL = omit.New(cmd.HeroImageURL)
		}

		user, err := h.API.UpdateProfile(ctx, apiAuth, update)
		if err != nil {
			respondActionError(w, err)
			return
		}
		respondActionSuccess(w, map[string]any{"user": user})

	case revokeGrantCommand:
		if err := h.API.RevokeOAuthGrant(ctx, apiAuth, cmd.GrantID); err != nil {
			respondActionError(w, err)
			return
		}
		respondActionSuccess(w, nil)

	case createTokenCommand:
		token, err := h.API.CreateAPIToken(ctx, apiAuth, events.APITokenCreate{
			Name:   cmd.Name,
			Scopes: cmd.Scopes,
		})
		if err != nil {
			respondActionError(w, err)
			return
		}
		respondActionSuccess(w, map[string]any{"token": token})

	case revokeTokenCommand:
		if err := h.API.RevokeAPIToken(ctx, apiAuth, cmd.TokenID); err != nil {
			respondActionError(w, err)
			return
		}
		respondActionSuccess(w, nil)

	case deleteAccountCommand:
		if err := h.API.DeleteAccount(ctx, apiAuth); err != nil {
			respondActionError(w, err)
			return
		}
		h.clearSessionCookies(w)
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

// APIUsernameCheck backs the debounced availability check on the settings
// form. It never blocks submission; the upstream still validates.
func (h *handler) APIUsernameCheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	apiAuth := events.Auth{SessionToken: auth.GetSession(r).Token}

	username := strings.TrimSpace(r.URL.Query().Get("username"))
	if username == "" {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "Missing username"})
		return
	}

	available, err := h.API.CheckUsername(ctx, apiAuth, username)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to check username", slog.String("username", username), slog.Any("err", err))
		respondJSON(w, http.StatusOK, map[string]any{"available": false, "error": "Failed to check username"})
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"available": available})
}
