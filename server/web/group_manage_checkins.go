package web

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/yeqown/go-qrcode/v2"
	"github.com/yeqown/go-qrcode/writer/standard"

	"github.com/tampadev/events-web/internal/tsync"
	"github.com/tampadev/events-web/internal/xio"
	"github.com/tampadev/events-web/server/auth"
	"github.com/tampadev/events-web/server/events"
)

type GroupManageCheckinsVars struct {
	Group
	Codes  []CheckinCode
	Events []Event
	Error  string
}

func (h *handler) GroupManageCheckins(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	apiAuth := events.Auth{SessionToken: auth.GetSession(r).Token}

	slug := r.PathValue("slug")

	group, err := h.API.GetGroup(ctx, apiAuth, slug)
	if err != nil {
		if errors.Is(err, events.ErrNotFound) {
			h.NotFound(w, r)
			return
		}
		if errors.Is(err, events.ErrUnauthorized) {
			h.forceLogin(w, r)
			return
		}

		slog.ErrorContext(ctx, "Failed to fetch group", slog.String("slug", slug), slog.Any("err", err))
		http.Error(w, "Failed to load group", http.StatusInternalServerError)
		return
	}

	var (
		codes       []events.CheckinCode
		groupEvents []events.Event
	)

	eg, egCtx := tsync.ErrorGroupWithContext(ctx)
	eg.Go(func() error {
		var err error
		codes, err = h.API.GetGroupCheckinCodes(egCtx, apiAuth, group.ID)
		return err
	})
	eg.Go(func() error {
		var err error
		groupEvents, err = h.API.GetGroupEvents(egCtx, apiAuth, group.ID)
		return err
	})

	var errorMessage string
	if err = eg.Wait(); err != nil {
		if errors.Is(err, events.ErrUnauthorized) {
			h.forceLogin(w, r)
			return
		}

		slog.ErrorContext(ctx, "Failed to fetch checkin codes", slog.String("slug", slug), slog.Any("err", err))
		errorMessage = "Failed to load checkin codes"
	}

	now := time.Now()
	vars := GroupManageCheckinsVars{
		Group: newGroup(*group),
		Error: errorMessage,
	}
	for _, code := range codes {
		vars.Codes = append(vars.Codes, newCheckinCode(now, code, group.URLName))
	}
	for _, event := range groupEvents {
		vars.Events = append(vars.Events, newEvent(event, group.URLName))
	}

	if err = h.Templates().ExecuteTemplate(w, "group_manage_checkins.gohtml", vars); err != nil {
		slog.ErrorContext(ctx, "Failed to render checkins template", slog.Any("err", err))
	}
}

type checkinCommand interface {
	checkinCommand()
}

type generateCodeCommand struct {
	EventID   string
	MaxUses   *int
	ExpiresAt *time.Time
}

type deleteCodeCommand struct {
	CodeID string
}

func (generateCodeCommand) checkinCommand() {}
func (deleteCodeCommand) checkinCommand()   {}

func parseCheckinCommand(form url.Values) (checkinCommand, error) {
	switch form.Get("intent") {
	case "generateCode":
		cmd := generateCodeCommand{
			EventID: form.Get("eventId"),
		}
		if cmd.EventID == "" {
			return nil, errors.New("missing event")
		}

		if raw := form.Get("maxUses"); raw != "" {
			maxUses, err := strconv.Atoi(raw)
			if err != nil || maxUses <= 0 {
				return nil, errors.New("invalid max uses")
			}
			cmd.MaxUses = &maxUses
		}
		if raw := form.Get("expiresAt"); raw != "" {
			expiresAt, err := time.Parse(time.RFC3339, raw)
			if err != nil {
				// datetime-local inputs submit without a zone.
				expiresAt, err = time.ParseInLocation("2006-01-02T15:04", raw, time.Local)
			}
			if err != nil {
				return nil, errors.New("invalid expiry")
			}
			cmd.ExpiresAt = &expiresAt
		}

		return cmd, nil
	case "deleteCode":
		return deleteCodeCommand{
			CodeID: form.Get("codeId"),
		}, nil
	default:
		return nil, nil
	}
}

func (h *handler) GroupManageCheckinsAction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	apiAuth := events.Auth{SessionToken: auth.GetSession(r).Token}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	command, err := parseCheckinCommand(r.PostForm)
	if err != nil {
		respondActionError(w, err)
		return
	}
	if command == nil {
		respondUnknownAction(w)
		return
	}

	switch cmd := command.(type) {
	case generateCodeCommand:
		code, err := h.API.CreateCheckinCode(ctx, apiAuth, cmd.EventID, events.CheckinCodeCreate{
			MaxUses:   cmd.MaxUses,
			ExpiresAt: cmd.ExpiresAt,
		})
		if err != nil {
			respondActionError(w, err)
			return
		}
		respondActionSuccess(w, map[string]any{"code": code})

	case deleteCodeCommand:
		if err = h.API.DeleteCheckinCode(ctx, apiAuth, cmd.CodeID); err != nil {
			respondActionError(w, err)
			return
		}
		respondActionSuccess(w, nil)
	}
}

// checkinURL builds the absolute redemption URL a QR code encodes. Without a
// configured public URL it falls back to the request host so scanned codes
// still resolve.
func checkinURL(publicURL string, r *http.Request, code string) string {
	base := strings.TrimSuffix(publicURL, "/")
	if base == "" {
		scheme := "https"
		if r.TLS == nil {
			scheme = "http"
		}
		base = scheme + "://" + r.Host
	}
	return base + "/checkin/" + code
}

// CheckinCodeQR renders a checkin code as a PNG QR code pointing at the
// redemption page.
func (h *handler) CheckinCodeQR(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	code := r.PathValue("code")

	qr, err := qrcode.New(checkinURL(h.Cfg.Auth.PublicURL, r, code))
	if err != nil {
		slog.ErrorContext(ctx, "Failed to create qrcode", slog.Any("err", err))
		http.Error(w, "Failed to create qrcode", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")

	qrW := standard.NewWithWriter(xio.NewResponseWriteCloser(w),
		standard.WithBgTransparent(),
		standard.WithBuiltinImageEncoder(standard.PNG_FORMAT),
	)
	defer func() {
		_ = qrW.Close()
	}()

	if err = qr.Save(qrW); err != nil {
		slog.ErrorContext(ctx, "Failed to save qrcode", slog.Any("err", err))
	}
}

type CheckinVars struct {
	Code string
}

// Checkin is the page the QR code points at; it shows the code so attendees
// can redeem it in the app.
func (h *handler) Checkin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.Templates().ExecuteTemplate(w, "checkin.gohtml", CheckinVars{
		Code: r.PathValue("code"),
	}); err != nil {
		slog.ErrorContext(ctx, "Failed to render checkin template", slog.Any("err", err))
	}
}
