package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"os"
	"time"

	"log/slog"

	"github.com/tampadev/events-web/server/auth"
	"github.com/tampadev/events-web/server/events"
	"github.com/tampadev/events-web/server/uploads"
)

var (
	//go:embed static
	static embed.FS

	//go:embed templates/*.gohtml
	templates embed.FS
)

func New(cfg Config) (*Server, error) {
	var staticFS http.FileSystem
	var t func() *template.Template
	var reload *reloadNotifier
	var stopWatcher context.CancelFunc

	if cfg.IsDevelopment() {
		root, err := os.OpenRoot("server/")
		if err != nil {
			return nil, fmt.Errorf("failed to open static directory: %w", err)
		}
		staticFS = http.FS(root.FS())
		t = func() *template.Template {
			return template.Must(template.New("templates").
				Funcs(templateFuncs).
				ParseFS(root.FS(), "templates/*.gohtml"))
		}

		reload = newReloadNotifier()
		stopWatcher = startDevWatcher("server/", reload)
	} else {
		staticFS = http.FS(static)

		st := template.Must(template.New("templates").
			Funcs(templateFuncs).
			ParseFS(templates, "templates/*.gohtml"),
		)

		t = func() *template.Template {
			return st
		}
	}

	webhookClient, err := newWebhookClient(cfg.Notifications)
	if err != nil {
		return nil, fmt.Errorf("failed to create notifications webhook client: %w", err)
	}

	var presigner *uploads.Presigner
	if cfg.Uploads.Bucket != "" {
		presigner, err = uploads.New(context.Background(), cfg.Uploads)
		if err != nil {
			return nil, fmt.Errorf("failed to create upload presigner: %w", err)
		}
	}

	httpClient := &http.Client{}

	return &Server{
		Cfg:            cfg,
		HTTPClient:     httpClient,
		API:            events.New(cfg.API, httpClient),
		Auth:           auth.New(cfg.Auth, cfg.API.BaseURL),
		Uploads:        presigner,
		Webhook:        webhookClient,
		Templates:      t,
		StaticFS:       staticFS,
		ReloadNotifier: reload,
		stopWatcher:    stopWatcher,
	}, nil
}

type Server struct {
	Cfg            Config
	HTTPClient     *http.Client
	API            *events.Client
	Auth           *auth.Auth
	Uploads        *uploads.Presigner
	Webhook        webhookClient
	Templates      func() *template.Template
	StaticFS       http.FileSystem
	ReloadNotifier *reloadNotifier

	server      *http.Server
	stopWatcher context.CancelFunc
}

func (s *Server) Start(handler http.Handler) {
	s.server = &http.Server{
		Addr:    s.Cfg.Server.Addr,
		Handler: handler,
	}

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", slog.Any("err", err))
		}
	}()
}

func (s *Server) Stop() {
	if s.stopWatcher != nil {
		s.stopWatcher()
	}
	if s.ReloadNotifier != nil {
		s.ReloadNotifier.Close()
	}

	timeout := time.Duration(s.Cfg.Server.ShutdownTimeout)
	if timeout == 0 {
		timeout = 5 * time.Second
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if s.server != nil {
		if err := s.server.Shutdown(ctx); err != nil {
			slog.Error("Server shutdown failed", slog.Any("err", err))
		}
	}
}
