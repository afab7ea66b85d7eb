package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/tampadev/events-web/internal/xslog"
	"github.com/tampadev/events-web/server"
	"github.com/tampadev/events-web/server/web"
)

func main() {
	cfgPath := flag.String("config", "config.toml", "path to the config file")
	flag.Parse()

	cfg, err := server.LoadConfig(*cfgPath)
	if err != nil {
		slog.Error("Failed to load config", slog.Any("err", err))
		os.Exit(1)
	}

	setupLogger(cfg.Log)
	slog.Info("Starting events-web...", slog.String("config", cfg.String()))

	srv, err := server.New(cfg)
	if err != nil {
		slog.Error("Failed to create server", slog.Any("err", err))
		os.Exit(1)
	}

	srv.Start(web.Routes(srv))
	defer srv.Stop()

	slog.Info("Server started", slog.String("addr", cfg.Server.Addr))

	s := make(chan os.Signal, 1)
	signal.Notify(s, syscall.SIGTERM, syscall.SIGINT)
	<-s
}

func setupLogger(cfg server.LogConfig) {
	opts := &slog.HandlerOptions{
		Level:     cfg.Level,
		AddSource: cfg.AddSource,
	}

	var handler slog.Handler
	if cfg.Format == server.LogFormatJSON {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	// Static assets and the dev reload stream are noise at any level.
	handler = xslog.NewFilterHandler(handler, func(ctx context.Context, record slog.Record) bool {
		keep := true
		record.Attrs(func(attr slog.Attr) bool {
			if attr.Key != "path" {
				return true
			}
			path := attr.Value.String()
			if strings.HasPrefix(path, "/static/") || strings.HasPrefix(path, "/dev/reload") {
				keep = false
			}
			return false
		})
		return keep
	})

	slog.SetDefault(slog.New(handler))
}
