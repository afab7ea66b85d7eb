package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/rest"
	"github.com/disgoorg/disgo/webhook"
)

type webhookClient interface {
	CreateContent(content string, opts ...rest.RequestOpt) (*discord.Message, error)
}

func newWebhookClient(cfg NotificationsConfig) (webhookClient, error) {
	if !cfg.Enabled || cfg.WebhookURL == "" {
		return nil, nil
	}

	client, err := webhook.NewWithURL(cfg.WebhookURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse webhook URL: %w", err)
	}

	return client, nil
}

// SendNotification pings the ops webhook. Failures are logged and swallowed;
// notifications never fail the operation that triggered them.
func (s *Server) SendNotification(ctx context.Context, content string) {
	if s.Webhook == nil {
		return
	}

	if _, err := s.Webhook.CreateContent(content, rest.WithCtx(ctx)); err != nil {
		slog.ErrorContext(ctx, "failed to send notification", slog.Any("err", err))
	}
}
