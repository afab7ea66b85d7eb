package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/sethvargo/go-envconfig"

	"github.com/tampadev/events-web/internal/xtime"
	"github.com/tampadev/events-web/server/auth"
	"github.com/tampadev/events-web/server/events"
	"github.com/tampadev/events-web/server/uploads"
)

type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentStaging     Environment = "staging"
	EnvironmentProduction  Environment = "production"
)

// LoadConfig reads the TOML config file and applies the environment overlay
// (EVENTS_API_URL, ENVIRONMENT, SERVER_ADDR, ...) on top. An empty path means
// defaults plus environment only.
func LoadConfig(cfgPath string) (Config, error) {
	cfg := defaultConfig()

	if cfgPath != "" {
		file, err := os.Open(cfgPath)
		if err != nil {
			return Config{}, fmt.Errorf("failed to open config file: %w", err)
		}
		defer func() {
			_ = file.Close()
		}()

		if _, err = toml.NewDecoder(file).Decode(&cfg); err != nil {
			return Config{}, fmt.Errorf("failed to decode config file: %w", err)
		}
	}

	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process environment variables: %w", err)
	}

	return cfg, nil
}

func defaultConfig() Config {
	return Config{
		Environment: EnvironmentDevelopment,
		Log: LogConfig{
			Level:     slog.LevelInfo,
			Format:    LogFormatText,
			AddSource: false,
		},
		Server: ServerConfig{
			Addr:            ":8085",
			ShutdownTimeout: xtime.Duration(5 * time.Second),
		},
		API: events.Config{
			BaseURL: "https://events.api.tampa.dev",
		},
	}
}

type Config struct {
	Environment   Environment         `toml:"environment" env:"ENVIRONMENT"`
	Log           LogConfig           `toml:"log"`
	Server        ServerConfig        `toml:"server"`
	API           events.Config       `toml:"api"`
	Auth          auth.Config         `toml:"auth"`
	Uploads       uploads.Config      `toml:"uploads"`
	Notifications NotificationsConfig `toml:"notifications"`
}

func (c Config) String() string {
	return fmt.Sprintf("Environment: %s\nLog: %s\nServer: %s\nAPI: %s\nAuth: %s\nUploads: %s\nNotifications: %s",
		c.Environment,
		c.Log,
		c.Server,
		c.API,
		c.Auth,
		c.Uploads,
		c.Notifications,
	)
}

func (c Config) IsProduction() bool {
	return c.Environment == EnvironmentProduction
}

func (c Config) IsDevelopment() bool {
	return c.Environment == EnvironmentDevelopment
}

// SessionCookieName returns the cookie holding the upstream session token.
// Staging uses its own name so staging and prod sessions never collide on a
// shared parent domain.
func (c Config) SessionCookieName() string {
	if c.Environment == EnvironmentStaging {
		return "session_staging"
	}
	return "session"
}

type LogFormat string

const (
	LogFormatJSON LogFormat = "json"
	LogFormatText LogFormat = "text"
)

type LogConfig struct {
	Level     slog.Level `toml:"level"`
	Format    LogFormat  `toml:"format" env:"LOG_FORMAT"`
	AddSource bool       `toml:"add_source"`
}

func (c LogConfig) String() string {
	return fmt.Sprintf("\n Level: %s\n Format: %s\n AddSource: %t",
		c.Level,
		c.Format,
		c.AddSource,
	)
}

type ServerConfig struct {
	Addr            string         `toml:"addr" env:"SERVER_ADDR"`
	ShutdownTimeout xtime.Duration `toml:"shutdown_timeout"`
}

func (c ServerConfig) String() string {
	return fmt.Sprintf("\n Address: %s\n ShutdownTimeout: %s",
		c.Addr,
		c.ShutdownTimeout,
	)
}

type NotificationsConfig struct {
	Enabled    bool   `toml:"enabled"`
	WebhookURL string `toml:"webhook_url" env:"NOTIFICATIONS_WEBHOOK_URL"`
}

func (c NotificationsConfig) String() string {
	return fmt.Sprintf("\n Enabled: %t\n WebhookURL: %s",
		c.Enabled,
		c.WebhookURL,
	)
}
