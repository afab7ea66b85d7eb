package events

import (
	"fmt"
)

type Config struct {
	BaseURL string `toml:"base_url" env:"EVENTS_API_URL"`
}

func (c Config) String() string {
	return fmt.Sprintf("\n BaseURL: %s",
		c.BaseURL,
	)
}
