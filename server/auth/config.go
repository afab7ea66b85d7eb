package auth

import (
	"fmt"
	"strings"
)

type Config struct {
	ClientID     string `toml:"client_id" env:"OAUTH_CLIENT_ID"`
	ClientSecret string `toml:"client_secret" env:"OAUTH_CLIENT_SECRET"`
	PublicURL    string `toml:"public_url" env:"PUBLIC_URL"`
	CookieDomain string `toml:"cookie_domain"`
}

func (c Config) String() string {
	return fmt.Sprintf("\n ClientID: %s\n ClientSecret: %s\n PublicURL: %s\n CookieDomain: %s",
		c.ClientID,
		strings.Repeat("*", len(c.ClientSecret)),
		c.PublicURL,
		c.CookieDomain,
	)
}
