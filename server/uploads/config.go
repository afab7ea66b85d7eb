package uploads

import (
	"fmt"
	"time"

	"github.com/tampadev/events-web/internal/xtime"
)

type Config struct {
	Bucket        string         `toml:"bucket" env:"UPLOADS_BUCKET"`
	PublicBaseURL string         `toml:"public_base_url" env:"UPLOADS_PUBLIC_BASE_URL"`
	PresignExpiry xtime.Duration `toml:"presign_expiry"`
}

func (c Config) String() string {
	return fmt.Sprintf("\n Bucket: %s\n PublicBaseURL: %s\n PresignExpiry: %s",
		c.Bucket,
		c.PublicBaseURL,
		c.PresignExpiry,
	)
}

func (c Config) Expiry() time.Duration {
	if c.PresignExpiry == 0 {
		return 15 * time.Minute
	}
	return time.Duration(c.PresignExpiry)
}
