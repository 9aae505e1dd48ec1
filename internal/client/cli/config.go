package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds runtime settings for scholarctl.
type Config struct {
	ServerURL   string        `env:"SCHOLAR_SERVER_URL"   envDefault:"http://localhost:5000"`
	SessionFile string        `env:"SCHOLAR_SESSION_FILE"`
	Timeout     time.Duration `env:"SCHOLAR_TIMEOUT"      envDefault:"15s"`
}

// LoadConfig reads the environment. SessionFile defaults to
// scholarsync/session.json under the user config directory.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if cfg.SessionFile == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return Config{}, fmt.Errorf("locate config dir: %w", err)
		}
		cfg.SessionFile = filepath.Join(dir, "scholarsync", "session.json")
	}
	return cfg, nil
}
