// Package config assembles runtime settings for the Tá Vivo Ainda CLI.
//
// Sources are applied in order, later ones winning: built-in defaults, the
// environment (including a .env file if present), an optional JSON file
// (-c/-config), and command-line flags.
package config

import (
	"time"

	"github.com/bfontes/tavivo/internal/client/googleauth"
)

// Config holds runtime settings for the CLI.
type Config struct {
	// DatabaseDSN is the path of the local SQLite database file.
	DatabaseDSN string
	// GoogleUserinfoEndpoint is the identity provider's userinfo URL.
	GoogleUserinfoEndpoint string
	// ResendCooldown is how long the user waits before a verification code
	// can be resent.
	ResendCooldown time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "tavivo.db"
	c.GoogleUserinfoEndpoint = googleauth.DefaultUserinfoEndpoint
	c.ResendCooldown = 60 * time.Second
}

// LoadConfig constructs a Config from all sources.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
