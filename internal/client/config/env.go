package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the environment. A .env file in
// the working directory is loaded first if present; its absence is not an
// error.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("TAVIVO_DB"); v != "" {
		cfg.DatabaseDSN = v
	}
	if v := os.Getenv("TAVIVO_USERINFO_ENDPOINT"); v != "" {
		cfg.GoogleUserinfoEndpoint = v
	}
	if v := os.Getenv("TAVIVO_RESEND_COOLDOWN"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.ResendCooldown = d
		}
	}
}
