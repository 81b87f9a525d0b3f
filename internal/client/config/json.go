package config

import (
	"encoding/json"
	"os"

	"github.com/bfontes/tavivo/internal/flagx"
	"github.com/bfontes/tavivo/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "60s"
// or as integer nanoseconds.
type JsonConfig struct {
	DatabaseDSN            string         `json:"database_dsn"`
	GoogleUserinfoEndpoint string         `json:"google_userinfo_endpoint"`
	ResendCooldown         timex.Duration `json:"resend_cooldown"`
}

// parseJson overlays Config with values loaded from the JSON file given via
// -c/-config. Missing flag means no JSON is loaded. Fields absent from the
// file keep their prior values. Panics on read or unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.GoogleUserinfoEndpoint != "" {
		cfg.GoogleUserinfoEndpoint = jc.GoogleUserinfoEndpoint
	}
	if jc.ResendCooldown.Duration != 0 {
		cfg.ResendCooldown = jc.ResendCooldown.Duration
	}
}
