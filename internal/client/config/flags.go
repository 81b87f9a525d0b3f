package config

import (
	"flag"
	"os"
	"time"

	"github.com/bfontes/tavivo/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-d string   path of the local database file
//	-u string   identity provider userinfo endpoint
//	-r int      verification code resend cooldown (in seconds)
//
// The function filters os.Args to only include the flags it knows about, to
// avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-u", "-r"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "path of the local database file")
	fs.StringVar(&cfg.GoogleUserinfoEndpoint, "u", cfg.GoogleUserinfoEndpoint, "identity provider userinfo endpoint")
	resendCooldown := fs.Int("r", int(cfg.ResendCooldown.Seconds()), "code resend cooldown (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.ResendCooldown = time.Duration(*resendCooldown) * time.Second
}
