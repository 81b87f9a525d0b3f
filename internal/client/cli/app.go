// Package cli is the interactive front end of the Tá Vivo Ainda client: a
// screen-oriented REPL over the application services.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/bfontes/tavivo/internal/client/config"
	"github.com/bfontes/tavivo/internal/client/googleauth"
	"github.com/bfontes/tavivo/internal/client/models"
	"github.com/bfontes/tavivo/internal/client/repositories/kvstore"
	"github.com/bfontes/tavivo/internal/client/services"
	"github.com/bfontes/tavivo/internal/client/storage"
	"github.com/bfontes/tavivo/internal/logging"
)

type App struct {
	config   *config.Config
	log      logging.Logger
	db       *sql.DB
	auth     services.AuthService
	checkin  services.CheckinService
	viewMode services.ViewModeService
	profile  services.ProfileService

	screen       Screen
	profileOpen  bool
	profileDraft *models.Profile
	reader       *bufio.Reader
	out          io.Writer
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("initializing local storage: %w", err)
	}

	kv := kvstore.NewSQLiteRepository(db)
	if id := services.EnsureInstallationID(ctx, kv, log); id != "" {
		log = log.With("installation_id", id)
	}

	userinfo := googleauth.NewHTTPUserinfoClient(cfg.GoogleUserinfoEndpoint)

	return &App{
		config:   cfg,
		log:      log,
		db:       db,
		auth:     services.NewAuthService(kv, userinfo, log),
		checkin:  services.NewCheckinService(kv, log),
		viewMode: services.NewViewModeService(kv, log),
		profile:  services.NewProfileService(kv, log),
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}, nil
}

// Close releases the local database.
func (a *App) Close() error {
	return a.db.Close()
}

// refreshScreen re-derives the active screen from the auth state. Losing the
// session also closes the profile view.
func (a *App) refreshScreen() {
	if a.auth.Session() == nil {
		a.profileOpen = false
		a.profileDraft = nil
	}
	a.screen = screenFor(a.auth.Session(), a.auth.Pending(), a.profileOpen)
}
