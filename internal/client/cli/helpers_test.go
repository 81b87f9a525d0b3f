package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bfontes/tavivo/internal/client/config"
	"github.com/bfontes/tavivo/internal/client/googleauth"
	"github.com/bfontes/tavivo/internal/client/repositories/kvstore"
	"github.com/bfontes/tavivo/internal/client/services"
	"github.com/bfontes/tavivo/internal/logging"

	_ "modernc.org/sqlite"
)

type stubUserinfo struct {
	ui  *googleauth.Userinfo
	err error
}

func (s *stubUserinfo) Fetch(ctx context.Context, accessToken string) (*googleauth.Userinfo, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.ui, nil
}

func newTestApp(t *testing.T, input string, stub *stubUserinfo) *App {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE storage (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);`)
	require.NoError(t, err)

	kv := kvstore.NewSQLiteRepository(db)
	log := logging.NewDiscardLogger()
	cfg := &config.Config{}
	cfg.LoadDefaults()

	return &App{
		config:   cfg,
		log:      log,
		db:       db,
		auth:     services.NewAuthService(kv, stub, log),
		checkin:  services.NewCheckinService(kv, log),
		viewMode: services.NewViewModeService(kv, log),
		profile:  services.NewProfileService(kv, log),
		reader:   bufio.NewReader(strings.NewReader(input)),
		out:      io.Discard,
	}
}

// captureOutput redirects printlnFn into a slice for assertions.
func captureOutput(t *testing.T) *[]string {
	t.Helper()
	orig := printlnFn
	lines := &[]string{}
	printlnFn = func(args ...any) (int, error) {
		*lines = append(*lines, strings.TrimRight(fmt.Sprintln(args...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return lines
}

// stubPassword replaces the terminal password reader.
func stubPassword(t *testing.T, pw string) {
	t.Helper()
	orig := readPassword
	readPassword = func(fd int) ([]byte, error) { return []byte(pw), nil }
	t.Cleanup(func() { readPassword = orig })
}

func joined(lines *[]string) string {
	return strings.Join(*lines, "\n")
}
