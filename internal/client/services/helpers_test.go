package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bfontes/tavivo/internal/client/googleauth"
	"github.com/bfontes/tavivo/internal/client/repositories/kvstore"
	"github.com/bfontes/tavivo/internal/logging"

	_ "modernc.org/sqlite"
)

func newTestKV(t *testing.T) (kvstore.Repository, *sql.DB) {
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
	return kvstore.NewSQLiteRepository(db), db
}

// stubUserinfo simulates the identity provider: success, error or
// user-cancelled outcomes.
type stubUserinfo struct {
	ui  *googleauth.Userinfo
	err error
}

func (s *stubUserinfo) Fetch(ctx context.Context, accessToken string) (*googleauth.Userinfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.ui, nil
}

func testLogger() logging.Logger {
	return logging.NewDiscardLogger()
}
