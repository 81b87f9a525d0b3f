package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/bfontes/tavivo/internal/client/repositories/kvstore"
	"github.com/bfontes/tavivo/internal/logging"
)

// EnsureInstallationID returns this device's installation identifier,
// generating and persisting a fresh one on first run. The ID only tags log
// output; failures here are never fatal.
func EnsureInstallationID(ctx context.Context, kv kvstore.Repository, log logging.Logger) string {
	b, err := kv.Get(ctx, keyInstallationID)
	if err != nil {
		log.Warn(ctx, "could not read installation id", "error", err)
		return ""
	}
	if b != nil {
		return string(b)
	}

	id := uuid.NewString()
	if err := kv.Set(ctx, keyInstallationID, []byte(id)); err != nil {
		log.Warn(ctx, "could not persist installation id", "error", err)
	}
	return id
}
