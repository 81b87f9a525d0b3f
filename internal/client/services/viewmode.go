package services

import (
	"context"
	"strconv"

	"github.com/bfontes/tavivo/internal/client/repositories/kvstore"
	"github.com/bfontes/tavivo/internal/logging"
)

// ViewModeService owns the simplified/standard display-density flag. The
// preference is independent of the session and the check-in state.
type ViewModeService interface {
	// Get returns true when simplified mode is on. Defaults to false.
	Get(ctx context.Context) bool
	// Set persists the flag.
	Set(ctx context.Context, simplified bool) error
}

type viewModeService struct {
	kv     kvstore.Repository
	log    logging.Logger
	cached *bool
}

func NewViewModeService(kv kvstore.Repository, log logging.Logger) ViewModeService {
	return &viewModeService{kv: kv, log: log}
}

func (s *viewModeService) Get(ctx context.Context) bool {
	if s.cached != nil {
		return *s.cached
	}

	v := false
	b, err := s.kv.Get(ctx, keyViewMode)
	if err != nil {
		s.log.Warn(ctx, "could not read view mode preference", "error", err)
		return false
	}
	if b != nil {
		v = string(b) == "true"
	}

	s.cached = &v
	return v
}

func (s *viewModeService) Set(ctx context.Context, simplified bool) error {
	if err := s.kv.Set(ctx, keyViewMode, []byte(strconv.FormatBool(simplified))); err != nil {
		return err
	}
	s.cached = &simplified
	return nil
}
