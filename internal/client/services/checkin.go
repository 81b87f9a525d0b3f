package services

import (
	"context"
	"fmt"
	"time"

	"github.com/bfontes/tavivo/internal/client/repositories/kvstore"
	"github.com/bfontes/tavivo/internal/common"
	"github.com/bfontes/tavivo/internal/logging"
)

// CheckinStatus reports the daily check-in state. LastConfirmed is nil when
// the user never confirmed.
type CheckinStatus struct {
	LastConfirmed  *time.Time
	ConfirmedToday bool
}

// CheckinService owns the "last confirmed" timestamp. "Confirmed today" is a
// calendar-date equality in local time, not a 24-hour window: a confirmation
// at 23:59 no longer counts at 00:01.
type CheckinService interface {
	Status(ctx context.Context) *CheckinStatus
	Confirm(ctx context.Context) (time.Time, error)
}

type checkinService struct {
	kv  kvstore.Repository
	log logging.Logger
	now func() time.Time
}

func NewCheckinService(kv kvstore.Repository, log logging.Logger) CheckinService {
	return &checkinService{kv: kv, log: log, now: time.Now}
}

// Status reads the stored instant and derives whether today is already
// confirmed. An unreadable or corrupt value degrades to "never confirmed".
func (s *checkinService) Status(ctx context.Context) *CheckinStatus {
	b, err := s.kv.Get(ctx, keyLastPressed)
	if err != nil {
		s.log.Warn(ctx, "could not read last confirmation", "error", err)
		return &CheckinStatus{}
	}
	if b == nil {
		return &CheckinStatus{}
	}

	t, err := time.Parse(time.RFC3339, string(b))
	if err != nil {
		s.log.Warn(ctx, "stored confirmation timestamp is corrupt", "error", err)
		return &CheckinStatus{}
	}

	now := s.now()
	local := t.In(now.Location())
	return &CheckinStatus{
		LastConfirmed:  &local,
		ConfirmedToday: sameCalendarDay(local, now),
	}
}

// Confirm stores the current instant as the latest confirmation. The stored
// timestamp moves on every call, but when today was already confirmed the
// call reports ErrAlreadyConfirmed so callers can tell the press was a
// duplicate; the observable "confirmed today" state is the same either way.
func (s *checkinService) Confirm(ctx context.Context) (time.Time, error) {
	st := s.Status(ctx)

	now := s.now()
	if err := s.kv.Set(ctx, keyLastPressed, []byte(now.Format(time.RFC3339))); err != nil {
		return time.Time{}, fmt.Errorf("saving confirmation: %w", err)
	}

	if st.ConfirmedToday {
		return now, common.ErrAlreadyConfirmed
	}

	s.log.Info(ctx, "daily check-in confirmed")
	return now, nil
}

func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
