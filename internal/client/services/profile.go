package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/bfontes/tavivo/internal/client/models"
	"github.com/bfontes/tavivo/internal/client/repositories/kvstore"
	"github.com/bfontes/tavivo/internal/logging"
)

// ProfileService owns the emergency/medical record. The record is keyed to
// the device, not to the session: logging out does not wipe it.
type ProfileService interface {
	Load(ctx context.Context, session *models.Session) *models.Profile
	Save(ctx context.Context, p *models.Profile) (*models.Profile, error)
}

type profileService struct {
	kv  kvstore.Repository
	log logging.Logger
}

func NewProfileService(kv kvstore.Repository, log logging.Logger) ProfileService {
	return &profileService{kv: kv, log: log}
}

// Load merges the stored record over session-derived defaults. Read failures
// and corrupt records degrade to the defaults.
func (s *profileService) Load(ctx context.Context, session *models.Session) *models.Profile {
	defaults := sessionDefaults(session)

	b, err := s.kv.Get(ctx, keyProfile)
	if err != nil {
		s.log.Warn(ctx, "could not read stored profile", "error", err)
		return &defaults
	}
	if b == nil {
		return &defaults
	}

	var stored models.Profile
	if err := json.Unmarshal(b, &stored); err != nil {
		s.log.Warn(ctx, "stored profile is corrupt", "error", err)
		return &defaults
	}

	merged := mergeProfiles(stored, defaults)
	return &merged
}

// Save validates the required fields and persists the whole record in a
// single write. Nothing is written when validation fails.
func (s *profileService) Save(ctx context.Context, p *models.Profile) (*models.Profile, error) {
	out := *p
	out.Name = strings.TrimSpace(out.Name)
	out.BloodType = strings.ToUpper(strings.TrimSpace(out.BloodType))

	if out.Name == "" {
		return nil, validationError("please fill in your name")
	}
	if strings.TrimSpace(out.EmergencyContact) == "" {
		return nil, validationError("please fill in the emergency contact name")
	}
	if strings.TrimSpace(out.EmergencyPhone) == "" {
		return nil, validationError("please fill in the emergency phone")
	}
	if utf8.RuneCountInString(out.BloodType) > 3 {
		return nil, validationError("blood type must be at most 3 characters")
	}

	b, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("encoding profile: %w", err)
	}
	if err := s.kv.Set(ctx, keyProfile, b); err != nil {
		return nil, fmt.Errorf("saving profile: %w", err)
	}

	s.log.Info(ctx, "profile saved")
	return &out, nil
}

// sessionDefaults derives the starting record from the active session.
func sessionDefaults(session *models.Session) models.Profile {
	if session == nil {
		return models.Profile{}
	}
	return models.Profile{Name: session.Name, Email: session.Email}
}

// mergeProfiles overlays the stored record on the session-derived defaults.
// Stored fields win, with two exceptions: the email always follows the
// current session, and the session name applies only while no name has been
// saved yet.
func mergeProfiles(stored, defaults models.Profile) models.Profile {
	out := stored
	out.Email = defaults.Email
	if out.Name == "" {
		out.Name = defaults.Name
	}
	return out
}
