package services

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/bfontes/tavivo/internal/client/googleauth"
	"github.com/bfontes/tavivo/internal/client/models"
	"github.com/bfontes/tavivo/internal/client/repositories/kvstore"
	"github.com/bfontes/tavivo/internal/common"
	"github.com/bfontes/tavivo/internal/logging"
)

// emailRe accepts the simple local@domain.tld shape; anything stricter would
// reject addresses the rest of the flow happily accepts.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// AuthService owns the transition between anonymous, pending-verification and
// authenticated states.
//
// Contract:
//   - Login / LoginWithGoogle: move straight to authenticated.
//   - SignUp: move to pending-verification with a fresh six-digit code.
//   - VerifyCode: consume the pending record into a session on a match.
//   - ResendCode: replace the pending code and restart its countdown.
//   - CancelVerification: drop the pending record.
//   - Logout: clear the session; check-in and profile records stay untouched.
//   - Restore: load a previously persisted session at startup.
//
// The session is persisted in durable storage on every successful login,
// completed verification and logout. The pending record never is.
type AuthService interface {
	Restore(ctx context.Context) *models.Session
	Session() *models.Session
	Pending() *models.PendingVerification
	Login(ctx context.Context, email, password string) (*models.Session, error)
	SignUp(ctx context.Context, name, email, password, confirmPassword string) (*models.PendingVerification, error)
	ResendCode(ctx context.Context) (*models.PendingVerification, error)
	VerifyCode(ctx context.Context, input string) (*models.Session, error)
	CancelVerification()
	LoginWithGoogle(ctx context.Context, accessToken string) (*models.Session, error)
	Logout(ctx context.Context) error
}

type authService struct {
	kv       kvstore.Repository
	userinfo googleauth.UserinfoClient
	log      logging.Logger

	session *models.Session
	pending *models.PendingVerification

	// Seams for tests.
	newCode func() (string, error)
	now     func() time.Time
}

// NewAuthService constructs an AuthService bound to the given store and
// identity-provider client.
func NewAuthService(kv kvstore.Repository, userinfo googleauth.UserinfoClient, log logging.Logger) AuthService {
	return &authService{
		kv:       kv,
		userinfo: userinfo,
		log:      log,
		newCode:  common.GenerateVerificationCode,
		now:      time.Now,
	}
}

// Restore loads a persisted session, if any. A storage read failure or a
// corrupt record degrades to the anonymous state so the app stays usable.
func (a *authService) Restore(ctx context.Context) *models.Session {
	b, err := a.kv.Get(ctx, keySession)
	if err != nil {
		a.log.Warn(ctx, "could not read stored session, starting anonymous", "error", err)
		return nil
	}
	if b == nil {
		return nil
	}

	var s models.Session
	if err := json.Unmarshal(b, &s); err != nil {
		a.log.Warn(ctx, "stored session is corrupt, starting anonymous", "error", err)
		return nil
	}

	a.session = &s
	a.log.Info(ctx, "session restored", "method", s.LoginMethod)
	return a.session
}

func (a *authService) Session() *models.Session { return a.session }

func (a *authService) Pending() *models.PendingVerification { return a.pending }

// Login validates the email shape and a non-empty password and establishes a
// session. No credential check happens beyond that: there is no backend and
// no account database, so any password is accepted.
func (a *authService) Login(ctx context.Context, email, password string) (*models.Session, error) {
	email = strings.TrimSpace(email)
	if email == "" || strings.TrimSpace(password) == "" {
		return nil, validationError("please fill in all fields")
	}
	if !emailRe.MatchString(email) {
		return nil, validationError("please enter a valid email")
	}

	s := &models.Session{
		Email:       email,
		Name:        emailLocalPart(email),
		LoginMethod: models.LoginMethodEmail,
	}
	if err := a.saveSession(ctx, s); err != nil {
		return nil, err
	}

	a.session = s
	a.log.Info(ctx, "logged in", "method", s.LoginMethod)
	return s, nil
}

// SignUp validates the form and opens a pending verification with a fresh
// six-digit code. The code is returned to the caller for display: no real
// delivery channel exists, which also means it proves nothing about control
// of the email address.
func (a *authService) SignUp(ctx context.Context, name, email, password, confirmPassword string) (*models.PendingVerification, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || strings.TrimSpace(password) == "" || strings.TrimSpace(confirmPassword) == "" {
		return nil, validationError("please fill in all fields")
	}
	if !emailRe.MatchString(email) {
		return nil, validationError("please enter a valid email")
	}
	if len(password) < 6 {
		return nil, validationError("password must be at least 6 characters")
	}
	if password != confirmPassword {
		return nil, validationError("passwords do not match")
	}

	code, err := a.newCode()
	if err != nil {
		return nil, err
	}

	a.pending = &models.PendingVerification{
		Name:     name,
		Email:    email,
		Password: []byte(password),
		Code:     code,
		IssuedAt: a.now(),
	}
	a.log.Info(ctx, "sign-up started, verification pending")
	return a.pending, nil
}

// ResendCode replaces the pending code with a fresh one and restarts the
// resend countdown.
func (a *authService) ResendCode(ctx context.Context) (*models.PendingVerification, error) {
	if a.pending == nil {
		return nil, common.ErrNoPendingVerification
	}

	code, err := a.newCode()
	if err != nil {
		return nil, err
	}

	a.pending.Code = code
	a.pending.IssuedAt = a.now()
	a.log.Info(ctx, "verification code reissued")
	return a.pending, nil
}

// VerifyCode compares input against the pending code. On a match the pending
// record is consumed into an authenticated session; on a mismatch the caller
// must re-prompt for fresh input.
func (a *authService) VerifyCode(ctx context.Context, input string) (*models.Session, error) {
	if a.pending == nil {
		return nil, common.ErrNoPendingVerification
	}
	if input != a.pending.Code {
		return nil, common.ErrInvalidCode
	}

	s := &models.Session{
		Email:       a.pending.Email,
		Name:        a.pending.Name,
		LoginMethod: models.LoginMethodEmail,
	}
	if err := a.saveSession(ctx, s); err != nil {
		return nil, err
	}

	a.pending.Discard()
	a.pending = nil
	a.session = s
	a.log.Info(ctx, "email verified, logged in", "method", s.LoginMethod)
	return s, nil
}

// CancelVerification drops the pending record and returns to anonymous.
func (a *authService) CancelVerification() {
	if a.pending == nil {
		return
	}
	a.pending.Discard()
	a.pending = nil
}

// LoginWithGoogle exchanges the access token for profile info and establishes
// a session from it.
func (a *authService) LoginWithGoogle(ctx context.Context, accessToken string) (*models.Session, error) {
	ui, err := a.userinfo.Fetch(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	name := ui.Name
	if name == "" {
		name = emailLocalPart(ui.Email)
	}

	s := &models.Session{
		Email:       ui.Email,
		Name:        name,
		LoginMethod: models.LoginMethodGoogle,
		Picture:     ui.Picture,
	}
	if err := a.saveSession(ctx, s); err != nil {
		return nil, err
	}

	a.session = s
	a.log.Info(ctx, "logged in", "method", s.LoginMethod)
	return s, nil
}

// Logout clears the persisted session and any pending verification. It does
// not touch the check-in or profile records.
func (a *authService) Logout(ctx context.Context) error {
	if err := a.kv.Delete(ctx, keySession); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}

	a.session = nil
	a.CancelVerification()
	a.log.Info(ctx, "logged out")
	return nil
}

func (a *authService) saveSession(ctx context.Context, s *models.Session) error {
	b, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}
	if err := a.kv.Set(ctx, keySession, b); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	return nil
}

func validationError(msg string) error {
	return fmt.Errorf("%w: %s", common.ErrValidation, msg)
}

func emailLocalPart(email string) string {
	if i := strings.Index(email, "@"); i > 0 {
		return email[:i]
	}
	return email
}
