package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bfontes/tavivo/internal/client/googleauth"
	"github.com/bfontes/tavivo/internal/client/models"
	"github.com/bfontes/tavivo/internal/client/repositories/kvstore"
	"github.com/bfontes/tavivo/internal/common"
)

func newTestAuth(t *testing.T) (*authService, kvstore.Repository) {
	t.Helper()
	kv, _ := newTestKV(t)
	svc := NewAuthService(kv, &stubUserinfo{}, testLogger()).(*authService)
	return svc, kv
}

func storedSession(t *testing.T, kv kvstore.Repository) *models.Session {
	t.Helper()
	b, err := kv.Get(context.Background(), keySession)
	require.NoError(t, err)
	if b == nil {
		return nil
	}
	var s models.Session
	require.NoError(t, json.Unmarshal(b, &s))
	return &s
}

func TestLogin_EmptyFields(t *testing.T) {
	a, _ := newTestAuth(t)
	ctx := context.Background()

	_, err := a.Login(ctx, "", "secret1")
	require.ErrorIs(t, err, common.ErrValidation)

	_, err = a.Login(ctx, "a@b.com", "   ")
	require.ErrorIs(t, err, common.ErrValidation)

	require.Nil(t, a.Session())
}

func TestLogin_InvalidEmailShape(t *testing.T) {
	a, _ := newTestAuth(t)
	ctx := context.Background()

	for _, email := range []string{"plainaddress", "missing@tld", "two words@x.com", "@no-local.com"} {
		_, err := a.Login(ctx, email, "secret1")
		require.ErrorIs(t, err, common.ErrValidation, "email %q", email)
	}
}

func TestLogin_SucceedsAndPersistsSession(t *testing.T) {
	a, kv := newTestAuth(t)
	ctx := context.Background()

	s, err := a.Login(ctx, "  maria@example.com ", "whatever")
	require.NoError(t, err)
	require.Equal(t, "maria@example.com", s.Email)
	require.Equal(t, "maria", s.Name, "name defaults to the email local part")
	require.Equal(t, models.LoginMethodEmail, s.LoginMethod)
	require.Equal(t, s, a.Session())

	stored := storedSession(t, kv)
	require.NotNil(t, stored)
	assert.Equal(t, *s, *stored)
}

func TestSignUp_ValidationOrder(t *testing.T) {
	a, _ := newTestAuth(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		userName string
		email    string
		password string
		confirm  string
		wantMsg  string
	}{
		{"empty name checked first", "", "a@b.com", "secret1", "secret1", "fill in all fields"},
		{"empty password", "Ana", "a@b.com", "", "", "fill in all fields"},
		{"bad email", "Ana", "not-an-email", "secret1", "secret1", "valid email"},
		{"short password", "A", "a@b.com", "short", "short", "at least 6 characters"},
		{"mismatch", "Ana", "a@b.com", "secret1", "secret2", "do not match"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := a.SignUp(ctx, tt.userName, tt.email, tt.password, tt.confirm)
			require.ErrorIs(t, err, common.ErrValidation)
			require.Contains(t, err.Error(), tt.wantMsg)
			require.Nil(t, a.Pending())
		})
	}
}

func TestSignUp_OpensPendingVerificationWithCode(t *testing.T) {
	a, kv := newTestAuth(t)
	ctx := context.Background()

	p, err := a.SignUp(ctx, " Ana ", "ana@example.com", "secret1", "secret1")
	require.NoError(t, err)
	require.Equal(t, "Ana", p.Name)
	require.Equal(t, "ana@example.com", p.Email)
	require.Equal(t, []byte("secret1"), p.Password)
	require.Regexp(t, `^\d{6}$`, p.Code)
	require.Same(t, p, a.Pending())
	require.Nil(t, a.Session())

	// Nothing is persisted until the code is verified.
	require.Nil(t, storedSession(t, kv))
}

func TestVerifyCode_MismatchKeepsPending(t *testing.T) {
	a, _ := newTestAuth(t)
	ctx := context.Background()

	p, err := a.SignUp(ctx, "Ana", "ana@example.com", "secret1", "secret1")
	require.NoError(t, err)

	wrong := "000000"
	if wrong == p.Code {
		wrong = "000001"
	}

	_, err = a.VerifyCode(ctx, wrong)
	require.ErrorIs(t, err, common.ErrInvalidCode)
	require.NotNil(t, a.Pending())
	require.Nil(t, a.Session())
}

func TestVerifyCode_MatchConsumesPending(t *testing.T) {
	a, kv := newTestAuth(t)
	ctx := context.Background()

	p, err := a.SignUp(ctx, "Ana", "ana@example.com", "secret1", "secret1")
	require.NoError(t, err)
	password := p.Password

	s, err := a.VerifyCode(ctx, p.Code)
	require.NoError(t, err)
	require.Equal(t, "ana@example.com", s.Email)
	require.Equal(t, "Ana", s.Name)
	require.Equal(t, models.LoginMethodEmail, s.LoginMethod)

	require.Nil(t, a.Pending())
	require.Equal(t, s, a.Session())
	require.NotNil(t, storedSession(t, kv))

	// The in-memory password must be wiped when the record is consumed.
	for _, b := range password {
		require.Zero(t, b)
	}
}

func TestVerifyCode_NoPending(t *testing.T) {
	a, _ := newTestAuth(t)

	_, err := a.VerifyCode(context.Background(), "123456")
	require.ErrorIs(t, err, common.ErrNoPendingVerification)
}

func TestResendCode_ReplacesCodeAndResetsCountdown(t *testing.T) {
	a, _ := newTestAuth(t)
	ctx := context.Background()

	codes := []string{"111111", "222222"}
	a.newCode = func() (string, error) {
		code := codes[0]
		codes = codes[1:]
		return code, nil
	}

	p, err := a.SignUp(ctx, "Ana", "ana@example.com", "secret1", "secret1")
	require.NoError(t, err)
	require.Equal(t, "111111", p.Code)
	first := p.IssuedAt

	p2, err := a.ResendCode(ctx)
	require.NoError(t, err)
	require.Equal(t, "222222", p2.Code)
	require.False(t, p2.IssuedAt.Before(first))

	// Only the freshest code verifies.
	_, err = a.VerifyCode(ctx, "111111")
	require.ErrorIs(t, err, common.ErrInvalidCode)

	_, err = a.VerifyCode(ctx, "222222")
	require.NoError(t, err)
}

func TestResendCode_NoPending(t *testing.T) {
	a, _ := newTestAuth(t)

	_, err := a.ResendCode(context.Background())
	require.ErrorIs(t, err, common.ErrNoPendingVerification)
}

func TestCancelVerification(t *testing.T) {
	a, _ := newTestAuth(t)
	ctx := context.Background()

	p, err := a.SignUp(ctx, "Ana", "ana@example.com", "secret1", "secret1")
	require.NoError(t, err)
	password := p.Password

	a.CancelVerification()
	require.Nil(t, a.Pending())
	require.Nil(t, a.Session())
	for _, b := range password {
		require.Zero(t, b)
	}

	// Cancelling twice is a no-op.
	require.NotPanics(t, a.CancelVerification)
}

func TestLoginWithGoogle_Success(t *testing.T) {
	kv, _ := newTestKV(t)
	stub := &stubUserinfo{ui: &googleauth.Userinfo{Email: "g@example.com", Name: "G User", Picture: "https://img/p.png"}}
	a := NewAuthService(kv, stub, testLogger()).(*authService)
	ctx := context.Background()

	s, err := a.LoginWithGoogle(ctx, "token")
	require.NoError(t, err)
	require.Equal(t, "g@example.com", s.Email)
	require.Equal(t, "G User", s.Name)
	require.Equal(t, models.LoginMethodGoogle, s.LoginMethod)
	require.Equal(t, "https://img/p.png", s.Picture)

	stored := storedSession(t, kv)
	require.NotNil(t, stored)
	require.Equal(t, models.LoginMethodGoogle, stored.LoginMethod)
}

func TestLoginWithGoogle_NameFallsBackToLocalPart(t *testing.T) {
	kv, _ := newTestKV(t)
	stub := &stubUserinfo{ui: &googleauth.Userinfo{Email: "g@example.com"}}
	a := NewAuthService(kv, stub, testLogger()).(*authService)

	s, err := a.LoginWithGoogle(context.Background(), "token")
	require.NoError(t, err)
	require.Equal(t, "g", s.Name)
}

func TestLoginWithGoogle_ExchangeFails(t *testing.T) {
	kv, _ := newTestKV(t)
	stub := &stubUserinfo{err: common.ErrExternalAuth}
	a := NewAuthService(kv, stub, testLogger()).(*authService)

	_, err := a.LoginWithGoogle(context.Background(), "token")
	require.ErrorIs(t, err, common.ErrExternalAuth)
	require.Nil(t, a.Session())
	require.Nil(t, storedSession(t, kv))
}

func TestLogout_ClearsSessionOnly(t *testing.T) {
	a, kv := newTestAuth(t)
	ctx := context.Background()

	// Seed state owned by the other components.
	require.NoError(t, kv.Set(ctx, keyLastPressed, []byte("2026-08-30T08:00:00Z")))
	require.NoError(t, kv.Set(ctx, keyProfile, []byte(`{"name":"Ana"}`)))

	_, err := a.Login(ctx, "ana@example.com", "secret1")
	require.NoError(t, err)

	require.NoError(t, a.Logout(ctx))
	require.Nil(t, a.Session())
	require.Nil(t, storedSession(t, kv))

	// Logout must not wipe confirmation or profile records.
	b, err := kv.Get(ctx, keyLastPressed)
	require.NoError(t, err)
	require.NotNil(t, b)
	b, err = kv.Get(ctx, keyProfile)
	require.NoError(t, err)
	require.NotNil(t, b)
}

func TestRestore_RoundTrip(t *testing.T) {
	kv, _ := newTestKV(t)
	ctx := context.Background()

	first := NewAuthService(kv, &stubUserinfo{}, testLogger())
	_, err := first.Login(ctx, "ana@example.com", "secret1")
	require.NoError(t, err)

	// A fresh service instance picks the session up from storage.
	second := NewAuthService(kv, &stubUserinfo{}, testLogger())
	s := second.Restore(ctx)
	require.NotNil(t, s)
	require.Equal(t, "ana@example.com", s.Email)
	require.Equal(t, s, second.Session())
}

func TestRestore_DegradesGracefully(t *testing.T) {
	kv, db := newTestKV(t)
	ctx := context.Background()

	// Corrupt record: treated as no prior state.
	require.NoError(t, kv.Set(ctx, keySession, []byte("{broken")))
	a := NewAuthService(kv, &stubUserinfo{}, testLogger())
	require.Nil(t, a.Restore(ctx))

	// Storage failure: likewise non-fatal.
	require.NoError(t, db.Close())
	b := NewAuthService(kv, &stubUserinfo{}, testLogger())
	require.Nil(t, b.Restore(ctx))
}

func TestVerifyCodeProperty_OnlyLatestCodeVerifies(t *testing.T) {
	a, _ := newTestAuth(t)
	ctx := context.Background()

	p, err := a.SignUp(ctx, "Ana", "ana@example.com", "secret1", "secret1")
	require.NoError(t, err)

	for _, candidate := range []string{"100000", "999999", "123456", p.Code} {
		if candidate == p.Code {
			continue
		}
		_, err := a.VerifyCode(ctx, candidate)
		require.ErrorIs(t, err, common.ErrInvalidCode)
	}

	_, err = a.VerifyCode(ctx, p.Code)
	require.NoError(t, err)
}

func TestLogin_StorageFailureLeavesStateUnchanged(t *testing.T) {
	kv, db := newTestKV(t)
	a := NewAuthService(kv, &stubUserinfo{}, testLogger()).(*authService)

	require.NoError(t, db.Close())

	_, err := a.Login(context.Background(), "ana@example.com", "secret1")
	require.Error(t, err)
	require.False(t, errors.Is(err, common.ErrValidation))
	require.Nil(t, a.Session())
}
