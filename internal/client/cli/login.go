package cli

import (
	"context"
	"fmt"

	"github.com/bfontes/tavivo/internal/client/models"
	"github.com/bfontes/tavivo/internal/common"
)

func (a *App) handleLogin(ctx context.Context) {
	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		printlnFn(err.Error())
		return
	}

	password, err := GetPassword(a.out, "Enter password: ")
	if err != nil {
		printlnFn(err.Error())
		return
	}
	defer common.WipeByteArray(password)

	s, err := a.auth.Login(ctx, email, string(password))
	if err != nil {
		printlnFn(err.Error())
		return
	}

	printlnFn(fmt.Sprintf("Welcome, %s!", s.Name))
}

func (a *App) handleSignUp(ctx context.Context) {
	name, err := GetSimpleText(a.reader, "Name", a.out)
	if err != nil {
		printlnFn(err.Error())
		return
	}
	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		printlnFn(err.Error())
		return
	}

	password, err := GetPassword(a.out, "Enter password (at least 6 characters): ")
	if err != nil {
		printlnFn(err.Error())
		return
	}
	defer common.WipeByteArray(password)

	confirm, err := GetPassword(a.out, "Confirm password: ")
	if err != nil {
		printlnFn(err.Error())
		return
	}
	defer common.WipeByteArray(confirm)

	p, err := a.auth.SignUp(ctx, name, email, string(password), string(confirm))
	if err != nil {
		printlnFn(err.Error())
		return
	}

	printlnFn(fmt.Sprintf("We sent a 6-digit code to %s.", p.Email))
	a.showCode(p)
}

// handleGoogleLogin asks for an access token obtained out-of-band (the
// browser-based authorization flow is external to this program) and exchanges
// it for a session.
func (a *App) handleGoogleLogin(ctx context.Context) {
	token, err := GetSimpleText(a.reader, "Paste your Google access token", a.out)
	if err != nil {
		printlnFn(err.Error())
		return
	}

	s, err := a.auth.LoginWithGoogle(ctx, token)
	if err != nil {
		printlnFn("Could not sign in with Google: " + err.Error())
		return
	}

	printlnFn(fmt.Sprintf("Welcome, %s!", s.Name))
}

// showCode surfaces the verification code to the user. There is no email
// delivery channel, so the same device that generated the code displays it.
func (a *App) showCode(p *models.PendingVerification) {
	printlnFn(fmt.Sprintf("Verification code (no email delivery is configured): %s", p.Code))
}
