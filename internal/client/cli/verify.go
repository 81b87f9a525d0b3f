package cli

import (
	"context"
	"errors"
	"fmt"
	"math"
	"regexp"
	"time"

	"github.com/bfontes/tavivo/internal/client/models"
	"github.com/bfontes/tavivo/internal/common"
)

var codeRe = regexp.MustCompile(`^[0-9]{6}$`)

func (a *App) handleVerify(ctx context.Context) {
	input, err := GetSimpleText(a.reader, "Enter the 6-digit code", a.out)
	if err != nil {
		printlnFn(err.Error())
		return
	}

	if !codeRe.MatchString(input) {
		printlnFn("Please enter all 6 digits.")
		return
	}

	s, err := a.auth.VerifyCode(ctx, input)
	if errors.Is(err, common.ErrInvalidCode) {
		// The entered digits are dropped; the user starts over.
		printlnFn("The code you entered is incorrect. Try again.")
		return
	}
	if err != nil {
		printlnFn(err.Error())
		return
	}

	printlnFn(fmt.Sprintf("Email verified. Welcome, %s!", s.Name))
}

func (a *App) handleResend(ctx context.Context) {
	p := a.auth.Pending()
	if p == nil {
		printlnFn(common.ErrNoPendingVerification.Error())
		return
	}

	if wait := a.resendWait(p); wait > 0 {
		printlnFn(fmt.Sprintf("Wait %d seconds before requesting a new code.", wait))
		return
	}

	p, err := a.auth.ResendCode(ctx)
	if err != nil {
		printlnFn(err.Error())
		return
	}

	printlnFn("A new code was issued.")
	a.showCode(p)
}

func (a *App) handleCancel() {
	a.auth.CancelVerification()
	printlnFn("Sign-up cancelled.")
}

// resendWait returns how many whole seconds remain of the resend countdown,
// or 0 when a resend is allowed. The countdown is purely a UI gate; the
// service itself reissues codes on demand.
func (a *App) resendWait(p *models.PendingVerification) int {
	remaining := time.Until(p.IssuedAt.Add(a.config.ResendCooldown))
	if remaining <= 0 {
		return 0
	}
	return int(math.Ceil(remaining.Seconds()))
}
