package cli

import (
	"context"
	"fmt"
	"strings"
	"time"
)

func (a *App) handleConfirm(ctx context.Context) {
	// The action is disabled once today is confirmed, same as the UI button.
	if a.checkin.Status(ctx).ConfirmedToday {
		printlnFn("Already confirmed today!")
		return
	}

	when, err := a.checkin.Confirm(ctx)
	if err != nil {
		printlnFn("Could not save the confirmation: " + err.Error())
		return
	}

	printlnFn(fmt.Sprintf("Confirmed! You are alive today. (%s)", when.Format("02/01/2006 15:04")))
}

func (a *App) handleStatus(ctx context.Context) {
	st := a.checkin.Status(ctx)
	if st.ConfirmedToday {
		printlnFn("Today: confirmed")
	} else {
		printlnFn("Today: pending")
	}
	printlnFn("Last confirmation: " + formatInstant(st.LastConfirmed))
}

func (a *App) handleModeToggle(ctx context.Context) {
	simplified := !a.viewMode.Get(ctx)
	if err := a.viewMode.Set(ctx, simplified); err != nil {
		printlnFn("Could not save the view mode: " + err.Error())
		return
	}

	if simplified {
		printlnFn("Simplified mode on.")
	} else {
		printlnFn("Simplified mode off.")
	}
}

func (a *App) handleLogout(ctx context.Context) {
	answer, err := GetSimpleText(a.reader, "Are you sure you want to log out? (y/N)", a.out)
	if err != nil {
		printlnFn(err.Error())
		return
	}
	if !strings.EqualFold(answer, "y") {
		printlnFn("Cancelled.")
		return
	}

	if err := a.auth.Logout(ctx); err != nil {
		printlnFn(err.Error())
		return
	}

	printlnFn("Logged out.")
}

func formatInstant(t *time.Time) string {
	if t == nil {
		return "Never"
	}
	return t.Format("02/01/2006 15:04")
}
