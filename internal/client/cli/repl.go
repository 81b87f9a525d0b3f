package cli

import (
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// Run starts the read-eval-print loop.
//
// It restores a persisted session (if any), then reads a command per line and
// dispatches to the handlers of the active screen. Unknown commands are
// reported back to the user. The loop exits on EOF or when the user types
// "exit" or "quit".
//
// Command handlers print their own errors; no failure ends the loop.
func (a *App) Run(ctx context.Context) {
	if s := a.auth.Restore(ctx); s != nil {
		printlnFn(fmt.Sprintf("Welcome back, %s!", s.Name))
	}
	a.refreshScreen()

	printlnFn("Tá Vivo Ainda (type 'help' for commands)")
	a.loop(ctx)
}

func (a *App) loop(ctx context.Context) {
	for {
		printlnFn(fmt.Sprintf("tavivo [%s] > ", a.status()))
		line, err := a.reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		if !a.dispatch(ctx, parts[0]) {
			return
		}
		a.refreshScreen()
	}
}

func (a *App) status() string {
	switch a.screen {
	case ScreenVerification:
		return "verify " + a.auth.Pending().Email
	case ScreenHome:
		return a.auth.Session().Name
	case ScreenProfile:
		return a.auth.Session().Name + " / profile"
	default:
		return "login"
	}
}

// dispatch runs one command for the active screen. It returns false when the
// loop should stop.
func (a *App) dispatch(ctx context.Context, cmd string) bool {
	if cmd == "exit" || cmd == "quit" {
		printlnFn("Bye!")
		return false
	}

	switch a.screen {
	case ScreenLogin:
		switch cmd {
		case "help":
			printlnFn("Available commands: login, signup, google, exit")
		case "login":
			a.handleLogin(ctx)
		case "signup":
			a.handleSignUp(ctx)
		case "google":
			a.handleGoogleLogin(ctx)
		default:
			printlnFn("Unknown command:", cmd)
		}

	case ScreenVerification:
		switch cmd {
		case "help":
			printlnFn("Available commands: verify, resend, cancel, exit")
		case "verify":
			a.handleVerify(ctx)
		case "resend":
			a.handleResend(ctx)
		case "cancel":
			a.handleCancel()
		default:
			printlnFn("Unknown command:", cmd)
		}

	case ScreenHome:
		switch cmd {
		case "help":
			if a.viewMode.Get(ctx) {
				printlnFn("Available commands: confirm, status, mode, exit")
			} else {
				printlnFn("Available commands: confirm, status, mode, profile, logout, exit")
			}
		case "confirm":
			a.handleConfirm(ctx)
		case "status":
			a.handleStatus(ctx)
		case "mode":
			a.handleModeToggle(ctx)
		case "profile":
			a.handleOpenProfile(ctx)
		case "logout":
			a.handleLogout(ctx)
		default:
			printlnFn("Unknown command:", cmd)
		}

	case ScreenProfile:
		switch cmd {
		case "help":
			printlnFn("Available commands: show, edit, save, back, exit")
		case "show":
			a.printProfile()
		case "edit":
			a.handleEditProfile()
		case "save":
			a.handleSaveProfile(ctx)
		case "back":
			a.profileOpen = false
			a.profileDraft = nil
		default:
			printlnFn("Unknown command:", cmd)
		}
	}

	return true
}
