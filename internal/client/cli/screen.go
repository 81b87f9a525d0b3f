package cli

import "github.com/bfontes/tavivo/internal/client/models"

// Screen identifies which screen of the app is active.
type Screen int

const (
	ScreenLogin Screen = iota
	ScreenVerification
	ScreenHome
	ScreenProfile
)

func (s Screen) String() string {
	switch s {
	case ScreenLogin:
		return "login"
	case ScreenVerification:
		return "verification"
	case ScreenHome:
		return "home"
	case ScreenProfile:
		return "profile"
	default:
		return "unknown"
	}
}

// screenFor derives the active screen from the auth state. An authenticated
// session always wins over a leftover pending record; profileOpen only
// matters once a session exists.
func screenFor(session *models.Session, pending *models.PendingVerification, profileOpen bool) Screen {
	switch {
	case session != nil && profileOpen:
		return ScreenProfile
	case session != nil:
		return ScreenHome
	case pending != nil:
		return ScreenVerification
	default:
		return ScreenLogin
	}
}
