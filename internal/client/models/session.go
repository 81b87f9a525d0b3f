// Package models defines the data records the client keeps on the device.
package models

// LoginMethod identifies how the current session was established.
type LoginMethod string

const (
	LoginMethodEmail  LoginMethod = "email"
	LoginMethodGoogle LoginMethod = "google"
)

// Session is the authenticated identity currently active on the device.
// At most one session exists at a time; it is persisted until logout.
type Session struct {
	Email       string      `json:"email"`
	Name        string      `json:"name"`
	LoginMethod LoginMethod `json:"loginMethod"`
	Picture     string      `json:"picture,omitempty"`
}
