package models

import (
	"time"

	"github.com/bfontes/tavivo/internal/common"
)

// PendingVerification tracks an unconfirmed sign-up awaiting code entry.
// It lives in memory only: the chosen password is never written to durable
// storage, and the whole record is lost if the process restarts.
type PendingVerification struct {
	Name     string
	Email    string
	Password []byte
	Code     string
	IssuedAt time.Time
}

// Discard wipes the in-memory password. Call it whenever the record is
// consumed into a session or abandoned.
func (p *PendingVerification) Discard() {
	common.WipeByteArray(p.Password)
	p.Password = nil
}
