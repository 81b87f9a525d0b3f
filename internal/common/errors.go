// Package common defines shared constants and sentinel errors used across
// the Tá Vivo Ainda client. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Validation errors: user input failed a precondition. The wrapping
	// error message names the offending field or rule.
	ErrValidation = errors.New("validation error")

	// Auth flow errors.
	ErrInvalidCode           = errors.New("invalid verification code")
	ErrNoPendingVerification = errors.New("no verification in progress")
	ErrExternalAuth          = errors.New("external authentication failed")

	// Daily check-in errors.
	ErrAlreadyConfirmed = errors.New("already confirmed today")
)
