package common

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Verification codes are six decimal digits drawn uniformly from the
// inclusive range 100000–999999.
const (
	codeMin  = 100000
	codeSpan = 900000
)

// GenerateVerificationCode returns a fresh random six-digit numeric code.
// It returns an error only if the system random number generator fails.
func GenerateVerificationCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeSpan))
	if err != nil {
		return "", fmt.Errorf("generating verification code: %w", err)
	}
	return fmt.Sprintf("%d", codeMin+n.Int64()), nil
}

// WipeByteArray overwrites the contents of the provided byte slice with zeros.
// Used to remove in-memory passwords after the auth flow no longer needs them.
//
// If the slice is nil, the function does nothing.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
