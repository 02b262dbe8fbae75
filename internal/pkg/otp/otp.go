package otp

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// NewCode generates a 6-digit verification code, uniform in
// [100000, 999999]. Low entropy compared to a reset token, but the
// code is meant to be typed by a human and is scoped to an email.
func NewCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("generate verification code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
