package domain

import "time"

// VerificationCode is a single-use 6-digit login OTP tied to an email.
// Records are append-only: issuing a new code does not invalidate
// earlier ones, and consumed codes are kept with Verified=true.
type VerificationCode struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`
	Verified  bool      `json:"verified"`
}

// PasswordResetToken is a single-use 256-bit secret proving control of
// a password-reset email. Same lifecycle shape as VerificationCode with
// Used in place of Verified; looked up by token alone since the token
// itself is unguessable.
type PasswordResetToken struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`
	Used      bool      `json:"used"`
}
