package domain

import "time"

// User is an account that signs in to manage student records. The OTP
// fields are only set between signup and verification.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt modular crypt format
	IsVerified   bool
	OTP          string
	OTPExpiresAt *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// OTPExpired reports whether the pending code is no longer usable at now.
// A user with no expiry recorded is treated as expired.
func (u User) OTPExpired(now time.Time) bool {
	if u.OTPExpiresAt == nil {
		return true
	}
	return !now.Before(*u.OTPExpiresAt)
}
