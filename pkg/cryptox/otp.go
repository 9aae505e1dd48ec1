package cryptox

import (
	"math/rand/v2"

	"github.com/pquerna/otp"
)

// OTPDigits is the length of the email verification code.
const OTPDigits = otp.DigitsSix

// NewOTPCode returns a six digit numeric code for email verification. The
// code never starts with a zero so it survives clients that coerce it to a
// number.
//
// The source is math/rand: the code is short-lived and delivered out of band,
// so it is not treated as a secret key.
func NewOTPCode() string {
	n := 100000 + rand.IntN(900000) // #nosec G404
	return OTPDigits.Format(int32(n))
}

// IsOTPCode reports whether s has the shape of a code from NewOTPCode.
func IsOTPCode(s string) bool {
	if len(s) != OTPDigits.Length() {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
