package cryptox

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultPasswordCost is the bcrypt work factor used when none is configured.
const DefaultPasswordCost = 10

// ErrPasswordMismatch is returned by VerifyPassword when the password is wrong.
var ErrPasswordMismatch = errors.New("password does not match")

// PasswordHasher hashes and verifies passwords with bcrypt at a fixed cost.
// The zero value uses DefaultPasswordCost.
type PasswordHasher struct {
	Cost int
}

// NewPasswordHasher returns a hasher using cost, clamped to the range bcrypt
// accepts. A cost of zero selects DefaultPasswordCost.
func NewPasswordHasher(cost int) PasswordHasher {
	switch {
	case cost == 0:
		cost = DefaultPasswordCost
	case cost < bcrypt.MinCost:
		cost = bcrypt.MinCost
	case cost > bcrypt.MaxCost:
		cost = bcrypt.MaxCost
	}
	return PasswordHasher{Cost: cost}
}

func (h PasswordHasher) cost() int {
	if h.Cost == 0 {
		return DefaultPasswordCost
	}
	return h.Cost
}

// HashPassword returns a salted bcrypt hash in modular crypt format.
func (h PasswordHasher) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost())
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword compares password against encodedHash. It returns
// ErrPasswordMismatch for a wrong password and a wrapped error when the hash
// itself cannot be read.
func (h PasswordHasher) VerifyPassword(password, encodedHash string) error {
	err := bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrPasswordMismatch
	default:
		return fmt.Errorf("invalid password hash: %w", err)
	}
}

// HashCost reports the work factor recorded in encodedHash.
func HashCost(encodedHash string) (int, error) {
	return bcrypt.Cost([]byte(encodedHash))
}
