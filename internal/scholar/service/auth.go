package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/scholarsync/internal/scholar/domain"
	"github.com/aussiebroadwan/scholarsync/internal/scholar/mail"
	"github.com/aussiebroadwan/scholarsync/internal/scholar/store"
	"github.com/aussiebroadwan/scholarsync/pkg/cryptox"
	"github.com/aussiebroadwan/scholarsync/pkg/jwtx"
	"github.com/aussiebroadwan/scholarsync/pkg/slogx"
)

const DefaultOTPTTL = 10 * time.Minute

var (
	ErrUserExists        = errors.New("user already exists")
	ErrUserNotFound      = errors.New("user not found")
	ErrAlreadyVerified   = errors.New("user is already verified")
	ErrInvalidOTP        = errors.New("invalid otp")
	ErrOTPExpired        = errors.New("otp is expired")
	ErrNotVerified       = errors.New("user is not verified")
	ErrIncorrectPassword = errors.New("incorrect password")

	// bcrypt only reads the first 72 bytes.
	ErrPasswordTooLong = fmt.Errorf("%w: password is too long", ErrBadRequest)
)

type AuthService struct {
	Store  store.Store
	Mailer mail.Mailer
	Signer jwtx.Signer
	Hasher cryptox.PasswordHasher

	Issuer   string
	OTPTTL   time.Duration
	TokenTTL time.Duration

	// Now and NewOTP default to the wall clock and cryptox.NewOTPCode.
	Now    func() time.Time
	NewOTP func() string
}

// LoginResult is a signed session token plus the profile it was issued for.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      domain.User
}

func (s *AuthService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

func (s *AuthService) otpTTL() time.Duration {
	if s.OTPTTL > 0 {
		return s.OTPTTL
	}
	return DefaultOTPTTL
}

func (s *AuthService) tokenTTL() time.Duration {
	if s.TokenTTL > 0 {
		return s.TokenTTL
	}
	return jwtx.DefaultSessionTTL
}

func (s *AuthService) newOTP() string {
	if s.NewOTP != nil {
		return s.NewOTP()
	}
	return cryptox.NewOTPCode()
}

// Signup registers an unverified user and emails them a one-time code.
// The user record survives a failed delivery; a retry then reports
// ErrUserExists until housekeeping removes the stale signup.
func (s *AuthService) Signup(ctx context.Context, name, email, password string) error {
	log := slogx.FromContext(ctx)

	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" || password == "" {
		return ErrBadRequest
	}

	_, err := s.Store.Users().GetUserByEmail(ctx, email)
	switch {
	case err == nil:
		return ErrUserExists
	case !errors.Is(err, store.ErrNotFound):
		log.Error("failed to look up user", slog.Any("error", err))
		return err
	}

	hash, err := s.Hasher.HashPassword(password)
	if err != nil {
		if len(password) > 72 {
			return ErrPasswordTooLong
		}
		log.Error("failed to hash password", slog.Any("error", err))
		return err
	}

	code := s.newOTP()
	expires := s.now().Add(s.otpTTL())
	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		OTP:          code,
		OTPExpiresAt: &expires,
	}

	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		// Lost a race with a concurrent signup for the same email.
		if errors.Is(err, store.ErrAlreadyExists) {
			return ErrUserExists
		}
		log.Error("failed to create user", slog.Any("error", err))
		return err
	}

	err = s.Mailer.SendOTP(ctx, mail.OTPMessage{
		To:   email,
		Name: name,
		Code: code,
		TTL:  s.otpTTL(),
	})
	if err != nil {
		log.Error("failed to send otp email",
			slog.String("user_id", user.ID),
			slog.Any("error", err),
		)
		return fmt.Errorf("send otp: %w", err)
	}

	log.Info("user signed up", slog.String("user_id", user.ID))
	return nil
}

// VerifyOTP marks the user verified when code matches the pending OTP and
// has not expired. A wrong code is reported before expiry is considered.
func (s *AuthService) VerifyOTP(ctx context.Context, email, code string) error {
	log := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		log.Error("failed to look up user", slog.Any("error", err))
		return err
	}

	if user.IsVerified {
		return ErrAlreadyVerified
	}
	if user.OTP == "" || user.OTP != code {
		log.Warn("otp mismatch", slog.String("user_id", user.ID))
		return ErrInvalidOTP
	}
	if user.OTPExpired(s.now()) {
		return ErrOTPExpired
	}

	if err := s.Store.Users().MarkVerified(ctx, user.ID); err != nil {
		log.Error("failed to mark user verified", slog.String("user_id", user.ID), slog.Any("error", err))
		return err
	}

	log.Info("user verified", slog.String("user_id", user.ID))
	return nil
}

// Login checks the password of a verified user and issues a session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (LoginResult, error) {
	log := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return LoginResult{}, ErrUserNotFound
		}
		log.Error("failed to look up user", slog.Any("error", err))
		return LoginResult{}, err
	}

	if !user.IsVerified {
		return LoginResult{}, ErrNotVerified
	}

	if err := s.Hasher.VerifyPassword(password, user.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			log.Warn("login with wrong password", slog.String("user_id", user.ID))
			return LoginResult{}, ErrIncorrectPassword
		}
		log.Error("failed to verify password", slog.String("user_id", user.ID), slog.Any("error", err))
		return LoginResult{}, err
	}

	claims := jwtx.NewSessionClaims(user.ID, user.Email, s.Issuer, s.tokenTTL(), s.now())
	token, err := s.Signer.Sign(claims)
	if err != nil {
		log.Error("failed to sign token", slog.Any("error", err))
		return LoginResult{}, err
	}

	return LoginResult{
		Token:     token,
		ExpiresAt: claims.ExpiresAt.Time,
		User:      user,
	}, nil
}
