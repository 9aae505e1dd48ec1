package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/scholarsync/pkg/cryptox"
	"github.com/aussiebroadwan/scholarsync/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestSignup(t *testing.T) {
	ctx := context.Background()

	t.Run("creates unverified user with pending otp", func(t *testing.T) {
		svc, m, c := newAuthService(t)

		require.NoError(t, svc.Signup(ctx, "Ada", "ada@example.com", "hunter22"))

		u, err := svc.Store.Users().GetUserByEmail(ctx, "ada@example.com")
		require.NoError(t, err)
		require.False(t, u.IsVerified)
		require.True(t, cryptox.IsOTPCode(u.OTP))
		require.NotNil(t, u.OTPExpiresAt)
		require.WithinDuration(t, c.Now().Add(10*time.Minute), *u.OTPExpiresAt, time.Millisecond)
		require.NotEqual(t, "hunter22", u.PasswordHash)

		sent := m.last(t)
		require.Equal(t, "ada@example.com", sent.To)
		require.Equal(t, "Ada", sent.Name)
		require.Equal(t, u.OTP, sent.Code)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		svc, _, _ := newAuthService(t)

		require.NoError(t, svc.Signup(ctx, "Ada", "ada@example.com", "hunter22"))
		require.ErrorIs(t, svc.Signup(ctx, "Imposter", "ada@example.com", "other"), ErrUserExists)
	})

	t.Run("duplicate of verified user conflicts", func(t *testing.T) {
		svc, m, _ := newAuthService(t)

		require.NoError(t, svc.Signup(ctx, "Ada", "ada@example.com", "hunter22"))
		require.NoError(t, svc.VerifyOTP(ctx, "ada@example.com", m.last(t).Code))
		require.ErrorIs(t, svc.Signup(ctx, "Ada", "ada@example.com", "hunter22"), ErrUserExists)
	})

	t.Run("missing fields", func(t *testing.T) {
		svc, m, _ := newAuthService(t)

		require.ErrorIs(t, svc.Signup(ctx, "", "ada@example.com", "pw"), ErrBadRequest)
		require.ErrorIs(t, svc.Signup(ctx, "Ada", "  ", "pw"), ErrBadRequest)
		require.ErrorIs(t, svc.Signup(ctx, "Ada", "ada@example.com", ""), ErrBadRequest)
		require.Empty(t, m.sent)
	})

	t.Run("password too long", func(t *testing.T) {
		svc, m, _ := newAuthService(t)

		err := svc.Signup(ctx, "Ada", "ada@example.com", strings.Repeat("x", 73))
		require.ErrorIs(t, err, ErrPasswordTooLong)
		require.ErrorIs(t, err, ErrBadRequest)
		require.Empty(t, m.sent)
	})

	t.Run("mail failure keeps the user", func(t *testing.T) {
		svc, m, _ := newAuthService(t)
		m.err = errSMTPDown

		err := svc.Signup(ctx, "Ada", "ada@example.com", "hunter22")
		require.ErrorIs(t, err, errSMTPDown)

		_, err = svc.Store.Users().GetUserByEmail(ctx, "ada@example.com")
		require.NoError(t, err)
	})
}

func TestVerifyOTP(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*AuthService, string, *clock) {
		svc, m, c := newAuthService(t)
		require.NoError(t, svc.Signup(ctx, "Ada", "ada@example.com", "hunter22"))
		return svc, m.last(t).Code, c
	}

	t.Run("success clears otp", func(t *testing.T) {
		svc, code, _ := setup(t)

		require.NoError(t, svc.VerifyOTP(ctx, "ada@example.com", code))

		u, err := svc.Store.Users().GetUserByEmail(ctx, "ada@example.com")
		require.NoError(t, err)
		require.True(t, u.IsVerified)
		require.Empty(t, u.OTP)
		require.Nil(t, u.OTPExpiresAt)

		require.ErrorIs(t, svc.VerifyOTP(ctx, "ada@example.com", code), ErrAlreadyVerified)
	})

	t.Run("unknown email", func(t *testing.T) {
		svc, code, _ := setup(t)
		require.ErrorIs(t, svc.VerifyOTP(ctx, "nobody@example.com", code), ErrUserNotFound)
	})

	t.Run("wrong code", func(t *testing.T) {
		svc, code, _ := setup(t)
		wrong := "000000"
		if code == wrong {
			wrong = "111111"
		}
		require.ErrorIs(t, svc.VerifyOTP(ctx, "ada@example.com", wrong), ErrInvalidOTP)
	})

	t.Run("wrong code after expiry is still invalid", func(t *testing.T) {
		svc, code, c := setup(t)
		c.Advance(11 * time.Minute)
		require.ErrorIs(t, svc.VerifyOTP(ctx, "ada@example.com", code+"9"), ErrInvalidOTP)
	})

	t.Run("right code after expiry", func(t *testing.T) {
		svc, code, c := setup(t)
		c.Advance(11 * time.Minute)
		require.ErrorIs(t, svc.VerifyOTP(ctx, "ada@example.com", code), ErrOTPExpired)
	})

	t.Run("expiry instant is expired", func(t *testing.T) {
		svc, code, c := setup(t)
		c.Advance(10 * time.Minute)
		require.ErrorIs(t, svc.VerifyOTP(ctx, "ada@example.com", code), ErrOTPExpired)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	svc, m, _ := newAuthService(t)
	require.NoError(t, svc.Signup(ctx, "Ada", "ada@example.com", "hunter22"))

	t.Run("before verification", func(t *testing.T) {
		_, err := svc.Login(ctx, "ada@example.com", "hunter22")
		require.ErrorIs(t, err, ErrNotVerified)
	})

	require.NoError(t, svc.VerifyOTP(ctx, "ada@example.com", m.last(t).Code))

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(ctx, "nobody@example.com", "hunter22")
		require.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, "ada@example.com", "hunter23")
		require.ErrorIs(t, err, ErrIncorrectPassword)
	})

	t.Run("token carries user id and email", func(t *testing.T) {
		res, err := svc.Login(ctx, "ada@example.com", "hunter22")
		require.NoError(t, err)
		require.NotEmpty(t, res.Token)
		require.Equal(t, "Ada", res.User.Name)

		claims, err := jwtx.NewVerifierHS256(testSecret, jwtx.VerifyOptions{Issuer: "scholarsync"}).Verify(res.Token)
		require.NoError(t, err)
		require.Equal(t, res.User.ID, claims.UserID)
		require.Equal(t, "ada@example.com", claims.Email)
		require.WithinDuration(t, time.Now().Add(24*time.Hour), claims.ExpiresAt.Time, time.Minute)
	})
}
