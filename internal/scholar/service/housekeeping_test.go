package service

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/scholarsync/internal/scholar/domain"
	"github.com/aussiebroadwan/scholarsync/pkg/slogx"
	"github.com/stretchr/testify/require"
)

func TestHousekeepingCleanup(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	now := time.Now().UTC()

	stale := now.Add(-8 * 24 * time.Hour)
	recent := now.Add(-time.Hour)
	require.NoError(t, st.Users().CreateUser(ctx, &domain.User{Name: "a", Email: "stale@example.com", PasswordHash: "x", OTP: "123456", OTPExpiresAt: &stale}))
	require.NoError(t, st.Users().CreateUser(ctx, &domain.User{Name: "b", Email: "recent@example.com", PasswordHash: "x", OTP: "123456", OTPExpiresAt: &recent}))

	hk := NewHousekeepingService(st, slogx.Discard(), time.Hour, 7*24*time.Hour)
	hk.now = func() time.Time { return now }

	require.EqualValues(t, 1, hk.cleanup(ctx))
	require.EqualValues(t, 0, hk.cleanup(ctx))

	_, err := st.Users().GetUserByEmail(ctx, "recent@example.com")
	require.NoError(t, err)
}

func TestHousekeepingDisabled(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	old := time.Now().Add(-365 * 24 * time.Hour)
	require.NoError(t, st.Users().CreateUser(ctx, &domain.User{Name: "a", Email: "a@example.com", PasswordHash: "x", OTP: "1", OTPExpiresAt: &old}))

	hk := NewHousekeepingService(st, slogx.Discard(), 0, 0)
	require.Equal(t, time.Hour, hk.Interval)
	require.EqualValues(t, 0, hk.cleanup(ctx))
}

func TestHousekeepingStartStop(t *testing.T) {
	hk := NewHousekeepingService(newTestStore(t), slogx.Discard(), 10*time.Millisecond, time.Hour)
	hk.Start()
	time.Sleep(30 * time.Millisecond)
	hk.Stop()
}

func TestHousekeepingStopIsIdempotent(t *testing.T) {
	hk := NewHousekeepingService(newTestStore(t), slogx.Discard(), time.Hour, time.Hour)
	hk.Stop()

	hk.Start()
	hk.Start()
	hk.Stop()
	hk.Stop()
}
