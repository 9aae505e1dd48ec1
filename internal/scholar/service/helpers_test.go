package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/scholarsync/internal/scholar/mail"
	"github.com/aussiebroadwan/scholarsync/internal/scholar/store/drivers/sqlite"
	"github.com/aussiebroadwan/scholarsync/pkg/cryptox"
	"github.com/aussiebroadwan/scholarsync/pkg/jwtx"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var testSecret = []byte("test-secret-test-secret-test-secret")

type fakeMailer struct {
	mu   sync.Mutex
	sent []mail.OTPMessage
	err  error
}

func (m *fakeMailer) SendOTP(_ context.Context, msg mail.OTPMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

func (m *fakeMailer) last(t *testing.T) mail.OTPMessage {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	require.NotEmpty(t, m.sent, "no mail sent")
	return m.sent[len(m.sent)-1]
}

var errSMTPDown = errors.New("smtp down")

type clock struct{ t time.Time }

func (c *clock) Now() time.Time          { return c.t }
func (c *clock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()
	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func newAuthService(t *testing.T) (*AuthService, *fakeMailer, *clock) {
	t.Helper()

	signer, err := jwtx.NewSignerHS256("", testSecret)
	require.NoError(t, err)

	m := &fakeMailer{}
	c := &clock{t: time.Now().UTC()}
	return &AuthService{
		Store:    newTestStore(t),
		Mailer:   m,
		Signer:   signer,
		Hasher:   cryptox.NewPasswordHasher(bcrypt.MinCost),
		Issuer:   "scholarsync",
		OTPTTL:   10 * time.Minute,
		TokenTTL: 24 * time.Hour,
		Now:      c.Now,
	}, m, c
}
