package app

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) Config {
	t.Helper()
	return Config{
		Env:                  "test",
		LogLevel:             "error",
		LogFormat:            "json",
		Port:                 0,
		ShutdownGracePeriod:  time.Second,
		StoreDriver:          StoreSQLite,
		DatabaseFile:         filepath.Join(t.TempDir(), "scholarsync.db"),
		JWTExpiresIn:         TokenTTL(time.Hour),
		JWTIssuer:            "scholarsync",
		OTPTTL:               10 * time.Minute,
		BcryptCost:           4,
		MailDriver:           "log",
		CORSAllowedOrigins:   []string{"*"},
		HousekeepingInterval: time.Hour,
		UnverifiedRetention:  168 * time.Hour,
	}
}

func TestNewServesAPI(t *testing.T) {
	app, err := New(testConfig(t))
	require.NoError(t, err)

	t.Cleanup(func() { require.NoError(t, app.Shutdown()) })

	rec := httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body := `{"name":"Ada","email":"ada@example.com","password":"hunter22"}`
	rec = httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(body)))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/students", nil))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestNewRejectsShortSecret(t *testing.T) {
	cfg := testConfig(t)
	cfg.JWTSecret = "short"

	_, err := New(cfg)
	require.ErrorContains(t, err, "token signer")
}

func TestNewRejectsUnconfiguredMailer(t *testing.T) {
	cfg := testConfig(t)
	cfg.MailDriver = "smtp"

	_, err := New(cfg)
	require.ErrorContains(t, err, "mailer")
}
