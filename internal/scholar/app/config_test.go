package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTokenTTL(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
	}{
		{"1d", 24 * time.Hour},
		{"7d", 7 * 24 * time.Hour},
		{"12h", 12 * time.Hour},
		{"90m", 90 * time.Minute},
		{"3600", time.Hour},
		{" 2d ", 48 * time.Hour},
	}

	for _, tt := range tests {
		var ttl TokenTTL
		require.NoError(t, ttl.UnmarshalText([]byte(tt.in)), tt.in)
		require.Equal(t, tt.want, ttl.Duration(), tt.in)
	}

	for _, bad := range []string{"", "xd", "soon", "1.5d"} {
		var ttl TokenTTL
		require.Error(t, ttl.UnmarshalText([]byte(bad)), bad)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Equal(t, 5000, cfg.Port)
	require.Equal(t, StoreSQLite, cfg.StoreDriver)
	require.Equal(t, "scholarsync.db", cfg.DatabaseFile)
	require.Equal(t, 24*time.Hour, cfg.JWTExpiresIn.Duration())
	require.Equal(t, "scholarsync", cfg.JWTIssuer)
	require.Equal(t, 10*time.Minute, cfg.OTPTTL)
	require.Equal(t, 10, cfg.BcryptCost)
	require.Equal(t, "log", cfg.MailDriver)
	require.Equal(t, "smtp.gmail.com", cfg.SMTPHost)
	require.Equal(t, 587, cfg.SMTPPort)
	require.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	require.Equal(t, 168*time.Hour, cfg.UnverifiedRetention)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("JWT_EXPIRES_IN", "3d")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test,http://b.test")
	t.Setenv("EMAIL_USER", "noreply@example.com")
	t.Setenv("STORE_DRIVER", "mongo")
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, 8081, cfg.Port)
	require.Equal(t, 72*time.Hour, cfg.JWTExpiresIn.Duration())
	require.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSAllowedOrigins)
	require.Equal(t, "noreply@example.com", cfg.mailFrom())

	t.Setenv("MAIL_FROM", "team@example.com")
	cfg, err = LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "team@example.com", cfg.mailFrom())
}

func TestLoadConfigRejects(t *testing.T) {
	t.Run("bad ttl", func(t *testing.T) {
		t.Setenv("JWT_EXPIRES_IN", "forever")
		_, err := LoadConfig()
		require.Error(t, err)
	})

	t.Run("mongo without uri", func(t *testing.T) {
		t.Setenv("STORE_DRIVER", "mongo")
		_, err := LoadConfig()
		require.ErrorContains(t, err, "MONGO_URI")
	})

	t.Run("unknown driver", func(t *testing.T) {
		t.Setenv("STORE_DRIVER", "postgres")
		_, err := LoadConfig()
		require.ErrorContains(t, err, "STORE_DRIVER")
	})
}
