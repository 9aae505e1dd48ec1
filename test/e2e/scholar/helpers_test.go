package scholar_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/scholarsync/internal/scholar/app"
	"github.com/aussiebroadwan/scholarsync/pkg/scholarsdk"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * End-to-end helpers. The server runs in-process behind httptest and sends
 * its verification mail to a fake Resend API so tests can read the codes.
 */

const (
	userName     = "Ada Lovelace"
	userPassword = "correct horse battery staple"
)

var codePattern = regexp.MustCompile(`is (\d{6})\.`)

// outbox is a stand-in for the Resend /emails endpoint.
type outbox struct {
	mu    sync.Mutex
	codes map[string]string
}

func newOutbox(t *testing.T) (*outbox, string) {
	t.Helper()

	ob := &outbox{codes: map[string]string{}}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/emails" {
			http.NotFound(w, r)
			return
		}

		var body struct {
			To   []string `json:"to"`
			Text string   `json:"text"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || len(body.To) == 0 {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}

		m := codePattern.FindStringSubmatch(body.Text)
		if m == nil {
			http.Error(w, "no code in body", http.StatusUnprocessableEntity)
			return
		}

		ob.mu.Lock()
		ob.codes[body.To[0]] = m[1]
		ob.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"test-email"}`))
	}))
	t.Cleanup(srv.Close)

	return ob, srv.URL
}

func (o *outbox) code(t *testing.T, email string) string {
	t.Helper()
	o.mu.Lock()
	defer o.mu.Unlock()
	code, ok := o.codes[email]
	require.True(t, ok, "no mail sent to %s", email)
	return code
}

// startServer boots the whole application and returns an SDK client for it.
func startServer(t *testing.T, mutate func(*app.Config)) (*scholarsdk.Client, *outbox) {
	t.Helper()

	ob, resendURL := newOutbox(t)

	cfg := app.Config{
		Env:                  "test",
		LogLevel:             "error",
		LogFormat:            "json",
		ShutdownGracePeriod:  time.Second,
		StoreDriver:          app.StoreSQLite,
		DatabaseFile:         filepath.Join(t.TempDir(), "scholarsync.db"),
		MongoDatabase:        "scholarsync_e2e",
		JWTSecret:            "e2e-secret-e2e-secret-e2e-secret",
		JWTExpiresIn:         app.TokenTTL(time.Hour),
		JWTIssuer:            "scholarsync",
		OTPTTL:               10 * time.Minute,
		BcryptCost:           4,
		MailDriver:           "resend",
		ResendAPIKey:         "re_test",
		ResendBaseURL:        resendURL,
		MailFrom:             "noreply@scholarsync.test",
		CORSAllowedOrigins:   []string{"*"},
		HousekeepingInterval: time.Hour,
	}
	if mutate != nil {
		mutate(&cfg)
	}

	application, err := app.New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = application.Shutdown() })

	srv := httptest.NewServer(application.Handler())
	t.Cleanup(srv.Close)

	return scholarsdk.NewClient(srv.URL), ob
}

// startMongo runs a throwaway MongoDB and returns its URI. Skipped in -short
// mode and when no container runtime is available.
func startMongo(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("mongo e2e skipped in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "mongo:7",
			ExposedPorts: []string{"27017/tcp"},
			WaitingFor:   wait.ForListeningPort("27017/tcp").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "27017")
	require.NoError(t, err)

	return fmt.Sprintf("mongodb://%s:%s", host, port.Port())
}

// signupAndLogin walks a new user through signup, verification and login.
func signupAndLogin(t *testing.T, client *scholarsdk.Client, ob *outbox, email string) *scholarsdk.Session {
	t.Helper()
	ctx := t.Context()

	_, err := client.Signup(ctx, scholarsdk.SignupRequest{Name: userName, Email: email, Password: userPassword})
	require.NoError(t, err)

	_, err = client.VerifyOTP(ctx, scholarsdk.VerifyRequest{Email: email, OTP: ob.code(t, email)})
	require.NoError(t, err)

	session, err := client.Login(ctx, scholarsdk.LoginRequest{Email: email, Password: userPassword})
	require.NoError(t, err)
	return session
}
