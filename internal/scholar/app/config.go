package app

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	StoreSQLite = "sqlite"
	StoreMongo  = "mongo"
)

type Config struct {
	Env                 string        `env:"ENV"                   envDefault:"dev"`
	LogLevel            string        `env:"LOG_LEVEL"             envDefault:"info"`
	LogFormat           string        `env:"LOG_FORMAT"            envDefault:"json"`
	Port                int           `env:"PORT"                  envDefault:"5000"`
	ShutdownGracePeriod time.Duration `env:"SHUTDOWN_GRACE_PERIOD" envDefault:"10s"`

	StoreDriver   string `env:"STORE_DRIVER"   envDefault:"sqlite"`
	DatabaseFile  string `env:"DATABASE_FILE"  envDefault:"scholarsync.db"`
	MongoURI      string `env:"MONGO_URI"`
	MongoDatabase string `env:"MONGO_DATABASE" envDefault:"scholarsync"`

	// JWTSecret signs session tokens. When empty a random secret is made at
	// startup and every token dies with the process.
	JWTSecret    string   `env:"JWT_SECRET"`
	JWTExpiresIn TokenTTL `env:"JWT_EXPIRES_IN" envDefault:"1d"`
	JWTIssuer    string   `env:"JWT_ISSUER"     envDefault:"scholarsync"`

	OTPTTL     time.Duration `env:"OTP_TTL"     envDefault:"10m"`
	BcryptCost int           `env:"BCRYPT_COST" envDefault:"10"`

	MailDriver    string `env:"MAIL_DRIVER"     envDefault:"log"`
	EmailUser     string `env:"EMAIL_USER"`
	EmailPass     string `env:"EMAIL_PASS"`
	SMTPHost      string `env:"SMTP_HOST"       envDefault:"smtp.gmail.com"`
	SMTPPort      int    `env:"SMTP_PORT"       envDefault:"587"`
	ResendAPIKey  string `env:"RESEND_API_KEY"`
	ResendBaseURL string `env:"RESEND_BASE_URL"`
	MailFrom      string `env:"MAIL_FROM"`

	FrontendDir        string   `env:"FRONTEND_DIR"`
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`

	HousekeepingInterval time.Duration `env:"HOUSEKEEPING_INTERVAL" envDefault:"1h"`
	UnverifiedRetention  time.Duration `env:"UNVERIFIED_RETENTION"  envDefault:"168h"`

	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
}

// LoadConfig reads the configuration from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects combinations the server cannot start with.
func (c Config) Validate() error {
	var errs []error

	switch c.StoreDriver {
	case StoreSQLite:
		if c.DatabaseFile == "" {
			errs = append(errs, errors.New("DATABASE_FILE is required for the sqlite store"))
		}
	case StoreMongo:
		if c.MongoURI == "" {
			errs = append(errs, errors.New("MONGO_URI is required for the mongo store"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver))
	}

	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT %d out of range", c.Port))
	}
	if c.JWTExpiresIn <= 0 {
		errs = append(errs, errors.New("JWT_EXPIRES_IN must be positive"))
	}
	if c.OTPTTL <= 0 {
		errs = append(errs, errors.New("OTP_TTL must be positive"))
	}

	return errors.Join(errs...)
}

// mailFrom is the sender address, falling back to the SMTP login.
func (c Config) mailFrom() string {
	if c.MailFrom != "" {
		return c.MailFrom
	}
	return c.EmailUser
}

// TokenTTL is a token lifetime. It accepts whole days ("1d", "7d"), Go
// durations ("12h", "90m") and bare seconds ("3600").
type TokenTTL time.Duration

func (t TokenTTL) Duration() time.Duration { return time.Duration(t) }

func (t *TokenTTL) UnmarshalText(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "" {
		return errors.New("empty duration")
	}

	if days, ok := strings.CutSuffix(s, "d"); ok {
		n, err := strconv.Atoi(days)
		if err != nil {
			return fmt.Errorf("invalid day count %q", s)
		}
		*t = TokenTTL(time.Duration(n) * 24 * time.Hour)
		return nil
	}

	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		*t = TokenTTL(time.Duration(n) * time.Second)
		return nil
	}

	d, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q", s)
	}
	*t = TokenTTL(d)
	return nil
}
