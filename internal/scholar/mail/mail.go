// Package mail delivers verification codes to new users.
package mail

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// Mail drivers selectable with MAIL_DRIVER.
const (
	DriverLog    = "log"
	DriverSMTP   = "smtp"
	DriverResend = "resend"
)

// ErrNotConfigured is returned by New when the chosen driver is missing
// required settings.
var ErrNotConfigured = errors.New("mail: driver not configured")

// OTPMessage is everything needed to render a verification email.
type OTPMessage struct {
	To   string
	Name string
	Code string
	TTL  time.Duration
}

// Mailer sends verification codes. Implementations must be safe for
// concurrent use.
type Mailer interface {
	SendOTP(ctx context.Context, msg OTPMessage) error
}

// Config selects and configures a driver.
type Config struct {
	Driver string
	From   string

	SMTPHost string
	SMTPPort int
	Username string
	Password string

	ResendAPIKey  string
	ResendBaseURL string
}

// New builds the Mailer named by cfg.Driver.
func New(cfg Config, logger *slog.Logger) (Mailer, error) {
	switch strings.ToLower(cfg.Driver) {
	case "", DriverLog:
		return NewLogMailer(logger), nil
	case DriverSMTP:
		if cfg.SMTPHost == "" || cfg.Username == "" || cfg.Password == "" {
			return nil, fmt.Errorf("%w: smtp needs host, username and password", ErrNotConfigured)
		}
		return NewSMTPMailer(cfg)
	case DriverResend:
		if cfg.ResendAPIKey == "" || cfg.From == "" {
			return nil, fmt.Errorf("%w: resend needs an api key and sender", ErrNotConfigured)
		}
		return NewResendMailer(cfg), nil
	default:
		return nil, fmt.Errorf("mail: unknown driver %q", cfg.Driver)
	}
}

const otpSubject = "Your OTP for email verification"

// ComposeOTP renders the subject and plain text body of a verification
// email.
func ComposeOTP(msg OTPMessage) (subject, body string) {
	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s,\n\n", msg.Name)
	fmt.Fprintf(&b, "Your OTP for verification is %s.\n\n", msg.Code)
	if msg.TTL > 0 {
		fmt.Fprintf(&b, "This OTP will expire in %s.\n\n", humanDuration(msg.TTL))
	}
	b.WriteString("Thank you!\n")
	return otpSubject, b.String()
}

func humanDuration(d time.Duration) string {
	switch {
	case d%time.Hour == 0:
		return plural(int(d/time.Hour), "hour")
	case d%time.Minute == 0:
		return plural(int(d/time.Minute), "minute")
	default:
		return d.String()
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
