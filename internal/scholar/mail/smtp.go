package mail

import (
	"context"
	"fmt"
	"time"

	gomail "github.com/wneessen/go-mail"
)

const smtpTimeout = 15 * time.Second

// SMTPMailer sends plain text mail through an authenticated SMTP relay
// (Gmail by default) using STARTTLS.
type SMTPMailer struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewSMTPMailer(cfg Config) (*SMTPMailer, error) {
	from := cfg.From
	if from == "" {
		from = cfg.Username
	}
	port := cfg.SMTPPort
	if port == 0 {
		port = 587
	}
	return &SMTPMailer{
		host:     cfg.SMTPHost,
		port:     port,
		username: cfg.Username,
		password: cfg.Password,
		from:     from,
	}, nil
}

func (m *SMTPMailer) message(msg OTPMessage) (*gomail.Msg, error) {
	subject, body := ComposeOTP(msg)

	out := gomail.NewMsg()
	if err := out.From(m.from); err != nil {
		return nil, fmt.Errorf("smtp from: %w", err)
	}
	if err := out.To(msg.To); err != nil {
		return nil, fmt.Errorf("smtp to: %w", err)
	}
	out.Subject(subject)
	out.SetBodyString(gomail.TypeTextPlain, body)
	return out, nil
}

func (m *SMTPMailer) SendOTP(ctx context.Context, msg OTPMessage) error {
	out, err := m.message(msg)
	if err != nil {
		return err
	}

	client, err := gomail.NewClient(m.host,
		gomail.WithPort(m.port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(m.username),
		gomail.WithPassword(m.password),
		gomail.WithTLSPolicy(gomail.TLSMandatory),
		gomail.WithTimeout(smtpTimeout),
	)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, out); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}
