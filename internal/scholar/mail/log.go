package mail

import (
	"context"
	"log/slog"

	"github.com/aussiebroadwan/scholarsync/pkg/slogx"
)

// LogMailer writes verification codes to the log instead of sending them.
// Meant for local development.
type LogMailer struct {
	logger *slog.Logger
}

func NewLogMailer(logger *slog.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

func (m *LogMailer) SendOTP(ctx context.Context, msg OTPMessage) error {
	log := m.logger
	if log == nil {
		log = slogx.FromContext(ctx)
	}
	subject, _ := ComposeOTP(msg)
	log.InfoContext(ctx, "otp email (log driver)",
		"to", msg.To,
		"subject", subject,
		"otp", msg.Code,
	)
	return nil
}
