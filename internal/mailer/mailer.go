// Package mailer sends transactional email (verification links, password
// resets). The Mailer interface keeps the auth service independent of the
// transport so tests can capture outbound mail.
package mailer

import (
	"context"
	"log/slog"
)

// Mailer is the outbound mail contract consumed by the auth service.
type Mailer interface {
	// Send delivers a plain-text message to the given recipients.
	Send(ctx context.Context, to []string, subject, body string) error

	// IsConfigured reports whether real delivery is available.
	IsConfigured() bool
}

// LogMailer is the development fallback: it logs messages instead of
// sending them so the full auth flow works without an SMTP server.
type LogMailer struct{}

// Send logs the message at info level.
func (LogMailer) Send(ctx context.Context, to []string, subject, body string) error {
	slog.Info("mail (not sent, SMTP unconfigured)",
		slog.Any("to", to),
		slog.String("subject", subject),
		slog.String("body", body),
	)
	return nil
}

// IsConfigured always returns false for the log mailer.
func (LogMailer) IsConfigured() bool { return false }
