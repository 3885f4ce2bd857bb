package notifications

import (
	"context"
	"fmt"
	"log/slog"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// Sender delivers a push notification to one device token.
type Sender interface {
	Send(ctx context.Context, token, title, body string) error
	IsConfigured() bool
}

// fcmSender sends pushes through Firebase Cloud Messaging.
type fcmSender struct {
	client *messaging.Client
}

// NewFCMSender initializes a Firebase app from a service-account
// credentials file and returns an FCM-backed sender.
func NewFCMSender(ctx context.Context, credentialsFile string) (Sender, error) {
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("initializing firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("initializing messaging client: %w", err)
	}

	return &fcmSender{client: client}, nil
}

// Send pushes a notification message to the given device token.
func (s *fcmSender) Send(ctx context.Context, token, title, body string) error {
	_, err := s.client.Send(ctx, &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
	})
	if err != nil {
		return fmt.Errorf("sending push: %w", err)
	}
	return nil
}

func (s *fcmSender) IsConfigured() bool { return true }

// NopSender is the fallback when no Firebase credentials are configured.
// Sends are logged and dropped so the rest of the app keeps working.
type NopSender struct{}

// Send logs the would-be push at debug level.
func (NopSender) Send(ctx context.Context, token, title, body string) error {
	slog.Debug("push dropped (FCM unconfigured)",
		slog.String("title", title),
	)
	return nil
}

func (NopSender) IsConfigured() bool { return false }
