package notifications

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"

	"github.com/lifelogapp/lifelog/internal/apperror"
)

// Reminder push content, identical for every recipient.
const (
	reminderTitle = "Daily Journal Reminder"
	reminderBody  = "Time to write in your journal! Take a moment to reflect on your day."
)

// reminderTimePattern validates HH:MM in 24-hour time.
var reminderTimePattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// NotificationService defines the business logic contract for notification
// preferences and reminder dispatch.
type NotificationService interface {
	GetPreferences(ctx context.Context, userID string) (*Preferences, error)
	UpdatePreferences(ctx context.Context, userID string, req UpdatePreferencesRequest) (*Preferences, error)
	RegisterToken(ctx context.Context, userID, token string) (*Preferences, error)

	// SendDailyReminders pushes the reminder to every eligible user.
	SendDailyReminders(ctx context.Context) (DispatchResult, error)

	// Schedule lists the users due for reminders and their local times.
	Schedule(ctx context.Context) ([]ReminderTarget, error)

	// SenderConfigured reports whether real push delivery is available.
	SenderConfigured() bool
}

// notificationService implements NotificationService.
type notificationService struct {
	repo   PreferenceRepository
	sender Sender
}

// NewNotificationService creates a new notification service.
func NewNotificationService(repo PreferenceRepository, sender Sender) NotificationService {
	return &notificationService{repo: repo, sender: sender}
}

// GetPreferences returns the user's notification preferences.
func (s *notificationService) GetPreferences(ctx context.Context, userID string) (*Preferences, error) {
	return s.repo.GetPreferences(ctx, userID)
}

// UpdatePreferences applies a full preference update. Disabling daily
// reminders wipes the stored device token: a disabled user must re-grant
// push permission to get reminders again, and no stale token lingers.
func (s *notificationService) UpdatePreferences(ctx context.Context, userID string, req UpdatePreferencesRequest) (*Preferences, error) {
	if req.ReminderTime != "" && !reminderTimePattern.MatchString(req.ReminderTime) {
		return nil, apperror.NewValidation("Reminder time must be in HH:MM format.")
	}

	current, err := s.repo.GetPreferences(ctx, userID)
	if err != nil {
		return nil, err
	}

	prefs := &Preferences{
		DailyReminders: req.DailyReminders,
		ReminderTime:   req.ReminderTime,
		WeeklyDigest:   req.WeeklyDigest,
	}
	if prefs.ReminderTime == "" {
		prefs.ReminderTime = current.ReminderTime
	}
	if req.DailyReminders {
		prefs.FCMToken = current.FCMToken
	}

	if err := s.repo.UpdatePreferences(ctx, userID, prefs); err != nil {
		return nil, err
	}

	slog.Info("notification preferences updated",
		slog.String("user_id", userID),
		slog.Bool("daily_reminders", prefs.DailyReminders),
	)

	return prefs, nil
}

// RegisterToken stores a fresh device token and enables daily reminders.
func (s *notificationService) RegisterToken(ctx context.Context, userID, token string) (*Preferences, error) {
	if token == "" {
		return nil, apperror.NewValidation("Device token is required.")
	}

	if err := s.repo.SaveToken(ctx, userID, token); err != nil {
		return nil, err
	}

	return s.repo.GetPreferences(ctx, userID)
}

// SendDailyReminders pushes the daily reminder to every user with
// reminders enabled and a registered token. Each send is independent: a
// failed token is counted and logged, never aborts the batch.
func (s *notificationService) SendDailyReminders(ctx context.Context) (DispatchResult, error) {
	targets, err := s.repo.ListReminderTargets(ctx)
	if err != nil {
		return DispatchResult{}, apperror.NewInternal(fmt.Errorf("listing reminder targets: %w", err))
	}

	var result DispatchResult
	for _, t := range targets {
		if err := s.sender.Send(ctx, t.FCMToken, reminderTitle, reminderBody); err != nil {
			result.Failed++
			slog.Warn("reminder push failed",
				slog.String("user_id", t.UserID),
				slog.Any("error", err),
			)
			continue
		}
		result.Sent++
	}

	slog.Info("daily reminder batch finished",
		slog.Int("sent", result.Sent),
		slog.Int("failed", result.Failed),
	)

	return result, nil
}

// Schedule lists the users currently due for reminder dispatch.
func (s *notificationService) Schedule(ctx context.Context) ([]ReminderTarget, error) {
	targets, err := s.repo.ListReminderTargets(ctx)
	if err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("listing reminder targets: %w", err))
	}
	if targets == nil {
		targets = []ReminderTarget{}
	}
	return targets, nil
}

// SenderConfigured reports whether push delivery is wired to a real FCM
// client.
func (s *notificationService) SenderConfigured() bool {
	return s.sender.IsConfigured()
}
