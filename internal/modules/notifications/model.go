// Package notifications manages push-notification preferences and the
// reminder dispatch path. Preferences live on the user's profile row; the
// actual pushes go out through a Sender so the service works (and tests
// run) without Firebase credentials.
package notifications

// Preferences is a user's notification configuration. FCMToken is nil
// whenever daily reminders are disabled -- disabling wipes the stored
// device token so a stale token can never be pushed to.
type Preferences struct {
	DailyReminders bool    `json:"dailyReminders"`
	ReminderTime   string  `json:"reminderTime"` // HH:MM, 24-hour
	WeeklyDigest   bool    `json:"weeklyDigest"`
	FCMToken       *string `json:"fcmToken,omitempty"`
}

// UpdatePreferencesRequest holds the data submitted to
// PUT /api/notifications/preferences.
type UpdatePreferencesRequest struct {
	DailyReminders bool   `json:"dailyReminders"`
	ReminderTime   string `json:"reminderTime"`
	WeeklyDigest   bool   `json:"weeklyDigest"`
}

// RegisterTokenRequest holds the data submitted to
// POST /api/notifications/token.
type RegisterTokenRequest struct {
	Token string `json:"token"`
}

// ReminderTarget is one user due for a daily reminder push.
type ReminderTarget struct {
	UserID       string `json:"userId"`
	FCMToken     string `json:"-"`
	ReminderTime string `json:"reminderTime"`
}

// DispatchResult reports the outcome of a batch reminder run.
type DispatchResult struct {
	Sent   int `json:"sent"`
	Failed int `json:"failed"`
}
