package notifications

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lifelogapp/lifelog/internal/apperror"
)

// PreferenceRepository reads and writes the notification columns of the
// users table. The auth module owns the rest of the row; writes here touch
// only preference columns.
type PreferenceRepository interface {
	GetPreferences(ctx context.Context, userID string) (*Preferences, error)
	UpdatePreferences(ctx context.Context, userID string, prefs *Preferences) error

	// SaveToken stores a device token and turns daily reminders on.
	SaveToken(ctx context.Context, userID, token string) error

	// ListReminderTargets returns every user with daily reminders enabled
	// and a registered device token.
	ListReminderTargets(ctx context.Context) ([]ReminderTarget, error)
}

// preferenceRepository is the MariaDB implementation of PreferenceRepository.
type preferenceRepository struct {
	db *sql.DB
}

// NewPreferenceRepository creates a new MariaDB-backed preference repository.
func NewPreferenceRepository(db *sql.DB) PreferenceRepository {
	return &preferenceRepository{db: db}
}

// GetPreferences retrieves the notification preferences for a user.
func (r *preferenceRepository) GetPreferences(ctx context.Context, userID string) (*Preferences, error) {
	query := `SELECT daily_reminders, reminder_time, weekly_digest, fcm_token
	          FROM users WHERE id = ?`

	prefs := &Preferences{}
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&prefs.DailyReminders,
		&prefs.ReminderTime,
		&prefs.WeeklyDigest,
		&prefs.FCMToken,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.NewNotFound("user not found")
	}
	if err != nil {
		return nil, fmt.Errorf("querying preferences: %w", err)
	}

	return prefs, nil
}

// UpdatePreferences writes the full preference set, including the token
// column, so callers control token nulling.
func (r *preferenceRepository) UpdatePreferences(ctx context.Context, userID string, prefs *Preferences) error {
	query := `UPDATE users
	          SET daily_reminders = ?, reminder_time = ?, weekly_digest = ?, fcm_token = ?
	          WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query,
		prefs.DailyReminders,
		prefs.ReminderTime,
		prefs.WeeklyDigest,
		prefs.FCMToken,
		userID,
	)
	if err != nil {
		return fmt.Errorf("updating preferences: %w", err)
	}

	n, _ := result.RowsAffected()
	if n == 0 {
		return apperror.NewNotFound("user not found")
	}

	return nil
}

// SaveToken stores the device token and enables daily reminders, matching
// the client flow where granting push permission turns reminders on.
func (r *preferenceRepository) SaveToken(ctx context.Context, userID, token string) error {
	query := `UPDATE users SET fcm_token = ?, daily_reminders = 1 WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, token, userID)
	if err != nil {
		return fmt.Errorf("saving device token: %w", err)
	}

	n, _ := result.RowsAffected()
	if n == 0 {
		return apperror.NewNotFound("user not found")
	}

	return nil
}

// ListReminderTargets returns users eligible for the daily reminder batch.
func (r *preferenceRepository) ListReminderTargets(ctx context.Context) ([]ReminderTarget, error) {
	query := `SELECT id, fcm_token, reminder_time
	          FROM users
	          WHERE daily_reminders = 1 AND fcm_token IS NOT NULL`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying reminder targets: %w", err)
	}
	defer rows.Close()

	var targets []ReminderTarget
	for rows.Next() {
		var t ReminderTarget
		if err := rows.Scan(&t.UserID, &t.FCMToken, &t.ReminderTime); err != nil {
			return nil, fmt.Errorf("scanning reminder target: %w", err)
		}
		targets = append(targets, t)
	}

	return targets, rows.Err()
}
