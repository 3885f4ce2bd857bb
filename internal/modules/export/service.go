package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/lifelogapp/lifelog/internal/apperror"
	"github.com/lifelogapp/lifelog/internal/modules/entries"
	"github.com/lifelogapp/lifelog/internal/modules/notifications"
)

// ExportService builds and consumes data envelopes.
type ExportService interface {
	Export(ctx context.Context, userID string) (*Envelope, error)
	Import(ctx context.Context, userID string, env *Envelope) (ImportResult, error)
}

// exportService implements ExportService over the entry and preference
// repositories.
type exportService struct {
	entryRepo entries.EntryRepository
	prefRepo  notifications.PreferenceRepository
}

// NewExportService creates a new export service.
func NewExportService(entryRepo entries.EntryRepository, prefRepo notifications.PreferenceRepository) ExportService {
	return &exportService{entryRepo: entryRepo, prefRepo: prefRepo}
}

// Export serializes the caller's journal and notification preferences.
func (s *exportService) Export(ctx context.Context, userID string) (*Envelope, error) {
	list, err := s.entryRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("loading entries: %w", err))
	}
	if list == nil {
		list = []entries.JournalEntry{}
	}

	prefs, err := s.prefRepo.GetPreferences(ctx, userID)
	if err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("loading preferences: %w", err))
	}
	// The device token is bound to a browser on a machine, not to the
	// data; it never travels in an export.
	prefs.FCMToken = nil

	return &Envelope{
		Version:   envelopeVersion,
		UserID:    userID,
		Timestamp: time.Now().UTC(),
		Data: Payload{
			Entries:     list,
			Preferences: prefs,
		},
	}, nil
}

// Import re-creates the envelope's entries for the caller. The envelope
// must carry a version and must belong to the importing user. Each entry
// passes through the same validation and sanitization as direct creation;
// entries that fail it, or that match an existing (date, content) pair,
// are skipped rather than aborting the batch. Everything else is appended
// with fresh IDs and timestamps.
func (s *exportService) Import(ctx context.Context, userID string, env *Envelope) (ImportResult, error) {
	if env.Version == "" {
		return ImportResult{}, apperror.NewValidation("Export file is missing a version.")
	}
	if env.UserID != userID {
		return ImportResult{}, apperror.NewForbidden("This export belongs to a different account.")
	}

	var result ImportResult
	for _, e := range env.Data.Entries {
		// An entry with no date would silently land on today; in an
		// import that is data corruption, so it is skipped instead.
		if e.Date == "" {
			result.Skipped++
			continue
		}

		// The envelope is caller-supplied JSON: every entry gets the
		// same sanitization and mood/date checks as direct creation.
		entry, err := entries.NewEntry(userID, entries.CreateEntryRequest{
			Content: e.Content,
			Mood:    e.Mood,
			Date:    e.Date,
		})
		if err != nil {
			result.Skipped++
			continue
		}

		exists, err := s.entryRepo.ExistsByDateAndContent(ctx, userID, entry.Date, entry.Content)
		if err != nil {
			return result, apperror.NewInternal(fmt.Errorf("checking for duplicate entry: %w", err))
		}
		if exists {
			result.Skipped++
			continue
		}

		if err := s.entryRepo.Create(ctx, entry); err != nil {
			return result, apperror.NewInternal(fmt.Errorf("importing entry: %w", err))
		}
		result.Imported++
	}

	slog.Info("import finished",
		slog.String("user_id", userID),
		slog.Int("imported", result.Imported),
		slog.Int("skipped", result.Skipped),
	)

	return result, nil
}
