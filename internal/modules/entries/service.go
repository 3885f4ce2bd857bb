package entries

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lifelogapp/lifelog/internal/apperror"
	"github.com/lifelogapp/lifelog/internal/sanitize"
)

// dateLayout is the wire and storage format for entry dates.
const dateLayout = "2006-01-02"

// validMoods enumerates the accepted mood values at creation time.
// Aggregation elsewhere tolerates other strings in legacy data, but new
// entries are held to this set.
var validMoods = map[string]bool{"1": true, "2": true, "3": true, "4": true, "5": true}

// EntryService defines the business logic contract for journal entries.
type EntryService interface {
	AddEntry(ctx context.Context, userID string, req CreateEntryRequest) (*JournalEntry, error)
	ListEntries(ctx context.Context, userID string) ([]JournalEntry, error)
}

// entryService implements EntryService.
type entryService struct {
	repo EntryRepository
}

// NewEntryService creates a new entry service.
func NewEntryService(repo EntryRepository) EntryService {
	return &entryService{repo: repo}
}

// NewEntry validates raw fields and builds a ready-to-store entry owned
// by userID: content is sanitized and must be non-empty, mood must be one
// of "1".."5", and the date must be YYYY-MM-DD (empty defaults to today).
// Every code path that stores an entry -- direct creation and bulk import
// alike -- goes through this gate.
func NewEntry(userID string, req CreateEntryRequest) (*JournalEntry, error) {
	content := sanitize.Text(req.Content)
	if content == "" {
		return nil, apperror.NewValidation("Entry content is required.")
	}

	if !validMoods[req.Mood] {
		return nil, apperror.NewValidation("Mood must be a value from 1 to 5.")
	}

	date := strings.TrimSpace(req.Date)
	if date == "" {
		date = time.Now().UTC().Format(dateLayout)
	} else if _, err := time.Parse(dateLayout, date); err != nil {
		return nil, apperror.NewValidation("Date must be in YYYY-MM-DD format.")
	}

	now := time.Now().UTC()
	return &JournalEntry{
		ID:        uuid.NewString(),
		UserID:    userID,
		Content:   content,
		Mood:      req.Mood,
		Date:      date,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// AddEntry validates and persists a new journal entry. The server owns the
// ID and timestamps; the caller only supplies content, mood, and the day
// the entry is about.
func (s *entryService) AddEntry(ctx context.Context, userID string, req CreateEntryRequest) (*JournalEntry, error) {
	entry, err := NewEntry(userID, req)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("creating entry: %w", err))
	}

	slog.Info("journal entry added",
		slog.String("user_id", userID),
		slog.String("entry_id", entry.ID),
		slog.String("date", entry.Date),
	)

	return entry, nil
}

// ListEntries returns every entry for the user, most recent day first.
// There is no pagination: the whole history ships in one response.
func (s *entryService) ListEntries(ctx context.Context, userID string) ([]JournalEntry, error) {
	entries, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("listing entries: %w", err))
	}
	if entries == nil {
		entries = []JournalEntry{}
	}
	return entries, nil
}
