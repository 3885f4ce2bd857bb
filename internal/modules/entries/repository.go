package entries

import (
	"context"
	"database/sql"
	"fmt"
)

// EntryRepository defines the data access contract for journal entries.
// The interface is deliberately small: the collection is append-only, so
// there is no update or delete.
type EntryRepository interface {
	Create(ctx context.Context, entry *JournalEntry) error

	// ListByUser returns every entry for a user, most recent day first.
	ListByUser(ctx context.Context, userID string) ([]JournalEntry, error)

	// ExistsByDateAndContent reports whether the user already has an entry
	// with the exact same date and content. Used by import to skip
	// duplicates.
	ExistsByDateAndContent(ctx context.Context, userID, date, content string) (bool, error)
}

// entryRepository is the MariaDB implementation of EntryRepository.
type entryRepository struct {
	db *sql.DB
}

// NewEntryRepository creates a new MariaDB-backed entry repository.
func NewEntryRepository(db *sql.DB) EntryRepository {
	return &entryRepository{db: db}
}

// entryColumns is the SELECT column list for entry queries.
const entryColumns = `id, user_id, content, mood, DATE_FORMAT(entry_date, '%Y-%m-%d'),
	created_at, updated_at`

// Create inserts a new journal entry.
func (r *entryRepository) Create(ctx context.Context, entry *JournalEntry) error {
	query := `INSERT INTO journal_entries (id, user_id, content, mood, entry_date, created_at, updated_at)
	          VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		entry.ID,
		entry.UserID,
		entry.Content,
		entry.Mood,
		entry.Date,
		entry.CreatedAt,
		entry.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting journal entry: %w", err)
	}

	return nil
}

// ListByUser returns all entries for a user ordered by entry date
// descending, then creation time descending, so same-day entries keep the
// newest first.
func (r *entryRepository) ListByUser(ctx context.Context, userID string) ([]JournalEntry, error) {
	query := `SELECT ` + entryColumns + `
	          FROM journal_entries WHERE user_id = ?
	          ORDER BY entry_date DESC, created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("querying journal entries: %w", err)
	}
	defer rows.Close()

	var entries []JournalEntry
	for rows.Next() {
		var e JournalEntry
		if err := rows.Scan(
			&e.ID, &e.UserID, &e.Content, &e.Mood, &e.Date,
			&e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning journal entry: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// ExistsByDateAndContent reports whether an identical (date, content) entry
// already exists for the user.
func (r *entryRepository) ExistsByDateAndContent(ctx context.Context, userID, date, content string) (bool, error) {
	query := `SELECT EXISTS(
	            SELECT 1 FROM journal_entries
	            WHERE user_id = ? AND entry_date = ? AND content = ?)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, userID, date, content).Scan(&exists); err != nil {
		return false, fmt.Errorf("checking entry existence: %w", err)
	}

	return exists, nil
}
