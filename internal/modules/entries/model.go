// Package entries stores journal entries. The collection is append-only:
// entries are created and listed, never edited or deleted, so a user's
// history is a faithful record of what was written on each day.
package entries

import "time"

// JournalEntry is one dated journal record. Mood is stored as a string
// digit "1" (lowest) through "5" (highest); Date is the calendar day the
// entry is about, not the instant it was written.
type JournalEntry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"-"`
	Content   string    `json:"content"`
	Mood      string    `json:"mood"`
	Date      string    `json:"date"` // YYYY-MM-DD
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateEntryRequest holds the data submitted to POST /api/entries.
// Date is optional and defaults to today.
type CreateEntryRequest struct {
	Content string `json:"content"`
	Mood    string `json:"mood"`
	Date    string `json:"date"`
}
