// Package export serializes a user's data to a portable JSON envelope and
// re-imports it. Import is additive: the journal is append-only, so
// existing entries are never modified and exact duplicates are skipped.
package export

import (
	"time"

	"github.com/lifelogapp/lifelog/internal/modules/entries"
	"github.com/lifelogapp/lifelog/internal/modules/notifications"
)

// envelopeVersion is the current export format version.
const envelopeVersion = "1.0.0"

// Envelope is the export file format.
type Envelope struct {
	Version   string    `json:"version"`
	UserID    string    `json:"userId"`
	Timestamp time.Time `json:"timestamp"`
	Data      Payload   `json:"data"`
}

// Payload carries the exported records.
type Payload struct {
	Entries     []entries.JournalEntry     `json:"entries"`
	Preferences *notifications.Preferences `json:"preferences,omitempty"`
}

// ImportResult reports what an import run did.
type ImportResult struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}
