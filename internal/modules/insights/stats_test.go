package insights

import (
	"math"
	"testing"
	"time"

	"github.com/lifelogapp/lifelog/internal/modules/entries"
)

func entry(date, mood string) entries.JournalEntry {
	return entries.JournalEntry{Date: date, Mood: mood}
}

// --- MoodStats ---

func TestMoodStats_AverageAndCounts(t *testing.T) {
	list := []entries.JournalEntry{
		entry("2026-08-01", "5"),
		entry("2026-08-02", "1"),
	}

	stats := MoodStats(list)

	if stats.Total != 2 {
		t.Errorf("expected total 2, got %d", stats.Total)
	}
	if stats.AverageMood != 3.0 {
		t.Errorf("expected average 3.0, got %v", stats.AverageMood)
	}
	if stats.ByMood["5"] != 1 || stats.ByMood["1"] != 1 {
		t.Errorf("unexpected byMood: %v", stats.ByMood)
	}
}

func TestMoodStats_TotalMatchesInput(t *testing.T) {
	list := []entries.JournalEntry{
		entry("2026-08-01", "3"),
		entry("2026-08-01", "3"),
		entry("2026-08-02", "4"),
	}

	stats := MoodStats(list)
	if stats.Total != len(list) {
		t.Errorf("expected total %d, got %d", len(list), stats.Total)
	}

	var sum int
	for _, n := range stats.ByMood {
		sum += n
	}
	if sum != len(list) {
		t.Errorf("expected byMood counts to sum to %d, got %d", len(list), sum)
	}
}

func TestMoodStats_NonNumericMoodCountsButSkipsSum(t *testing.T) {
	list := []entries.JournalEntry{
		entry("2026-08-01", "4"),
		entry("2026-08-02", "happy"), // legacy free-form mood
	}

	stats := MoodStats(list)

	if stats.Total != 2 {
		t.Errorf("expected total 2, got %d", stats.Total)
	}
	if stats.ByMood["happy"] != 1 {
		t.Errorf("expected legacy mood counted, got %v", stats.ByMood)
	}
	// Numeric sum 4 divided by the full total of 2.
	if stats.AverageMood != 2.0 {
		t.Errorf("expected average 2.0, got %v", stats.AverageMood)
	}
}

func TestMoodStats_Empty(t *testing.T) {
	stats := MoodStats(nil)
	if stats.Total != 0 || stats.AverageMood != 0 || len(stats.ByMood) != 0 {
		t.Errorf("expected zero stats, got %+v", stats)
	}
}

// --- FilterByRange ---

func TestFilterByRange_Week(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	list := []entries.JournalEntry{
		entry("2026-08-30", "3"),
		entry("2026-08-23", "3"), // exactly the cutoff day, kept
		entry("2026-08-22", "3"), // one day too old
		entry("2026-01-01", "3"),
	}

	got := FilterByRange(list, WindowWeek, now)
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	if got[0].Date != "2026-08-30" || got[1].Date != "2026-08-23" {
		t.Errorf("unexpected entries kept: %v", got)
	}
}

func TestFilterByRange_MonthIsCalendarSubtraction(t *testing.T) {
	now := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)
	list := []entries.JournalEntry{
		entry("2026-03-15", "3"),
		entry("2026-03-02", "3"),
		entry("2026-02-20", "3"),
	}

	// AddDate(0, -1, 0) from Mar 31 normalizes to Mar 3 (no Feb 31), so
	// Mar 2 and earlier fall outside the window.
	got := FilterByRange(list, WindowMonth, now)
	if len(got) != 1 || got[0].Date != "2026-03-15" {
		t.Errorf("expected only 2026-03-15, got %v", got)
	}
}

func TestFilterByRange_AllIsIdentity(t *testing.T) {
	list := []entries.JournalEntry{
		entry("1999-01-01", "1"),
		entry("2026-08-30", "5"),
	}

	got := FilterByRange(list, WindowAll, time.Now())
	if len(got) != len(list) {
		t.Errorf("expected identity, got %d of %d", len(got), len(list))
	}
}

func TestFilterByRange_Idempotent(t *testing.T) {
	now := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	list := []entries.JournalEntry{
		entry("2026-08-29", "3"),
		entry("2026-08-01", "3"),
	}

	once := FilterByRange(list, WindowWeek, now)
	twice := FilterByRange(once, WindowWeek, now)
	if len(once) != len(twice) {
		t.Errorf("expected idempotent filter: %d != %d", len(once), len(twice))
	}
}

func TestFilterByRange_DropsUnparseableDates(t *testing.T) {
	now := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	list := []entries.JournalEntry{
		entry("not-a-date", "3"),
		entry("2026-08-29", "3"),
	}

	got := FilterByRange(list, WindowWeek, now)
	if len(got) != 1 || got[0].Date != "2026-08-29" {
		t.Errorf("expected unparseable date dropped, got %v", got)
	}
}

// --- FilterByMood ---

func TestFilterByMood_Subset(t *testing.T) {
	list := []entries.JournalEntry{
		entry("2026-08-01", "5"),
		entry("2026-08-02", "3"),
		entry("2026-08-03", "5"),
	}

	got := FilterByMood(list, "5")
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	for _, e := range got {
		if e.Mood != "5" {
			t.Errorf("expected only mood 5, got %s", e.Mood)
		}
	}
}

func TestFilterByMood_AllIsIdentity(t *testing.T) {
	list := []entries.JournalEntry{
		entry("2026-08-01", "1"),
		entry("2026-08-02", "2"),
	}

	if got := FilterByMood(list, "all"); len(got) != len(list) {
		t.Errorf("expected identity for \"all\", got %d entries", len(got))
	}
	if got := FilterByMood(list, ""); len(got) != len(list) {
		t.Errorf("expected identity for empty mood, got %d entries", len(got))
	}
}

func TestFilterByMood_NoMatches(t *testing.T) {
	list := []entries.JournalEntry{entry("2026-08-01", "1")}
	if got := FilterByMood(list, "5"); len(got) != 0 {
		t.Errorf("expected no matches, got %v", got)
	}
}

// --- DailyAverages ---

func TestDailyAverages_OnePointPerDay(t *testing.T) {
	now := time.Date(2026, 8, 30, 15, 0, 0, 0, time.UTC)
	list := []entries.JournalEntry{
		entry("2026-08-30", "4"),
		entry("2026-08-30", "2"),
		entry("2026-08-28", "5"),
	}

	points := DailyAverages(list, WindowWeek, now)

	// Cutoff Aug 23 through Aug 30 inclusive.
	if len(points) != 8 {
		t.Fatalf("expected 8 points, got %d", len(points))
	}

	last := points[len(points)-1]
	if last.Date != "2026-08-30" {
		t.Errorf("expected last point today, got %s", last.Date)
	}
	if last.Mood == nil || math.Abs(*last.Mood-3.0) > 1e-9 {
		t.Errorf("expected mean 3.0 for two entries (4, 2), got %v", last.Mood)
	}

	// Aug 29 has no entries: present, but with nil mood.
	var aug29 *TrendPoint
	for i := range points {
		if points[i].Date == "2026-08-29" {
			aug29 = &points[i]
		}
	}
	if aug29 == nil {
		t.Fatal("expected a point for 2026-08-29")
	}
	if aug29.Mood != nil {
		t.Errorf("expected nil mood for empty day, got %v", *aug29.Mood)
	}
}

func TestDailyAverages_AllWindowStartsAtEarliestEntry(t *testing.T) {
	now := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	list := []entries.JournalEntry{
		entry("2026-08-27", "3"),
		entry("2026-08-29", "4"),
	}

	points := DailyAverages(list, WindowAll, now)
	if len(points) != 4 {
		t.Fatalf("expected 4 points (Aug 27-30), got %d", len(points))
	}
	if points[0].Date != "2026-08-27" {
		t.Errorf("expected first point at earliest entry, got %s", points[0].Date)
	}
}
