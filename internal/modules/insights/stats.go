// Package insights computes read-only views over a user's journal: mood
// statistics, time-window filters, per-day trend lines, and word
// frequencies. Everything in this file is a pure function of its inputs --
// no I/O, no clock access beyond the caller-supplied "now".
package insights

import (
	"strconv"
	"time"

	"github.com/lifelogapp/lifelog/internal/modules/entries"
)

// dateLayout matches the entry date storage format.
const dateLayout = "2006-01-02"

// Window names a relative time range ending now.
type Window string

const (
	WindowDay   Window = "day"
	WindowWeek  Window = "week"
	WindowMonth Window = "month"
	WindowYear  Window = "year"
	WindowAll   Window = "all"
)

// ParseWindow maps a query-string value to a Window, defaulting to all.
func ParseWindow(s string) Window {
	switch Window(s) {
	case WindowDay, WindowWeek, WindowMonth, WindowYear:
		return Window(s)
	default:
		return WindowAll
	}
}

// Stats summarizes the mood distribution of a set of entries.
type Stats struct {
	Total       int            `json:"total"`
	ByMood      map[string]int `json:"byMood"`
	AverageMood float64        `json:"averageMood"`
}

// MoodStats counts entries per mood value and computes the average mood.
// Every entry counts toward Total and ByMood regardless of its mood
// string; only parseable numeric moods contribute to the average's sum,
// which is still divided by the full total. Legacy data with free-form
// moods therefore drags the average down rather than being hidden.
func MoodStats(list []entries.JournalEntry) Stats {
	stats := Stats{ByMood: map[string]int{}}

	var moodSum int
	for _, e := range list {
		stats.ByMood[e.Mood]++
		stats.Total++
		if v, err := strconv.Atoi(e.Mood); err == nil {
			moodSum += v
		}
	}

	if stats.Total > 0 {
		stats.AverageMood = float64(moodSum) / float64(stats.Total)
	}

	return stats
}

// FilterByRange keeps entries whose date falls on or after the window's
// cutoff. Cutoffs are calendar subtraction from now (one day, seven days,
// one month, one year), so "month" means the same day-of-month one month
// ago, not 30 days. WindowAll returns the input unchanged. Entries with
// unparseable dates are dropped from windowed views.
func FilterByRange(list []entries.JournalEntry, window Window, now time.Time) []entries.JournalEntry {
	if window == WindowAll {
		return list
	}

	cutoff := windowCutoff(window, now)

	var out []entries.JournalEntry
	for _, e := range list {
		d, err := time.Parse(dateLayout, e.Date)
		if err != nil {
			continue
		}
		if !d.Before(cutoff) {
			out = append(out, e)
		}
	}
	return out
}

// FilterByMood keeps entries with exactly the given mood value. The
// sentinel "all" (or an empty mood) is the identity filter.
func FilterByMood(list []entries.JournalEntry, mood string) []entries.JournalEntry {
	if mood == "" || mood == "all" {
		return list
	}

	var out []entries.JournalEntry
	for _, e := range list {
		if e.Mood == mood {
			out = append(out, e)
		}
	}
	return out
}

// TrendPoint is one day on the mood trend line. Mood is nil for days with
// no entries so the chart can show a gap instead of a zero.
type TrendPoint struct {
	Date string   `json:"date"` // YYYY-MM-DD
	Mood *float64 `json:"mood"`
}

// DailyAverages produces one point per calendar day from the window's
// cutoff through today, with each day's mean mood. Non-numeric moods count
// as zero in a day's mean, mirroring MoodStats' lenient treatment of
// legacy data. WindowAll spans from the earliest entry to today.
func DailyAverages(list []entries.JournalEntry, window Window, now time.Time) []TrendPoint {
	byDay := map[string][]int{}
	earliest := now
	for _, e := range list {
		d, err := time.Parse(dateLayout, e.Date)
		if err != nil {
			continue
		}
		v, _ := strconv.Atoi(e.Mood)
		byDay[e.Date] = append(byDay[e.Date], v)
		if d.Before(earliest) {
			earliest = d
		}
	}

	start := windowCutoff(window, now)
	if window == WindowAll {
		start = earliest
	}
	start = start.Truncate(24 * time.Hour)
	end := now.Truncate(24 * time.Hour)

	var points []TrendPoint
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		key := d.Format(dateLayout)
		p := TrendPoint{Date: key}
		if moods := byDay[key]; len(moods) > 0 {
			var sum int
			for _, v := range moods {
				sum += v
			}
			avg := float64(sum) / float64(len(moods))
			p.Mood = &avg
		}
		points = append(points, p)
	}
	return points
}

// windowCutoff returns the start of a relative window ending now.
func windowCutoff(window Window, now time.Time) time.Time {
	switch window {
	case WindowDay:
		return now.AddDate(0, 0, -1)
	case WindowWeek:
		return now.AddDate(0, 0, -7)
	case WindowMonth:
		return now.AddDate(0, -1, 0)
	case WindowYear:
		return now.AddDate(-1, 0, 0)
	default:
		return time.Time{}
	}
}
