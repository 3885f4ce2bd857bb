package insights

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lifelogapp/lifelog/internal/apperror"
	"github.com/lifelogapp/lifelog/internal/modules/entries"
)

// InsightService computes aggregate views over a user's journal. It pulls
// the entry set once per request and applies the pure helpers in this
// package.
type InsightService interface {
	Moods(ctx context.Context, userID string, window Window, mood string) (Stats, error)
	Trend(ctx context.Context, userID string, window Window) ([]TrendPoint, error)
	Words(ctx context.Context, userID string, window Window) ([]WordFrequency, error)
}

// insightService implements InsightService over the entries repository.
type insightService struct {
	repo entries.EntryRepository
}

// NewInsightService creates a new insight service.
func NewInsightService(repo entries.EntryRepository) InsightService {
	return &insightService{repo: repo}
}

// Moods returns the mood distribution of the user's entries within the
// window, optionally narrowed to a single mood value.
func (s *insightService) Moods(ctx context.Context, userID string, window Window, mood string) (Stats, error) {
	list, err := s.load(ctx, userID)
	if err != nil {
		return Stats{}, err
	}

	list = FilterByRange(list, window, time.Now().UTC())
	list = FilterByMood(list, mood)

	return MoodStats(list), nil
}

// Trend returns the per-day mood averages for the window.
func (s *insightService) Trend(ctx context.Context, userID string, window Window) ([]TrendPoint, error) {
	list, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	points := DailyAverages(list, window, time.Now().UTC())
	if points == nil {
		points = []TrendPoint{}
	}
	return points, nil
}

// Words returns the most frequent content words across the user's entries
// within the window.
func (s *insightService) Words(ctx context.Context, userID string, window Window) ([]WordFrequency, error) {
	list, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	list = FilterByRange(list, window, time.Now().UTC())

	texts := make([]string, 0, len(list))
	for _, e := range list {
		texts = append(texts, e.Content)
	}

	words, err := WordFrequencies(strings.Join(texts, " "))
	if err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("extracting word frequencies: %w", err))
	}
	return words, nil
}

func (s *insightService) load(ctx context.Context, userID string) ([]entries.JournalEntry, error) {
	list, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("loading entries: %w", err))
	}
	return list, nil
}
