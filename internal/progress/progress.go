// Package progress rolls study activity into the durable aggregate stats,
// including the daily study streak.
package progress

import (
	"math"
	"time"

	"github.com/nkmathew/kikuyu-language-hub-sub004/internal/models"
	"github.com/nkmathew/kikuyu-language-hub-sub004/internal/store"
)

// Aggregator layers stat bookkeeping on top of the store. All methods take
// now explicitly so day-boundary behavior is deterministic under test.
type Aggregator struct {
	store *store.Store
}

func New(s *store.Store) *Aggregator {
	return &Aggregator{store: s}
}

// RecordCardsStudied adds count to the lifetime card total and marks now
// as the last study date.
func (a *Aggregator) RecordCardsStudied(count int, now time.Time) error {
	stats, err := a.store.Stats()
	if err != nil {
		return err
	}
	total := stats.TotalCardsStudied + count
	return a.store.UpdateStats(models.StatsPatch{
		TotalCardsStudied: &total,
		LastStudyDate:     &now,
	})
}

// RecordSessionCompleted bumps the completed-session counter and marks now
// as the last study date.
func (a *Aggregator) RecordSessionCompleted(now time.Time) error {
	stats, err := a.store.Stats()
	if err != nil {
		return err
	}
	total := stats.TotalSessionsCompleted + 1
	return a.store.UpdateStats(models.StatsPatch{
		TotalSessionsCompleted: &total,
		LastStudyDate:          &now,
	})
}

// AddStudyTime adds minutes to the lifetime study time.
func (a *Aggregator) AddStudyTime(minutes int) error {
	stats, err := a.store.Stats()
	if err != nil {
		return err
	}
	total := stats.TotalTimeSpentMinutes + minutes
	return a.store.UpdateStats(models.StatsPatch{
		TotalTimeSpentMinutes: &total,
	})
}

// UpdateStreak reconciles the daily streak against the calendar day of the
// last study date and returns the current streak count. Calling it again
// within the same day is a no-op beyond the first call.
func (a *Aggregator) UpdateStreak(now time.Time) (int, error) {
	stats, err := a.store.Stats()
	if err != nil {
		return 0, err
	}

	gap := daysBetween(stats.LastStudyDate, now)

	switch {
	case stats.LastStudyDate.IsZero() || gap > 1 || gap < 0:
		// First ever study, a missed day, or a clock that moved backwards:
		// the streak starts over at 1.
		streak := 1
		if err := a.store.UpdateStats(models.StatsPatch{
			StreakCount:     &streak,
			StreakStartDate: &now,
			LastStudyDate:   &now,
		}); err != nil {
			return 0, err
		}
		return streak, nil

	case gap == 1:
		streak := stats.StreakCount + 1
		if err := a.store.UpdateStats(models.StatsPatch{
			StreakCount:   &streak,
			LastStudyDate: &now,
		}); err != nil {
			return 0, err
		}
		return streak, nil

	default:
		// Same calendar day. A zero count here means the day's study events
		// landed before any streak was ever started; begin one.
		if stats.StreakCount == 0 {
			streak := 1
			if err := a.store.UpdateStats(models.StatsPatch{
				StreakCount:     &streak,
				StreakStartDate: &now,
			}); err != nil {
				return 0, err
			}
			return streak, nil
		}
		return stats.StreakCount, nil
	}
}

// daysBetween counts whole calendar days from a to b, midnight-aligned in
// b's location. Negative when a is on a later day than b. Rounding absorbs
// the 23- and 25-hour days that DST transitions produce.
func daysBetween(a, b time.Time) int {
	da := startOfDay(a.In(b.Location()))
	db := startOfDay(b)
	return int(math.Round(db.Sub(da).Hours() / 24))
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
