// Package scheduler implements the SM-2 variant used for card reviews.
package scheduler

import (
	"math"
	"time"

	"github.com/nkmathew/kikuyu-language-hub-sub004/internal/models"
)

const (
	InitialEaseFactor = 2.5
	MinEaseFactor     = 1.3

	// First-study intervals, seeded directly from the rating.
	firstIntervalEasy   = 4
	firstIntervalMedium = 1
	firstIntervalHard   = 0.5

	// Quality below this counts as a failed review.
	passQuality = 3
)

// Next computes the review record that follows a rating. prev is nil for a
// card being studied for the first time. now is injected so scheduling is
// deterministic under test.
func Next(cardID string, prev *models.ReviewRecord, rating models.Rating, now time.Time) models.ReviewRecord {
	if prev == nil {
		return firstReview(cardID, rating, now)
	}

	quality := rating.Quality()

	// EF' = EF + (0.1 - (5-q) * (0.08 + (5-q)*0.02)), floored at 1.3.
	// There is deliberately no upper clamp.
	q := float64(quality)
	ease := prev.EaseFactor + (0.1 - (5-q)*(0.08+(5-q)*0.02))
	if ease < MinEaseFactor {
		ease = MinEaseFactor
	}

	var interval float64
	var repetitions int
	if quality < passQuality {
		// Failure starts the card over, however long it had been mastered.
		// Only the ease factor remembers the history.
		interval = 1
		repetitions = 0
	} else {
		switch prev.Repetitions {
		case 0:
			interval = 1
		case 1:
			interval = 6
		default:
			interval = math.Round(prev.IntervalDays * ease)
		}
		repetitions = prev.Repetitions + 1
	}

	return models.ReviewRecord{
		CardID:         cardID,
		LastRating:     rating,
		LastReviewedAt: now,
		NextReviewAt:   addDays(now, interval),
		Repetitions:    repetitions,
		IntervalDays:   interval,
		EaseFactor:     ease,
	}
}

func firstReview(cardID string, rating models.Rating, now time.Time) models.ReviewRecord {
	var interval float64
	switch rating {
	case models.RatingEasy:
		interval = firstIntervalEasy
	case models.RatingMedium:
		interval = firstIntervalMedium
	default:
		interval = firstIntervalHard
	}

	return models.ReviewRecord{
		CardID:         cardID,
		LastRating:     rating,
		LastReviewedAt: now,
		NextReviewAt:   addDays(now, interval),
		Repetitions:    1,
		IntervalDays:   interval,
		EaseFactor:     InitialEaseFactor,
	}
}

// IsDue reports whether the record's next review time has arrived.
// Boundary equality counts as due, and due-ness never decays.
func IsDue(rec models.ReviewRecord, now time.Time) bool {
	return !now.Before(rec.NextReviewAt)
}

// addDays supports the fractional first-study intervals.
func addDays(t time.Time, days float64) time.Time {
	return t.Add(time.Duration(days * float64(24*time.Hour)))
}
