package scheduler

import (
	"math"
	"testing"
	"time"

	"github.com/nkmathew/kikuyu-language-hub-sub004/internal/models"
)

const epsilon = 1e-9

func assertFloat(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %.6f, want %.6f", name, got, want)
	}
}

var testNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func TestFirstReviewSeeds(t *testing.T) {
	tests := []struct {
		rating       models.Rating
		wantInterval float64
	}{
		{models.RatingEasy, 4},
		{models.RatingMedium, 1},
		{models.RatingHard, 0.5},
	}

	for _, tt := range tests {
		t.Run(string(tt.rating), func(t *testing.T) {
			rec := Next("card-1", nil, tt.rating, testNow)

			assertFloat(t, "IntervalDays", rec.IntervalDays, tt.wantInterval)
			assertFloat(t, "EaseFactor", rec.EaseFactor, 2.5)
			if rec.Repetitions != 1 {
				t.Errorf("Repetitions = %d, want 1", rec.Repetitions)
			}
			wantNext := testNow.Add(time.Duration(tt.wantInterval * float64(24*time.Hour)))
			if !rec.NextReviewAt.Equal(wantNext) {
				t.Errorf("NextReviewAt = %v, want %v", rec.NextReviewAt, wantNext)
			}
			if rec.NextReviewAt.Before(rec.LastReviewedAt) {
				t.Error("NextReviewAt before LastReviewedAt")
			}
		})
	}
}

func TestHardAlwaysResets(t *testing.T) {
	tests := []struct {
		name string
		prev models.ReviewRecord
	}{
		{"fresh card", models.ReviewRecord{Repetitions: 1, IntervalDays: 1, EaseFactor: 2.5}},
		{"mastered card", models.ReviewRecord{Repetitions: 12, IntervalDays: 120, EaseFactor: 3.1}},
		{"struggling card", models.ReviewRecord{Repetitions: 2, IntervalDays: 6, EaseFactor: 1.3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := Next("card-1", &tt.prev, models.RatingHard, testNow)

			if rec.Repetitions != 0 {
				t.Errorf("Repetitions = %d, want 0", rec.Repetitions)
			}
			assertFloat(t, "IntervalDays", rec.IntervalDays, 1)
		})
	}
}

func TestEaseMonotonicUnderEasy(t *testing.T) {
	rec := Next("card-1", nil, models.RatingEasy, testNow)
	prev := rec.EaseFactor
	for i := 0; i < 10; i++ {
		rec = Next("card-1", &rec, models.RatingEasy, testNow.AddDate(0, 0, i+1))
		if rec.EaseFactor < prev {
			t.Fatalf("ease dropped from %.4f to %.4f on easy rating", prev, rec.EaseFactor)
		}
		prev = rec.EaseFactor
	}
	// No upper clamp: ten easy reviews from 2.5 land at 3.5.
	assertFloat(t, "EaseFactor", rec.EaseFactor, 3.5)
}

func TestEaseNeverBelowFloor(t *testing.T) {
	rec := Next("card-1", nil, models.RatingMedium, testNow)
	for i := 0; i < 20; i++ {
		rec = Next("card-1", &rec, models.RatingHard, testNow.AddDate(0, 0, i+1))
		if rec.EaseFactor < MinEaseFactor {
			t.Fatalf("ease %.4f below floor %.2f", rec.EaseFactor, MinEaseFactor)
		}
	}
	assertFloat(t, "EaseFactor", rec.EaseFactor, MinEaseFactor)
}

func TestPassLadder(t *testing.T) {
	// A pass after a failure restarts the ladder at 1 day.
	failed := models.ReviewRecord{Repetitions: 0, IntervalDays: 1, EaseFactor: 1.8}
	rec := Next("card-1", &failed, models.RatingMedium, testNow)
	assertFloat(t, "interval after reps=0", rec.IntervalDays, 1)
	if rec.Repetitions != 1 {
		t.Errorf("Repetitions = %d, want 1", rec.Repetitions)
	}

	rec = Next("card-1", &rec, models.RatingMedium, testNow.AddDate(0, 0, 1))
	assertFloat(t, "interval after reps=1", rec.IntervalDays, 6)
	if rec.Repetitions != 2 {
		t.Errorf("Repetitions = %d, want 2", rec.Repetitions)
	}
}

func TestIsDueBoundary(t *testing.T) {
	rec := models.ReviewRecord{NextReviewAt: testNow}

	if !IsDue(rec, testNow) {
		t.Error("record not due at exact boundary")
	}
	if IsDue(rec, testNow.Add(-time.Second)) {
		t.Error("record due one second early")
	}
	if !IsDue(rec, testNow.AddDate(1, 0, 0)) {
		t.Error("due-ness decayed after a year")
	}
}

func TestEasyProgression(t *testing.T) {
	// New card rated easy: 4 days out.
	rec := Next("x", nil, models.RatingEasy, testNow)
	assertFloat(t, "first interval", rec.IntervalDays, 4)

	// 4 days later, easy again: ease 2.6, ladder position 1 → 6 days.
	day4 := testNow.AddDate(0, 0, 4)
	rec = Next("x", &rec, models.RatingEasy, day4)
	if rec.Repetitions != 2 {
		t.Errorf("Repetitions = %d, want 2", rec.Repetitions)
	}
	assertFloat(t, "second interval", rec.IntervalDays, 6)
	assertFloat(t, "ease after second easy", rec.EaseFactor, 2.6)

	// 6 days later, easy again: ease 2.7, round(6*2.7) = 16 days.
	day10 := day4.AddDate(0, 0, 6)
	rec = Next("x", &rec, models.RatingEasy, day10)
	if rec.Repetitions != 3 {
		t.Errorf("Repetitions = %d, want 3", rec.Repetitions)
	}
	assertFloat(t, "third interval", rec.IntervalDays, 16)
	if !rec.NextReviewAt.Equal(day10.AddDate(0, 0, 16)) {
		t.Errorf("NextReviewAt = %v, want %v", rec.NextReviewAt, day10.AddDate(0, 0, 16))
	}
}

func TestHardOnMasteredCard(t *testing.T) {
	prev := models.ReviewRecord{
		CardID:       "x",
		Repetitions:  5,
		IntervalDays: 30,
		EaseFactor:   2.2,
	}

	rec := Next("x", &prev, models.RatingHard, testNow)

	if rec.Repetitions != 0 {
		t.Errorf("Repetitions = %d, want 0", rec.Repetitions)
	}
	assertFloat(t, "IntervalDays", rec.IntervalDays, 1)
	// quality 1: 2.2 + (0.1 - 4*(0.08 + 4*0.02)) = 2.2 - 0.54
	assertFloat(t, "EaseFactor", rec.EaseFactor, 1.66)
	if rec.LastRating != models.RatingHard {
		t.Errorf("LastRating = %q, want hard", rec.LastRating)
	}
}
