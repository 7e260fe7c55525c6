package cmd

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/nkmathew/kikuyu-language-hub-sub004/internal/models"
	"github.com/nkmathew/kikuyu-language-hub-sub004/internal/store"
)

func TestRateCardUsesSessionClock(t *testing.T) {
	s, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	sessionNow := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

	rec, err := rateCard(s, "greet-001", models.RatingEasy, sessionNow)
	if err != nil {
		t.Fatalf("rateCard: %v", err)
	}

	if !rec.LastReviewedAt.Equal(sessionNow) {
		t.Errorf("LastReviewedAt = %v, want session clock %v", rec.LastReviewedAt, sessionNow)
	}
	if want := sessionNow.AddDate(0, 0, 4); !rec.NextReviewAt.Equal(want) {
		t.Errorf("NextReviewAt = %v, want %v", rec.NextReviewAt, want)
	}

	// The record is persisted, and a second rating in the same session is
	// scheduled from the same clock.
	saved, err := s.GetRecord("greet-001")
	if err != nil {
		t.Fatalf("GetRecord: %v", err)
	}
	if saved == nil || !saved.NextReviewAt.Equal(rec.NextReviewAt) {
		t.Errorf("persisted record = %+v, want %+v", saved, rec)
	}

	rec, err = rateCard(s, "greet-001", models.RatingHard, sessionNow)
	if err != nil {
		t.Fatalf("rateCard: %v", err)
	}
	if !rec.LastReviewedAt.Equal(sessionNow) {
		t.Errorf("second LastReviewedAt = %v, want %v", rec.LastReviewedAt, sessionNow)
	}
	if rec.Repetitions != 0 {
		t.Errorf("Repetitions after hard = %d, want 0", rec.Repetitions)
	}
}
