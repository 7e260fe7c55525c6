package models

import "time"

// SchemaVersion identifies the snapshot layout for export/import.
const SchemaVersion = 1

// ReviewRecord tracks the spaced-repetition state of a single card.
// A card with no ReviewRecord is new and never due.
type ReviewRecord struct {
	CardID         string    `json:"cardId"`
	LastRating     Rating    `json:"lastRating"`
	LastReviewedAt time.Time `json:"lastReviewedAt"`
	NextReviewAt   time.Time `json:"nextReviewAt"`
	Repetitions    int       `json:"repetitions"`  // consecutive passes since last failure
	IntervalDays   float64   `json:"intervalDays"` // fractional only on first study
	EaseFactor     float64   `json:"easeFactor"`   // SM-2 multiplier, never below 1.3
}

// SessionRecord is one completed study session. Records are append-only
// and the history keeps the most recent 100.
type SessionRecord struct {
	ID               string       `json:"id"`
	Category         string       `json:"category"`
	DifficultyFilter []Difficulty `json:"difficultyFilter"`
	StartTime        time.Time    `json:"startTime"`
	CardsStudied     int          `json:"cardsStudied"`
	CorrectAnswers   int          `json:"correctAnswers"` // non-hard ratings
}

// AppStats is the singleton aggregate of all study activity.
// A zero LastStudyDate means the learner has never studied.
type AppStats struct {
	TotalCardsStudied      int       `json:"totalCardsStudied"`
	TotalSessionsCompleted int       `json:"totalSessionsCompleted"`
	TotalTimeSpentMinutes  int       `json:"totalTimeSpentMinutes"`
	LastStudyDate          time.Time `json:"lastStudyDate"`
	StreakCount            int       `json:"streakCount"`
	StreakStartDate        time.Time `json:"streakStartDate"`
}

// StatsPatch carries a partial stats update; nil fields are left untouched.
type StatsPatch struct {
	TotalCardsStudied      *int
	TotalSessionsCompleted *int
	TotalTimeSpentMinutes  *int
	LastStudyDate          *time.Time
	StreakCount            *int
	StreakStartDate        *time.Time
}

// UserPreferences holds the learner's display and study settings.
type UserPreferences struct {
	DefaultDifficulty []Difficulty `json:"defaultDifficulty"`
	AutoPlayAudio     bool         `json:"autoPlayAudio"`
	ShowCulturalNotes bool         `json:"showCulturalNotes"`
	CardAutoAdvance   bool         `json:"cardAutoAdvance"`
	Theme             string       `json:"theme"`
}

// DefaultPreferences returns the preferences used before the learner
// has saved any.
func DefaultPreferences() UserPreferences {
	return UserPreferences{
		DefaultDifficulty: []Difficulty{DifficultyBeginner},
		AutoPlayAudio:     false,
		ShowCulturalNotes: true,
		CardAutoAdvance:   false,
		Theme:             "system",
	}
}

// Snapshot is the serialized form of the whole store. The four section
// keys plus exportDate and schemaVersion are a compatibility contract;
// on import, nil sections leave the corresponding store section untouched.
type Snapshot struct {
	Records       map[string]ReviewRecord `json:"records"`
	Sessions      []SessionRecord         `json:"sessions"` // oldest to newest
	Stats         *AppStats               `json:"stats"`
	Preferences   *UserPreferences        `json:"preferences"`
	ExportDate    time.Time               `json:"exportDate"`
	SchemaVersion int                     `json:"schemaVersion"`
}
