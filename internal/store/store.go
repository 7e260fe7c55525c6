// Package store owns the durable review state: per-card records, session
// history, aggregate stats and preferences. All other packages go through
// it; nothing else holds a long-lived copy of persisted state.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/nkmathew/kikuyu-language-hub-sub004/internal/models"
)

// SessionHistoryLimit caps the retained session history (FIFO eviction).
const SessionHistoryLimit = 100

// Store is a SQLite-backed review state store. One mutex per key-space
// keeps read-modify-write operations on the singletons serialized.
type Store struct {
	db *sql.DB

	recordsMu  sync.Mutex
	sessionsMu sync.Mutex
	statsMu    sync.Mutex
	prefsMu    sync.Mutex
}

// Open opens (creating if needed) the store at the given database path.
func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("cannot create data directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func initSchema(db *sql.DB) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS records (
			card_id TEXT PRIMARY KEY,
			last_rating TEXT NOT NULL,
			last_reviewed_at DATETIME NOT NULL,
			next_review_at DATETIME NOT NULL,
			repetitions INTEGER NOT NULL,
			interval_days REAL NOT NULL,
			ease_factor REAL NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS sessions (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL,
			category TEXT,
			difficulty_filter TEXT,
			start_time DATETIME NOT NULL,
			cards_studied INTEGER NOT NULL,
			correct_answers INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS stats (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			total_cards_studied INTEGER NOT NULL,
			total_sessions_completed INTEGER NOT NULL,
			total_time_spent_minutes INTEGER NOT NULL,
			last_study_date DATETIME,
			streak_count INTEGER NOT NULL,
			streak_start_date DATETIME
		);`,
		`CREATE TABLE IF NOT EXISTS preferences (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			default_difficulty TEXT NOT NULL,
			auto_play_audio INTEGER NOT NULL,
			show_cultural_notes INTEGER NOT NULL,
			card_auto_advance INTEGER NOT NULL,
			theme TEXT NOT NULL
		);`,
	}

	for _, q := range queries {
		if _, err := db.Exec(q); err != nil {
			return err
		}
	}
	return nil
}

/* -------------------- records -------------------- */

// GetRecord returns the review record for a card, or nil if the card has
// never been studied.
func (s *Store) GetRecord(cardID string) (*models.ReviewRecord, error) {
	s.recordsMu.Lock()
	defer s.recordsMu.Unlock()

	row := s.db.QueryRow(`
		SELECT card_id, last_rating, last_reviewed_at, next_review_at, repetitions, interval_days, ease_factor
		FROM records WHERE card_id = ?`, cardID)

	rec, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// PutRecord upserts a card's review record.
func (s *Store) PutRecord(rec models.ReviewRecord) error {
	s.recordsMu.Lock()
	defer s.recordsMu.Unlock()

	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO records (card_id, last_rating, last_reviewed_at, next_review_at, repetitions, interval_days, ease_factor)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.CardID, string(rec.LastRating), rec.LastReviewedAt, rec.NextReviewAt, rec.Repetitions, rec.IntervalDays, rec.EaseFactor,
	)
	return err
}

// AllRecords returns every review record keyed by card id.
func (s *Store) AllRecords() (map[string]models.ReviewRecord, error) {
	s.recordsMu.Lock()
	defer s.recordsMu.Unlock()
	return allRecords(s.db)
}

func allRecords(q querier) (map[string]models.ReviewRecord, error) {
	rows, err := q.Query(`
		SELECT card_id, last_rating, last_reviewed_at, next_review_at, repetitions, interval_days, ease_factor
		FROM records`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make(map[string]models.ReviewRecord)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records[rec.CardID] = *rec
	}
	return records, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

type querier interface {
	Query(query string, args ...any) (*sql.Rows, error)
}

func scanRecord(row rowScanner) (*models.ReviewRecord, error) {
	var rec models.ReviewRecord
	var rating string
	if err := row.Scan(&rec.CardID, &rating, &rec.LastReviewedAt, &rec.NextReviewAt, &rec.Repetitions, &rec.IntervalDays, &rec.EaseFactor); err != nil {
		return nil, err
	}
	rec.LastRating = models.Rating(rating)
	return &rec, nil
}

/* -------------------- sessions -------------------- */

// AppendSession appends a completed session and trims the history to the
// most recent SessionHistoryLimit entries, oldest evicted first.
func (s *Store) AppendSession(session models.SessionRecord) error {
	s.sessionsMu.Lock()
	defer s.sessionsMu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO sessions (id, category, difficulty_filter, start_time, cards_studied, correct_answers)
		VALUES (?, ?, ?, ?, ?, ?)`,
		session.ID, session.Category, joinDifficulties(session.DifficultyFilter),
		session.StartTime, session.CardsStudied, session.CorrectAnswers,
	)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(`
		DELETE FROM sessions WHERE seq NOT IN (
			SELECT seq FROM sessions ORDER BY seq DESC LIMIT ?
		)`, SessionHistoryLimit)
	return err
}

// Sessions returns the most recent limit sessions, newest first.
// A non-positive limit returns the whole history.
func (s *Store) Sessions(limit int) ([]models.SessionRecord, error) {
	s.sessionsMu.Lock()
	defer s.sessionsMu.Unlock()

	if limit <= 0 || limit > SessionHistoryLimit {
		limit = SessionHistoryLimit
	}

	rows, err := s.db.Query(`
		SELECT id, category, difficulty_filter, start_time, cards_studied, correct_answers
		FROM sessions ORDER BY seq DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSessions(rows)
}

// AllSessions returns the full history oldest to newest, the order the
// export snapshot requires.
func (s *Store) AllSessions() ([]models.SessionRecord, error) {
	s.sessionsMu.Lock()
	defer s.sessionsMu.Unlock()
	return allSessions(s.db)
}

func allSessions(q querier) ([]models.SessionRecord, error) {
	rows, err := q.Query(`
		SELECT id, category, difficulty_filter, start_time, cards_studied, correct_answers
		FROM sessions ORDER BY seq ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSessions(rows)
}

func scanSessions(rows *sql.Rows) ([]models.SessionRecord, error) {
	var sessions []models.SessionRecord
	for rows.Next() {
		var sess models.SessionRecord
		var filter string
		if err := rows.Scan(&sess.ID, &sess.Category, &filter, &sess.StartTime, &sess.CardsStudied, &sess.CorrectAnswers); err != nil {
			return nil, err
		}
		sess.DifficultyFilter = splitDifficulties(filter)
		sessions = append(sessions, sess)
	}
	return sessions, rows.Err()
}

func joinDifficulties(diffs []models.Difficulty) string {
	parts := make([]string, len(diffs))
	for i, d := range diffs {
		parts[i] = string(d)
	}
	return strings.Join(parts, ",")
}

func splitDifficulties(s string) []models.Difficulty {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	diffs := make([]models.Difficulty, len(parts))
	for i, p := range parts {
		diffs[i] = models.Difficulty(p)
	}
	return diffs
}

/* -------------------- stats -------------------- */

// Stats returns the aggregate stats, zero-valued before the first study.
func (s *Store) Stats() (models.AppStats, error) {
	s.statsMu.Lock()
	defer s.statsMu.Unlock()
	return readStats(s.db)
}

type rowQuerier interface {
	QueryRow(query string, args ...any) *sql.Row
}

func readStats(q rowQuerier) (models.AppStats, error) {
	row := q.QueryRow(`
		SELECT total_cards_studied, total_sessions_completed, total_time_spent_minutes,
		       last_study_date, streak_count, streak_start_date
		FROM stats WHERE id = 1`)

	var stats models.AppStats
	var lastStudy, streakStart sql.NullTime
	err := row.Scan(&stats.TotalCardsStudied, &stats.TotalSessionsCompleted,
		&stats.TotalTimeSpentMinutes, &lastStudy, &stats.StreakCount, &streakStart)
	if err == sql.ErrNoRows {
		return models.AppStats{}, nil
	}
	if err != nil {
		return models.AppStats{}, err
	}
	if lastStudy.Valid {
		stats.LastStudyDate = lastStudy.Time
	}
	if streakStart.Valid {
		stats.StreakStartDate = streakStart.Time
	}
	return stats, nil
}

// UpdateStats applies a shallow merge of the patch over the current stats.
func (s *Store) UpdateStats(patch models.StatsPatch) error {
	s.statsMu.Lock()
	defer s.statsMu.Unlock()

	stats, err := readStats(s.db)
	if err != nil {
		return err
	}

	if patch.TotalCardsStudied != nil {
		stats.TotalCardsStudied = *patch.TotalCardsStudied
	}
	if patch.TotalSessionsCompleted != nil {
		stats.TotalSessionsCompleted = *patch.TotalSessionsCompleted
	}
	if patch.TotalTimeSpentMinutes != nil {
		stats.TotalTimeSpentMinutes = *patch.TotalTimeSpentMinutes
	}
	if patch.LastStudyDate != nil {
		stats.LastStudyDate = *patch.LastStudyDate
	}
	if patch.StreakCount != nil {
		stats.StreakCount = *patch.StreakCount
	}
	if patch.StreakStartDate != nil {
		stats.StreakStartDate = *patch.StreakStartDate
	}

	return writeStats(s.db, stats)
}

type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

func writeStats(e execer, stats models.AppStats) error {
	_, err := e.Exec(`
		INSERT OR REPLACE INTO stats (id, total_cards_studied, total_sessions_completed,
			total_time_spent_minutes, last_study_date, streak_count, streak_start_date)
		VALUES (1, ?, ?, ?, ?, ?, ?)`,
		stats.TotalCardsStudied, stats.TotalSessionsCompleted, stats.TotalTimeSpentMinutes,
		nullableTime(stats.LastStudyDate), stats.StreakCount, nullableTime(stats.StreakStartDate),
	)
	return err
}

func nullableTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t
}

/* -------------------- preferences -------------------- */

// Preferences returns the saved preferences, or the defaults before the
// learner has saved any.
func (s *Store) Preferences() (models.UserPreferences, error) {
	s.prefsMu.Lock()
	defer s.prefsMu.Unlock()
	return readPreferences(s.db)
}

func readPreferences(q rowQuerier) (models.UserPreferences, error) {
	row := q.QueryRow(`
		SELECT default_difficulty, auto_play_audio, show_cultural_notes, card_auto_advance, theme
		FROM preferences WHERE id = 1`)

	var prefs models.UserPreferences
	var diffs string
	err := row.Scan(&diffs, &prefs.AutoPlayAudio, &prefs.ShowCulturalNotes, &prefs.CardAutoAdvance, &prefs.Theme)
	if err == sql.ErrNoRows {
		return models.DefaultPreferences(), nil
	}
	if err != nil {
		return models.UserPreferences{}, err
	}
	prefs.DefaultDifficulty = splitDifficulties(diffs)
	return prefs, nil
}

// SavePreferences overwrites the preferences in full.
func (s *Store) SavePreferences(prefs models.UserPreferences) error {
	s.prefsMu.Lock()
	defer s.prefsMu.Unlock()
	return writePreferences(s.db, prefs)
}

func writePreferences(e execer, prefs models.UserPreferences) error {
	_, err := e.Exec(`
		INSERT OR REPLACE INTO preferences (id, default_difficulty, auto_play_audio,
			show_cultural_notes, card_auto_advance, theme)
		VALUES (1, ?, ?, ?, ?, ?)`,
		joinDifficulties(prefs.DefaultDifficulty), prefs.AutoPlayAudio,
		prefs.ShowCulturalNotes, prefs.CardAutoAdvance, prefs.Theme,
	)
	return err
}

// UpdatePreference merges a single preference field by its JSON key.
func (s *Store) UpdatePreference(key string, value any) error {
	s.prefsMu.Lock()
	defer s.prefsMu.Unlock()

	prefs, err := readPreferences(s.db)
	if err != nil {
		return err
	}

	switch key {
	case "defaultDifficulty":
		diffs, ok := value.([]models.Difficulty)
		if !ok {
			return fmt.Errorf("preference %q wants a difficulty list", key)
		}
		prefs.DefaultDifficulty = diffs
	case "autoPlayAudio", "showCulturalNotes", "cardAutoAdvance":
		b, ok := value.(bool)
		if !ok {
			return fmt.Errorf("preference %q wants a boolean", key)
		}
		switch key {
		case "autoPlayAudio":
			prefs.AutoPlayAudio = b
		case "showCulturalNotes":
			prefs.ShowCulturalNotes = b
		case "cardAutoAdvance":
			prefs.CardAutoAdvance = b
		}
	case "theme":
		t, ok := value.(string)
		if !ok {
			return fmt.Errorf("preference %q wants a string", key)
		}
		prefs.Theme = t
	default:
		return fmt.Errorf("unknown preference %q", key)
	}

	return writePreferences(s.db, prefs)
}

/* -------------------- clear -------------------- */

// ClearAll resets every section to its empty/default state.
func (s *Store) ClearAll() error {
	s.lockAll()
	defer s.unlockAll()

	for _, table := range []string{"records", "sessions", "stats", "preferences"} {
		if _, err := s.db.Exec("DELETE FROM " + table); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) lockAll() {
	s.recordsMu.Lock()
	s.sessionsMu.Lock()
	s.statsMu.Lock()
	s.prefsMu.Lock()
}

func (s *Store) unlockAll() {
	s.prefsMu.Unlock()
	s.statsMu.Unlock()
	s.sessionsMu.Unlock()
	s.recordsMu.Unlock()
}
