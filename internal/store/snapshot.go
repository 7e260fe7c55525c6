package store

import (
	"fmt"
	"time"

	"github.com/nkmathew/kikuyu-language-hub-sub004/internal/models"
)

// ExportAll captures the whole store as a snapshot for backup or transfer.
func (s *Store) ExportAll(now time.Time) (models.Snapshot, error) {
	s.lockAll()
	defer s.unlockAll()

	records, err := allRecords(s.db)
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("export records: %w", err)
	}
	sessions, err := allSessions(s.db)
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("export sessions: %w", err)
	}
	if sessions == nil {
		// Keep the section present in the snapshot even when empty.
		sessions = []models.SessionRecord{}
	}
	stats, err := readStats(s.db)
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("export stats: %w", err)
	}
	prefs, err := readPreferences(s.db)
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("export preferences: %w", err)
	}

	return models.Snapshot{
		Records:       records,
		Sessions:      sessions,
		Stats:         &stats,
		Preferences:   &prefs,
		ExportDate:    now,
		SchemaVersion: models.SchemaVersion,
	}, nil
}

// ImportAll overwrites each store section present in the snapshot; absent
// (nil) sections are left untouched. The snapshot is validated up front and
// applied in a single transaction, so a bad import never leaves the store
// partially overwritten. Unlike reads, failures here always surface.
func (s *Store) ImportAll(snap models.Snapshot) error {
	if err := validateSnapshot(snap); err != nil {
		return err
	}

	s.lockAll()
	defer s.unlockAll()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if snap.Records != nil {
		if _, err := tx.Exec("DELETE FROM records"); err != nil {
			return err
		}
		for _, rec := range snap.Records {
			_, err := tx.Exec(`
				INSERT INTO records (card_id, last_rating, last_reviewed_at, next_review_at, repetitions, interval_days, ease_factor)
				VALUES (?, ?, ?, ?, ?, ?, ?)`,
				rec.CardID, string(rec.LastRating), rec.LastReviewedAt, rec.NextReviewAt,
				rec.Repetitions, rec.IntervalDays, rec.EaseFactor,
			)
			if err != nil {
				return err
			}
		}
	}

	if snap.Sessions != nil {
		if _, err := tx.Exec("DELETE FROM sessions"); err != nil {
			return err
		}
		sessions := snap.Sessions
		if len(sessions) > SessionHistoryLimit {
			sessions = sessions[len(sessions)-SessionHistoryLimit:]
		}
		for _, sess := range sessions {
			_, err := tx.Exec(`
				INSERT INTO sessions (id, category, difficulty_filter, start_time, cards_studied, correct_answers)
				VALUES (?, ?, ?, ?, ?, ?)`,
				sess.ID, sess.Category, joinDifficulties(sess.DifficultyFilter),
				sess.StartTime, sess.CardsStudied, sess.CorrectAnswers,
			)
			if err != nil {
				return err
			}
		}
	}

	if snap.Stats != nil {
		if err := writeStats(tx, *snap.Stats); err != nil {
			return err
		}
	}

	if snap.Preferences != nil {
		if err := writePreferences(tx, *snap.Preferences); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// validateSnapshot rejects malformed snapshots before anything is written.
func validateSnapshot(snap models.Snapshot) error {
	if snap.SchemaVersion != models.SchemaVersion {
		return fmt.Errorf("unsupported snapshot schema version %d (want %d)", snap.SchemaVersion, models.SchemaVersion)
	}

	for id, rec := range snap.Records {
		if id == "" || rec.CardID != id {
			return fmt.Errorf("snapshot record key %q does not match card id %q", id, rec.CardID)
		}
		if !rec.LastRating.IsValid() {
			return fmt.Errorf("snapshot record %q has invalid rating %q", id, rec.LastRating)
		}
		if rec.Repetitions < 0 {
			return fmt.Errorf("snapshot record %q has negative repetitions", id)
		}
		if rec.EaseFactor < 1.3 {
			return fmt.Errorf("snapshot record %q has ease factor %.2f below 1.3", id, rec.EaseFactor)
		}
		if rec.NextReviewAt.Before(rec.LastReviewedAt) {
			return fmt.Errorf("snapshot record %q has next review before last review", id)
		}
	}

	for _, sess := range snap.Sessions {
		if sess.ID == "" {
			return fmt.Errorf("snapshot session with empty id")
		}
	}

	return nil
}
