package cmd

import (
	"fmt"

	"github.com/nkmathew/kikuyu-language-hub-sub004/internal/config"
	"github.com/nkmathew/kikuyu-language-hub-sub004/internal/models"
	"github.com/nkmathew/kikuyu-language-hub-sub004/internal/store"
)

func openStore() (*store.Store, error) {
	cfg := config.Load()
	return store.Open(cfg.DatabasePath)
}

// loadRecords degrades a failed read to an empty map so read-only commands
// stay usable when the store is unavailable.
func loadRecords(s *store.Store) map[string]models.ReviewRecord {
	records, err := s.AllRecords()
	if err != nil {
		fmt.Println("⚠️ Could not read review records:", err)
		return map[string]models.ReviewRecord{}
	}
	return records
}

// loadStats degrades a failed read to zero-valued stats.
func loadStats(s *store.Store) models.AppStats {
	stats, err := s.Stats()
	if err != nil {
		fmt.Println("⚠️ Could not read stats:", err)
		return models.AppStats{}
	}
	return stats
}

// loadPreferences degrades a failed read to the defaults.
func loadPreferences(s *store.Store) models.UserPreferences {
	prefs, err := s.Preferences()
	if err != nil {
		fmt.Println("⚠️ Could not read preferences:", err)
		return models.DefaultPreferences()
	}
	return prefs
}
