package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	DataDir      string
	DatabasePath string
	DeckPath     string
}

// Load reads configuration from a .env file (if present) and environment
// variables, falling back to defaults under the home directory.
func Load() *Config {
	_ = godotenv.Load() // optional; absence is not an error

	dataDir := os.Getenv("KIKUYU_HUB_DATA_DIR")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		dataDir = filepath.Join(home, ".kikuyu-hub")
	}

	return &Config{
		DataDir:      dataDir,
		DatabasePath: filepath.Join(dataDir, "kikuyu-hub.db"),
		DeckPath:     getEnv("KIKUYU_HUB_DECK", filepath.Join(dataDir, "deck.json")),
	}
}

// getEnv reads an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
