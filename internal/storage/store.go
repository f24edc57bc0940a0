package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/zdzakic/booky/internal/constants"
	"github.com/zdzakic/booky/internal/models"
)

// Store persists client settings (language, backend URL, default filter) in
// a small sqlite database under the config dir. Credentials never live here.
type Store struct {
	path string
	db   *sql.DB
}

// NewStore creates a store for the given database path. `~` is expanded.
func NewStore(path string) *Store {
	if strings.HasPrefix(path, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[1:])
		}
	}
	return &Store{path: path}
}

// Dir returns the directory holding the database (also used for logs).
func (s *Store) Dir() string {
	return filepath.Dir(s.path)
}

// Open opens the database, creating directory and schema on first use, and
// seeds default settings when none exist yet.
func (s *Store) Open() error {
	if err := os.MkdirAll(s.Dir(), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS settings (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`); err != nil {
		return fmt.Errorf("failed to create settings table: %w", err)
	}

	settings, err := s.GetSettings()
	if err != nil || settings.Language == "" {
		defaults := models.Settings{
			Language:      string(constants.LanguageGerman),
			BaseURL:       constants.DefaultBaseURL,
			DefaultPeriod: string(constants.PeriodUpcoming),
		}
		if err := s.SaveSettings(defaults); err != nil {
			return fmt.Errorf("failed to save default settings: %w", err)
		}
	}

	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// GetSettings reads the stored settings.
func (s *Store) GetSettings() (models.Settings, error) {
	rows, err := s.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return models.Settings{}, err
	}
	defer rows.Close()

	settings := models.Settings{}
	count := 0
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return models.Settings{}, err
		}
		switch key {
		case "language":
			settings.Language = value
		case "base_url":
			settings.BaseURL = value
		case "default_period":
			settings.DefaultPeriod = value
		}
		count++
	}
	if err := rows.Err(); err != nil {
		return models.Settings{}, err
	}

	if count == 0 {
		return models.Settings{}, fmt.Errorf("settings not found")
	}
	return settings, nil
}

// SaveSettings writes all settings in one transaction.
func (s *Store) SaveSettings(settings models.Settings) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	if _, err := stmt.Exec("language", settings.Language); err != nil {
		return err
	}
	if _, err := stmt.Exec("base_url", settings.BaseURL); err != nil {
		return err
	}
	if _, err := stmt.Exec("default_period", settings.DefaultPeriod); err != nil {
		return err
	}

	return tx.Commit()
}
