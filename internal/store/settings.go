package store

import (
	"database/sql"
	"fmt"
)

// GetSetting returns the value stored under key, or "" when unset.
func (s *Store) GetSetting(key string) (string, error) {
	var v sql.NullString
	err := s.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&v)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read setting %s: %w", key, err)
	}
	return v.String, nil
}

// SetSetting stores value under key.
func (s *Store) SetSetting(key, value string) error {
	if key == "" {
		return invalid("setting key is required")
	}
	_, err := s.db.Exec(`INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)`, key, value)
	if err != nil {
		return fmt.Errorf("failed to write setting %s: %w", key, err)
	}
	return nil
}
