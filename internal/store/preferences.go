package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Preference keys. Absence of either key is the first-run state.
const (
	KeyTheme   = "user-theme"
	KeySession = "user-session"
)

// GetPreference returns the stored value for key. ok is false when the key is absent.
func (db *DB) GetPreference(key string) (value string, ok bool, err error) {
	err = db.QueryRow(`SELECT value FROM preferences WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get preference %q: %w", key, err)
	}
	return value, true, nil
}

// SetPreference inserts or replaces the value for key.
func (db *DB) SetPreference(key, value string) error {
	_, err := db.Exec(`
		INSERT INTO preferences (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at`,
		key, value, time.Now().UnixMilli())
	if err != nil {
		return fmt.Errorf("set preference %q: %w", key, err)
	}
	return nil
}

// DeletePreference removes key. Deleting an absent key is not an error.
func (db *DB) DeletePreference(key string) error {
	if _, err := db.Exec(`DELETE FROM preferences WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete preference %q: %w", key, err)
	}
	return nil
}
