package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

// Flag keys used by the daily first-open runner and sign-in bookkeeping.
// Values are opaque strings to the store.
const (
	FlagLastOpenedDay = "last_opened_day"
	FlagIsLoggedIn    = "is_logged_in"
)

// GetFlag returns the value of a local key-value flag, or "" when unset.
func (s *Store) GetFlag(ctx context.Context, key string) (string, error) {
	db, err := s.conn()
	if err != nil {
		return "", err
	}
	var value string
	err = db.QueryRowContext(ctx, "SELECT value FROM app_flags WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("getting flag %s: %w", key, err)
	}
	return value, nil
}

// SetFlag writes a local key-value flag, overwriting any prior value.
func (s *Store) SetFlag(ctx context.Context, key, value string) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO app_flags (key, value) VALUES (?, ?)
			 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
		if err != nil {
			return fmt.Errorf("setting flag %s: %w", key, err)
		}
		return nil
	})
}
