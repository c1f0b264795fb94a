package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/daybook-app/daybook/pkg/types"
)

// GetUser retrieves the singleton user record. Returns types.ErrNotFound when
// no user has been saved yet.
func (s *Store) GetUser(ctx context.Context) (*types.User, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}
	row := db.QueryRowContext(ctx,
		`SELECT user_name, email, profile_picture, last_opened, preferences
		 FROM users WHERE user_id = ?`, types.UserRecordID)
	u, err := scanUser(row.Scan)
	if err == sql.ErrNoRows {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting user: %w", err)
	}
	return u, nil
}

// SaveUser upserts the singleton user record inside one transaction. When a
// record already exists the patch merges into it, preferences field by field;
// the stored values a patch does not mention are retained.
func (s *Store) SaveUser(ctx context.Context, patch types.UserPatch) (*types.User, error) {
	var saved *types.User
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx,
			`SELECT user_name, email, profile_picture, last_opened, preferences
			 FROM users WHERE user_id = ?`, types.UserRecordID)
		u, err := scanUser(row.Scan)
		if err == sql.ErrNoRows {
			u = &types.User{LastOpened: time.Now().UTC()}
		} else if err != nil {
			return fmt.Errorf("getting user: %w", err)
		}

		patch.Apply(u)
		prefs, err := json.Marshal(u.Preferences)
		if err != nil {
			return fmt.Errorf("marshaling preferences: %w", err)
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO users (user_id, user_name, email, profile_picture, last_opened, preferences)
			 VALUES (?, ?, ?, ?, ?, ?)
			 ON CONFLICT(user_id) DO UPDATE SET
			   user_name = excluded.user_name,
			   email = excluded.email,
			   profile_picture = excluded.profile_picture,
			   last_opened = excluded.last_opened,
			   preferences = excluded.preferences`,
			types.UserRecordID, u.UserName, u.Email, u.ProfilePicture,
			u.LastOpened.UTC().Format(time.RFC3339), string(prefs),
		)
		if err != nil {
			return fmt.Errorf("saving user: %w", err)
		}
		saved = u
		return nil
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

// DeleteUser removes the singleton user record. Reports false when none
// existed.
func (s *Store) DeleteUser(ctx context.Context) (bool, error) {
	var deleted bool
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, "DELETE FROM users WHERE user_id = ?", types.UserRecordID)
		if err != nil {
			return fmt.Errorf("deleting user: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("deleting user: %w", err)
		}
		deleted = n > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}

func scanUser(scan func(...any) error) (*types.User, error) {
	var u types.User
	var lastOpened, prefsJSON string
	if err := scan(&u.UserName, &u.Email, &u.ProfilePicture, &lastOpened, &prefsJSON); err != nil {
		return nil, err
	}
	var err error
	if u.LastOpened, err = time.Parse(time.RFC3339, lastOpened); err != nil {
		return nil, fmt.Errorf("parsing last_opened: %w", err)
	}
	if err := json.Unmarshal([]byte(prefsJSON), &u.Preferences); err != nil {
		return nil, fmt.Errorf("parsing preferences: %w", err)
	}
	return &u, nil
}
