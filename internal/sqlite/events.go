package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/daybook-app/daybook/pkg/types"
)

// InsertEvent persists a new event inside one transaction.
func (s *Store) InsertEvent(ctx context.Context, e *types.Event) error {
	weekDays, err := marshalWeekDays(e.WeekDays)
	if err != nil {
		return err
	}
	return s.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO events
			 (event_id, title, description, date, time, repeat_type, custom_interval, interval,
			  category, is_one_time, week_days, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			e.ID.Hex(), e.Title, e.Description,
			e.Date.UTC().Format(time.RFC3339), e.Time,
			e.RepeatType, e.CustomInterval, e.Interval,
			e.Category, e.IsOneTime, weekDays,
			e.CreatedAt.UTC().Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("inserting event: %w", err)
		}
		return nil
	})
}

// GetEvent retrieves an event by id. Returns types.ErrNotFound when no record
// exists.
func (s *Store) GetEvent(ctx context.Context, id types.ID) (*types.Event, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}
	row := db.QueryRowContext(ctx, selectEvent+" WHERE event_id = ?", id.Hex())
	e, err := scanEvent(row.Scan)
	if err == sql.ErrNoRows {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting event %s: %w", id, err)
	}
	return e, nil
}

// ListEvents returns all events, newest first.
func (s *Store) ListEvents(ctx context.Context) ([]types.Event, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}
	rows, err := db.QueryContext(ctx, selectEvent+" ORDER BY created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}
	defer rows.Close()

	var result []types.Event
	for rows.Next() {
		e, err := scanEvent(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning event: %w", err)
		}
		result = append(result, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating events: %w", err)
	}
	return result, nil
}

// CountEvents returns the number of stored events.
func (s *Store) CountEvents(ctx context.Context) (int, error) {
	db, err := s.conn()
	if err != nil {
		return 0, err
	}
	var n int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM events").Scan(&n); err != nil {
		return 0, fmt.Errorf("counting events: %w", err)
	}
	return n, nil
}

// UpdateEvent fetches the event, merges the patch and writes the result, all
// inside one transaction. Returns types.ErrNotFound when the id does not
// exist.
func (s *Store) UpdateEvent(ctx context.Context, id types.ID, patch types.EventPatch) (*types.Event, error) {
	var updated *types.Event
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx, selectEvent+" WHERE event_id = ?", id.Hex())
		e, err := scanEvent(row.Scan)
		if err == sql.ErrNoRows {
			return types.ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("getting event %s: %w", id, err)
		}

		patch.Apply(e)
		weekDays, err := marshalWeekDays(e.WeekDays)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx,
			`UPDATE events SET title = ?, description = ?, date = ?, time = ?, repeat_type = ?,
			 custom_interval = ?, interval = ?, category = ?, is_one_time = ?, week_days = ?
			 WHERE event_id = ?`,
			e.Title, e.Description, e.Date.UTC().Format(time.RFC3339), e.Time,
			e.RepeatType, e.CustomInterval, e.Interval, e.Category, e.IsOneTime,
			weekDays, id.Hex(),
		)
		if err != nil {
			return fmt.Errorf("updating event %s: %w", id, err)
		}
		updated = e
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteEvent removes an event. Reports false, not an error, when the id does
// not exist.
func (s *Store) DeleteEvent(ctx context.Context, id types.ID) (bool, error) {
	var deleted bool
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, "DELETE FROM events WHERE event_id = ?", id.Hex())
		if err != nil {
			return fmt.Errorf("deleting event %s: %w", id, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("deleting event %s: %w", id, err)
		}
		deleted = n > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}

const selectEvent = `SELECT event_id, title, description, date, time, repeat_type, custom_interval,
 interval, category, is_one_time, week_days, created_at FROM events`

func marshalWeekDays(days []string) (string, error) {
	if days == nil {
		days = []string{}
	}
	b, err := json.Marshal(days)
	if err != nil {
		return "", fmt.Errorf("marshaling week days: %w", err)
	}
	return string(b), nil
}

func scanEvent(scan func(...any) error) (*types.Event, error) {
	var e types.Event
	var idHex, dateStr, createdStr, weekDaysJSON string
	if err := scan(&idHex, &e.Title, &e.Description, &dateStr, &e.Time, &e.RepeatType,
		&e.CustomInterval, &e.Interval, &e.Category, &e.IsOneTime, &weekDaysJSON, &createdStr); err != nil {
		return nil, err
	}
	id, err := types.ParseID(idHex)
	if err != nil {
		return nil, fmt.Errorf("parsing event id %q: %w", idHex, err)
	}
	e.ID = id
	if e.Date, err = time.Parse(time.RFC3339, dateStr); err != nil {
		return nil, fmt.Errorf("parsing event date: %w", err)
	}
	if e.CreatedAt, err = time.Parse(time.RFC3339, createdStr); err != nil {
		return nil, fmt.Errorf("parsing event created_at: %w", err)
	}
	if err := json.Unmarshal([]byte(weekDaysJSON), &e.WeekDays); err != nil {
		return nil, fmt.Errorf("parsing week days for %s: %w", idHex, err)
	}
	return &e, nil
}
