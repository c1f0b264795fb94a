package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/daybook-app/daybook/pkg/types"
)

// InsertPomodoro persists a logged session inside one transaction. Sessions
// are immutable once stored; there is no update path.
func (s *Store) InsertPomodoro(ctx context.Context, p *types.Pomodoro) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO pomodoros (pomodoro_id, title, task_type, time, category, created_at, end_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			p.ID.Hex(), p.Title, p.TaskType, p.Time, p.Category,
			p.CreatedAt.UTC().Format(time.RFC3339), p.EndAt.UTC().Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("inserting pomodoro: %w", err)
		}
		return nil
	})
}

// GetPomodoro retrieves a session by id. Returns types.ErrNotFound when no
// record exists.
func (s *Store) GetPomodoro(ctx context.Context, id types.ID) (*types.Pomodoro, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}
	row := db.QueryRowContext(ctx,
		`SELECT pomodoro_id, title, task_type, time, category, created_at, end_at
		 FROM pomodoros WHERE pomodoro_id = ?`, id.Hex())
	p, err := scanPomodoro(row.Scan)
	if err == sql.ErrNoRows {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting pomodoro %s: %w", id, err)
	}
	return p, nil
}

// ListPomodoros returns all logged sessions, newest first.
func (s *Store) ListPomodoros(ctx context.Context) ([]types.Pomodoro, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}
	rows, err := db.QueryContext(ctx,
		`SELECT pomodoro_id, title, task_type, time, category, created_at, end_at
		 FROM pomodoros ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing pomodoros: %w", err)
	}
	defer rows.Close()

	var result []types.Pomodoro
	for rows.Next() {
		p, err := scanPomodoro(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning pomodoro: %w", err)
		}
		result = append(result, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating pomodoros: %w", err)
	}
	return result, nil
}

// CountPomodoros returns the session count and the summed planned duration.
func (s *Store) CountPomodoros(ctx context.Context) (types.PomodoroCount, error) {
	db, err := s.conn()
	if err != nil {
		return types.PomodoroCount{}, err
	}
	var count types.PomodoroCount
	err = db.QueryRowContext(ctx,
		"SELECT COUNT(*), COALESCE(SUM(time), 0) FROM pomodoros",
	).Scan(&count.Total, &count.TotalTime)
	if err != nil {
		return types.PomodoroCount{}, fmt.Errorf("counting pomodoros: %w", err)
	}
	return count, nil
}

// DeletePomodoro removes a session. Reports false, not an error, when the id
// does not exist.
func (s *Store) DeletePomodoro(ctx context.Context, id types.ID) (bool, error) {
	var deleted bool
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, "DELETE FROM pomodoros WHERE pomodoro_id = ?", id.Hex())
		if err != nil {
			return fmt.Errorf("deleting pomodoro %s: %w", id, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("deleting pomodoro %s: %w", id, err)
		}
		deleted = n > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}

func scanPomodoro(scan func(...any) error) (*types.Pomodoro, error) {
	var p types.Pomodoro
	var idHex, createdStr, endStr string
	if err := scan(&idHex, &p.Title, &p.TaskType, &p.Time, &p.Category, &createdStr, &endStr); err != nil {
		return nil, err
	}
	id, err := types.ParseID(idHex)
	if err != nil {
		return nil, fmt.Errorf("parsing pomodoro id %q: %w", idHex, err)
	}
	p.ID = id
	if p.CreatedAt, err = time.Parse(time.RFC3339, createdStr); err != nil {
		return nil, fmt.Errorf("parsing pomodoro created_at: %w", err)
	}
	if p.EndAt, err = time.Parse(time.RFC3339, endStr); err != nil {
		return nil, fmt.Errorf("parsing pomodoro end_at: %w", err)
	}
	return &p, nil
}
