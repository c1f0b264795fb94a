package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/daybook-app/daybook/pkg/types"
)

// RestoreSet is the fully-typed contents of a snapshot, ready to be written.
// The snapshot package builds it after validating and reversing the wire
// transformations; by the time it reaches the store every field is parsed.
type RestoreSet struct {
	Checklists []types.Checklist
	Events     []types.Event
	Pomodoros  []types.Pomodoro
	User       *types.User
}

// ReplaceAll destructively replaces every entity record with the given set
// inside a single transaction: all-old or all-new, never a mix. Original ids
// are preserved so identity is stable across backup/restore cycles. Readers
// cannot observe a half-restored state because the whole replacement holds
// the store's write transaction.
func (s *Store) ReplaceAll(ctx context.Context, set RestoreSet) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		if err := wipeEntities(ctx, tx); err != nil {
			return err
		}

		for i := range set.Checklists {
			c := &set.Checklists[i]
			tasks, err := marshalTasks(c.Tasks)
			if err != nil {
				return err
			}
			_, err = tx.ExecContext(ctx,
				`INSERT INTO checklists
				 (checklist_id, title, description, task_type, is_completed, category, created_at, end_at, tasks)
				 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				c.ID.Hex(), c.Title, c.Description, c.TaskType, c.IsCompleted,
				c.Category, c.CreatedAt, c.EndAt, tasks,
			)
			if err != nil {
				return fmt.Errorf("restoring checklist %s: %w", c.ID, err)
			}
		}

		for i := range set.Events {
			e := &set.Events[i]
			weekDays, err := marshalWeekDays(e.WeekDays)
			if err != nil {
				return err
			}
			_, err = tx.ExecContext(ctx,
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
				return fmt.Errorf("restoring event %s: %w", e.ID, err)
			}
		}

		for i := range set.Pomodoros {
			p := &set.Pomodoros[i]
			_, err := tx.ExecContext(ctx,
				`INSERT INTO pomodoros (pomodoro_id, title, task_type, time, category, created_at, end_at)
				 VALUES (?, ?, ?, ?, ?, ?, ?)`,
				p.ID.Hex(), p.Title, p.TaskType, p.Time, p.Category,
				p.CreatedAt.UTC().Format(time.RFC3339), p.EndAt.UTC().Format(time.RFC3339),
			)
			if err != nil {
				return fmt.Errorf("restoring pomodoro %s: %w", p.ID, err)
			}
		}

		if set.User != nil {
			prefs, err := json.Marshal(set.User.Preferences)
			if err != nil {
				return fmt.Errorf("marshaling preferences: %w", err)
			}
			_, err = tx.ExecContext(ctx,
				`INSERT INTO users (user_id, user_name, email, profile_picture, last_opened, preferences)
				 VALUES (?, ?, ?, ?, ?, ?)`,
				types.UserRecordID, set.User.UserName, set.User.Email, set.User.ProfilePicture,
				set.User.LastOpened.UTC().Format(time.RFC3339), string(prefs),
			)
			if err != nil {
				return fmt.Errorf("restoring user: %w", err)
			}
		}

		return nil
	})
}
