package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/daybook-app/daybook/pkg/types"
)

// InsertChecklist persists a new checklist inside one transaction. The caller
// supplies the id; inserts never overwrite an existing record.
func (s *Store) InsertChecklist(ctx context.Context, c *types.Checklist) error {
	tasks, err := marshalTasks(c.Tasks)
	if err != nil {
		return err
	}
	return s.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO checklists
			 (checklist_id, title, description, task_type, is_completed, category, created_at, end_at, tasks)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			c.ID.Hex(), c.Title, c.Description, c.TaskType, c.IsCompleted,
			c.Category, c.CreatedAt, c.EndAt, tasks,
		)
		if err != nil {
			return fmt.Errorf("inserting checklist: %w", err)
		}
		return nil
	})
}

// GetChecklist retrieves a checklist by id. Returns types.ErrNotFound when no
// record exists.
func (s *Store) GetChecklist(ctx context.Context, id types.ID) (*types.Checklist, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}
	row := db.QueryRowContext(ctx,
		`SELECT checklist_id, title, description, task_type, is_completed, category, created_at, end_at, tasks
		 FROM checklists WHERE checklist_id = ?`, id.Hex())
	c, err := scanChecklist(row.Scan)
	if err == sql.ErrNoRows {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting checklist %s: %w", id, err)
	}
	return c, nil
}

// ListChecklists returns all checklists, newest first.
func (s *Store) ListChecklists(ctx context.Context) ([]types.Checklist, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}
	rows, err := db.QueryContext(ctx,
		`SELECT checklist_id, title, description, task_type, is_completed, category, created_at, end_at, tasks
		 FROM checklists ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing checklists: %w", err)
	}
	defer rows.Close()

	var result []types.Checklist
	for rows.Next() {
		c, err := scanChecklist(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning checklist: %w", err)
		}
		result = append(result, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating checklists: %w", err)
	}
	return result, nil
}

// UpdateChecklist fetches the checklist, merges the patch and writes the
// result, all inside one transaction. Returns the updated record, or
// types.ErrNotFound when the id does not exist.
func (s *Store) UpdateChecklist(ctx context.Context, id types.ID, patch types.ChecklistPatch) (*types.Checklist, error) {
	var updated *types.Checklist
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx,
			`SELECT checklist_id, title, description, task_type, is_completed, category, created_at, end_at, tasks
			 FROM checklists WHERE checklist_id = ?`, id.Hex())
		c, err := scanChecklist(row.Scan)
		if err == sql.ErrNoRows {
			return types.ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("getting checklist %s: %w", id, err)
		}

		patch.Apply(c)
		tasks, err := marshalTasks(c.Tasks)
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx,
			`UPDATE checklists SET title = ?, description = ?, task_type = ?, is_completed = ?,
			 category = ?, end_at = ?, tasks = ? WHERE checklist_id = ?`,
			c.Title, c.Description, c.TaskType, c.IsCompleted, c.Category, c.EndAt, tasks, id.Hex(),
		)
		if err != nil {
			return fmt.Errorf("updating checklist %s: %w", id, err)
		}
		updated = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteChecklist removes a checklist and its embedded tasks. Reports false,
// not an error, when the id does not exist.
func (s *Store) DeleteChecklist(ctx context.Context, id types.ID) (bool, error) {
	var deleted bool
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, "DELETE FROM checklists WHERE checklist_id = ?", id.Hex())
		if err != nil {
			return fmt.Errorf("deleting checklist %s: %w", id, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("deleting checklist %s: %w", id, err)
		}
		deleted = n > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}

func marshalTasks(tasks []types.Task) (string, error) {
	if tasks == nil {
		tasks = []types.Task{}
	}
	b, err := json.Marshal(tasks)
	if err != nil {
		return "", fmt.Errorf("marshaling tasks: %w", err)
	}
	return string(b), nil
}

// scanChecklist hydrates one row into a detached Checklist. The scan argument
// works for both sql.Row and sql.Rows.
func scanChecklist(scan func(...any) error) (*types.Checklist, error) {
	var c types.Checklist
	var idHex, tasksJSON string
	if err := scan(&idHex, &c.Title, &c.Description, &c.TaskType, &c.IsCompleted,
		&c.Category, &c.CreatedAt, &c.EndAt, &tasksJSON); err != nil {
		return nil, err
	}
	id, err := types.ParseID(idHex)
	if err != nil {
		return nil, fmt.Errorf("parsing checklist id %q: %w", idHex, err)
	}
	c.ID = id
	if err := json.Unmarshal([]byte(tasksJSON), &c.Tasks); err != nil {
		return nil, fmt.Errorf("parsing tasks for %s: %w", idHex, err)
	}
	return &c, nil
}
