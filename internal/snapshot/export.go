// Package snapshot converts between the record store and the plain-data
// snapshot format used for cloud backup: a read-only exporter and a
// destructive, transactional restorer.
package snapshot

import (
	"context"
	"errors"
	"time"

	"github.com/daybook-app/daybook/internal/sqlite"
	"github.com/daybook-app/daybook/pkg/types"
)

// Export walks every entity type and produces a plain snapshot: ids as
// lowercase hex, dates as RFC 3339 strings, embedded lists as plain arrays.
// The scan is read-only; the store is never mutated.
func Export(ctx context.Context, store *sqlite.Store) (*types.Snapshot, error) {
	checklists, err := store.ListChecklists(ctx)
	if err != nil {
		return nil, err
	}
	events, err := store.ListEvents(ctx)
	if err != nil {
		return nil, err
	}
	pomodoros, err := store.ListPomodoros(ctx)
	if err != nil {
		return nil, err
	}

	snap := &types.Snapshot{
		Checklists: make([]types.SnapshotChecklist, 0, len(checklists)),
		Events:     make([]types.SnapshotEvent, 0, len(events)),
		Pomodoros:  make([]types.SnapshotPomodoro, 0, len(pomodoros)),
	}
	for _, c := range checklists {
		snap.Checklists = append(snap.Checklists, exportChecklist(c))
	}
	for _, e := range events {
		snap.Events = append(snap.Events, exportEvent(e))
	}
	for _, p := range pomodoros {
		snap.Pomodoros = append(snap.Pomodoros, exportPomodoro(p))
	}

	user, err := store.GetUser(ctx)
	if err != nil && !errors.Is(err, types.ErrNotFound) {
		return nil, err
	}
	if user != nil {
		snap.User = exportUser(*user)
	}

	return snap, nil
}

func exportChecklist(c types.Checklist) types.SnapshotChecklist {
	tasks := c.Tasks
	if tasks == nil {
		tasks = []types.Task{}
	}
	return types.SnapshotChecklist{
		ID:          c.ID.Hex(),
		Title:       c.Title,
		Description: c.Description,
		TaskType:    c.TaskType,
		IsCompleted: c.IsCompleted,
		Category:    c.Category,
		CreatedAt:   c.CreatedAt,
		EndAt:       c.EndAt,
		Tasks:       tasks,
	}
}

func exportEvent(e types.Event) types.SnapshotEvent {
	return types.SnapshotEvent{
		ID:             e.ID.Hex(),
		Title:          e.Title,
		Description:    e.Description,
		Date:           e.Date.UTC().Format(time.RFC3339),
		Time:           e.Time,
		RepeatType:     e.RepeatType,
		CustomInterval: e.CustomInterval,
		Interval:       e.Interval,
		Category:       e.Category,
		IsOneTime:      e.IsOneTime,
		WeekDays:       e.WeekDays,
		CreatedAt:      e.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func exportPomodoro(p types.Pomodoro) types.SnapshotPomodoro {
	return types.SnapshotPomodoro{
		ID:        p.ID.Hex(),
		Title:     p.Title,
		TaskType:  p.TaskType,
		Time:      p.Time,
		Category:  p.Category,
		CreatedAt: p.CreatedAt.UTC().Format(time.RFC3339),
		EndAt:     p.EndAt.UTC().Format(time.RFC3339),
	}
}

func exportUser(u types.User) *types.SnapshotUser {
	prefs := u.Preferences
	return &types.SnapshotUser{
		UserName:       u.UserName,
		Email:          u.Email,
		ProfilePicture: u.ProfilePicture,
		LastOpened:     u.LastOpened.UTC().Format(time.RFC3339),
		Preferences:    &prefs,
	}
}
