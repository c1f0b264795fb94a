package snapshot

import (
	"context"
	"fmt"
	"time"

	"github.com/daybook-app/daybook/internal/sqlite"
	"github.com/daybook-app/daybook/pkg/types"
)

// Restore destructively replaces all local records with the snapshot's
// contents inside a single transaction, preserving original ids.
//
// A nil snapshot is a no-op: a missing remote backup must never be read as
// "the user intended an empty store". Any malformed field aborts the whole
// restore with types.ErrInvalidSnapshot before or during the transaction, so
// the store ends up all-old or all-new, never mixed.
func Restore(ctx context.Context, store *sqlite.Store, snap *types.Snapshot) error {
	if snap == nil {
		return nil
	}
	set, err := decode(snap)
	if err != nil {
		return err
	}
	return store.ReplaceAll(ctx, *set)
}

// decode reverses the export transformations, validating every field. All
// parsing happens before any write so a corrupt snapshot cannot touch the
// store at all.
func decode(snap *types.Snapshot) (*sqlite.RestoreSet, error) {
	set := &sqlite.RestoreSet{}

	for i, sc := range snap.Checklists {
		id, err := types.ParseID(sc.ID)
		if err != nil {
			return nil, invalid("checklists[%d]._id %q", i, sc.ID)
		}
		if !types.ValidTaskType(sc.TaskType) {
			return nil, invalid("checklists[%d].taskType %q", i, sc.TaskType)
		}
		tasks := sc.Tasks
		if tasks == nil {
			tasks = []types.Task{}
		}
		set.Checklists = append(set.Checklists, types.Checklist{
			ID:          id,
			Title:       sc.Title,
			Description: sc.Description,
			TaskType:    sc.TaskType,
			IsCompleted: sc.IsCompleted,
			Category:    sc.Category,
			CreatedAt:   sc.CreatedAt,
			EndAt:       sc.EndAt,
			Tasks:       tasks,
		})
	}

	for i, se := range snap.Events {
		id, err := types.ParseID(se.ID)
		if err != nil {
			return nil, invalid("events[%d]._id %q", i, se.ID)
		}
		date, err := time.Parse(time.RFC3339, se.Date)
		if err != nil {
			return nil, invalid("events[%d].date %q", i, se.Date)
		}
		createdAt, err := time.Parse(time.RFC3339, se.CreatedAt)
		if err != nil {
			return nil, invalid("events[%d].createdAt %q", i, se.CreatedAt)
		}
		if !types.ValidRepeatType(se.RepeatType) {
			return nil, invalid("events[%d].repeatType %q", i, se.RepeatType)
		}
		for _, d := range se.WeekDays {
			if !types.ValidWeekDay(d) {
				return nil, invalid("events[%d].weekDays %q", i, d)
			}
		}
		set.Events = append(set.Events, types.Event{
			ID:             id,
			Title:          se.Title,
			Description:    se.Description,
			Date:           date,
			Time:           se.Time,
			RepeatType:     se.RepeatType,
			CustomInterval: se.CustomInterval,
			Interval:       se.Interval,
			Category:       se.Category,
			IsOneTime:      se.IsOneTime,
			WeekDays:       se.WeekDays,
			CreatedAt:      createdAt,
		})
	}

	for i, sp := range snap.Pomodoros {
		id, err := types.ParseID(sp.ID)
		if err != nil {
			return nil, invalid("pomodoros[%d]._id %q", i, sp.ID)
		}
		createdAt, err := time.Parse(time.RFC3339, sp.CreatedAt)
		if err != nil {
			return nil, invalid("pomodoros[%d].createdAt %q", i, sp.CreatedAt)
		}
		endAt, err := time.Parse(time.RFC3339, sp.EndAt)
		if err != nil {
			return nil, invalid("pomodoros[%d].endAt %q", i, sp.EndAt)
		}
		set.Pomodoros = append(set.Pomodoros, types.Pomodoro{
			ID:        id,
			Title:     sp.Title,
			TaskType:  sp.TaskType,
			Time:      sp.Time,
			Category:  sp.Category,
			CreatedAt: createdAt,
			EndAt:     endAt,
		})
	}

	if snap.User != nil {
		lastOpened, err := time.Parse(time.RFC3339, snap.User.LastOpened)
		if err != nil {
			return nil, invalid("user.lastOpened %q", snap.User.LastOpened)
		}
		user := &types.User{
			UserName:       snap.User.UserName,
			Email:          snap.User.Email,
			ProfilePicture: snap.User.ProfilePicture,
			LastOpened:     lastOpened,
		}
		if snap.User.Preferences != nil {
			user.Preferences = *snap.User.Preferences
		}
		set.User = user
	}

	return set, nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{types.ErrInvalidSnapshot}, args...)...)
}
