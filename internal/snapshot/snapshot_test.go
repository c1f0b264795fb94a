package snapshot

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daybook-app/daybook/internal/sqlite"
	"github.com/daybook-app/daybook/pkg/types"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()
	store, err := sqlite.OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

// seedStore inserts one record of every entity type and returns their ids.
func seedStore(t *testing.T, store *sqlite.Store) (checklistID, eventID, pomodoroID types.ID) {
	t.Helper()
	ctx := context.Background()

	checklistID = types.NewID()
	require.NoError(t, store.InsertChecklist(ctx, &types.Checklist{
		ID:        checklistID,
		Title:     "Groceries",
		TaskType:  types.TaskTypeReusable,
		CreatedAt: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC).UnixMilli(),
		Tasks:     []types.Task{{Title: "milk"}, {Title: "eggs", IsCompleted: true}},
	}))

	eventID = types.NewID()
	require.NoError(t, store.InsertEvent(ctx, &types.Event{
		ID:         eventID,
		Title:      "Standup",
		Date:       time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC),
		Time:       "09:30",
		RepeatType: types.RepeatWeekly,
		Interval:   1,
		WeekDays:   []string{"Mon"},
		CreatedAt:  time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC),
	}))

	pomodoroID = types.NewID()
	require.NoError(t, store.InsertPomodoro(ctx, &types.Pomodoro{
		ID:        pomodoroID,
		Title:     "deep work",
		Time:      1500,
		CreatedAt: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
		EndAt:     time.Date(2025, 3, 10, 9, 25, 0, 0, time.UTC),
	}))

	name := "ada"
	uploads := true
	_, err := store.SaveUser(ctx, types.UserPatch{
		UserName:    &name,
		Preferences: &types.PreferencesPatch{JSONUploadEnabled: &uploads},
	})
	require.NoError(t, err)
	return
}

func TestExport(t *testing.T) {
	ctx := context.Background()

	t.Run("produces plain-data wire forms", func(t *testing.T) {
		store := newTestStore(t)
		checklistID, eventID, pomodoroID := seedStore(t, store)

		snap, err := Export(ctx, store)
		require.NoError(t, err)

		require.Len(t, snap.Checklists, 1)
		assert.Equal(t, checklistID.Hex(), snap.Checklists[0].ID)
		assert.Len(t, snap.Checklists[0].Tasks, 2)

		require.Len(t, snap.Events, 1)
		assert.Equal(t, eventID.Hex(), snap.Events[0].ID)
		assert.Equal(t, "2025-01-06T00:00:00Z", snap.Events[0].Date)

		require.Len(t, snap.Pomodoros, 1)
		assert.Equal(t, pomodoroID.Hex(), snap.Pomodoros[0].ID)
		assert.Equal(t, "2025-03-10T09:00:00Z", snap.Pomodoros[0].CreatedAt)

		require.NotNil(t, snap.User)
		assert.Equal(t, "ada", snap.User.UserName)
		require.NotNil(t, snap.User.Preferences)
		assert.True(t, snap.User.Preferences.JSONUploadEnabled)
	})

	t.Run("empty store yields empty lists, not nulls", func(t *testing.T) {
		store := newTestStore(t)
		snap, err := Export(ctx, store)
		require.NoError(t, err)
		assert.NotNil(t, snap.Checklists)
		assert.NotNil(t, snap.Events)
		assert.NotNil(t, snap.Pomodoros)
		assert.Nil(t, snap.User)
	})
}

func TestRestore(t *testing.T) {
	ctx := context.Background()

	t.Run("export then restore reproduces the store", func(t *testing.T) {
		source := newTestStore(t)
		checklistID, eventID, _ := seedStore(t, source)

		snap, err := Export(ctx, source)
		require.NoError(t, err)

		target := newTestStore(t)
		require.NoError(t, Restore(ctx, target, snap))

		checklists, err := target.ListChecklists(ctx)
		require.NoError(t, err)
		require.Len(t, checklists, 1)
		assert.Equal(t, checklistID, checklists[0].ID, "restore preserves ids")
		assert.Equal(t, []types.Task{{Title: "milk"}, {Title: "eggs", IsCompleted: true}},
			checklists[0].Tasks)

		event, err := target.GetEvent(ctx, eventID)
		require.NoError(t, err)
		assert.Equal(t, "Standup", event.Title)
		assert.Equal(t, time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC), event.Date)

		user, err := target.GetUser(ctx)
		require.NoError(t, err)
		assert.Equal(t, "ada", user.UserName)
		assert.True(t, user.Preferences.JSONUploadEnabled)
	})

	t.Run("nil snapshot leaves existing data untouched", func(t *testing.T) {
		store := newTestStore(t)
		seedStore(t, store)

		require.NoError(t, Restore(ctx, store, nil))

		checklists, err := store.ListChecklists(ctx)
		require.NoError(t, err)
		assert.Len(t, checklists, 1)
	})

	t.Run("restore replaces pre-existing contents", func(t *testing.T) {
		store := newTestStore(t)
		seedStore(t, store)

		require.NoError(t, Restore(ctx, store, &types.Snapshot{}))

		checklists, err := store.ListChecklists(ctx)
		require.NoError(t, err)
		assert.Empty(t, checklists)
		_, err = store.GetUser(ctx)
		assert.ErrorIs(t, err, types.ErrNotFound)
	})

	t.Run("malformed id aborts before any write", func(t *testing.T) {
		store := newTestStore(t)
		seedStore(t, store)

		bad := &types.Snapshot{Checklists: []types.SnapshotChecklist{{
			ID: "not-hex", Title: "x", TaskType: types.TaskTypeOneTime,
		}}}
		err := Restore(ctx, store, bad)
		assert.ErrorIs(t, err, types.ErrInvalidSnapshot)

		checklists, err := store.ListChecklists(ctx)
		require.NoError(t, err)
		assert.Len(t, checklists, 1, "store must be untouched after a failed restore")
	})

	t.Run("malformed date aborts the restore", func(t *testing.T) {
		store := newTestStore(t)
		bad := &types.Snapshot{Events: []types.SnapshotEvent{{
			ID:        types.NewID().Hex(),
			Title:     "x",
			Date:      "03/15/2025", // not RFC 3339
			Time:      "09:00",
			CreatedAt: "2025-01-01T00:00:00Z",
		}}}
		assert.ErrorIs(t, Restore(ctx, store, bad), types.ErrInvalidSnapshot)
	})

	t.Run("unknown task type aborts the restore", func(t *testing.T) {
		store := newTestStore(t)
		bad := &types.Snapshot{Checklists: []types.SnapshotChecklist{{
			ID:       types.NewID().Hex(),
			Title:    "x",
			TaskType: "Recurring",
		}}}
		assert.ErrorIs(t, Restore(ctx, store, bad), types.ErrInvalidSnapshot)
	})

	t.Run("unknown weekday aborts the restore", func(t *testing.T) {
		store := newTestStore(t)
		bad := &types.Snapshot{Events: []types.SnapshotEvent{{
			ID:         types.NewID().Hex(),
			Title:      "x",
			Date:       "2025-01-06T00:00:00Z",
			Time:       "09:00",
			RepeatType: types.RepeatWeekly,
			WeekDays:   []string{"Mon", "Funday"},
			CreatedAt:  "2025-01-01T00:00:00Z",
		}}}
		assert.ErrorIs(t, Restore(ctx, store, bad), types.ErrInvalidSnapshot)
	})

	t.Run("unknown repeat type aborts the restore", func(t *testing.T) {
		store := newTestStore(t)
		bad := &types.Snapshot{Events: []types.SnapshotEvent{{
			ID:         types.NewID().Hex(),
			Title:      "x",
			Date:       "2025-01-06T00:00:00Z",
			Time:       "09:00",
			RepeatType: "Fortnightly",
			CreatedAt:  "2025-01-01T00:00:00Z",
		}}}
		assert.ErrorIs(t, Restore(ctx, store, bad), types.ErrInvalidSnapshot)
	})
}

func TestFileRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	seedStore(t, store)

	snap, err := Export(ctx, store)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "snapshot.json")
	require.NoError(t, WriteFile(path, snap))

	back, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, snap, back)
}

func TestReadFile_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := ReadFile(path)
	assert.ErrorIs(t, err, types.ErrInvalidSnapshot)
}
