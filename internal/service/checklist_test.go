package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/daybook-app/daybook/internal/sqlite"
	"github.com/daybook-app/daybook/pkg/types"
)

// newTestServices opens an in-memory store and builds services over it.
func newTestServices(t *testing.T) *Services {
	t.Helper()
	store, err := sqlite.OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return New(store, zap.NewNop())
}

func TestChecklistCreate(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices(t)

	t.Run("valid input creates and assigns an id", func(t *testing.T) {
		id, err := svc.Checklists.Create(ctx, ChecklistInput{
			Title:    "Groceries",
			TaskType: types.TaskTypeReusable,
			Tasks:    []types.Task{{Title: "milk"}},
		})
		require.NoError(t, err)
		assert.False(t, id.IsZero())

		got, err := svc.Checklists.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Groceries", got.Title)
		assert.NotZero(t, got.CreatedAt)
	})

	t.Run("missing title is rejected", func(t *testing.T) {
		_, err := svc.Checklists.Create(ctx, ChecklistInput{TaskType: types.TaskTypeOneTime})
		assert.Error(t, err)
	})

	t.Run("unknown task type is rejected", func(t *testing.T) {
		_, err := svc.Checklists.Create(ctx, ChecklistInput{Title: "x", TaskType: "Sometimes"})
		assert.Error(t, err)
	})
}

func TestChecklistUpdate(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices(t)

	id, err := svc.Checklists.Create(ctx, ChecklistInput{
		Title: "Packing", TaskType: types.TaskTypeOneTime,
	})
	require.NoError(t, err)

	t.Run("patch merges into the stored record", func(t *testing.T) {
		completed := true
		got, err := svc.Checklists.Update(ctx, id, types.ChecklistPatch{IsCompleted: &completed})
		require.NoError(t, err)
		assert.True(t, got.IsCompleted)
		assert.Equal(t, "Packing", got.Title)
	})

	t.Run("unknown id is an explicit ErrNotFound, not a silent no-op", func(t *testing.T) {
		completed := true
		_, err := svc.Checklists.Update(ctx, types.NewID(), types.ChecklistPatch{IsCompleted: &completed})
		assert.ErrorIs(t, err, types.ErrNotFound)
	})
}

func TestUserService(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices(t)

	t.Run("get before save reports ErrNotFound", func(t *testing.T) {
		_, err := svc.Users.Get(ctx)
		assert.ErrorIs(t, err, types.ErrNotFound)
	})

	t.Run("save merges preferences per field", func(t *testing.T) {
		name := "ada"
		uploads := true
		_, err := svc.Users.Save(ctx, types.UserPatch{
			UserName:    &name,
			Preferences: &types.PreferencesPatch{JSONUploadEnabled: &uploads},
		})
		require.NoError(t, err)

		theme := "dark"
		saved, err := svc.Users.Save(ctx, types.UserPatch{
			Preferences: &types.PreferencesPatch{Theme: &theme},
		})
		require.NoError(t, err)
		assert.Equal(t, "ada", saved.UserName)
		assert.True(t, saved.Preferences.JSONUploadEnabled, "earlier preference survives")
		assert.Equal(t, "dark", saved.Preferences.Theme)
	})

	t.Run("delete then get", func(t *testing.T) {
		deleted, err := svc.Users.Delete(ctx)
		require.NoError(t, err)
		assert.True(t, deleted)

		_, err = svc.Users.Get(ctx)
		assert.ErrorIs(t, err, types.ErrNotFound)
	})
}
