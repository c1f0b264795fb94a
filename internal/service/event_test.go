package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daybook-app/daybook/pkg/types"
)

// captureScheduler records notification calls for assertions.
type captureScheduler struct {
	scheduled []types.ID
	cancelled []types.ID
}

func (c *captureScheduler) Schedule(ctx context.Context, event types.Event) error {
	c.scheduled = append(c.scheduled, event.ID)
	return nil
}

func (c *captureScheduler) Cancel(ctx context.Context, eventID types.ID) error {
	c.cancelled = append(c.cancelled, eventID)
	return nil
}

func TestEventCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("valid input creates and schedules a notification", func(t *testing.T) {
		svc := newTestServices(t)
		rec := &captureScheduler{}
		events := svc.Events.WithNotifier(rec)

		id, err := events.Create(ctx, EventInput{
			Title:      "Standup",
			Date:       time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC),
			Time:       "09:30",
			RepeatType: types.RepeatWeekly,
			WeekDays:   []string{"Mon"},
		})
		require.NoError(t, err)
		assert.Equal(t, []types.ID{id}, rec.scheduled)
	})

	t.Run("malformed time of day is rejected", func(t *testing.T) {
		svc := newTestServices(t)
		_, err := svc.Events.Create(ctx, EventInput{
			Title: "x", Date: time.Now(), Time: "9am",
		})
		assert.Error(t, err)
	})

	t.Run("unknown weekday name is rejected", func(t *testing.T) {
		svc := newTestServices(t)
		_, err := svc.Events.Create(ctx, EventInput{
			Title: "x", Date: time.Now(), Time: "09:00",
			RepeatType: types.RepeatWeekly, WeekDays: []string{"Monday"},
		})
		assert.Error(t, err)
	})
}

func TestEventOn(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices(t)

	mustCreate := func(in EventInput) types.ID {
		t.Helper()
		id, err := svc.Events.Create(ctx, in)
		require.NoError(t, err)
		return id
	}

	// 2025-01-06 is a Monday.
	monday := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)

	lateID := mustCreate(EventInput{
		Title: "Retro", Date: monday, Time: "16:00",
		RepeatType: types.RepeatWeekly, WeekDays: []string{"Mon"},
	})
	earlyID := mustCreate(EventInput{
		Title: "Standup", Date: monday, Time: "09:30",
		RepeatType: types.RepeatWeekly, WeekDays: []string{"Mon"},
	})
	mustCreate(EventInput{
		Title: "Dentist", Date: monday.AddDate(0, 0, 1), Time: "11:00", IsOneTime: true,
	})

	t.Run("returns matches sorted by time of day", func(t *testing.T) {
		got, err := svc.Events.On(ctx, monday.AddDate(0, 0, 7))
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, earlyID, got[0].ID)
		assert.Equal(t, lateID, got[1].ID)
	})

	t.Run("a day with no occurrences is empty", func(t *testing.T) {
		got, err := svc.Events.On(ctx, monday.AddDate(0, 0, 2))
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestEventUpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	svc := newTestServices(t)
	rec := &captureScheduler{}
	events := svc.Events.WithNotifier(rec)

	id, err := events.Create(ctx, EventInput{
		Title: "Standup", Date: time.Now().UTC(), Time: "09:30",
	})
	require.NoError(t, err)

	t.Run("update merges and reschedules", func(t *testing.T) {
		newTime := "10:00"
		got, err := events.Update(ctx, id, types.EventPatch{Time: &newTime})
		require.NoError(t, err)
		assert.Equal(t, "10:00", got.Time)
		assert.Equal(t, "Standup", got.Title)
		assert.Len(t, rec.scheduled, 2, "create then update both schedule")
	})

	t.Run("update of unknown id reports ErrNotFound", func(t *testing.T) {
		title := "nope"
		_, err := events.Update(ctx, types.NewID(), types.EventPatch{Title: &title})
		assert.ErrorIs(t, err, types.ErrNotFound)
	})

	t.Run("delete cancels the notification by event id", func(t *testing.T) {
		deleted, err := events.Delete(ctx, id)
		require.NoError(t, err)
		assert.True(t, deleted)
		assert.Equal(t, []types.ID{id}, rec.cancelled)
	})

	t.Run("deleting an unknown id reports false and cancels nothing", func(t *testing.T) {
		deleted, err := events.Delete(ctx, types.NewID())
		require.NoError(t, err)
		assert.False(t, deleted)
		assert.Len(t, rec.cancelled, 1)
	})
}
