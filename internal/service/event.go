package service

import (
	"context"
	"sort"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/daybook-app/daybook/internal/notify"
	"github.com/daybook-app/daybook/internal/recurrence"
	"github.com/daybook-app/daybook/internal/sqlite"
	"github.com/daybook-app/daybook/pkg/types"
)

// EventService provides CRUD and calendar queries over event records. When a
// notification scheduler is attached, creates schedule and deletes cancel,
// with the repeat fields passed through unchanged.
type EventService struct {
	store    *sqlite.Store
	log      *zap.Logger
	validate *validator.Validate
	notifier notify.Scheduler
}

// WithNotifier attaches the external notification scheduler.
func (s *EventService) WithNotifier(n notify.Scheduler) *EventService {
	s.notifier = n
	return s
}

// EventInput is the validated payload for creating an event.
type EventInput struct {
	Title          string    `validate:"required"`
	Description    string    ``
	Date           time.Time `validate:"required"`
	Time           string    `validate:"required,datetime=15:04"`
	RepeatType     string    `validate:"omitempty,oneof=Daily Weekly Monthly Yearly"`
	CustomInterval bool      ``
	Interval       int       `validate:"min=0"`
	Category       string    ``
	IsOneTime      bool      ``
	WeekDays       []string  `validate:"dive,oneof=Mon Tue Wed Thu Fri Sat Sun"`
}

// Create inserts a new event, returns its id, and schedules its notification
// when a scheduler is attached. Scheduling failure is logged, not fatal: the
// record is already durable.
func (s *EventService) Create(ctx context.Context, in EventInput) (types.ID, error) {
	if err := s.validate.Struct(in); err != nil {
		return types.ID{}, validationError("event", err)
	}

	e := &types.Event{
		ID:             types.NewID(),
		Title:          in.Title,
		Description:    in.Description,
		Date:           in.Date,
		Time:           in.Time,
		RepeatType:     in.RepeatType,
		CustomInterval: in.CustomInterval,
		Interval:       in.Interval,
		Category:       in.Category,
		IsOneTime:      in.IsOneTime,
		WeekDays:       in.WeekDays,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.store.InsertEvent(ctx, e); err != nil {
		return types.ID{}, err
	}

	if s.notifier != nil {
		if err := s.notifier.Schedule(ctx, *e); err != nil {
			s.log.Warn("scheduling notification failed",
				zap.String("event", e.ID.Hex()), zap.Error(err))
		}
	}
	return e.ID, nil
}

// List returns all events, newest first.
func (s *EventService) List(ctx context.Context) ([]types.Event, error) {
	return s.store.ListEvents(ctx)
}

// GetByID retrieves one event. Returns types.ErrNotFound when absent.
func (s *EventService) GetByID(ctx context.Context, id types.ID) (*types.Event, error) {
	return s.store.GetEvent(ctx, id)
}

// Count returns the number of stored events.
func (s *EventService) Count(ctx context.Context) (int, error) {
	return s.store.CountEvents(ctx)
}

// On returns the events occurring on the given calendar date, sorted
// ascending by time of day.
func (s *EventService) On(ctx context.Context, date time.Time) ([]types.Event, error) {
	events, err := s.store.ListEvents(ctx)
	if err != nil {
		return nil, err
	}
	var matched []types.Event
	for _, e := range events {
		if recurrence.Matches(e, date) {
			matched = append(matched, e)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		// "HH:MM" compares correctly as a string.
		return matched[i].Time < matched[j].Time
	})
	return matched, nil
}

// Update merges the patch into the stored event inside one transaction.
// Returns types.ErrNotFound when the id does not exist.
func (s *EventService) Update(ctx context.Context, id types.ID, patch types.EventPatch) (*types.Event, error) {
	updated, err := s.store.UpdateEvent(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if s.notifier != nil {
		// Re-apply with the merged repeat fields.
		if err := s.notifier.Schedule(ctx, *updated); err != nil {
			s.log.Warn("rescheduling notification failed",
				zap.String("event", id.Hex()), zap.Error(err))
		}
	}
	return updated, nil
}

// Delete removes an event and cancels its notification by event id. Reports
// false when the id does not exist.
func (s *EventService) Delete(ctx context.Context, id types.ID) (bool, error) {
	deleted, err := s.store.DeleteEvent(ctx, id)
	if err != nil {
		s.log.Error("event delete failed", zap.String("id", id.Hex()), zap.Error(err))
		return false, err
	}
	if deleted && s.notifier != nil {
		if err := s.notifier.Cancel(ctx, id); err != nil {
			s.log.Warn("cancelling notification failed",
				zap.String("event", id.Hex()), zap.Error(err))
		}
	}
	return deleted, nil
}
