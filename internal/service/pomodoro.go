package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/daybook-app/daybook/internal/sqlite"
	"github.com/daybook-app/daybook/pkg/types"
)

// Statistics grouping modes.
const (
	GroupByWeek    = "week"
	GroupByMonth   = "month"
	GroupByAllTime = "allTime"
)

// ErrSessionEndsBeforeStart rejects a session whose end precedes its start.
var ErrSessionEndsBeforeStart = errors.New("session end precedes its start")

// ErrUnknownGroupBy rejects an unrecognized statistics grouping.
var ErrUnknownGroupBy = errors.New("unknown groupBy")

// PomodoroService logs and aggregates focus sessions. Sessions are immutable
// historical facts: create and delete only, no edits.
type PomodoroService struct {
	store    *sqlite.Store
	log      *zap.Logger
	validate *validator.Validate
}

// PomodoroInput is the validated payload for logging a session.
type PomodoroInput struct {
	Title     string    `validate:"required"`
	TaskType  string    ``
	Time      int       `validate:"gt=0"` // planned duration, seconds
	Category  string    ``
	CreatedAt time.Time ``
	EndAt     time.Time ``
}

// Create logs a finished session and returns its id. A zero CreatedAt means
// now; a zero EndAt means CreatedAt plus the planned duration. An end before
// the start is rejected.
func (s *PomodoroService) Create(ctx context.Context, in PomodoroInput) (types.ID, error) {
	if err := s.validate.Struct(in); err != nil {
		return types.ID{}, validationError("pomodoro", err)
	}

	createdAt := in.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	endAt := in.EndAt
	if endAt.IsZero() {
		endAt = createdAt.Add(time.Duration(in.Time) * time.Second)
	}
	if endAt.Before(createdAt) {
		return types.ID{}, ErrSessionEndsBeforeStart
	}

	p := &types.Pomodoro{
		ID:        types.NewID(),
		Title:     in.Title,
		TaskType:  in.TaskType,
		Time:      in.Time,
		Category:  in.Category,
		CreatedAt: createdAt,
		EndAt:     endAt,
	}
	if err := s.store.InsertPomodoro(ctx, p); err != nil {
		return types.ID{}, err
	}
	return p.ID, nil
}

// List returns all logged sessions, newest first.
func (s *PomodoroService) List(ctx context.Context) ([]types.Pomodoro, error) {
	return s.store.ListPomodoros(ctx)
}

// GetByID retrieves one session. Returns types.ErrNotFound when absent.
func (s *PomodoroService) GetByID(ctx context.Context, id types.ID) (*types.Pomodoro, error) {
	return s.store.GetPomodoro(ctx, id)
}

// Count returns the all-time session count and summed planned duration.
func (s *PomodoroService) Count(ctx context.Context) (types.PomodoroCount, error) {
	return s.store.CountPomodoros(ctx)
}

// Stats groups all sessions by ISO week or calendar month of their creation
// time, summing count and planned duration per bucket. GroupByAllTime returns
// a single bucket over every session. Buckets come back sorted by key.
func (s *PomodoroService) Stats(ctx context.Context, groupBy string) ([]types.PomodoroBucket, error) {
	sessions, err := s.store.ListPomodoros(ctx)
	if err != nil {
		return nil, err
	}

	if groupBy == GroupByAllTime {
		bucket := types.PomodoroBucket{Bucket: GroupByAllTime}
		for _, p := range sessions {
			bucket.Count++
			bucket.TotalTime += int64(p.Time)
		}
		return []types.PomodoroBucket{bucket}, nil
	}

	var keyOf func(t time.Time) string
	switch groupBy {
	case GroupByWeek:
		keyOf = func(t time.Time) string {
			// ISO-8601: Thursday-anchored weeks, week 1 holds the
			// year's first Thursday.
			year, week := t.ISOWeek()
			return fmt.Sprintf("%04d-W%02d", year, week)
		}
	case GroupByMonth:
		keyOf = func(t time.Time) string { return t.Format("2006-01") }
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownGroupBy, groupBy)
	}

	byKey := make(map[string]*types.PomodoroBucket)
	for _, p := range sessions {
		key := keyOf(p.CreatedAt.UTC())
		b, ok := byKey[key]
		if !ok {
			b = &types.PomodoroBucket{Bucket: key}
			byKey[key] = b
		}
		b.Count++
		b.TotalTime += int64(p.Time)
	}

	buckets := make([]types.PomodoroBucket, 0, len(byKey))
	for _, b := range byKey {
		buckets = append(buckets, *b)
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Bucket < buckets[j].Bucket })
	return buckets, nil
}

// Delete removes a session. Reports false when the id does not exist.
func (s *PomodoroService) Delete(ctx context.Context, id types.ID) (bool, error) {
	deleted, err := s.store.DeletePomodoro(ctx, id)
	if err != nil {
		s.log.Error("pomodoro delete failed", zap.String("id", id.Hex()), zap.Error(err))
		return false, err
	}
	return deleted, nil
}
