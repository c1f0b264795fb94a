// Package notify declares the contract with the external notification
// scheduler. The persistence core passes an event's repeat fields through
// unchanged and cancels by event id on delete; delivery mechanics live
// entirely in the collaborator.
package notify

import (
	"context"

	"go.uber.org/zap"

	"github.com/daybook-app/daybook/pkg/types"
)

// Scheduler schedules and cancels local notifications for events.
type Scheduler interface {
	Schedule(ctx context.Context, event types.Event) error
	Cancel(ctx context.Context, eventID types.ID) error
}

// LogScheduler is a Scheduler that only records intent. It stands in for the
// platform scheduler in the CLI and in tests.
type LogScheduler struct {
	log *zap.Logger
}

// NewLogScheduler creates a logging no-op scheduler.
func NewLogScheduler(log *zap.Logger) *LogScheduler {
	return &LogScheduler{log: log}
}

// Schedule logs the scheduling request.
func (l *LogScheduler) Schedule(ctx context.Context, event types.Event) error {
	l.log.Debug("schedule notification",
		zap.String("event", event.ID.Hex()),
		zap.String("repeat", event.RepeatType),
		zap.String("time", event.Time),
	)
	return nil
}

// Cancel logs the cancellation request.
func (l *LogScheduler) Cancel(ctx context.Context, eventID types.ID) error {
	l.log.Debug("cancel notification", zap.String("event", eventID.Hex()))
	return nil
}
