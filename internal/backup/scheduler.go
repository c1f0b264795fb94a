package backup

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/daybook-app/daybook/internal/auth"
	"github.com/daybook-app/daybook/internal/notify"
	"github.com/daybook-app/daybook/internal/snapshot"
	"github.com/daybook-app/daybook/internal/sqlite"
	"github.com/daybook-app/daybook/pkg/types"
)

// dayFormat keys the once-per-day check on the calendar date.
const dayFormat = "2006-01-02"

// DailyRunner performs the work tied to the first open of a new calendar
// day: re-apply notification schedules for every event, bump the user's
// lastOpened stamp, then upload a backup. Backup is a side effect of the
// first-open check, not a standalone schedule.
type DailyRunner struct {
	store    *sqlite.Store
	gateway  *Gateway
	notifier notify.Scheduler
	provider auth.Provider
	log      *zap.Logger
	now      func() time.Time
}

// NewDailyRunner wires the runner to its collaborators.
func NewDailyRunner(store *sqlite.Store, gateway *Gateway, notifier notify.Scheduler, provider auth.Provider, log *zap.Logger) *DailyRunner {
	return &DailyRunner{
		store:    store,
		gateway:  gateway,
		notifier: notifier,
		provider: provider,
		log:      log,
		now:      time.Now,
	}
}

// RunFirstOpen runs the daily tasks if today differs from the recorded
// last-opened day. It reports whether the tasks ran. Notification re-apply
// failures are logged and skipped per event; a backup transport failure
// propagates so the caller can surface it, and is not retried.
func (r *DailyRunner) RunFirstOpen(ctx context.Context) (bool, error) {
	today := r.now().UTC().Format(dayFormat)
	last, err := r.store.GetFlag(ctx, sqlite.FlagLastOpenedDay)
	if err != nil {
		return false, err
	}
	if last == today {
		return false, nil
	}

	// Recurrence schedules must be re-applied before backup runs.
	events, err := r.store.ListEvents(ctx)
	if err != nil {
		return false, err
	}
	for _, e := range events {
		if err := r.notifier.Schedule(ctx, e); err != nil {
			r.log.Warn("re-applying notification failed",
				zap.String("event", e.ID.Hex()), zap.Error(err))
		}
	}

	// lastOpened belongs to the user record, and that record is created at
	// sign-in. A fresh install has no user yet and must stay that way so
	// exports keep reporting a null user.
	if _, err := r.store.GetUser(ctx); err == nil {
		openedAt := r.now().UTC()
		if _, err := r.store.SaveUser(ctx, types.UserPatch{LastOpened: &openedAt}); err != nil {
			return false, err
		}
	} else if !errors.Is(err, types.ErrNotFound) {
		return false, err
	}
	if err := r.store.SetFlag(ctx, sqlite.FlagLastOpenedDay, today); err != nil {
		return false, err
	}

	if err := r.backup(ctx); err != nil {
		return true, err
	}
	return true, nil
}

// backup exports a snapshot and uploads it for the signed-in user, when
// upload is enabled in preferences. Signed-out sessions skip silently.
func (r *DailyRunner) backup(ctx context.Context) error {
	uid, err := r.provider.CurrentUID(ctx)
	if errors.Is(err, auth.ErrSignedOut) {
		if err := r.store.SetFlag(ctx, sqlite.FlagIsLoggedIn, "false"); err != nil {
			r.log.Warn("recording sign-in state failed", zap.Error(err))
		}
		return nil
	}
	if err != nil {
		return err
	}
	if err := r.store.SetFlag(ctx, sqlite.FlagIsLoggedIn, "true"); err != nil {
		r.log.Warn("recording sign-in state failed", zap.Error(err))
	}

	user, err := r.store.GetUser(ctx)
	if errors.Is(err, types.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if !user.Preferences.JSONUploadEnabled {
		r.log.Debug("backup skipped: upload disabled in preferences")
		return nil
	}

	snap, err := snapshot.Export(ctx, r.store)
	if err != nil {
		return err
	}
	_, err = r.gateway.Upload(ctx, uid, snap)
	return err
}
