package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/daybook-app/daybook/internal/auth"
	"github.com/daybook-app/daybook/internal/backup"
	"github.com/daybook-app/daybook/internal/sqlite"
)

// Step statuses for the account deletion sequence.
const (
	StepOK      = "ok"
	StepFailed  = "failed"
	StepSkipped = "skipped"
)

// StepResult records the outcome of one account deletion step.
type StepResult struct {
	Name   string
	Status string
	Err    error
}

// AccountDeleter runs the multi-step account deletion. The steps span two
// systems with no distributed transaction: a failure partway means "local
// state may be wiped, remote state may be inconsistent", so each step's
// outcome is tracked and logged individually rather than collapsed into one
// error.
type AccountDeleter struct {
	store    *sqlite.Store
	gateway  *backup.Gateway
	provider auth.Provider
	log      *zap.Logger
}

// NewAccountDeleter wires the deleter to its collaborators.
func NewAccountDeleter(store *sqlite.Store, gateway *backup.Gateway, provider auth.Provider, log *zap.Logger) *AccountDeleter {
	return &AccountDeleter{store: store, gateway: gateway, provider: provider, log: log}
}

// Run executes the deletion steps in order: remote backup document, local
// store contents, auth account. It stops at the first failure and marks the
// remaining steps skipped; the returned log always has one entry per step.
func (d *AccountDeleter) Run(ctx context.Context) []StepResult {
	uid, uidErr := d.provider.CurrentUID(ctx)

	steps := []struct {
		name string
		run  func(context.Context) error
	}{
		{"delete remote backup", func(ctx context.Context) error {
			if uidErr != nil {
				return uidErr
			}
			return d.gateway.DeleteBackup(ctx, uid)
		}},
		{"wipe local store", d.store.DeleteAll},
		{"delete auth account", d.provider.DeleteAccount},
	}

	results := make([]StepResult, 0, len(steps))
	failed := false
	for _, step := range steps {
		if failed {
			results = append(results, StepResult{Name: step.name, Status: StepSkipped})
			continue
		}
		if err := step.run(ctx); err != nil {
			d.log.Error("account deletion step failed",
				zap.String("step", step.name), zap.Error(err))
			results = append(results, StepResult{Name: step.name, Status: StepFailed, Err: err})
			failed = true
			continue
		}
		d.log.Info("account deletion step done", zap.String("step", step.name))
		results = append(results, StepResult{Name: step.name, Status: StepOK})
	}
	return results
}
