// Package service exposes the entity operations the application calls:
// validated creates, patch-based updates, aggregate queries, and the account
// deletion sequence. Services return detached records; nothing they hand out
// aliases store state.
package service

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/daybook-app/daybook/internal/sqlite"
)

// Services bundles the per-entity services over one store handle.
type Services struct {
	Checklists *ChecklistService
	Events     *EventService
	Pomodoros  *PomodoroService
	Users      *UserService
}

// New constructs all entity services over the given store.
func New(store *sqlite.Store, log *zap.Logger) *Services {
	v := validator.New(validator.WithRequiredStructEnabled())
	return &Services{
		Checklists: &ChecklistService{store: store, log: log, validate: v},
		Events:     &EventService{store: store, log: log, validate: v},
		Pomodoros:  &PomodoroService{store: store, log: log, validate: v},
		Users:      &UserService{store: store, log: log},
	}
}

// validationError wraps validator failures with the entity name.
func validationError(entity string, err error) error {
	return fmt.Errorf("invalid %s payload: %w", entity, err)
}
