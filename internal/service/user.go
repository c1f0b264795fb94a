package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/daybook-app/daybook/internal/sqlite"
	"github.com/daybook-app/daybook/pkg/types"
)

// UserService manages the singleton user record.
type UserService struct {
	store *sqlite.Store
	log   *zap.Logger
}

// Get retrieves the user record. Returns types.ErrNotFound before first
// sign-in.
func (s *UserService) Get(ctx context.Context) (*types.User, error) {
	return s.store.GetUser(ctx)
}

// Save upserts the user record, merging preferences field by field with the
// stored values: a patch that sets only one preference leaves the others as
// they were.
func (s *UserService) Save(ctx context.Context, patch types.UserPatch) (*types.User, error) {
	return s.store.SaveUser(ctx, patch)
}

// Delete removes the user record. Reports false when none existed.
func (s *UserService) Delete(ctx context.Context) (bool, error) {
	deleted, err := s.store.DeleteUser(ctx)
	if err != nil {
		s.log.Error("user delete failed", zap.Error(err))
		return false, err
	}
	return deleted, nil
}
