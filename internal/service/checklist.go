package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/daybook-app/daybook/internal/sqlite"
	"github.com/daybook-app/daybook/pkg/types"
)

// ChecklistService provides CRUD over checklist records.
type ChecklistService struct {
	store    *sqlite.Store
	log      *zap.Logger
	validate *validator.Validate
}

// ChecklistInput is the validated payload for creating a checklist.
type ChecklistInput struct {
	Title       string       `validate:"required"`
	Description string       ``
	TaskType    string       `validate:"required,oneof=OneTime Reusable"`
	Category    string       ``
	EndAt       int64        `validate:"min=0"`
	Tasks       []types.Task ``
}

// Create inserts a new checklist and returns its id. The insert is a single
// transaction: it either fully applies or not at all.
func (s *ChecklistService) Create(ctx context.Context, in ChecklistInput) (types.ID, error) {
	if err := s.validate.Struct(in); err != nil {
		return types.ID{}, validationError("checklist", err)
	}

	c := &types.Checklist{
		ID:          types.NewID(),
		Title:       in.Title,
		Description: in.Description,
		TaskType:    in.TaskType,
		Category:    in.Category,
		CreatedAt:   time.Now().UnixMilli(),
		EndAt:       in.EndAt,
		Tasks:       in.Tasks,
	}
	if err := s.store.InsertChecklist(ctx, c); err != nil {
		return types.ID{}, err
	}
	return c.ID, nil
}

// List returns all checklists, newest first.
func (s *ChecklistService) List(ctx context.Context) ([]types.Checklist, error) {
	return s.store.ListChecklists(ctx)
}

// GetByID retrieves one checklist. Returns types.ErrNotFound when absent.
func (s *ChecklistService) GetByID(ctx context.Context, id types.ID) (*types.Checklist, error) {
	return s.store.GetChecklist(ctx, id)
}

// Update merges the patch into the stored checklist inside one transaction.
// Returns types.ErrNotFound when the id does not exist, so a no-op can never
// be mistaken for success.
func (s *ChecklistService) Update(ctx context.Context, id types.ID, patch types.ChecklistPatch) (*types.Checklist, error) {
	return s.store.UpdateChecklist(ctx, id, patch)
}

// Delete removes a checklist together with its embedded tasks. Reports false
// when the id does not exist.
func (s *ChecklistService) Delete(ctx context.Context, id types.ID) (bool, error) {
	deleted, err := s.store.DeleteChecklist(ctx, id)
	if err != nil {
		s.log.Error("checklist delete failed", zap.String("id", id.Hex()), zap.Error(err))
		return false, err
	}
	return deleted, nil
}
