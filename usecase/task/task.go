package task

import (
	"context"

	"go.uber.org/zap"

	"github.com/taskdeck/backend/domain"
	"github.com/taskdeck/backend/repository"
)

// UseCase owns the per-user task operations. Every method takes the owner
// explicitly; there is no path to another user's tasks from here.
type UseCase struct {
	tasks  repository.TaskRepository
	logger *zap.Logger
}

func New(tasks repository.TaskRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		tasks:  tasks,
		logger: logger,
	}
}

func (uc *UseCase) Create(ctx context.Context, ownerID, title, description string) (*domain.Task, error) {
	if title == "" {
		return nil, domain.ErrInvalidPayload
	}
	task := &domain.Task{
		OwnerID:     ownerID,
		Title:       title,
		Description: description,
		Status:      domain.TaskStatusPending,
	}
	return uc.tasks.Create(ctx, task)
}

func (uc *UseCase) List(ctx context.Context, ownerID string, filter repository.TaskFilter) ([]domain.Task, error) {
	if filter.Status != "" && !domain.ValidTaskStatus(filter.Status) {
		return nil, domain.ErrInvalidPayload
	}
	filter.OwnerID = ownerID
	return uc.tasks.List(ctx, filter)
}

func (uc *UseCase) Get(ctx context.Context, ownerID, id string) (*domain.Task, error) {
	return uc.tasks.GetByID(ctx, id, ownerID)
}

func (uc *UseCase) Update(ctx context.Context, ownerID, id string, patch repository.TaskPatch) (*domain.Task, error) {
	if patch.Status != nil && !domain.ValidTaskStatus(*patch.Status) {
		return nil, domain.ErrInvalidPayload
	}
	if patch.Title != nil && *patch.Title == "" {
		return nil, domain.ErrInvalidPayload
	}
	return uc.tasks.Update(ctx, id, ownerID, patch)
}

// Complete marks the task completed. Completing an already completed task
// succeeds and leaves it completed.
func (uc *UseCase) Complete(ctx context.Context, ownerID, id string) (*domain.Task, error) {
	status := domain.TaskStatusCompleted
	return uc.tasks.Update(ctx, id, ownerID, repository.TaskPatch{Status: &status})
}

func (uc *UseCase) Delete(ctx context.Context, ownerID, id string) error {
	return uc.tasks.Delete(ctx, id, ownerID)
}
