package repository

import (
	"context"

	"github.com/taskdeck/backend/domain"
)

// TaskFilter narrows List results. An empty OwnerID means no ownership
// filter and is reserved for admin call sites.
type TaskFilter struct {
	OwnerID string
	Status  string
	Limit   int
	Offset  int
}

// TaskPatch describes a partial update. Nil fields are left unchanged.
type TaskPatch struct {
	Title       *string
	Description *string
	Status      *string
}

type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	GetByID(ctx context.Context, id, ownerID string) (*domain.Task, error)
	List(ctx context.Context, filter TaskFilter) ([]domain.Task, error)
	Update(ctx context.Context, id, ownerID string, patch TaskPatch) (*domain.Task, error)
	Delete(ctx context.Context, id, ownerID string) error
}
