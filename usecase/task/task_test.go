package task

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/backend/domain"
	"github.com/taskdeck/backend/repository"
)

type memTaskRepo struct {
	mu    sync.Mutex
	tasks map[string]*domain.Task
}

func newMemTaskRepo() *memTaskRepo {
	return &memTaskRepo{tasks: make(map[string]*domain.Task)}
}

func (r *memTaskRepo) Create(_ context.Context, task *domain.Task) (*domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if task.Title == "" || task.OwnerID == "" {
		return nil, domain.ErrInvalidPayload
	}
	if task.ID == "" {
		task.ID = uuid.NewString()
	}
	if task.Status == "" {
		task.Status = domain.TaskStatusPending
	}
	task.CreatedAt = time.Now()
	task.UpdatedAt = task.CreatedAt
	copied := *task
	r.tasks[task.ID] = &copied
	return task, nil
}

func (r *memTaskRepo) GetByID(_ context.Context, id, ownerID string) (*domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	task, ok := r.tasks[id]
	if !ok || task.OwnerID != ownerID {
		return nil, domain.ErrTaskNotFound
	}
	copied := *task
	return &copied, nil
}

func (r *memTaskRepo) List(_ context.Context, filter repository.TaskFilter) ([]domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Task
	for _, task := range r.tasks {
		if filter.OwnerID != "" && task.OwnerID != filter.OwnerID {
			continue
		}
		if filter.Status != "" && task.Status != filter.Status {
			continue
		}
		out = append(out, *task)
	}
	return out, nil
}

func (r *memTaskRepo) Update(_ context.Context, id, ownerID string, patch repository.TaskPatch) (*domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	task, ok := r.tasks[id]
	if !ok || task.OwnerID != ownerID {
		return nil, domain.ErrTaskNotFound
	}
	if patch.Title != nil {
		task.Title = *patch.Title
	}
	if patch.Description != nil {
		task.Description = *patch.Description
	}
	if patch.Status != nil {
		task.Status = *patch.Status
	}
	task.UpdatedAt = time.Now()
	copied := *task
	return &copied, nil
}

func (r *memTaskRepo) Delete(_ context.Context, id, ownerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	task, ok := r.tasks[id]
	if !ok || task.OwnerID != ownerID {
		return domain.ErrTaskNotFound
	}
	delete(r.tasks, id)
	return nil
}

func TestCreateDefaultsPending(t *testing.T) {
	uc := New(newMemTaskRepo(), nil)
	ctx := context.Background()

	task, err := uc.Create(ctx, "owner-1", "Buy milk", "two liters")
	require.NoError(t, err)
	assert.Equal(t, domain.TaskStatusPending, task.Status)
	assert.Equal(t, "owner-1", task.OwnerID)

	_, err = uc.Create(ctx, "owner-1", "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidPayload)
}

func TestOwnershipOpacity(t *testing.T) {
	uc := New(newMemTaskRepo(), nil)
	ctx := context.Background()

	task, err := uc.Create(ctx, "owner-a", "Buy milk", "")
	require.NoError(t, err)

	// Another user's probe looks exactly like a miss.
	_, err = uc.Get(ctx, "owner-b", task.ID)
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)

	_, err = uc.Get(ctx, "owner-a", "no-such-id")
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)

	err = uc.Delete(ctx, "owner-b", task.ID)
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)

	// The real owner still sees it.
	got, err := uc.Get(ctx, "owner-a", task.ID)
	require.NoError(t, err)
	assert.Equal(t, task.ID, got.ID)
}

func TestPartialUpdate(t *testing.T) {
	uc := New(newMemTaskRepo(), nil)
	ctx := context.Background()

	task, err := uc.Create(ctx, "owner-1", "Buy milk", "two liters")
	require.NoError(t, err)

	title := "Buy oat milk"
	updated, err := uc.Update(ctx, "owner-1", task.ID, repository.TaskPatch{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Buy oat milk", updated.Title)
	assert.Equal(t, "two liters", updated.Description)
	assert.Equal(t, domain.TaskStatusPending, updated.Status)

	bad := "archived"
	_, err = uc.Update(ctx, "owner-1", task.ID, repository.TaskPatch{Status: &bad})
	assert.ErrorIs(t, err, domain.ErrInvalidPayload)

	empty := ""
	_, err = uc.Update(ctx, "owner-1", task.ID, repository.TaskPatch{Title: &empty})
	assert.ErrorIs(t, err, domain.ErrInvalidPayload)
}

func TestCompleteIdempotent(t *testing.T) {
	uc := New(newMemTaskRepo(), nil)
	ctx := context.Background()

	task, err := uc.Create(ctx, "owner-1", "Walk dog", "")
	require.NoError(t, err)

	first, err := uc.Complete(ctx, "owner-1", task.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskStatusCompleted, first.Status)

	second, err := uc.Complete(ctx, "owner-1", task.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskStatusCompleted, second.Status)
}

func TestListStatusFilter(t *testing.T) {
	uc := New(newMemTaskRepo(), nil)
	ctx := context.Background()

	t1, err := uc.Create(ctx, "alice", "Buy milk", "")
	require.NoError(t, err)
	_, err = uc.Create(ctx, "alice", "Walk dog", "")
	require.NoError(t, err)
	_, err = uc.Create(ctx, "bob", "Other user's task", "")
	require.NoError(t, err)

	_, err = uc.Complete(ctx, "alice", t1.ID)
	require.NoError(t, err)

	all, err := uc.List(ctx, "alice", repository.TaskFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	completed, err := uc.List(ctx, "alice", repository.TaskFilter{Status: domain.TaskStatusCompleted})
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, t1.ID, completed[0].ID)

	pending, err := uc.List(ctx, "alice", repository.TaskFilter{Status: domain.TaskStatusPending})
	require.NoError(t, err)
	assert.Len(t, pending, 1)

	_, err = uc.List(ctx, "alice", repository.TaskFilter{Status: "archived"})
	assert.ErrorIs(t, err, domain.ErrInvalidPayload)
}
