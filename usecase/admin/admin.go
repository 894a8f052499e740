package admin

import (
	"context"

	"go.uber.org/zap"

	"github.com/taskdeck/backend/domain"
	"github.com/taskdeck/backend/repository"
	"github.com/taskdeck/backend/usecase"
)

// UseCase covers the privileged surface: unfiltered listings, user
// management and aggregate statistics. Callers are expected to have been
// admin-checked by the authorization gate already.
type UseCase struct {
	users  repository.UserRepository
	tasks  repository.TaskRepository
	stats  repository.StatsRepository
	audit  usecase.ActionRecorder
	logger *zap.Logger
}

func New(users repository.UserRepository, tasks repository.TaskRepository, stats repository.StatsRepository, audit usecase.ActionRecorder, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		users:  users,
		tasks:  tasks,
		stats:  stats,
		audit:  audit,
		logger: logger,
	}
}

func (uc *UseCase) ListUsers(ctx context.Context) ([]domain.User, error) {
	return uc.users.List(ctx)
}

// ListTasks returns tasks across all owners, read-only.
func (uc *UseCase) ListTasks(ctx context.Context, filter repository.TaskFilter) ([]domain.Task, error) {
	filter.OwnerID = ""
	return uc.tasks.List(ctx, filter)
}

func (uc *UseCase) DeleteUser(ctx context.Context, actorID, userID string) error {
	if err := uc.users.Delete(ctx, userID); err != nil {
		return err
	}
	uc.record(ctx, actorID, usecase.ActionDeleteUser, userID)
	return nil
}

func (uc *UseCase) PromoteUser(ctx context.Context, actorID, userID string) error {
	if err := uc.users.SetAdmin(ctx, userID, true); err != nil {
		return err
	}
	uc.record(ctx, actorID, usecase.ActionPromoteUser, userID)
	return nil
}

func (uc *UseCase) Stats(ctx context.Context) (*domain.Stats, error) {
	return uc.stats.Collect(ctx)
}

// record is best-effort: a failed audit write never fails the admin
// operation that already committed.
func (uc *UseCase) record(ctx context.Context, actorID, action, targetID string) {
	if uc.audit == nil {
		return
	}
	if err := uc.audit.RecordAction(ctx, actorID, action, targetID); err != nil {
		uc.logger.Warn("audit record failed",
			zap.String("action", action),
			zap.String("target_id", targetID),
			zap.Error(err))
	}
}
