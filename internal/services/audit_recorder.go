package services

import (
	"context"

	"github.com/taskdeck/backend/domain"
	"github.com/taskdeck/backend/internal/infrastructure/audit"
	"github.com/taskdeck/backend/usecase"
)

// AuditRecorder bridges the admin use case to the bolt-backed audit store.
type AuditRecorder struct {
	store *audit.Store
}

func NewAuditRecorder(store *audit.Store) *AuditRecorder {
	return &AuditRecorder{store: store}
}

func (r *AuditRecorder) RecordAction(ctx context.Context, actorID, action, targetID string) error {
	if r.store == nil || action == "" {
		return domain.ErrInvalidPayload
	}
	return r.store.Append(audit.Entry{
		ActorID:  actorID,
		Action:   action,
		TargetID: targetID,
	})
}

var _ usecase.ActionRecorder = (*AuditRecorder)(nil)
