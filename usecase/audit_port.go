package usecase

import "context"

// Admin actions recorded in the audit trail.
const (
	ActionDeleteUser  = "delete_user"
	ActionPromoteUser = "promote_user"
)

// ActionRecorder abstracts the audit store so use cases stay storage-agnostic.
type ActionRecorder interface {
	RecordAction(ctx context.Context, actorID, action, targetID string) error
}
