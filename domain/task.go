package domain

import "time"

// Task statuses. These are the only two values accepted by the API.
const (
	TaskStatusPending   = "pending"
	TaskStatusCompleted = "completed"
)

// Task represents a user-owned to-do item. OwnerID is set once at creation
// and never changes afterwards.
type Task struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (t *Task) IsCompleted() bool {
	return t != nil && t.Status == TaskStatusCompleted
}

// ValidTaskStatus reports whether s is one of the accepted task statuses.
func ValidTaskStatus(s string) bool {
	return s == TaskStatusPending || s == TaskStatusCompleted
}
