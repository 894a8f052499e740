package domain

// Stats aggregates task counts across the whole system. Only users owning
// at least one task appear in TasksByUser.
type Stats struct {
	TotalTasks     int             `json:"total_tasks"`
	CompletedTasks int             `json:"completed_tasks"`
	PendingTasks   int             `json:"pending_tasks"`
	TasksByUser    []UserTaskCount `json:"tasks_by_user"`
}

// UserTaskCount is one per-username row of the stats breakdown.
type UserTaskCount struct {
	Username  string `json:"username"`
	TaskCount int    `json:"task_count"`
}
