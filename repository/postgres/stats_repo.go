package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taskdeck/backend/domain"
	"github.com/taskdeck/backend/repository"
)

type statsRepository struct {
	pool querier
}

// NewStatsRepository creates a Postgres-backed StatsRepository implementation.
func NewStatsRepository(pool *pgxpool.Pool) repository.StatsRepository {
	return &statsRepository{pool: pool}
}

func (r *statsRepository) Collect(ctx context.Context) (*domain.Stats, error) {
	const countQuery = `
	SELECT COUNT(*),
		COUNT(*) FILTER (WHERE status = 'completed'),
		COUNT(*) FILTER (WHERE status = 'pending')
	FROM tasks
	`

	var stats domain.Stats
	if err := r.pool.QueryRow(ctx, countQuery).Scan(
		&stats.TotalTasks,
		&stats.CompletedTasks,
		&stats.PendingTasks,
	); err != nil {
		return nil, err
	}

	// Inner join keeps users without tasks out of the breakdown.
	const byUserQuery = `
	SELECT u.username, COUNT(t.id)
	FROM users u
	JOIN tasks t ON t.owner_id = u.id
	GROUP BY u.username
	ORDER BY u.username
	`

	rows, err := r.pool.Query(ctx, byUserQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row domain.UserTaskCount
		if err := rows.Scan(&row.Username, &row.TaskCount); err != nil {
			return nil, err
		}
		stats.TasksByUser = append(stats.TasksByUser, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &stats, nil
}
