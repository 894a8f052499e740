package repository

import (
	"context"

	"github.com/taskdeck/backend/domain"
)

type StatsRepository interface {
	Collect(ctx context.Context) (*domain.Stats, error)
}
