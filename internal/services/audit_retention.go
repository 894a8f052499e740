package services

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/taskdeck/backend/internal/infrastructure/audit"
)

// RetentionConfig controls how often and how far back the audit trail is pruned.
type RetentionConfig struct {
	Interval  time.Duration
	Retention time.Duration
}

// AuditRetention prunes audit entries past the retention window on a schedule.
type AuditRetention struct {
	store  *audit.Store
	logger *zap.Logger
	cron   *cron.Cron
	cfg    RetentionConfig
}

func NewAuditRetention(store *audit.Store, logger *zap.Logger, cfg RetentionConfig) *AuditRetention {
	if cfg.Interval <= 0 {
		cfg.Interval = 24 * time.Hour
	}
	if cfg.Retention <= 0 {
		cfg.Retention = 90 * 24 * time.Hour
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	ar := &AuditRetention{
		store:  store,
		logger: logger,
		cfg:    cfg,
		cron:   cron.New(cron.WithSeconds()),
	}

	schedule := fmt.Sprintf("@every %ds", int(cfg.Interval.Seconds()))
	_, _ = ar.cron.AddFunc(schedule, func() {
		if err := ar.Sweep(); err != nil {
			ar.logger.Error("audit sweep failed", zap.Error(err))
		}
	})

	return ar
}

// Start launches the cron scheduler.
func (ar *AuditRetention) Start() {
	if ar == nil || ar.cron == nil {
		return
	}
	ar.cron.Start()
	ar.logger.Info("audit retention sweeper started")
}

// Stop gracefully stops the scheduler.
func (ar *AuditRetention) Stop(ctx context.Context) {
	if ar == nil || ar.cron == nil {
		return
	}
	stopCtx := ar.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-ctx.Done():
	}
	ar.logger.Info("audit retention sweeper stopped")
}

// Sweep removes entries older than the retention window.
func (ar *AuditRetention) Sweep() error {
	if ar == nil || ar.store == nil {
		return nil
	}
	cutoff := time.Now().Add(-ar.cfg.Retention)
	if err := ar.store.Cleanup(cutoff); err != nil {
		return err
	}
	ar.logger.Debug("audit sweep completed", zap.Time("cutoff", cutoff))
	return nil
}
