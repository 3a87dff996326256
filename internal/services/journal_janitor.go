package services

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/bankgo/mspayment/internal/infrastructure/journal"
)

// JanitorConfig controls how frequently the journal is pruned and how long
// entries are retained.
type JanitorConfig struct {
	Interval  time.Duration
	Retention time.Duration
}

// JournalJanitor periodically removes journal entries past their retention.
type JournalJanitor struct {
	store  *journal.Store
	logger *zap.Logger
	cron   *cron.Cron
	cfg    JanitorConfig
}

func NewJournalJanitor(store *journal.Store, logger *zap.Logger, cfg JanitorConfig) *JournalJanitor {
	if cfg.Interval <= 0 {
		cfg.Interval = time.Hour
	}
	if cfg.Retention <= 0 {
		cfg.Retention = 24 * time.Hour
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	j := &JournalJanitor{
		store:  store,
		logger: logger,
		cfg:    cfg,
		cron:   cron.New(cron.WithSeconds()),
	}

	schedule := fmt.Sprintf("@every %ds", int(cfg.Interval.Seconds()))
	_, _ = j.cron.AddFunc(schedule, func() {
		if err := j.Prune(); err != nil {
			j.logger.Error("journal prune failed", zap.Error(err))
		}
	})

	return j
}

// Start launches the cron scheduler.
func (j *JournalJanitor) Start() {
	if j == nil || j.cron == nil {
		return
	}
	j.cron.Start()
	j.logger.Info("journal janitor started")
}

// Stop gracefully stops the scheduler.
func (j *JournalJanitor) Stop(ctx context.Context) {
	if j == nil || j.cron == nil {
		return
	}
	stopCtx := j.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-ctx.Done():
	}
	j.logger.Info("journal janitor stopped")
}

// Prune removes entries older than the retention window.
func (j *JournalJanitor) Prune() error {
	if j == nil || j.store == nil {
		return nil
	}
	cutoff := time.Now().Add(-j.cfg.Retention)
	if err := j.store.Cleanup(cutoff); err != nil {
		return err
	}
	if size, err := j.store.Size(); err == nil {
		j.logger.Debug("journal pruned", zap.Int("remaining", size))
	}
	return nil
}
