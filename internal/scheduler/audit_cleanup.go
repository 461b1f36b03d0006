package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

// EventPruner deletes audit events older than the given retention.
type EventPruner interface {
	DeleteOldEvents(ctx context.Context, retention time.Duration) (int64, error)
}

// AuditCleanupConfig controls the retention job.
type AuditCleanupConfig struct {
	Enabled       bool
	Schedule      string // Cron format: "0 3 * * *" = daily at 03:00
	RetentionDays int
}

// AuditCleanupScheduler periodically prunes old audit events.
type AuditCleanupScheduler struct {
	pruner EventPruner
	config AuditCleanupConfig

	cron       *cron.Cron
	entryID    cron.EntryID
	mu         sync.RWMutex
	isRunning  bool
	cancelFunc context.CancelFunc
}

// NewAuditCleanupScheduler creates a new scheduler instance
func NewAuditCleanupScheduler(pruner EventPruner, config AuditCleanupConfig) *AuditCleanupScheduler {
	return &AuditCleanupScheduler{
		pruner: pruner,
		config: config,
		cron:   cron.New(cron.WithParser(newParser())),
	}
}

func newParser() cron.Parser {
	return cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
}

// ValidateSchedule reports whether schedule is a valid five-field cron expression.
func ValidateSchedule(schedule string) error {
	if _, err := newParser().Parse(schedule); err != nil {
		return fmt.Errorf("invalid cron schedule '%s': %w", schedule, err)
	}
	return nil
}

// Start begins the scheduler if cleanup is enabled
func (s *AuditCleanupScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	if !s.config.Enabled {
		log.Info("Audit cleanup scheduler: disabled")
		return nil
	}

	if s.config.RetentionDays <= 0 {
		log.Info("Audit cleanup scheduler: retention not configured, skipping")
		return nil
	}

	if err := ValidateSchedule(s.config.Schedule); err != nil {
		return err
	}

	entryID, err := s.cron.AddFunc(s.config.Schedule, func() {
		if _, err := s.RunNow(context.Background()); err != nil {
			log.WithError(err).Error("Audit cleanup failed")
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule cleanup job: %w", err)
	}
	s.entryID = entryID

	var cancelCtx context.Context
	cancelCtx, s.cancelFunc = context.WithCancel(ctx)

	s.cron.Start()
	s.isRunning = true

	log.WithFields(log.Fields{
		"schedule":       s.config.Schedule,
		"retention_days": s.config.RetentionDays,
		"next_run":       s.cron.Entry(entryID).Next,
	}).Info("Audit cleanup scheduler: started")

	go func() {
		<-cancelCtx.Done()
		s.Stop()
	}()

	return nil
}

// Stop gracefully stops the scheduler
func (s *AuditCleanupScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	// Stop accepting new jobs and wait for running jobs to complete
	ctx := s.cron.Stop()
	<-ctx.Done()

	s.cron.Remove(s.entryID)
	s.isRunning = false
	if s.cancelFunc != nil {
		s.cancelFunc()
		s.cancelFunc = nil
	}

	log.Info("Audit cleanup scheduler: stopped")
}

// RunNow prunes expired events immediately and returns how many were removed.
func (s *AuditCleanupScheduler) RunNow(ctx context.Context) (int64, error) {
	retention := time.Duration(s.config.RetentionDays) * 24 * time.Hour
	start := time.Now()

	deleted, err := s.pruner.DeleteOldEvents(ctx, retention)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old audit events: %w", err)
	}

	log.WithFields(log.Fields{
		"deleted":     deleted,
		"duration_ms": time.Since(start).Milliseconds(),
	}).Info("Audit cleanup: pruned old events")
	return deleted, nil
}

// IsRunning returns whether the scheduler is active
func (s *AuditCleanupScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// NextRunTime returns when the next cleanup will occur
func (s *AuditCleanupScheduler) NextRunTime() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning {
		return nil
	}

	t := s.cron.Entry(s.entryID).Next
	return &t
}
