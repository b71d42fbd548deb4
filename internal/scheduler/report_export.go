// Package scheduler runs periodic jobs on cron schedules.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/mrlokans/bookdirectory/internal/logger"
)

var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// ValidateCronSchedule checks a standard 5-field cron expression.
func ValidateCronSchedule(schedule string) error {
	_, err := cronParser.Parse(schedule)
	return err
}

// NextRunTime returns the first activation of schedule after from.
func NextRunTime(schedule string, from time.Time) (time.Time, error) {
	sched, err := cronParser.Parse(schedule)
	if err != nil {
		return time.Time{}, err
	}
	return sched.Next(from), nil
}

// ExportFunc starts one report export. Trigger names the caller.
type ExportFunc func(ctx context.Context, trigger string) error

// ReportExportScheduler triggers report exports on a cron schedule
type ReportExportScheduler struct {
	schedule string
	export   ExportFunc
	log      *logger.Logger

	cron       *cron.Cron
	entryID    cron.EntryID
	mu         sync.RWMutex
	isRunning  bool
	cancelFunc context.CancelFunc
}

func NewReportExportScheduler(schedule string, export ExportFunc, log *logger.Logger) *ReportExportScheduler {
	return &ReportExportScheduler{
		schedule: schedule,
		export:   export,
		log:      log.With("component", "ReportExportScheduler"),
		cron:     cron.New(cron.WithParser(cronParser)),
	}
}

// Start registers the export job and starts the cron loop. The scheduler
// stops on its own when ctx is cancelled.
func (s *ReportExportScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	if err := ValidateCronSchedule(s.schedule); err != nil {
		return fmt.Errorf("invalid cron schedule '%s': %w", s.schedule, err)
	}

	var cancelCtx context.Context
	cancelCtx, s.cancelFunc = context.WithCancel(ctx)

	entryID, err := s.cron.AddFunc(s.schedule, func() {
		s.run(cancelCtx)
	})
	if err != nil {
		s.cancelFunc()
		return fmt.Errorf("failed to schedule export job: %w", err)
	}
	s.entryID = entryID

	s.cron.Start()
	s.isRunning = true

	nextRun, _ := NextRunTime(s.schedule, time.Now())
	s.log.Info("Report export scheduler started", "schedule", s.schedule, "next_run", nextRun)

	go func() {
		<-cancelCtx.Done()
		s.Stop()
	}()

	return nil
}

// Stop waits for a running export to finish and stops the scheduler.
func (s *ReportExportScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	ctx := s.cron.Stop()
	<-ctx.Done()

	s.cron.Remove(s.entryID)
	s.isRunning = false
	if s.cancelFunc != nil {
		s.cancelFunc()
		s.cancelFunc = nil
	}

	s.log.Info("Report export scheduler stopped")
}

// IsRunning returns whether the scheduler is active
func (s *ReportExportScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// NextRun returns when the next export will occur, nil when stopped.
func (s *ReportExportScheduler) NextRun() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning {
		return nil
	}

	entry := s.cron.Entry(s.entryID)
	if !entry.Valid() {
		return nil
	}
	next := entry.Next
	return &next
}

func (s *ReportExportScheduler) run(ctx context.Context) {
	startTime := time.Now()
	if err := s.export(ctx, "scheduler"); err != nil {
		s.log.Error("Scheduled report export failed", "error", err)
		return
	}
	s.log.Info("Scheduled report export triggered", "duration", time.Since(startTime).Round(time.Millisecond))
}
