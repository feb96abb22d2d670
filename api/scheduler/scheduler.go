package scheduler

import (
	"context"
	"errors"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/biit/biit-api/databases"
	"github.com/biit/biit-api/models"
)

// DefaultSchedule runs the stats reconciliation once an hour
const DefaultSchedule = "@hourly"

const jobTimeout = 5 * time.Minute

// Scheduler handles periodic background jobs
type Scheduler struct {
	cron     *cron.Cron
	schedule string
	CDB      databases.CommunityDatabase
	SDB      databases.CommunityStatsDatabase
}

// NewScheduler creates a new scheduler instance. An empty schedule falls back
// to DefaultSchedule.
func NewScheduler(cDB databases.CommunityDatabase, sDB databases.CommunityStatsDatabase, schedule string) *Scheduler {
	if schedule == "" {
		schedule = DefaultSchedule
	}
	return &Scheduler{
		cron:     cron.New(cron.WithLocation(time.UTC)),
		schedule: schedule,
		CDB:      cDB,
		SDB:      sDB,
	}
}

// Start registers the jobs and begins running them
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, s.reconcileCommunityStats); err != nil {
		zap.S().Errorw("failed to register stats reconcile job", "schedule", s.schedule, "error", err)
		return err
	}

	s.cron.Start()
	zap.S().Infow("scheduler started", "schedule", s.schedule)
	return nil
}

// Stop gracefully stops the scheduler, waiting for a running job to finish
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	zap.S().Info("scheduler stopped")
}

func (s *Scheduler) reconcileCommunityStats() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	created, err := s.ReconcileCommunityStats(ctx)
	if err != nil {
		zap.S().Errorw("stats reconcile failed", "created", created, "error", err)
		return
	}
	zap.S().Infow("stats reconcile finished", "created", created)
}

// ReconcileCommunityStats adds zeroed stats for every community that has none.
// A community is created before its stats, so a failure between the two
// writes leaves a community without stats until this runs.
func (s *Scheduler) ReconcileCommunityStats(ctx context.Context) (int, error) {
	names, err := s.CDB.Names(ctx)
	if err != nil {
		return 0, err
	}

	created := 0
	for _, name := range names {
		stats, err := s.SDB.Get(ctx, name)
		if err != nil {
			return created, err
		}
		if stats != nil {
			continue
		}

		err = s.SDB.Add(ctx, models.NewCommunityStats(name))
		if errors.Is(err, databases.ErrAlreadyExists) {
			// created concurrently by the handler
			continue
		}
		if err != nil {
			return created, err
		}
		zap.S().Debugw("created missing community stats", "community", name)
		created++
	}
	return created, nil
}
