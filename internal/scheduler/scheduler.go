// Package scheduler runs periodic maintenance jobs.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"recipehub/internal/repository"
)

const purgeTimeout = time.Minute

// Scheduler purges activity log entries older than the retention period.
type Scheduler struct {
	cron      *cron.Cron
	repo      repository.ActivityLogRepository
	retention time.Duration
	now       func() time.Time
}

// New registers the purge job on schedule, a standard cron expression or
// descriptor such as "@daily".
func New(repo repository.ActivityLogRepository, schedule string, retention time.Duration) (*Scheduler, error) {
	s := &Scheduler{
		cron:      cron.New(),
		repo:      repo,
		retention: retention,
		now:       time.Now,
	}
	if _, err := s.cron.AddFunc(schedule, s.purge); err != nil {
		return nil, fmt.Errorf("schedule activity purge %q: %w", schedule, err)
	}
	return s, nil
}

// Start runs the jobs in the background.
func (s *Scheduler) Start() {
	log.Info().Dur("retention", s.retention).Msg("starting activity purge scheduler")
	s.cron.Start()
}

// Stop waits for a running purge to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	log.Info().Msg("activity purge scheduler stopped")
}

func (s *Scheduler) purge() {
	ctx, cancel := context.WithTimeout(context.Background(), purgeTimeout)
	defer cancel()

	cutoff := s.now().Add(-s.retention)
	deleted, err := s.repo.DeleteBefore(ctx, cutoff)
	if err != nil {
		log.Error().Err(err).Time("cutoff", cutoff).Msg("purge activity log")
		return
	}
	log.Info().Int64("deleted", deleted).Time("cutoff", cutoff).Msg("purged activity log")
}
