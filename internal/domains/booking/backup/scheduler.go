package backup

import (
	"bloom/shared/timezone"
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

const runTimeout = 5 * time.Minute

// Scheduler runs the backup on a cron schedule in the app time zone.
type Scheduler struct {
	cron   *cron.Cron
	backup Backup
}

func NewScheduler(schedule string, backup Backup) (*Scheduler, error) {
	scheduler := &Scheduler{
		cron:   cron.New(cron.WithLocation(timezone.GetLocation())),
		backup: backup,
	}

	if _, err := scheduler.cron.AddFunc(schedule, scheduler.run); err != nil {
		return nil, fmt.Errorf("failed to parse backup schedule %q: %w", schedule, err)
	}

	return scheduler, nil
}

func (s *Scheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	if _, err := s.backup.Run(ctx); err != nil {
		log.Error().Err(err).Msg("Scheduled bookings backup failed")
	}
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts the schedule and waits for a running backup to finish or ctx to expire.
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
		log.Warn().Msg("Backup still running at shutdown")
	}
}
