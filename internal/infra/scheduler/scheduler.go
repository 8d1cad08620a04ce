package scheduler

import (
	"context"
	"log/slog"
	"time"

	"neighbiz/internal/usecase/commands"

	"github.com/robfig/cron/v3"
)

const sweepTimeout = 2 * time.Minute

// Scheduler runs the expiry sweep on a cron spec with a seconds field.
type Scheduler struct {
	cron        *cron.Cron
	maintenance commands.MaintenanceCommands
	logger      *slog.Logger
}

func New(maintenance commands.MaintenanceCommands, loc *time.Location, logger *slog.Logger) *Scheduler {
	cronLogger := cron.PrintfLogger(slog.NewLogLogger(logger.Handler(), slog.LevelWarn))
	return &Scheduler{
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithLocation(loc),
			cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
		),
		maintenance: maintenance,
		logger:      logger,
	}
}

func (s *Scheduler) Start(spec string) error {
	if _, err := s.cron.AddFunc(spec, s.sweep); err != nil {
		return err
	}
	s.cron.Start()
	s.logger.Info("expiry sweep scheduled", "spec", spec)
	return nil
}

// Stop waits for a running sweep or until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Scheduler) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	started := time.Now()
	result, err := s.maintenance.SweepExpired(ctx)
	if err != nil {
		s.logger.Error("expiry sweep failed", "error", err)
		return
	}
	s.logger.Info("expiry sweep finished",
		"expired_coupons", result.ExpiredCoupons,
		"ended_partnerships", result.EndedPartnerships,
		"elapsed", time.Since(started))
}
