// Package scheduler runs the daily no-show sweep inside the API process.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/nadoran78/mytable/config"
	"github.com/nadoran78/mytable/internal/delivery"
	deliverycontext "github.com/nadoran78/mytable/internal/delivery/context"
	"github.com/nadoran78/mytable/internal/domain/service"
	"github.com/nadoran78/mytable/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

const sweepLockKey = "no-show-sweep"

type noShowScheduler struct {
	sweeper usecase.NoShowSweeper
	locker  service.Locker
	logger  *slog.Logger

	enabled bool
	lockTTL time.Duration

	cron     *cron.Cron
	entryID  cron.EntryID
	done     chan struct{}
	stopOnce sync.Once
}

// NoShowSchedulerParams holds dependencies for the no-show scheduler, injected by Fx.
type NoShowSchedulerParams struct {
	fx.In

	Lc      fx.Lifecycle
	Config  *config.Config
	Logger  *slog.Logger
	Sweeper usecase.NoShowSweeper
	Locker  service.Locker
}

// NewNoShowScheduler creates the delivery that triggers SweepNoShows on the Sweep.Schedule cron expression.
func NewNoShowScheduler(params NoShowSchedulerParams) (delivery.Delivery, error) {
	s, err := newNoShowScheduler(params.Config, params.Logger, params.Sweeper, params.Locker)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			s.stop()

			return nil
		},
	})

	return s, nil
}

func newNoShowScheduler(cfg *config.Config, logger *slog.Logger, sweeper usecase.NoShowSweeper, locker service.Locker) (*noShowScheduler, error) {
	cronLog := cronLogger{logger: logger}

	s := &noShowScheduler{
		sweeper: sweeper,
		locker:  locker,
		logger:  logger,
		enabled: cfg.Sweep.Enabled,
		lockTTL: cfg.Sweep.LockTTL,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithLocation(cfg.Reservation.Location()),
			cron.WithLogger(cronLog),
			cron.WithChain(cron.Recover(cronLog), cron.SkipIfStillRunning(cronLog)),
		),
		done: make(chan struct{}),
	}

	entryID, err := s.cron.AddFunc(cfg.Sweep.Schedule, func() {
		s.runOnce(context.Background())
	})
	if err != nil {
		return nil, errors.Wrapf(err, "invalid sweep schedule %q", cfg.Sweep.Schedule)
	}
	s.entryID = entryID

	return s, nil
}

// Serve starts the cron runner and blocks until the scheduler is stopped.
func (s *noShowScheduler) Serve(ctx context.Context) error {
	if !s.enabled {
		s.logger.Info("No-show sweep disabled")

		return nil
	}

	s.cron.Start()
	s.logger.Info("No-show sweep scheduled", slog.Time("nextRun", s.cron.Entry(s.entryID).Next))

	select {
	case <-s.done:
	case <-ctx.Done():
	}

	// Wait for a sweep in flight before returning.
	<-s.cron.Stop().Done()

	return nil
}

// runOnce sweeps under the cluster lock so only one instance moves reservations.
func (s *noShowScheduler) runOnce(ctx context.Context) {
	runID := uuid.NewString()
	logger := s.logger.With(slog.String("request_id", runID))
	ctx = deliverycontext.WithRequestID(ctx, runID)
	ctx = deliverycontext.WithLogger(ctx, logger)

	release, ok, err := s.locker.TryLock(ctx, sweepLockKey, s.lockTTL)
	if err != nil {
		logger.Error("Failed to acquire no-show sweep lock", slog.Any("error", err))

		return
	}
	if !ok {
		logger.Info("No-show sweep already running elsewhere, skipping")

		return
	}
	defer func() {
		if err := release(context.WithoutCancel(ctx)); err != nil {
			logger.Warn("Failed to release no-show sweep lock", slog.Any("error", err))
		}
	}()

	result, err := s.sweeper.SweepNoShows(ctx)
	if err != nil {
		logger.Error("No-show sweep failed", slog.Any("error", err))

		return
	}

	logger.Info("No-show sweep finished",
		slog.Time("cutoff", result.Cutoff),
		slog.Int("matched", result.Matched),
		slog.Int("swept", result.Swept),
		slog.Int("failed", result.Failed),
	)
}

func (s *noShowScheduler) stop() {
	s.stopOnce.Do(func() {
		close(s.done)
	})
}

// cronLogger routes cron's runner logs to slog.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error("cron: "+msg, append(keysAndValues, slog.Any("error", err))...)
}
