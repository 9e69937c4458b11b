package scheduler

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/nadoran78/mytable/config"
	mockSvc "github.com/nadoran78/mytable/internal/mocks/service"
	mockUC "github.com/nadoran78/mytable/internal/mocks/usecase"
	"github.com/nadoran78/mytable/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newTestScheduler(t *testing.T) (*noShowScheduler, *mockUC.MockNoShowSweeper, *mockSvc.MockLocker) {
	t.Helper()

	sweeper := mockUC.NewMockNoShowSweeper(t)
	locker := mockSvc.NewMockLocker(t)

	cfg := &config.Config{
		Sweep: &config.SweepConfig{Enabled: true, Schedule: "0 5 0 * * *", LockTTL: 10 * time.Minute},
	}

	s, err := newNoShowScheduler(cfg, slog.New(slog.DiscardHandler), sweeper, locker)
	require.NoError(t, err)

	return s, sweeper, locker
}

func TestNewNoShowScheduler_RejectsBadSchedule(t *testing.T) {
	for _, bad := range []string{"", "00:05", "0 5 0 * *", "0 61 0 * * *"} {
		cfg := &config.Config{Sweep: &config.SweepConfig{Enabled: true, Schedule: bad}}

		_, err := newNoShowScheduler(cfg, slog.New(slog.DiscardHandler), nil, nil)
		assert.Error(t, err, bad)
	}
}

func TestNewNoShowScheduler_RegistersStopHook(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	cfg := &config.Config{Sweep: &config.SweepConfig{Enabled: true, Schedule: "0 5 0 * * *"}}

	d, err := NewNoShowScheduler(NoShowSchedulerParams{
		Lc:      lc,
		Config:  cfg,
		Logger:  slog.New(slog.DiscardHandler),
		Sweeper: mockUC.NewMockNoShowSweeper(t),
		Locker:  mockSvc.NewMockLocker(t),
	})
	require.NoError(t, err)

	served := make(chan error, 1)
	go func() { served <- d.Serve(context.Background()) }()

	lc.RequireStart().RequireStop()
	require.NoError(t, <-served)
}

func TestSweepSchedule(t *testing.T) {
	s, _, _ := newTestScheduler(t)

	entries := s.cron.Entries()
	require.Len(t, entries, 1)
	schedule := entries[0].Schedule
	assert.Equal(t, time.Local, s.cron.Location())

	kst := time.FixedZone("KST", 9*60*60)
	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			name: "later today",
			now:  time.Date(2024, 6, 1, 0, 1, 0, 0, kst),
			want: time.Date(2024, 6, 1, 0, 5, 0, 0, kst),
		},
		{
			name: "exactly at run time rolls to tomorrow",
			now:  time.Date(2024, 6, 1, 0, 5, 0, 0, kst),
			want: time.Date(2024, 6, 2, 0, 5, 0, 0, kst),
		},
		{
			name: "month end",
			now:  time.Date(2024, 6, 30, 22, 0, 0, 0, kst),
			want: time.Date(2024, 7, 1, 0, 5, 0, 0, kst),
		},
		{
			name: "leap day",
			now:  time.Date(2024, 2, 28, 23, 59, 59, 0, kst),
			want: time.Date(2024, 2, 29, 0, 5, 0, 0, kst),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.want.Equal(schedule.Next(tt.now)), "got %s", schedule.Next(tt.now))
		})
	}
}

func TestSweepScheduleJobSweeps(t *testing.T) {
	s, sweeper, locker := newTestScheduler(t)

	released := false
	locker.EXPECT().TryLock(mock.Anything, sweepLockKey, 10*time.Minute).
		Return(func(context.Context) error { released = true; return nil }, true, nil)
	sweeper.EXPECT().SweepNoShows(mock.Anything).Return(&usecase.SweepResult{Matched: 1, Swept: 1}, nil)

	s.cron.Entry(s.entryID).Job.Run()

	assert.True(t, released)
}

func TestRunOnce(t *testing.T) {
	t.Run("sweeps under the lock and releases it", func(t *testing.T) {
		s, sweeper, locker := newTestScheduler(t)

		released := false
		locker.EXPECT().TryLock(mock.Anything, sweepLockKey, 10*time.Minute).
			Return(func(context.Context) error { released = true; return nil }, true, nil)
		sweeper.EXPECT().SweepNoShows(mock.Anything).
			Return(&usecase.SweepResult{Matched: 3, Swept: 2, Failed: 1}, nil)

		s.runOnce(context.Background())

		assert.True(t, released)
	})

	t.Run("skips when another instance holds the lock", func(t *testing.T) {
		s, _, locker := newTestScheduler(t)
		locker.EXPECT().TryLock(mock.Anything, sweepLockKey, mock.Anything).Return(nil, false, nil)

		s.runOnce(context.Background())
	})

	t.Run("skips when the lock backend fails", func(t *testing.T) {
		s, _, locker := newTestScheduler(t)
		locker.EXPECT().TryLock(mock.Anything, sweepLockKey, mock.Anything).Return(nil, false, errors.New("redis down"))

		s.runOnce(context.Background())
	})

	t.Run("releases the lock when the sweep fails", func(t *testing.T) {
		s, sweeper, locker := newTestScheduler(t)

		released := false
		locker.EXPECT().TryLock(mock.Anything, sweepLockKey, mock.Anything).
			Return(func(context.Context) error { released = true; return nil }, true, nil)
		sweeper.EXPECT().SweepNoShows(mock.Anything).Return(nil, errors.New("db down"))

		s.runOnce(context.Background())

		assert.True(t, released)
	})
}

func TestServe(t *testing.T) {
	t.Run("disabled returns immediately", func(t *testing.T) {
		s, _, _ := newTestScheduler(t)
		s.enabled = false

		require.NoError(t, s.Serve(context.Background()))
	})

	t.Run("returns after stop", func(t *testing.T) {
		s, _, _ := newTestScheduler(t)

		served := make(chan error, 1)
		go func() { served <- s.Serve(context.Background()) }()

		s.stop()
		s.stop()

		require.NoError(t, <-served)
	})

	t.Run("returns when the context ends", func(t *testing.T) {
		s, _, _ := newTestScheduler(t)

		ctx, cancel := context.WithCancel(context.Background())
		served := make(chan error, 1)
		go func() { served <- s.Serve(ctx) }()

		cancel()

		require.NoError(t, <-served)
	})
}
