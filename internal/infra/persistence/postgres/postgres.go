package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/nadoran78/mytable/config"
	"github.com/nadoran78/mytable/internal/domain/lifecycle"
	"github.com/nadoran78/mytable/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the reservation store. Gorm timestamps are taken in the reservation timezone
// and the server session zone is checked against it on start.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}

	loc := params.Config.Reservation.Location()
	db = db.Session(&gorm.Session{
		// Multi-step writes go through txManager.Execute instead of per-statement transactions.
		SkipDefaultTransaction: true,
		NowFunc:                func() time.Time { return time.Now().In(loc) },
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			checkSessionTimeZone(ctx, params.Logger, sqlDB, loc)

			go monitorDBPool(monitorCtx, params.Logger, sqlDB, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// checkSessionTimeZone warns when the server session zone differs from the reservation zone.
func checkSessionTimeZone(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, loc *time.Location) {
	var setting string
	if err := sqlDB.QueryRowContext(ctx, "SELECT current_setting('TimeZone')").Scan(&setting); err != nil {
		logger.Warn("Failed to read PostgreSQL session time zone", slog.Any("error", err))

		return
	}

	if !sameZone(setting, loc, time.Now()) {
		logger.Warn("PostgreSQL session time zone differs from reservation time zone",
			slog.String("session", setting),
			slog.String("reservation", loc.String()),
		)

		return
	}

	logger.Debug("PostgreSQL session time zone matches", slog.String("timezone", setting))
}

// sameZone reports whether the server zone setting and loc have the same offset at instant.
func sameZone(setting string, loc *time.Location, instant time.Time) bool {
	if setting == loc.String() {
		return true
	}

	server, err := time.LoadLocation(setting)
	if err != nil {
		return false
	}

	_, serverOffset := instant.In(server).Zone()
	_, localOffset := instant.In(loc).Zone()

	return serverOffset == localOffset
}

func monitorDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			waitDelta := cur.WaitCount - prev.WaitCount
			waitDurationDelta := cur.WaitDuration - prev.WaitDuration

			if waitDelta > 0 {
				attrs := []slog.Attr{
					slog.Int64("waitCountDelta", waitDelta),
					slog.Duration("waitDurationDelta", waitDurationDelta),
					slog.Duration("avgWait", waitDurationDelta/time.Duration(waitDelta)),
					slog.Int("maxOpenConns", cur.MaxOpenConnections),
					slog.Int("openConns", cur.OpenConnections),
					slog.Int("inUseConns", cur.InUse),
					slog.Int("idleConns", cur.Idle),
					slog.Int64("waitCountTotal", cur.WaitCount),
					slog.Duration("waitDurationTotal", cur.WaitDuration),
				}
				if waitDurationDelta >= dbPoolWarnDurationThreshold {
					logger.LogAttrs(ctx, slog.LevelWarn, "Postgres pool wait detected", attrs...)
				} else {
					logger.LogAttrs(ctx, slog.LevelDebug, "Postgres pool wait observed", attrs...)
				}
			}

			prev = cur
		}
	}
}
