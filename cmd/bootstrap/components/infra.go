package components

import (
	"context"
	"log/slog"

	"studio-calendar/internal/handler"
	"studio-calendar/internal/infra/cache"
	"studio-calendar/internal/infra/export"
	"studio-calendar/internal/infra/metrics"
	"studio-calendar/internal/infra/notify"
	"studio-calendar/internal/infra/pgquery"
	"studio-calendar/internal/pkg/clock"
	"studio-calendar/internal/pkg/config"
	"studio-calendar/internal/usecase/queries"
	"studio-calendar/internal/usecase/shared"

	"go.uber.org/fx"
)

var InfraModule = fx.Module("infra",
	fx.Provide(
		clock.NewRealClock,
		fx.Annotate(
			metrics.New,
			fx.As(new(shared.BookingMetrics)),
			fx.As(new(handler.MetricsExporter)),
		),
		NewOccupancyCache,
		fx.Annotate(
			NewDispatcher,
			fx.As(new(shared.EventPublisher)),
		),
		fx.Annotate(
			export.NewXLSXWriter,
			fx.As(new(queries.CalendarWriter)),
		),
	),
)

// NewOccupancyCache returns nil when Redis is not configured.
func NewOccupancyCache(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) *cache.OccupancyCache {
	if !cfg.Redis.Enabled() {
		logger.Info("redis not configured, occupancy summaries are computed on every request")
		return nil
	}
	client := cache.NewRedisClient(cfg.Redis)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				logger.Warn("redis unreachable at startup, continuing without warm cache", "addr", cfg.Redis.Addr, "error", err)
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return cache.NewOccupancyCache(client, cfg.Redis.OccupancyTTL)
}

func NewDispatcher(
	lc fx.Lifecycle,
	jobs shared.NotificationRepository,
	db pgquery.DBTX,
	clk clock.Clock,
	cfg config.Config,
	logger *slog.Logger,
	occupancy *cache.OccupancyCache,
) *notify.Dispatcher {
	var hooks []notify.EventHook
	if occupancy != nil {
		hooks = append(hooks, occupancy)
	}
	d := notify.NewDispatcher(jobs, db, clk, cfg.Notify, logger, hooks...)
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			d.Start()
			return nil
		},
		OnStop: d.Stop,
	})
	return d
}
