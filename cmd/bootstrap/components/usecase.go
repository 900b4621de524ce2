package components

import (
	"log/slog"

	"studio-calendar/internal/infra/cache"
	"studio-calendar/internal/pkg/clock"
	"studio-calendar/internal/pkg/config"
	"studio-calendar/internal/usecase"
	"studio-calendar/internal/usecase/commands"
	"studio-calendar/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReservationCommands,
		commands.NewHappyHourCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCalendarQueries,
		NewOccupancyQueries,
		queries.NewExportQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

// NewOccupancyQueries keeps a missing cache as a nil interface.
func NewOccupancyQueries(store queries.CalendarReadStore, occupancy *cache.OccupancyCache, clk clock.Clock, cfg config.Config, logger *slog.Logger) queries.OccupancyQueries {
	var c queries.OccupancyCache
	if occupancy != nil {
		c = occupancy
	}
	return queries.NewOccupancyQueries(store, c, clk, cfg, logger)
}
