package components

import (
	"studio-calendar/internal/domain/studio"
	"studio-calendar/internal/infra/pgquery"
	"studio-calendar/internal/infra/readstore"
	"studio-calendar/internal/infra/repository"
	"studio-calendar/internal/infra/uow"
	"studio-calendar/internal/pkg/config"
	"studio-calendar/internal/usecase/queries"
	"studio-calendar/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
	NewDefaultSettings,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.CalendarViewQueries)),
		),
		fx.Annotate(
			readstore.NewCalendarReadStore,
			fx.As(new(queries.CalendarReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork builds its own per-transaction repositories
		uow.NewPostgresUoW,
		// Notification
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.NotificationWriteQueries)),
		),
		fx.Annotate(
			repository.NewNotificationRepository,
			fx.As(new(shared.NotificationRepository)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *pgquery.Queries {
	return pgquery.New()
}

func NewDBTX(pool *pgxpool.Pool) pgquery.DBTX {
	return pool
}

func NewDefaultSettings(cfg config.Config) studio.Settings {
	return studio.DefaultSettings(cfg.Calendar.DefaultTimeZone, cfg.Calendar.DefaultCutoffHour)
}
