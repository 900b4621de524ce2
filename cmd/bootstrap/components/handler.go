package components

import (
	"studio-calendar/internal/handler"
	"studio-calendar/internal/handler/api"
	"studio-calendar/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewReservationHandler,
		api.NewCalendarHandler,
		api.NewHappyHourHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
