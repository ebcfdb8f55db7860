package components

import (
	"booking-core/internal/handler"
	"booking-core/internal/handler/api"
	"booking-core/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewResourceHandler,
		api.NewBookingHandler,
		api.NewPageHandler,
		api.NewPublicHandler,
		middleware.NewTenantMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
