package components

import (
	"stayledger/internal/handler"
	"stayledger/internal/handler/api"
	"stayledger/internal/handler/middleware"
	"stayledger/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		newHandlerLogger,
		middleware.InitRegistry,
		api.NewBookingHandler,
		api.NewRoomHandler,
		api.NewClientHandler,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlerLogger(cfg config.Config) *middleware.Logger {
	return middleware.NewLogger(cfg.Log)
}
