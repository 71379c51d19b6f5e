package components

import (
	"tablebook/internal/handler"
	"tablebook/internal/handler/api"
	"tablebook/internal/handler/middleware"
	"tablebook/internal/handler/ws"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewAvailabilityHandler,
		api.NewReservationHandler,
		api.NewTableHandler,
		api.NewSettingsHandler,
		api.NewFloorPlanHandler,
		ws.NewFeedHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	availability *api.AvailabilityHandler,
	reservation *api.ReservationHandler,
	table *api.TableHandler,
	settings *api.SettingsHandler,
	floorPlan *api.FloorPlanHandler,
	feed *ws.FeedHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:         auth,
		Availability: availability,
		Reservation:  reservation,
		Table:        table,
		Settings:     settings,
		FloorPlan:    floorPlan,
		Feed:         feed,
	}
}
