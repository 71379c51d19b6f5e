package components

import (
	"context"
	"log/slog"
	"time"

	"tablebook/internal/infra/aicopy"
	"tablebook/internal/pkg/clock"
	"tablebook/internal/pkg/config"
	"tablebook/internal/usecase"
	"tablebook/internal/usecase/commands"
	"tablebook/internal/usecase/feed"
	"tablebook/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
	fx.Invoke(warmFeed),
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewRestaurantLocation,
	feed.New,
	feed.NewRefresher,
	fx.Annotate(
		func(r *feed.Refresher) *feed.Refresher { return r },
		fx.As(new(commands.SnapshotPublisher)),
	),
	fx.Annotate(
		aicopy.NewStaticWriter,
		fx.As(new(aicopy.Writer)),
	),
	usecase.NewTokenValidator,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewReservationQueries,
		queries.NewAvailabilityQueries,
		queries.NewOccupancyQueries,
		queries.NewTableQueries,
		queries.NewSettingsQueries,
		queries.NewUserQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewReservationCommands,
		commands.NewTableCommands,
		commands.NewSettingsCommands,
	),
)

func NewRestaurantLocation(cfg config.Config) *time.Location {
	loc, err := time.LoadLocation(cfg.Restaurant.TimeZone)
	if err != nil {
		slog.Warn("invalid restaurant timezone, falling back to UTC", "timezone", cfg.Restaurant.TimeZone)
		return time.UTC
	}
	return loc
}

// warmFeed publishes the first snapshot at startup so the first websocket
// subscriber does not wait for a mutation.
func warmFeed(lc fx.Lifecycle, refresher *feed.Refresher) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			refresher.TryRefresh(ctx)
			return nil
		},
	})
}
