package components

import (
	"tablebook/internal/infra"
	"tablebook/internal/infra/readstore"
	"tablebook/internal/infra/repository"
	"tablebook/internal/infra/settings"
	"tablebook/internal/pkg/clock"
	"tablebook/internal/pkg/config"
	"tablebook/internal/usecase/commands"
	"tablebook/internal/usecase/feed"
	"tablebook/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,

		// Reservation
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
			fx.As(new(queries.BookingReadStore)),
			fx.As(new(commands.ReservationViewReader)),
			fx.As(new(feed.SnapshotSource)),
		),
		fx.Annotate(
			repository.NewReservationRepository,
			fx.As(new(commands.ReservationRepository)),
		),

		// Table
		fx.Annotate(
			readstore.NewTableReadStore,
			fx.As(new(queries.TableReadStore)),
			fx.As(new(commands.TableViewReader)),
		),
		fx.Annotate(
			repository.NewTableRepository,
			fx.As(new(commands.TableRepository)),
		),

		// Settings
		fx.Annotate(
			readstore.NewSettingsReadStore,
			fx.As(new(queries.SettingsReadStore)),
		),
		fx.Annotate(
			repository.NewSettingsRepository,
			fx.As(new(commands.SettingsRepository)),
		),
		fx.Annotate(
			NewSettingsProvider,
			fx.As(new(queries.SettingsProvider)),
			fx.As(new(commands.SettingsInvalidator)),
		),

		// User
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(commands.UserRepository)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) infra.DBTX {
	return pool
}

func NewSettingsProvider(readStore queries.SettingsReadStore, cfg config.Config, clk clock.Clock) *settings.Provider {
	return settings.NewProvider(readStore, cfg.Restaurant, clk)
}
