package readstore

import (
	"context"

	"tablebook/internal/infra"
	"tablebook/internal/pkg/pgconv"
	"tablebook/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

const getSettingsSQL = `
SELECT max_capacity_per_slot, holidays, updated_at
FROM app_settings
WHERE id = 1
`

type SettingsReadStore struct {
	db infra.DBTX
}

func NewSettingsReadStore(db infra.DBTX) *SettingsReadStore {
	return &SettingsReadStore{db: db}
}

func (r *SettingsReadStore) Get(ctx context.Context) (*queries.SettingsView, error) {
	var (
		view      queries.SettingsView
		updatedAt pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, getSettingsSQL).Scan(&view.MaxCapacityPerSlot, &view.Holidays, &updatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("settings not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load settings", err)
	}

	if view.Holidays == nil {
		view.Holidays = []string{}
	}
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}
