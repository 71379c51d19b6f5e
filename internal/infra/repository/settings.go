package repository

import (
	"context"

	"tablebook/internal/infra"
)

// app_settings is a singleton row keyed by a fixed id so updates are a
// plain upsert.
const upsertSettingsSQL = `
INSERT INTO app_settings (id, max_capacity_per_slot, holidays, updated_at)
VALUES (1, $1, $2, now())
ON CONFLICT (id)
DO UPDATE SET max_capacity_per_slot = EXCLUDED.max_capacity_per_slot,
              holidays = EXCLUDED.holidays,
              updated_at = now()
`

type SettingsRepository struct{}

func NewSettingsRepository() *SettingsRepository {
	return &SettingsRepository{}
}

func (r *SettingsRepository) Update(ctx context.Context, db infra.DBTX, maxCapacityPerSlot int, holidays []string) error {
	if _, err := db.Exec(ctx, upsertSettingsSQL, maxCapacityPerSlot, holidays); err != nil {
		return infra.WrapRepoErr("failed to update settings", err)
	}
	return nil
}
