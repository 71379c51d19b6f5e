package repository

import (
	"context"

	"tablebook/internal/domain/floorplan"
	"tablebook/internal/infra"

	"github.com/google/uuid"
)

const createTableSQL = `
INSERT INTO restaurant_tables (id, name, capacity, shape, pos_x, pos_y)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id
`

const updateTableSQL = `
UPDATE restaurant_tables
SET name = $2, capacity = $3, shape = $4, pos_x = $5, pos_y = $6, updated_at = now()
WHERE id = $1
`

const deleteTableSQL = `
DELETE FROM restaurant_tables
WHERE id = $1
`

type TableRepository struct{}

func NewTableRepository() *TableRepository {
	return &TableRepository{}
}

func (r *TableRepository) Create(ctx context.Context, db infra.DBTX, table *floorplan.Table) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.QueryRow(ctx, createTableSQL,
		table.ID(),
		table.Name(),
		table.Capacity(),
		string(table.Shape()),
		table.X(),
		table.Y(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create table", err)
	}
	return id, nil
}

func (r *TableRepository) Update(ctx context.Context, db infra.DBTX, table *floorplan.Table) error {
	tag, err := db.Exec(ctx, updateTableSQL,
		table.ID(),
		table.Name(),
		table.Capacity(),
		string(table.Shape()),
		table.X(),
		table.Y(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update table", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("table not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *TableRepository) Delete(ctx context.Context, db infra.DBTX, id uuid.UUID) error {
	tag, err := db.Exec(ctx, deleteTableSQL, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete table", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("table not found", nil, infra.KindNotFound)
	}
	return nil
}
