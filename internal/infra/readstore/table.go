package readstore

import (
	"context"

	"tablebook/internal/infra"
	"tablebook/internal/pkg/pgconv"
	"tablebook/internal/usecase/queries"

	"github.com/google/uuid"
)

const tableViewColumns = "id, name, capacity, shape, pos_x, pos_y"

type TableReadStore struct {
	db infra.DBTX
}

func NewTableReadStore(db infra.DBTX) *TableReadStore {
	return &TableReadStore{db: db}
}

func (r *TableReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.TableView, error) {
	sql := "SELECT " + tableViewColumns + " FROM restaurant_tables WHERE id = $1"

	var view queries.TableView
	err := r.db.QueryRow(ctx, sql, id).Scan(&view.ID, &view.Name, &view.Capacity, &view.Shape, &view.X, &view.Y)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("table not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find table by ID", err)
	}
	return &view, nil
}

func (r *TableReadStore) FindAll(ctx context.Context) ([]*queries.TableView, error) {
	sql := "SELECT " + tableViewColumns + " FROM restaurant_tables ORDER BY name ASC"

	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list tables", err)
	}
	defer rows.Close()

	var result []*queries.TableView
	for rows.Next() {
		var view queries.TableView
		if err := rows.Scan(&view.ID, &view.Name, &view.Capacity, &view.Shape, &view.X, &view.Y); err != nil {
			return nil, infra.WrapRepoErr("failed to scan table row", err)
		}
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read table rows", err)
	}
	return result, nil
}
