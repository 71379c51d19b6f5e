package queries

import (
	"context"

	"tablebook/internal/pkg/errs"
)

type TableQueries interface {
	List(ctx context.Context) ([]*TableView, error)
}

type tableQueriesImpl struct {
	readStore TableReadStore
}

func NewTableQueries(readStore TableReadStore) TableQueries {
	return &tableQueriesImpl{readStore: readStore}
}

// List returns every floor-plan table, without occupancy. The floor plan
// endpoints add the classification on top of the same read store.
func (q *tableQueriesImpl) List(ctx context.Context) ([]*TableView, error) {
	views, err := q.readStore.FindAll(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load tables")
	}
	if views == nil {
		views = []*TableView{}
	}
	return views, nil
}
