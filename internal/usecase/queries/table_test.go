//go:build unit

package queries_test

import (
	"context"
	"testing"

	"tablebook/internal/pkg/errs"
	"tablebook/internal/usecase/queries"
	queriesmock "tablebook/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestTableList(t *testing.T) {
	newQuery := func(t *testing.T) (queries.TableQueries, *queriesmock.MockTableReadStore) {
		t.Helper()
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockTableReadStore(ctrl)
		return queries.NewTableQueries(store), store
	}

	t.Run("returns the stored tables", func(t *testing.T) {
		q, store := newQuery(t)
		tables := []*queries.TableView{
			{ID: uuid.New(), Name: "T1", Capacity: 2, Shape: "round"},
			{ID: uuid.New(), Name: "T2", Capacity: 4, Shape: "square"},
		}
		store.EXPECT().FindAll(gomock.Any()).Return(tables, nil)

		got, err := q.List(context.Background())
		require.NoError(t, err)
		assert.Equal(t, tables, got)
	})

	t.Run("empty floor plan yields an empty slice, not nil", func(t *testing.T) {
		q, store := newQuery(t)
		store.EXPECT().FindAll(gomock.Any()).Return(nil, nil)

		got, err := q.List(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("store failure propagates", func(t *testing.T) {
		q, store := newQuery(t)
		store.EXPECT().FindAll(gomock.Any()).Return(nil, errs.New("connection refused"))

		_, err := q.List(context.Background())
		assert.Error(t, err)
	})
}
