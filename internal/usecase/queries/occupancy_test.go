//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"tablebook/internal/pkg/clock"
	"tablebook/internal/usecase/queries"
	queriesmock "tablebook/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func occupancyFixture(t *testing.T, now time.Time) (queries.OccupancyQueries, *queriesmock.MockTableReadStore, *queriesmock.MockReservationReadStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	tables := queriesmock.NewMockTableReadStore(ctrl)
	reservations := queriesmock.NewMockReservationReadStore(ctrl)
	q := queries.NewOccupancyQueries(tables, reservations, clock.NewFakeClock(now), time.UTC)
	return q, tables, reservations
}

func twoTables() []*queries.TableView {
	return []*queries.TableView{
		{ID: uuid.New(), Name: "T1", Capacity: 2, Shape: "round"},
		{ID: uuid.New(), Name: "T2", Capacity: 4, Shape: "rect"},
	}
}

func listItem(slot, status string) *queries.ReservationListItem {
	return &queries.ReservationListItem{
		ID:     uuid.New(),
		Name:   "Ada Lovelace",
		Date:   "2026-06-15",
		Time:   slot,
		Guests: 2,
		Status: status,
	}
}

func TestFloorPlan(t *testing.T) {
	// 18:30, dining window covers 18:00 through 20:30.
	now := time.Date(2026, 6, 15, 18, 30, 0, 0, time.UTC)

	t.Run("no reservations leaves every table available", func(t *testing.T) {
		q, tables, reservations := occupancyFixture(t, now)
		tables.EXPECT().FindAll(gomock.Any()).Return(twoTables(), nil)
		reservations.EXPECT().FindByDate(gomock.Any(), "2026-06-15").Return(nil, nil)

		views, err := q.FloorPlan(context.Background())
		require.NoError(t, err)

		require.Len(t, views, 2)
		for _, v := range views {
			assert.Equal(t, "available", v.Occupancy)
			assert.Nil(t, v.Reservation)
		}
	})

	t.Run("seated party in the window marks tables occupied", func(t *testing.T) {
		q, tables, reservations := occupancyFixture(t, now)
		tables.EXPECT().FindAll(gomock.Any()).Return(twoTables(), nil)
		reservations.EXPECT().FindByDate(gomock.Any(), "2026-06-15").
			Return([]*queries.ReservationListItem{listItem("18:00", "seated")}, nil)

		views, err := q.FloorPlan(context.Background())
		require.NoError(t, err)

		// No table binding exists, so both tables report the same visit.
		require.Len(t, views, 2)
		for _, v := range views {
			assert.Equal(t, "occupied", v.Occupancy)
			require.NotNil(t, v.Reservation)
			assert.Equal(t, "18:00", v.Reservation.Time)
		}
	})

	t.Run("upcoming confirmed booking marks tables reserved", func(t *testing.T) {
		q, tables, reservations := occupancyFixture(t, now)
		tables.EXPECT().FindAll(gomock.Any()).Return(twoTables(), nil)
		reservations.EXPECT().FindByDate(gomock.Any(), "2026-06-15").
			Return([]*queries.ReservationListItem{listItem("19:30", "confirmed")}, nil)

		views, err := q.FloorPlan(context.Background())
		require.NoError(t, err)

		require.Len(t, views, 2)
		assert.Equal(t, "reserved", views[0].Occupancy)
	})

	t.Run("cancelled bookings never count", func(t *testing.T) {
		q, tables, reservations := occupancyFixture(t, now)
		tables.EXPECT().FindAll(gomock.Any()).Return(twoTables(), nil)
		reservations.EXPECT().FindByDate(gomock.Any(), "2026-06-15").
			Return([]*queries.ReservationListItem{listItem("18:30", "cancelled")}, nil)

		views, err := q.FloorPlan(context.Background())
		require.NoError(t, err)

		assert.Equal(t, "available", views[0].Occupancy)
		assert.Nil(t, views[0].Reservation)
	})
}

func TestStaffViewWindowDiffersFromFloorPlan(t *testing.T) {
	// 18:30; a 20:00 slot is inside the dining window (ends 20:30) but
	// outside the staff view window (ends 19:30).
	now := time.Date(2026, 6, 15, 18, 30, 0, 0, time.UTC)
	items := []*queries.ReservationListItem{listItem("20:00", "confirmed")}

	q, tables, reservations := occupancyFixture(t, now)
	tables.EXPECT().FindAll(gomock.Any()).Return(twoTables(), nil).Times(2)
	reservations.EXPECT().FindByDate(gomock.Any(), "2026-06-15").Return(items, nil).Times(2)

	dining, err := q.FloorPlan(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "reserved", dining[0].Occupancy)

	staff, err := q.StaffView(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "available", staff[0].Occupancy)
}
