//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"tablebook/internal/domain/schedule"
	"tablebook/internal/pkg/clock"
	"tablebook/internal/pkg/errs"
	"tablebook/internal/usecase/queries"
	queriesmock "tablebook/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAvailabilitySlots(t *testing.T) {
	// The evening before, so the walk-in buffer never bites.
	eveBefore := time.Date(2026, 6, 14, 9, 0, 0, 0, time.UTC)

	newQuery := func(t *testing.T) (queries.AvailabilityQueries, *queriesmock.MockSettingsProvider, *queriesmock.MockBookingReadStore) {
		t.Helper()
		ctrl := gomock.NewController(t)
		settings := queriesmock.NewMockSettingsProvider(ctrl)
		bookings := queriesmock.NewMockBookingReadStore(ctrl)
		return queries.NewAvailabilityQueries(settings, bookings, clock.NewFakeClock(eveBefore), time.UTC), settings, bookings
	}

	t.Run("open day returns the slot grid as strings", func(t *testing.T) {
		q, settings, bookings := newQuery(t)
		settings.EXPECT().Current(gomock.Any()).Return(schedule.Settings{MaxCapacityPerSlot: 10}, nil)
		bookings.EXPECT().BookingsByDate(gomock.Any(), "2026-06-15").Return(nil, nil)

		view, err := q.Slots(context.Background(), "2026-06-15", 2)
		require.NoError(t, err)

		assert.Equal(t, "2026-06-15", view.Date)
		assert.Equal(t, 2, view.PartySize)
		assert.False(t, view.Closed)
		require.Len(t, view.Slots, 23)
		assert.Equal(t, "11:00", view.Slots[0])
		assert.Equal(t, "22:00", view.Slots[len(view.Slots)-1])
	})

	t.Run("holiday sets the closed flag instead of erroring", func(t *testing.T) {
		q, settings, bookings := newQuery(t)
		settings.EXPECT().Current(gomock.Any()).
			Return(schedule.Settings{MaxCapacityPerSlot: 10, Holidays: []string{"2026-06-15"}}, nil)
		bookings.EXPECT().BookingsByDate(gomock.Any(), "2026-06-15").Return(nil, nil)

		view, err := q.Slots(context.Background(), "2026-06-15", 2)
		require.NoError(t, err)

		assert.True(t, view.Closed)
		assert.Empty(t, view.Slots)
	})

	t.Run("malformed date yields an open empty view", func(t *testing.T) {
		q, settings, bookings := newQuery(t)
		settings.EXPECT().Current(gomock.Any()).Return(schedule.Settings{MaxCapacityPerSlot: 10}, nil)
		bookings.EXPECT().BookingsByDate(gomock.Any(), "15.06.2026").Return(nil, nil)

		view, err := q.Slots(context.Background(), "15.06.2026", 2)
		require.NoError(t, err)

		assert.False(t, view.Closed)
		assert.Empty(t, view.Slots)
	})

	t.Run("party size below one is rejected before any load", func(t *testing.T) {
		q, _, _ := newQuery(t)

		_, err := q.Slots(context.Background(), "2026-06-15", 0)
		assert.ErrorIs(t, err, queries.ErrInvalidPartySize)
	})

	t.Run("walk-in buffer follows the restaurant clock", func(t *testing.T) {
		// 17:15 UTC is 19:15 at the restaurant, so the buffer runs through
		// 20:00 and the first offered slot is 20:30.
		berlin := time.FixedZone("UTC+2", 2*60*60)
		ctrl := gomock.NewController(t)
		settings := queriesmock.NewMockSettingsProvider(ctrl)
		bookings := queriesmock.NewMockBookingReadStore(ctrl)
		clk := clock.NewFakeClock(time.Date(2026, 6, 14, 17, 15, 0, 0, time.UTC))
		q := queries.NewAvailabilityQueries(settings, bookings, clk, berlin)

		settings.EXPECT().Current(gomock.Any()).Return(schedule.Settings{MaxCapacityPerSlot: 10}, nil)
		bookings.EXPECT().BookingsByDate(gomock.Any(), "2026-06-14").Return(nil, nil)

		view, err := q.Slots(context.Background(), "2026-06-14", 2)
		require.NoError(t, err)

		require.NotEmpty(t, view.Slots)
		assert.Equal(t, "20:30", view.Slots[0])
	})

	t.Run("settings failure propagates", func(t *testing.T) {
		q, settings, _ := newQuery(t)
		settings.EXPECT().Current(gomock.Any()).
			Return(schedule.Settings{}, errs.New("connection refused"))

		_, err := q.Slots(context.Background(), "2026-06-15", 2)
		assert.Error(t, err)
	})
}
