//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"tablebook/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSlot(t *testing.T) {
	cases := []struct {
		name   string
		hour   int
		minute int
		errIs  error
	}{
		{name: "opening slot", hour: 11, minute: 0},
		{name: "half hour slot", hour: 18, minute: 30},
		{name: "closing slot", hour: 22, minute: 0},
		{name: "before opening", hour: 10, minute: 30, errIs: schedule.ErrInvalidSlot},
		{name: "after closing", hour: 23, minute: 0, errIs: schedule.ErrInvalidSlot},
		{name: "past closing by half hour", hour: 22, minute: 30, errIs: schedule.ErrInvalidSlot},
		{name: "off-grid minute", hour: 12, minute: 15, errIs: schedule.ErrInvalidSlot},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			slot, err := schedule.NewSlot(tc.hour, tc.minute)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.hour, slot.Hour())
			assert.Equal(t, tc.minute, slot.Minute())
		})
	}
}

func TestParseSlot(t *testing.T) {
	slot, err := schedule.ParseSlot("19:30")
	require.NoError(t, err)
	assert.Equal(t, "19:30", slot.String())

	_, err = schedule.ParseSlot("7pm")
	assert.ErrorIs(t, err, schedule.ErrInvalidSlot)

	_, err = schedule.ParseSlot("09:00")
	assert.ErrorIs(t, err, schedule.ErrInvalidSlot)
}

func TestGrid(t *testing.T) {
	grid := schedule.Grid()

	// 11:00 through 21:30 in half hours, plus the 22:00 close.
	require.Len(t, grid, 23)
	assert.Equal(t, "11:00", grid[0].String())
	assert.Equal(t, "22:00", grid[len(grid)-1].String())

	for i := 1; i < len(grid); i++ {
		assert.True(t, grid[i-1].Before(grid[i]), "grid must ascend at index %d", i)
	}
}

func TestSlotAt(t *testing.T) {
	slot, err := schedule.NewSlot(19, 30)
	require.NoError(t, err)

	day := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)
	at := slot.At(day, time.UTC)

	assert.Equal(t, time.Date(2026, 6, 15, 19, 30, 0, 0, time.UTC), at)
}

func TestParseDate(t *testing.T) {
	day, err := schedule.ParseDate("2026-06-15")
	require.NoError(t, err)
	assert.Equal(t, time.June, day.Month())

	_, err = schedule.ParseDate("15.06.2026")
	assert.ErrorIs(t, err, schedule.ErrInvalidDate)
}
