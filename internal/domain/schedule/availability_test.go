//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"tablebook/internal/domain/schedule"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSlot(t *testing.T, label string) schedule.Slot {
	t.Helper()
	slot, err := schedule.ParseSlot(label)
	require.NoError(t, err)
	return slot
}

func labels(slots []schedule.Slot) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.String()
	}
	return out
}

func defaultSettings() schedule.Settings {
	return schedule.Settings{MaxCapacityPerSlot: 40}
}

// A fixed "now" well before the requested day, so the walk-in buffer never
// interferes unless a test wants it to.
var eveBefore = time.Date(2026, 6, 14, 9, 0, 0, 0, time.UTC)

func TestAvailability_OpenDayNoBookings(t *testing.T) {
	slots, err := schedule.Availability("2026-06-15", 2, nil, defaultSettings(), eveBefore)
	require.NoError(t, err)

	require.Len(t, slots, 23)
	assert.Equal(t, "11:00", slots[0].String())
	assert.Equal(t, "22:00", slots[len(slots)-1].String())
}

func TestAvailability_CapacityExcludesFullSlots(t *testing.T) {
	settings := schedule.Settings{MaxCapacityPerSlot: 10}
	bookings := []schedule.Booking{
		{Date: "2026-06-15", Slot: mustSlot(t, "19:00"), Guests: 9},
		{Date: "2026-06-15", Slot: mustSlot(t, "20:00"), Guests: 4},
	}

	slots, err := schedule.Availability("2026-06-15", 2, bookings, settings, eveBefore)
	require.NoError(t, err)

	got := labels(slots)
	assert.NotContains(t, got, "19:00", "9 seated + 2 exceeds 10")
	assert.Contains(t, got, "20:00", "4 seated + 2 fits in 10")
	assert.Contains(t, got, "19:30", "adjacent slots are unaffected")
}

func TestAvailability_CapacityBoundaryIsInclusive(t *testing.T) {
	settings := schedule.Settings{MaxCapacityPerSlot: 10}
	bookings := []schedule.Booking{
		{Date: "2026-06-15", Slot: mustSlot(t, "18:00"), Guests: 8},
	}

	// 8 + 2 == 10 is still bookable.
	slots, err := schedule.Availability("2026-06-15", 2, bookings, settings, eveBefore)
	require.NoError(t, err)
	assert.Contains(t, labels(slots), "18:00")

	// 8 + 3 == 11 is not.
	slots, err = schedule.Availability("2026-06-15", 3, bookings, settings, eveBefore)
	require.NoError(t, err)
	assert.NotContains(t, labels(slots), "18:00")
}

func TestAvailability_CancelledBookingsFreeCapacity(t *testing.T) {
	settings := schedule.Settings{MaxCapacityPerSlot: 10}
	bookings := []schedule.Booking{
		{Date: "2026-06-15", Slot: mustSlot(t, "19:00"), Guests: 9, Cancelled: true},
	}

	slots, err := schedule.Availability("2026-06-15", 2, bookings, settings, eveBefore)
	require.NoError(t, err)
	assert.Contains(t, labels(slots), "19:00")
}

func TestAvailability_OtherDatesDoNotCount(t *testing.T) {
	settings := schedule.Settings{MaxCapacityPerSlot: 10}
	bookings := []schedule.Booking{
		{Date: "2026-06-16", Slot: mustSlot(t, "19:00"), Guests: 10},
	}

	slots, err := schedule.Availability("2026-06-15", 2, bookings, settings, eveBefore)
	require.NoError(t, err)
	assert.Contains(t, labels(slots), "19:00")
}

func TestAvailability_HolidayIsClosed(t *testing.T) {
	settings := schedule.Settings{
		MaxCapacityPerSlot: 40,
		Holidays:           []string{"2026-12-24", "2026-12-25"},
	}

	slots, err := schedule.Availability("2026-12-25", 2, nil, settings, eveBefore)
	assert.ErrorIs(t, err, schedule.ErrClosed)
	assert.Nil(t, slots)

	// The day after a holiday is a normal day.
	slots, err = schedule.Availability("2026-12-26", 2, nil, settings, eveBefore)
	require.NoError(t, err)
	assert.Len(t, slots, 23)
}

func TestAvailability_MalformedDateYieldsEmpty(t *testing.T) {
	for _, date := range []string{"not-a-date", "2026/06/15", "", "2026-13-40"} {
		slots, err := schedule.Availability(date, 2, nil, defaultSettings(), eveBefore)
		assert.NoError(t, err, "date %q", date)
		assert.Empty(t, slots, "date %q", date)
	}
}

func TestAvailability_SameDayWalkInBuffer(t *testing.T) {
	// At 20:15 the buffer reaches the top of the next hour: 21:00 is
	// dropped, 21:30 survives.
	now := time.Date(2026, 6, 15, 20, 15, 0, 0, time.UTC)

	slots, err := schedule.Availability("2026-06-15", 2, nil, defaultSettings(), now)
	require.NoError(t, err)

	got := labels(slots)
	assert.NotContains(t, got, "20:30")
	assert.NotContains(t, got, "21:00")
	assert.Contains(t, got, "21:30")
	assert.Contains(t, got, "22:00")
}

func TestAvailability_SameDayMorning(t *testing.T) {
	now := time.Date(2026, 6, 15, 8, 0, 0, 0, time.UTC)

	slots, err := schedule.Availability("2026-06-15", 2, nil, defaultSettings(), now)
	require.NoError(t, err)

	// Buffer ends at 09:00, before opening; the full grid is offered.
	assert.Len(t, slots, 23)
}

func TestAvailability_SameDayLateEvening(t *testing.T) {
	now := time.Date(2026, 6, 15, 21, 45, 0, 0, time.UTC)

	slots, err := schedule.Availability("2026-06-15", 2, nil, defaultSettings(), now)
	require.NoError(t, err)

	// Buffer reaches 22:00 inclusive; nothing is left.
	assert.Empty(t, slots)
}

func TestAvailability_DeterministicForFixedInputs(t *testing.T) {
	bookings := []schedule.Booking{
		{Date: "2026-06-15", Slot: mustSlot(t, "12:00"), Guests: 39},
	}

	first, err := schedule.Availability("2026-06-15", 2, bookings, defaultSettings(), eveBefore)
	require.NoError(t, err)
	second, err := schedule.Availability("2026-06-15", 2, bookings, defaultSettings(), eveBefore)
	require.NoError(t, err)

	if diff := cmp.Diff(labels(first), labels(second)); diff != "" {
		t.Errorf("availability must be pure (-first +second):\n%s", diff)
	}
}

func TestAvailability_AscendingOrder(t *testing.T) {
	slots, err := schedule.Availability("2026-06-15", 2, nil, defaultSettings(), eveBefore)
	require.NoError(t, err)

	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i-1].Before(slots[i]))
	}
}
