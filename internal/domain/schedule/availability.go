package schedule

import (
	"errors"
	"time"
)

// ErrClosed distinguishes a holiday from a day with no free capacity:
// callers surface it as a blocking validation error on the date field,
// not as an empty slot list.
var ErrClosed = errors.New("restaurant is closed on this day")

// Settings is the slice of restaurant configuration the calculator needs.
// It is supplied by an external provider and treated as read-only here.
type Settings struct {
	MaxCapacityPerSlot int
	Holidays           []string
}

func (s Settings) IsHoliday(date string) bool {
	for _, h := range s.Holidays {
		if h == date {
			return true
		}
	}
	return false
}

// Booking is the projection of an existing reservation the calculator
// sums capacity over.
type Booking struct {
	Date      string
	Slot      Slot
	Guests    int
	Cancelled bool
}

// Availability returns the bookable slots for a party on a given day, in
// ascending time order.
//
// A holiday yields ErrClosed. A malformed date yields an empty list with no
// error. Same-day requests drop every slot starting at or before the top of
// the next hour (a coarse walk-in buffer, not a minute-level cutoff). The
// result is fully determined by the inputs, including now.
func Availability(date string, partySize int, bookings []Booking, settings Settings, now time.Time) ([]Slot, error) {
	if _, err := ParseDate(date); err != nil {
		return nil, nil
	}
	if settings.IsHoliday(date) {
		return nil, ErrClosed
	}

	booked := bookedGuestsBySlot(date, bookings)
	sameDay := date == now.Format(DateLayout)
	bufferMinutes := (now.Hour() + 1) * 60

	var slots []Slot
	for _, slot := range Grid() {
		if sameDay && slot.minutesOfDay() <= bufferMinutes {
			continue
		}
		if booked[slot]+partySize > settings.MaxCapacityPerSlot {
			continue
		}
		slots = append(slots, slot)
	}
	return slots, nil
}

func bookedGuestsBySlot(date string, bookings []Booking) map[Slot]int {
	sums := make(map[Slot]int)
	for _, b := range bookings {
		if b.Cancelled || b.Date != date {
			continue
		}
		sums[b.Slot] += b.Guests
	}
	return sums
}
