package schedule

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidSlot = errors.New("invalid slot")
	ErrInvalidDate = errors.New("invalid date")
)

const (
	// OpeningHour and ClosingHour bound the bookable grid. Both bounds are
	// offered as slot starts, so the grid runs 11:00, 11:30, ..., 22:00.
	OpeningHour = 11
	ClosingHour = 22

	// SlotInterval is the booking granularity.
	SlotInterval = 30 * time.Minute

	// DateLayout is the wire format for calendar dates.
	DateLayout = "2006-01-02"

	slotLayout = "15:04"
)

// Slot is a fixed half-hour start time within opening hours.
type Slot struct {
	hour   int
	minute int
}

func NewSlot(hour, minute int) (Slot, error) {
	if hour < OpeningHour || hour > ClosingHour {
		return Slot{}, ErrInvalidSlot
	}
	if minute != 0 && minute != 30 {
		return Slot{}, ErrInvalidSlot
	}
	if hour == ClosingHour && minute != 0 {
		return Slot{}, ErrInvalidSlot
	}
	return Slot{hour: hour, minute: minute}, nil
}

// ParseSlot parses an "HH:MM" label into a grid slot.
func ParseSlot(s string) (Slot, error) {
	t, err := time.Parse(slotLayout, s)
	if err != nil {
		return Slot{}, ErrInvalidSlot
	}
	return NewSlot(t.Hour(), t.Minute())
}

func (s Slot) Hour() int   { return s.hour }
func (s Slot) Minute() int { return s.minute }

func (s Slot) String() string {
	return fmt.Sprintf("%02d:%02d", s.hour, s.minute)
}

func (s Slot) minutesOfDay() int {
	return s.hour*60 + s.minute
}

func (s Slot) Before(other Slot) bool {
	return s.minutesOfDay() < other.minutesOfDay()
}

// At anchors the slot on a calendar day in the given location.
func (s Slot) At(day time.Time, loc *time.Location) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), s.hour, s.minute, 0, 0, loc)
}

// Grid returns every bookable slot of an open day in ascending order.
func Grid() []Slot {
	slots := make([]Slot, 0, (ClosingHour-OpeningHour)*2+1)
	for hour := OpeningHour; hour <= ClosingHour; hour++ {
		slots = append(slots, Slot{hour: hour})
		if hour < ClosingHour {
			slots = append(slots, Slot{hour: hour, minute: 30})
		}
	}
	return slots
}

// ParseDate parses an ISO calendar date.
func ParseDate(s string) (time.Time, error) {
	day, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return day, nil
}
