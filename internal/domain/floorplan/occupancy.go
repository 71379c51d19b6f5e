package floorplan

import "time"

// Occupancy classifies a table at a point in time.
type Occupancy string

const (
	OccupancyAvailable Occupancy = "available"
	OccupancyReserved  Occupancy = "reserved"
	OccupancyOccupied  Occupancy = "occupied"
)

// Window is the time band around now within which a reservation's slot
// counts against a table.
type Window struct {
	Before time.Duration
	After  time.Duration
}

// The floor plan and the staff view intentionally use different windows.
// Which one is the intended production behavior is an open product
// question, so they stay separate, independently testable constants.
var (
	// DiningWindow matches reservations from 30 minutes before to 120
	// minutes after the current time (floor-plan view).
	DiningWindow = Window{Before: 30 * time.Minute, After: 120 * time.Minute}

	// StaffViewWindow matches reservations within one hour either way
	// (staff view).
	StaffViewWindow = Window{Before: time.Hour, After: time.Hour}
)

// Contains reports whether a reservation time falls inside the window
// around now. Both bounds are inclusive.
func (w Window) Contains(now, at time.Time) bool {
	return !at.Before(now.Add(-w.Before)) && !at.After(now.Add(w.After))
}

// Visit is the projection of a non-cancelled reservation the classifier
// scans: its anchored slot time and whether the party is already seated.
type Visit struct {
	At     time.Time
	Seated bool
}

// Classify derives a table's occupancy from today's reservations. This is
// a heuristic, not a binding: reservations carry no table id, so every
// table sees the same visit set and several tables can report the same
// reservation at once.
func Classify(visits []Visit, now time.Time, w Window) Occupancy {
	occupancy := OccupancyAvailable
	for _, v := range visits {
		if !w.Contains(now, v.At) {
			continue
		}
		if v.Seated {
			return OccupancyOccupied
		}
		occupancy = OccupancyReserved
	}
	return occupancy
}
