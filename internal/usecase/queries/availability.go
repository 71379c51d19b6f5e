package queries

import (
	"context"
	"errors"
	"time"

	"tablebook/internal/domain/schedule"
	"tablebook/internal/pkg/clock"
	"tablebook/internal/pkg/errs"
)

var ErrInvalidPartySize = errs.New("party size must be at least 1")

// SettingsProvider supplies the current restaurant settings. Eventual
// consistency is enough: a change must reach the next invocation, not the
// current one.
type SettingsProvider interface {
	Current(ctx context.Context) (schedule.Settings, error)
}

// BookingReadStore projects the non-deleted reservations of one day into
// the calculator's input shape.
type BookingReadStore interface {
	BookingsByDate(ctx context.Context, date string) ([]schedule.Booking, error)
}

type AvailabilityQueries interface {
	Slots(ctx context.Context, date string, partySize int) (*AvailabilityView, error)
}

type availabilityQueriesImpl struct {
	settings SettingsProvider
	bookings BookingReadStore
	clock    clock.Clock
	loc      *time.Location
}

func NewAvailabilityQueries(settings SettingsProvider, bookings BookingReadStore, clock clock.Clock, loc *time.Location) AvailabilityQueries {
	return &availabilityQueriesImpl{
		settings: settings,
		bookings: bookings,
		clock:    clock,
		loc:      loc,
	}
}

func (q *availabilityQueriesImpl) Slots(ctx context.Context, date string, partySize int) (*AvailabilityView, error) {
	if partySize < 1 {
		return nil, ErrInvalidPartySize
	}

	settings, err := q.settings.Current(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load settings")
	}

	bookings, err := q.bookings.BookingsByDate(ctx, date)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load bookings")
	}

	view := &AvailabilityView{Date: date, PartySize: partySize, Slots: []string{}}

	// Same-day detection and the walk-in buffer follow the restaurant's
	// wall clock, not the server's.
	slots, err := schedule.Availability(date, partySize, bookings, settings, q.clock.Now().In(q.loc))
	if err != nil {
		if errors.Is(err, schedule.ErrClosed) {
			view.Closed = true
			return view, nil
		}
		return nil, err
	}

	for _, slot := range slots {
		view.Slots = append(view.Slots, slot.String())
	}
	return view, nil
}
