package queries

import (
	"context"

	"tablebook/internal/infra"
	"tablebook/internal/pkg/clock"
	"tablebook/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrReservationNotFound = errs.New("reservation not found")

// ListFilter narrows and orders the dashboard list. Zero value lists the
// whole set, creation-descending (the store's default order).
type ListFilter struct {
	Date   *string
	Status *string
	Search *string
	SortBy SortOrder
}

type SortOrder string

const (
	SortByCreatedDesc SortOrder = "created_desc"
	SortBySlotAsc     SortOrder = "slot_asc"
)

type ReservationQueries interface {
	Get(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	List(ctx context.Context, filter ListFilter) ([]*ReservationListItem, error)
	TodayStats(ctx context.Context) (*DayStats, error)
}

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	List(ctx context.Context, filter ListFilter) ([]*ReservationListItem, error)
	FindByDate(ctx context.Context, date string) ([]*ReservationListItem, error)
}

type reservationQueriesImpl struct {
	readStore ReservationReadStore
	clock     clock.Clock
}

func NewReservationQueries(readStore ReservationReadStore, clock clock.Clock) ReservationQueries {
	return &reservationQueriesImpl{
		readStore: readStore,
		clock:     clock,
	}
}

func (q *reservationQueriesImpl) Get(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Wrap(err, "failed to find reservation")
	}
	return view, nil
}

func (q *reservationQueriesImpl) List(ctx context.Context, filter ListFilter) ([]*ReservationListItem, error) {
	items, err := q.readStore.List(ctx, filter)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list reservations")
	}
	return items, nil
}

// TodayStats aggregates over the complete day set so filtered dashboard
// views can never skew the totals.
func (q *reservationQueriesImpl) TodayStats(ctx context.Context) (*DayStats, error) {
	today := q.clock.Now().Format("2006-01-02")
	items, err := q.readStore.FindByDate(ctx, today)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load today's reservations")
	}

	stats := &DayStats{Date: today}
	for _, item := range items {
		switch item.Status {
		case "cancelled":
			stats.Cancelled++
			continue
		case "seated":
			stats.Seated++
		}
		stats.Reservations++
		stats.Guests += item.Guests
	}
	return stats, nil
}
