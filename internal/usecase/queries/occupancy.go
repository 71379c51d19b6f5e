package queries

import (
	"context"
	"time"

	"tablebook/internal/domain/floorplan"
	"tablebook/internal/domain/schedule"
	"tablebook/internal/pkg/clock"
	"tablebook/internal/pkg/errs"
)

type TableReadStore interface {
	FindAll(ctx context.Context) ([]*TableView, error)
}

type OccupancyQueries interface {
	// FloorPlan classifies every table with the dining window
	// (30 min before to 120 min after now).
	FloorPlan(ctx context.Context) ([]*TableOccupancyView, error)
	// StaffView classifies every table with the one-hour-either-way window.
	StaffView(ctx context.Context) ([]*TableOccupancyView, error)
}

type occupancyQueriesImpl struct {
	tables       TableReadStore
	reservations ReservationReadStore
	clock        clock.Clock
	loc          *time.Location
}

func NewOccupancyQueries(tables TableReadStore, reservations ReservationReadStore, clock clock.Clock, loc *time.Location) OccupancyQueries {
	return &occupancyQueriesImpl{
		tables:       tables,
		reservations: reservations,
		clock:        clock,
		loc:          loc,
	}
}

func (q *occupancyQueriesImpl) FloorPlan(ctx context.Context) ([]*TableOccupancyView, error) {
	return q.classify(ctx, floorplan.DiningWindow)
}

func (q *occupancyQueriesImpl) StaffView(ctx context.Context) ([]*TableOccupancyView, error) {
	return q.classify(ctx, floorplan.StaffViewWindow)
}

func (q *occupancyQueriesImpl) classify(ctx context.Context, window floorplan.Window) ([]*TableOccupancyView, error) {
	tables, err := q.tables.FindAll(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load tables")
	}

	now := q.clock.Now().In(q.loc)
	today := now.Format(schedule.DateLayout)

	items, err := q.reservations.FindByDate(ctx, today)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load today's reservations")
	}

	visits, matches := q.buildVisits(items, now, window)

	// Reservations carry no table id, so every table is classified against
	// the same visit set; several tables can report the same reservation.
	views := make([]*TableOccupancyView, len(tables))
	for i, table := range tables {
		views[i] = &TableOccupancyView{
			Table:       *table,
			Occupancy:   string(floorplan.Classify(visits, now, window)),
			Reservation: matches,
		}
	}
	return views, nil
}

func (q *occupancyQueriesImpl) buildVisits(items []*ReservationListItem, now time.Time, window floorplan.Window) ([]floorplan.Visit, *ReservationListItem) {
	var visits []floorplan.Visit
	var firstMatch *ReservationListItem

	for _, item := range items {
		if item.Status == "cancelled" {
			continue
		}
		slot, err := schedule.ParseSlot(item.Time)
		if err != nil {
			continue
		}
		at := slot.At(now, q.loc)
		visits = append(visits, floorplan.Visit{
			At:     at,
			Seated: item.Status == "seated",
		})
		if firstMatch == nil && window.Contains(now, at) {
			firstMatch = item
		}
	}
	return visits, firstMatch
}
