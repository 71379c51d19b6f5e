package readstore

import (
	"context"
	"fmt"
	"strings"

	"tablebook/internal/domain/schedule"
	"tablebook/internal/infra"
	"tablebook/internal/pkg/pgconv"
	"tablebook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const reservationViewColumns = `
id, guest_name, phone, date, slot, guests, notes, status,
ai_confirmation_message, ai_chef_note, created_at, updated_at
`

const reservationListColumns = `
id, guest_name, phone, date, slot, guests, status, created_at
`

type ReservationReadStore struct {
	db infra.DBTX
}

func NewReservationReadStore(db infra.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: db}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	sql := "SELECT " + reservationViewColumns + " FROM reservations WHERE id = $1"

	view, err := r.scanView(r.db.QueryRow(ctx, sql, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return view, nil
}

func (r *ReservationReadStore) List(ctx context.Context, filter queries.ListFilter) ([]*queries.ReservationListItem, error) {
	var (
		conds []string
		args  []any
	)

	if filter.Date != nil {
		args = append(args, *filter.Date)
		conds = append(conds, fmt.Sprintf("date = $%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.Search != nil {
		args = append(args, "%"+*filter.Search+"%")
		conds = append(conds, fmt.Sprintf("(guest_name ILIKE $%d OR phone ILIKE $%d)", len(args), len(args)))
	}

	sql := "SELECT " + reservationListColumns + " FROM reservations"
	if len(conds) > 0 {
		sql += " WHERE " + strings.Join(conds, " AND ")
	}
	switch filter.SortBy {
	case queries.SortBySlotAsc:
		sql += " ORDER BY date ASC, slot ASC, created_at ASC"
	default:
		sql += " ORDER BY created_at DESC, id DESC"
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	var result []*queries.ReservationListItem
	for rows.Next() {
		item, err := r.scanListItem(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read reservation rows", err)
	}
	return result, nil
}

func (r *ReservationReadStore) FindByDate(ctx context.Context, date string) ([]*queries.ReservationListItem, error) {
	sql := "SELECT " + reservationListColumns + " FROM reservations WHERE date = $1 ORDER BY slot ASC, created_at ASC"

	rows, err := r.db.Query(ctx, sql, date)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservations by date", err)
	}
	defer rows.Close()

	var result []*queries.ReservationListItem
	for rows.Next() {
		item, err := r.scanListItem(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read reservation rows", err)
	}
	return result, nil
}

// BookingsByDate projects one day of reservations into the capacity
// calculator's input shape. Cancelled rows are included and flagged so the
// calculator itself decides what counts.
func (r *ReservationReadStore) BookingsByDate(ctx context.Context, date string) ([]schedule.Booking, error) {
	sql := "SELECT date, slot, guests, status FROM reservations WHERE date = $1"

	rows, err := r.db.Query(ctx, sql, date)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load bookings", err)
	}
	defer rows.Close()

	var result []schedule.Booking
	for rows.Next() {
		var (
			day     pgtype.Date
			slotStr string
			guests  int
			status  string
		)
		if err := rows.Scan(&day, &slotStr, &guests, &status); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		slot, err := schedule.ParseSlot(slotStr)
		if err != nil {
			return nil, infra.WrapRepoErr("stored slot is not on the grid", err)
		}
		result = append(result, schedule.Booking{
			Date:      pgconv.DateToString(day, schedule.DateLayout),
			Slot:      slot,
			Guests:    guests,
			Cancelled: status == "cancelled",
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking rows", err)
	}
	return result, nil
}

// AllByCreationDesc feeds the live dashboard snapshot.
func (r *ReservationReadStore) AllByCreationDesc(ctx context.Context) ([]*queries.ReservationView, error) {
	sql := "SELECT " + reservationViewColumns + " FROM reservations ORDER BY created_at DESC, id DESC"

	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load reservation snapshot", err)
	}
	defer rows.Close()

	var result []*queries.ReservationView
	for rows.Next() {
		view, err := r.scanView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read reservation rows", err)
	}
	return result, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *ReservationReadStore) scanView(row rowScanner) (*queries.ReservationView, error) {
	var (
		view      queries.ReservationView
		date      pgtype.Date
		notes     pgtype.Text
		aiMessage pgtype.Text
		aiNote    pgtype.Text
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	err := row.Scan(
		&view.ID, &view.Name, &view.Phone, &date, &view.Time, &view.Guests,
		&notes, &view.Status, &aiMessage, &aiNote, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	view.Date = pgconv.DateToString(date, schedule.DateLayout)
	view.Notes = pgconv.StringPtrFromPgtype(notes)
	view.AIConfirmationMessage = pgconv.StringPtrFromPgtype(aiMessage)
	view.AIChefNote = pgconv.StringPtrFromPgtype(aiNote)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}

func (r *ReservationReadStore) scanListItem(row rowScanner) (*queries.ReservationListItem, error) {
	var (
		item      queries.ReservationListItem
		date      pgtype.Date
		createdAt pgtype.Timestamptz
	)
	err := row.Scan(
		&item.ID, &item.Name, &item.Phone, &date, &item.Time, &item.Guests,
		&item.Status, &createdAt,
	)
	if err != nil {
		return nil, err
	}

	item.Date = pgconv.DateToString(date, schedule.DateLayout)
	item.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	return &item, nil
}
