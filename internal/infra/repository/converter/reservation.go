package converter

import (
	"tablebook/internal/domain/reservation"
	"tablebook/internal/domain/schedule"
	"tablebook/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// ReservationRow is the column shape of an insert, with optional columns
// already converted to their pgtype forms.
type ReservationRow struct {
	ID                    uuid.UUID
	GuestName             string
	Phone                 string
	Date                  pgtype.Date
	Slot                  string
	Guests                int
	Notes                 pgtype.Text
	Status                string
	AIConfirmationMessage pgtype.Text
	AIChefNote            pgtype.Text
}

func ReservationToRow(res *reservation.Reservation) ReservationRow {
	row := ReservationRow{
		ID:                    res.ID(),
		GuestName:             res.Name().String(),
		Phone:                 res.Phone().String(),
		Slot:                  res.Slot().String(),
		Guests:                res.Guests(),
		Status:                string(res.Status()),
		AIConfirmationMessage: pgconv.StringPtrToPgtype(res.AIMessage()),
		AIChefNote:            pgconv.StringPtrToPgtype(res.AIChefNote()),
	}

	// The entity only carries dates it has already validated.
	if day, err := schedule.ParseDate(res.Date()); err == nil {
		row.Date = pgconv.DateToPgtype(day)
	}

	if note := res.Note().String(); note != "" {
		row.Notes = pgtype.Text{String: note, Valid: true}
	} else {
		row.Notes = pgtype.Text{Valid: false}
	}

	return row
}
