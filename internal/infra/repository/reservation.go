package repository

import (
	"context"

	"tablebook/internal/domain/reservation"
	"tablebook/internal/infra"
	"tablebook/internal/infra/repository/converter"
	"tablebook/internal/pkg/pgconv"
	"tablebook/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createReservationSQL = `
INSERT INTO reservations (id, guest_name, phone, date, slot, guests, notes, status, ai_confirmation_message, ai_chef_note)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING id
`

const updateReservationStatusSQL = `
UPDATE reservations
SET status = $2, updated_at = now()
WHERE id = $1
`

const deleteReservationSQL = `
DELETE FROM reservations
WHERE id = $1
`

const findReservationSnapshotSQL = `
SELECT id, status, date, slot, guests
FROM reservations
WHERE id = $1
`

type ReservationRepository struct{}

func NewReservationRepository() *ReservationRepository {
	return &ReservationRepository{}
}

func (r *ReservationRepository) Create(ctx context.Context, db infra.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
	params := converter.ReservationToRow(res)

	var id uuid.UUID
	err := db.QueryRow(ctx, createReservationSQL,
		params.ID,
		params.GuestName,
		params.Phone,
		params.Date,
		params.Slot,
		params.Guests,
		params.Notes,
		params.Status,
		params.AIConfirmationMessage,
		params.AIChefNote,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create reservation", err)
	}

	return id, nil
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, db infra.DBTX, id uuid.UUID, status reservation.Status) error {
	tag, err := db.Exec(ctx, updateReservationStatusSQL, id, string(status))
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) Delete(ctx context.Context, db infra.DBTX, id uuid.UUID) error {
	tag, err := db.Exec(ctx, deleteReservationSQL, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) FindSnapshot(ctx context.Context, db infra.DBTX, id uuid.UUID) (*commands.ReservationSnapshot, error) {
	var (
		snap   commands.ReservationSnapshot
		status string
		date   pgtype.Date
	)
	err := db.QueryRow(ctx, findReservationSnapshotSQL, id).Scan(&snap.ID, &status, &date, &snap.Time, &snap.Guests)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation snapshot", err)
	}

	snap.Status = reservation.Status(status)
	snap.Date = date.Time.Format("2006-01-02")
	return &snap, nil
}
