package commands

import (
	"context"

	"tablebook/internal/domain/floorplan"
	"tablebook/internal/domain/reservation"
	"tablebook/internal/infra"
	"tablebook/internal/usecase/queries"

	"github.com/google/uuid"
)

// Write-side snapshot of a stored reservation, enough to guard a status
// transition without pulling the full read model.
type ReservationSnapshot struct {
	ID     uuid.UUID
	Status reservation.Status
	Date   string
	Time   string
	Guests int
}

type ReservationRepository interface {
	Create(ctx context.Context, db infra.DBTX, res *reservation.Reservation) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, db infra.DBTX, id uuid.UUID, status reservation.Status) error
	Delete(ctx context.Context, db infra.DBTX, id uuid.UUID) error
	FindSnapshot(ctx context.Context, db infra.DBTX, id uuid.UUID) (*ReservationSnapshot, error)
}

type TableRepository interface {
	Create(ctx context.Context, db infra.DBTX, table *floorplan.Table) (uuid.UUID, error)
	Update(ctx context.Context, db infra.DBTX, table *floorplan.Table) error
	Delete(ctx context.Context, db infra.DBTX, id uuid.UUID) error
}

type SettingsRepository interface {
	Update(ctx context.Context, db infra.DBTX, maxCapacityPerSlot int, holidays []string) error
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, db infra.DBTX, id uuid.UUID) error
}

// ReservationViewReader is the read-after-write seam: commands answer with
// the stored view, not with in-memory state.
type ReservationViewReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error)
}

type TableViewReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*queries.TableView, error)
}

// SnapshotPublisher pushes a fresh full snapshot to live subscribers after
// a committed mutation.
type SnapshotPublisher interface {
	TryRefresh(ctx context.Context)
}

// SettingsInvalidator drops the cached settings after an update so the
// next availability calculation sees the new values.
type SettingsInvalidator interface {
	Invalidate()
}
