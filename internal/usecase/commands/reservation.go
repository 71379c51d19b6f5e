package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"tablebook/internal/domain/reservation"
	"tablebook/internal/domain/schedule"
	"tablebook/internal/infra"
	"tablebook/internal/infra/aicopy"
	"tablebook/internal/pkg/clock"
	"tablebook/internal/pkg/errs"
	"tablebook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrValidationFailed        = errs.New("reservation validation failed")
	ErrClosedDay               = errs.New("restaurant is closed on the requested day")
	ErrSlotUnavailable         = errs.New("requested slot is not available")
	ErrReservationNotFound     = errs.New("reservation not found")
	ErrIllegalTransition       = errs.New("illegal status transition")
	ErrDeleteForbidden         = errs.New("delete requires manager role")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// IllegalTransitionError carries the transitions the actor could still take
// from the current status, so a conflict response can offer them. It matches
// ErrIllegalTransition under errors.Is.
type IllegalTransitionError struct {
	From    reservation.Status
	Allowed []reservation.Status
}

func (e *IllegalTransitionError) Error() string {
	return "illegal status transition from " + string(e.From)
}

func (e *IllegalTransitionError) Is(target error) bool {
	return target == ErrIllegalTransition
}

type CreateReservationParams struct {
	Name   string
	Phone  string
	Date   string
	Time   string
	Guests int
	Notes  *string
}

type ReservationCommands interface {
	Create(ctx context.Context, params CreateReservationParams) (*queries.ReservationView, error)
	CheckIn(ctx context.Context, id uuid.UUID, actor reservation.Actor) (*queries.ReservationView, error)
	Cancel(ctx context.Context, id uuid.UUID, actor reservation.Actor) (*queries.ReservationView, error)
	Delete(ctx context.Context, id uuid.UUID, actor reservation.Actor) error
}

type reservationCommandsImpl struct {
	repo       ReservationRepository
	viewReader ReservationViewReader
	bookings   queries.BookingReadStore
	settings   queries.SettingsProvider
	copywriter aicopy.Writer
	publisher  SnapshotPublisher
	db         *pgxpool.Pool
	clock      clock.Clock
	loc        *time.Location
}

func NewReservationCommands(
	repo ReservationRepository,
	viewReader ReservationViewReader,
	bookings queries.BookingReadStore,
	settings queries.SettingsProvider,
	copywriter aicopy.Writer,
	publisher SnapshotPublisher,
	db *pgxpool.Pool,
	clock clock.Clock,
	loc *time.Location,
) ReservationCommands {
	return &reservationCommandsImpl{
		repo:       repo,
		viewReader: viewReader,
		bookings:   bookings,
		settings:   settings,
		copywriter: copywriter,
		publisher:  publisher,
		db:         db,
		clock:      clock,
		loc:        loc,
	}
}

// Create books a slot for a guest. The slot must be one the availability
// calculation offers against the freshest read we have; two submissions
// racing for the last seats can still both pass the check (best-effort
// capacity control, accepted behavior).
func (r *reservationCommandsImpl) Create(ctx context.Context, params CreateReservationParams) (*queries.ReservationView, error) {
	entity, err := r.buildEntity(params)
	if err != nil {
		return nil, errs.Mark(err, ErrValidationFailed)
	}

	if err := r.ensureSlotAvailable(ctx, entity); err != nil {
		return nil, err
	}

	r.attachConfirmationCopy(ctx, entity)

	id, err := r.repo.Create(ctx, r.db, entity)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	view, err := r.viewReader.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	r.publisher.TryRefresh(ctx)
	return view, nil
}

func (r *reservationCommandsImpl) CheckIn(ctx context.Context, id uuid.UUID, actor reservation.Actor) (*queries.ReservationView, error) {
	return r.transition(ctx, id, reservation.StatusSeated, actor)
}

func (r *reservationCommandsImpl) Cancel(ctx context.Context, id uuid.UUID, actor reservation.Actor) (*queries.ReservationView, error) {
	return r.transition(ctx, id, reservation.StatusCancelled, actor)
}

// Delete removes the record permanently. Distinct from Cancel, which keeps
// the reservation for reporting.
func (r *reservationCommandsImpl) Delete(ctx context.Context, id uuid.UUID, actor reservation.Actor) error {
	if err := reservation.CanDelete(actor); err != nil {
		return errs.Mark(err, ErrDeleteForbidden)
	}

	if _, err := r.findSnapshot(ctx, id); err != nil {
		return err
	}

	if err := r.repo.Delete(ctx, r.db, id); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	r.publisher.TryRefresh(ctx)
	return nil
}

func (r *reservationCommandsImpl) transition(ctx context.Context, id uuid.UUID, to reservation.Status, actor reservation.Actor) (*queries.ReservationView, error) {
	snapshot, err := r.findSnapshot(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := reservation.CanTransition(snapshot.Status, to, actor); err != nil {
		allowed := reservation.NextStatuses(snapshot.Status, actor)
		if allowed == nil {
			allowed = []reservation.Status{}
		}
		return nil, errs.Mark(&IllegalTransitionError{From: snapshot.Status, Allowed: allowed}, ErrIllegalTransition)
	}

	if err := r.repo.UpdateStatus(ctx, r.db, id, to); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	view, err := r.viewReader.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	r.publisher.TryRefresh(ctx)
	return view, nil
}

func (r *reservationCommandsImpl) findSnapshot(ctx context.Context, id uuid.UUID) (*ReservationSnapshot, error) {
	snapshot, err := r.repo.FindSnapshot(ctx, r.db, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return snapshot, nil
}

func (r *reservationCommandsImpl) buildEntity(params CreateReservationParams) (*reservation.Reservation, error) {
	name, err := reservation.NewGuestName(params.Name)
	if err != nil {
		return nil, err
	}

	phone, err := reservation.NewPhone(params.Phone)
	if err != nil {
		return nil, err
	}

	slot, err := schedule.ParseSlot(params.Time)
	if err != nil {
		return nil, err
	}

	note := reservation.NewNote("")
	if params.Notes != nil {
		note = reservation.NewNote(*params.Notes)
	}

	return reservation.NewReservation(name, phone, params.Date, slot, params.Guests, note)
}

// ensureSlotAvailable re-derives availability from a fresh read. A closed
// day is a validation failure before any write; a missing slot means
// either the walk-in buffer or exhausted capacity.
func (r *reservationCommandsImpl) ensureSlotAvailable(ctx context.Context, entity *reservation.Reservation) error {
	settings, err := r.settings.Current(ctx)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	bookings, err := r.bookings.BookingsByDate(ctx, entity.Date())
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	// The walk-in buffer is anchored to the restaurant's wall clock, the
	// same basis the availability query uses.
	slots, err := schedule.Availability(entity.Date(), entity.Guests(), bookings, settings, r.clock.Now().In(r.loc))
	if err != nil {
		if errors.Is(err, schedule.ErrClosed) {
			return ErrClosedDay
		}
		return err
	}

	for _, slot := range slots {
		if slot == entity.Slot() {
			return nil
		}
	}
	return ErrSlotUnavailable
}

func (r *reservationCommandsImpl) attachConfirmationCopy(ctx context.Context, entity *reservation.Reservation) {
	draft := aicopy.Draft{
		GuestName: entity.Name().String(),
		Date:      entity.Date(),
		Time:      entity.Slot().String(),
		Guests:    entity.Guests(),
		Notes:     entity.Note().String(),
	}

	generated, err := r.copywriter.ConfirmationCopy(ctx, draft)
	if err != nil {
		slog.Warn("confirmation copy generation failed", "error", err.Error())
		return
	}
	entity.AttachAICopy(generated.ConfirmationMessage, generated.ChefNote)
}
