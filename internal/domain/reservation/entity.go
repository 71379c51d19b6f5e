package reservation

import (
	"time"

	"tablebook/internal/domain/schedule"

	"github.com/google/uuid"
)

// Reservation is the central entity: one table-service booking for a party
// on a date and slot. Status starts at confirmed and only moves through the
// transition table. The AI copy fields are opaque strings produced by an
// external text-generation call; they never affect logic.
type Reservation struct {
	id        uuid.UUID
	name      GuestName
	phone     Phone
	date      string
	slot      schedule.Slot
	guests    int
	note      Note
	status    Status
	aiMessage *string
	aiNote    *string
	createdAt time.Time
	updatedAt time.Time
}

func NewReservation(name GuestName, phone Phone, date string, slot schedule.Slot, guests int, note Note) (*Reservation, error) {
	if _, err := schedule.ParseDate(date); err != nil {
		return nil, err
	}
	if guests < 1 {
		return nil, ErrInvalidPartySize
	}
	return &Reservation{
		id:     uuid.New(),
		name:   name,
		phone:  phone,
		date:   date,
		slot:   slot,
		guests: guests,
		note:   note,
		status: StatusConfirmed,
	}, nil
}

func ReconstructReservation(
	id uuid.UUID,
	name GuestName,
	phone Phone,
	date string,
	slot schedule.Slot,
	guests int,
	note Note,
	status Status,
	aiMessage, aiNote *string,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:        id,
		name:      name,
		phone:     phone,
		date:      date,
		slot:      slot,
		guests:    guests,
		note:      note,
		status:    status,
		aiMessage: aiMessage,
		aiNote:    aiNote,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// AttachAICopy stores the generated confirmation strings. Best-effort:
// creation proceeds without them when generation fails.
func (r *Reservation) AttachAICopy(message, chefNote string) {
	if message != "" {
		r.aiMessage = &message
	}
	if chefNote != "" {
		r.aiNote = &chefNote
	}
}

func (r *Reservation) IsActive() bool {
	return r.status != StatusCancelled
}

func (r *Reservation) ID() uuid.UUID       { return r.id }
func (r *Reservation) Name() GuestName     { return r.name }
func (r *Reservation) Phone() Phone        { return r.phone }
func (r *Reservation) Date() string        { return r.date }
func (r *Reservation) Slot() schedule.Slot { return r.slot }
func (r *Reservation) Guests() int         { return r.guests }
func (r *Reservation) Note() Note          { return r.note }
func (r *Reservation) Status() Status      { return r.status }
func (r *Reservation) AIMessage() *string  { return r.aiMessage }
func (r *Reservation) AIChefNote() *string { return r.aiNote }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time { return r.updatedAt }
