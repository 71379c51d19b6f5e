//go:build unit || e2e

package builder

import (
	"time"

	reqdto "tablebook/internal/handler/dto/request"
	"tablebook/internal/usecase/commands"
	"tablebook/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	Name      string
	Phone     string
	Date      string
	Time      string
	PartySize int
	Notes     *string
	Status    string
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		Name:      "Ada Lovelace",
		Phone:     "+49 30 1234567",
		Date:      "2026-06-15",
		Time:      "19:00",
		PartySize: 2,
		Status:    "confirmed",
	}
}

func (b *ReservationBuilder) WithDate(date string) *ReservationBuilder {
	b.Date = date
	return b
}

func (b *ReservationBuilder) WithTime(t string) *ReservationBuilder {
	b.Time = t
	return b
}

func (b *ReservationBuilder) WithPartySize(n int) *ReservationBuilder {
	b.PartySize = n
	return b
}

func (b *ReservationBuilder) WithStatus(status string) *ReservationBuilder {
	b.Status = status
	return b
}

func (b *ReservationBuilder) WithNotes(notes string) *ReservationBuilder {
	b.Notes = &notes
	return b
}

func (b *ReservationBuilder) BuildDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		Name:      b.Name,
		Phone:     b.Phone,
		Date:      b.Date,
		Time:      b.Time,
		PartySize: b.PartySize,
		Notes:     b.Notes,
	}
}

func (b *ReservationBuilder) BuildParams() commands.CreateReservationParams {
	return commands.CreateReservationParams{
		Name:   b.Name,
		Phone:  b.Phone,
		Date:   b.Date,
		Time:   b.Time,
		Guests: b.PartySize,
		Notes:  b.Notes,
	}
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	now := time.Now()
	return &queries.ReservationView{
		ID:        uuid.New(),
		Name:      b.Name,
		Phone:     b.Phone,
		Date:      b.Date,
		Time:      b.Time,
		Guests:    b.PartySize,
		Notes:     b.Notes,
		Status:    b.Status,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (b *ReservationBuilder) BuildListItem() *queries.ReservationListItem {
	return &queries.ReservationListItem{
		ID:        uuid.New(),
		Name:      b.Name,
		Phone:     b.Phone,
		Date:      b.Date,
		Time:      b.Time,
		Guests:    b.PartySize,
		Status:    b.Status,
		CreatedAt: time.Now(),
	}
}
