package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type ReservationView struct {
	ID                    uuid.UUID `json:"id"`
	Name                  string    `json:"name"`
	Phone                 string    `json:"phone"`
	Date                  string    `json:"date"`
	Time                  string    `json:"time"`
	Guests                int       `json:"guests"`
	Notes                 *string   `json:"notes,omitempty"`
	Status                string    `json:"status"`
	AIConfirmationMessage *string   `json:"ai_confirmation_message,omitempty"`
	AIChefNote            *string   `json:"ai_chef_note,omitempty"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

type ReservationListItem struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Guests    int       `json:"guests"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// AvailabilityView is the guest-facing answer: either Closed with no slots,
// or the ascending list of bookable slot labels.
type AvailabilityView struct {
	Date      string   `json:"date"`
	PartySize int      `json:"party_size"`
	Closed    bool     `json:"closed"`
	Slots     []string `json:"slots"`
}

type TableView struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Capacity int       `json:"capacity"`
	Shape    string    `json:"shape"`
	X        int       `json:"x"`
	Y        int       `json:"y"`
}

// TableOccupancyView augments a table with its derived occupancy and the
// first matching reservation, if any.
type TableOccupancyView struct {
	Table       TableView            `json:"table"`
	Occupancy   string               `json:"occupancy"`
	Reservation *ReservationListItem `json:"reservation,omitempty"`
}

type SettingsView struct {
	MaxCapacityPerSlot int       `json:"max_capacity_per_slot"`
	Holidays           []string  `json:"holidays"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// DayStats aggregates one calendar day of reservations. Always computed
// from the full unfiltered day set, never from a filtered list.
type DayStats struct {
	Date         string `json:"date"`
	Reservations int    `json:"reservations"`
	Guests       int    `json:"guests"`
	Seated       int    `json:"seated"`
	Cancelled    int    `json:"cancelled"`
}

type AuthorizedUserView struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}
