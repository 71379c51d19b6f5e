package request

import (
	"strings"

	"tablebook/internal/usecase/commands"
)

type CreateReservationRequest struct {
	Name      string  `json:"name" binding:"required"`
	Phone     string  `json:"phone" binding:"required"`
	Date      string  `json:"date" binding:"required"`
	Time      string  `json:"time" binding:"required"`
	PartySize int     `json:"party_size" binding:"required,min=1"`
	Notes     *string `json:"notes,omitempty"`
}

func (r CreateReservationRequest) ToParams() commands.CreateReservationParams {
	params := commands.CreateReservationParams{
		Name:   strings.TrimSpace(r.Name),
		Phone:  strings.TrimSpace(r.Phone),
		Date:   r.Date,
		Time:   r.Time,
		Guests: r.PartySize,
	}
	if r.Notes != nil {
		trimmed := strings.TrimSpace(*r.Notes)
		if trimmed != "" {
			params.Notes = &trimmed
		}
	}
	return params
}

type ListReservationsQuery struct {
	Date   *string `form:"date"`
	Status *string `form:"status"`
	Search *string `form:"search"`
	SortBy string  `form:"sort_by"`
}
