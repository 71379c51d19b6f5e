package request

import (
	"tablebook/internal/usecase/commands"
)

type UpdateSettingsRequest struct {
	MaxCapacityPerSlot int      `json:"max_capacity_per_slot" binding:"required,min=1"`
	Holidays           []string `json:"holidays" binding:"required,dive,datetime=2006-01-02"`
}

func (r UpdateSettingsRequest) ToParams() commands.UpdateSettingsParams {
	return commands.UpdateSettingsParams{
		MaxCapacityPerSlot: r.MaxCapacityPerSlot,
		Holidays:           r.Holidays,
	}
}
