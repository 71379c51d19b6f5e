package request

import (
	"strings"

	"tablebook/internal/usecase/commands"
)

type TableRequest struct {
	Name     string `json:"name" binding:"required"`
	Capacity int    `json:"capacity" binding:"required,min=1"`
	Shape    string `json:"shape" binding:"required,oneof=round square rect"`
	X        int    `json:"x"`
	Y        int    `json:"y"`
}

func (r TableRequest) ToParams() commands.TableParams {
	return commands.TableParams{
		Name:     strings.TrimSpace(r.Name),
		Capacity: r.Capacity,
		Shape:    r.Shape,
		X:        r.X,
		Y:        r.Y,
	}
}
