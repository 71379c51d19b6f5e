package api

import (
	"net/http"

	"tablebook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type FloorPlanHandler struct {
	occupancy queries.OccupancyQueries
}

func NewFloorPlanHandler(occupancy queries.OccupancyQueries) *FloorPlanHandler {
	return &FloorPlanHandler{
		occupancy: occupancy,
	}
}

// @Summary Floor plan occupancy
// @Description Tables classified with the dining window around now
// @Tags floorplan
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.TableOccupancyView
// @Router /floorplan [get]
func (h *FloorPlanHandler) GetFloorPlan(c *gin.Context) {
	views, err := h.occupancy.FloorPlan(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	if views == nil {
		views = []*queries.TableOccupancyView{}
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Staff occupancy view
// @Description Tables classified with a one hour window either way
// @Tags floorplan
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.TableOccupancyView
// @Router /staffview [get]
func (h *FloorPlanHandler) GetStaffView(c *gin.Context) {
	views, err := h.occupancy.StaffView(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	if views == nil {
		views = []*queries.TableOccupancyView{}
	}
	c.JSON(http.StatusOK, views)
}
