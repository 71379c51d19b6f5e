package api

import (
	"errors"
	"net/http"
	"strconv"

	"tablebook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	availability queries.AvailabilityQueries
}

func NewAvailabilityHandler(availability queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{
		availability: availability,
	}
}

// @Summary Get available slots
// @Description List bookable time slots for a date and party size
// @Tags availability
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param party_size query int true "Party size"
// @Success 200 {object} queries.AvailabilityView
// @Failure 400 {object} map[string]string
// @Router /availability [get]
func (h *AvailabilityHandler) GetAvailability(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "date is required",
		})
		return
	}

	partySize, err := strconv.Atoi(c.DefaultQuery("party_size", "1"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "party_size must be a number",
		})
		return
	}

	view, err := h.availability.Slots(c.Request.Context(), date, partySize)
	if err != nil {
		if errors.Is(err, queries.ErrInvalidPartySize) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "party_size must be at least 1",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, view)
}
