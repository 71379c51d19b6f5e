package api

import (
	"errors"
	"net/http"

	reqdto "tablebook/internal/handler/dto/request"
	"tablebook/internal/usecase/commands"
	"tablebook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	commands commands.SettingsCommands
	queries  queries.SettingsQueries
}

func NewSettingsHandler(cmds commands.SettingsCommands, qrys queries.SettingsQueries) *SettingsHandler {
	return &SettingsHandler{
		commands: cmds,
		queries:  qrys,
	}
}

// @Summary Get settings
// @Description Current capacity limit and holiday list
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} queries.SettingsView
// @Router /settings [get]
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	view, err := h.queries.Get(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Update settings
// @Description Replace the capacity limit and holiday list (manager only)
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdateSettingsRequest true "Settings"
// @Success 200 {object} queries.SettingsView
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /settings [put]
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var req reqdto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.commands.Update(c.Request.Context(), req.ToParams())
	if err != nil {
		if errors.Is(err, commands.ErrSettingsValidationFailed) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Settings validation failed",
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
