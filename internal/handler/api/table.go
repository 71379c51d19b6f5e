package api

import (
	"errors"
	"net/http"

	reqdto "tablebook/internal/handler/dto/request"
	"tablebook/internal/usecase/commands"
	"tablebook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TableHandler struct {
	commands commands.TableCommands
	queries  queries.TableQueries
}

func NewTableHandler(cmds commands.TableCommands, qrys queries.TableQueries) *TableHandler {
	return &TableHandler{
		commands: cmds,
		queries:  qrys,
	}
}

// @Summary List tables
// @Description List the floor-plan tables without occupancy (manager only)
// @Tags tables
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.TableView
// @Router /tables [get]
func (h *TableHandler) ListTables(c *gin.Context) {
	views, err := h.queries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, views)
}

// @Summary Create table
// @Description Add a table to the floor plan (manager only)
// @Tags tables
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.TableRequest true "Table definition"
// @Success 201 {object} queries.TableView
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /tables [post]
func (h *TableHandler) CreateTable(c *gin.Context) {
	var req reqdto.TableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.commands.Create(c.Request.Context(), req.ToParams())
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, view)
}

// @Summary Update table
// @Description Change a table's name, capacity, shape or position (manager only)
// @Tags tables
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Table ID"
// @Param request body reqdto.TableRequest true "Table definition"
// @Success 200 {object} queries.TableView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /tables/{id} [put]
func (h *TableHandler) UpdateTable(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req reqdto.TableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.commands.Update(c.Request.Context(), id, req.ToParams())
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Delete table
// @Description Remove a table from the floor plan (manager only)
// @Tags tables
// @Security BearerAuth
// @Param id path string true "Table ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /tables/{id} [delete]
func (h *TableHandler) DeleteTable(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.commands.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TableHandler) parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid table ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}

func (h *TableHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrTableNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Table not found",
		})
	case errors.Is(err, commands.ErrTableValidationFailed):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Table validation failed",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
