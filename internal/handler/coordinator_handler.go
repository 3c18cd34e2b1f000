package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edubot/edubot-api/internal/service"
	appErrors "github.com/edubot/edubot-api/pkg/errors"
	"github.com/edubot/edubot-api/pkg/response"
)

// CoordinatorHandler exposes coordinator registry endpoints.
type CoordinatorHandler struct {
	coordinators *service.CoordinatorService
}

// NewCoordinatorHandler constructs CoordinatorHandler.
func NewCoordinatorHandler(coordinators *service.CoordinatorService) *CoordinatorHandler {
	return &CoordinatorHandler{coordinators: coordinators}
}

// Create godoc
// @Summary Register a coordinator
// @Tags Coordinadores
// @Accept json
// @Produce json
// @Param payload body service.CreateCoordinatorRequest true "Coordinator payload"
// @Success 201 {object} response.Envelope
// @Router /coordinadores [post]
func (h *CoordinatorHandler) Create(c *gin.Context) {
	var req service.CreateCoordinatorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	coordinator, err := h.coordinators.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, coordinator)
}

// Get godoc
// @Summary Coordinator detail
// @Tags Coordinadores
// @Produce json
// @Param id path string true "Coordinator ID"
// @Success 200 {object} response.Envelope
// @Router /coordinadores/{id} [get]
func (h *CoordinatorHandler) Get(c *gin.Context) {
	coordinator, err := h.coordinators.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, coordinator, nil)
}
