package handlers

import (
	"errors"

	"rideform/internal/models"
	"rideform/internal/services"
	"rideform/internal/utils"
	"rideform/internal/validators"
	"rideform/pkg/logger"

	"github.com/gin-gonic/gin"
)

type RideRequestHandler struct {
	service services.RequestService
	logger  *logger.Logger
}

func NewRideRequestHandler(service services.RequestService, log *logger.Logger) *RideRequestHandler {
	return &RideRequestHandler{
		service: service,
		logger:  log,
	}
}

// Create accepts a public submission.
func (h *RideRequestHandler) Create(c *gin.Context) {
	var input models.RideRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.UnprocessableResponse(c, "Invalid request body")
		return
	}

	id, err := h.service.Submit(c.Request.Context(), &input)
	if err != nil {
		var validationErrors validators.ValidationErrors
		if errors.As(err, &validationErrors) {
			utils.UnprocessableResponse(c, validationErrors.Error())
			return
		}
		h.logger.WithError(err).Error("submit failed")
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponse(c, gin.H{"id": id})
}

func (h *RideRequestHandler) Health(c *gin.Context) {
	utils.SuccessResponse(c, nil)
}

// Count reports how many requests exist and the participant total.
func (h *RideRequestHandler) Count(c *gin.Context) {
	summary, err := h.service.CountSummary(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("count summary failed")
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponse(c, gin.H{"count": summary.Count, "people": summary.People})
}

// Delete removes a record, guarded by the shared-secret header.
func (h *RideRequestHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	token := c.GetHeader("X-Delete-Token")

	err := h.service.Delete(c.Request.Context(), id, token)
	switch {
	case err == nil:
		utils.SuccessResponse(c, gin.H{"id": id})
	case errors.Is(err, services.ErrForbidden):
		utils.ForbiddenResponse(c)
	case errors.Is(err, services.ErrMalformedID):
		utils.BadRequestResponse(c, "Invalid id")
	case errors.Is(err, services.ErrNotFound):
		utils.NotFoundResponse(c)
	default:
		h.logger.WithError(err).Error("delete failed")
		utils.InternalServerErrorResponse(c)
	}
}
