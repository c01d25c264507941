package handlers

import (
	"errors"
	"log"
	"net/http"

	"tracking-backend/internal/models"
	"tracking-backend/internal/services"
	"tracking-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type LocationHandler struct {
	locationService *services.LocationService
	validator       *validator.Validate
}

func NewLocationHandler(locationService *services.LocationService) *LocationHandler {
	return &LocationHandler{
		locationService: locationService,
		validator:       validator.New(),
	}
}

// ReportLocation accepts a position report from a driver device
func (h *LocationHandler) ReportLocation(c *gin.Context) {
	var req services.ReportLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	err := h.locationService.Report(c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrMissingCoordinates):
			utils.ErrorResponse(c, http.StatusBadRequest, "Invalid location report", err)
		case errors.Is(err, models.ErrDriverNotFound):
			utils.ErrorResponse(c, http.StatusNotFound, "Driver not found", err)
		default:
			log.Printf("Failed to update location: %v", err)
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to update location", nil)
		}
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Driver location updated successfully", nil)
}

// GetLocation returns the last known position for a driver
func (h *LocationHandler) GetLocation(c *gin.Context) {
	position, err := h.locationService.Get(c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, models.ErrDriverNotFound), errors.Is(err, models.ErrLocationNotReported):
			utils.ErrorResponse(c, http.StatusNotFound, "Driver location not found", err)
		default:
			log.Printf("Failed to get location: %v", err)
			utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve location", nil)
		}
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Driver location retrieved successfully", position)
}
