package handlers

import (
	"errors"
	"log"
	"net/http"

	"tracking-backend/internal/models"
	"tracking-backend/internal/services"
	"tracking-backend/pkg/storage"
	"tracking-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type DriverHandler struct {
	driverService *services.DriverService
	documents     storage.Store
	validator     *validator.Validate
}

func NewDriverHandler(driverService *services.DriverService, documents storage.Store) *DriverHandler {
	return &DriverHandler{
		driverService: driverService,
		documents:     documents,
		validator:     validator.New(),
	}
}

// GetDrivers lists all drivers, optionally filtered by vehicle type
func (h *DriverHandler) GetDrivers(c *gin.Context) {
	drivers, err := h.driverService.ListDrivers(c.Query("vehicleType"))
	if err != nil {
		log.Printf("Failed to list drivers: %v", err)
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve drivers", nil)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Drivers retrieved successfully", drivers)
}

// GetDriver retrieves a specific driver by ID
func (h *DriverHandler) GetDriver(c *gin.Context) {
	driver, err := h.driverService.GetDriver(c.Param("id"))
	if err != nil {
		if errors.Is(err, models.ErrDriverNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "Driver not found", err)
			return
		}
		log.Printf("Failed to get driver: %v", err)
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve driver", nil)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Driver retrieved successfully", driver)
}

// CreateDriver registers a new driver. The multipart request may carry
// identityDocument and licenseDocument attachments.
func (h *DriverHandler) CreateDriver(c *gin.Context) {
	var req services.CreateDriverRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	documents, err := h.collectDocuments(c)
	if err != nil {
		log.Printf("Failed to store attachments: %v", err)
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to store attachments", nil)
		return
	}

	driver, err := h.driverService.CreateDriver(&req, documents)
	if err != nil {
		log.Printf("Failed to create driver: %v", err)
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to create driver", nil)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Driver created successfully", driver)
}

// UpdateDriver replaces a driver's mutable fields. Attachments are replaced
// only when a new file is supplied; existing references stay otherwise.
func (h *DriverHandler) UpdateDriver(c *gin.Context) {
	var req services.UpdateDriverRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	documents, err := h.collectDocuments(c)
	if err != nil {
		log.Printf("Failed to store attachments: %v", err)
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to store attachments", nil)
		return
	}

	driver, err := h.driverService.UpdateDriver(c.Param("id"), &req, documents)
	if err != nil {
		if errors.Is(err, models.ErrDriverNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "Driver not found", err)
			return
		}
		log.Printf("Failed to update driver: %v", err)
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to update driver", nil)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Driver updated successfully", driver)
}

// DeleteDriver removes a driver record
func (h *DriverHandler) DeleteDriver(c *gin.Context) {
	err := h.driverService.DeleteDriver(c.Param("id"))
	if err != nil {
		if errors.Is(err, models.ErrDriverNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "Driver not found", err)
			return
		}
		log.Printf("Failed to delete driver: %v", err)
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to delete driver", nil)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Driver deleted successfully", nil)
}

// collectDocuments stores each attachment present on the request and returns
// kind -> reference. Absent attachments are simply skipped.
func (h *DriverHandler) collectDocuments(c *gin.Context) (map[string]string, error) {
	documents := make(map[string]string)

	for _, kind := range models.DocumentKinds {
		fileHeader, err := c.FormFile(kind)
		if err != nil {
			continue
		}

		f, err := fileHeader.Open()
		if err != nil {
			return nil, err
		}

		ref, err := h.documents.Save(f, fileHeader.Filename)
		f.Close()
		if err != nil {
			return nil, err
		}

		documents[kind] = ref
	}

	return documents, nil
}
