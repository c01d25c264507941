package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tracking-backend/internal/models"
	"tracking-backend/internal/services"
	"tracking-backend/pkg/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func setupDriverRouter(t *testing.T, repo *mockDriverRepo) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	documents, err := storage.NewLocalStore(t.TempDir())
	require.NoError(t, err)

	handler := NewDriverHandler(services.NewDriverService(repo), documents)

	router := gin.New()
	router.GET("/api/v1/drivers", handler.GetDrivers)
	router.POST("/api/v1/drivers", handler.CreateDriver)
	router.GET("/api/v1/drivers/:id", handler.GetDriver)
	router.PUT("/api/v1/drivers/:id", handler.UpdateDriver)
	router.DELETE("/api/v1/drivers/:id", handler.DeleteDriver)
	return router
}

func driverForm(t *testing.T, fields map[string]string, files map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	for field, filename := range files {
		part, err := writer.CreateFormFile(field, filename)
		require.NoError(t, err)
		_, err = part.Write([]byte("binary document content"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestCreateDriver_WithAttachments(t *testing.T) {
	repo := new(mockDriverRepo)
	router := setupDriverRouter(t, repo)

	var inserted *models.Driver
	created := &models.Driver{ID: primitive.NewObjectID(), Name: "Ana"}
	repo.On("Create", mock.AnythingOfType("*models.Driver")).Run(func(args mock.Arguments) {
		inserted = args.Get(0).(*models.Driver)
	}).Return(created, nil)

	body, contentType := driverForm(t, map[string]string{
		"name":          "Ana",
		"vehicleNumber": "B123",
		"phone":         "080",
		"status":        "active",
		"vehicleType":   "car",
	}, map[string]string{
		models.DocumentKindIdentity: "id-card.png",
		models.DocumentKindLicense:  "license.pdf",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/drivers", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, inserted)
	assert.True(t, strings.HasSuffix(inserted.Documents[models.DocumentKindIdentity], ".png"))
	assert.True(t, strings.HasSuffix(inserted.Documents[models.DocumentKindLicense], ".pdf"))
}

func TestCreateDriver_MissingRequiredField(t *testing.T) {
	repo := new(mockDriverRepo)
	router := setupDriverRouter(t, repo)

	body, contentType := driverForm(t, map[string]string{
		"name":  "Ana",
		"phone": "080",
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/drivers", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	repo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestUpdateDriver_WithoutAttachmentsLeavesReferences(t *testing.T) {
	repo := new(mockDriverRepo)
	router := setupDriverRouter(t, repo)

	updated := &models.Driver{ID: primitive.NewObjectID(), Name: "Ana"}
	repo.On("Update", "abc", mock.AnythingOfType("*models.Driver"),
		map[string]string{}).Return(updated, nil)

	body, contentType := driverForm(t, map[string]string{
		"name":          "Ana",
		"vehicleNumber": "B123",
		"phone":         "080",
		"status":        "inactive",
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/drivers/abc", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	// no document keys handed to the store update, so stored refs survive
	repo.AssertExpectations(t)
}

func TestUpdateDriver_NotFound(t *testing.T) {
	repo := new(mockDriverRepo)
	router := setupDriverRouter(t, repo)

	repo.On("Update", "missing", mock.Anything, mock.Anything).Return(nil, models.ErrDriverNotFound)

	body, contentType := driverForm(t, map[string]string{
		"name":          "Ana",
		"vehicleNumber": "B123",
		"phone":         "080",
		"status":        "active",
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/drivers/missing", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetDrivers_VehicleTypeFilter(t *testing.T) {
	repo := new(mockDriverRepo)
	router := setupDriverRouter(t, repo)

	repo.On("FindByVehicleType", "motorcycle").Return([]*models.Driver{
		{ID: primitive.NewObjectID(), Name: "Budi", VehicleType: "motorcycle"},
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/drivers?vehicleType=motorcycle", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []models.Driver `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "motorcycle", resp.Data[0].VehicleType)
	repo.AssertNotCalled(t, "FindAll")
}

func TestGetDrivers_EmptyRegistryReturnsEmptyArray(t *testing.T) {
	repo := new(mockDriverRepo)
	router := setupDriverRouter(t, repo)

	repo.On("FindAll").Return([]*models.Driver{}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/drivers", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	// clients get an empty array, not an absent data field
	assert.Contains(t, w.Body.String(), `"data":[]`)
}

func TestDeleteDriver_NotFound(t *testing.T) {
	repo := new(mockDriverRepo)
	router := setupDriverRouter(t, repo)

	repo.On("Delete", "missing").Return(models.ErrDriverNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/drivers/missing", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
