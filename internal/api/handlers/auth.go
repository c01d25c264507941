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

type AuthHandler struct {
	authService *services.AuthService
	userService *services.UserService
	validator   *validator.Validate
}

func NewAuthHandler(authService *services.AuthService, userService *services.UserService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		userService: userService,
		validator:   validator.New(),
	}
}

// Login authenticates a dispatcher. Unknown-username and wrong-password
// failures produce byte-identical responses.
func (h *AuthHandler) Login(c *gin.Context) {
	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	response, err := h.authService.Login(&req)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCredentials) {
			utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication failed", models.ErrInvalidCredentials)
			return
		}
		log.Printf("Login failed: %v", err)
		utils.ErrorResponse(c, http.StatusInternalServerError, "Authentication failed", nil)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Login successful", response)
}

// Register creates a dispatcher account
func (h *AuthHandler) Register(c *gin.Context) {
	var req services.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	user, err := h.userService.Register(&req)
	if err != nil {
		if errors.Is(err, models.ErrUsernameTaken) {
			utils.ErrorResponse(c, http.StatusConflict, "Failed to register", err)
			return
		}
		log.Printf("Registration failed: %v", err)
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to register", nil)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "User registered successfully", user)
}
