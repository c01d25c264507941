package services

import (
	"tracking-backend/internal/models"
	"tracking-backend/pkg/jwt"

	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	userRepo UserRepository
	jwtUtil  *jwt.JWTUtil
}

func NewAuthService(userRepo UserRepository, jwtUtil *jwt.JWTUtil) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		jwtUtil:  jwtUtil,
	}
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	User  *models.AuthUser `json:"user"`
	Token string           `json:"token"`
}

// Login verifies the credentials and returns the sanitized identity with a
// session token. An unknown username and a wrong password produce the same
// ErrInvalidCredentials so callers cannot probe which usernames exist.
func (s *AuthService) Login(req *LoginRequest) (*LoginResponse, error) {
	user, err := s.userRepo.FindByUsername(req.Username)
	if err != nil {
		return nil, models.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, models.ErrInvalidCredentials
	}

	token, err := s.jwtUtil.GenerateToken(user.ID.Hex(), user.Username)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		User: &models.AuthUser{
			ID:       user.ID.Hex(),
			Username: user.Username,
		},
		Token: token,
	}, nil
}
