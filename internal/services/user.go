package services

import (
	"errors"
	"time"

	"tracking-backend/internal/models"

	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	userRepo UserRepository
}

func NewUserService(userRepo UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=6"`
}

// Register creates a dispatcher account. The unique index on username backs
// the pre-check, so a race between two registrations still yields exactly
// one account.
func (s *UserService) Register(req *RegisterRequest) (*models.AuthUser, error) {
	existing, err := s.userRepo.FindByUsername(req.Username)
	if err != nil && !errors.Is(err, models.ErrUserNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, models.ErrUsernameTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:  req.Username,
		Password:  string(hashed),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	created, err := s.userRepo.Create(user)
	if err != nil {
		return nil, err
	}

	return &models.AuthUser{
		ID:       created.ID.Hex(),
		Username: created.Username,
	}, nil
}
