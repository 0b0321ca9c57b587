package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/yukikurage/task-tracker/internal/constants"
	"github.com/yukikurage/task-tracker/internal/models"
	"github.com/yukikurage/task-tracker/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService exposes read access to users and the registration used by
// the seed command
type UserService struct {
	userRepo repository.UserRepository
	validate *validator.Validate
}

// NewUserService creates a new UserService
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// RegisterUserInput represents the information needed to create a user
type RegisterUserInput struct {
	Username string
	Name     string
	Email    string
	Mobile   string
	Password string
}

// ListUsers returns a page of users ordered by ID
func (s *UserService) ListUsers(ctx context.Context, page, pageSize int) ([]models.User, int64, error) {
	users, total, err := s.userRepo.List(ctx, page, pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}

	return users, total, nil
}

// GetUser returns a user by ID
func (s *UserService) GetUser(ctx context.Context, userID uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}

// Register creates a user with a bcrypt-hashed password
func (s *UserService) Register(ctx context.Context, input RegisterUserInput) (*models.User, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, ErrUsernameRequired
	}
	if len(input.Password) < constants.MinPasswordLength {
		return nil, ErrPasswordTooShort
	}

	email := strings.TrimSpace(input.Email)
	verr := NewValidationError()
	switch {
	case email == "":
		verr.Add("email", MsgFieldRequired)
	case s.validate.Var(email, "email") != nil:
		verr.Add("email", MsgInvalidEmail)
	}
	if len(input.Mobile) > constants.MaxMobileLength {
		verr.Add("mobile", fmt.Sprintf(MsgMaxLength, constants.MaxMobileLength))
	}
	if verr.HasErrors() {
		return nil, verr
	}

	if _, err := s.userRepo.FindByUsername(ctx, username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		verr.Add("email", MsgEmailTaken)
		return nil, verr
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		Name:         input.Name,
		Email:        email,
		Mobile:       input.Mobile,
		PasswordHash: string(hashedPassword),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}
