package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/ovasilescu/travel-planner/internal/auth"
	"github.com/ovasilescu/travel-planner/internal/domain"
	"github.com/ovasilescu/travel-planner/internal/metrics"
	"github.com/ovasilescu/travel-planner/internal/repo"
)

// Registration carries the fields submitted on the sign-up form.
// The validate tags mirror the account rules: username 3–50 chars, a
// well-formed email, and a password of at least 6 chars before hashing.
type Registration struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// UserService implements business logic for account operations.
type UserService struct {
	users    repo.UserRepo
	validate *validator.Validate
}

// NewUserService constructs a UserService backed by the provided UserRepo.
func NewUserService(users repo.UserRepo) *UserService {
	return &UserService{users: users, validate: validator.New()}
}

// Register creates a new account.
// The username is trimmed before anything else, so surrounding-whitespace
// variants resolve to the same identity; the uniqueness check runs on the
// trimmed value. The password is bcrypt-hashed before it is persisted.
// Returns domain.ErrValidation for bad input and domain.ErrDuplicateUsername
// when the trimmed username is already taken; no partial write happens in
// either case.
func (s *UserService) Register(ctx context.Context, reg Registration) (domain.User, error) {
	reg.Username = strings.TrimSpace(reg.Username)
	if err := s.validate.Struct(reg); err != nil {
		return domain.User{}, fmt.Errorf("%w: %s", domain.ErrValidation, registrationMessage(err))
	}

	if _, err := s.users.GetByUsername(ctx, reg.Username); err == nil {
		return domain.User{}, fmt.Errorf("service.UserService.Register: %w", domain.ErrDuplicateUsername)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return domain.User{}, fmt.Errorf("service.UserService.Register: %w", err)
	}

	hash, err := auth.HashPassword(reg.Password)
	if err != nil {
		return domain.User{}, fmt.Errorf("service.UserService.Register: %w", err)
	}

	user := domain.User{
		Username:     reg.Username,
		Email:        strings.TrimSpace(reg.Email),
		PasswordHash: hash,
	}
	result, err := s.users.Create(ctx, user)
	if err != nil {
		return domain.User{}, fmt.Errorf("service.UserService.Register: %w", err)
	}
	metrics.UsersRegistered.Inc()
	return result, nil
}

// Authenticate verifies a username/password pair and returns the account.
// Returns domain.ErrInvalidCredentials for an unknown username or a wrong
// password — the two cases are indistinguishable to the caller.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (domain.User, error) {
	user, err := s.users.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.User{}, fmt.Errorf("service.UserService.Authenticate: %w", domain.ErrInvalidCredentials)
		}
		return domain.User{}, fmt.Errorf("service.UserService.Authenticate: %w", err)
	}
	if err := auth.VerifyPassword(password, user.PasswordHash); err != nil {
		return domain.User{}, fmt.Errorf("service.UserService.Authenticate: %w", domain.ErrInvalidCredentials)
	}
	return user, nil
}

// FindByUsername returns the account holding username.
// Returns domain.ErrNotFound if no such account exists.
func (s *UserService) FindByUsername(ctx context.Context, username string) (domain.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return domain.User{}, fmt.Errorf("service.UserService.FindByUsername: %w", err)
	}
	return user, nil
}

// GetByID returns the account with the given ID.
// Returns domain.ErrNotFound if no such account exists.
func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("service.UserService.GetByID: %w", err)
	}
	return user, nil
}

// Delete removes an account by ID.
// Returns domain.ErrNotFound if no such account exists.
func (s *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.UserService.Delete: %w", err)
	}
	return nil
}

// registrationMessage turns the first validator failure into a short
// field-level message, e.g. "username: min".
func registrationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		f := verrs[0]
		return strings.ToLower(f.Field()) + ": " + f.Tag()
	}
	return err.Error()
}
