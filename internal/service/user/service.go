package user

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/pontofacil/ponto-backend-go/internal/domain/user"
	"github.com/pontofacil/ponto-backend-go/internal/pkg/database"
)

type UserServiceImpl struct {
	db *database.DB
	user.UserRepository
}

func NewUserService(db *database.DB, userRepository user.UserRepository) user.UserService {
	return &UserServiceImpl{
		db:             db,
		UserRepository: userRepository,
	}
}

func (s *UserServiceImpl) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func toResponse(u user.User) user.UserResponse {
	return user.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		Active:    u.Active,
		CreatedAt: u.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: u.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// ListUsers implements user.UserService.
func (s *UserServiceImpl) ListUsers(ctx context.Context) ([]user.UserResponse, error) {
	users, err := s.UserRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	responses := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, toResponse(u))
	}

	return responses, nil
}

// CreateUser implements user.UserService.
func (s *UserServiceImpl) CreateUser(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	exists, err := s.UserRepository.ExistsByEmail(ctx, req.Email, nil)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return user.UserResponse{}, user.ErrUserEmailExists
	}

	passwordHash, err := s.hashPassword(req.Password)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	newUser := user.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: passwordHash,
		Role:         user.Role(req.Role),
		Active:       true,
	}

	created, err := s.UserRepository.Create(ctx, newUser)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to create user: %w", err)
	}

	return toResponse(created), nil
}

// UpdateUser implements user.UserService.
func (s *UserServiceImpl) UpdateUser(ctx context.Context, req user.UpdateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	// Existence first, so an absent id reports not-found rather than conflict
	existing, err := s.UserRepository.GetByID(ctx, req.ID)
	if err != nil {
		return user.UserResponse{}, err
	}

	if req.Email != nil && *req.Email != existing.Email {
		taken, err := s.UserRepository.ExistsByEmail(ctx, *req.Email, &existing.ID)
		if err != nil {
			return user.UserResponse{}, fmt.Errorf("failed to check email: %w", err)
		}
		if taken {
			return user.UserResponse{}, user.ErrUserEmailExists
		}
	}

	updated, err := s.UserRepository.Update(ctx, req)
	if err != nil {
		return user.UserResponse{}, err
	}

	return toResponse(updated), nil
}

// ChangePassword implements user.UserService.
func (s *UserServiceImpl) ChangePassword(ctx context.Context, req user.ChangePasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	existing, err := s.UserRepository.GetByID(ctx, req.ID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(existing.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return user.ErrCurrentPasswordWrong
	}

	newHash, err := s.hashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.UserRepository.UpdatePassword(ctx, existing.ID, newHash); err != nil {
		return err
	}

	return nil
}
