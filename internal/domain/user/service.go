package user

import (
	"context"
)

// UserService defines business logic for user account management
type UserService interface {
	// ListUsers returns all users, password hashes stripped
	ListUsers(ctx context.Context) ([]UserResponse, error)

	// CreateUser registers a new active user (admin action)
	CreateUser(ctx context.Context, req CreateUserRequest) (UserResponse, error)

	// UpdateUser partially updates name/email/active (admin action)
	UpdateUser(ctx context.Context, req UpdateUserRequest) (UserResponse, error)

	// ChangePassword overwrites the password after verifying the current one
	ChangePassword(ctx context.Context, req ChangePasswordRequest) error
}
