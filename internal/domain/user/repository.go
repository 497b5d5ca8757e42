package user

import (
	"context"
)

type UserRepository interface {
	List(ctx context.Context) ([]User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	Create(ctx context.Context, newUser User) (User, error)
	// ExistsByEmail reports whether email is taken by a user other than excludeID.
	// Pass nil excludeID to check against all users.
	ExistsByEmail(ctx context.Context, email string, excludeID *string) (bool, error)
	Update(ctx context.Context, req UpdateUserRequest) (User, error)
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
}
