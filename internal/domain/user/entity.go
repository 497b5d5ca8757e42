package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"    // Can manage users and decide edit requests
	RoleEmployee Role = "employee" // Regular employee
)

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin checks if user has admin privileges
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanDecideEditRequests checks if user can approve or reject edit requests
func (u *User) CanDecideEditRequests() bool {
	return u.IsAdmin()
}
