package auth

import "errors"

var (
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrAccountInactive     = errors.New("account is deactivated")
	ErrInvalidToken        = errors.New("invalid or expired token")
	ErrRefreshTokenRevoked = errors.New("refresh token has been revoked")
	ErrUserNotFound        = errors.New("user not found")
)
