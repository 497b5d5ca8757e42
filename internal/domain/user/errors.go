package user

import "errors"

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrUserEmailExists        = errors.New("email already registered")
	ErrCurrentPasswordWrong   = errors.New("current password is incorrect")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
)
