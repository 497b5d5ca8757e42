package user

import (
	"github.com/pontofacil/ponto-backend-go/internal/pkg/validator"
)

type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (r *CreateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(r.Name) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 255 characters",
		})
	}

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}
	if len(r.Email) > 254 {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must not exceed 254 characters",
		})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	} else if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters long",
		})
	} else if len(r.Password) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must not exceed 255 characters",
		})
	}

	if !validator.IsInSlice(r.Role, []string{string(RoleAdmin), string(RoleEmployee)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of: admin, employee",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateUserRequest struct {
	ID     string  `json:"-"`
	Name   *string `json:"name,omitempty"`
	Email  *string `json:"email,omitempty"`
	Active *bool   `json:"active,omitempty"`
}

func (r *UpdateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil {
		if validator.IsEmpty(*r.Name) {
			errs = append(errs, validator.ValidationError{
				Field:   "name",
				Message: "name must not be empty",
			})
		}
		if len(*r.Name) > 255 {
			errs = append(errs, validator.ValidationError{
				Field:   "name",
				Message: "name must not exceed 255 characters",
			})
		}
	}

	if r.Email != nil {
		if !validator.IsValidEmail(*r.Email) {
			errs = append(errs, validator.ValidationError{
				Field:   "email",
				Message: "email must be a valid email address",
			})
		}
		if len(*r.Email) > 254 {
			errs = append(errs, validator.ValidationError{
				Field:   "email",
				Message: "email must not exceed 254 characters",
			})
		}
	}

	if r.Name == nil && r.Email == nil && r.Active == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "body",
			Message: "at least one of name, email, active must be provided",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ChangePasswordRequest struct {
	ID              string `json:"-"`
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func (r *ChangePasswordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CurrentPassword) {
		errs = append(errs, validator.ValidationError{
			Field:   "current_password",
			Message: "current_password is required",
		})
	}

	if validator.IsEmpty(r.NewPassword) {
		errs = append(errs, validator.ValidationError{
			Field:   "new_password",
			Message: "new_password is required",
		})
	} else if len(r.NewPassword) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "new_password",
			Message: "new_password must be at least 8 characters long",
		})
	} else if len(r.NewPassword) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "new_password",
			Message: "new_password must not exceed 255 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UserResponse never carries the password hash.
type UserResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Active    bool   `json:"active"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}
