package response

import (
	"errors"
	"net/http"

	"github.com/pontofacil/ponto-backend-go/internal/domain/auth"
	"github.com/pontofacil/ponto-backend-go/internal/domain/editrequest"
	"github.com/pontofacil/ponto-backend-go/internal/domain/timeentry"
	"github.com/pontofacil/ponto-backend-go/internal/domain/user"
	"github.com/pontofacil/ponto-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrAccountInactive):
		Unauthorized(w, "Account is deactivated")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrCurrentPasswordWrong):
		Unauthorized(w, "Current password is incorrect")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Time entry domain errors
	case errors.Is(err, timeentry.ErrEntryNotFound):
		NotFound(w, "Time entry not found")
	case errors.Is(err, timeentry.ErrOpenEntryExists):
		Conflict(w, "An open time entry already exists")
	case errors.Is(err, timeentry.ErrEntryAlreadyClosed):
		Conflict(w, "Time entry has already been closed")

	// Edit request domain errors
	case errors.Is(err, editrequest.ErrRequestNotFound):
		NotFound(w, "Edit request not found")
	case errors.Is(err, editrequest.ErrRequestAlreadyProcessed):
		Conflict(w, "Edit request already processed")
	case errors.Is(err, editrequest.ErrEntryStillOpen):
		ValidationError(w, map[string]string{"ponto_id": "time entry is still open"})

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
