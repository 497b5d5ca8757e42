package timeentry

import (
	"github.com/pontofacil/ponto-backend-go/internal/pkg/validator"
)

type ClockInRequest struct {
	UserID     string  `json:"-"`
	Observacao *string `json:"observacao,omitempty"`
}

func (r *ClockInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}

	if r.Observacao != nil && len(*r.Observacao) > 1000 {
		errs = append(errs, validator.ValidationError{
			Field:   "observacao",
			Message: "observacao must not exceed 1000 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ClockOutRequest struct {
	EntryID    string  `json:"-"`
	UserID     string  `json:"-"`
	Observacao *string `json:"observacao,omitempty"`
}

func (r *ClockOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EntryID) {
		errs = append(errs, validator.ValidationError{
			Field:   "entry_id",
			Message: "entry_id is required",
		})
	}

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}

	if r.Observacao != nil && len(*r.Observacao) > 1000 {
		errs = append(errs, validator.ValidationError{
			Field:   "observacao",
			Message: "observacao must not exceed 1000 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// TimeEntryFilter narrows listings to an inclusive calendar-date range on
// entrada. Results are always sorted by entrada descending.
type TimeEntryFilter struct {
	StartDate *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate   *string `json:"end_date,omitempty"`   // YYYY-MM-DD

	// Admin listing only
	UserID *string `json:"user_id,omitempty"`
}

func (f *TimeEntryFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.StartDate != nil && *f.StartDate != "" {
		if _, valid := validator.IsValidDate(*f.StartDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.EndDate != nil && *f.EndDate != "" {
		if _, valid := validator.IsValidDate(*f.EndDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TimeEntryResponse struct {
	ID            string  `json:"id"`
	UserID        string  `json:"user_id"`
	UserName      *string `json:"user_name,omitempty"`
	Entrada       string  `json:"entrada"`
	Saida         *string `json:"saida,omitempty"`
	Observacao    *string `json:"observacao,omitempty"`
	WorkedMinutes *int    `json:"worked_minutes,omitempty"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}
