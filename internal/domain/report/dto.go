package report

import (
	"github.com/pontofacil/ponto-backend-go/internal/pkg/validator"
)

type SummaryFilter struct {
	StartDate *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate   *string `json:"end_date,omitempty"`   // YYYY-MM-DD
	UserID    *string `json:"user_id,omitempty"`
}

func (f *SummaryFilter) Validate() error {
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

// UserSummary aggregates a user's closed entries over the period: how many
// punches and the total worked minutes (sum of saida - entrada).
type UserSummary struct {
	UserID        string `json:"user_id"`
	UserName      string `json:"user_name"`
	EntryCount    int    `json:"entry_count"`
	WorkedMinutes int64  `json:"worked_minutes"`
}
