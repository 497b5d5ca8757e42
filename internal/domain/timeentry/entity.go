package timeentry

import (
	"time"
)

// TimeEntry is a single clock punch. Entrada is the clock-in instant; Saida
// stays nil while the entry is open. At most one open entry may exist per
// user at any time.
type TimeEntry struct {
	ID         string
	UserID     string
	Entrada    time.Time
	Saida      *time.Time
	Observacao *string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO
	UserName *string
}

// IsOpen reports whether the entry has not been clocked out yet.
func (t *TimeEntry) IsOpen() bool {
	return t.Saida == nil
}

// WorkedMinutes returns the closed entry's duration in whole minutes,
// or nil while the entry is open.
func (t *TimeEntry) WorkedMinutes() *int {
	if t.Saida == nil {
		return nil
	}
	minutes := int(t.Saida.Sub(t.Entrada).Minutes())
	return &minutes
}
