package timeentry

import (
	"context"
	"time"
)

// TimeEntryRepository defines data access methods for time entries.
// Owner-scoped methods take the user id to prevent acting on entries that
// belong to someone else.
type TimeEntryRepository interface {
	// Create inserts a new entry (open, saida NULL)
	Create(ctx context.Context, entry TimeEntry) (TimeEntry, error)

	// GetByIDAndUser retrieves an entry only if it is owned by userID
	GetByIDAndUser(ctx context.Context, id string, userID string) (TimeEntry, error)

	// GetOpenEntry returns the user's open entry, or nil when none exists
	GetOpenEntry(ctx context.Context, userID string) (*TimeEntry, error)

	// Close sets saida and merges the optional observacao
	Close(ctx context.Context, id string, saida time.Time, observacao *string) (TimeEntry, error)

	// ListByUser returns the user's entries, date-filtered, entrada DESC
	ListByUser(ctx context.Context, userID string, filter TimeEntryFilter) ([]TimeEntry, error)

	// ListAll returns entries across users (admin), date/user-filtered, entrada DESC
	ListAll(ctx context.Context, filter TimeEntryFilter) ([]TimeEntry, error)

	// OverwriteTimes replaces entrada/saida. Used when an edit request is approved.
	OverwriteTimes(ctx context.Context, id string, entrada time.Time, saida time.Time) error
}
