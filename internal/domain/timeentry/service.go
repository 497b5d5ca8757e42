package timeentry

import (
	"context"
)

// TimeEntryService defines business logic for clock punches
type TimeEntryService interface {
	// ClockIn opens a new entry; fails if the user already has one open
	ClockIn(ctx context.Context, req ClockInRequest) (TimeEntryResponse, error)

	// ClockOut closes an open entry owned by the caller
	ClockOut(ctx context.Context, req ClockOutRequest) (TimeEntryResponse, error)

	// GetMyTimeEntries lists the caller's entries within the date range
	GetMyTimeEntries(ctx context.Context, userID string, filter TimeEntryFilter) ([]TimeEntryResponse, error)

	// ListTimeEntries lists entries across users (admin scope)
	ListTimeEntries(ctx context.Context, filter TimeEntryFilter) ([]TimeEntryResponse, error)
}
