package timeentry

import "errors"

var (
	ErrOpenEntryExists    = errors.New("an open time entry already exists, clock out before clocking in again")
	ErrEntryNotFound      = errors.New("time entry not found")
	ErrEntryAlreadyClosed = errors.New("time entry has already been closed")
)
