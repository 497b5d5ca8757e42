package editrequest

import "errors"

var (
	ErrRequestNotFound         = errors.New("edit request not found")
	ErrRequestAlreadyProcessed = errors.New("edit request has already been approved or rejected")
	ErrEntryStillOpen          = errors.New("cannot request an edit for a time entry that has not been closed")
)
