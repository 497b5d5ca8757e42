package editrequest

import (
	"context"
)

// EditRequestService defines business logic for the correction workflow
type EditRequestService interface {
	// RequestEdit creates a pending request against a closed entry owned by the caller
	RequestEdit(ctx context.Context, req CreateEditRequestRequest) (EditRequestResponse, error)

	// ListEditRequests lists requests across users (admin scope)
	ListEditRequests(ctx context.Context, filter EditRequestFilter) ([]EditRequestResponse, error)

	// GetMyEditRequests lists the caller's own requests
	GetMyEditRequests(ctx context.Context, userID string, filter EditRequestFilter) ([]EditRequestResponse, error)

	// DecideEditRequest approves or rejects a pending request. On approval the
	// referenced time entry's entrada/saida are overwritten with the proposed
	// values in the same transaction.
	DecideEditRequest(ctx context.Context, req DecideEditRequestRequest) (EditRequestResponse, error)
}
