package editrequest

import (
	"context"
	"time"
)

// EditRequestRepository defines data access methods for edit requests.
type EditRequestRepository interface {
	// Create inserts a new pending request (aprovado NULL)
	Create(ctx context.Context, request EditRequest) (EditRequest, error)

	// GetByID retrieves a request by id
	GetByID(ctx context.Context, id string) (EditRequest, error)

	// List returns requests filtered by status, created_at DESC
	List(ctx context.Context, filter EditRequestFilter) ([]EditRequest, error)

	// ListByUser returns the requester's own requests, created_at DESC
	ListByUser(ctx context.Context, userID string, filter EditRequestFilter) ([]EditRequest, error)

	// Decide records the terminal decision. It only touches rows whose
	// aprovado is still NULL; decided is false when none was. The returned
	// request reflects the stored row.
	Decide(ctx context.Context, id string, approved bool, adminID string, decidedAt time.Time) (request EditRequest, decided bool, err error)
}
