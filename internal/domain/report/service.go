package report

import (
	"context"
)

// ReportService exposes aggregate views for administrators
type ReportService interface {
	GetUserSummaries(ctx context.Context, filter SummaryFilter) ([]UserSummary, error)
}
