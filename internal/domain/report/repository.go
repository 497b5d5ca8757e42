package report

import (
	"context"
)

type ReportRepository interface {
	// UserSummaries aggregates closed time entries per user over the
	// inclusive date range, users with no closed entries omitted.
	UserSummaries(ctx context.Context, filter SummaryFilter) ([]UserSummary, error)
}
