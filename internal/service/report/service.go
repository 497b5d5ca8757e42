package report

import (
	"context"
	"fmt"

	"github.com/pontofacil/ponto-backend-go/internal/domain/report"
)

type ReportServiceImpl struct {
	report.ReportRepository
}

func NewReportService(reportRepository report.ReportRepository) report.ReportService {
	return &ReportServiceImpl{
		ReportRepository: reportRepository,
	}
}

// GetUserSummaries implements report.ReportService.
func (s *ReportServiceImpl) GetUserSummaries(ctx context.Context, filter report.SummaryFilter) ([]report.UserSummary, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	summaries, err := s.ReportRepository.UserSummaries(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get user summaries: %w", err)
	}

	return summaries, nil
}
