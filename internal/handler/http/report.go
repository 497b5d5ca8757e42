package http

import (
	"log/slog"
	"net/http"

	"github.com/pontofacil/ponto-backend-go/internal/domain/report"
	"github.com/pontofacil/ponto-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	UserSummaries(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{
		reportService: reportService,
	}
}

// UserSummaries implements ReportHandler.
func (h *ReportHandlerImpl) UserSummaries(w http.ResponseWriter, r *http.Request) {
	filter := report.SummaryFilter{
		StartDate: queryParamPtr(r, "start_date"),
		EndDate:   queryParamPtr(r, "end_date"),
		UserID:    queryParamPtr(r, "user_id"),
	}

	summaries, err := h.reportService.GetUserSummaries(r.Context(), filter)
	if err != nil {
		slog.Error("User summaries service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, summaries)
}
