package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pontofacil/ponto-backend-go/internal/domain/timeentry"
	"github.com/pontofacil/ponto-backend-go/internal/handler/http/response"
)

type TimeEntryHandler interface {
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	ListAll(w http.ResponseWriter, r *http.Request)
}

type TimeEntryHandlerImpl struct {
	timeEntryService timeentry.TimeEntryService
}

func NewTimeEntryHandler(timeEntryService timeentry.TimeEntryService) TimeEntryHandler {
	return &TimeEntryHandlerImpl{
		timeEntryService: timeEntryService,
	}
}

// queryParamPtr returns nil when the query parameter is absent or empty.
func queryParamPtr(r *http.Request, name string) *string {
	value := r.URL.Query().Get(name)
	if value == "" {
		return nil
	}
	return &value
}

// ClockIn implements TimeEntryHandler.
func (t *TimeEntryHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var clockInReq timeentry.ClockInRequest

	// Body is optional: clock-in with no observacao is the common case
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&clockInReq); err != nil {
			slog.Error("ClockIn decode error", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}
	clockInReq.UserID = userID

	// Validate DTO
	if err := clockInReq.Validate(); err != nil {
		slog.Error("ClockIn validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	entry, err := t.timeEntryService.ClockIn(r.Context(), clockInReq)
	if err != nil {
		slog.Error("ClockIn service error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Success response
	slog.Info("User clocked in successfully")
	response.Created(w, "Clocked in successfully", entry)
}

// ClockOut implements TimeEntryHandler.
func (t *TimeEntryHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var clockOutReq timeentry.ClockOutRequest

	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&clockOutReq); err != nil {
			slog.Error("ClockOut decode error", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}
	clockOutReq.EntryID = chi.URLParam(r, "id")
	clockOutReq.UserID = userID

	// Validate DTO
	if err := clockOutReq.Validate(); err != nil {
		slog.Error("ClockOut validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	entry, err := t.timeEntryService.ClockOut(r.Context(), clockOutReq)
	if err != nil {
		slog.Error("ClockOut service error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Success response
	slog.Info("User clocked out successfully")
	response.SuccessWithMessage(w, "Clocked out successfully", entry)
}

// ListMine implements TimeEntryHandler.
func (t *TimeEntryHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filter := timeentry.TimeEntryFilter{
		StartDate: queryParamPtr(r, "start_date"),
		EndDate:   queryParamPtr(r, "end_date"),
	}

	entries, err := t.timeEntryService.GetMyTimeEntries(r.Context(), userID, filter)
	if err != nil {
		slog.Error("List my time entries service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}

// ListAll implements TimeEntryHandler.
func (t *TimeEntryHandlerImpl) ListAll(w http.ResponseWriter, r *http.Request) {
	filter := timeentry.TimeEntryFilter{
		StartDate: queryParamPtr(r, "start_date"),
		EndDate:   queryParamPtr(r, "end_date"),
		UserID:    queryParamPtr(r, "user_id"),
	}

	entries, err := t.timeEntryService.ListTimeEntries(r.Context(), filter)
	if err != nil {
		slog.Error("List time entries service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}
