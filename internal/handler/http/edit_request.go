package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pontofacil/ponto-backend-go/internal/domain/editrequest"
	"github.com/pontofacil/ponto-backend-go/internal/handler/http/response"
)

type EditRequestHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	ListAll(w http.ResponseWriter, r *http.Request)
	Decide(w http.ResponseWriter, r *http.Request)
}

type EditRequestHandlerImpl struct {
	editRequestService editrequest.EditRequestService
}

func NewEditRequestHandler(editRequestService editrequest.EditRequestService) EditRequestHandler {
	return &EditRequestHandlerImpl{
		editRequestService: editRequestService,
	}
}

// Create implements EditRequestHandler.
func (e *EditRequestHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var createReq editrequest.CreateEditRequestRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create edit request decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	createReq.UserID = userID

	// Validate DTO
	if err := createReq.Validate(); err != nil {
		slog.Error("Create edit request validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	created, err := e.editRequestService.RequestEdit(r.Context(), createReq)
	if err != nil {
		slog.Error("Create edit request service error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Success response
	slog.Info("Edit request created successfully")
	response.Created(w, "Edit request created successfully", created)
}

// ListMine implements EditRequestHandler.
func (e *EditRequestHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filter := editrequest.EditRequestFilter{
		Status: queryParamPtr(r, "status"),
	}

	requests, err := e.editRequestService.GetMyEditRequests(r.Context(), userID, filter)
	if err != nil {
		slog.Error("List my edit requests service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// ListAll implements EditRequestHandler.
func (e *EditRequestHandlerImpl) ListAll(w http.ResponseWriter, r *http.Request) {
	filter := editrequest.EditRequestFilter{
		Status: queryParamPtr(r, "status"),
	}

	requests, err := e.editRequestService.ListEditRequests(r.Context(), filter)
	if err != nil {
		slog.Error("List edit requests service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// Decide implements EditRequestHandler.
func (e *EditRequestHandlerImpl) Decide(w http.ResponseWriter, r *http.Request) {
	adminID, err := userIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var decideReq editrequest.DecideEditRequestRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&decideReq); err != nil {
		slog.Error("Decide edit request decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	decideReq.RequestID = chi.URLParam(r, "id")
	decideReq.AdminID = adminID

	// Validate DTO
	if err := decideReq.Validate(); err != nil {
		slog.Error("Decide edit request validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	decided, err := e.editRequestService.DecideEditRequest(r.Context(), decideReq)
	if err != nil {
		slog.Error("Decide edit request service error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Success response
	slog.Info("Edit request decided successfully", "status", decided.Status)
	response.SuccessWithMessage(w, "Edit request processed successfully", decided)
}
