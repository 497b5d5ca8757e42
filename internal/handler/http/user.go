package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pontofacil/ponto-backend-go/internal/domain/user"
	"github.com/pontofacil/ponto-backend-go/internal/handler/http/response"
)

type UserHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	ChangeMyPassword(w http.ResponseWriter, r *http.Request)
}

type UserHandlerImpl struct {
	userService user.UserService
}

func NewUserHandler(userService user.UserService) UserHandler {
	return &UserHandlerImpl{
		userService: userService,
	}
}

// List implements UserHandler.
func (u *UserHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	users, err := u.userService.ListUsers(r.Context())
	if err != nil {
		slog.Error("List users service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, users)
}

// Create implements UserHandler.
func (u *UserHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq user.CreateUserRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create user decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := createReq.Validate(); err != nil {
		slog.Error("Create user validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	created, err := u.userService.CreateUser(r.Context(), createReq)
	if err != nil {
		slog.Error("Create user service error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Success response
	slog.Info("User created successfully")
	response.Created(w, "User created successfully", created)
}

// Update implements UserHandler.
func (u *UserHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq user.UpdateUserRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update user decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	// Validate DTO
	if err := updateReq.Validate(); err != nil {
		slog.Error("Update user validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	updated, err := u.userService.UpdateUser(r.Context(), updateReq)
	if err != nil {
		slog.Error("Update user service error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Success response
	slog.Info("User updated successfully")
	response.SuccessWithMessage(w, "User updated successfully", updated)
}

// ChangeMyPassword implements UserHandler.
func (u *UserHandlerImpl) ChangeMyPassword(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var changeReq user.ChangePasswordRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&changeReq); err != nil {
		slog.Error("Change password decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	changeReq.ID = userID

	// Validate DTO
	if err := changeReq.Validate(); err != nil {
		slog.Error("Change password validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	if err := u.userService.ChangePassword(r.Context(), changeReq); err != nil {
		slog.Error("Change password service error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Success response
	slog.Info("Password changed successfully")
	response.SuccessWithMessage(w, "Password changed successfully", nil)
}
