package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/pontofacil/ponto-backend-go/internal/domain/auth"
	"github.com/pontofacil/ponto-backend-go/internal/handler/http/response"
	"github.com/pontofacil/ponto-backend-go/internal/pkg/jwt"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	RefreshToken(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	jwtService  jwt.Service
	authService auth.AuthService
}

func NewAuthHandler(jwtService jwt.Service, authService auth.AuthService) AuthHandler {
	return &AuthHandlerImpl{
		jwtService:  jwtService,
		authService: authService,
	}
}

// Login implements AuthHandler.
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.LoginRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := loginReq.Validate(); err != nil {
		slog.Error("Login validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	var sessionTrackReq auth.SessionTrackingRequest
	sessionTrackReq.IPAddress = r.RemoteAddr
	sessionTrackReq.UserAgent = r.UserAgent()
	tokenResponse, err := a.authService.Login(r.Context(), loginReq, sessionTrackReq)
	if err != nil {
		slog.Error("Login service error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Success response
	refreshTokenCookie := a.jwtService.RefreshTokenCookie(tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn)
	http.SetCookie(w, refreshTokenCookie)
	slog.Info("User logged in successfully")
	response.Created(w, "User logged in successfully", tokenResponse)
}

// RefreshToken implements AuthHandler.
func (a *AuthHandlerImpl) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var refreshTokenReq auth.RefreshTokenRequest

	// Try to get refresh token from cookie first (preferred method)
	refreshTokenCookie, err := r.Cookie("refresh_token")
	if err == nil && refreshTokenCookie.Value != "" {
		refreshTokenReq.RefreshToken = refreshTokenCookie.Value
	} else {
		// Fallback: try to get from JSON body
		if err := json.NewDecoder(r.Body).Decode(&refreshTokenReq); err != nil {
			slog.Error("Refresh Token decode error", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	// Validate DTO
	if err := refreshTokenReq.Validate(); err != nil {
		slog.Error("Refresh Token validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Call service
	tokenResponse, err := a.authService.RefreshToken(r.Context(), refreshTokenReq)
	if err != nil {
		slog.Error("Refresh Token service error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Success response
	slog.Info("Token refreshed successfully")
	response.Created(w, "Token refreshed successfully", tokenResponse)
}

// Logout implements AuthHandler.
func (a *AuthHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	refreshToken := ""
	if refreshTokenCookie, err := r.Cookie("refresh_token"); err == nil {
		refreshToken = refreshTokenCookie.Value
	}

	if err := a.authService.Logout(r.Context(), refreshToken); err != nil {
		slog.Error("Logout service error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Clear the refresh token cookie
	clearedCookie := &http.Cookie{
		Name:     "refresh_token",
		Value:    "",
		Path:     "/api/v1/auth",
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteStrictMode,
	}
	http.SetCookie(w, clearedCookie)
	response.SuccessWithMessage(w, "User logged out successfully", nil)
}
