package auth

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/pontofacil/ponto-backend-go/internal/domain/auth"
	"github.com/pontofacil/ponto-backend-go/internal/domain/user"
	"github.com/pontofacil/ponto-backend-go/internal/pkg/database"
	"github.com/pontofacil/ponto-backend-go/internal/pkg/jwt"
	"github.com/pontofacil/ponto-backend-go/internal/repository/postgresql"
)

type AuthServiceImpl struct {
	db *database.DB
	user.UserRepository
	jwt.Service
	postgresql.RefreshTokenRepository
}

func NewAuthService(db *database.DB, userRepository user.UserRepository, jwtService jwt.Service, refreshTokenRepository postgresql.RefreshTokenRepository) auth.AuthService {
	return &AuthServiceImpl{
		db:                     db,
		UserRepository:         userRepository,
		Service:                jwtService,
		RefreshTokenRepository: refreshTokenRepository,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, loginReq auth.LoginRequest, sessionReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	if err := loginReq.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	userData, err := a.UserRepository.GetByEmail(ctx, loginReq.Email)
	if err != nil {
		if err == user.ErrUserNotFound {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(loginReq.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	// Deactivated accounts keep their history but cannot sign in
	if !userData.Active {
		return auth.TokenResponse{}, auth.ErrAccountInactive
	}

	var tokenResponse auth.TokenResponse
	err = postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		tokenResponse.AccessToken, tokenResponse.AccessTokenExpiresIn, err = a.Service.GenerateAccessToken(userData.ID, userData.Name, userData.Email, userData.Role)
		if err != nil {
			return fmt.Errorf("failed to create access token: %w", err)
		}
		tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, err = a.Service.GenerateRefreshToken(userData.ID)
		if err != nil {
			return fmt.Errorf("failed to create refresh token: %w", err)
		}

		err = a.CreateRefreshToken(txCtx, userData.ID, tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, sessionReq)
		if err != nil {
			return fmt.Errorf("failed to save refresh token to database: %w", err)
		}
		return nil
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	tokenResponse.User = auth.LoggedUser{
		ID:     userData.ID,
		Name:   userData.Name,
		Email:  userData.Email,
		Role:   string(userData.Role),
		Active: userData.Active,
	}

	return tokenResponse, nil
}

// RefreshToken implements auth.AuthService.
func (a *AuthServiceImpl) RefreshToken(ctx context.Context, req auth.RefreshTokenRequest) (auth.AccessTokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.AccessTokenResponse{}, err
	}

	token, err := a.Service.JWTAuth().Decode(req.RefreshToken)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	tokenType, ok := token.Get("type")
	if !ok || tokenType != "refresh" {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	userIDVal, ok := token.Get("user_id")
	if !ok {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}
	userID, ok := userIDVal.(string)
	if !ok {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	revoked, err := a.IsRefreshTokenRevoked(ctx, req.RefreshToken)
	if err != nil {
		if err == pgx.ErrNoRows {
			return auth.AccessTokenResponse{}, auth.ErrInvalidToken
		}
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to check refresh token: %w", err)
	}
	if revoked {
		return auth.AccessTokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	userData, err := a.UserRepository.GetByID(ctx, userID)
	if err != nil {
		if err == user.ErrUserNotFound {
			return auth.AccessTokenResponse{}, auth.ErrUserNotFound
		}
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	if !userData.Active {
		return auth.AccessTokenResponse{}, auth.ErrAccountInactive
	}

	accessToken, expiresIn, err := a.Service.GenerateAccessToken(userData.ID, userData.Name, userData.Email, userData.Role)
	if err != nil {
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return auth.AccessTokenResponse{
		AccessToken:          accessToken,
		AccessTokenExpiresIn: expiresIn,
	}, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	if err := a.RevokeRefreshToken(ctx, refreshToken); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}
