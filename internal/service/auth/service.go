package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/patpaw111/web-absn/internal/domain/auth"
	"github.com/patpaw111/web-absn/internal/domain/user"
	"github.com/patpaw111/web-absn/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	userRepo user.UserRepository
	jwt      jwt.Service
}

func NewAuthService(userRepo user.UserRepository, jwtService jwt.Service) *AuthServiceImpl {
	return &AuthServiceImpl{
		userRepo: userRepo,
		jwt:      jwtService,
	}
}

func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	userData, err := a.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user: %w", err)
	}

	if userData.PasswordHash == nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return a.tokenPair(userData)
}

func (a *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.TokenResponse, error) {
	userID, err := a.jwt.ValidateRefreshToken(refreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	userData, err := a.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.TokenResponse{}, auth.ErrUserNotFound
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user: %w", err)
	}

	return a.tokenPair(userData)
}

func (a *AuthServiceImpl) tokenPair(userData user.User) (auth.TokenResponse, error) {
	var tokenResponse auth.TokenResponse
	var err error

	tokenResponse.AccessToken, tokenResponse.AccessTokenExpiresIn, err = a.jwt.GenerateAccessToken(userData.ID, userData.Email, userData.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, err = a.jwt.GenerateRefreshToken(userData.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create refresh token: %w", err)
	}

	return tokenResponse, nil
}
