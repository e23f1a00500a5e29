package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"recipehub/internal/auth"
	"recipehub/internal/dto"
	apperrors "recipehub/internal/errors"
	"recipehub/internal/model"
	"recipehub/internal/repository"
)

const msgLoggedOut = "로그아웃이 완료되었습니다."

// AuthService handles authentication operations.
type AuthService interface {
	Login(ctx context.Context, loginID, password string) (*dto.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.TokenPair, error)
	Logout(ctx context.Context, userID uint, access *auth.Claims) (*dto.Response, error)
	Authenticate(ctx context.Context, claims *auth.Claims) (*model.User, error)
}

type authService struct {
	userRepo   repository.UserRepository
	hasher     auth.PasswordHasher
	jwtService *auth.JWTService
	tokenStore auth.TokenStoreInterface
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, hasher auth.PasswordHasher, jwtService *auth.JWTService, tokenStore auth.TokenStoreInterface) AuthService {
	return &authService{
		userRepo:   userRepo,
		hasher:     hasher,
		jwtService: jwtService,
		tokenStore: tokenStore,
	}
}

// Login authenticates a user and returns access and refresh tokens.
// The refresh token is stored on the user row and replaces any previous one.
func (s *authService) Login(ctx context.Context, loginID, password string) (*dto.TokenPair, error) {
	user, err := s.userRepo.FindByLoginID(ctx, loginID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if !s.hasher.Matches(password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if user.IsWithdrawn() {
		return nil, apperrors.ErrUserWithdrawn
	}

	accessToken, err := s.jwtService.GenerateAccessToken(user.ID, user.LoginID)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}
	refreshToken, err := s.jwtService.GenerateRefreshToken(user.ID, user.LoginID)
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	user.UpdateRefreshToken(refreshToken)
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("store refresh token: %w", err)
	}

	log.Info().Uint("user_id", user.ID).Msg("user logged in")
	return &dto.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// Refresh validates a refresh token against the one stored for its user and
// returns a new access token.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.TokenPair, error) {
	claims, err := s.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperrors.ErrInvalidRefreshToken
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidRefreshToken
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user.IsWithdrawn() {
		return nil, apperrors.ErrUserWithdrawn
	}
	if user.RefreshToken == "" || user.RefreshToken != refreshToken {
		return nil, apperrors.ErrInvalidRefreshToken
	}

	accessToken, err := s.jwtService.GenerateAccessToken(user.ID, user.LoginID)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}
	return &dto.TokenPair{AccessToken: accessToken}, nil
}

// Logout revokes the stored refresh token and the presented access token.
func (s *authService) Logout(ctx context.Context, userID uint, access *auth.Claims) (*dto.Response, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.UpdateRefreshToken("")
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("clear refresh token: %w", err)
	}
	revokeAccessToken(ctx, s.tokenStore, s.jwtService, access)

	log.Info().Uint("user_id", user.ID).Msg("user logged out")
	return dto.OK(msgLoggedOut), nil
}

// Authenticate resolves verified access token claims to an ACTIVE user.
func (s *authService) Authenticate(ctx context.Context, claims *auth.Claims) (*model.User, error) {
	if claims == nil || claims.TokenType != auth.TokenTypeAccess {
		return nil, apperrors.ErrUnauthorized
	}
	if s.tokenStore.IsAccessTokenBlacklisted(ctx, claims.ID) {
		return nil, apperrors.ErrTokenRevoked
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if user.IsWithdrawn() {
		return nil, apperrors.ErrUserWithdrawn
	}
	return user, nil
}

// revokeAccessToken blacklists the token id for the rest of its lifetime.
func revokeAccessToken(ctx context.Context, store auth.TokenStoreInterface, jwtService *auth.JWTService, claims *auth.Claims) {
	if claims == nil {
		return
	}
	ttl := jwtService.RemainingTTL(claims)
	if ttl <= 0 {
		return
	}
	store.BlacklistAccessToken(ctx, claims.ID, ttl)
}
