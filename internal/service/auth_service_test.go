package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"recipehub/internal/auth"
	apperrors "recipehub/internal/errors"
	"recipehub/internal/model"
)

const testPassword = "Passw0rd!23"

func hashedUser(t *testing.T, id uint, loginID string) *model.User {
	t.Helper()
	hash, err := auth.NewBcryptHasher().Hash(testPassword)
	require.NoError(t, err)
	u := testUser(id, loginID)
	u.PasswordHash = hash
	return u
}

func TestAuthService_Login(t *testing.T) {
	tests := []struct {
		name          string
		loginID       string
		password      string
		setupMock     func(*testing.T, *MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful login",
			loginID:  "123syihyun123",
			password: testPassword,
			setupMock: func(t *testing.T, m *MockUserRepository) {
				m.On("FindByLoginID", mock.Anything, "123syihyun123").Return(hashedUser(t, 1, "123syihyun123"), nil)
				m.On("Save", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
					return u.RefreshToken != ""
				})).Return(nil)
			},
		},
		{
			name:     "unknown user",
			loginID:  "nobody12345",
			password: testPassword,
			setupMock: func(t *testing.T, m *MockUserRepository) {
				m.On("FindByLoginID", mock.Anything, "nobody12345").Return(nil, apperrors.ErrUserNotFound)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			loginID:  "123syihyun123",
			password: "Wr0ngPass!!",
			setupMock: func(t *testing.T, m *MockUserRepository) {
				m.On("FindByLoginID", mock.Anything, "123syihyun123").Return(hashedUser(t, 1, "123syihyun123"), nil)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "withdrawn user",
			loginID:  "123syihyun123",
			password: testPassword,
			setupMock: func(t *testing.T, m *MockUserRepository) {
				u := hashedUser(t, 1, "123syihyun123")
				u.Status = model.UserStatusWithdrawn
				m.On("FindByLoginID", mock.Anything, "123syihyun123").Return(u, nil)
			},
			expectedError: apperrors.ErrUserWithdrawn,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(t, mockRepo)

			jwtService := auth.NewJWTService("test-secret")
			svc := NewAuthService(mockRepo, auth.NewBcryptHasher(), jwtService, new(MockTokenStore))

			pair, err := svc.Login(context.Background(), tt.loginID, tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, pair)
			} else {
				require.NoError(t, err)
				assert.NotEmpty(t, pair.AccessToken)
				assert.NotEmpty(t, pair.RefreshToken)

				claims, err := jwtService.ValidateToken(pair.AccessToken)
				require.NoError(t, err)
				assert.Equal(t, auth.TokenTypeAccess, claims.TokenType)
				assert.Equal(t, uint(1), claims.UserID)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login_StorageFailure(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByLoginID", mock.Anything, "123syihyun123").Return(nil, errors.New("connection refused"))

	svc := NewAuthService(mockRepo, auth.NewBcryptHasher(), auth.NewJWTService("test-secret"), new(MockTokenStore))
	_, err := svc.Login(context.Background(), "123syihyun123", testPassword)

	assert.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestAuthService_Refresh(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")
	refreshToken, err := jwtService.GenerateRefreshToken(1, "123syihyun123")
	require.NoError(t, err)
	accessToken, err := jwtService.GenerateAccessToken(1, "123syihyun123")
	require.NoError(t, err)

	tests := []struct {
		name          string
		token         string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:  "stored token is accepted",
			token: refreshToken,
			setupMock: func(m *MockUserRepository) {
				u := testUser(1, "123syihyun123")
				u.RefreshToken = refreshToken
				m.On("FindByID", mock.Anything, uint(1)).Return(u, nil)
			},
		},
		{
			name:          "access token is rejected",
			token:         accessToken,
			setupMock:     func(m *MockUserRepository) {},
			expectedError: apperrors.ErrInvalidRefreshToken,
		},
		{
			name:          "garbage is rejected",
			token:         "not-a-token",
			setupMock:     func(m *MockUserRepository) {},
			expectedError: apperrors.ErrInvalidRefreshToken,
		},
		{
			name:  "revoked by logout",
			token: refreshToken,
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, uint(1)).Return(testUser(1, "123syihyun123"), nil)
			},
			expectedError: apperrors.ErrInvalidRefreshToken,
		},
		{
			name:  "user gone",
			token: refreshToken,
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, uint(1)).Return(nil, apperrors.ErrUserNotFound)
			},
			expectedError: apperrors.ErrInvalidRefreshToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			svc := NewAuthService(mockRepo, auth.NewBcryptHasher(), jwtService, new(MockTokenStore))
			pair, err := svc.Refresh(context.Background(), tt.token)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, pair)
			} else {
				require.NoError(t, err)
				assert.NotEmpty(t, pair.AccessToken)
				assert.Empty(t, pair.RefreshToken)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Logout(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")
	accessToken, err := jwtService.GenerateAccessToken(1, "123syihyun123")
	require.NoError(t, err)
	claims, err := jwtService.ValidateToken(accessToken)
	require.NoError(t, err)

	user := testUser(1, "123syihyun123")
	user.RefreshToken = "stored"

	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByID", mock.Anything, uint(1)).Return(user, nil)
	mockRepo.On("Save", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		return u.RefreshToken == ""
	})).Return(nil)
	mockStore := new(MockTokenStore)
	mockStore.On("BlacklistAccessToken", mock.Anything, claims.ID, mock.AnythingOfType("time.Duration")).Return()

	svc := NewAuthService(mockRepo, auth.NewBcryptHasher(), jwtService, mockStore)
	resp, err := svc.Logout(context.Background(), 1, claims)

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "로그아웃이 완료되었습니다.", resp.Message)
	mockRepo.AssertExpectations(t)
	mockStore.AssertExpectations(t)
}

func TestAuthService_Authenticate(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")
	parse := func(token string, err error) *auth.Claims {
		require.NoError(t, err)
		claims, err := jwtService.ValidateToken(token)
		require.NoError(t, err)
		return claims
	}
	access := parse(jwtService.GenerateAccessToken(1, "123syihyun123"))
	refresh := parse(jwtService.GenerateRefreshToken(1, "123syihyun123"))

	tests := []struct {
		name          string
		claims        *auth.Claims
		setupMock     func(*MockUserRepository, *MockTokenStore)
		expectedError error
	}{
		{
			name:   "active user",
			claims: access,
			setupMock: func(mRepo *MockUserRepository, mStore *MockTokenStore) {
				mStore.On("IsAccessTokenBlacklisted", mock.Anything, access.ID).Return(false)
				mRepo.On("FindByID", mock.Anything, uint(1)).Return(testUser(1, "123syihyun123"), nil)
			},
		},
		{
			name:          "refresh token",
			claims:        refresh,
			setupMock:     func(*MockUserRepository, *MockTokenStore) {},
			expectedError: apperrors.ErrUnauthorized,
		},
		{
			name:   "blacklisted",
			claims: access,
			setupMock: func(mRepo *MockUserRepository, mStore *MockTokenStore) {
				mStore.On("IsAccessTokenBlacklisted", mock.Anything, access.ID).Return(true)
			},
			expectedError: apperrors.ErrTokenRevoked,
		},
		{
			name:   "unknown user",
			claims: access,
			setupMock: func(mRepo *MockUserRepository, mStore *MockTokenStore) {
				mStore.On("IsAccessTokenBlacklisted", mock.Anything, access.ID).Return(false)
				mRepo.On("FindByID", mock.Anything, uint(1)).Return(nil, apperrors.ErrUserNotFound)
			},
			expectedError: apperrors.ErrUserNotFound,
		},
		{
			name:   "withdrawn user",
			claims: access,
			setupMock: func(mRepo *MockUserRepository, mStore *MockTokenStore) {
				u := testUser(1, "123syihyun123")
				u.Status = model.UserStatusWithdrawn
				mStore.On("IsAccessTokenBlacklisted", mock.Anything, access.ID).Return(false)
				mRepo.On("FindByID", mock.Anything, uint(1)).Return(u, nil)
			},
			expectedError: apperrors.ErrUserWithdrawn,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			mockStore := new(MockTokenStore)
			tt.setupMock(mockRepo, mockStore)

			svc := NewAuthService(mockRepo, auth.NewBcryptHasher(), jwtService, mockStore)
			user, err := svc.Authenticate(context.Background(), tt.claims)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "123syihyun123", user.LoginID)
			}

			mockRepo.AssertExpectations(t)
			mockStore.AssertExpectations(t)
		})
	}
}
