package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"recipehub/internal/auth"
	apperrors "recipehub/internal/errors"
	"recipehub/internal/model"
)

type MockAuthenticator struct {
	mock.Mock
}

func (m *MockAuthenticator) Authenticate(ctx context.Context, claims *auth.Claims) (*model.User, error) {
	args := m.Called(ctx, claims)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func newSecuredEcho(jwtService *auth.JWTService, authn Authenticator) *echo.Echo {
	e := echo.New()
	e.GET("/me", func(c echo.Context) error {
		user, ok := CurrentUser(c)
		if !ok {
			return c.NoContent(http.StatusInternalServerError)
		}
		return c.JSON(http.StatusOK, map[string]string{
			"user_id": user.LoginID,
			"jti":     CurrentClaims(c).ID,
		})
	}, JWT(jwtService.SigningKey()), Identity(authn))
	return e
}

func TestIdentity(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")
	access, err := jwtService.GenerateAccessToken(1, "123syihyun123")
	require.NoError(t, err)
	refresh, err := jwtService.GenerateRefreshToken(1, "123syihyun123")
	require.NoError(t, err)
	foreign, err := auth.NewJWTService("other-secret").GenerateAccessToken(1, "123syihyun123")
	require.NoError(t, err)

	user := model.NewUser("123syihyun123", "hash", "sihyun", "a@b.com", "Hi")
	user.ID = 1

	tests := []struct {
		name       string
		header     string
		setupMock  func(*MockAuthenticator)
		wantStatus int
		wantCode   string
		wantError  string
	}{
		{
			name:   "valid access token",
			header: "Bearer " + access,
			setupMock: func(m *MockAuthenticator) {
				m.On("Authenticate", mock.Anything, mock.AnythingOfType("*auth.Claims")).Return(user, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing header",
			header:     "",
			setupMock:  func(m *MockAuthenticator) {},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "UNAUTHORIZED",
		},
		{
			name:       "wrong signature",
			header:     "Bearer " + foreign,
			setupMock:  func(m *MockAuthenticator) {},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "UNAUTHORIZED",
		},
		{
			name:   "refresh token rejected",
			header: "Bearer " + refresh,
			setupMock: func(m *MockAuthenticator) {
				m.On("Authenticate", mock.Anything, mock.AnythingOfType("*auth.Claims")).Return(nil, apperrors.ErrUnauthorized)
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "UNAUTHORIZED",
		},
		{
			name:   "unknown user",
			header: "Bearer " + access,
			setupMock: func(m *MockAuthenticator) {
				m.On("Authenticate", mock.Anything, mock.AnythingOfType("*auth.Claims")).Return(nil, apperrors.ErrUserNotFound)
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "USER_NOT_FOUND",
			wantError:  "User not found with userId: 123syihyun123",
		},
		{
			name:   "withdrawn user",
			header: "Bearer " + access,
			setupMock: func(m *MockAuthenticator) {
				m.On("Authenticate", mock.Anything, mock.AnythingOfType("*auth.Claims")).Return(nil, apperrors.ErrUserWithdrawn)
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "USER_WITHDRAWN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authn := new(MockAuthenticator)
			tt.setupMock(authn)
			e := newSecuredEcho(jwtService, authn)

			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				var body apperrors.ErrorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, tt.wantCode, body.Code)
				if tt.wantError != "" {
					assert.Equal(t, tt.wantError, body.Error)
				}
			} else {
				assert.Contains(t, rec.Body.String(), "123syihyun123")
			}
			authn.AssertExpectations(t)
		})
	}
}

func TestRateLimit(t *testing.T) {
	e := echo.New()
	e.GET("/ping", func(c echo.Context) error {
		return c.String(http.StatusOK, "pong")
	}, RateLimit(0.0001, 2))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}
