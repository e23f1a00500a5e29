// Package middleware holds the Echo middleware shared by the API routes.
package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"recipehub/internal/auth"
	apperrors "recipehub/internal/errors"
	"recipehub/internal/model"
)

const (
	tokenContextKey  = "jwt_token"
	userContextKey   = "current_user"
	claimsContextKey = "jwt_claims"
)

// Authenticator resolves verified token claims to the acting user.
type Authenticator interface {
	Authenticate(ctx context.Context, claims *auth.Claims) (*model.User, error)
}

// JWT verifies the bearer token signature and expiry and stores the parsed
// token for Identity.
func JWT(signingKey []byte) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey:  signingKey,
		ContextKey:  tokenContextKey,
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return unauthorized(apperrors.ErrUnauthorized, "UNAUTHORIZED")
		},
	})
}

// Identity loads the user behind the verified access token. Refresh tokens,
// revoked tokens, unknown users and withdrawn users are rejected with 401.
func Identity(authenticator Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get(tokenContextKey).(*jwt.Token)
			if !ok {
				return unauthorized(apperrors.ErrUnauthorized, "UNAUTHORIZED")
			}
			claims, ok := token.Claims.(*auth.Claims)
			if !ok {
				return unauthorized(apperrors.ErrUnauthorized, "UNAUTHORIZED")
			}

			user, err := authenticator.Authenticate(c.Request().Context(), claims)
			if err != nil {
				if errors.Is(err, apperrors.ErrUserNotFound) {
					return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
						Error: fmt.Sprintf("User not found with userId: %s", claims.LoginID),
						Code:  "USER_NOT_FOUND",
					})
				}
				httpErr := apperrors.MapErrorToHTTP(err)
				return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
			}

			c.Set(userContextKey, user)
			c.Set(claimsContextKey, claims)
			return next(c)
		}
	}
}

// CurrentUser returns the user set by Identity.
func CurrentUser(c echo.Context) (*model.User, bool) {
	user, ok := c.Get(userContextKey).(*model.User)
	return user, ok && user != nil
}

// CurrentClaims returns the access token claims set by Identity.
func CurrentClaims(c echo.Context) *auth.Claims {
	claims, _ := c.Get(claimsContextKey).(*auth.Claims)
	return claims
}

// SetIdentity stores user and claims the way Identity does.
func SetIdentity(c echo.Context, user *model.User, claims *auth.Claims) {
	c.Set(userContextKey, user)
	c.Set(claimsContextKey, claims)
}

func unauthorized(err error, code string) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
		Error: err.Error(),
		Code:  code,
	})
}
