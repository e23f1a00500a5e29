package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"recipehub/internal/dto"
	"recipehub/internal/middleware"
	"recipehub/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Signin godoc
// @Summary Login user
// @Description Returns an access and a refresh token. The access token is also set in the Authorization header.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.SigninRequest true "Login credentials"
// @Success 200 {object} dto.TokenPair
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /user/signin [post]
func (h *AuthHandler) Signin(c echo.Context) error {
	var req dto.SigninRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	pair, err := h.authService.Login(c.Request().Context(), req.UserID, req.Password)
	if err != nil {
		return handleError(c, err)
	}

	c.Response().Header().Set(echo.HeaderAuthorization, "Bearer "+pair.AccessToken)
	return c.JSON(http.StatusOK, pair)
}

// Refresh godoc
// @Summary Refresh access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshRequest true "Refresh token"
// @Success 200 {object} dto.TokenPair
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /user/refresh [post]
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req dto.RefreshRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	pair, err := h.authService.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return handleError(c, err)
	}

	c.Response().Header().Set(echo.HeaderAuthorization, "Bearer "+pair.AccessToken)
	return c.JSON(http.StatusOK, pair)
}

// Logout godoc
// @Summary Logout user
// @Description Revokes the stored refresh token and the presented access token.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.Response
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /user/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	resp, err := h.authService.Logout(c.Request().Context(), user.ID, middleware.CurrentClaims(c))
	if err != nil {
		return handleError(c, err)
	}
	return respond(c, resp)
}
