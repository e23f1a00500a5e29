package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"recipehub/internal/dto"
	"recipehub/internal/middleware"
	"recipehub/internal/service"
)

// UserHandler bundles account HTTP handlers.
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler creates a handler layer.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// Signup godoc
// @Summary Register a new user
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.SignupRequest true "Signup data"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.Response
// @Failure 500 {object} errors.ErrorResponse
// @Router /user/signup [post]
func (h *UserHandler) Signup(c echo.Context) error {
	var req dto.SignupRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	resp, err := h.svc.Signup(c.Request().Context(), req)
	if err != nil {
		return handleError(c, err)
	}
	return respond(c, resp)
}

// GetProfile godoc
// @Summary Get own profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UserProfile
// @Failure 401 {object} errors.ErrorResponse
// @Router /user/profile [get]
func (h *UserHandler) GetProfile(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dto.NewUserProfile(user))
}

// GetUser godoc
// @Summary Get user profile by id
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} dto.UserProfile
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /user/{id} [get]
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	profile, err := h.svc.GetProfile(c.Request().Context(), id)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(http.StatusOK, profile)
}

// UpdateProfile godoc
// @Summary Update own profile
// @Description Requires the current password. new_password is optional.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ProfileUpdateRequest true "Profile data"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.Response
// @Failure 401 {object} errors.ErrorResponse
// @Router /user/profile [patch]
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	var req dto.ProfileUpdateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	resp, err := h.svc.UpdateProfile(c.Request().Context(), user.ID, req)
	if err != nil {
		return handleError(c, err)
	}
	return respond(c, resp)
}

// Withdraw godoc
// @Summary Withdraw own account
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.PasswordRequest true "Current password"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.Response
// @Failure 401 {object} errors.ErrorResponse
// @Router /user/withdraw [post]
func (h *UserHandler) Withdraw(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	var req dto.PasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	resp, err := h.svc.Withdraw(c.Request().Context(), user.ID, req.Password, middleware.CurrentClaims(c))
	if err != nil {
		return handleError(c, err)
	}
	return respond(c, resp)
}
