package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"recipehub/internal/dto"
	"recipehub/internal/model"
	"recipehub/internal/service"
)

// RecipeHandler handles recipe endpoints.
type RecipeHandler struct {
	svc service.RecipeService
}

// NewRecipeHandler creates a new recipe handler.
func NewRecipeHandler(svc service.RecipeService) *RecipeHandler {
	return &RecipeHandler{svc: svc}
}

// Create godoc
// @Summary Create a recipe
// @Tags recipes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.RecipeRequest true "Recipe"
// @Success 201 {object} dto.RecipeResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /recipe/ [post]
func (h *RecipeHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	var req dto.RecipeRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	resp, err := h.svc.Create(c.Request().Context(), user, req)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(http.StatusCreated, resp)
}

// Get godoc
// @Summary Get a recipe
// @Tags recipes
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 200 {object} dto.RecipeResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /recipe/{id} [get]
func (h *RecipeHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	resp, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// List godoc
// @Summary List recipes
// @Description Ten per page, descending by sortBy (created_at, modified_at, like_count or title).
// @Tags recipes
// @Produce json
// @Param page query int false "1-based page" default(1)
// @Param sortBy query string false "Sort field" default(created_at)
// @Success 200 {object} dto.Page[dto.RecipeResponse]
// @Failure 400 {object} errors.ErrorResponse
// @Router /recipe/ [get]
func (h *RecipeHandler) List(c echo.Context) error {
	page, err := parsePage(c)
	if err != nil {
		return err
	}

	listing, err := h.svc.List(c.Request().Context(), page, c.QueryParam("sortBy"))
	if err != nil {
		return handleError(c, err)
	}
	return writeListing(c, listing)
}

// ListByDate godoc
// @Summary List recipes created within a date range
// @Tags recipes
// @Produce json
// @Param page query int false "1-based page" default(1)
// @Param startdate query string true "yyyy-MM-dd"
// @Param enddate query string true "yyyy-MM-dd"
// @Success 200 {object} dto.Page[dto.RecipeResponse]
// @Failure 400 {object} errors.ErrorResponse
// @Router /recipe/date/ [get]
func (h *RecipeHandler) ListByDate(c echo.Context) error {
	page, err := parsePage(c)
	if err != nil {
		return err
	}

	listing, err := h.svc.ListByDate(c.Request().Context(), page, c.QueryParam("startdate"), c.QueryParam("enddate"))
	if err != nil {
		return handleError(c, err)
	}
	return writeListing(c, listing)
}

// Edit godoc
// @Summary Edit a recipe
// @Description Only fields present in the body change.
// @Tags recipes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Recipe ID"
// @Param request body dto.RecipePatchRequest true "Fields to change"
// @Success 200 {object} dto.RecipeResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /recipe/{id} [patch]
func (h *RecipeHandler) Edit(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req dto.RecipePatchRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	resp, err := h.svc.Edit(c.Request().Context(), id, user, req)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// Delete godoc
// @Summary Delete a recipe and its comments
// @Tags recipes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Recipe ID"
// @Success 200 {object} dto.Response
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /recipe/{id} [delete]
func (h *RecipeHandler) Delete(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	resp, err := h.svc.Delete(c.Request().Context(), id, user)
	if err != nil {
		return handleError(c, err)
	}
	return respond(c, resp)
}

// Like godoc
// @Summary Like a recipe
// @Tags recipes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Recipe ID"
// @Success 200 {object} dto.LikeResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /recipe/{id}/like [post]
func (h *RecipeHandler) Like(c echo.Context) error {
	return h.like(c, h.svc.Like)
}

// Unlike godoc
// @Summary Remove a like from a recipe
// @Tags recipes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Recipe ID"
// @Success 200 {object} dto.LikeResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /recipe/{id}/like [delete]
func (h *RecipeHandler) Unlike(c echo.Context) error {
	return h.like(c, h.svc.Unlike)
}

func (h *RecipeHandler) like(c echo.Context, apply func(ctx context.Context, id uint, user *model.User) (*dto.LikeResponse, error)) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	resp, err := apply(c.Request().Context(), id, user)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// writeListing writes a page, or the notice when nothing matched.
func writeListing(c echo.Context, listing *dto.Listing[dto.RecipeResponse]) error {
	if listing.IsEmpty() {
		return respond(c, dto.OK(listing.Notice))
	}
	return c.JSON(http.StatusOK, listing.Page)
}
