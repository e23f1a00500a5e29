package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"recipehub/internal/dto"
	"recipehub/internal/model"
	"recipehub/internal/service"
)

// CommentHandler handles comment endpoints nested under a recipe.
type CommentHandler struct {
	svc service.CommentService
}

// NewCommentHandler creates a new comment handler.
func NewCommentHandler(svc service.CommentService) *CommentHandler {
	return &CommentHandler{svc: svc}
}

// Create godoc
// @Summary Comment on a recipe
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Recipe ID"
// @Param request body dto.CommentRequest true "Comment"
// @Success 200 {object} dto.Response
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /recipe/{id}/comment [post]
func (h *CommentHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	recipeID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req dto.CommentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	resp, err := h.svc.Create(c.Request().Context(), recipeID, user, req)
	if err != nil {
		return handleError(c, err)
	}
	return respond(c, resp)
}

// List godoc
// @Summary List the comments of a recipe
// @Tags comments
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 200 {array} dto.CommentResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /recipe/{id}/comment [get]
func (h *CommentHandler) List(c echo.Context) error {
	recipeID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	comments, err := h.svc.List(c.Request().Context(), recipeID)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(http.StatusOK, comments)
}

// Update godoc
// @Summary Edit a comment
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Recipe ID"
// @Param commentId path int true "Comment ID"
// @Param request body dto.CommentPatchRequest true "Fields to change"
// @Success 200 {object} dto.Response
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /recipe/{id}/comment/{commentId} [patch]
func (h *CommentHandler) Update(c echo.Context) error {
	user, recipeID, commentID, err := commentTarget(c)
	if err != nil {
		return err
	}
	var req dto.CommentPatchRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	resp, err := h.svc.Update(c.Request().Context(), recipeID, commentID, user, req)
	if err != nil {
		return handleError(c, err)
	}
	return respond(c, resp)
}

// Delete godoc
// @Summary Delete a comment
// @Tags comments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Recipe ID"
// @Param commentId path int true "Comment ID"
// @Success 200 {object} dto.Response
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /recipe/{id}/comment/{commentId} [delete]
func (h *CommentHandler) Delete(c echo.Context) error {
	user, recipeID, commentID, err := commentTarget(c)
	if err != nil {
		return err
	}

	resp, err := h.svc.Delete(c.Request().Context(), recipeID, commentID, user)
	if err != nil {
		return handleError(c, err)
	}
	return respond(c, resp)
}

// Like godoc
// @Summary Like a comment
// @Tags comments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Recipe ID"
// @Param commentId path int true "Comment ID"
// @Success 200 {object} dto.LikeResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /recipe/{id}/comment/{commentId}/like [post]
func (h *CommentHandler) Like(c echo.Context) error {
	return h.like(c, h.svc.Like)
}

// Unlike godoc
// @Summary Remove a like from a comment
// @Tags comments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Recipe ID"
// @Param commentId path int true "Comment ID"
// @Success 200 {object} dto.LikeResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /recipe/{id}/comment/{commentId}/like [delete]
func (h *CommentHandler) Unlike(c echo.Context) error {
	return h.like(c, h.svc.Unlike)
}

func (h *CommentHandler) like(c echo.Context, apply func(ctx context.Context, recipeID, commentID uint, user *model.User) (*dto.LikeResponse, error)) error {
	user, recipeID, commentID, err := commentTarget(c)
	if err != nil {
		return err
	}

	resp, err := apply(c.Request().Context(), recipeID, commentID, user)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

func commentTarget(c echo.Context) (*model.User, uint, uint, error) {
	user, err := currentUser(c)
	if err != nil {
		return nil, 0, 0, err
	}
	recipeID, err := parseID(c, "id")
	if err != nil {
		return nil, 0, 0, err
	}
	commentID, err := parseID(c, "commentId")
	if err != nil {
		return nil, 0, 0, err
	}
	return user, recipeID, commentID, nil
}
