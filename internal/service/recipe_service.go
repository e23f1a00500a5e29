package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"recipehub/internal/dto"
	apperrors "recipehub/internal/errors"
	"recipehub/internal/model"
	"recipehub/internal/repository"
)

// EmptyListingNotice is returned instead of a page when nothing matched.
const EmptyListingNotice = "먼저 작성하여 소식을 알려보세요!"

var dateLayouts = []string{"2006-01-02", "20060102"}

// RecipeService exposes recipe operations.
type RecipeService interface {
	Create(ctx context.Context, actor *model.User, req dto.RecipeRequest) (*dto.RecipeResponse, error)
	Get(ctx context.Context, id uint) (*dto.RecipeResponse, error)
	Edit(ctx context.Context, id uint, actor *model.User, req dto.RecipePatchRequest) (*dto.RecipeResponse, error)
	Delete(ctx context.Context, id uint, actor *model.User) (*dto.Response, error)
	List(ctx context.Context, page int, sortBy string) (*dto.Listing[dto.RecipeResponse], error)
	ListByDate(ctx context.Context, page int, startDate, endDate string) (*dto.Listing[dto.RecipeResponse], error)
	Like(ctx context.Context, id uint, actor *model.User) (*dto.LikeResponse, error)
	Unlike(ctx context.Context, id uint, actor *model.User) (*dto.LikeResponse, error)
}

type recipeService struct {
	repo     repository.RecipeRepository
	recorder ActivityRecorder
	pageSize int
}

// NewRecipeService builds a RecipeService listing pageSize recipes per page.
func NewRecipeService(repo repository.RecipeRepository, recorder ActivityRecorder, pageSize int) RecipeService {
	if pageSize < 1 {
		pageSize = repository.DefaultPageSize
	}
	return &recipeService{repo: repo, recorder: recorder, pageSize: pageSize}
}

func (s *recipeService) Create(ctx context.Context, actor *model.User, req dto.RecipeRequest) (*dto.RecipeResponse, error) {
	recipe := model.NewRecipe(actor, req.Title, req.Content)
	if err := s.repo.Create(ctx, recipe); err != nil {
		return nil, fmt.Errorf("create recipe: %w", err)
	}

	s.recorder.Record(actor.ID, model.ActivityRecipeCreate, model.TargetRecipe, recipe.ID)
	resp := dto.NewRecipeResponse(recipe)
	return &resp, nil
}

func (s *recipeService) Get(ctx context.Context, id uint) (*dto.RecipeResponse, error) {
	recipe, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.NewRecipeResponse(recipe)
	return &resp, nil
}

// Edit patches the fields present in req. Only the owner may edit.
func (s *recipeService) Edit(ctx context.Context, id uint, actor *model.User, req dto.RecipePatchRequest) (*dto.RecipeResponse, error) {
	recipe, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := model.AssertOwner(recipe, actor); err != nil {
		return nil, err
	}

	recipe.Update(req.Title, req.Content)
	if err := s.repo.Save(ctx, recipe); err != nil {
		return nil, fmt.Errorf("save recipe %d: %w", id, err)
	}

	s.recorder.Record(actor.ID, model.ActivityRecipeEdit, model.TargetRecipe, recipe.ID)
	resp := dto.NewRecipeResponse(recipe)
	return &resp, nil
}

// Delete removes a recipe together with its comments. Only the owner may delete.
func (s *recipeService) Delete(ctx context.Context, id uint, actor *model.User) (*dto.Response, error) {
	recipe, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := model.AssertOwner(recipe, actor); err != nil {
		return nil, err
	}

	if err := s.repo.DeleteWithComments(ctx, id); err != nil {
		return nil, err
	}

	log.Info().Uint("recipe_id", id).Uint("user_id", actor.ID).Msg("recipe deleted")
	s.recorder.Record(actor.ID, model.ActivityRecipeDelete, model.TargetRecipe, id)
	return dto.OK(fmt.Sprintf("%d 번 삭제 완료", id)), nil
}

func (s *recipeService) List(ctx context.Context, page int, sortBy string) (*dto.Listing[dto.RecipeResponse], error) {
	req := repository.PageRequest{Page: page, Size: s.pageSize, SortBy: sortBy}
	req.Normalize()

	recipes, total, err := s.repo.List(ctx, req)
	if err != nil {
		return nil, err
	}
	return toListing(recipes, req, total), nil
}

// ListByDate lists recipes created between the start of startDate and the
// end of endDate, newest first.
func (s *recipeService) ListByDate(ctx context.Context, page int, startDate, endDate string) (*dto.Listing[dto.RecipeResponse], error) {
	start, err := parseDate(startDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDate(endDate)
	if err != nil {
		return nil, err
	}
	if start.After(end) {
		return nil, apperrors.ErrInvalidDateRange
	}
	end = endOfDay(end)

	req := repository.PageRequest{Page: page, Size: s.pageSize}
	req.Normalize()

	recipes, total, err := s.repo.ListByCreatedAtBetween(ctx, start, end, req)
	if err != nil {
		return nil, err
	}
	return toListing(recipes, req, total), nil
}

func (s *recipeService) Like(ctx context.Context, id uint, actor *model.User) (*dto.LikeResponse, error) {
	return s.adjustLikes(ctx, id, actor, true)
}

func (s *recipeService) Unlike(ctx context.Context, id uint, actor *model.User) (*dto.LikeResponse, error) {
	return s.adjustLikes(ctx, id, actor, false)
}

// adjustLikes persists the step the entity took. The stored count is
// returned since concurrent likes may have moved it further.
func (s *recipeService) adjustLikes(ctx context.Context, id uint, actor *model.User, like bool) (*dto.LikeResponse, error) {
	recipe, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	before := recipe.LikeCount
	action := model.ActivityRecipeLike
	if like {
		recipe.AddLike()
	} else {
		recipe.MinusLike()
		action = model.ActivityRecipeUnlike
	}

	count, err := s.repo.AdjustLikes(ctx, id, recipe.LikeCount-before)
	if err != nil {
		return nil, err
	}

	s.recorder.Record(actor.ID, action, model.TargetRecipe, id)
	return &dto.LikeResponse{ID: id, LikeCount: count}, nil
}

func toListing(recipes []model.Recipe, req repository.PageRequest, total int64) *dto.Listing[dto.RecipeResponse] {
	if len(recipes) == 0 {
		return &dto.Listing[dto.RecipeResponse]{Notice: EmptyListingNotice}
	}
	content := make([]dto.RecipeResponse, 0, len(recipes))
	for i := range recipes {
		content = append(content, dto.NewRecipeResponse(&recipes[i]))
	}
	return &dto.Listing[dto.RecipeResponse]{Page: dto.NewPage(content, req.Page, req.Size, total)}
}

// endOfDay returns the last instant of day, which is not always 24h away.
func endOfDay(day time.Time) time.Time {
	return day.AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// parseDate accepts yyyy-MM-dd or yyyyMMdd and returns local midnight.
func parseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidDate, value)
}
