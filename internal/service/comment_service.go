package service

import (
	"context"
	"fmt"

	"recipehub/internal/dto"
	apperrors "recipehub/internal/errors"
	"recipehub/internal/model"
	"recipehub/internal/repository"
)

const (
	msgCommentCreated = "comment가 등록되었습니다."
	msgCommentUpdated = "comment가 수정되었습니다."
	msgCommentDeleted = "댓글이 삭제되었습니다"
)

// CommentService exposes comment operations scoped to a recipe.
type CommentService interface {
	Create(ctx context.Context, recipeID uint, actor *model.User, req dto.CommentRequest) (*dto.Response, error)
	List(ctx context.Context, recipeID uint) ([]dto.CommentResponse, error)
	Update(ctx context.Context, recipeID, commentID uint, actor *model.User, req dto.CommentPatchRequest) (*dto.Response, error)
	Delete(ctx context.Context, recipeID, commentID uint, actor *model.User) (*dto.Response, error)
	Like(ctx context.Context, recipeID, commentID uint, actor *model.User) (*dto.LikeResponse, error)
	Unlike(ctx context.Context, recipeID, commentID uint, actor *model.User) (*dto.LikeResponse, error)
}

type commentService struct {
	comments repository.CommentRepository
	recipes  repository.RecipeRepository
	recorder ActivityRecorder
}

// NewCommentService builds a CommentService.
func NewCommentService(comments repository.CommentRepository, recipes repository.RecipeRepository, recorder ActivityRecorder) CommentService {
	return &commentService{comments: comments, recipes: recipes, recorder: recorder}
}

func (s *commentService) Create(ctx context.Context, recipeID uint, actor *model.User, req dto.CommentRequest) (*dto.Response, error) {
	recipe, err := s.recipes.FindByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	comment := model.NewComment(recipe, actor, req.Content)
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	s.recorder.Record(actor.ID, model.ActivityCommentCreate, model.TargetComment, comment.ID)
	return dto.OK(msgCommentCreated), nil
}

func (s *commentService) List(ctx context.Context, recipeID uint) ([]dto.CommentResponse, error) {
	if _, err := s.recipes.FindByID(ctx, recipeID); err != nil {
		return nil, err
	}

	comments, err := s.comments.FindByRecipeID(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.CommentResponse, 0, len(comments))
	for i := range comments {
		resp = append(resp, dto.NewCommentResponse(&comments[i]))
	}
	return resp, nil
}

func (s *commentService) Update(ctx context.Context, recipeID, commentID uint, actor *model.User, req dto.CommentPatchRequest) (*dto.Response, error) {
	comment, err := s.load(ctx, recipeID, commentID)
	if err != nil {
		return nil, err
	}
	if err := model.AssertOwner(comment, actor); err != nil {
		return nil, err
	}

	comment.Update(req.Content)
	if err := s.comments.Save(ctx, comment); err != nil {
		return nil, fmt.Errorf("save comment %d: %w", commentID, err)
	}

	s.recorder.Record(actor.ID, model.ActivityCommentEdit, model.TargetComment, commentID)
	return dto.OK(msgCommentUpdated), nil
}

func (s *commentService) Delete(ctx context.Context, recipeID, commentID uint, actor *model.User) (*dto.Response, error) {
	comment, err := s.load(ctx, recipeID, commentID)
	if err != nil {
		return nil, err
	}
	if err := model.AssertOwner(comment, actor); err != nil {
		return nil, err
	}

	if err := s.comments.Delete(ctx, commentID); err != nil {
		return nil, err
	}

	s.recorder.Record(actor.ID, model.ActivityCommentDelete, model.TargetComment, commentID)
	return dto.OK(msgCommentDeleted), nil
}

func (s *commentService) Like(ctx context.Context, recipeID, commentID uint, actor *model.User) (*dto.LikeResponse, error) {
	return s.adjustLikes(ctx, recipeID, commentID, actor, true)
}

func (s *commentService) Unlike(ctx context.Context, recipeID, commentID uint, actor *model.User) (*dto.LikeResponse, error) {
	return s.adjustLikes(ctx, recipeID, commentID, actor, false)
}

func (s *commentService) adjustLikes(ctx context.Context, recipeID, commentID uint, actor *model.User, like bool) (*dto.LikeResponse, error) {
	comment, err := s.load(ctx, recipeID, commentID)
	if err != nil {
		return nil, err
	}

	before := comment.LikeCount
	action := model.ActivityCommentLike
	if like {
		comment.AddLike()
	} else {
		comment.MinusLike()
		action = model.ActivityCommentUnlike
	}

	count, err := s.comments.AdjustLikes(ctx, commentID, comment.LikeCount-before)
	if err != nil {
		return nil, err
	}

	s.recorder.Record(actor.ID, action, model.TargetComment, commentID)
	return &dto.LikeResponse{ID: commentID, LikeCount: count}, nil
}

// load fetches a comment addressed through recipeID. The recipe must exist
// and be the comment's parent.
func (s *commentService) load(ctx context.Context, recipeID, commentID uint) (*model.Comment, error) {
	if _, err := s.recipes.FindByID(ctx, recipeID); err != nil {
		return nil, err
	}
	comment, err := s.comments.FindByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if !comment.BelongsTo(recipeID) {
		return nil, apperrors.ErrCommentRecipeMismatch
	}
	return comment, nil
}
