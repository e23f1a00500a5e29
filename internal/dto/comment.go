package dto

import (
	"time"

	"recipehub/internal/model"
	"recipehub/internal/optional"
)

// CommentRequest represents a new comment.
type CommentRequest struct {
	Content string `json:"content" validate:"notblank"`
}

// CommentPatchRequest represents a comment update.
type CommentPatchRequest struct {
	Content optional.Value[string] `json:"content" validate:"omitempty,notblank"`
}

// CommentResponse is the public view of a comment.
type CommentResponse struct {
	ID        uint      `json:"id"`
	Content   string    `json:"content"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	LikeCount int64     `json:"like_count"`
}

// NewCommentResponse maps a comment with its author loaded.
func NewCommentResponse(c *model.Comment) CommentResponse {
	return CommentResponse{
		ID:        c.ID,
		Content:   c.Content,
		UserID:    c.User.LoginID,
		CreatedAt: c.CreatedAt,
		LikeCount: c.LikeCount,
	}
}
