package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActivityAction names a mutating operation recorded in the activity log.
type ActivityAction string

const (
	ActivityUserSignup        ActivityAction = "USER_SIGNUP"
	ActivityUserProfileUpdate ActivityAction = "USER_PROFILE_UPDATE"
	ActivityUserWithdraw      ActivityAction = "USER_WITHDRAW"
	ActivityRecipeCreate      ActivityAction = "RECIPE_CREATE"
	ActivityRecipeEdit        ActivityAction = "RECIPE_EDIT"
	ActivityRecipeDelete      ActivityAction = "RECIPE_DELETE"
	ActivityRecipeLike        ActivityAction = "RECIPE_LIKE"
	ActivityRecipeUnlike      ActivityAction = "RECIPE_UNLIKE"
	ActivityCommentCreate     ActivityAction = "COMMENT_CREATE"
	ActivityCommentEdit       ActivityAction = "COMMENT_EDIT"
	ActivityCommentDelete     ActivityAction = "COMMENT_DELETE"
	ActivityCommentLike       ActivityAction = "COMMENT_LIKE"
	ActivityCommentUnlike     ActivityAction = "COMMENT_UNLIKE"
)

// Target types for ActivityLog.TargetType.
const (
	TargetUser    = "user"
	TargetRecipe  = "recipe"
	TargetComment = "comment"
)

// ActivityLog is an append-only audit entry.
// Entries are written asynchronously and purged after the retention period.
type ActivityLog struct {
	ID         uuid.UUID      `json:"id" gorm:"type:char(36);primaryKey"`
	UserID     uint           `json:"user_id" gorm:"not null;index"`
	Action     ActivityAction `json:"action" gorm:"type:varchar(40);not null;index"`
	TargetType string         `json:"target_type" gorm:"type:varchar(20);not null"`
	TargetID   uint           `json:"target_id" gorm:"not null"`
	CreatedAt  time.Time      `json:"created_at" gorm:"index"`
}

// BeforeCreate sets UUID before creating the record.
func (l *ActivityLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
