package model

import (
	"time"

	"gorm.io/gorm"

	"recipehub/internal/optional"
)

// Comment belongs to a recipe and is owned by its author.
type Comment struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	RecipeID  uint           `json:"recipe_id" gorm:"not null;index"`
	Recipe    *Recipe        `json:"-" gorm:"foreignKey:RecipeID"`
	UserID    uint           `json:"-" gorm:"not null;index"`
	User      User           `json:"-" gorm:"foreignKey:UserID;references:ID"`
	Content   string         `json:"content" gorm:"type:text;not null"`
	LikeCount int64          `json:"like_count" gorm:"not null;default:0"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"modified_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// NewComment builds a comment on recipe written by author.
func NewComment(recipe *Recipe, author *User, content string) *Comment {
	return &Comment{
		RecipeID: recipe.ID,
		UserID:   author.ID,
		User:     *author,
		Content:  content,
	}
}

// OwnerID implements Owned.
func (c *Comment) OwnerID() uint {
	return c.UserID
}

// BelongsTo reports whether the comment was written on the given recipe.
func (c *Comment) BelongsTo(recipeID uint) bool {
	return c.RecipeID == recipeID
}

// Update replaces the content when present.
func (c *Comment) Update(content optional.Value[string]) {
	content.Apply(&c.Content)
}

// AddLike increments the like counter.
func (c *Comment) AddLike() {
	c.LikeCount++
}

// MinusLike decrements the like counter. There is no floor at zero.
func (c *Comment) MinusLike() {
	c.LikeCount--
}
