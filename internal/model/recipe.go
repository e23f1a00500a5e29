package model

import (
	"time"

	"gorm.io/gorm"

	"recipehub/internal/optional"
)

// Recipe is a post owned by the user that created it.
type Recipe struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	UserID    uint           `json:"-" gorm:"not null;index"`
	User      User           `json:"-" gorm:"foreignKey:UserID;references:ID"`
	Title     string         `json:"title" gorm:"size:255;not null"`
	Content   string         `json:"content" gorm:"type:text;not null"`
	LikeCount int64          `json:"like_count" gorm:"not null;default:0"`
	CreatedAt time.Time      `json:"created_at" gorm:"index"`
	UpdatedAt time.Time      `json:"modified_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// NewRecipe builds a recipe owned by author with no likes.
func NewRecipe(author *User, title, content string) *Recipe {
	return &Recipe{
		UserID:  author.ID,
		User:    *author,
		Title:   title,
		Content: content,
	}
}

// OwnerID implements Owned.
func (r *Recipe) OwnerID() uint {
	return r.UserID
}

// Update applies only the fields that are present.
func (r *Recipe) Update(title, content optional.Value[string]) {
	title.Apply(&r.Title)
	content.Apply(&r.Content)
}

// AddLike increments the like counter.
func (r *Recipe) AddLike() {
	r.LikeCount++
}

// MinusLike decrements the like counter. There is no floor at zero.
func (r *Recipe) MinusLike() {
	r.LikeCount--
}
