package repository

import (
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "recipehub/internal/errors"
)

// DefaultPageSize is used when a PageRequest has no size.
const DefaultPageSize = 10

// sortColumns maps accepted sortBy values to recipe columns.
var sortColumns = map[string]string{
	"created_at":  "created_at",
	"createdat":   "created_at",
	"modified_at": "updated_at",
	"modifiedat":  "updated_at",
	"updated_at":  "updated_at",
	"updatedat":   "updated_at",
	"like_count":  "like_count",
	"likecount":   "like_count",
	"recipelikes": "like_count",
	"title":       "title",
}

// PageRequest selects one page of a listing, newest or largest first.
// Page is 1-based.
type PageRequest struct {
	Page   int
	Size   int
	SortBy string
}

// Normalize clamps the page and size and defaults the sort field.
func (p *PageRequest) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Size < 1 {
		p.Size = DefaultPageSize
	}
	if p.SortBy == "" {
		p.SortBy = "created_at"
	}
}

// SortColumn resolves SortBy to a column, or ErrInvalidSortField.
func (p PageRequest) SortColumn() (string, error) {
	col, ok := sortColumns[strings.ToLower(p.SortBy)]
	if !ok {
		return "", apperrors.ErrInvalidSortField
	}
	return col, nil
}

// Offset is the number of rows before this page.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Size
}

// paginate applies descending order and limit/offset. Ties break by id.
func paginate(db *gorm.DB, p PageRequest, column string) *gorm.DB {
	return db.
		Order(clause.OrderByColumn{Column: clause.Column{Name: column}, Desc: true}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}, Desc: true}).
		Limit(p.Size).
		Offset(p.Offset())
}
