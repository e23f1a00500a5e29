package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "recipehub/internal/errors"
	"recipehub/internal/model"
)

// RecipeRepository defines recipe persistence operations.
type RecipeRepository interface {
	Create(ctx context.Context, recipe *model.Recipe) error
	Save(ctx context.Context, recipe *model.Recipe) error
	FindByID(ctx context.Context, id uint) (*model.Recipe, error)
	List(ctx context.Context, page PageRequest) ([]model.Recipe, int64, error)
	ListByCreatedAtBetween(ctx context.Context, start, end time.Time, page PageRequest) ([]model.Recipe, int64, error)
	AdjustLikes(ctx context.Context, id uint, delta int64) (int64, error)
	DeleteWithComments(ctx context.Context, id uint) error
}

type recipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository creates a new recipe repository.
func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

// Create inserts a recipe. The owner row is never written through it.
func (r *recipeRepository) Create(ctx context.Context, recipe *model.Recipe) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(recipe).Error
}

// Save updates every column of an existing recipe.
func (r *recipeRepository) Save(ctx context.Context, recipe *model.Recipe) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(recipe).Error
}

// FindByID loads a recipe with its owner.
func (r *recipeRepository) FindByID(ctx context.Context, id uint) (*model.Recipe, error) {
	var recipe model.Recipe
	if err := r.db.WithContext(ctx).Preload("User").First(&recipe, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRecipeNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

// List returns one page of recipes ordered by page.SortBy descending.
func (r *recipeRepository) List(ctx context.Context, page PageRequest) ([]model.Recipe, int64, error) {
	return r.findPage(ctx, r.db.WithContext(ctx).Model(&model.Recipe{}), page)
}

// ListByCreatedAtBetween returns one page of recipes created within [start, end].
func (r *recipeRepository) ListByCreatedAtBetween(ctx context.Context, start, end time.Time, page PageRequest) ([]model.Recipe, int64, error) {
	scope := r.db.WithContext(ctx).Model(&model.Recipe{}).Where("created_at BETWEEN ? AND ?", start, end)
	return r.findPage(ctx, scope, page)
}

func (r *recipeRepository) findPage(ctx context.Context, scope *gorm.DB, page PageRequest) ([]model.Recipe, int64, error) {
	page.Normalize()
	column, err := page.SortColumn()
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := scope.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []model.Recipe{}, 0, nil
	}

	var recipes []model.Recipe
	if err := paginate(scope.Session(&gorm.Session{}), page, column).Preload("User").Find(&recipes).Error; err != nil {
		return nil, 0, err
	}
	return recipes, total, nil
}

// AdjustLikes adds delta to the like counter atomically and returns the new value.
func (r *recipeRepository) AdjustLikes(ctx context.Context, id uint, delta int64) (int64, error) {
	return adjustLikes(ctx, r.db, &model.Recipe{}, id, delta, apperrors.ErrRecipeNotFound)
}

// DeleteWithComments soft-deletes a recipe and its comments in one transaction.
func (r *recipeRepository) DeleteWithComments(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.Recipe{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperrors.ErrRecipeNotFound
		}
		return nil
	})
}

// adjustLikes runs "like_count = like_count + delta" on one row of table and
// reads back the counter in the same transaction.
func adjustLikes(ctx context.Context, db *gorm.DB, table interface{}, id uint, delta int64, notFound error) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(table).Where("id = ?", id).
			UpdateColumn("like_count", gorm.Expr("like_count + ?", delta))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return notFound
		}
		return tx.Model(table).Where("id = ?", id).Pluck("like_count", &count).Error
	})
	return count, err
}
