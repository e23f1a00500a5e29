package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"recipehub/internal/model"
)

// ActivityLogRepository defines activity log persistence operations.
type ActivityLogRepository interface {
	CreateBatch(ctx context.Context, logs []model.ActivityLog) error
	DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type activityLogRepository struct {
	db *gorm.DB
}

// NewActivityLogRepository creates a new activity log repository.
func NewActivityLogRepository(db *gorm.DB) ActivityLogRepository {
	return &activityLogRepository{db: db}
}

// CreateBatch inserts multiple entries in batches of 100.
func (r *activityLogRepository) CreateBatch(ctx context.Context, logs []model.ActivityLog) error {
	if len(logs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(logs, 100).Error
}

// DeleteBefore removes entries older than cutoff and returns how many went.
func (r *activityLogRepository) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Where("created_at < ?", cutoff).Delete(&model.ActivityLog{})
	return res.RowsAffected, res.Error
}
