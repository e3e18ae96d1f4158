package activity

import (
	"context"

	"Supply-Map-Dashboard/entities"

	"gorm.io/gorm"
)

type (
	ActivityRepository interface {
		AddLog(ctx context.Context, log *entities.ActivityLog) error
		GetLatestLogs(ctx context.Context, limit int) ([]*entities.ActivityLog, error)
	}

	activityRepository struct {
		db *gorm.DB
	}
)

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) AddLog(ctx context.Context, log *entities.ActivityLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *activityRepository) GetLatestLogs(ctx context.Context, limit int) ([]*entities.ActivityLog, error) {
	var logs []*entities.ActivityLog

	if err := r.db.WithContext(ctx).
		Order("occurred_at desc").
		Limit(limit).
		Find(&logs).Error; err != nil {
		return nil, err
	}

	return logs, nil
}
