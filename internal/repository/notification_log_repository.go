package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/moyan78641/memoria/internal/model"
)

// NotificationLogRepository appends and lists dispatch log entries.
type NotificationLogRepository struct {
	db *gorm.DB
}

func NewNotificationLogRepository(db *gorm.DB) *NotificationLogRepository {
	return &NotificationLogRepository{db: db}
}

// Append inserts one log row. Rows are never updated or deleted afterwards.
func (r *NotificationLogRepository) Append(ctx context.Context, entry *model.NotificationLog) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("append notification log: %w", err)
	}
	return nil
}

// ListRecent returns the newest entries first, capped at limit.
func (r *NotificationLogRepository) ListRecent(ctx context.Context, limit int) ([]model.NotificationLog, error) {
	if limit <= 0 {
		limit = 100
	}
	var logs []model.NotificationLog
	err := r.db.WithContext(ctx).
		Order("sent_at DESC").
		Limit(limit).
		Find(&logs).Error
	if err != nil {
		return nil, fmt.Errorf("list notification logs: %w", err)
	}
	return logs, nil
}

// CountByCondition counts log rows matching an arbitrary where clause.
func (r *NotificationLogRepository) CountByCondition(ctx context.Context, query string, args ...interface{}) (int64, error) {
	var n int64
	q := r.db.WithContext(ctx).Model(&model.NotificationLog{})
	if query != "" {
		q = q.Where(query, args...)
	}
	if err := q.Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count notification logs: %w", err)
	}
	return n, nil
}
