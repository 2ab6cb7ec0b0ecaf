package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/moyan78641/memoria/internal/model"
)

// ReminderRepository handles CRUD for reminder rules.
type ReminderRepository struct {
	db *gorm.DB
}

func NewReminderRepository(db *gorm.DB) *ReminderRepository {
	return &ReminderRepository{db: db}
}

func (r *ReminderRepository) Create(ctx context.Context, rem *model.Reminder) error {
	if err := r.db.WithContext(ctx).Create(rem).Error; err != nil {
		return fmt.Errorf("create reminder: %w", err)
	}
	return nil
}

// ListByMemorial returns the reminder rules of one memorial, shortest lead first.
func (r *ReminderRepository) ListByMemorial(ctx context.Context, memorialID uint) ([]model.Reminder, error) {
	var reminders []model.Reminder
	err := r.db.WithContext(ctx).
		Where("memorial_id = ?", memorialID).
		Order("days_before").
		Find(&reminders).Error
	if err != nil {
		return nil, fmt.Errorf("list reminders: %w", err)
	}
	return reminders, nil
}

// ListEnabled returns every enabled reminder rule, in no guaranteed order.
func (r *ReminderRepository) ListEnabled(ctx context.Context) ([]model.Reminder, error) {
	var reminders []model.Reminder
	if err := r.db.WithContext(ctx).Where("enabled = ?", true).Find(&reminders).Error; err != nil {
		return nil, fmt.Errorf("list enabled reminders: %w", err)
	}
	return reminders, nil
}

func (r *ReminderRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Reminder{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete reminder: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
