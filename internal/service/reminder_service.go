package service

import (
	"context"
	"fmt"

	"github.com/moyan78641/memoria/internal/model"
	"github.com/moyan78641/memoria/internal/repository"
)

// ReminderService manages the reminder rules attached to memorials.
type ReminderService struct {
	reminders *repository.ReminderRepository
	memorials *repository.MemorialRepository
}

func NewReminderService(reminders *repository.ReminderRepository, memorials *repository.MemorialRepository) *ReminderService {
	return &ReminderService{reminders: reminders, memorials: memorials}
}

// Create attaches a (lead time, channel) rule to a memorial. The memorial
// must exist and the channel must be a supported one.
func (s *ReminderService) Create(ctx context.Context, memorialID uint, daysBefore int, channel string) (*model.Reminder, error) {
	if !model.ValidChannel(channel) {
		return nil, fmt.Errorf("%w: 渠道无效，支持 email / telegram", ErrInvalidInput)
	}
	if daysBefore < 0 {
		return nil, fmt.Errorf("%w: 提前天数不能为负", ErrInvalidInput)
	}
	if _, err := s.memorials.FindByID(ctx, memorialID); err != nil {
		return nil, err
	}

	rem := model.Reminder{
		MemorialID: memorialID,
		DaysBefore: daysBefore,
		Channel:    channel,
		Enabled:    true,
	}
	if err := s.reminders.Create(ctx, &rem); err != nil {
		return nil, err
	}
	return &rem, nil
}

// ListByMemorial returns one memorial's rules, shortest lead time first.
func (s *ReminderService) ListByMemorial(ctx context.Context, memorialID uint) ([]model.Reminder, error) {
	return s.reminders.ListByMemorial(ctx, memorialID)
}

// ListAllWithMemorials returns every memorial with its rules attached.
func (s *ReminderService) ListAllWithMemorials(ctx context.Context) ([]model.Memorial, error) {
	return s.memorials.ListWithReminders(ctx)
}

func (s *ReminderService) Delete(ctx context.Context, id uint) error {
	return s.reminders.Delete(ctx, id)
}
