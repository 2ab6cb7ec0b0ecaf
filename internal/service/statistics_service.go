package service

import (
	"context"

	"github.com/moyan78641/memoria/internal/model"
	"github.com/moyan78641/memoria/internal/repository"
)

// DashboardStats backs the dashboard summary cards.
type DashboardStats struct {
	TotalMemorials   int64 `json:"total_memorials"`
	BirthdayCount    int64 `json:"birthday_count"`
	AnniversaryCount int64 `json:"anniversary_count"`
	GroupCount       int64 `json:"group_count"`
}

// Overview backs the statistics page summary.
type Overview struct {
	Total          int64 `json:"total"`
	SolarCount     int64 `json:"solar_count"`
	LunarCount     int64 `json:"lunar_count"`
	RecurringCount int64 `json:"recurring_count"`
	GroupCount     int64 `json:"group_count"`
}

// TypeCount is one slice of the by-type breakdown.
type TypeCount struct {
	MemorialType string `json:"memorial_type"`
	Count        int64  `json:"count"`
}

// MonthCount is one bar of the by-month chart; all 12 months are present.
type MonthCount struct {
	Month int   `json:"month"`
	Count int64 `json:"count"`
}

// NotifyStats summarizes the notification log.
type NotifyStats struct {
	TotalSent     int64 `json:"total_sent"`
	SuccessCount  int64 `json:"success_count"`
	FailedCount   int64 `json:"failed_count"`
	EmailCount    int64 `json:"email_count"`
	TelegramCount int64 `json:"telegram_count"`
}

// StatisticsService aggregates counts for the dashboard and statistics pages.
type StatisticsService struct {
	memorials *repository.MemorialRepository
	logs      *repository.NotificationLogRepository
}

func NewStatisticsService(memorials *repository.MemorialRepository, logs *repository.NotificationLogRepository) *StatisticsService {
	return &StatisticsService{memorials: memorials, logs: logs}
}

func (s *StatisticsService) Dashboard(ctx context.Context) (DashboardStats, error) {
	var stats DashboardStats
	var err error

	if stats.TotalMemorials, err = s.memorials.CountByCondition(ctx, ""); err != nil {
		return stats, err
	}
	if stats.BirthdayCount, err = s.memorials.CountByCondition(ctx, "memorial_type = ?", model.TypeBirthday); err != nil {
		return stats, err
	}
	if stats.AnniversaryCount, err = s.memorials.CountByCondition(ctx, "memorial_type = ?", model.TypeAnniversary); err != nil {
		return stats, err
	}
	if stats.GroupCount, err = s.memorials.CountGroups(ctx); err != nil {
		return stats, err
	}
	return stats, nil
}

func (s *StatisticsService) Overview(ctx context.Context) (Overview, error) {
	var o Overview
	var err error

	if o.Total, err = s.memorials.CountByCondition(ctx, ""); err != nil {
		return o, err
	}
	if o.SolarCount, err = s.memorials.CountByCondition(ctx, "date_mode = ?", model.DateModeSolar); err != nil {
		return o, err
	}
	if o.LunarCount, err = s.memorials.CountByCondition(ctx, "date_mode = ?", model.DateModeLunar); err != nil {
		return o, err
	}
	if o.RecurringCount, err = s.memorials.CountByCondition(ctx, "recurring = ?", true); err != nil {
		return o, err
	}
	if o.GroupCount, err = s.memorials.CountGroups(ctx); err != nil {
		return o, err
	}
	return o, nil
}

func (s *StatisticsService) ByType(ctx context.Context) ([]TypeCount, error) {
	counts, err := s.memorials.CountByType(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]TypeCount, 0, len(counts))
	for _, t := range []string{model.TypeBirthday, model.TypeAnniversary, model.TypeCustom} {
		if n, ok := counts[t]; ok {
			out = append(out, TypeCount{MemorialType: t, Count: n})
			delete(counts, t)
		}
	}
	for t, n := range counts {
		out = append(out, TypeCount{MemorialType: t, Count: n})
	}
	return out, nil
}

// ByMonth returns solar-memorial counts for every month, zero-filled.
func (s *StatisticsService) ByMonth(ctx context.Context) ([]MonthCount, error) {
	counts, err := s.memorials.CountSolarByMonth(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]MonthCount, 12)
	for i := range out {
		out[i] = MonthCount{Month: i + 1, Count: counts[i+1]}
	}
	return out, nil
}

func (s *StatisticsService) Notify(ctx context.Context) (NotifyStats, error) {
	var n NotifyStats
	var err error

	if n.TotalSent, err = s.logs.CountByCondition(ctx, ""); err != nil {
		return n, err
	}
	if n.SuccessCount, err = s.logs.CountByCondition(ctx, "status = ?", model.StatusSuccess); err != nil {
		return n, err
	}
	if n.FailedCount, err = s.logs.CountByCondition(ctx, "status = ?", model.StatusFailed); err != nil {
		return n, err
	}
	if n.EmailCount, err = s.logs.CountByCondition(ctx, "channel = ?", model.ChannelEmail); err != nil {
		return n, err
	}
	if n.TelegramCount, err = s.logs.CountByCondition(ctx, "channel = ?", model.ChannelTelegram); err != nil {
		return n, err
	}
	return n, nil
}
