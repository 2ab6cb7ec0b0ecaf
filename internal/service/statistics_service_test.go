package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/moyan78641/memoria/internal/model"
	"github.com/moyan78641/memoria/internal/repository"
)

func newStatisticsFixture(t *testing.T) (*StatisticsService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	svc := NewStatisticsService(
		repository.NewMemorialRepository(db),
		repository.NewNotificationLogRepository(db),
	)
	return svc, db
}

func seedStatsData(t *testing.T, db *gorm.DB) {
	t.Helper()
	memorials := []model.Memorial{
		{Name: "生日A", MemorialType: model.TypeBirthday, DateMode: model.DateModeSolar,
			SolarDate: strPtr("03-15"), GroupName: strPtr("家人"), Recurring: true},
		{Name: "生日B", MemorialType: model.TypeBirthday, DateMode: model.DateModeSolar,
			SolarDate: strPtr("03-20"), GroupName: strPtr("家人"), Recurring: true},
		{Name: "结婚纪念日", MemorialType: model.TypeAnniversary, DateMode: model.DateModeSolar,
			SolarDate: strPtr("05-20"), GroupName: strPtr("伴侣"), Recurring: true},
		{Name: "中秋", MemorialType: model.TypeCustom, DateMode: model.DateModeLunar,
			LunarMonth: intPtr(8), LunarDay: intPtr(15), Recurring: false},
	}
	for i := range memorials {
		require.NoError(t, db.Create(&memorials[i]).Error)
	}
}

func TestStatisticsService_Dashboard(t *testing.T) {
	svc, db := newStatisticsFixture(t)
	seedStatsData(t, db)

	stats, err := svc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 4, stats.TotalMemorials)
	assert.EqualValues(t, 2, stats.BirthdayCount)
	assert.EqualValues(t, 1, stats.AnniversaryCount)
	assert.EqualValues(t, 2, stats.GroupCount)
}

func TestStatisticsService_Overview(t *testing.T) {
	svc, db := newStatisticsFixture(t)
	seedStatsData(t, db)

	o, err := svc.Overview(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 4, o.Total)
	assert.EqualValues(t, 3, o.SolarCount)
	assert.EqualValues(t, 1, o.LunarCount)
	assert.EqualValues(t, 3, o.RecurringCount)
}

func TestStatisticsService_ByType(t *testing.T) {
	svc, db := newStatisticsFixture(t)
	seedStatsData(t, db)

	counts, err := svc.ByType(context.Background())
	require.NoError(t, err)
	require.Len(t, counts, 3)
	// Known types come first, in a stable order.
	assert.Equal(t, TypeCount{MemorialType: model.TypeBirthday, Count: 2}, counts[0])
	assert.Equal(t, TypeCount{MemorialType: model.TypeAnniversary, Count: 1}, counts[1])
	assert.Equal(t, TypeCount{MemorialType: model.TypeCustom, Count: 1}, counts[2])
}

func TestStatisticsService_ByMonthZeroFilled(t *testing.T) {
	svc, db := newStatisticsFixture(t)
	seedStatsData(t, db)

	months, err := svc.ByMonth(context.Background())
	require.NoError(t, err)
	require.Len(t, months, 12)
	assert.Equal(t, MonthCount{Month: 3, Count: 2}, months[2])
	assert.Equal(t, MonthCount{Month: 5, Count: 1}, months[4])
	// Lunar memorials do not show up in the solar month chart.
	assert.Equal(t, MonthCount{Month: 8, Count: 0}, months[7])
	assert.Equal(t, MonthCount{Month: 1, Count: 0}, months[0])
}

func TestStatisticsService_Notify(t *testing.T) {
	svc, db := newStatisticsFixture(t)

	msg := "邮件配置不完整"
	logs := []model.NotificationLog{
		{MemorialID: 1, Channel: model.ChannelEmail, Status: model.StatusSuccess, SentAt: time.Now()},
		{MemorialID: 1, Channel: model.ChannelEmail, Status: model.StatusFailed, Message: &msg, SentAt: time.Now()},
		{MemorialID: 2, Channel: model.ChannelTelegram, Status: model.StatusSuccess, SentAt: time.Now()},
	}
	for i := range logs {
		require.NoError(t, db.Create(&logs[i]).Error)
	}

	n, err := svc.Notify(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 3, n.TotalSent)
	assert.EqualValues(t, 2, n.SuccessCount)
	assert.EqualValues(t, 1, n.FailedCount)
	assert.EqualValues(t, 2, n.EmailCount)
	assert.EqualValues(t, 1, n.TelegramCount)
}
