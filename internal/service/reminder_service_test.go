package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/moyan78641/memoria/internal/model"
	"github.com/moyan78641/memoria/internal/repository"
)

func newReminderFixture(t *testing.T) (*ReminderService, *MemorialService) {
	t.Helper()
	db := newTestDB(t)
	memorials := repository.NewMemorialRepository(db)
	return NewReminderService(repository.NewReminderRepository(db), memorials),
		NewMemorialService(memorials)
}

func TestReminderService_Create(t *testing.T) {
	reminders, memorials := newReminderFixture(t)
	ctx := context.Background()

	m, err := memorials.Create(ctx, MemorialInput{
		Name: "生日", DateMode: model.DateModeSolar, SolarDate: strPtr("03-15"),
	})
	require.NoError(t, err)

	rem, err := reminders.Create(ctx, m.ID, 3, model.ChannelEmail)
	require.NoError(t, err)
	assert.NotZero(t, rem.ID)
	assert.True(t, rem.Enabled)

	_, err = reminders.Create(ctx, m.ID, 3, "sms")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = reminders.Create(ctx, m.ID, -1, model.ChannelEmail)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = reminders.Create(ctx, 9999, 3, model.ChannelEmail)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestReminderService_ListOrderedByLeadTime(t *testing.T) {
	reminders, memorials := newReminderFixture(t)
	ctx := context.Background()

	m, err := memorials.Create(ctx, MemorialInput{
		Name: "生日", DateMode: model.DateModeSolar, SolarDate: strPtr("03-15"),
	})
	require.NoError(t, err)

	for _, lead := range []int{7, 0, 3} {
		_, err := reminders.Create(ctx, m.ID, lead, model.ChannelEmail)
		require.NoError(t, err)
	}

	rules, err := reminders.ListByMemorial(ctx, m.ID)
	require.NoError(t, err)
	require.Len(t, rules, 3)
	assert.Equal(t, 0, rules[0].DaysBefore)
	assert.Equal(t, 3, rules[1].DaysBefore)
	assert.Equal(t, 7, rules[2].DaysBefore)
}

func TestReminderService_ListAllWithMemorials(t *testing.T) {
	reminders, memorials := newReminderFixture(t)
	ctx := context.Background()

	a, err := memorials.Create(ctx, MemorialInput{
		Name: "A", DateMode: model.DateModeSolar, SolarDate: strPtr("01-01"),
	})
	require.NoError(t, err)
	_, err = memorials.Create(ctx, MemorialInput{
		Name: "B", DateMode: model.DateModeSolar, SolarDate: strPtr("02-02"),
	})
	require.NoError(t, err)

	_, err = reminders.Create(ctx, a.ID, 1, model.ChannelTelegram)
	require.NoError(t, err)

	all, err := reminders.ListAllWithMemorials(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	// Ordered by name; only A carries a rule.
	assert.Equal(t, "A", all[0].Name)
	assert.Len(t, all[0].Reminders, 1)
	assert.Empty(t, all[1].Reminders)
}

func TestReminderService_Delete(t *testing.T) {
	reminders, memorials := newReminderFixture(t)
	ctx := context.Background()

	m, err := memorials.Create(ctx, MemorialInput{
		Name: "生日", DateMode: model.DateModeSolar, SolarDate: strPtr("03-15"),
	})
	require.NoError(t, err)
	rem, err := reminders.Create(ctx, m.ID, 3, model.ChannelEmail)
	require.NoError(t, err)

	require.NoError(t, reminders.Delete(ctx, rem.ID))
	assert.ErrorIs(t, reminders.Delete(ctx, rem.ID), gorm.ErrRecordNotFound)
}
