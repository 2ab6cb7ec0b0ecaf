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

func newMemorialService(t *testing.T) *MemorialService {
	t.Helper()
	return NewMemorialService(repository.NewMemorialRepository(newTestDB(t)))
}

func TestMemorialService_CreateSolar(t *testing.T) {
	svc := newMemorialService(t)
	ctx := context.Background()

	m, err := svc.Create(ctx, MemorialInput{
		Name:      "妈妈生日",
		DateMode:  model.DateModeSolar,
		SolarDate: strPtr("03-15"),
		Person:    strPtr("妈妈"),
	})
	require.NoError(t, err)
	assert.NotZero(t, m.ID)
	assert.Equal(t, model.TypeCustom, m.MemorialType)
	assert.True(t, m.Recurring)

	got, err := svc.Get(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, "妈妈生日", got.Name)
	require.NotNil(t, got.SolarDate)
	assert.Equal(t, "03-15", *got.SolarDate)
}

func TestMemorialService_CreateDefaultsDateMode(t *testing.T) {
	svc := newMemorialService(t)

	m, err := svc.Create(context.Background(), MemorialInput{
		Name:      "默认模式",
		SolarDate: strPtr("01-01"),
	})
	require.NoError(t, err)
	assert.Equal(t, model.DateModeSolar, m.DateMode)
}

func TestMemorialService_ValidationErrors(t *testing.T) {
	svc := newMemorialService(t)
	ctx := context.Background()

	cases := []struct {
		name  string
		input MemorialInput
	}{
		{"empty name", MemorialInput{DateMode: model.DateModeSolar, SolarDate: strPtr("01-01")}},
		{"solar without date", MemorialInput{Name: "x", DateMode: model.DateModeSolar}},
		{"bad solar format", MemorialInput{Name: "x", DateMode: model.DateModeSolar, SolarDate: strPtr("3/15")}},
		{"lunar without fields", MemorialInput{Name: "x", DateMode: model.DateModeLunar}},
		{"lunar month 13", MemorialInput{Name: "x", DateMode: model.DateModeLunar, LunarMonth: intPtr(13), LunarDay: intPtr(1)}},
		{"lunar day 31", MemorialInput{Name: "x", DateMode: model.DateModeLunar, LunarMonth: intPtr(8), LunarDay: intPtr(31)}},
		{"unknown mode", MemorialInput{Name: "x", DateMode: "julian", SolarDate: strPtr("01-01")}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tc.input)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestMemorialService_SwitchingModeClearsOtherFields(t *testing.T) {
	svc := newMemorialService(t)
	ctx := context.Background()

	m, err := svc.Create(ctx, MemorialInput{
		Name:       "中秋",
		DateMode:   model.DateModeLunar,
		LunarMonth: intPtr(8),
		LunarDay:   intPtr(15),
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, m.ID, MemorialInput{
		Name:      "中秋",
		DateMode:  model.DateModeSolar,
		SolarDate: strPtr("09-17"),
	})
	require.NoError(t, err)
	require.NotNil(t, updated.SolarDate)
	assert.Nil(t, updated.LunarMonth)
	assert.Nil(t, updated.LunarDay)
	assert.False(t, updated.LunarLeap)
}

func TestMemorialService_UpdateMissing(t *testing.T) {
	svc := newMemorialService(t)

	_, err := svc.Update(context.Background(), 9999, MemorialInput{
		Name:      "x",
		DateMode:  model.DateModeSolar,
		SolarDate: strPtr("01-01"),
	})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestMemorialService_RecurringOverride(t *testing.T) {
	svc := newMemorialService(t)
	off := false

	m, err := svc.Create(context.Background(), MemorialInput{
		Name:      "一次性",
		DateMode:  model.DateModeSolar,
		SolarDate: strPtr("06-01"),
		Recurring: &off,
	})
	require.NoError(t, err)
	assert.False(t, m.Recurring)
}
