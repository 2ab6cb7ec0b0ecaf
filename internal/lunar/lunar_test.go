package lunar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solarDay(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestYearOf(t *testing.T) {
	// Before lunar new year (2024-02-10) the lunar year is still 2023.
	assert.Equal(t, 2023, YearOf(solarDay(2024, time.January, 1)))
	assert.Equal(t, 2024, YearOf(solarDay(2024, time.February, 10)))
	assert.Equal(t, 2024, YearOf(solarDay(2024, time.June, 1)))
}

func TestToSolar(t *testing.T) {
	got, err := ToSolar(2024, 1, 1, false)
	require.NoError(t, err)
	assert.Equal(t, solarDay(2024, time.February, 10), got)

	// Mid-Autumn 2024.
	got, err = ToSolar(2024, 8, 15, false)
	require.NoError(t, err)
	assert.Equal(t, solarDay(2024, time.September, 17), got)
}

func TestToSolar_LeapMonth(t *testing.T) {
	// 2023 has a leap second month.
	regular, err := ToSolar(2023, 2, 1, false)
	require.NoError(t, err)
	assert.Equal(t, solarDay(2023, time.February, 20), regular)

	leap, err := ToSolar(2023, 2, 1, true)
	require.NoError(t, err)
	assert.Equal(t, solarDay(2023, time.March, 22), leap)

	// 2024 has no leap month, so the flag falls back to the regular month.
	withFlag, err := ToSolar(2024, 4, 1, true)
	require.NoError(t, err)
	without, err := ToSolar(2024, 4, 1, false)
	require.NoError(t, err)
	assert.Equal(t, without, withFlag)
}

func TestToSolar_Invalid(t *testing.T) {
	_, err := ToSolar(2024, 13, 1, false)
	assert.Error(t, err)

	_, err = ToSolar(2024, 0, 1, false)
	assert.Error(t, err)

	// Lunar months never have a day 31.
	_, err = ToSolar(2024, 8, 31, false)
	assert.Error(t, err)

	_, err = ToSolar(2024, 8, 0, false)
	assert.Error(t, err)
}

func TestInfo(t *testing.T) {
	info := Info(solarDay(2024, time.February, 10))

	assert.Equal(t, "2024年2月10日", info.Solar)
	assert.Equal(t, "星期六", info.SolarWeek)
	assert.Equal(t, "正月初一", info.Lunar)
	assert.Equal(t, "龙", info.ShengXiao)
	assert.Contains(t, info.Festivals, "春节")
	assert.NotEmpty(t, info.GanZhi)
}
