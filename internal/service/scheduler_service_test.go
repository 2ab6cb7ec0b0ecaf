package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDailySpec(t *testing.T) {
	spec, err := buildDailySpec("08:00")
	require.NoError(t, err)
	assert.Equal(t, "0 0 8 * * *", spec)

	spec, err = buildDailySpec("23:59")
	require.NoError(t, err)
	assert.Equal(t, "0 59 23 * * *", spec)

	for _, bad := range []string{"8", "8:00:00", "24:00", "12:60", "ab:cd", ""} {
		_, err := buildDailySpec(bad)
		assert.Error(t, err, bad)
	}
}

func TestSchedulerService_ScheduleDaily(t *testing.T) {
	s := NewSchedulerService(time.UTC)

	id, err := s.ScheduleDaily("08:00", func() {})
	require.NoError(t, err)
	assert.NotZero(t, id)

	_, err = s.ScheduleDaily("25:00", func() {})
	assert.Error(t, err)
}
