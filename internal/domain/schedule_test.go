package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCanonicalDay(t *testing.T) {
	for _, day := range AllCanonicalDays {
		parsed, err := ParseCanonicalDay(day.String())
		require.NoError(t, err)
		assert.Equal(t, day, parsed)
	}

	parsed, err := ParseCanonicalDay(" monday ")
	require.NoError(t, err)
	assert.Equal(t, Monday, parsed)

	_, err = ParseCanonicalDay("lunes")
	assert.ErrorIs(t, err, ErrUnknownDay)

	_, err = ParseCanonicalDay("")
	assert.ErrorIs(t, err, ErrUnknownDay)
}

func TestCanonicalDayOf(t *testing.T) {
	// 2026-03-02 is a Monday
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, Monday, CanonicalDayOf(date))
	assert.Equal(t, Sunday, CanonicalDayOf(date.AddDate(0, 0, -1)))
	assert.Equal(t, time.Monday, Monday.Weekday())
}

func TestScheduleWindow_Validate(t *testing.T) {
	assert.NoError(t, ScheduleWindow{DayOfWeek: Monday, StartTime: "09:00", EndTime: "11:00"}.Validate())

	invalid := []ScheduleWindow{
		{DayOfWeek: Monday, StartTime: "11:00", EndTime: "11:00"},
		{DayOfWeek: Monday, StartTime: "12:00", EndTime: "11:00"},
		{DayOfWeek: Monday, StartTime: "9:00", EndTime: "11:00"},
		{DayOfWeek: CanonicalDay(7), StartTime: "09:00", EndTime: "11:00"},
	}
	for _, w := range invalid {
		assert.ErrorIs(t, w.Validate(), ErrInvalidWindow, "%+v", w)
	}
}

func TestScheduleWindow_Matches(t *testing.T) {
	w := ScheduleWindow{DayOfWeek: Wednesday, StartTime: "08:00", EndTime: "12:00"}

	assert.True(t, w.Matches(time.Date(2026, 3, 4, 18, 0, 0, 0, time.UTC)))
	assert.False(t, w.Matches(time.Date(2026, 3, 5, 9, 0, 0, 0, time.UTC)))
	assert.Equal(t, 240, w.DurationMinutes())
}

func TestCoveredDays(t *testing.T) {
	days := CoveredDays([]ScheduleWindow{
		{DayOfWeek: Monday, StartTime: "08:00", EndTime: "10:00"},
		{DayOfWeek: Monday, StartTime: "14:00", EndTime: "16:00"},
		{DayOfWeek: Friday, StartTime: "08:00", EndTime: "10:00"},
	})

	assert.Len(t, days, 2)
	assert.True(t, days[Monday])
	assert.True(t, days[Friday])
	assert.False(t, days[Sunday])
}

func TestSpecialtySlotsConfig(t *testing.T) {
	cfg := DefaultSlotsConfig()
	require.NoError(t, cfg.Validate())
	assert.True(t, cfg.IsGlobalConfig())
	assert.True(t, cfg.IsDefault())
	assert.False(t, cfg.HasAdvanceBookingLimit())
	assert.True(t, cfg.Horizon(time.Now()).IsZero())

	cfg.IntervalMinutes = 4
	assert.Error(t, cfg.Validate())

	cfg.IntervalMinutes = 15
	cfg.AdvanceBookingDays = 366
	assert.Error(t, cfg.Validate())

	cfg.AdvanceBookingDays = 14
	today := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC), cfg.Horizon(today))
}
