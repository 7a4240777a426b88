package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/hospital/turns-service/internal/domain"
	"github.com/hospital/turns-service/pkg/types"
)

// 2026-03-02 is a Monday
var monday = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func at(date time.Time, hour, minute int) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, date.Location())
}

func slots(values ...string) []types.TimeString {
	result := make([]types.TimeString, 0, len(values))
	for _, v := range values {
		result = append(result, types.TimeString(v))
	}
	return result
}

func TestGenerateSlots(t *testing.T) {
	window := domain.ScheduleWindow{DayOfWeek: domain.Monday, StartTime: "09:00", EndTime: "11:00"}
	dayBefore := at(monday.AddDate(0, 0, -1), 18, 0)

	tests := []struct {
		name     string
		window   domain.ScheduleWindow
		date     time.Time
		now      time.Time
		interval int
		want     []types.TimeString
	}{
		{
			name:     "future date excludes end",
			window:   window,
			date:     monday,
			now:      dayBefore,
			interval: 30,
			want:     slots("09:00", "09:30", "10:00", "10:30"),
		},
		{
			name:     "today rounds up to next boundary",
			window:   window,
			date:     monday,
			now:      at(monday, 9, 45),
			interval: 30,
			want:     slots("10:00", "10:30"),
		},
		{
			name:     "slot equal to now is not offered",
			window:   window,
			date:     monday,
			now:      at(monday, 10, 0),
			interval: 30,
			want:     slots("10:30"),
		},
		{
			name:     "today before window start",
			window:   window,
			date:     monday,
			now:      at(monday, 7, 12),
			interval: 30,
			want:     slots("09:00", "09:30", "10:00", "10:30"),
		},
		{
			name:     "today after window",
			window:   window,
			date:     monday,
			now:      at(monday, 10, 30),
			interval: 30,
			want:     slots(),
		},
		{
			name:     "past date",
			window:   window,
			date:     monday,
			now:      at(monday.AddDate(0, 0, 1), 8, 0),
			interval: 30,
			want:     slots(),
		},
		{
			name:     "default interval",
			window:   window,
			date:     monday,
			now:      dayBefore,
			interval: 0,
			want:     slots("09:00", "09:30", "10:00", "10:30"),
		},
		{
			name:     "grid follows window start",
			window:   domain.ScheduleWindow{DayOfWeek: domain.Monday, StartTime: "09:10", EndTime: "10:30"},
			date:     monday,
			now:      at(monday, 9, 45),
			interval: 30,
			want:     slots("10:10"),
		},
		{
			name:     "window shorter than interval",
			window:   domain.ScheduleWindow{DayOfWeek: domain.Monday, StartTime: "12:00", EndTime: "12:20"},
			date:     monday,
			now:      dayBefore,
			interval: 30,
			want:     slots("12:00"),
		},
		{
			name:     "window up to last minute of day",
			window:   domain.ScheduleWindow{DayOfWeek: domain.Monday, StartTime: "23:00", EndTime: "23:59"},
			date:     monday,
			now:      dayBefore,
			interval: 20,
			want:     slots("23:00", "23:20", "23:40"),
		},
		{
			name:     "inverted window",
			window:   domain.ScheduleWindow{DayOfWeek: domain.Monday, StartTime: "11:00", EndTime: "09:00"},
			date:     monday,
			now:      dayBefore,
			interval: 30,
			want:     slots(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateSlots(tt.window, tt.date, tt.now, tt.interval)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerateSlots_NeverReachesEnd(t *testing.T) {
	window := domain.ScheduleWindow{DayOfWeek: domain.Monday, StartTime: "08:00", EndTime: "12:00"}
	now := at(monday.AddDate(0, 0, -1), 12, 0)

	for _, interval := range []int{5, 7, 15, 30, 45, 60, 90, 240, 480} {
		got := GenerateSlots(window, monday, now, interval)

		assert.NotEmpty(t, got, interval)
		assert.Equal(t, types.TimeString("08:00"), got[0], interval)
		for i, slot := range got {
			assert.Less(t, slot.Minutes(), window.EndTime.Minutes(), interval)
			assert.Equal(t, window.StartTime.Minutes()+i*interval, slot.Minutes(), interval)
		}
	}
}

func TestUnionSlots(t *testing.T) {
	windows := []domain.ScheduleWindow{
		{DayOfWeek: domain.Monday, StartTime: "10:00", EndTime: "11:00"},
		{DayOfWeek: domain.Monday, StartTime: "09:00", EndTime: "10:30"},
		{DayOfWeek: domain.Tuesday, StartTime: "08:00", EndTime: "09:00"},
		{DayOfWeek: domain.Monday, StartTime: "14:00", EndTime: "15:00"},
	}
	now := at(monday.AddDate(0, 0, -1), 12, 0)

	got := UnionSlots(windows, monday, now, 30)

	assert.Equal(t, slots("09:00", "09:30", "10:00", "10:30", "14:00", "14:30"), got)
}

func TestUnionSlots_NoWindowsForDay(t *testing.T) {
	windows := []domain.ScheduleWindow{
		{DayOfWeek: domain.Tuesday, StartTime: "08:00", EndTime: "09:00"},
	}

	got := UnionSlots(windows, monday, at(monday.AddDate(0, 0, -3), 8, 0), 30)

	assert.NotNil(t, got)
	assert.Empty(t, got)
}
