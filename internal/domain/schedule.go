package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/hospital/turns-service/pkg/types"
)

// CanonicalDay locale-independent day of week. Values match time.Weekday (0 = Sunday).
type CanonicalDay int

const (
	Sunday CanonicalDay = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// AllCanonicalDays in week order starting from Sunday
var AllCanonicalDays = []CanonicalDay{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

var canonicalDayNames = map[CanonicalDay]string{
	Sunday:    "Sunday",
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
	Saturday:  "Saturday",
}

// CanonicalDayOf returns the canonical day of the given date
func CanonicalDayOf(date time.Time) CanonicalDay {
	return CanonicalDay(date.Weekday())
}

// ParseCanonicalDay parses an English day key ("monday", "Monday", "MONDAY")
func ParseCanonicalDay(s string) (CanonicalDay, error) {
	key := strings.TrimSpace(s)
	for day, name := range canonicalDayNames {
		if strings.EqualFold(name, key) {
			return day, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDay, s)
}

// Valid returns true if the day is within Sunday..Saturday
func (d CanonicalDay) Valid() bool {
	return d >= Sunday && d <= Saturday
}

// String returns the English key used by the schedule catalog
func (d CanonicalDay) String() string {
	if name, ok := canonicalDayNames[d]; ok {
		return name
	}
	return fmt.Sprintf("CanonicalDay(%d)", int(d))
}

// Weekday converts to time.Weekday
func (d CanonicalDay) Weekday() time.Weekday {
	return time.Weekday(d)
}

// ScheduleWindow recurring weekly availability band of a specialty
// (aggregate of all doctors assigned to it). Immutable once fetched.
type ScheduleWindow struct {
	DayOfWeek CanonicalDay
	StartTime types.TimeString
	EndTime   types.TimeString
}

// Validate checks day range, time format and startTime < endTime
func (w ScheduleWindow) Validate() error {
	if !w.DayOfWeek.Valid() {
		return fmt.Errorf("%w: day %d", ErrInvalidWindow, int(w.DayOfWeek))
	}
	if err := w.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: start: %v", ErrInvalidWindow, err)
	}
	if err := w.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: end: %v", ErrInvalidWindow, err)
	}
	if !w.StartTime.IsBefore(w.EndTime) {
		return fmt.Errorf("%w: start %s is not before end %s", ErrInvalidWindow, w.StartTime, w.EndTime)
	}
	return nil
}

// Matches returns true if the window applies to the date's day of week
func (w ScheduleWindow) Matches(date time.Time) bool {
	return w.DayOfWeek == CanonicalDayOf(date)
}

// DurationMinutes length of the window
func (w ScheduleWindow) DurationMinutes() int {
	return w.EndTime.Minutes() - w.StartTime.Minutes()
}

// CoveredDays returns the set of days that have at least one window
func CoveredDays(windows []ScheduleWindow) map[CanonicalDay]bool {
	days := make(map[CanonicalDay]bool, len(AllCanonicalDays))
	for _, w := range windows {
		days[w.DayOfWeek] = true
	}
	return days
}
