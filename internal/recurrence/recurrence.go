// Package recurrence decides which calendar dates an event applies to. It is
// pure: a function of the event's recurrence fields and a candidate date,
// independent of storage and rendering.
package recurrence

import (
	"time"

	"github.com/daybook-app/daybook/pkg/types"
)

// Matches reports whether the event occurs on the candidate date. One-time
// events match only their own calendar day. Recurring events match when the
// whole-unit distance from the event's start date is non-negative and
// divisible by the interval; weekly events additionally require the
// candidate's weekday to be listed in WeekDays.
func Matches(e types.Event, candidate time.Time) bool {
	start := dateOnly(e.Date)
	day := dateOnly(candidate)

	if e.IsOneTime {
		return day.Equal(start)
	}

	switch e.RepeatType {
	case types.RepeatDaily:
		days := daysBetween(start, day)
		return days >= 0 && days%e.Step() == 0

	case types.RepeatWeekly:
		if !containsDay(e.WeekDays, WeekdayName(day)) {
			return false
		}
		days := daysBetween(start, day)
		if days < 0 {
			return false
		}
		return (days/7)%e.Step() == 0

	case types.RepeatMonthly:
		months := monthsBetween(start, day)
		return months >= 0 && months%e.Step() == 0 && day.Day() == start.Day()

	case types.RepeatYearly:
		years := day.Year() - start.Year()
		return years >= 0 && years%e.Step() == 0 &&
			day.Month() == start.Month() && day.Day() == start.Day()
	}

	return false
}

// WeekdayName returns the short weekday name ("Mon".."Sun") used in
// Event.WeekDays.
func WeekdayName(t time.Time) string {
	// time.Weekday starts at Sunday; WeekDayNames starts at Monday.
	idx := (int(t.Weekday()) + 6) % 7
	return types.WeekDayNames[idx]
}

// dateOnly truncates a timestamp to its calendar day in UTC.
func dateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// daysBetween returns the whole-day distance from a to b, negative when b is
// before a. Both arguments must already be truncated to midnight UTC.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a) / (24 * time.Hour))
}

// monthsBetween returns the whole-month distance from a to b, ignoring the
// day of month.
func monthsBetween(a, b time.Time) int {
	return (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
}

func containsDay(days []string, name string) bool {
	for _, d := range days {
		if d == name {
			return true
		}
	}
	return false
}
