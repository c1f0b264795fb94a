package types

import "time"

// Event recurrence kinds. An empty RepeatType means the event does not repeat.
const (
	RepeatDaily   = "Daily"
	RepeatWeekly  = "Weekly"
	RepeatMonthly = "Monthly"
	RepeatYearly  = "Yearly"
)

// validRepeatTypes is the set of recognized recurrence kinds.
var validRepeatTypes = map[string]bool{
	RepeatDaily:   true,
	RepeatWeekly:  true,
	RepeatMonthly: true,
	RepeatYearly:  true,
}

// ValidRepeatType reports whether s names a recognized recurrence kind.
// The empty string is valid and means "no recurrence".
func ValidRepeatType(s string) bool { return s == "" || validRepeatTypes[s] }

// WeekDayNames lists the short weekday names used in Event.WeekDays, in
// calendar order starting from Monday.
var WeekDayNames = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// ValidWeekDay reports whether s is one of the short weekday names.
func ValidWeekDay(s string) bool {
	for _, d := range WeekDayNames {
		if d == s {
			return true
		}
	}
	return false
}

// Event is a calendar entry, either one-time or recurring. When IsOneTime is
// false exactly one recurrence rule applies; WeekDays is meaningful only for
// weekly recurrence.
type Event struct {
	ID             ID
	Title          string
	Description    string
	Date           time.Time // calendar date, UTC midnight
	Time           string    // time of day, "HH:MM"
	RepeatType     string    // one of the Repeat constants, or ""
	CustomInterval bool      // interval was chosen explicitly rather than defaulted
	Interval       int       // recurrence step; 0 is treated as 1
	Category       string
	IsOneTime      bool
	WeekDays       []string // subset of WeekDayNames, weekly recurrence only
	CreatedAt      time.Time
}

// Step returns the effective recurrence interval.
func (e Event) Step() int {
	if e.Interval <= 0 {
		return 1
	}
	return e.Interval
}

// EventPatch lists exactly the event fields an update may touch.
// Nil fields are left unchanged.
type EventPatch struct {
	Title          *string
	Description    *string
	Date           *time.Time
	Time           *string
	RepeatType     *string
	CustomInterval *bool
	Interval       *int
	Category       *string
	IsOneTime      *bool
	WeekDays       *[]string
}

// Apply merges the patch into the event, field by field.
func (p EventPatch) Apply(e *Event) {
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.Date != nil {
		e.Date = *p.Date
	}
	if p.Time != nil {
		e.Time = *p.Time
	}
	if p.RepeatType != nil {
		e.RepeatType = *p.RepeatType
	}
	if p.CustomInterval != nil {
		e.CustomInterval = *p.CustomInterval
	}
	if p.Interval != nil {
		e.Interval = *p.Interval
	}
	if p.Category != nil {
		e.Category = *p.Category
	}
	if p.IsOneTime != nil {
		e.IsOneTime = *p.IsOneTime
	}
	if p.WeekDays != nil {
		e.WeekDays = append([]string(nil), (*p.WeekDays)...)
	}
}
