package recurrence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/daybook-app/daybook/pkg/types"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMatches_OneTime(t *testing.T) {
	e := types.Event{IsOneTime: true, Date: date(2025, 1, 6)}

	assert.True(t, Matches(e, date(2025, 1, 6)))
	assert.False(t, Matches(e, date(2025, 1, 7)))
	assert.False(t, Matches(e, date(2025, 1, 5)))

	// Time of day on the candidate is irrelevant.
	assert.True(t, Matches(e, time.Date(2025, 1, 6, 23, 59, 0, 0, time.UTC)))
}

func TestMatches_Daily(t *testing.T) {
	e := types.Event{RepeatType: types.RepeatDaily, Date: date(2025, 1, 6)}

	t.Run("every day from the start date", func(t *testing.T) {
		assert.True(t, Matches(e, date(2025, 1, 6)))
		assert.True(t, Matches(e, date(2025, 1, 7)))
		assert.True(t, Matches(e, date(2025, 2, 28)))
		assert.False(t, Matches(e, date(2025, 1, 5)), "never before the start date")
	})

	t.Run("interval 3 matches every third day", func(t *testing.T) {
		e := e
		e.Interval = 3
		assert.True(t, Matches(e, date(2025, 1, 6)))
		assert.False(t, Matches(e, date(2025, 1, 7)))
		assert.False(t, Matches(e, date(2025, 1, 8)))
		assert.True(t, Matches(e, date(2025, 1, 9)))
	})

	t.Run("interval 0 behaves as 1", func(t *testing.T) {
		e := e
		e.Interval = 0
		assert.True(t, Matches(e, date(2025, 1, 7)))
	})
}

func TestMatches_Weekly(t *testing.T) {
	// 2025-01-06 is a Monday.
	e := types.Event{
		RepeatType: types.RepeatWeekly,
		Date:       date(2025, 1, 6),
		WeekDays:   []string{"Mon", "Wed"},
	}

	t.Run("matches listed weekdays each week", func(t *testing.T) {
		assert.True(t, Matches(e, date(2025, 1, 6)))  // Mon, week 0
		assert.True(t, Matches(e, date(2025, 1, 8)))  // Wed, week 0
		assert.False(t, Matches(e, date(2025, 1, 9))) // Thu
		assert.True(t, Matches(e, date(2025, 1, 13))) // Mon, week 1
	})

	t.Run("interval 2 skips odd weeks", func(t *testing.T) {
		e := e
		e.Interval = 2
		assert.True(t, Matches(e, date(2025, 1, 6)))   // week 0
		assert.False(t, Matches(e, date(2025, 1, 13))) // week 1
		assert.True(t, Matches(e, date(2025, 1, 20)))  // week 2
		assert.True(t, Matches(e, date(2025, 1, 22)))  // Wed of week 2
	})

	t.Run("unlisted weekday never matches", func(t *testing.T) {
		assert.False(t, Matches(e, date(2025, 1, 12))) // Sunday
	})
}

func TestMatches_Monthly(t *testing.T) {
	e := types.Event{RepeatType: types.RepeatMonthly, Date: date(2025, 1, 15)}

	assert.True(t, Matches(e, date(2025, 1, 15)))
	assert.True(t, Matches(e, date(2025, 2, 15)))
	assert.True(t, Matches(e, date(2026, 7, 15)))
	assert.False(t, Matches(e, date(2025, 2, 14)), "different day of month")
	assert.False(t, Matches(e, date(2024, 12, 15)), "before the start date")

	t.Run("interval 2 matches every other month", func(t *testing.T) {
		e := e
		e.Interval = 2
		assert.True(t, Matches(e, date(2025, 3, 15)))
		assert.False(t, Matches(e, date(2025, 4, 15)))
	})

	t.Run("day 31 start skips short months", func(t *testing.T) {
		e := types.Event{RepeatType: types.RepeatMonthly, Date: date(2025, 1, 31)}
		assert.False(t, Matches(e, date(2025, 2, 28)))
		assert.True(t, Matches(e, date(2025, 3, 31)))
	})
}

func TestMatches_Yearly(t *testing.T) {
	e := types.Event{RepeatType: types.RepeatYearly, Date: date(2025, 6, 10)}

	assert.True(t, Matches(e, date(2025, 6, 10)))
	assert.True(t, Matches(e, date(2030, 6, 10)))
	assert.False(t, Matches(e, date(2026, 6, 11)))
	assert.False(t, Matches(e, date(2026, 7, 10)))
	assert.False(t, Matches(e, date(2024, 6, 10)))

	t.Run("interval 5", func(t *testing.T) {
		e := e
		e.Interval = 5
		assert.False(t, Matches(e, date(2026, 6, 10)))
		assert.True(t, Matches(e, date(2030, 6, 10)))
	})
}

func TestMatches_NoRecurrence(t *testing.T) {
	// Not one-time and no repeat type: never occurs.
	e := types.Event{Date: date(2025, 1, 6)}
	assert.False(t, Matches(e, date(2025, 1, 6)))
}

func TestWeekdayName(t *testing.T) {
	assert.Equal(t, "Mon", WeekdayName(date(2025, 1, 6)))
	assert.Equal(t, "Sun", WeekdayName(date(2025, 1, 12)))
	assert.Equal(t, "Sat", WeekdayName(date(2025, 1, 11)))
}
