// Package calendar resolves dates onto business days. A business day is a
// weekday that is not a recognized public holiday; salaries move to the
// preceding business day, withdrawals to the following one.
package calendar

import (
	"time"

	holiday_jp "github.com/holiday-jp/holiday_jp-go"
)

// Direction says which way a non-business date is pushed.
type Direction int

const (
	// Earlier steps backwards: deposits such as salary are paid on the
	// preceding business day.
	Earlier Direction = iota
	// Later steps forwards: withdrawals are charged on the following
	// business day.
	Later
)

func (d Direction) String() string {
	if d == Earlier {
		return "earlier"
	}
	return "later"
}

// HolidayCalendar answers whether a date is a public holiday.
type HolidayCalendar interface {
	IsHoliday(t time.Time) bool
}

// JapaneseHolidays is the production calendar, backed by the holiday-jp
// dataset.
type JapaneseHolidays struct{}

func (JapaneseHolidays) IsHoliday(t time.Time) bool {
	return holiday_jp.IsHoliday(t)
}

// FixedHolidays is a holiday calendar over an explicit set of dates.
// Tests use it so results do not depend on the bundled dataset.
type FixedHolidays map[string]struct{}

// NewFixedHolidays builds a FixedHolidays set from the given dates.
func NewFixedHolidays(dates ...time.Time) FixedHolidays {
	set := make(FixedHolidays, len(dates))
	for _, d := range dates {
		set[d.Format("2006-01-02")] = struct{}{}
	}
	return set
}

func (f FixedHolidays) IsHoliday(t time.Time) bool {
	_, ok := f[t.Format("2006-01-02")]
	return ok
}
