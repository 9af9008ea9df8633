package calendar

import (
	"fmt"
	"time"

	apperrors "github.com/y2-world/future-budget-simulator/internal/errors"
)

// maxSteps bounds the business-day search. Real calendars never chain ten
// consecutive non-business days, so hitting the bound means the holiday
// calendar is corrupt and the run must abort.
const maxSteps = 10

// Resolver finds the nearest business day in a given direction.
type Resolver struct {
	holidays HolidayCalendar
}

// NewResolver creates a Resolver over the given holiday calendar.
func NewResolver(holidays HolidayCalendar) *Resolver {
	return &Resolver{holidays: holidays}
}

// IsBusinessDay reports whether d is a weekday and not a holiday.
func (r *Resolver) IsBusinessDay(d time.Time) bool {
	if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return false
	}
	return !r.holidays.IsHoliday(d)
}

// Resolve returns d unchanged when it already is a business day, otherwise
// steps one day at a time in the given direction until it finds one.
// Resolution is idempotent. Exceeding the step bound returns
// CALENDAR_EXHAUSTED.
func (r *Resolver) Resolve(d time.Time, dir Direction) (time.Time, error) {
	step := 1
	if dir == Earlier {
		step = -1
	}

	resolved := d
	for i := 0; i <= maxSteps; i++ {
		if r.IsBusinessDay(resolved) {
			return resolved, nil
		}
		resolved = resolved.AddDate(0, 0, step)
	}
	return time.Time{}, apperrors.WithMessage(apperrors.ErrCalendarExhausted,
		fmt.Sprintf("no business day within %d days %s of %s", maxSteps, dir, d.Format("2006-01-02")))
}
