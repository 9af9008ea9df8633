// Package billing implements card statement-cycle math: year-month
// arithmetic, closing dates, and the mapping from usage months and
// purchase dates to the month a statement is withdrawn in.
package billing

import (
	"fmt"
	"regexp"
	"time"

	apperrors "github.com/y2-world/future-budget-simulator/internal/errors"
)

var yearMonthRe = regexp.MustCompile(`^(\d{4})-(0[1-9]|1[0-2])$`)

// YearMonth identifies a calendar month.
type YearMonth struct {
	Year  int
	Month time.Month
}

// ParseYearMonth parses a strict YYYY-MM string.
func ParseYearMonth(s string) (YearMonth, error) {
	m := yearMonthRe.FindStringSubmatch(s)
	if m == nil {
		return YearMonth{}, apperrors.WithMessage(apperrors.ErrInvalidYearMonth, fmt.Sprintf("invalid year-month %q", s))
	}
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return YearMonth{}, apperrors.Wrap(apperrors.ErrInvalidYearMonth, err)
	}
	return YearMonth{Year: t.Year(), Month: t.Month()}, nil
}

// FromDate returns the month containing t.
func FromDate(t time.Time) YearMonth {
	return YearMonth{Year: t.Year(), Month: t.Month()}
}

// String formats as YYYY-MM.
func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, int(ym.Month))
}

// AddMonths returns the month n months after ym (n may be negative).
// Year boundaries roll over.
func (ym YearMonth) AddMonths(n int) YearMonth {
	t := time.Date(ym.Year, ym.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, n, 0)
	return YearMonth{Year: t.Year(), Month: t.Month()}
}

// LastDay returns the number of days in the month.
func (ym YearMonth) LastDay() int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(ym.Year, ym.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ClampDay bounds day to [1, LastDay]. A closing day of 31 in a 30-day
// month clamps to 30 rather than erroring.
func (ym YearMonth) ClampDay(day int) int {
	if day < 1 {
		return 1
	}
	if last := ym.LastDay(); day > last {
		return last
	}
	return day
}

// Date returns the given (clamped) day of the month as a time.Time.
func (ym YearMonth) Date(day int) time.Time {
	return time.Date(ym.Year, ym.Month, ym.ClampDay(day), 0, 0, 0, 0, time.UTC)
}

// Compare returns -1, 0, or +1 ordering ym against other chronologically.
func (ym YearMonth) Compare(other YearMonth) int {
	switch {
	case ym.Year != other.Year:
		if ym.Year < other.Year {
			return -1
		}
		return 1
	case ym.Month != other.Month:
		if ym.Month < other.Month {
			return -1
		}
		return 1
	}
	return 0
}

// Before reports whether ym is chronologically before other.
func (ym YearMonth) Before(other YearMonth) bool {
	return ym.Compare(other) < 0
}

// IsOdd reports whether the month number is odd. Recurring charges can be
// restricted to odd months only.
func (ym YearMonth) IsOdd() bool {
	return int(ym.Month)%2 == 1
}
