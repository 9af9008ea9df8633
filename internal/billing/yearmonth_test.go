package billing

import (
	"testing"
	"time"

	"github.com/y2-world/future-budget-simulator/internal/testutil"
)

func TestParseYearMonth(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		ym, err := ParseYearMonth("2025-01")
		testutil.AssertNoError(t, err)
		if ym.Year != 2025 || ym.Month != time.January {
			t.Errorf("expected 2025-01, got %v", ym)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		for _, s := range []string{"2025-13", "2025-0", "202501", "2025-1", "jan 2025", ""} {
			if _, err := ParseYearMonth(s); err == nil {
				t.Errorf("expected error for %q", s)
			}
		}
	})
}

func TestAddMonths(t *testing.T) {
	ym := YearMonth{Year: 2025, Month: time.November}

	if got := ym.AddMonths(2); got.String() != "2026-01" {
		t.Errorf("expected 2026-01, got %s", got)
	}
	if got := ym.AddMonths(-11); got.String() != "2024-12" {
		t.Errorf("expected 2024-12, got %s", got)
	}
}

func TestLastDayAndClamp(t *testing.T) {
	feb := YearMonth{Year: 2025, Month: time.February}
	if got := feb.LastDay(); got != 28 {
		t.Errorf("expected 28 days in 2025-02, got %d", got)
	}

	leapFeb := YearMonth{Year: 2024, Month: time.February}
	if got := leapFeb.LastDay(); got != 29 {
		t.Errorf("expected 29 days in 2024-02, got %d", got)
	}

	// Closing day 31 in a 30-day month clamps to 30.
	apr := YearMonth{Year: 2025, Month: time.April}
	if got := apr.ClampDay(31); got != 30 {
		t.Errorf("expected clamp to 30, got %d", got)
	}
	if got := apr.Date(31); got.Day() != 30 {
		t.Errorf("expected date on the 30th, got %v", got)
	}
}

func TestIsOdd(t *testing.T) {
	odd, _ := ParseYearMonth("2025-01")
	even, _ := ParseYearMonth("2025-02")
	next, _ := ParseYearMonth("2025-03")

	if !odd.IsOdd() || even.IsOdd() || !next.IsOdd() {
		t.Error("odd-month detection wrong")
	}
}

func TestCompare(t *testing.T) {
	a, _ := ParseYearMonth("2024-12")
	b, _ := ParseYearMonth("2025-01")

	if !a.Before(b) || b.Before(a) || a.Compare(a) != 0 {
		t.Error("ordering wrong across year boundary")
	}
}
