package billing

import (
	"time"

	apperrors "github.com/y2-world/future-budget-simulator/internal/errors"
	"github.com/y2-world/future-budget-simulator/internal/models"
)

// Rule is one card's statement-cycle strategy. Statements are named by
// their usage month: StatementMonth places a purchase into a usage month,
// ClosingDate says when that usage month's statement cuts off, and
// BillingMonth says which month the statement is withdrawn in.
type Rule interface {
	Type() models.BillingRuleType
	ClosingDate(usage YearMonth) time.Time
	BillingMonth(usage YearMonth) YearMonth
	StatementMonth(purchase time.Time) YearMonth
}

// FixedDayRule closes on a fixed day of the usage month itself. A purchase
// on or before the closing day lands in the current month's statement; one
// day later rolls to the next month's. Bills the month after usage.
type FixedDayRule struct {
	ClosingDay int
}

func (r FixedDayRule) Type() models.BillingRuleType { return models.BillingRuleFixedDay }

func (r FixedDayRule) ClosingDate(usage YearMonth) time.Time {
	return usage.Date(r.ClosingDay)
}

func (r FixedDayRule) BillingMonth(usage YearMonth) YearMonth {
	return usage.AddMonths(1)
}

func (r FixedDayRule) StatementMonth(purchase time.Time) YearMonth {
	ym := FromDate(purchase)
	if purchase.Day() <= ym.ClampDay(r.ClosingDay) {
		return ym
	}
	return ym.AddMonths(1)
}

// EndOfMonthRule closes on the last calendar day of the usage month, so
// every purchase belongs to the statement of its own month. Bills the
// month after usage.
type EndOfMonthRule struct{}

func (EndOfMonthRule) Type() models.BillingRuleType { return models.BillingRuleEndOfMonth }

func (EndOfMonthRule) ClosingDate(usage YearMonth) time.Time {
	return usage.Date(usage.LastDay())
}

func (EndOfMonthRule) BillingMonth(usage YearMonth) YearMonth {
	return usage.AddMonths(1)
}

func (EndOfMonthRule) StatementMonth(purchase time.Time) YearMonth {
	return FromDate(purchase)
}

// NextMonthClosingRule is the VIEW card's independent rule: the statement
// for usage month M cuts on a fixed day of M+1 and is withdrawn in M+2.
// It stays a separate variant; folding it into FixedDayRule would lose the
// one-month shift in both the closing date and the billing month.
type NextMonthClosingRule struct {
	ClosingDay int
}

func (r NextMonthClosingRule) Type() models.BillingRuleType {
	return models.BillingRuleNextMonthClosing
}

func (r NextMonthClosingRule) ClosingDate(usage YearMonth) time.Time {
	next := usage.AddMonths(1)
	return next.Date(r.ClosingDay)
}

func (r NextMonthClosingRule) BillingMonth(usage YearMonth) YearMonth {
	return usage.AddMonths(2)
}

func (r NextMonthClosingRule) StatementMonth(purchase time.Time) YearMonth {
	ym := FromDate(purchase)
	if purchase.Day() <= ym.ClampDay(r.ClosingDay) {
		// Before this month's cut, so still inside the statement that
		// opened in the previous month.
		return ym.AddMonths(-1)
	}
	return ym
}

// RuleForCard builds the Rule variant a card is configured with.
func RuleForCard(card *models.CardDefault) (Rule, error) {
	switch card.BillingRule {
	case models.BillingRuleEndOfMonth:
		return EndOfMonthRule{}, nil
	case models.BillingRuleFixedDay:
		if card.ClosingDay == nil {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidDay, "fixed_day rule requires a closing day")
		}
		return FixedDayRule{ClosingDay: *card.ClosingDay}, nil
	case models.BillingRuleNextMonthClosing:
		if card.ClosingDay == nil {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidDay, "next_month_closing rule requires a closing day")
		}
		return NextMonthClosingRule{ClosingDay: *card.ClosingDay}, nil
	}
	return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown billing rule: "+string(card.BillingRule))
}

// SplitBillingMonth returns the billing month for one part of a two-part
// split payment: part 1 bills in the rule month, part 2 one month later.
func SplitBillingMonth(rule Rule, usage YearMonth, part int) YearMonth {
	return rule.BillingMonth(usage).AddMonths(part - 1)
}
