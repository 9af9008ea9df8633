// Package schedule declares the per-category payment schedule: which day
// of the month each income or expense line moves on, and which way its
// date is pushed when that day is not a business day. The declaration
// order of the table is the tie-break when two events share a date.
package schedule

import (
	"github.com/y2-world/future-budget-simulator/internal/calendar"
	"github.com/y2-world/future-budget-simulator/internal/models"
)

// EndOfMonth is the sentinel day meaning "last calendar day of the month".
const EndOfMonth = -1

// Kind classifies a category as an inflow or an outflow.
type Kind int

const (
	Income Kind = iota
	Expense
)

// Category is one line of the schedule table.
type Category struct {
	Key       string
	Label     string
	Kind      Kind
	Day       int // day of month, or EndOfMonth
	Direction calendar.Direction
	Amount    func(*models.MonthlyPlan) int64
}

// IsCard reports whether this category is a credit-card line, whose
// amount can be overridden by credit estimates and recurring charges.
func (c Category) IsCard() bool {
	switch c.Key {
	case KeyViewCard, KeyViewCardBonus, KeyRakutenCard, KeyPayPayCard:
		return true
	}
	return false
}

// Category keys double as transaction event types.
const (
	KeySalary         = "salary"
	KeyBonus          = "bonus"
	KeyLoanBorrowing  = "loan_borrowing"
	KeyFood           = "food"
	KeyRent           = "rent"
	KeyViewCard       = "view_card"
	KeyViewCardBonus  = "view_card_bonus"
	KeyRakutenCard    = "rakuten_card"
	KeyPayPayCard     = "paypay_card"
	KeySavings        = "savings"
	KeyLoan           = "loan"
	KeyUtilities      = "utilities"
	KeyTransportation = "transportation"
	KeyEntertainment  = "entertainment"
	KeyOther          = "other"
)

// categories is the fixed schedule. Income lines come first so that on a
// shared date money arrives before it leaves. Days reflect the household's
// actual contracts (salary on the 25th, VIEW card withdrawal on the 4th,
// other cards on the 27th, utilities at month end).
var categories = []Category{
	{KeySalary, "Salary", Income, 25, calendar.Earlier, func(p *models.MonthlyPlan) int64 { return p.Salary }},
	{KeyBonus, "Bonus", Income, 10, calendar.Earlier, func(p *models.MonthlyPlan) int64 { return p.Bonus }},
	{KeyLoanBorrowing, "Loan Borrowing", Income, 20, calendar.Earlier, func(p *models.MonthlyPlan) int64 { return p.LoanBorrowing }},
	{KeyFood, "Food", Expense, 1, calendar.Later, func(p *models.MonthlyPlan) int64 { return p.Food }},
	{KeyViewCard, "VIEW Card", Expense, 4, calendar.Later, func(p *models.MonthlyPlan) int64 { return p.ViewCard }},
	{KeyViewCardBonus, "VIEW Card (Bonus Payment)", Expense, 4, calendar.Later, func(p *models.MonthlyPlan) int64 { return p.ViewCardBonus }},
	{KeySavings, "Fixed-Term Savings", Expense, 6, calendar.Later, func(p *models.MonthlyPlan) int64 { return p.Savings }},
	{KeyTransportation, "Transportation", Expense, 15, calendar.Later, func(p *models.MonthlyPlan) int64 { return p.Transportation }},
	{KeyEntertainment, "Entertainment", Expense, 25, calendar.Later, func(p *models.MonthlyPlan) int64 { return p.Entertainment }},
	{KeyRent, "Rent", Expense, 27, calendar.Later, func(p *models.MonthlyPlan) int64 { return p.Rent }},
	{KeyRakutenCard, "Rakuten Card", Expense, 27, calendar.Later, func(p *models.MonthlyPlan) int64 { return p.RakutenCard }},
	{KeyPayPayCard, "PayPay Card", Expense, 27, calendar.Later, func(p *models.MonthlyPlan) int64 { return p.PayPayCard }},
	{KeyLoan, "Loan Repayment", Expense, 27, calendar.Later, func(p *models.MonthlyPlan) int64 { return p.Loan }},
	{KeyUtilities, "Utilities", Expense, EndOfMonth, calendar.Later, func(p *models.MonthlyPlan) int64 { return p.Utilities }},
	{KeyOther, "Other", Expense, EndOfMonth, calendar.Later, func(p *models.MonthlyPlan) int64 { return p.Other }},
}

// Categories returns the schedule in declaration (priority) order.
func Categories() []Category {
	return categories
}

// ByKey looks a category up by its key.
func ByKey(key string) (Category, bool) {
	for _, c := range categories {
		if c.Key == key {
			return c, true
		}
	}
	return Category{}, false
}

// Priority returns the declaration index of key, or -1 if unknown.
func Priority(key string) int {
	for i, c := range categories {
		if c.Key == key {
			return i
		}
	}
	return -1
}

// ValidEventType reports whether key names a schedule category.
func ValidEventType(key string) bool {
	_, ok := ByKey(key)
	return ok
}
