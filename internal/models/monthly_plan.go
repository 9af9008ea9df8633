package models

// MonthlyPlan holds the planned income and expense amounts for one
// calendar month. It is user-authored input to the simulation; the
// derived transaction events reference it and cascade on delete.
// All amounts are non-negative yen.
type MonthlyPlan struct {
	Base
	YearMonth string `gorm:"size:7;not null;uniqueIndex" json:"year_month"`

	// Income
	Salary        int64 `gorm:"not null;default:0" json:"salary"`
	Bonus         int64 `gorm:"not null;default:0" json:"bonus"`
	LoanBorrowing int64 `gorm:"not null;default:0" json:"loan_borrowing"`

	// Payslip detail. Informational; Salary is the amount that is paid out.
	GrossSalary     int64 `gorm:"not null;default:0" json:"gross_salary"`
	Deductions      int64 `gorm:"not null;default:0" json:"deductions"`
	BonusGross      int64 `gorm:"not null;default:0" json:"bonus_gross"`
	BonusDeductions int64 `gorm:"not null;default:0" json:"bonus_deductions"`

	// Expenses
	Food           int64 `gorm:"not null;default:0" json:"food"`
	Rent           int64 `gorm:"not null;default:0" json:"rent"`
	ViewCard       int64 `gorm:"not null;default:0" json:"view_card"`
	ViewCardBonus  int64 `gorm:"not null;default:0" json:"view_card_bonus"`
	RakutenCard    int64 `gorm:"not null;default:0" json:"rakuten_card"`
	PayPayCard     int64 `gorm:"not null;default:0" json:"paypay_card"`
	Savings        int64 `gorm:"not null;default:0" json:"savings"`
	Loan           int64 `gorm:"not null;default:0" json:"loan"`
	Utilities      int64 `gorm:"not null;default:0" json:"utilities"`
	Transportation int64 `gorm:"not null;default:0" json:"transportation"`
	Entertainment  int64 `gorm:"not null;default:0" json:"entertainment"`
	Other          int64 `gorm:"not null;default:0" json:"other"`
}

// TotalIncome returns the month's planned inflows.
func (p *MonthlyPlan) TotalIncome() int64 {
	return p.Salary + p.Bonus + p.LoanBorrowing
}

// TotalExpenses returns the month's planned outflows.
func (p *MonthlyPlan) TotalExpenses() int64 {
	return p.Food + p.Rent + p.ViewCard + p.ViewCardBonus + p.RakutenCard +
		p.PayPayCard + p.Savings + p.Loan + p.Utilities + p.Transportation +
		p.Entertainment + p.Other
}

// NetIncome returns income minus expenses for the month.
func (p *MonthlyPlan) NetIncome() int64 {
	return p.TotalIncome() - p.TotalExpenses()
}
