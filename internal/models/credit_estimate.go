package models

import "time"

// CreditEstimate is a per-card, per-month estimate of a card statement.
// When estimates exist for a card's billing month they take precedence
// over the generic card amount on the monthly plan.
type CreditEstimate struct {
	Base
	YearMonth   string `gorm:"size:7;not null;index" json:"year_month"`
	CardKey     string `gorm:"size:50;not null;index" json:"card_key"`
	Description string `gorm:"size:100" json:"description"`
	Amount      int64  `gorm:"not null" json:"amount"`

	// BillingMonth is computed from the card's billing rule when the
	// estimate is created and may be edited afterwards.
	BillingMonth string     `gorm:"size:7;not null;index" json:"billing_month"`
	DueDate      *time.Time `json:"due_date,omitempty"`

	// Two-part split payment. Both parts share a SplitGroup; part 2 bills
	// one month after part 1.
	IsSplitPayment bool    `gorm:"not null;default:false" json:"is_split_payment"`
	SplitPart      *int    `json:"split_part,omitempty"`
	SplitGroup     *string `gorm:"size:50" json:"split_group,omitempty"`

	// Bonus payments bill in the month of DueDate instead of the rule month.
	IsBonusPayment bool `gorm:"not null;default:false" json:"is_bonus_payment"`
}
