package models

// BillingRuleType selects which statement-cycle rule a card follows.
type BillingRuleType string

const (
	// BillingRuleFixedDay closes on ClosingDay of the usage month itself and
	// bills the following month.
	BillingRuleFixedDay BillingRuleType = "fixed_day"
	// BillingRuleEndOfMonth closes on the last day of the usage month and
	// bills the following month.
	BillingRuleEndOfMonth BillingRuleType = "end_of_month"
	// BillingRuleNextMonthClosing is the VIEW card's own rule: the statement
	// for usage month M cuts on a fixed day of M+1 and bills in M+2. It is
	// kept as a separate variant on purpose; do not fold it into fixed_day.
	BillingRuleNextMonthClosing BillingRuleType = "next_month_closing"
)

// CardDefault is the per-card billing configuration: which rule the card
// follows, its closing day where the rule needs one, and the day of month
// the statement is withdrawn from the account.
type CardDefault struct {
	Base
	Key           string          `gorm:"size:50;not null;uniqueIndex" json:"key"`
	Label         string          `gorm:"size:100;not null" json:"label"`
	BillingRule   BillingRuleType `gorm:"size:20;not null" json:"billing_rule"`
	ClosingDay    *int            `json:"closing_day,omitempty"`
	WithdrawalDay int             `gorm:"not null;default:27" json:"withdrawal_day"`
	IsActive      bool            `gorm:"not null;default:true" json:"is_active"`
	Position      int             `gorm:"not null;default:0" json:"position"`
}
