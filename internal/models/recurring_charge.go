package models

// RecurringCharge is a subscription or fixed cost billed to a card every
// month (or every odd month). It contributes to the card's effective
// statement amount alongside credit estimates.
type RecurringCharge struct {
	Base
	Key           string `gorm:"size:50;not null;uniqueIndex" json:"key"`
	Label         string `gorm:"size:100;not null" json:"label"`
	CardKey       string `gorm:"size:50;not null;index" json:"card_key"`
	Amount        int64  `gorm:"not null;default:0" json:"amount"`
	IsActive      bool   `gorm:"not null;default:true" json:"is_active"`
	OddMonthsOnly bool   `gorm:"not null;default:false" json:"odd_months_only"`

	Overrides []ChargeOverride `gorm:"foreignKey:ChargeID;constraint:OnDelete:CASCADE" json:"overrides,omitempty"`
}

// ChargeOverride replaces a recurring charge's amount (and optionally its
// card) for a single month. One override per (charge, month).
type ChargeOverride struct {
	Base
	ChargeID       string  `gorm:"type:uuid;not null;index:idx_charge_month,unique" json:"charge_id"`
	YearMonth      string  `gorm:"size:7;not null;index:idx_charge_month,unique" json:"year_month"`
	Amount         int64   `gorm:"not null" json:"amount"`
	CardKey        *string `gorm:"size:50" json:"card_key,omitempty"`
	IsSplitPayment bool    `gorm:"not null;default:false" json:"is_split_payment"`
}
