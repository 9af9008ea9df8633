package models

import "time"

// TransactionEvent is one simulated cash movement. Events are derived,
// never user-authored: every simulation run discards the previous event
// set and regenerates it wholesale. Amount is signed (positive inflow,
// negative outflow) and BalanceAfter is the running balance immediately
// after applying this event.
type TransactionEvent struct {
	Base
	Date         time.Time `gorm:"not null;index" json:"date"`
	EventType    string    `gorm:"size:20;not null" json:"event_type"`
	EventName    string    `gorm:"size:100;not null" json:"event_name"`
	Amount       int64     `gorm:"not null" json:"amount"`
	BalanceAfter int64     `gorm:"not null" json:"balance_after"`
	// Sequence preserves generation order so same-date events keep their
	// priority ordering when read back.
	Sequence int    `gorm:"not null;index" json:"sequence"`
	PlanID   string `gorm:"type:uuid;not null;index" json:"plan_id"`

	Plan MonthlyPlan `gorm:"foreignKey:PlanID;constraint:OnDelete:CASCADE" json:"-"`
}
