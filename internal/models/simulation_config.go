package models

import "time"

// SimulationConfig holds the parameters a simulation run starts from.
// Exactly one config is active at a time; activation is an explicit
// operation that deactivates every other config in the same transaction.
type SimulationConfig struct {
	Base
	InitialBalance   int64     `gorm:"not null;default:0" json:"initial_balance"`
	StartDate        time.Time `gorm:"not null" json:"start_date"`
	SimulationMonths int       `gorm:"not null;default:12" json:"simulation_months"`
	IsActive         bool      `gorm:"not null;default:false;index" json:"is_active"`

	// Defaults applied when a new monthly plan is created.
	DefaultSalary int64 `gorm:"not null;default:0" json:"default_salary"`
	DefaultFood   int64 `gorm:"not null;default:0" json:"default_food"`

	// Optional fixed-term savings line. When enabled, plans from
	// SavingsStartMonth onward default their savings amount.
	SavingsEnabled    bool    `gorm:"not null;default:false" json:"savings_enabled"`
	SavingsAmount     int64   `gorm:"not null;default:0" json:"savings_amount"`
	SavingsStartMonth *string `gorm:"size:7" json:"savings_start_month,omitempty"`
}
