package services

import (
	"io"
	"time"

	"github.com/y2-world/future-budget-simulator/internal/models"
	"github.com/y2-world/future-budget-simulator/internal/pagination"
)

// ConfigServicer defines the contract for simulation-configuration logic.
// Exactly one configuration is active at a time; creating or activating
// one deactivates the rest atomically.
type ConfigServicer interface {
	CreateConfig(input ConfigInput) (*models.SimulationConfig, error)
	GetConfigs(page pagination.PageRequest) (*pagination.PageResponse[models.SimulationConfig], error)
	GetActiveConfig() (*models.SimulationConfig, error)
	GetConfigByID(id string) (*models.SimulationConfig, error)
	UpdateConfig(id string, input ConfigUpdate) (*models.SimulationConfig, error)
	ActivateConfig(id string) (*models.SimulationConfig, error)
	UpdateInitialBalance(balance int64) (*models.SimulationConfig, error)
}

// ConfigInput holds the fields for creating a simulation configuration.
type ConfigInput struct {
	InitialBalance    int64
	StartDate         time.Time
	SimulationMonths  int
	DefaultSalary     int64
	DefaultFood       int64
	SavingsEnabled    bool
	SavingsAmount     int64
	SavingsStartMonth *string
}

// ConfigUpdate holds optional fields for updating a configuration.
type ConfigUpdate struct {
	InitialBalance    *int64
	StartDate         *time.Time
	SimulationMonths  *int
	DefaultSalary     *int64
	DefaultFood       *int64
	SavingsEnabled    *bool
	SavingsAmount     *int64
	SavingsStartMonth *string
}

// PlanAmounts holds the per-category amounts of a monthly plan. All
// values are optional; absent values default to zero on create and are
// left unchanged on update.
type PlanAmounts struct {
	Salary          *int64
	Bonus           *int64
	LoanBorrowing   *int64
	GrossSalary     *int64
	Deductions      *int64
	BonusGross      *int64
	BonusDeductions *int64
	Food            *int64
	Rent            *int64
	ViewCard        *int64
	ViewCardBonus   *int64
	RakutenCard     *int64
	PayPayCard      *int64
	Savings         *int64
	Loan            *int64
	Utilities       *int64
	Transportation  *int64
	Entertainment   *int64
	Other           *int64
}

// PlanSummary is the computed income/expense breakdown of a plan.
type PlanSummary struct {
	YearMonth     string `json:"year_month"`
	TotalIncome   int64  `json:"total_income"`
	TotalExpenses int64  `json:"total_expenses"`
	NetIncome     int64  `json:"net_income"`
}

// PlanServicer defines the contract for monthly-plan logic.
type PlanServicer interface {
	CreatePlan(yearMonth string, amounts PlanAmounts) (*models.MonthlyPlan, error)
	GetPlans(page pagination.PageRequest, fromMonth *string) (*pagination.PageResponse[models.MonthlyPlan], error)
	GetPlanByID(id string) (*models.MonthlyPlan, error)
	GetPlanByMonth(yearMonth string) (*models.MonthlyPlan, error)
	UpdatePlan(id string, amounts PlanAmounts) (*models.MonthlyPlan, error)
	DeletePlan(id string) error
	GetPlanSummary(id string) (*PlanSummary, error)
}

// CardServicer defines the contract for card-default logic.
type CardServicer interface {
	CreateCard(key, label string, rule models.BillingRuleType, closingDay *int, withdrawalDay, position int) (*models.CardDefault, error)
	GetCards() ([]models.CardDefault, error)
	GetCardByID(id string) (*models.CardDefault, error)
	GetCardByKey(key string) (*models.CardDefault, error)
	UpdateCard(id string, label *string, rule *models.BillingRuleType, closingDay *int, withdrawalDay, position *int, isActive *bool) (*models.CardDefault, error)
	DeleteCard(id string) error
}

// EstimateInput holds the fields for creating a credit estimate.
type EstimateInput struct {
	YearMonth      string
	CardKey        string
	Description    string
	Amount         int64
	DueDate        *time.Time
	IsSplitPayment bool
	IsBonusPayment bool
}

// CardMonthTotal is one card's estimated statement total for a month.
type CardMonthTotal struct {
	CardKey string `json:"card_key"`
	Label   string `json:"label"`
	Total   int64  `json:"total"`
}

// EstimateServicer defines the contract for credit-estimate logic. The
// billing month of a new estimate comes from the card's billing rule;
// split payments produce a part-1/part-2 pair billed one month apart.
type EstimateServicer interface {
	CreateEstimate(input EstimateInput) ([]models.CreditEstimate, error)
	GetEstimates(page pagination.PageRequest, billingMonth, cardKey *string) (*pagination.PageResponse[models.CreditEstimate], error)
	GetEstimateByID(id string) (*models.CreditEstimate, error)
	UpdateEstimate(id string, description *string, amount *int64, billingMonth *string, dueDate *time.Time) (*models.CreditEstimate, error)
	DeleteEstimate(id string) error
	GetMonthlySummary(billingMonth string) ([]CardMonthTotal, error)
	// CardBillingAmounts sums estimates per card key for the month a
	// statement is withdrawn in.
	CardBillingAmounts(billingMonth string) (map[string]int64, error)
}

// EffectiveCharge is a recurring charge after per-month overrides and the
// odd-months-only filter have been applied to a usage month.
type EffectiveCharge struct {
	ChargeID string `json:"charge_id"`
	Label    string `json:"label"`
	CardKey  string `json:"card_key"`
	Amount   int64  `json:"amount"`
}

// ChargeServicer defines the contract for recurring-charge logic.
type ChargeServicer interface {
	CreateCharge(key, label, cardKey string, amount int64, oddMonthsOnly bool) (*models.RecurringCharge, error)
	GetCharges() ([]models.RecurringCharge, error)
	GetChargeByID(id string) (*models.RecurringCharge, error)
	UpdateCharge(id string, label *string, cardKey *string, amount *int64, isActive, oddMonthsOnly *bool) (*models.RecurringCharge, error)
	DeleteCharge(id string) error
	CreateOverride(chargeID, yearMonth string, amount int64, cardKey *string, isSplitPayment bool) (*models.ChargeOverride, error)
	DeleteOverride(chargeID, yearMonth string) error
	// EffectiveCharges resolves the charges that apply to a usage month.
	EffectiveCharges(usageMonth string) ([]EffectiveCharge, error)
}

// RunResult summarizes a completed simulation run.
type RunResult struct {
	EventCount    int      `json:"event_count"`
	EndingBalance int64    `json:"ending_balance"`
	Months        int      `json:"months"`
	StartMonth    string   `json:"start_month"`
	SkippedMonths []string `json:"skipped_months,omitempty"`
}

// SimulationServicer runs the projection: expand every plan in the active
// configuration's window into dated events and replace the stored event
// set in a single transaction.
type SimulationServicer interface {
	RunSimulation() (*RunResult, error)
}

// EventServicer defines the contract for reading the derived event ledger.
type EventServicer interface {
	GetEvents(page pagination.PageRequest, month, eventType *string) (*pagination.PageResponse[models.TransactionEvent], error)
	ExportCSV(w io.Writer) error
}
