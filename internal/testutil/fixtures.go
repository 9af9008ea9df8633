package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/y2-world/future-budget-simulator/internal/models"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestConfig creates an active simulation config starting at the
// given month.
func CreateTestConfig(t *testing.T, db *gorm.DB, startYear int, startMonth time.Month, months int, initialBalance int64) *models.SimulationConfig {
	t.Helper()

	cfg := &models.SimulationConfig{
		InitialBalance:   initialBalance,
		StartDate:        time.Date(startYear, startMonth, 1, 0, 0, 0, 0, time.UTC),
		SimulationMonths: months,
		IsActive:         true,
	}
	if err := db.Create(cfg).Error; err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}
	return cfg
}

// CreateTestPlan creates a monthly plan for the given YYYY-MM month.
func CreateTestPlan(t *testing.T, db *gorm.DB, yearMonth string) *models.MonthlyPlan {
	t.Helper()

	plan := &models.MonthlyPlan{YearMonth: yearMonth}
	if err := db.Create(plan).Error; err != nil {
		t.Fatalf("failed to create test plan: %v", err)
	}
	return plan
}

// CreateTestCard creates an active card default with a unique key.
func CreateTestCard(t *testing.T, db *gorm.DB, rule models.BillingRuleType, closingDay *int) *models.CardDefault {
	t.Helper()

	n := nextID()
	card := &models.CardDefault{
		Key:           fmt.Sprintf("card_%d", n),
		Label:         fmt.Sprintf("Test Card %d", n),
		BillingRule:   rule,
		ClosingDay:    closingDay,
		WithdrawalDay: 27,
		IsActive:      true,
	}
	if err := db.Create(card).Error; err != nil {
		t.Fatalf("failed to create test card: %v", err)
	}
	return card
}

// CreateTestEstimate creates a credit estimate billed in billingMonth.
func CreateTestEstimate(t *testing.T, db *gorm.DB, cardKey, usageMonth, billingMonth string, amount int64) *models.CreditEstimate {
	t.Helper()

	est := &models.CreditEstimate{
		YearMonth:    usageMonth,
		CardKey:      cardKey,
		Description:  fmt.Sprintf("Test purchase %d", nextID()),
		Amount:       amount,
		BillingMonth: billingMonth,
	}
	if err := db.Create(est).Error; err != nil {
		t.Fatalf("failed to create test estimate: %v", err)
	}
	return est
}

// CreateTestCharge creates an active recurring charge on the given card.
func CreateTestCharge(t *testing.T, db *gorm.DB, cardKey string, amount int64) *models.RecurringCharge {
	t.Helper()

	n := nextID()
	charge := &models.RecurringCharge{
		Key:      fmt.Sprintf("charge_%d", n),
		Label:    fmt.Sprintf("Test Charge %d", n),
		CardKey:  cardKey,
		Amount:   amount,
		IsActive: true,
	}
	if err := db.Create(charge).Error; err != nil {
		t.Fatalf("failed to create test charge: %v", err)
	}
	return charge
}
