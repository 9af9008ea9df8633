package services

import (
	"testing"
	"time"

	"github.com/y2-world/future-budget-simulator/internal/models"
	"github.com/y2-world/future-budget-simulator/internal/testutil"
)

func setupEstimateService(t *testing.T) (EstimateServicer, CardServicer) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.TeardownTestDB(t, db) })
	cardSvc := NewCardService(db)
	return NewEstimateService(db, cardSvc), cardSvc
}

func TestEstimateService_CreateEstimate(t *testing.T) {
	svc, cardSvc := setupEstimateService(t)

	_, err := cardSvc.CreateCard("rakuten_card", "Rakuten Card", models.BillingRuleEndOfMonth, nil, 27, 1)
	testutil.AssertNoError(t, err)
	_, err = cardSvc.CreateCard("view_card", "VIEW Card", models.BillingRuleNextMonthClosing, intp(5), 4, 0)
	testutil.AssertNoError(t, err)

	t.Run("bills the month after usage for end-of-month cards", func(t *testing.T) {
		created, err := svc.CreateEstimate(EstimateInput{
			YearMonth:   "2025-07",
			CardKey:     "rakuten_card",
			Description: "Groceries",
			Amount:      12000,
		})
		testutil.AssertNoError(t, err)
		if len(created) != 1 {
			t.Fatalf("expected 1 estimate, got %d", len(created))
		}
		if created[0].BillingMonth != "2025-08" {
			t.Errorf("expected billing month 2025-08, got %s", created[0].BillingMonth)
		}
	})

	t.Run("bills two months after usage for next-month-closing cards", func(t *testing.T) {
		created, err := svc.CreateEstimate(EstimateInput{
			YearMonth:   "2025-01",
			CardKey:     "view_card",
			Description: "Commuter pass",
			Amount:      20000,
		})
		testutil.AssertNoError(t, err)
		if created[0].BillingMonth != "2025-03" {
			t.Errorf("expected billing month 2025-03, got %s", created[0].BillingMonth)
		}
	})

	t.Run("split payment makes a two-part pair a month apart", func(t *testing.T) {
		created, err := svc.CreateEstimate(EstimateInput{
			YearMonth:      "2025-07",
			CardKey:        "rakuten_card",
			Description:    "Laptop",
			Amount:         100001,
			IsSplitPayment: true,
		})
		testutil.AssertNoError(t, err)
		if len(created) != 2 {
			t.Fatalf("expected a split pair, got %d estimates", len(created))
		}

		first, second := created[0], created[1]
		if first.Amount != 50001 || second.Amount != 50000 {
			t.Errorf("expected odd yen on part 1: got %d and %d", first.Amount, second.Amount)
		}
		if first.BillingMonth != "2025-08" || second.BillingMonth != "2025-09" {
			t.Errorf("expected billing months 2025-08 and 2025-09, got %s and %s", first.BillingMonth, second.BillingMonth)
		}
		if first.SplitGroup == nil || second.SplitGroup == nil || *first.SplitGroup != *second.SplitGroup {
			t.Error("expected both parts to share a split group")
		}
		if first.SplitPart == nil || *first.SplitPart != 1 || second.SplitPart == nil || *second.SplitPart != 2 {
			t.Error("expected split parts 1 and 2")
		}
	})

	t.Run("bonus payment bills in its due-date month", func(t *testing.T) {
		due := time.Date(2026, time.January, 4, 0, 0, 0, 0, time.UTC)
		created, err := svc.CreateEstimate(EstimateInput{
			YearMonth:      "2025-07",
			CardKey:        "view_card",
			Description:    "Winter bonus purchase",
			Amount:         80000,
			DueDate:        &due,
			IsBonusPayment: true,
		})
		testutil.AssertNoError(t, err)
		if created[0].BillingMonth != "2026-01" {
			t.Errorf("expected billing month 2026-01, got %s", created[0].BillingMonth)
		}
	})

	t.Run("bonus payment requires a due date", func(t *testing.T) {
		_, err := svc.CreateEstimate(EstimateInput{
			YearMonth:      "2025-07",
			CardKey:        "view_card",
			Description:    "No due date",
			Amount:         80000,
			IsBonusPayment: true,
		})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("unknown card", func(t *testing.T) {
		_, err := svc.CreateEstimate(EstimateInput{
			YearMonth: "2025-07",
			CardKey:   "amex",
			Amount:    1000,
		})
		testutil.AssertAppError(t, err, "CARD_NOT_FOUND")
	})

	t.Run("malformed usage month", func(t *testing.T) {
		_, err := svc.CreateEstimate(EstimateInput{
			YearMonth: "July 2025",
			CardKey:   "rakuten_card",
			Amount:    1000,
		})
		testutil.AssertAppError(t, err, "INVALID_YEAR_MONTH")
	})
}

func TestEstimateService_UpdateEstimate(t *testing.T) {
	svc, cardSvc := setupEstimateService(t)

	_, err := cardSvc.CreateCard("rakuten_card", "Rakuten Card", models.BillingRuleEndOfMonth, nil, 27, 1)
	testutil.AssertNoError(t, err)

	t.Run("updates amount on a plain estimate", func(t *testing.T) {
		created, err := svc.CreateEstimate(EstimateInput{
			YearMonth:   "2025-07",
			CardKey:     "rakuten_card",
			Description: "Groceries",
			Amount:      12000,
		})
		testutil.AssertNoError(t, err)

		updated, err := svc.UpdateEstimate(created[0].ID, nil, int64p(13500), nil, nil)
		testutil.AssertNoError(t, err)
		if updated.Amount != 13500 {
			t.Errorf("expected amount 13500, got %d", updated.Amount)
		}
	})

	t.Run("split parts cannot change amount or billing month", func(t *testing.T) {
		created, err := svc.CreateEstimate(EstimateInput{
			YearMonth:      "2025-07",
			CardKey:        "rakuten_card",
			Description:    "Camera",
			Amount:         100001,
			IsSplitPayment: true,
		})
		testutil.AssertNoError(t, err)

		_, err = svc.UpdateEstimate(created[0].ID, nil, int64p(60000), nil, nil)
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		_, err = svc.UpdateEstimate(created[1].ID, nil, nil, strp("2025-12"), nil)
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		// Description edits leave the pair's amounts and months intact.
		updated, err := svc.UpdateEstimate(created[0].ID, strp("Camera body"), nil, nil, nil)
		testutil.AssertNoError(t, err)
		if updated.Description != "Camera body" {
			t.Errorf("expected updated description, got %s", updated.Description)
		}
		if updated.Amount != 50001 || updated.BillingMonth != "2025-08" {
			t.Errorf("expected split part untouched, got %d in %s", updated.Amount, updated.BillingMonth)
		}
	})

	t.Run("rejects a malformed billing month", func(t *testing.T) {
		created, err := svc.CreateEstimate(EstimateInput{
			YearMonth:   "2025-07",
			CardKey:     "rakuten_card",
			Description: "Books",
			Amount:      4000,
		})
		testutil.AssertNoError(t, err)

		_, err = svc.UpdateEstimate(created[0].ID, nil, nil, strp("2025-13"), nil)
		testutil.AssertAppError(t, err, "INVALID_YEAR_MONTH")
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.UpdateEstimate("00000000-0000-0000-0000-000000000000", strp("x"), nil, nil, nil)
		testutil.AssertAppError(t, err, "ESTIMATE_NOT_FOUND")
	})
}

func TestEstimateService_DeleteEstimate(t *testing.T) {
	svc, cardSvc := setupEstimateService(t)

	_, err := cardSvc.CreateCard("rakuten_card", "Rakuten Card", models.BillingRuleEndOfMonth, nil, 27, 1)
	testutil.AssertNoError(t, err)

	t.Run("deleting one split part removes the pair", func(t *testing.T) {
		created, err := svc.CreateEstimate(EstimateInput{
			YearMonth:      "2025-07",
			CardKey:        "rakuten_card",
			Description:    "Laptop",
			Amount:         100000,
			IsSplitPayment: true,
		})
		testutil.AssertNoError(t, err)

		testutil.AssertNoError(t, svc.DeleteEstimate(created[1].ID))

		_, err = svc.GetEstimateByID(created[0].ID)
		testutil.AssertAppError(t, err, "ESTIMATE_NOT_FOUND")
		_, err = svc.GetEstimateByID(created[1].ID)
		testutil.AssertAppError(t, err, "ESTIMATE_NOT_FOUND")
	})

	t.Run("unknown id", func(t *testing.T) {
		err := svc.DeleteEstimate("00000000-0000-0000-0000-000000000000")
		testutil.AssertAppError(t, err, "ESTIMATE_NOT_FOUND")
	})
}

func TestEstimateService_CardBillingAmounts(t *testing.T) {
	svc, cardSvc := setupEstimateService(t)

	_, err := cardSvc.CreateCard("rakuten_card", "Rakuten Card", models.BillingRuleEndOfMonth, nil, 27, 1)
	testutil.AssertNoError(t, err)
	_, err = cardSvc.CreateCard("paypay_card", "PayPay Card", models.BillingRuleEndOfMonth, nil, 27, 2)
	testutil.AssertNoError(t, err)

	for _, in := range []EstimateInput{
		{YearMonth: "2025-07", CardKey: "rakuten_card", Description: "A", Amount: 10000},
		{YearMonth: "2025-07", CardKey: "rakuten_card", Description: "B", Amount: 5000},
		{YearMonth: "2025-07", CardKey: "paypay_card", Description: "C", Amount: 3000},
		{YearMonth: "2025-08", CardKey: "rakuten_card", Description: "D", Amount: 999},
	} {
		_, err := svc.CreateEstimate(in)
		testutil.AssertNoError(t, err)
	}

	amounts, err := svc.CardBillingAmounts("2025-08")
	testutil.AssertNoError(t, err)
	if amounts["rakuten_card"] != 15000 {
		t.Errorf("expected rakuten_card total 15000, got %d", amounts["rakuten_card"])
	}
	if amounts["paypay_card"] != 3000 {
		t.Errorf("expected paypay_card total 3000, got %d", amounts["paypay_card"])
	}
	if _, ok := amounts["view_card"]; ok {
		t.Error("expected no entry for a card with no estimates")
	}

	summary, err := svc.GetMonthlySummary("2025-08")
	testutil.AssertNoError(t, err)
	if len(summary) != 2 {
		t.Fatalf("expected 2 summary rows, got %d", len(summary))
	}
	if summary[0].CardKey != "rakuten_card" {
		t.Errorf("expected display order, got %s first", summary[0].CardKey)
	}
}
