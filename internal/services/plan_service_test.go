package services

import (
	"testing"
	"time"

	"github.com/y2-world/future-budget-simulator/internal/models"
	"github.com/y2-world/future-budget-simulator/internal/pagination"
	"github.com/y2-world/future-budget-simulator/internal/testutil"
)

func int64p(v int64) *int64 { return &v }

func TestPlanService_CreatePlan(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	configSvc := NewConfigService(db)
	svc := NewPlanService(db, configSvc)

	t.Run("creates a plan with explicit amounts", func(t *testing.T) {
		plan, err := svc.CreatePlan("2025-07", PlanAmounts{
			Salary: int64p(300000),
			Rent:   int64p(85000),
		})
		testutil.AssertNoError(t, err)
		if plan.Salary != 300000 || plan.Rent != 85000 {
			t.Errorf("unexpected amounts: salary=%d rent=%d", plan.Salary, plan.Rent)
		}
		if plan.Food != 0 {
			t.Errorf("expected unset food to be zero, got %d", plan.Food)
		}
	})

	t.Run("rejects a duplicate month", func(t *testing.T) {
		_, err := svc.CreatePlan("2025-07", PlanAmounts{})
		testutil.AssertAppError(t, err, "DUPLICATE_PLAN_MONTH")
	})

	t.Run("rejects a malformed month", func(t *testing.T) {
		_, err := svc.CreatePlan("2025-7", PlanAmounts{})
		testutil.AssertAppError(t, err, "INVALID_YEAR_MONTH")
	})

	t.Run("defaults from the active config", func(t *testing.T) {
		savingsStart := "2025-09"
		_, err := configSvc.CreateConfig(ConfigInput{
			StartDate:         time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC),
			SimulationMonths:  12,
			DefaultSalary:     280000,
			DefaultFood:       40000,
			SavingsEnabled:    true,
			SavingsAmount:     30000,
			SavingsStartMonth: &savingsStart,
		})
		testutil.AssertNoError(t, err)

		plan, err := svc.CreatePlan("2025-10", PlanAmounts{})
		testutil.AssertNoError(t, err)
		if plan.Salary != 280000 {
			t.Errorf("expected default salary 280000, got %d", plan.Salary)
		}
		if plan.Food != 40000 {
			t.Errorf("expected default food 40000, got %d", plan.Food)
		}
		if plan.Savings != 30000 {
			t.Errorf("expected default savings 30000, got %d", plan.Savings)
		}
	})

	t.Run("savings default waits for its start month", func(t *testing.T) {
		plan, err := svc.CreatePlan("2025-08", PlanAmounts{})
		testutil.AssertNoError(t, err)
		if plan.Savings != 0 {
			t.Errorf("expected no savings before start month, got %d", plan.Savings)
		}
	})

	t.Run("explicit amounts beat defaults", func(t *testing.T) {
		plan, err := svc.CreatePlan("2025-11", PlanAmounts{Salary: int64p(350000)})
		testutil.AssertNoError(t, err)
		if plan.Salary != 350000 {
			t.Errorf("expected explicit salary 350000, got %d", plan.Salary)
		}
		if plan.Food != 40000 {
			t.Errorf("expected default food 40000, got %d", plan.Food)
		}
	})
}

func TestPlanService_GetPlans(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewPlanService(db, NewConfigService(db))

	for _, m := range []string{"2025-09", "2025-07", "2025-08"} {
		_, err := svc.CreatePlan(m, PlanAmounts{})
		testutil.AssertNoError(t, err)
	}

	t.Run("orders by month", func(t *testing.T) {
		page, err := svc.GetPlans(pagination.PageRequest{}, nil)
		testutil.AssertNoError(t, err)
		if len(page.Data) != 3 {
			t.Fatalf("expected 3 plans, got %d", len(page.Data))
		}
		if page.Data[0].YearMonth != "2025-07" || page.Data[2].YearMonth != "2025-09" {
			t.Errorf("plans out of order: %s .. %s", page.Data[0].YearMonth, page.Data[2].YearMonth)
		}
	})

	t.Run("filters from a month onward", func(t *testing.T) {
		from := "2025-08"
		page, err := svc.GetPlans(pagination.PageRequest{}, &from)
		testutil.AssertNoError(t, err)
		if len(page.Data) != 2 {
			t.Errorf("expected 2 plans from 2025-08, got %d", len(page.Data))
		}
	})
}

func TestPlanService_UpdatePlan(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewPlanService(db, NewConfigService(db))

	plan, err := svc.CreatePlan("2025-07", PlanAmounts{Salary: int64p(300000)})
	testutil.AssertNoError(t, err)

	updated, err := svc.UpdatePlan(plan.ID, PlanAmounts{Utilities: int64p(12000)})
	testutil.AssertNoError(t, err)
	if updated.Utilities != 12000 {
		t.Errorf("expected utilities 12000, got %d", updated.Utilities)
	}
	if updated.Salary != 300000 {
		t.Errorf("expected salary unchanged, got %d", updated.Salary)
	}
}

func TestPlanService_DeletePlan(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewPlanService(db, NewConfigService(db))

	plan, err := svc.CreatePlan("2025-07", PlanAmounts{})
	testutil.AssertNoError(t, err)

	event := models.TransactionEvent{
		Date:      time.Date(2025, time.July, 25, 0, 0, 0, 0, time.UTC),
		EventType: "salary",
		EventName: "Salary",
		Amount:    300000,
		PlanID:    plan.ID,
	}
	if err := db.Create(&event).Error; err != nil {
		t.Fatalf("failed to create event: %v", err)
	}

	t.Run("removes the plan and its events", func(t *testing.T) {
		testutil.AssertNoError(t, svc.DeletePlan(plan.ID))

		_, err := svc.GetPlanByID(plan.ID)
		testutil.AssertAppError(t, err, "PLAN_NOT_FOUND")

		var count int64
		if err := db.Model(&models.TransactionEvent{}).Where("plan_id = ?", plan.ID).Count(&count).Error; err != nil {
			t.Fatalf("count failed: %v", err)
		}
		if count != 0 {
			t.Errorf("expected derived events to be deleted, found %d", count)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		err := svc.DeletePlan("00000000-0000-0000-0000-000000000000")
		testutil.AssertAppError(t, err, "PLAN_NOT_FOUND")
	})
}

func TestPlanService_GetPlanSummary(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewPlanService(db, NewConfigService(db))

	plan, err := svc.CreatePlan("2025-07", PlanAmounts{
		Salary: int64p(300000),
		Bonus:  int64p(100000),
		Rent:   int64p(85000),
		Food:   int64p(40000),
	})
	testutil.AssertNoError(t, err)

	summary, err := svc.GetPlanSummary(plan.ID)
	testutil.AssertNoError(t, err)
	if summary.TotalIncome != 400000 {
		t.Errorf("expected total income 400000, got %d", summary.TotalIncome)
	}
	if summary.TotalExpenses != 125000 {
		t.Errorf("expected total expenses 125000, got %d", summary.TotalExpenses)
	}
	if summary.NetIncome != 275000 {
		t.Errorf("expected net income 275000, got %d", summary.NetIncome)
	}
}
