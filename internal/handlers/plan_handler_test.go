package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "github.com/y2-world/future-budget-simulator/internal/errors"
	"github.com/y2-world/future-budget-simulator/internal/models"
	"github.com/y2-world/future-budget-simulator/internal/pagination"
	"github.com/y2-world/future-budget-simulator/internal/services"
)

// --- mock service ---

type mockPlanService struct {
	createPlanFn     func(yearMonth string, amounts services.PlanAmounts) (*models.MonthlyPlan, error)
	getPlansFn       func(page pagination.PageRequest, fromMonth *string) (*pagination.PageResponse[models.MonthlyPlan], error)
	getPlanByIDFn    func(id string) (*models.MonthlyPlan, error)
	deletePlanFn     func(id string) error
	getPlanSummaryFn func(id string) (*services.PlanSummary, error)
}

func (m *mockPlanService) CreatePlan(yearMonth string, amounts services.PlanAmounts) (*models.MonthlyPlan, error) {
	if m.createPlanFn != nil {
		return m.createPlanFn(yearMonth, amounts)
	}
	return &models.MonthlyPlan{YearMonth: yearMonth}, nil
}

func (m *mockPlanService) GetPlans(page pagination.PageRequest, fromMonth *string) (*pagination.PageResponse[models.MonthlyPlan], error) {
	if m.getPlansFn != nil {
		return m.getPlansFn(page, fromMonth)
	}
	resp := pagination.NewPageResponse([]models.MonthlyPlan{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockPlanService) GetPlanByID(id string) (*models.MonthlyPlan, error) {
	if m.getPlanByIDFn != nil {
		return m.getPlanByIDFn(id)
	}
	return &models.MonthlyPlan{}, nil
}

func (m *mockPlanService) GetPlanByMonth(yearMonth string) (*models.MonthlyPlan, error) {
	return &models.MonthlyPlan{YearMonth: yearMonth}, nil
}

func (m *mockPlanService) UpdatePlan(id string, amounts services.PlanAmounts) (*models.MonthlyPlan, error) {
	return &models.MonthlyPlan{}, nil
}

func (m *mockPlanService) DeletePlan(id string) error {
	if m.deletePlanFn != nil {
		return m.deletePlanFn(id)
	}
	return nil
}

func (m *mockPlanService) GetPlanSummary(id string) (*services.PlanSummary, error) {
	if m.getPlanSummaryFn != nil {
		return m.getPlanSummaryFn(id)
	}
	return &services.PlanSummary{}, nil
}

func setupPlanRouter(svc services.PlanServicer) *gin.Engine {
	h := NewPlanHandler(svc)
	r := gin.New()
	r.POST("/plans", h.CreatePlan)
	r.GET("/plans", h.GetPlans)
	r.GET("/plans/:id", h.GetPlan)
	r.PUT("/plans/:id", h.UpdatePlan)
	r.DELETE("/plans/:id", h.DeletePlan)
	r.GET("/plans/:id/summary", h.GetPlanSummary)
	return r
}

const testUUID = "0190e2a0-7a3e-7bbb-9d6e-000000000001"

func TestPlanHandler_CreatePlan(t *testing.T) {
	t.Run("creates a plan", func(t *testing.T) {
		r := setupPlanRouter(&mockPlanService{})
		rec := doRequest(r, http.MethodPost, "/plans", `{"year_month":"2025-07","salary":300000}`)
		if rec.Code != http.StatusCreated {
			t.Errorf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("rejects a malformed month at binding", func(t *testing.T) {
		r := setupPlanRouter(&mockPlanService{})
		rec := doRequest(r, http.MethodPost, "/plans", `{"year_month":"2025/07"}`)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}
		if code := errorCode(t, rec); code != "INVALID_INPUT" {
			t.Errorf("expected INVALID_INPUT, got %s", code)
		}
	})

	t.Run("rejects a negative amount", func(t *testing.T) {
		r := setupPlanRouter(&mockPlanService{})
		rec := doRequest(r, http.MethodPost, "/plans", `{"year_month":"2025-07","salary":-1}`)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("maps a duplicate month to 409", func(t *testing.T) {
		r := setupPlanRouter(&mockPlanService{
			createPlanFn: func(string, services.PlanAmounts) (*models.MonthlyPlan, error) {
				return nil, apperrors.ErrDuplicatePlanMonth
			},
		})
		rec := doRequest(r, http.MethodPost, "/plans", `{"year_month":"2025-07"}`)
		if rec.Code != http.StatusConflict {
			t.Errorf("expected 409, got %d", rec.Code)
		}
		if code := errorCode(t, rec); code != "DUPLICATE_PLAN_MONTH" {
			t.Errorf("expected DUPLICATE_PLAN_MONTH, got %s", code)
		}
	})
}

func TestPlanHandler_GetPlan(t *testing.T) {
	t.Run("rejects a non-UUID id", func(t *testing.T) {
		r := setupPlanRouter(&mockPlanService{})
		rec := doRequest(r, http.MethodGet, "/plans/not-a-uuid", "")
		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("maps a missing plan to 404", func(t *testing.T) {
		r := setupPlanRouter(&mockPlanService{
			getPlanByIDFn: func(string) (*models.MonthlyPlan, error) {
				return nil, apperrors.ErrPlanNotFound
			},
		})
		rec := doRequest(r, http.MethodGet, "/plans/"+testUUID, "")
		if rec.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", rec.Code)
		}
	})
}

func TestPlanHandler_DeletePlan(t *testing.T) {
	r := setupPlanRouter(&mockPlanService{})
	rec := doRequest(r, http.MethodDelete, "/plans/"+testUUID, "")
	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rec.Code)
	}
}
