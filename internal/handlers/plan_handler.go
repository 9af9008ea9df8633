package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/y2-world/future-budget-simulator/internal/errors"
	"github.com/y2-world/future-budget-simulator/internal/pagination"
	"github.com/y2-world/future-budget-simulator/internal/services"
)

// PlanHandler handles monthly-plan requests.
type PlanHandler struct {
	planService services.PlanServicer
}

// NewPlanHandler creates a new PlanHandler.
func NewPlanHandler(planService services.PlanServicer) *PlanHandler {
	return &PlanHandler{planService: planService}
}

// PlanAmountsRequest holds the optional per-category amounts shared by the
// create and update payloads.
type PlanAmountsRequest struct {
	Salary          *int64 `json:"salary" binding:"omitempty,gte=0"`
	Bonus           *int64 `json:"bonus" binding:"omitempty,gte=0"`
	LoanBorrowing   *int64 `json:"loan_borrowing" binding:"omitempty,gte=0"`
	GrossSalary     *int64 `json:"gross_salary" binding:"omitempty,gte=0"`
	Deductions      *int64 `json:"deductions" binding:"omitempty,gte=0"`
	BonusGross      *int64 `json:"bonus_gross" binding:"omitempty,gte=0"`
	BonusDeductions *int64 `json:"bonus_deductions" binding:"omitempty,gte=0"`
	Food            *int64 `json:"food" binding:"omitempty,gte=0"`
	Rent            *int64 `json:"rent" binding:"omitempty,gte=0"`
	ViewCard        *int64 `json:"view_card" binding:"omitempty,gte=0"`
	ViewCardBonus   *int64 `json:"view_card_bonus" binding:"omitempty,gte=0"`
	RakutenCard     *int64 `json:"rakuten_card" binding:"omitempty,gte=0"`
	PayPayCard      *int64 `json:"paypay_card" binding:"omitempty,gte=0"`
	Savings         *int64 `json:"savings" binding:"omitempty,gte=0"`
	Loan            *int64 `json:"loan" binding:"omitempty,gte=0"`
	Utilities       *int64 `json:"utilities" binding:"omitempty,gte=0"`
	Transportation  *int64 `json:"transportation" binding:"omitempty,gte=0"`
	Entertainment   *int64 `json:"entertainment" binding:"omitempty,gte=0"`
	Other           *int64 `json:"other" binding:"omitempty,gte=0"`
}

func (r PlanAmountsRequest) toAmounts() services.PlanAmounts {
	return services.PlanAmounts{
		Salary:          r.Salary,
		Bonus:           r.Bonus,
		LoanBorrowing:   r.LoanBorrowing,
		GrossSalary:     r.GrossSalary,
		Deductions:      r.Deductions,
		BonusGross:      r.BonusGross,
		BonusDeductions: r.BonusDeductions,
		Food:            r.Food,
		Rent:            r.Rent,
		ViewCard:        r.ViewCard,
		ViewCardBonus:   r.ViewCardBonus,
		RakutenCard:     r.RakutenCard,
		PayPayCard:      r.PayPayCard,
		Savings:         r.Savings,
		Loan:            r.Loan,
		Utilities:       r.Utilities,
		Transportation:  r.Transportation,
		Entertainment:   r.Entertainment,
		Other:           r.Other,
	}
}

// CreatePlanRequest represents the request payload for creating a plan.
type CreatePlanRequest struct {
	YearMonth string `json:"year_month" binding:"required,year_month"`
	PlanAmountsRequest
}

// CreatePlan handles the creation of a new monthly plan.
// @Summary     Create a monthly plan
// @Description Create the plan for one calendar month
// @Tags        plans
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreatePlanRequest true "Plan details"
// @Success     201 {object} models.MonthlyPlan "Plan created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     409 {object} ErrorResponse "Plan for this month already exists"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /plans [post]
func (h *PlanHandler) CreatePlan(c *gin.Context) {
	var req CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	plan, err := h.planService.CreatePlan(req.YearMonth, req.toAmounts())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"plan": plan})
}

// GetPlans handles listing plans.
// @Summary     Get monthly plans
// @Description Get a paginated list of monthly plans ordered by month
// @Tags        plans
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       from      query string false "Include plans from this month (YYYY-MM) onward"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.MonthlyPlan] "Paginated plans"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /plans [get]
func (h *PlanHandler) GetPlans(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var fromMonth *string
	if v := c.Query("from"); v != "" {
		fromMonth = &v
	}

	result, err := h.planService.GetPlans(page, fromMonth)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetPlan handles retrieving a specific plan.
// @Summary     Get plan by ID
// @Description Get a single monthly plan
// @Tags        plans
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Plan ID"
// @Success     200 {object} models.MonthlyPlan "Plan"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Plan not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /plans/{id} [get]
func (h *PlanHandler) GetPlan(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	plan, err := h.planService.GetPlanByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"plan": plan})
}

// GetPlanByMonth handles retrieving the plan for a given month.
// @Summary     Get plan by month
// @Description Get the monthly plan for a YYYY-MM month
// @Tags        plans
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       month path string true "Month (YYYY-MM)"
// @Success     200 {object} models.MonthlyPlan "Plan"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Plan not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /plans/month/{month} [get]
func (h *PlanHandler) GetPlanByMonth(c *gin.Context) {
	plan, err := h.planService.GetPlanByMonth(c.Param("month"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"plan": plan})
}

// UpdatePlan handles updating a plan's amounts.
// @Summary     Update a plan
// @Description Update the amounts of an existing monthly plan
// @Tags        plans
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string             true "Plan ID"
// @Param       request body PlanAmountsRequest true "Amounts to update"
// @Success     200 {object} models.MonthlyPlan "Plan updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Plan not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /plans/{id} [put]
func (h *PlanHandler) UpdatePlan(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req PlanAmountsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	plan, err := h.planService.UpdatePlan(id, req.toAmounts())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"plan": plan})
}

// DeletePlan handles deleting a plan.
// @Summary     Delete a plan
// @Description Delete a monthly plan and its derived events
// @Tags        plans
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Plan ID"
// @Success     204 "Plan deleted"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Plan not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /plans/{id} [delete]
func (h *PlanHandler) DeletePlan(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.planService.DeletePlan(id); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetPlanSummary handles retrieving a plan's computed totals.
// @Summary     Get plan summary
// @Description Get the computed income, expense, and net totals of a plan
// @Tags        plans
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Plan ID"
// @Success     200 {object} services.PlanSummary "Plan summary"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Plan not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /plans/{id}/summary [get]
func (h *PlanHandler) GetPlanSummary(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.planService.GetPlanSummary(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}
