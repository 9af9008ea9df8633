package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/y2-world/future-budget-simulator/internal/errors"
	"github.com/y2-world/future-budget-simulator/internal/pagination"
	"github.com/y2-world/future-budget-simulator/internal/services"
)

// EstimateHandler handles credit-estimate requests.
type EstimateHandler struct {
	estimateService services.EstimateServicer
}

// NewEstimateHandler creates a new EstimateHandler.
func NewEstimateHandler(estimateService services.EstimateServicer) *EstimateHandler {
	return &EstimateHandler{estimateService: estimateService}
}

// CreateEstimateRequest represents the request payload for creating an estimate.
type CreateEstimateRequest struct {
	YearMonth      string     `json:"year_month" binding:"required,year_month"`
	CardKey        string     `json:"card_key" binding:"required,card_key"`
	Description    string     `json:"description" binding:"max=200"`
	Amount         int64      `json:"amount" binding:"required,gt=0"`
	DueDate        *time.Time `json:"due_date"`
	IsSplitPayment bool       `json:"is_split_payment"`
	IsBonusPayment bool       `json:"is_bonus_payment"`
}

// UpdateEstimateRequest represents the request payload for updating an estimate.
type UpdateEstimateRequest struct {
	Description  *string    `json:"description" binding:"omitempty,max=200"`
	Amount       *int64     `json:"amount" binding:"omitempty,gt=0"`
	BillingMonth *string    `json:"billing_month" binding:"omitempty,year_month"`
	DueDate      *time.Time `json:"due_date"`
}

// CreateEstimate handles the creation of a new estimate.
// @Summary     Create a credit estimate
// @Description Record an estimated card purchase; the billing month follows the card's rule
// @Tags        estimates
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateEstimateRequest true "Estimate details"
// @Success     201 {array} models.CreditEstimate "Estimate created (two rows for a split payment)"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Card not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /estimates [post]
func (h *EstimateHandler) CreateEstimate(c *gin.Context) {
	var req CreateEstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	estimates, err := h.estimateService.CreateEstimate(services.EstimateInput{
		YearMonth:      req.YearMonth,
		CardKey:        req.CardKey,
		Description:    req.Description,
		Amount:         req.Amount,
		DueDate:        req.DueDate,
		IsSplitPayment: req.IsSplitPayment,
		IsBonusPayment: req.IsBonusPayment,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"estimates": estimates})
}

// GetEstimates handles listing estimates.
// @Summary     Get estimates
// @Description Get a paginated list of credit estimates with optional filters
// @Tags        estimates
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       billing_month query string false "Filter by billing month (YYYY-MM)"
// @Param       card_key      query string false "Filter by card key"
// @Param       page          query int    false "Page number (default 1)"
// @Param       page_size     query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.CreditEstimate] "Paginated estimates"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /estimates [get]
func (h *EstimateHandler) GetEstimates(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var billingMonth, cardKey *string
	if v := c.Query("billing_month"); v != "" {
		billingMonth = &v
	}
	if v := c.Query("card_key"); v != "" {
		cardKey = &v
	}

	result, err := h.estimateService.GetEstimates(page, billingMonth, cardKey)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// UpdateEstimate handles updating an estimate.
// @Summary     Update an estimate
// @Description Update fields of an existing credit estimate
// @Tags        estimates
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string                true "Estimate ID"
// @Param       request body UpdateEstimateRequest true "Fields to update"
// @Success     200 {object} models.CreditEstimate "Estimate updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Estimate not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /estimates/{id} [put]
func (h *EstimateHandler) UpdateEstimate(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateEstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	estimate, err := h.estimateService.UpdateEstimate(id, req.Description, req.Amount, req.BillingMonth, req.DueDate)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"estimate": estimate})
}

// DeleteEstimate handles deleting an estimate.
// @Summary     Delete an estimate
// @Description Delete a credit estimate; deleting one part of a split pair removes both
// @Tags        estimates
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Estimate ID"
// @Success     204 "Estimate deleted"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Estimate not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /estimates/{id} [delete]
func (h *EstimateHandler) DeleteEstimate(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.estimateService.DeleteEstimate(id); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetMonthlySummary handles retrieving per-card statement totals.
// @Summary     Get estimate totals per card
// @Description Get each card's estimated statement total for a billing month
// @Tags        estimates
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       month path string true "Billing month (YYYY-MM)"
// @Success     200 {array} services.CardMonthTotal "Totals per card"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /estimates/summary/{month} [get]
func (h *EstimateHandler) GetMonthlySummary(c *gin.Context) {
	summary, err := h.estimateService.GetMonthlySummary(c.Param("month"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}
