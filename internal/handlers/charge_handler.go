package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/y2-world/future-budget-simulator/internal/errors"
	"github.com/y2-world/future-budget-simulator/internal/services"
)

// ChargeHandler handles recurring-charge requests.
type ChargeHandler struct {
	chargeService services.ChargeServicer
}

// NewChargeHandler creates a new ChargeHandler.
func NewChargeHandler(chargeService services.ChargeServicer) *ChargeHandler {
	return &ChargeHandler{chargeService: chargeService}
}

// CreateChargeRequest represents the request payload for creating a charge.
type CreateChargeRequest struct {
	Key           string `json:"key" binding:"required,min=1,max=50"`
	Label         string `json:"label" binding:"required,min=1,max=100"`
	CardKey       string `json:"card_key" binding:"required,card_key"`
	Amount        int64  `json:"amount" binding:"required,gt=0"`
	OddMonthsOnly bool   `json:"odd_months_only"`
}

// UpdateChargeRequest represents the request payload for updating a charge.
type UpdateChargeRequest struct {
	Label         *string `json:"label" binding:"omitempty,min=1,max=100"`
	CardKey       *string `json:"card_key" binding:"omitempty,card_key"`
	Amount        *int64  `json:"amount" binding:"omitempty,gt=0"`
	IsActive      *bool   `json:"is_active"`
	OddMonthsOnly *bool   `json:"odd_months_only"`
}

// CreateOverrideRequest represents the request payload for a month override.
type CreateOverrideRequest struct {
	YearMonth      string  `json:"year_month" binding:"required,year_month"`
	Amount         int64   `json:"amount" binding:"gte=0"`
	CardKey        *string `json:"card_key" binding:"omitempty,card_key"`
	IsSplitPayment bool    `json:"is_split_payment"`
}

// CreateCharge handles the creation of a new recurring charge.
// @Summary     Create a recurring charge
// @Description Create a charge billed to a card every month (or every odd month)
// @Tags        charges
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateChargeRequest true "Charge details"
// @Success     201 {object} models.RecurringCharge "Charge created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     409 {object} ErrorResponse "Charge key already exists"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /charges [post]
func (h *ChargeHandler) CreateCharge(c *gin.Context) {
	var req CreateChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	charge, err := h.chargeService.CreateCharge(req.Key, req.Label, req.CardKey, req.Amount, req.OddMonthsOnly)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"charge": charge})
}

// GetCharges handles listing recurring charges.
// @Summary     Get recurring charges
// @Description Get all recurring charges with their month overrides
// @Tags        charges
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} models.RecurringCharge "Charges"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /charges [get]
func (h *ChargeHandler) GetCharges(c *gin.Context) {
	charges, err := h.chargeService.GetCharges()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"charges": charges})
}

// UpdateCharge handles updating a charge.
// @Summary     Update a recurring charge
// @Description Update fields of an existing recurring charge
// @Tags        charges
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string              true "Charge ID"
// @Param       request body UpdateChargeRequest true "Fields to update"
// @Success     200 {object} models.RecurringCharge "Charge updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Charge not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /charges/{id} [put]
func (h *ChargeHandler) UpdateCharge(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	charge, err := h.chargeService.UpdateCharge(id, req.Label, req.CardKey, req.Amount, req.IsActive, req.OddMonthsOnly)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"charge": charge})
}

// DeleteCharge handles deleting a charge.
// @Summary     Delete a recurring charge
// @Description Delete a recurring charge and its overrides
// @Tags        charges
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Charge ID"
// @Success     204 "Charge deleted"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Charge not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /charges/{id} [delete]
func (h *ChargeHandler) DeleteCharge(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.chargeService.DeleteCharge(id); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// CreateOverride handles creating a month override for a charge.
// @Summary     Create a charge override
// @Description Replace a charge's amount (and optionally card) for one month
// @Tags        charges
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string                true "Charge ID"
// @Param       request body CreateOverrideRequest true "Override details"
// @Success     201 {object} models.ChargeOverride "Override created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Charge not found"
// @Failure     409 {object} ErrorResponse "Override for this month already exists"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /charges/{id}/overrides [post]
func (h *ChargeHandler) CreateOverride(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateOverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	override, err := h.chargeService.CreateOverride(id, req.YearMonth, req.Amount, req.CardKey, req.IsSplitPayment)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"override": override})
}

// DeleteOverride handles removing a month override.
// @Summary     Delete a charge override
// @Description Remove the override for one month of a charge
// @Tags        charges
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id    path string true "Charge ID"
// @Param       month path string true "Override month (YYYY-MM)"
// @Success     204 "Override deleted"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Override not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /charges/{id}/overrides/{month} [delete]
func (h *ChargeHandler) DeleteOverride(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.chargeService.DeleteOverride(id, c.Param("month")); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
