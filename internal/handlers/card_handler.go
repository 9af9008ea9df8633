package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/y2-world/future-budget-simulator/internal/errors"
	"github.com/y2-world/future-budget-simulator/internal/models"
	"github.com/y2-world/future-budget-simulator/internal/services"
)

// CardHandler handles card-default requests.
type CardHandler struct {
	cardService services.CardServicer
}

// NewCardHandler creates a new CardHandler.
func NewCardHandler(cardService services.CardServicer) *CardHandler {
	return &CardHandler{cardService: cardService}
}

// CreateCardRequest represents the request payload for creating a card.
type CreateCardRequest struct {
	Key           string `json:"key" binding:"required,card_key"`
	Label         string `json:"label" binding:"required,min=1,max=100"`
	BillingRule   string `json:"billing_rule" binding:"required,billing_rule"`
	ClosingDay    *int   `json:"closing_day" binding:"omitempty,day_of_month"`
	WithdrawalDay int    `json:"withdrawal_day" binding:"required,day_of_month"`
	Position      int    `json:"position" binding:"omitempty,gte=0"`
}

// UpdateCardRequest represents the request payload for updating a card.
type UpdateCardRequest struct {
	Label         *string `json:"label" binding:"omitempty,min=1,max=100"`
	BillingRule   *string `json:"billing_rule" binding:"omitempty,billing_rule"`
	ClosingDay    *int    `json:"closing_day" binding:"omitempty,day_of_month"`
	WithdrawalDay *int    `json:"withdrawal_day" binding:"omitempty,day_of_month"`
	Position      *int    `json:"position" binding:"omitempty,gte=0"`
	IsActive      *bool   `json:"is_active"`
}

// CreateCard handles the creation of a new card default.
// @Summary     Create a card
// @Description Create a new credit-card default with its billing rule
// @Tags        cards
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateCardRequest true "Card details"
// @Success     201 {object} models.CardDefault "Card created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     409 {object} ErrorResponse "Card key already exists"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /cards [post]
func (h *CardHandler) CreateCard(c *gin.Context) {
	var req CreateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	card, err := h.cardService.CreateCard(
		req.Key, req.Label, models.BillingRuleType(req.BillingRule),
		req.ClosingDay, req.WithdrawalDay, req.Position,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"card": card})
}

// GetCards handles listing card defaults.
// @Summary     Get cards
// @Description Get all card defaults in display order
// @Tags        cards
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} models.CardDefault "Cards"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /cards [get]
func (h *CardHandler) GetCards(c *gin.Context) {
	cards, err := h.cardService.GetCards()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"cards": cards})
}

// GetCard handles retrieving a specific card.
// @Summary     Get card by ID
// @Description Get a single card default
// @Tags        cards
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Card ID"
// @Success     200 {object} models.CardDefault "Card"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Card not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /cards/{id} [get]
func (h *CardHandler) GetCard(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	card, err := h.cardService.GetCardByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"card": card})
}

// UpdateCard handles updating a card.
// @Summary     Update a card
// @Description Update fields of an existing card default
// @Tags        cards
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string            true "Card ID"
// @Param       request body UpdateCardRequest true "Fields to update"
// @Success     200 {object} models.CardDefault "Card updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Card not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /cards/{id} [put]
func (h *CardHandler) UpdateCard(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var rule *models.BillingRuleType
	if req.BillingRule != nil {
		r := models.BillingRuleType(*req.BillingRule)
		rule = &r
	}

	card, err := h.cardService.UpdateCard(id, req.Label, rule, req.ClosingDay, req.WithdrawalDay, req.Position, req.IsActive)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"card": card})
}

// DeleteCard handles deleting a card.
// @Summary     Delete a card
// @Description Delete a card default
// @Tags        cards
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Card ID"
// @Success     204 "Card deleted"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Card not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /cards/{id} [delete]
func (h *CardHandler) DeleteCard(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.cardService.DeleteCard(id); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
