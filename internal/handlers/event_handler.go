package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/y2-world/future-budget-simulator/internal/errors"
	"github.com/y2-world/future-budget-simulator/internal/pagination"
	"github.com/y2-world/future-budget-simulator/internal/services"
)

// EventHandler handles transaction-event requests.
type EventHandler struct {
	eventService services.EventServicer
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(eventService services.EventServicer) *EventHandler {
	return &EventHandler{eventService: eventService}
}

// EventQuery represents the query filters for listing events.
type EventQuery struct {
	pagination.PageRequest
	Month     string `form:"month" binding:"omitempty,year_month"`
	EventType string `form:"event_type" binding:"omitempty,event_type"`
}

// GetEvents handles listing simulated events.
// @Summary     Get transaction events
// @Description Get a paginated list of simulated events in date order
// @Tags        events
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       month      query string false "Filter to one month (YYYY-MM)"
// @Param       event_type query string false "Filter to one event type (schedule category key)"
// @Param       page       query int    false "Page number (default 1)"
// @Param       page_size  query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.TransactionEvent] "Paginated events"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /events [get]
func (h *EventHandler) GetEvents(c *gin.Context) {
	var query EventQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var month, eventType *string
	if query.Month != "" {
		month = &query.Month
	}
	if query.EventType != "" {
		eventType = &query.EventType
	}

	result, err := h.eventService.GetEvents(query.PageRequest, month, eventType)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ExportEvents handles exporting the event ledger as CSV.
// @Summary     Export events as CSV
// @Description Download the full simulated event ledger as a CSV file
// @Tags        events
// @Produce     text/csv
// @Security    BearerAuth
// @Success     200 {string} string "CSV data"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /events/export [get]
func (h *EventHandler) ExportEvents(c *gin.Context) {
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="transaction_events.csv"`)
	if err := h.eventService.ExportCSV(c.Writer); err != nil {
		respondWithError(c, err)
		return
	}
}
