package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/y2-world/future-budget-simulator/internal/errors"
	"github.com/y2-world/future-budget-simulator/internal/pagination"
	"github.com/y2-world/future-budget-simulator/internal/services"
)

// ConfigHandler handles simulation-configuration requests.
type ConfigHandler struct {
	configService services.ConfigServicer
}

// NewConfigHandler creates a new ConfigHandler.
func NewConfigHandler(configService services.ConfigServicer) *ConfigHandler {
	return &ConfigHandler{configService: configService}
}

// CreateConfigRequest represents the request payload for creating a configuration.
type CreateConfigRequest struct {
	InitialBalance    int64     `json:"initial_balance" binding:"omitempty,gte=0"`
	StartDate         time.Time `json:"start_date" binding:"required"`
	SimulationMonths  int       `json:"simulation_months" binding:"required,min=1,max=120"`
	DefaultSalary     int64     `json:"default_salary" binding:"omitempty,gte=0"`
	DefaultFood       int64     `json:"default_food" binding:"omitempty,gte=0"`
	SavingsEnabled    bool      `json:"savings_enabled"`
	SavingsAmount     int64     `json:"savings_amount" binding:"omitempty,gte=0"`
	SavingsStartMonth *string   `json:"savings_start_month" binding:"omitempty,year_month"`
}

// UpdateConfigRequest represents the request payload for updating a configuration.
type UpdateConfigRequest struct {
	InitialBalance    *int64     `json:"initial_balance" binding:"omitempty,gte=0"`
	StartDate         *time.Time `json:"start_date"`
	SimulationMonths  *int       `json:"simulation_months" binding:"omitempty,min=1,max=120"`
	DefaultSalary     *int64     `json:"default_salary" binding:"omitempty,gte=0"`
	DefaultFood       *int64     `json:"default_food" binding:"omitempty,gte=0"`
	SavingsEnabled    *bool      `json:"savings_enabled"`
	SavingsAmount     *int64     `json:"savings_amount" binding:"omitempty,gte=0"`
	SavingsStartMonth *string    `json:"savings_start_month" binding:"omitempty,year_month"`
}

// UpdateBalanceRequest represents the request payload for setting the
// active configuration's starting balance.
type UpdateBalanceRequest struct {
	InitialBalance int64 `json:"initial_balance" binding:"gte=0"`
}

// CreateConfig handles the creation of a new configuration.
// @Summary     Create a configuration
// @Description Create a new simulation configuration and make it active
// @Tags        configs
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateConfigRequest true "Configuration details"
// @Success     201 {object} models.SimulationConfig "Configuration created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /configs [post]
func (h *ConfigHandler) CreateConfig(c *gin.Context) {
	var req CreateConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	cfg, err := h.configService.CreateConfig(services.ConfigInput{
		InitialBalance:    req.InitialBalance,
		StartDate:         req.StartDate,
		SimulationMonths:  req.SimulationMonths,
		DefaultSalary:     req.DefaultSalary,
		DefaultFood:       req.DefaultFood,
		SavingsEnabled:    req.SavingsEnabled,
		SavingsAmount:     req.SavingsAmount,
		SavingsStartMonth: req.SavingsStartMonth,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"config": cfg})
}

// GetConfigs handles listing configurations.
// @Summary     Get configurations
// @Description Get a paginated list of simulation configurations
// @Tags        configs
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.SimulationConfig] "Paginated configurations"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /configs [get]
func (h *ConfigHandler) GetConfigs(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.configService.GetConfigs(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetActiveConfig handles retrieving the active configuration.
// @Summary     Get the active configuration
// @Description Get the configuration the next simulation run will use
// @Tags        configs
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} models.SimulationConfig "Active configuration"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     409 {object} ErrorResponse "No active configuration"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /configs/active [get]
func (h *ConfigHandler) GetActiveConfig(c *gin.Context) {
	cfg, err := h.configService.GetActiveConfig()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"config": cfg})
}

// UpdateConfig handles updating a configuration.
// @Summary     Update a configuration
// @Description Update fields of an existing simulation configuration
// @Tags        configs
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string              true "Configuration ID"
// @Param       request body UpdateConfigRequest true "Fields to update"
// @Success     200 {object} models.SimulationConfig "Configuration updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Configuration not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /configs/{id} [put]
func (h *ConfigHandler) UpdateConfig(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	cfg, err := h.configService.UpdateConfig(id, services.ConfigUpdate{
		InitialBalance:    req.InitialBalance,
		StartDate:         req.StartDate,
		SimulationMonths:  req.SimulationMonths,
		DefaultSalary:     req.DefaultSalary,
		DefaultFood:       req.DefaultFood,
		SavingsEnabled:    req.SavingsEnabled,
		SavingsAmount:     req.SavingsAmount,
		SavingsStartMonth: req.SavingsStartMonth,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"config": cfg})
}

// ActivateConfig handles switching the active configuration.
// @Summary     Activate a configuration
// @Description Make the given configuration the active one
// @Tags        configs
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Configuration ID"
// @Success     200 {object} models.SimulationConfig "Configuration activated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Configuration not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /configs/{id}/activate [post]
func (h *ConfigHandler) ActivateConfig(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	cfg, err := h.configService.ActivateConfig(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"config": cfg})
}

// UpdateBalance handles setting the active configuration's starting balance.
// @Summary     Update the starting balance
// @Description Set the active configuration's initial balance
// @Tags        configs
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body UpdateBalanceRequest true "New balance"
// @Success     200 {object} models.SimulationConfig "Balance updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     409 {object} ErrorResponse "No active configuration"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /configs/active/balance [put]
func (h *ConfigHandler) UpdateBalance(c *gin.Context) {
	var req UpdateBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	cfg, err := h.configService.UpdateInitialBalance(req.InitialBalance)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"config": cfg})
}
