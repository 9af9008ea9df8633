package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "github.com/y2-world/future-budget-simulator/internal/errors"
	"github.com/y2-world/future-budget-simulator/internal/models"
	"github.com/y2-world/future-budget-simulator/internal/pagination"
)

// configService handles simulation-configuration business logic.
type configService struct {
	db *gorm.DB
}

// NewConfigService creates a new ConfigServicer.
func NewConfigService(db *gorm.DB) ConfigServicer {
	return &configService{db: db}
}

// CreateConfig creates a new configuration and makes it the active one.
// Deactivating the previous active config happens in the same transaction,
// so there is never more than one active row.
func (s *configService) CreateConfig(input ConfigInput) (*models.SimulationConfig, error) {
	if input.SavingsStartMonth != nil {
		if err := validateYearMonth(*input.SavingsStartMonth); err != nil {
			return nil, err
		}
	}

	cfg := &models.SimulationConfig{
		InitialBalance:    input.InitialBalance,
		StartDate:         input.StartDate,
		SimulationMonths:  input.SimulationMonths,
		IsActive:          true,
		DefaultSalary:     input.DefaultSalary,
		DefaultFood:       input.DefaultFood,
		SavingsEnabled:    input.SavingsEnabled,
		SavingsAmount:     input.SavingsAmount,
		SavingsStartMonth: input.SavingsStartMonth,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.SimulationConfig{}).Where("is_active = ?", true).
			Update("is_active", false).Error; err != nil {
			return err
		}
		return tx.Create(cfg).Error
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return cfg, nil
}

// GetConfigs returns a paginated list of configurations, newest first.
func (s *configService) GetConfigs(page pagination.PageRequest) (*pagination.PageResponse[models.SimulationConfig], error) {
	page.Defaults()

	base := s.db.Model(&models.SimulationConfig{})

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var configs []models.SimulationConfig
	if err := base.Order("created_at DESC").Scopes(pagination.Paginate(page)).Find(&configs).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(configs, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetActiveConfig returns the single active configuration.
func (s *configService) GetActiveConfig() (*models.SimulationConfig, error) {
	var cfg models.SimulationConfig
	if err := s.db.Where("is_active = ?", true).First(&cfg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNoActiveConfig
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &cfg, nil
}

// GetConfigByID returns a configuration by ID.
func (s *configService) GetConfigByID(id string) (*models.SimulationConfig, error) {
	var cfg models.SimulationConfig
	if err := s.db.Where("id = ?", id).First(&cfg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrConfigNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &cfg, nil
}

// UpdateConfig updates an existing configuration's fields.
func (s *configService) UpdateConfig(id string, input ConfigUpdate) (*models.SimulationConfig, error) {
	cfg, err := s.GetConfigByID(id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if input.InitialBalance != nil {
		updates["initial_balance"] = *input.InitialBalance
	}
	if input.StartDate != nil {
		updates["start_date"] = *input.StartDate
	}
	if input.SimulationMonths != nil {
		updates["simulation_months"] = *input.SimulationMonths
	}
	if input.DefaultSalary != nil {
		updates["default_salary"] = *input.DefaultSalary
	}
	if input.DefaultFood != nil {
		updates["default_food"] = *input.DefaultFood
	}
	if input.SavingsEnabled != nil {
		updates["savings_enabled"] = *input.SavingsEnabled
	}
	if input.SavingsAmount != nil {
		updates["savings_amount"] = *input.SavingsAmount
	}
	if input.SavingsStartMonth != nil {
		if err := validateYearMonth(*input.SavingsStartMonth); err != nil {
			return nil, err
		}
		updates["savings_start_month"] = *input.SavingsStartMonth
	}

	if len(updates) > 0 {
		if err := s.db.Model(cfg).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return cfg, nil
}

// ActivateConfig makes the given configuration the active one,
// deactivating every other configuration in the same transaction.
func (s *configService) ActivateConfig(id string) (*models.SimulationConfig, error) {
	cfg, err := s.GetConfigByID(id)
	if err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.SimulationConfig{}).Where("id <> ?", cfg.ID).
			Update("is_active", false).Error; err != nil {
			return err
		}
		return tx.Model(cfg).Update("is_active", true).Error
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	cfg.IsActive = true
	return cfg, nil
}

// UpdateInitialBalance updates the active configuration's starting balance.
func (s *configService) UpdateInitialBalance(balance int64) (*models.SimulationConfig, error) {
	cfg, err := s.GetActiveConfig()
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(cfg).Update("initial_balance", balance).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return cfg, nil
}
