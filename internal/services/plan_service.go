package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "github.com/y2-world/future-budget-simulator/internal/errors"
	"github.com/y2-world/future-budget-simulator/internal/models"
	"github.com/y2-world/future-budget-simulator/internal/pagination"
)

// planService handles monthly-plan business logic.
type planService struct {
	db            *gorm.DB
	configService ConfigServicer
}

// NewPlanService creates a new PlanServicer.
func NewPlanService(db *gorm.DB, configService ConfigServicer) PlanServicer {
	return &planService{db: db, configService: configService}
}

// CreatePlan creates the plan for a month. Salary, food, and savings
// default from the active configuration when the caller leaves them
// unset; a missing active configuration just means no defaults.
func (s *planService) CreatePlan(yearMonth string, amounts PlanAmounts) (*models.MonthlyPlan, error) {
	if err := validateYearMonth(yearMonth); err != nil {
		return nil, err
	}

	var existing models.MonthlyPlan
	err := s.db.Where("year_month = ?", yearMonth).First(&existing).Error
	if err == nil {
		return nil, apperrors.ErrDuplicatePlanMonth
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	plan := &models.MonthlyPlan{YearMonth: yearMonth}
	applyAmounts(plan, amounts)

	if cfg, err := s.configService.GetActiveConfig(); err == nil {
		if amounts.Salary == nil {
			plan.Salary = cfg.DefaultSalary
		}
		if amounts.Food == nil {
			plan.Food = cfg.DefaultFood
		}
		if amounts.Savings == nil && cfg.SavingsEnabled &&
			(cfg.SavingsStartMonth == nil || *cfg.SavingsStartMonth <= yearMonth) {
			plan.Savings = cfg.SavingsAmount
		}
	}

	if err := s.db.Create(plan).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return plan, nil
}

// GetPlans returns plans ordered by month, optionally from a month onward.
func (s *planService) GetPlans(page pagination.PageRequest, fromMonth *string) (*pagination.PageResponse[models.MonthlyPlan], error) {
	page.Defaults()

	base := s.db.Model(&models.MonthlyPlan{})
	if fromMonth != nil {
		if err := validateYearMonth(*fromMonth); err != nil {
			return nil, err
		}
		base = base.Where("year_month >= ?", *fromMonth)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var plans []models.MonthlyPlan
	if err := base.Order("year_month ASC").Scopes(pagination.Paginate(page)).Find(&plans).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(plans, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetPlanByID returns a plan by ID.
func (s *planService) GetPlanByID(id string) (*models.MonthlyPlan, error) {
	var plan models.MonthlyPlan
	if err := s.db.Where("id = ?", id).First(&plan).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPlanNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &plan, nil
}

// GetPlanByMonth returns the plan for a YYYY-MM month.
func (s *planService) GetPlanByMonth(yearMonth string) (*models.MonthlyPlan, error) {
	if err := validateYearMonth(yearMonth); err != nil {
		return nil, err
	}

	var plan models.MonthlyPlan
	if err := s.db.Where("year_month = ?", yearMonth).First(&plan).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPlanNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &plan, nil
}

// UpdatePlan updates the amounts of an existing plan. Only set fields
// change; the plan's month cannot change.
func (s *planService) UpdatePlan(id string, amounts PlanAmounts) (*models.MonthlyPlan, error) {
	plan, err := s.GetPlanByID(id)
	if err != nil {
		return nil, err
	}

	applyAmounts(plan, amounts)
	if err := s.db.Save(plan).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return plan, nil
}

// DeletePlan removes a plan and its derived events in one transaction.
func (s *planService) DeletePlan(id string) error {
	plan, err := s.GetPlanByID(id)
	if err != nil {
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("plan_id = ?", plan.ID).Delete(&models.TransactionEvent{}).Error; err != nil {
			return err
		}
		return tx.Delete(plan).Error
	})
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// GetPlanSummary returns the computed totals of a plan.
func (s *planService) GetPlanSummary(id string) (*PlanSummary, error) {
	plan, err := s.GetPlanByID(id)
	if err != nil {
		return nil, err
	}
	return &PlanSummary{
		YearMonth:     plan.YearMonth,
		TotalIncome:   plan.TotalIncome(),
		TotalExpenses: plan.TotalExpenses(),
		NetIncome:     plan.NetIncome(),
	}, nil
}

// applyAmounts copies the set fields of amounts onto the plan.
func applyAmounts(plan *models.MonthlyPlan, amounts PlanAmounts) {
	set := func(dst *int64, src *int64) {
		if src != nil {
			*dst = *src
		}
	}
	set(&plan.Salary, amounts.Salary)
	set(&plan.Bonus, amounts.Bonus)
	set(&plan.LoanBorrowing, amounts.LoanBorrowing)
	set(&plan.GrossSalary, amounts.GrossSalary)
	set(&plan.Deductions, amounts.Deductions)
	set(&plan.BonusGross, amounts.BonusGross)
	set(&plan.BonusDeductions, amounts.BonusDeductions)
	set(&plan.Food, amounts.Food)
	set(&plan.Rent, amounts.Rent)
	set(&plan.ViewCard, amounts.ViewCard)
	set(&plan.ViewCardBonus, amounts.ViewCardBonus)
	set(&plan.RakutenCard, amounts.RakutenCard)
	set(&plan.PayPayCard, amounts.PayPayCard)
	set(&plan.Savings, amounts.Savings)
	set(&plan.Loan, amounts.Loan)
	set(&plan.Utilities, amounts.Utilities)
	set(&plan.Transportation, amounts.Transportation)
	set(&plan.Entertainment, amounts.Entertainment)
	set(&plan.Other, amounts.Other)
}
