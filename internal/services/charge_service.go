package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/y2-world/future-budget-simulator/internal/billing"
	apperrors "github.com/y2-world/future-budget-simulator/internal/errors"
	"github.com/y2-world/future-budget-simulator/internal/models"
)

// chargeService handles recurring-charge business logic.
type chargeService struct {
	db *gorm.DB
}

// NewChargeService creates a new ChargeServicer.
func NewChargeService(db *gorm.DB) ChargeServicer {
	return &chargeService{db: db}
}

// CreateCharge creates a recurring charge billed to the given card.
func (s *chargeService) CreateCharge(key, label, cardKey string, amount int64, oddMonthsOnly bool) (*models.RecurringCharge, error) {
	if err := validateCardKey(cardKey); err != nil {
		return nil, err
	}

	var existing models.RecurringCharge
	err := s.db.Where("key = ?", key).First(&existing).Error
	if err == nil {
		return nil, apperrors.ErrDuplicateCharge
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	charge := &models.RecurringCharge{
		Key:           key,
		Label:         label,
		CardKey:       cardKey,
		Amount:        amount,
		IsActive:      true,
		OddMonthsOnly: oddMonthsOnly,
	}
	if err := s.db.Create(charge).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return charge, nil
}

// GetCharges returns all recurring charges with their overrides.
func (s *chargeService) GetCharges() ([]models.RecurringCharge, error) {
	var charges []models.RecurringCharge
	if err := s.db.Preload("Overrides").Order("key ASC").Find(&charges).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return charges, nil
}

// GetChargeByID returns a recurring charge with its overrides.
func (s *chargeService) GetChargeByID(id string) (*models.RecurringCharge, error) {
	var charge models.RecurringCharge
	if err := s.db.Preload("Overrides").Where("id = ?", id).First(&charge).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrChargeNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &charge, nil
}

// UpdateCharge updates a recurring charge's fields.
func (s *chargeService) UpdateCharge(id string, label *string, cardKey *string, amount *int64, isActive, oddMonthsOnly *bool) (*models.RecurringCharge, error) {
	charge, err := s.GetChargeByID(id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if label != nil {
		updates["label"] = *label
	}
	if cardKey != nil {
		if err := validateCardKey(*cardKey); err != nil {
			return nil, err
		}
		updates["card_key"] = *cardKey
	}
	if amount != nil {
		updates["amount"] = *amount
	}
	if isActive != nil {
		updates["is_active"] = *isActive
	}
	if oddMonthsOnly != nil {
		updates["odd_months_only"] = *oddMonthsOnly
	}

	if len(updates) > 0 {
		if err := s.db.Model(charge).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return charge, nil
}

// DeleteCharge removes a recurring charge and its overrides.
func (s *chargeService) DeleteCharge(id string) error {
	charge, err := s.GetChargeByID(id)
	if err != nil {
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("charge_id = ?", charge.ID).Delete(&models.ChargeOverride{}).Error; err != nil {
			return err
		}
		return tx.Delete(charge).Error
	})
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// CreateOverride replaces a charge's amount (and optionally card) for one
// month. At most one override exists per (charge, month).
func (s *chargeService) CreateOverride(chargeID, yearMonth string, amount int64, cardKey *string, isSplitPayment bool) (*models.ChargeOverride, error) {
	if err := validateYearMonth(yearMonth); err != nil {
		return nil, err
	}
	if cardKey != nil {
		if err := validateCardKey(*cardKey); err != nil {
			return nil, err
		}
	}
	charge, err := s.GetChargeByID(chargeID)
	if err != nil {
		return nil, err
	}

	var existing models.ChargeOverride
	err = s.db.Where("charge_id = ? AND year_month = ?", charge.ID, yearMonth).First(&existing).Error
	if err == nil {
		return nil, apperrors.ErrDuplicateOverride
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	override := &models.ChargeOverride{
		ChargeID:       charge.ID,
		YearMonth:      yearMonth,
		Amount:         amount,
		CardKey:        cardKey,
		IsSplitPayment: isSplitPayment,
	}
	if err := s.db.Create(override).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return override, nil
}

// DeleteOverride removes the override for one month of a charge.
func (s *chargeService) DeleteOverride(chargeID, yearMonth string) error {
	if err := validateYearMonth(yearMonth); err != nil {
		return err
	}

	result := s.db.Where("charge_id = ? AND year_month = ?", chargeID, yearMonth).Delete(&models.ChargeOverride{})
	if result.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrOverrideNotFound
	}
	return nil
}

// EffectiveCharges resolves the recurring charges that apply to a usage
// month: inactive charges are skipped, odd-months-only charges apply only
// to odd usage months, and a month override replaces the amount and card.
func (s *chargeService) EffectiveCharges(usageMonth string) ([]EffectiveCharge, error) {
	ym, err := billing.ParseYearMonth(usageMonth)
	if err != nil {
		return nil, err
	}

	var charges []models.RecurringCharge
	if err := s.db.Where("is_active = ?", true).Order("key ASC").Find(&charges).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var effective []EffectiveCharge
	for _, charge := range charges {
		if charge.OddMonthsOnly && !ym.IsOdd() {
			continue
		}

		amount := charge.Amount
		cardKey := charge.CardKey

		var override models.ChargeOverride
		err := s.db.Where("charge_id = ? AND year_month = ?", charge.ID, usageMonth).First(&override).Error
		switch {
		case err == nil:
			amount = override.Amount
			if override.CardKey != nil {
				cardKey = *override.CardKey
			}
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		if amount == 0 {
			continue
		}
		effective = append(effective, EffectiveCharge{
			ChargeID: charge.ID,
			Label:    charge.Label,
			CardKey:  cardKey,
			Amount:   amount,
		})
	}
	return effective, nil
}
