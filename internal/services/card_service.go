package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/y2-world/future-budget-simulator/internal/billing"
	apperrors "github.com/y2-world/future-budget-simulator/internal/errors"
	"github.com/y2-world/future-budget-simulator/internal/models"
)

// cardService handles card-default business logic.
type cardService struct {
	db *gorm.DB
}

// NewCardService creates a new CardServicer.
func NewCardService(db *gorm.DB) CardServicer {
	return &cardService{db: db}
}

// CreateCard creates a card default. The key must name one of the
// schedule's card categories and the rule is validated by building its
// billing-rule variant, so a card can never be stored with a line the
// simulation cannot project or a rule it cannot execute.
func (s *cardService) CreateCard(key, label string, rule models.BillingRuleType, closingDay *int, withdrawalDay, position int) (*models.CardDefault, error) {
	if err := validateCardKey(key); err != nil {
		return nil, err
	}

	card := &models.CardDefault{
		Key:           key,
		Label:         label,
		BillingRule:   rule,
		ClosingDay:    closingDay,
		WithdrawalDay: withdrawalDay,
		IsActive:      true,
		Position:      position,
	}
	if _, err := billing.RuleForCard(card); err != nil {
		return nil, err
	}

	var existing models.CardDefault
	err := s.db.Where("key = ?", key).First(&existing).Error
	if err == nil {
		return nil, apperrors.ErrDuplicateCardKey
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := s.db.Create(card).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return card, nil
}

// GetCards returns all card defaults in display order.
func (s *cardService) GetCards() ([]models.CardDefault, error) {
	var cards []models.CardDefault
	if err := s.db.Order("position ASC, key ASC").Find(&cards).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return cards, nil
}

// GetCardByID returns a card by ID.
func (s *cardService) GetCardByID(id string) (*models.CardDefault, error) {
	var card models.CardDefault
	if err := s.db.Where("id = ?", id).First(&card).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCardNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &card, nil
}

// GetCardByKey returns an active card by its key.
func (s *cardService) GetCardByKey(key string) (*models.CardDefault, error) {
	var card models.CardDefault
	if err := s.db.Where("key = ? AND is_active = ?", key, true).First(&card).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCardNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &card, nil
}

// UpdateCard updates an existing card's fields, revalidating the billing
// rule against the updated closing day.
func (s *cardService) UpdateCard(id string, label *string, rule *models.BillingRuleType, closingDay *int, withdrawalDay, position *int, isActive *bool) (*models.CardDefault, error) {
	card, err := s.GetCardByID(id)
	if err != nil {
		return nil, err
	}

	if label != nil {
		card.Label = *label
	}
	if rule != nil {
		card.BillingRule = *rule
	}
	if closingDay != nil {
		card.ClosingDay = closingDay
	}
	if withdrawalDay != nil {
		card.WithdrawalDay = *withdrawalDay
	}
	if position != nil {
		card.Position = *position
	}
	if isActive != nil {
		card.IsActive = *isActive
	}

	if _, err := billing.RuleForCard(card); err != nil {
		return nil, err
	}

	if err := s.db.Save(card).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return card, nil
}

// DeleteCard soft-deletes a card default.
func (s *cardService) DeleteCard(id string) error {
	card, err := s.GetCardByID(id)
	if err != nil {
		return err
	}

	if err := s.db.Delete(card).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
