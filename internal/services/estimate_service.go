package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/y2-world/future-budget-simulator/internal/billing"
	apperrors "github.com/y2-world/future-budget-simulator/internal/errors"
	"github.com/y2-world/future-budget-simulator/internal/models"
	"github.com/y2-world/future-budget-simulator/internal/pagination"
)

// estimateService handles credit-estimate business logic.
type estimateService struct {
	db          *gorm.DB
	cardService CardServicer
}

// NewEstimateService creates a new EstimateServicer.
func NewEstimateService(db *gorm.DB, cardService CardServicer) EstimateServicer {
	return &estimateService{db: db, cardService: cardService}
}

// CreateEstimate creates one estimate, or the part-1/part-2 pair of a
// two-part split payment. The billing month comes from the card's billing
// rule; bonus payments bill in the month of their due date instead. A
// split total is halved with the odd yen on part 1.
func (s *estimateService) CreateEstimate(input EstimateInput) ([]models.CreditEstimate, error) {
	usage, err := billing.ParseYearMonth(input.YearMonth)
	if err != nil {
		return nil, err
	}

	card, err := s.cardService.GetCardByKey(input.CardKey)
	if err != nil {
		return nil, err
	}
	rule, err := billing.RuleForCard(card)
	if err != nil {
		return nil, err
	}

	if input.IsBonusPayment {
		if input.DueDate == nil {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "bonus payment requires a due date")
		}
		est := models.CreditEstimate{
			YearMonth:      input.YearMonth,
			CardKey:        input.CardKey,
			Description:    input.Description,
			Amount:         input.Amount,
			BillingMonth:   billing.FromDate(*input.DueDate).String(),
			DueDate:        input.DueDate,
			IsBonusPayment: true,
		}
		if err := s.db.Create(&est).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return []models.CreditEstimate{est}, nil
	}

	if input.IsSplitPayment {
		group := uuid.NewString()
		first := (input.Amount + 1) / 2
		parts := []int64{first, input.Amount - first}

		pair := make([]models.CreditEstimate, 0, 2)
		for i, amount := range parts {
			part := i + 1
			pair = append(pair, models.CreditEstimate{
				YearMonth:      input.YearMonth,
				CardKey:        input.CardKey,
				Description:    input.Description,
				Amount:         amount,
				BillingMonth:   billing.SplitBillingMonth(rule, usage, part).String(),
				DueDate:        input.DueDate,
				IsSplitPayment: true,
				SplitPart:      &part,
				SplitGroup:     &group,
			})
		}

		err := s.db.Transaction(func(tx *gorm.DB) error {
			for i := range pair {
				if err := tx.Create(&pair[i]).Error; err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return pair, nil
	}

	est := models.CreditEstimate{
		YearMonth:    input.YearMonth,
		CardKey:      input.CardKey,
		Description:  input.Description,
		Amount:       input.Amount,
		BillingMonth: rule.BillingMonth(usage).String(),
		DueDate:      input.DueDate,
	}
	if err := s.db.Create(&est).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return []models.CreditEstimate{est}, nil
}

// GetEstimates returns a paginated list of estimates with optional filters.
func (s *estimateService) GetEstimates(page pagination.PageRequest, billingMonth, cardKey *string) (*pagination.PageResponse[models.CreditEstimate], error) {
	page.Defaults()

	base := s.db.Model(&models.CreditEstimate{})
	if billingMonth != nil {
		if err := validateYearMonth(*billingMonth); err != nil {
			return nil, err
		}
		base = base.Where("billing_month = ?", *billingMonth)
	}
	if cardKey != nil {
		base = base.Where("card_key = ?", *cardKey)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var estimates []models.CreditEstimate
	if err := base.Order("billing_month ASC, card_key ASC, created_at DESC").
		Scopes(pagination.Paginate(page)).Find(&estimates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(estimates, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetEstimateByID returns an estimate by ID.
func (s *estimateService) GetEstimateByID(id string) (*models.CreditEstimate, error) {
	var est models.CreditEstimate
	if err := s.db.Where("id = ?", id).First(&est).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEstimateNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &est, nil
}

// UpdateEstimate updates an estimate's description, amount, billing
// month, or due date. Amount and billing month are locked on split
// parts: the pair's halves and one-month offset are established at
// creation, and editing one side would desynchronize them.
func (s *estimateService) UpdateEstimate(id string, description *string, amount *int64, billingMonth *string, dueDate *time.Time) (*models.CreditEstimate, error) {
	est, err := s.GetEstimateByID(id)
	if err != nil {
		return nil, err
	}

	if est.IsSplitPayment && (amount != nil || billingMonth != nil) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput,
			"split payment parts cannot change amount or billing month; delete the pair and recreate it")
	}

	updates := make(map[string]interface{})
	if description != nil {
		updates["description"] = *description
	}
	if amount != nil {
		updates["amount"] = *amount
	}
	if billingMonth != nil {
		if err := validateYearMonth(*billingMonth); err != nil {
			return nil, err
		}
		updates["billing_month"] = *billingMonth
	}
	if dueDate != nil {
		updates["due_date"] = dueDate
	}

	if len(updates) > 0 {
		if err := s.db.Model(est).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return est, nil
}

// DeleteEstimate removes an estimate. Deleting one part of a split pair
// removes the whole pair; a half-orphaned split would misstate two
// billing months at once.
func (s *estimateService) DeleteEstimate(id string) error {
	est, err := s.GetEstimateByID(id)
	if err != nil {
		return err
	}

	if est.SplitGroup != nil {
		if err := s.db.Where("split_group = ?", *est.SplitGroup).Delete(&models.CreditEstimate{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	}

	if err := s.db.Delete(est).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// GetMonthlySummary returns each card's estimated statement total for the
// given billing month, in card display order.
func (s *estimateService) GetMonthlySummary(billingMonth string) ([]CardMonthTotal, error) {
	if err := validateYearMonth(billingMonth); err != nil {
		return nil, err
	}

	amounts, err := s.CardBillingAmounts(billingMonth)
	if err != nil {
		return nil, err
	}

	cards, err := s.cardService.GetCards()
	if err != nil {
		return nil, err
	}

	summary := make([]CardMonthTotal, 0, len(amounts))
	for _, card := range cards {
		total, ok := amounts[card.Key]
		if !ok {
			continue
		}
		summary = append(summary, CardMonthTotal{CardKey: card.Key, Label: card.Label, Total: total})
	}
	return summary, nil
}

// CardBillingAmounts sums estimates per card key for a billing month.
func (s *estimateService) CardBillingAmounts(billingMonth string) (map[string]int64, error) {
	var rows []struct {
		CardKey string
		Total   int64
	}
	err := s.db.Model(&models.CreditEstimate{}).
		Select("card_key, COALESCE(SUM(amount), 0) AS total").
		Where("billing_month = ?", billingMonth).
		Group("card_key").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	amounts := make(map[string]int64, len(rows))
	for _, row := range rows {
		amounts[row.CardKey] = row.Total
	}
	return amounts, nil
}
