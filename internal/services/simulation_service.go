package services

import (
	"gorm.io/gorm"

	"github.com/y2-world/future-budget-simulator/internal/billing"
	"github.com/y2-world/future-budget-simulator/internal/calendar"
	apperrors "github.com/y2-world/future-budget-simulator/internal/errors"
	"github.com/y2-world/future-budget-simulator/internal/logger"
	"github.com/y2-world/future-budget-simulator/internal/models"
	"github.com/y2-world/future-budget-simulator/internal/simulation"
)

// simulationService drives the projection. It assembles the per-month
// inputs (plans plus effective card statement amounts), runs the pure
// generator, and replaces the stored event set atomically.
type simulationService struct {
	db        *gorm.DB
	configs   ConfigServicer
	estimates EstimateServicer
	charges   ChargeServicer
	resolver  *calendar.Resolver
}

// NewSimulationService creates a new SimulationServicer.
func NewSimulationService(db *gorm.DB, configs ConfigServicer, estimates EstimateServicer, charges ChargeServicer, resolver *calendar.Resolver) SimulationServicer {
	return &simulationService{
		db:        db,
		configs:   configs,
		estimates: estimates,
		charges:   charges,
		resolver:  resolver,
	}
}

// cardAmountsFor computes the effective statement amount per card for one
// billing month. A card appears in the result only when at least one
// estimate or recurring charge bills into the month; cards with neither
// fall back to their plan column downstream.
func (s *simulationService) cardAmountsFor(month billing.YearMonth, rules map[string]billing.Rule, chargeCache map[string][]EffectiveCharge) (map[string]int64, error) {
	amounts, err := s.estimates.CardBillingAmounts(month.String())
	if err != nil {
		return nil, err
	}

	for cardKey, rule := range rules {
		// Statements bill one or two months after usage depending on the
		// rule, so walk backwards to the usage month that lands here.
		for back := 1; back <= 2; back++ {
			usage := month.AddMonths(-back)
			if rule.BillingMonth(usage) != month {
				continue
			}

			effective, ok := chargeCache[usage.String()]
			if !ok {
				effective, err = s.charges.EffectiveCharges(usage.String())
				if err != nil {
					return nil, err
				}
				chargeCache[usage.String()] = effective
			}
			for _, charge := range effective {
				if charge.CardKey == cardKey {
					amounts[cardKey] += charge.Amount
				}
			}
			break
		}
	}
	return amounts, nil
}

// RunSimulation expands every plan in the active configuration's window
// into dated events and swaps them in for the previous event set. Months
// without a plan contribute nothing and carry the balance through.
func (s *simulationService) RunSimulation() (*RunResult, error) {
	cfg, err := s.configs.GetActiveConfig()
	if err != nil {
		return nil, err
	}
	start := billing.FromDate(cfg.StartDate)

	var cards []models.CardDefault
	if err := s.db.Where("is_active = ?", true).Find(&cards).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	rules := make(map[string]billing.Rule, len(cards))
	for i := range cards {
		rule, err := billing.RuleForCard(&cards[i])
		if err != nil {
			return nil, err
		}
		rules[cards[i].Key] = rule
	}

	months := make([]string, 0, cfg.SimulationMonths)
	for i := 0; i < cfg.SimulationMonths; i++ {
		months = append(months, start.AddMonths(i).String())
	}

	var plans []models.MonthlyPlan
	if err := s.db.Where("year_month IN ?", months).Find(&plans).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	planByMonth := make(map[string]*models.MonthlyPlan, len(plans))
	for i := range plans {
		planByMonth[plans[i].YearMonth] = &plans[i]
	}

	inputs := make(map[string]simulation.MonthInput, len(months))
	chargeCache := make(map[string][]EffectiveCharge)
	var skipped []string
	for _, m := range months {
		plan, ok := planByMonth[m]
		if !ok {
			skipped = append(skipped, m)
			continue
		}
		month, err := billing.ParseYearMonth(m)
		if err != nil {
			return nil, err
		}
		amounts, err := s.cardAmountsFor(month, rules, chargeCache)
		if err != nil {
			return nil, err
		}
		inputs[m] = simulation.MonthInput{Plan: plan, CardAmounts: amounts}
	}

	runCfg := simulation.RunConfig{
		InitialBalance: cfg.InitialBalance,
		Start:          start,
		Months:         cfg.SimulationMonths,
	}
	events, ending, err := simulation.Run(runCfg, inputs, s.resolver)
	if err != nil {
		return nil, err
	}

	records := make([]models.TransactionEvent, 0, len(events))
	for i, ev := range events {
		records = append(records, models.TransactionEvent{
			Date:         ev.Date,
			EventType:    ev.Type,
			EventName:    ev.Name,
			Amount:       ev.Amount,
			BalanceAfter: ev.BalanceAfter,
			Sequence:     i,
			PlanID:       planByMonth[ev.Month.String()].ID,
		})
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		// Events are derived state, so the replace bypasses soft delete.
		// Keeping tombstones around would grow the table on every rerun.
		if err := tx.Unscoped().Where("1 = 1").Delete(&models.TransactionEvent{}).Error; err != nil {
			return err
		}
		if len(records) == 0 {
			return nil
		}
		return tx.CreateInBatches(records, 100).Error
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	logger.Get().Infow("simulation run completed",
		"start_month", start.String(),
		"months", cfg.SimulationMonths,
		"events", len(records),
		"ending_balance", ending,
	)

	return &RunResult{
		EventCount:    len(records),
		EndingBalance: ending,
		Months:        cfg.SimulationMonths,
		StartMonth:    start.String(),
		SkippedMonths: skipped,
	}, nil
}
