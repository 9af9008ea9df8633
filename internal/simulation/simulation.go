// Package simulation expands monthly plans into a dated, balance-annotated
// event ledger. It is pure: persistence and the merging of card estimates
// into effective amounts happen in the service layer.
package simulation

import (
	"sort"
	"time"

	"github.com/y2-world/future-budget-simulator/internal/billing"
	"github.com/y2-world/future-budget-simulator/internal/calendar"
	"github.com/y2-world/future-budget-simulator/internal/models"
	"github.com/y2-world/future-budget-simulator/internal/schedule"
)

// Event is one simulated cash movement before persistence.
type Event struct {
	Date         time.Time
	Type         string
	Name         string
	Amount       int64 // signed: positive inflow, negative outflow
	BalanceAfter int64
	Month        billing.YearMonth
}

// MonthInput is the material for one month of the run. A nil Plan means
// the month has no plan: it contributes no events and the balance carries
// through unchanged. CardAmounts overrides card-line columns of the plan
// with effective statement amounts (estimates + recurring charges); a key
// absent from the map falls back to the plan column.
type MonthInput struct {
	Plan        *models.MonthlyPlan
	CardAmounts map[string]int64
}

// RunConfig are the driver parameters taken from the active
// SimulationConfig.
type RunConfig struct {
	InitialBalance int64
	Start          billing.YearMonth
	Months         int
}

// amountFor picks the effective amount of a category for the month.
func amountFor(cat schedule.Category, in MonthInput) int64 {
	if cat.IsCard() && in.CardAmounts != nil {
		if amt, ok := in.CardAmounts[cat.Key]; ok {
			return amt
		}
	}
	return cat.Amount(in.Plan)
}

// GenerateMonth expands one month's input into events ordered by
// (resolved date, category declaration order) and folds the carried
// balance through them. Categories with a zero amount emit nothing.
func GenerateMonth(month billing.YearMonth, in MonthInput, resolver *calendar.Resolver, carried int64) ([]Event, int64, error) {
	if in.Plan == nil {
		return nil, carried, nil
	}

	events := make([]Event, 0, len(schedule.Categories()))
	for _, cat := range schedule.Categories() {
		amount := amountFor(cat, in)
		if amount == 0 {
			continue
		}

		day := cat.Day
		if day == schedule.EndOfMonth {
			day = month.LastDay()
		}
		date, err := resolver.Resolve(month.Date(day), cat.Direction)
		if err != nil {
			return nil, carried, err
		}

		signed := amount
		if cat.Kind == schedule.Expense {
			signed = -amount
		}
		events = append(events, Event{
			Date:   date,
			Type:   cat.Key,
			Name:   cat.Label,
			Amount: signed,
			Month:  month,
		})
	}

	// Stable sort keeps declaration order as the tie-break on shared
	// dates; events were appended in declaration order.
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date.Before(events[j].Date)
	})

	balance := carried
	for i := range events {
		balance += events[i].Amount
		events[i].BalanceAfter = balance
	}
	return events, balance, nil
}

// Run iterates the configured number of months from the start month and
// concatenates each month's events, seeding every month's fold with the
// previous month's ending balance. inputs is keyed by YYYY-MM.
func Run(cfg RunConfig, inputs map[string]MonthInput, resolver *calendar.Resolver) ([]Event, int64, error) {
	var all []Event
	balance := cfg.InitialBalance

	for i := 0; i < cfg.Months; i++ {
		month := cfg.Start.AddMonths(i)
		events, ending, err := GenerateMonth(month, inputs[month.String()], resolver, balance)
		if err != nil {
			return nil, balance, err
		}
		all = append(all, events...)
		balance = ending
	}
	return all, balance, nil
}
