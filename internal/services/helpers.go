package services

import (
	"github.com/y2-world/future-budget-simulator/internal/billing"
	apperrors "github.com/y2-world/future-budget-simulator/internal/errors"
	"github.com/y2-world/future-budget-simulator/internal/schedule"
)

// validateYearMonth rejects anything that is not strict YYYY-MM.
func validateYearMonth(s string) error {
	_, err := billing.ParseYearMonth(s)
	return err
}

// validateCardKey rejects card keys outside the schedule's card
// categories. Money billed to an unknown key would have no ledger line
// to land on.
func validateCardKey(key string) error {
	if cat, ok := schedule.ByKey(key); ok && cat.IsCard() {
		return nil
	}
	return apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown card key: "+key)
}
