// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/y2-world/future-budget-simulator/internal/schedule"
)

var yearMonthRegex = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("year_month", validateYearMonth)
		_ = v.RegisterValidation("day_of_month", validateDayOfMonth)
		_ = v.RegisterValidation("billing_rule", validateBillingRule)
		_ = v.RegisterValidation("card_key", validateCardKey)
		_ = v.RegisterValidation("event_type", validateEventType)
	}
}

func validateYearMonth(fl validator.FieldLevel) bool {
	return yearMonthRegex.MatchString(fl.Field().String())
}

func validateDayOfMonth(fl validator.FieldLevel) bool {
	day := fl.Field().Int()
	return day >= 1 && day <= 31
}

func validateBillingRule(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "fixed_day", "end_of_month", "next_month_closing":
		return true
	}
	return false
}

// validateCardKey accepts only the schedule's card categories. The
// simulation projects card money through those lines, so a statement
// attached to any other key would never reach the ledger.
func validateCardKey(fl validator.FieldLevel) bool {
	cat, ok := schedule.ByKey(fl.Field().String())
	return ok && cat.IsCard()
}

func validateEventType(fl validator.FieldLevel) bool {
	return schedule.ValidEventType(fl.Field().String())
}
