// Package errors provides custom error types for the budget simulator API.
// All service-layer errors should use AppError so handlers can produce
// consistent responses without leaking internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Authentication errors.
var (
	ErrUnauthorized       = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrInvalidCredentials = &AppError{Code: "INVALID_CREDENTIALS", Message: "Invalid username or password", StatusCode: http.StatusUnauthorized}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Simulation configuration errors.
var (
	ErrConfigNotFound = &AppError{Code: "CONFIG_NOT_FOUND", Message: "Simulation configuration not found", StatusCode: http.StatusNotFound}
	ErrNoActiveConfig = &AppError{Code: "NO_ACTIVE_CONFIG", Message: "No active simulation configuration", StatusCode: http.StatusConflict}
)

// Monthly plan errors.
var (
	ErrPlanNotFound       = &AppError{Code: "PLAN_NOT_FOUND", Message: "Monthly plan not found", StatusCode: http.StatusNotFound}
	ErrDuplicatePlanMonth = &AppError{Code: "DUPLICATE_PLAN_MONTH", Message: "A plan for this month already exists", StatusCode: http.StatusConflict}
	ErrInvalidYearMonth   = &AppError{Code: "INVALID_YEAR_MONTH", Message: "Year-month must be in YYYY-MM format", StatusCode: http.StatusBadRequest}
)

// Card errors.
var (
	ErrCardNotFound     = &AppError{Code: "CARD_NOT_FOUND", Message: "Card not found", StatusCode: http.StatusNotFound}
	ErrDuplicateCardKey = &AppError{Code: "DUPLICATE_CARD_KEY", Message: "A card with this key already exists", StatusCode: http.StatusConflict}
	ErrInvalidDay       = &AppError{Code: "INVALID_DAY", Message: "Day of month must be between 1 and 31", StatusCode: http.StatusBadRequest}
)

// Credit estimate errors.
var (
	ErrEstimateNotFound = &AppError{Code: "ESTIMATE_NOT_FOUND", Message: "Credit estimate not found", StatusCode: http.StatusNotFound}
)

// Recurring charge errors.
var (
	ErrChargeNotFound    = &AppError{Code: "CHARGE_NOT_FOUND", Message: "Recurring charge not found", StatusCode: http.StatusNotFound}
	ErrDuplicateCharge   = &AppError{Code: "DUPLICATE_CHARGE", Message: "A recurring charge with this key already exists", StatusCode: http.StatusConflict}
	ErrDuplicateOverride = &AppError{Code: "DUPLICATE_OVERRIDE", Message: "An override for this month already exists", StatusCode: http.StatusConflict}
	ErrOverrideNotFound  = &AppError{Code: "OVERRIDE_NOT_FOUND", Message: "Charge override not found", StatusCode: http.StatusNotFound}
)

// Simulation run errors.
var (
	// ErrCalendarExhausted means the business-day resolver could not find a
	// business day within its step bound, which indicates a corrupt holiday
	// calendar. The run is aborted.
	ErrCalendarExhausted = &AppError{Code: "CALENDAR_EXHAUSTED", Message: "Business-day resolution exceeded its step bound; holiday calendar looks corrupt", StatusCode: http.StatusInternalServerError}
)
