package services

import (
	"encoding/csv"
	"io"
	"strconv"

	"gorm.io/gorm"

	"github.com/y2-world/future-budget-simulator/internal/billing"
	apperrors "github.com/y2-world/future-budget-simulator/internal/errors"
	"github.com/y2-world/future-budget-simulator/internal/models"
	"github.com/y2-world/future-budget-simulator/internal/pagination"
	"github.com/y2-world/future-budget-simulator/internal/schedule"
)

// eventService reads the derived event ledger.
type eventService struct {
	db *gorm.DB
}

// NewEventService creates a new EventServicer.
func NewEventService(db *gorm.DB) EventServicer {
	return &eventService{db: db}
}

// GetEvents returns events ordered by date, optionally filtered to one
// month or one event type.
func (s *eventService) GetEvents(page pagination.PageRequest, month, eventType *string) (*pagination.PageResponse[models.TransactionEvent], error) {
	page.Defaults()

	query := s.db.Model(&models.TransactionEvent{})
	if month != nil {
		ym, err := billing.ParseYearMonth(*month)
		if err != nil {
			return nil, err
		}
		from := ym.Date(1)
		to := ym.AddMonths(1).Date(1)
		query = query.Where("date >= ? AND date < ?", from, to)
	}
	if eventType != nil {
		if !schedule.ValidEventType(*eventType) {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown event type: "+*eventType)
		}
		query = query.Where("event_type = ?", *eventType)
	}

	var totalItems int64
	if err := query.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var events []models.TransactionEvent
	err := query.
		Order("date ASC, sequence ASC").
		Scopes(pagination.Paginate(page)).
		Find(&events).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(events, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// ExportCSV streams the full ledger as CSV ordered by date.
func (s *eventService) ExportCSV(w io.Writer) error {
	var events []models.TransactionEvent
	if err := s.db.Order("date ASC, sequence ASC").Find(&events).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"date", "event_type", "event_name", "amount", "balance_after"}); err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	for _, ev := range events {
		record := []string{
			ev.Date.Format("2006-01-02"),
			ev.EventType,
			ev.EventName,
			strconv.FormatInt(ev.Amount, 10),
			strconv.FormatInt(ev.BalanceAfter, 10),
		}
		if err := cw.Write(record); err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
