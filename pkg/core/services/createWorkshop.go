package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/teambition/rrule-go"
	"go.uber.org/zap"

	"github.com/compclub/compclub/pkg/db"
)

// WorkshopInput carries the staff-submitted fields for a workshop
type WorkshopInput struct {
	Name      string `validate:"required,max=100"`
	StartTime string `validate:"required"`
	EndTime   string `validate:"required"`
	Location  string `validate:"required,max=100"`
}

// CreateWorkshopStore defines the database operations needed for creating workshops
type CreateWorkshopStore interface {
	GetEvent(ctx context.Context, eventID string) (*db.Event, error)
	InsertWorkshops(ctx context.Context, workshops []db.Workshop) error
}

// CreateWorkshop creates a single workshop under an event
func CreateWorkshop(ctx context.Context, store CreateWorkshopStore, logger *zap.Logger, eventID string, date time.Time, input WorkshopInput) (*db.Workshop, error) {
	workshops, err := createWorkshops(ctx, store, logger, eventID, []time.Time{date}, input)
	if err != nil {
		return nil, err
	}
	return &workshops[0], nil
}

// CreateWorkshopSeries expands an RFC 5545 recurrence rule into one workshop
// per occurrence. Occurrences are bounded by the event's start and finish
// dates; a rule that yields no dates inside the range is an error rather
// than a silent no-op.
func CreateWorkshopSeries(ctx context.Context, store CreateWorkshopStore, logger *zap.Logger, eventID, rruleStr string, input WorkshopInput) ([]db.Workshop, error) {
	rule, err := rrule.StrToRRule(rruleStr)
	if err != nil {
		return nil, fmt.Errorf("invalid recurrence rule: %w", err)
	}

	event, err := store.GetEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch event: %w", err)
	}

	rule.DTStart(event.StartDate)
	dates := rule.Between(event.StartDate, event.FinishDate, true)
	if len(dates) == 0 {
		return nil, fmt.Errorf("recurrence rule yields no dates between %s and %s",
			event.StartDate.Format("2006-01-02"), event.FinishDate.Format("2006-01-02"))
	}

	logger.Debug("Expanded workshop series",
		zap.String("event_id", eventID),
		zap.String("rrule", rruleStr),
		zap.Int("occurrences", len(dates)))

	return createWorkshops(ctx, store, logger, eventID, dates, input)
}

func createWorkshops(ctx context.Context, store CreateWorkshopStore, logger *zap.Logger, eventID string, dates []time.Time, input WorkshopInput) ([]db.Workshop, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	event, err := store.GetEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch event: %w", err)
	}

	workshops := make([]db.Workshop, len(dates))
	for i, date := range dates {
		workshops[i] = db.Workshop{
			ID:        uuid.New().String(),
			EventID:   event.ID,
			Name:      input.Name,
			Date:      date,
			StartTime: input.StartTime,
			EndTime:   input.EndTime,
			Location:  input.Location,
		}
	}

	if err := store.InsertWorkshops(ctx, workshops); err != nil {
		return nil, fmt.Errorf("failed to insert workshops: %w", err)
	}

	logger.Info("Workshops created",
		zap.String("event_id", event.ID),
		zap.Int("count", len(workshops)))

	return workshops, nil
}
