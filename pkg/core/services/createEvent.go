package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/compclub/compclub/pkg/db"
	"github.com/compclub/compclub/pkg/utils"
)

// EventInput carries the staff-submitted fields for creating or updating an
// event. The slug is not part of the input: it is always derived from Name.
type EventInput struct {
	Name        string    `validate:"required,max=100"`
	StartDate   time.Time `validate:"required"`
	FinishDate  time.Time `validate:"required"`
	OwnerID     string    `validate:"omitempty,uuid4"`
	HiddenEvent bool
	Released    bool
	Highlighted bool
}

// CreateEventStore defines the database operations needed for creating events
type CreateEventStore interface {
	InsertEvent(ctx context.Context, event *db.Event) error
}

// UpdateEventStore defines the database operations needed for updating events
type UpdateEventStore interface {
	GetEvent(ctx context.Context, eventID string) (*db.Event, error)
	UpdateEvent(ctx context.Context, event *db.Event) error
}

// CreateEvent creates a new event. The slug is computed from the name; new
// events default to hidden until staff explicitly unhide them.
func CreateEvent(ctx context.Context, store CreateEventStore, logger *zap.Logger, input EventInput) (*db.Event, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	if input.FinishDate.Before(input.StartDate) {
		return nil, fmt.Errorf("finish date %s is before start date %s",
			input.FinishDate.Format("2006-01-02"), input.StartDate.Format("2006-01-02"))
	}

	event := &db.Event{
		ID:               uuid.New().String(),
		Name:             input.Name,
		Slug:             utils.Slugify(input.Name),
		StartDate:        input.StartDate,
		FinishDate:       input.FinishDate,
		OwnerID:          input.OwnerID,
		HiddenEvent:      input.HiddenEvent,
		Released:         input.Released,
		HighlightedEvent: input.Highlighted,
	}

	logger.Debug("Creating event",
		zap.String("id", event.ID),
		zap.String("name", event.Name),
		zap.String("slug", event.Slug))

	if err := store.InsertEvent(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to insert event: %w", err)
	}

	logger.Info("Event created",
		zap.String("event_id", event.ID),
		zap.String("slug", event.Slug))

	return event, nil
}

// UpdateEvent applies new field values to an existing event. The slug is
// recomputed from the (possibly renamed) event name on every save.
func UpdateEvent(ctx context.Context, store UpdateEventStore, logger *zap.Logger, eventID string, input EventInput) (*db.Event, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	event, err := store.GetEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch event: %w", err)
	}

	event.Name = input.Name
	event.Slug = utils.Slugify(input.Name)
	event.StartDate = input.StartDate
	event.FinishDate = input.FinishDate
	event.OwnerID = input.OwnerID
	event.HiddenEvent = input.HiddenEvent
	event.Released = input.Released
	event.HighlightedEvent = input.Highlighted

	logger.Debug("Updating event",
		zap.String("event_id", event.ID),
		zap.String("slug", event.Slug))

	if err := store.UpdateEvent(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}

	return event, nil
}
