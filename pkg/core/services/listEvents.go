package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/compclub/compclub/pkg/db"
)

// EventListing is one row of the upcoming-events listing
type EventListing struct {
	Event         db.Event
	WorkshopCount int
}

// ListEventsStore defines the database operations needed for listing events
type ListEventsStore interface {
	ListEvents(ctx context.Context, finishOnOrAfter time.Time) ([]db.Event, error)
	CountWorkshops(ctx context.Context, eventIDs []string) (map[string]int, error)
}

// ListEvents returns current and future events ordered by start date, with
// how many workshops each consists of. Hidden events are only listed when
// includeHidden is set (staff view). With highlightedOnly set, only events
// promoted to the home page are returned. Date gating is left to the
// visibility gate at view time; a listed unreleased event is a teaser, not
// a leak.
func ListEvents(ctx context.Context, store ListEventsStore, logger *zap.Logger, today time.Time, includeHidden, highlightedOnly bool) ([]EventListing, error) {
	logger.Debug("Listing events",
		zap.Time("today", today),
		zap.Bool("include_hidden", includeHidden),
		zap.Bool("highlighted_only", highlightedOnly))

	events, err := store.ListEvents(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch events: %w", err)
	}

	var visible []db.Event
	for _, e := range events {
		if e.HiddenEvent && !includeHidden {
			continue
		}
		if highlightedOnly && !e.HighlightedEvent {
			continue
		}
		visible = append(visible, e)
	}

	eventIDs := make([]string, len(visible))
	for i, e := range visible {
		eventIDs[i] = e.ID
	}

	counts, err := store.CountWorkshops(ctx, eventIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to count workshops: %w", err)
	}

	listings := make([]EventListing, len(visible))
	for i, e := range visible {
		listings[i] = EventListing{Event: e, WorkshopCount: counts[e.ID]}
	}

	logger.Debug("Events listed", zap.Int("count", len(listings)))

	return listings, nil
}
