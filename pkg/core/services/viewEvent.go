package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/compclub/compclub/pkg/core/content"
	"github.com/compclub/compclub/pkg/core/visibility"
	"github.com/compclub/compclub/pkg/db"
)

// ViewEventResult is the outcome of a view-event request.
// Exactly one of the three shapes applies:
//   - RedirectSlug non-empty: the caller should redirect to the canonical
//     slug URL; nothing else is populated and visibility was not evaluated.
//   - Decision.Outcome == visibility.Visible: Event, Workshops and ContentHTML
//     are populated.
//   - otherwise: a denial; Decision.Message carries the viewer-facing text
//     (empty for hidden denials, which present as not-found).
type ViewEventResult struct {
	RedirectSlug string
	Decision     visibility.Decision
	Event        *db.Event
	Workshops    []db.Workshop
	ContentHTML  string
}

// ViewEventStore defines the database operations needed for viewing an event
type ViewEventStore interface {
	GetEvent(ctx context.Context, eventID string) (*db.Event, error)
	ListWorkshopsByEvent(ctx context.Context, eventID string) ([]db.Workshop, error)
	ListContentBlocks(ctx context.Context, eventID string) ([]db.ContentBlock, error)
	GetPermissions(ctx context.Context, userID string) ([]string, error)
}

// ViewEvent fetches an event on behalf of a viewer.
//
// The URL slug is normalized before anything else: a stale slug triggers a
// redirect to the canonical one, which is routing hygiene rather than a
// permission decision. Only then is the visibility gate consulted. A missing
// event and a hidden event denial are indistinguishable to the viewer.
func ViewEvent(ctx context.Context, store ViewEventStore, logger *zap.Logger, eventID, slug, viewerUserID string, today time.Time) (*ViewEventResult, error) {
	logger.Debug("Viewing event",
		zap.String("event_id", eventID),
		zap.String("slug", slug),
		zap.String("viewer", viewerUserID))

	event, err := store.GetEvent(ctx, eventID)
	if errors.Is(err, db.ErrNotFound) {
		return &ViewEventResult{Decision: visibility.Decision{Outcome: visibility.NotFound}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch event: %w", err)
	}

	if slug != event.Slug {
		logger.Debug("Slug mismatch, redirecting",
			zap.String("requested", slug),
			zap.String("canonical", event.Slug))
		return &ViewEventResult{RedirectSlug: event.Slug}, nil
	}

	var perms visibility.PermissionSet
	if viewerUserID != "" {
		names, err := store.GetPermissions(ctx, viewerUserID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch viewer permissions: %w", err)
		}
		perms = visibility.NewPermissionSet(names)
	} else {
		perms = visibility.PermissionSet{}
	}

	decision := visibility.Evaluate(&visibility.EventState{
		Hidden:    event.HiddenEvent,
		Released:  event.Released,
		StartDate: event.StartDate,
	}, perms, today)

	if decision.Outcome != visibility.Visible {
		logger.Debug("Event view denied",
			zap.String("event_id", eventID),
			zap.Int("outcome", int(decision.Outcome)))
		return &ViewEventResult{Decision: decision}, nil
	}

	workshops, err := store.ListWorkshopsByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch workshops: %w", err)
	}

	blocks, err := store.ListContentBlocks(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch content blocks: %w", err)
	}

	contentHTML, err := content.RenderAll(blocks)
	if err != nil {
		return nil, fmt.Errorf("failed to render content: %w", err)
	}

	return &ViewEventResult{
		Decision:    decision,
		Event:       event,
		Workshops:   workshops,
		ContentHTML: contentHTML,
	}, nil
}
