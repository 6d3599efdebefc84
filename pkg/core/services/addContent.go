package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/compclub/compclub/pkg/core/content"
	"github.com/compclub/compclub/pkg/db"
)

// AddContentStore defines the database operations needed for attaching
// content blocks to an event
type AddContentStore interface {
	GetEvent(ctx context.Context, eventID string) (*db.Event, error)
	ListContentBlocks(ctx context.Context, eventID string) ([]db.ContentBlock, error)
	InsertContentBlock(ctx context.Context, block *db.ContentBlock) error
}

// AddContentBlock appends a content block to an event page. The block is
// rendered once up front so malformed blocks are rejected at submission time
// instead of breaking the event page later.
func AddContentBlock(ctx context.Context, store AddContentStore, logger *zap.Logger, eventID string, block db.ContentBlock) (*db.ContentBlock, error) {
	event, err := store.GetEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch event: %w", err)
	}

	block.ID = uuid.New().String()
	block.EventID = event.ID

	if _, err := content.Render(block); err != nil {
		return nil, err
	}

	existing, err := store.ListContentBlocks(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch content blocks: %w", err)
	}
	block.Ordering = len(existing)

	if err := store.InsertContentBlock(ctx, &block); err != nil {
		return nil, fmt.Errorf("failed to insert content block: %w", err)
	}

	logger.Info("Content block added",
		zap.String("event_id", event.ID),
		zap.String("kind", string(block.Kind)))

	return &block, nil
}
