package postgres

import (
	"context"
	"fmt"

	"github.com/compclub/compclub/pkg/db"
)

// ListContentBlocks retrieves an event's content blocks in page order
func (d *DB) ListContentBlocks(ctx context.Context, eventID string) ([]db.ContentBlock, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, event_id, kind, ordering, text_content, name, file, url, caption
		FROM content_block
		WHERE event_id = $1
		ORDER BY ordering
	`, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to query content blocks: %w", err)
	}
	defer rows.Close()

	var blocks []db.ContentBlock
	for rows.Next() {
		var b db.ContentBlock
		var kind string
		if err := rows.Scan(&b.ID, &b.EventID, &kind, &b.Ordering, &b.Text, &b.Name, &b.File, &b.URL, &b.Caption); err != nil {
			return nil, fmt.Errorf("failed to scan content block: %w", err)
		}
		b.Kind = db.BlockKind(kind)
		blocks = append(blocks, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating content blocks: %w", err)
	}

	return blocks, nil
}

// InsertContentBlock inserts a new content block record
func (d *DB) InsertContentBlock(ctx context.Context, block *db.ContentBlock) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO content_block (id, event_id, kind, ordering, text_content, name, file, url, caption)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, block.ID, block.EventID, string(block.Kind), block.Ordering, block.Text, block.Name, block.File, block.URL, block.Caption)
	if err != nil {
		return fmt.Errorf("failed to insert content block: %w", err)
	}
	return nil
}
