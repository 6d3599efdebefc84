package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/compclub/compclub/pkg/db"
)

// GetEvent retrieves a single event by ID.
// Returns db.ErrNotFound if the event does not exist.
func (d *DB) GetEvent(ctx context.Context, eventID string) (*db.Event, error) {
	var e db.Event
	var ownerID *string
	err := d.pool.QueryRow(ctx, `
		SELECT id, name, slug, start_date, finish_date, owner_id, hidden_event, released, highlighted_event
		FROM event
		WHERE id = $1
	`, eventID).Scan(&e.ID, &e.Name, &e.Slug, &e.StartDate, &e.FinishDate, &ownerID, &e.HiddenEvent, &e.Released, &e.HighlightedEvent)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, db.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query event: %w", err)
	}
	if ownerID != nil {
		e.OwnerID = *ownerID
	}
	return &e, nil
}

// ListEvents retrieves events finishing on or after the given date, ordered by start date
func (d *DB) ListEvents(ctx context.Context, finishOnOrAfter time.Time) ([]db.Event, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, name, slug, start_date, finish_date, owner_id, hidden_event, released, highlighted_event
		FROM event
		WHERE finish_date >= $1
		ORDER BY start_date
	`, finishOnOrAfter)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	var events []db.Event
	for rows.Next() {
		var e db.Event
		var ownerID *string
		if err := rows.Scan(&e.ID, &e.Name, &e.Slug, &e.StartDate, &e.FinishDate, &ownerID, &e.HiddenEvent, &e.Released, &e.HighlightedEvent); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		if ownerID != nil {
			e.OwnerID = *ownerID
		}
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", err)
	}

	return events, nil
}

// InsertEvent inserts a new event record
func (d *DB) InsertEvent(ctx context.Context, event *db.Event) error {
	var ownerID *string
	if event.OwnerID != "" {
		ownerID = &event.OwnerID
	}

	_, err := d.pool.Exec(ctx, `
		INSERT INTO event (id, name, slug, start_date, finish_date, owner_id, hidden_event, released, highlighted_event)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, event.ID, event.Name, event.Slug, event.StartDate, event.FinishDate, ownerID, event.HiddenEvent, event.Released, event.HighlightedEvent)
	if err != nil {
		return fmt.Errorf("failed to insert event: %w", err)
	}
	return nil
}

// UpdateEvent updates an existing event record.
// Returns db.ErrNotFound if the event does not exist.
func (d *DB) UpdateEvent(ctx context.Context, event *db.Event) error {
	var ownerID *string
	if event.OwnerID != "" {
		ownerID = &event.OwnerID
	}

	tag, err := d.pool.Exec(ctx, `
		UPDATE event
		SET name = $2, slug = $3, start_date = $4, finish_date = $5, owner_id = $6, hidden_event = $7, released = $8, highlighted_event = $9
		WHERE id = $1
	`, event.ID, event.Name, event.Slug, event.StartDate, event.FinishDate, ownerID, event.HiddenEvent, event.Released, event.HighlightedEvent)
	if err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return db.ErrNotFound
	}
	return nil
}

// CountWorkshops returns the number of workshops per event for the given event IDs
func (d *DB) CountWorkshops(ctx context.Context, eventIDs []string) (map[string]int, error) {
	counts := make(map[string]int, len(eventIDs))
	if len(eventIDs) == 0 {
		return counts, nil
	}

	rows, err := d.pool.Query(ctx, `
		SELECT event_id, COUNT(*)
		FROM workshop
		WHERE event_id = ANY($1)
		GROUP BY event_id
	`, eventIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to count workshops: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var eventID string
		var count int
		if err := rows.Scan(&eventID, &count); err != nil {
			return nil, fmt.Errorf("failed to scan workshop count: %w", err)
		}
		counts[eventID] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating workshop counts: %w", err)
	}

	return counts, nil
}
