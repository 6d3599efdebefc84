package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/compclub/compclub/pkg/db"
)

// GetWorkshop retrieves a single workshop by ID.
// Returns db.ErrNotFound if the workshop does not exist.
func (d *DB) GetWorkshop(ctx context.Context, workshopID string) (*db.Workshop, error) {
	var w db.Workshop
	err := d.pool.QueryRow(ctx, `
		SELECT id, event_id, name, date, start_time, end_time, location
		FROM workshop
		WHERE id = $1
	`, workshopID).Scan(&w.ID, &w.EventID, &w.Name, &w.Date, &w.StartTime, &w.EndTime, &w.Location)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, db.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query workshop: %w", err)
	}
	return &w, nil
}

// ListWorkshopsByEvent retrieves all workshops for an event, ordered by date and start time
func (d *DB) ListWorkshopsByEvent(ctx context.Context, eventID string) ([]db.Workshop, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, event_id, name, date, start_time, end_time, location
		FROM workshop
		WHERE event_id = $1
		ORDER BY date, start_time
	`, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to query workshops: %w", err)
	}
	defer rows.Close()

	var workshops []db.Workshop
	for rows.Next() {
		var w db.Workshop
		if err := rows.Scan(&w.ID, &w.EventID, &w.Name, &w.Date, &w.StartTime, &w.EndTime, &w.Location); err != nil {
			return nil, fmt.Errorf("failed to scan workshop: %w", err)
		}
		workshops = append(workshops, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating workshops: %w", err)
	}

	return workshops, nil
}

// InsertWorkshops inserts workshop records in a single transaction
func (d *DB) InsertWorkshops(ctx context.Context, workshops []db.Workshop) error {
	if len(workshops) == 0 {
		return nil
	}

	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, w := range workshops {
		_, err := tx.Exec(ctx, `
			INSERT INTO workshop (id, event_id, name, date, start_time, end_time, location)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, w.ID, w.EventID, w.Name, w.Date, w.StartTime, w.EndTime, w.Location)
		if err != nil {
			return fmt.Errorf("failed to insert workshop: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetAvailableVolunteers retrieves the volunteers who declared availability for
// a workshop, in declaration order
func (d *DB) GetAvailableVolunteers(ctx context.Context, workshopID string) ([]db.Volunteer, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT v.id, v.user_id, v.position_id
		FROM workshop_availability wa
		JOIN volunteer v ON v.id = wa.volunteer_id
		WHERE wa.workshop_id = $1
		ORDER BY wa.declared_at
	`, workshopID)
	if err != nil {
		return nil, fmt.Errorf("failed to query available volunteers: %w", err)
	}
	defer rows.Close()

	var volunteers []db.Volunteer
	for rows.Next() {
		var v db.Volunteer
		var positionID *string
		if err := rows.Scan(&v.ID, &v.UserID, &positionID); err != nil {
			return nil, fmt.Errorf("failed to scan volunteer: %w", err)
		}
		if positionID != nil {
			v.PositionID = *positionID
		}
		volunteers = append(volunteers, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating available volunteers: %w", err)
	}

	return volunteers, nil
}

// AddAvailability records a volunteer's availability for a workshop.
// Declaring twice is a no-op.
func (d *DB) AddAvailability(ctx context.Context, workshopID, volunteerID string) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO workshop_availability (workshop_id, volunteer_id)
		VALUES ($1, $2)
		ON CONFLICT (workshop_id, volunteer_id) DO NOTHING
	`, workshopID, volunteerID)
	if err != nil {
		return fmt.Errorf("failed to add availability: %w", err)
	}
	return nil
}

// RemoveAvailability removes a volunteer from a workshop's available set.
// Assignment records are left untouched; withdrawal is derived from the
// difference between the two.
func (d *DB) RemoveAvailability(ctx context.Context, workshopID, volunteerID string) error {
	_, err := d.pool.Exec(ctx, `
		DELETE FROM workshop_availability
		WHERE workshop_id = $1 AND volunteer_id = $2
	`, workshopID, volunteerID)
	if err != nil {
		return fmt.Errorf("failed to remove availability: %w", err)
	}
	return nil
}
