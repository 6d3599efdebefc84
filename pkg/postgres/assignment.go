package postgres

import (
	"context"
	"fmt"

	"github.com/compclub/compclub/pkg/db"
)

// ListAssignmentsByWorkshop retrieves all assignment records for a workshop
func (d *DB) ListAssignmentsByWorkshop(ctx context.Context, workshopID string) ([]db.VolunteerAssignment, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, workshop_id, volunteer_id, status
		FROM volunteer_assignment
		WHERE workshop_id = $1
	`, workshopID)
	if err != nil {
		return nil, fmt.Errorf("failed to query assignments: %w", err)
	}
	defer rows.Close()

	return scanAssignments(rows)
}

// ListAssignmentsByEvent retrieves all assignment records across every
// workshop of an event
func (d *DB) ListAssignmentsByEvent(ctx context.Context, eventID string) ([]db.VolunteerAssignment, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT va.id, va.workshop_id, va.volunteer_id, va.status
		FROM volunteer_assignment va
		JOIN workshop w ON w.id = va.workshop_id
		WHERE w.event_id = $1
	`, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to query event assignments: %w", err)
	}
	defer rows.Close()

	return scanAssignments(rows)
}

// UpsertAssignments applies an assignment batch in a single transaction.
// The (workshop_id, volunteer_id) pair is the uniqueness key: existing
// records get their status updated, new pairs are inserted.
func (d *DB) UpsertAssignments(ctx context.Context, assignments []db.VolunteerAssignment) error {
	if len(assignments) == 0 {
		return nil
	}

	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, a := range assignments {
		_, err := tx.Exec(ctx, `
			INSERT INTO volunteer_assignment (id, workshop_id, volunteer_id, status)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (workshop_id, volunteer_id) DO UPDATE SET status = EXCLUDED.status
		`, a.ID, a.WorkshopID, a.VolunteerID, string(a.Status))
		if err != nil {
			return fmt.Errorf("failed to upsert assignment: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

type pgxRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanAssignments(rows pgxRows) ([]db.VolunteerAssignment, error) {
	var assignments []db.VolunteerAssignment
	for rows.Next() {
		var a db.VolunteerAssignment
		var status string
		if err := rows.Scan(&a.ID, &a.WorkshopID, &a.VolunteerID, &status); err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		a.Status = db.AssignStatus(status)
		assignments = append(assignments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating assignments: %w", err)
	}

	return assignments, nil
}
