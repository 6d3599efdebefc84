package postgres

import (
	"context"
	"fmt"

	"github.com/compclub/compclub/pkg/db"
)

// InsertRegistration inserts a new registration record
func (d *DB) InsertRegistration(ctx context.Context, registration *db.Registration) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO registration (id, event_id, name, email, number, date_of_birth, parent_email, parent_number)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, registration.ID, registration.EventID, registration.Name, registration.Email,
		registration.Number, registration.DateOfBirth, registration.ParentEmail, registration.ParentNumber)
	if err != nil {
		return fmt.Errorf("failed to insert registration: %w", err)
	}
	return nil
}

// ListRegistrationsByEvent retrieves all registrations for an event
func (d *DB) ListRegistrationsByEvent(ctx context.Context, eventID string) ([]db.Registration, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, event_id, name, email, number, date_of_birth, parent_email, parent_number
		FROM registration
		WHERE event_id = $1
		ORDER BY name
	`, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to query registrations: %w", err)
	}
	defer rows.Close()

	var registrations []db.Registration
	for rows.Next() {
		var r db.Registration
		if err := rows.Scan(&r.ID, &r.EventID, &r.Name, &r.Email, &r.Number, &r.DateOfBirth, &r.ParentEmail, &r.ParentNumber); err != nil {
			return nil, fmt.Errorf("failed to scan registration: %w", err)
		}
		registrations = append(registrations, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating registrations: %w", err)
	}

	return registrations, nil
}
