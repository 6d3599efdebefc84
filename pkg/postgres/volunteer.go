package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/compclub/compclub/pkg/db"
)

// GetVolunteer retrieves a single volunteer by ID.
// Returns db.ErrNotFound if the volunteer does not exist.
func (d *DB) GetVolunteer(ctx context.Context, volunteerID string) (*db.Volunteer, error) {
	var v db.Volunteer
	var positionID *string
	err := d.pool.QueryRow(ctx, `
		SELECT id, user_id, position_id
		FROM volunteer
		WHERE id = $1
	`, volunteerID).Scan(&v.ID, &v.UserID, &positionID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, db.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query volunteer: %w", err)
	}
	if positionID != nil {
		v.PositionID = *positionID
	}
	return &v, nil
}

// ListVolunteersByIDs retrieves volunteers for the given IDs
func (d *DB) ListVolunteersByIDs(ctx context.Context, volunteerIDs []string) ([]db.Volunteer, error) {
	if len(volunteerIDs) == 0 {
		return nil, nil
	}

	rows, err := d.pool.Query(ctx, `
		SELECT id, user_id, position_id
		FROM volunteer
		WHERE id = ANY($1)
	`, volunteerIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query volunteers: %w", err)
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
		return nil, fmt.Errorf("error iterating volunteers: %w", err)
	}

	return volunteers, nil
}

// GetUser retrieves a single user by ID.
// Returns db.ErrNotFound if the user does not exist.
func (d *DB) GetUser(ctx context.Context, userID string) (*db.User, error) {
	var u db.User
	err := d.pool.QueryRow(ctx, `
		SELECT id, username, first_name, last_name, email
		FROM app_user
		WHERE id = $1
	`, userID).Scan(&u.ID, &u.Username, &u.FirstName, &u.LastName, &u.Email)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, db.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	return &u, nil
}

// ListUsersByIDs retrieves users for the given IDs
func (d *DB) ListUsersByIDs(ctx context.Context, userIDs []string) ([]db.User, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}

	rows, err := d.pool.Query(ctx, `
		SELECT id, username, first_name, last_name, email
		FROM app_user
		WHERE id = ANY($1)
	`, userIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []db.User
	for rows.Next() {
		var u db.User
		if err := rows.Scan(&u.ID, &u.Username, &u.FirstName, &u.LastName, &u.Email); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}

	return users, nil
}

// CreateAccount inserts a user, its companion volunteer record, and optionally
// a student record in one transaction. Either all rows are written or none.
func (d *DB) CreateAccount(ctx context.Context, user *db.User, volunteer *db.Volunteer, student *db.Student) error {
	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO app_user (id, username, first_name, last_name, email)
		VALUES ($1, $2, $3, $4, $5)
	`, user.ID, user.Username, user.FirstName, user.LastName, user.Email)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	var positionID *string
	if volunteer.PositionID != "" {
		positionID = &volunteer.PositionID
	}
	_, err = tx.Exec(ctx, `
		INSERT INTO volunteer (id, user_id, position_id)
		VALUES ($1, $2, $3)
	`, volunteer.ID, volunteer.UserID, positionID)
	if err != nil {
		return fmt.Errorf("failed to insert volunteer: %w", err)
	}

	if student != nil {
		var schoolID *string
		if student.SchoolID != "" {
			schoolID = &student.SchoolID
		}
		_, err = tx.Exec(ctx, `
			INSERT INTO student (id, user_id, school_id)
			VALUES ($1, $2, $3)
		`, student.ID, student.UserID, schoolID)
		if err != nil {
			return fmt.Errorf("failed to insert student: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetPermissions retrieves the permission names granted to a user
func (d *DB) GetPermissions(ctx context.Context, userID string) ([]string, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT permission
		FROM user_permission
		WHERE user_id = $1
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query permissions: %w", err)
	}
	defer rows.Close()

	var permissions []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("failed to scan permission: %w", err)
		}
		permissions = append(permissions, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating permissions: %w", err)
	}

	return permissions, nil
}
