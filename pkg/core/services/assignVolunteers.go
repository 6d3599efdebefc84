package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/compclub/compclub/pkg/core/assignment"
	"github.com/compclub/compclub/pkg/db"
)

// AssignVolunteersStore defines the database operations needed for applying
// an assignment submission
type AssignVolunteersStore interface {
	GetWorkshop(ctx context.Context, workshopID string) (*db.Workshop, error)
	GetAvailableVolunteers(ctx context.Context, workshopID string) ([]db.Volunteer, error)
	ListAssignmentsByWorkshop(ctx context.Context, workshopID string) ([]db.VolunteerAssignment, error)
	UpsertAssignments(ctx context.Context, assignments []db.VolunteerAssignment) error
}

// AssignVolunteers applies a staff assignment submission to a workshop.
//
// The submission maps volunteer IDs to their new status. The whole batch is
// validated against the workshop's current available set and existing records
// before anything is written; one ineligible volunteer rejects the entire
// submission and the store is untouched. Valid submissions are applied in a
// single transaction by the store. Volunteers omitted from the submission
// keep whatever status they had, including none.
func AssignVolunteers(ctx context.Context, store AssignVolunteersStore, logger *zap.Logger, workshopID string, submission map[string]db.AssignStatus) ([]db.VolunteerAssignment, error) {
	logger.Debug("Applying assignment submission",
		zap.String("workshop_id", workshopID),
		zap.Int("entries", len(submission)))

	workshop, err := store.GetWorkshop(ctx, workshopID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch workshop: %w", err)
	}

	if len(submission) == 0 {
		return nil, nil
	}

	available, err := store.GetAvailableVolunteers(ctx, workshopID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch available volunteers: %w", err)
	}

	existing, err := store.ListAssignmentsByWorkshop(ctx, workshopID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch assignments: %w", err)
	}

	// Validate the whole submission before any write
	if err := assignment.ValidateSubmission(submission, available, existing); err != nil {
		logger.Warn("Assignment submission rejected",
			zap.String("workshop_id", workshopID),
			zap.Error(err))
		return nil, err
	}

	rows := assignment.BuildUpserts(workshop.ID, submission, existing)

	if err := store.UpsertAssignments(ctx, rows); err != nil {
		return nil, fmt.Errorf("failed to apply assignments: %w", err)
	}

	logger.Info("Assignment submission applied",
		zap.String("workshop_id", workshop.ID),
		zap.Int("records", len(rows)))

	return rows, nil
}
