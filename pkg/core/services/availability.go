package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/compclub/compclub/pkg/core/assignment"
	"github.com/compclub/compclub/pkg/db"
)

// AvailabilityStore defines the database operations needed for declaring and
// withdrawing availability
type AvailabilityStore interface {
	GetWorkshop(ctx context.Context, workshopID string) (*db.Workshop, error)
	GetVolunteer(ctx context.Context, volunteerID string) (*db.Volunteer, error)
	AddAvailability(ctx context.Context, workshopID, volunteerID string) error
	RemoveAvailability(ctx context.Context, workshopID, volunteerID string) error
}

// DeclareAvailability records a volunteer's self-declared availability for a
// workshop. It never creates assignment records; those are written only by
// staff submissions.
func DeclareAvailability(ctx context.Context, store AvailabilityStore, logger *zap.Logger, workshopID, volunteerID string) error {
	if _, err := store.GetWorkshop(ctx, workshopID); err != nil {
		return fmt.Errorf("failed to fetch workshop: %w", err)
	}
	if _, err := store.GetVolunteer(ctx, volunteerID); err != nil {
		return fmt.Errorf("failed to fetch volunteer: %w", err)
	}

	if err := store.AddAvailability(ctx, workshopID, volunteerID); err != nil {
		return fmt.Errorf("failed to declare availability: %w", err)
	}

	logger.Info("Availability declared",
		zap.String("workshop_id", workshopID),
		zap.String("volunteer_id", volunteerID))

	return nil
}

// WithdrawAvailability removes a volunteer from a workshop's available set.
// Any existing assignment record is left in place; the volunteer then shows
// up in the workshop's withdrawn set for staff follow-up.
func WithdrawAvailability(ctx context.Context, store AvailabilityStore, logger *zap.Logger, workshopID, volunteerID string) error {
	if _, err := store.GetWorkshop(ctx, workshopID); err != nil {
		return fmt.Errorf("failed to fetch workshop: %w", err)
	}

	if err := store.RemoveAvailability(ctx, workshopID, volunteerID); err != nil {
		return fmt.Errorf("failed to withdraw availability: %w", err)
	}

	logger.Info("Availability withdrawn",
		zap.String("workshop_id", workshopID),
		zap.String("volunteer_id", volunteerID))

	return nil
}

// WorkshopRoster is the staff view of a workshop's volunteer sets
type WorkshopRoster struct {
	Workshop  *db.Workshop
	Available []db.Volunteer
	Sets      assignment.Sets
}

// RosterStore defines the database operations needed for the roster view
type RosterStore interface {
	GetWorkshop(ctx context.Context, workshopID string) (*db.Workshop, error)
	GetAvailableVolunteers(ctx context.Context, workshopID string) ([]db.Volunteer, error)
	ListAssignmentsByWorkshop(ctx context.Context, workshopID string) ([]db.VolunteerAssignment, error)
}

// GetWorkshopRoster computes the derived volunteer sets for a workshop from
// current store state
func GetWorkshopRoster(ctx context.Context, store RosterStore, logger *zap.Logger, workshopID string) (*WorkshopRoster, error) {
	workshop, err := store.GetWorkshop(ctx, workshopID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch workshop: %w", err)
	}

	available, err := store.GetAvailableVolunteers(ctx, workshopID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch available volunteers: %w", err)
	}

	assignments, err := store.ListAssignmentsByWorkshop(ctx, workshopID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch assignments: %w", err)
	}

	logger.Debug("Workshop roster computed",
		zap.String("workshop_id", workshopID),
		zap.Int("available", len(available)),
		zap.Int("assignments", len(assignments)))

	return &WorkshopRoster{
		Workshop:  workshop,
		Available: available,
		Sets:      assignment.Derive(available, assignments),
	}, nil
}
