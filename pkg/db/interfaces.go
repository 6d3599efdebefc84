package db

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by lookups when the requested record does not exist
var ErrNotFound = errors.New("record not found")

// EventStore defines event database operations
type EventStore interface {
	GetEvent(ctx context.Context, eventID string) (*Event, error)
	ListEvents(ctx context.Context, finishOnOrAfter time.Time) ([]Event, error)
	InsertEvent(ctx context.Context, event *Event) error
	UpdateEvent(ctx context.Context, event *Event) error
	CountWorkshops(ctx context.Context, eventIDs []string) (map[string]int, error)
}

// WorkshopStore defines workshop and availability database operations
type WorkshopStore interface {
	GetWorkshop(ctx context.Context, workshopID string) (*Workshop, error)
	ListWorkshopsByEvent(ctx context.Context, eventID string) ([]Workshop, error)
	InsertWorkshops(ctx context.Context, workshops []Workshop) error
	GetAvailableVolunteers(ctx context.Context, workshopID string) ([]Volunteer, error)
	AddAvailability(ctx context.Context, workshopID, volunteerID string) error
	RemoveAvailability(ctx context.Context, workshopID, volunteerID string) error
}

// AssignmentStore defines volunteer assignment database operations.
// UpsertAssignments must apply the whole batch in a single transaction.
type AssignmentStore interface {
	ListAssignmentsByWorkshop(ctx context.Context, workshopID string) ([]VolunteerAssignment, error)
	ListAssignmentsByEvent(ctx context.Context, eventID string) ([]VolunteerAssignment, error)
	UpsertAssignments(ctx context.Context, assignments []VolunteerAssignment) error
}

// VolunteerStore defines volunteer and user database operations
type VolunteerStore interface {
	GetVolunteer(ctx context.Context, volunteerID string) (*Volunteer, error)
	ListVolunteersByIDs(ctx context.Context, volunteerIDs []string) ([]Volunteer, error)
	GetUser(ctx context.Context, userID string) (*User, error)
	ListUsersByIDs(ctx context.Context, userIDs []string) ([]User, error)
	// CreateAccount inserts the user and its companion volunteer record, and
	// the student record when student is non-nil, in one transaction.
	CreateAccount(ctx context.Context, user *User, volunteer *Volunteer, student *Student) error
}

// RegistrationStore defines registration database operations
type RegistrationStore interface {
	InsertRegistration(ctx context.Context, registration *Registration) error
	ListRegistrationsByEvent(ctx context.Context, eventID string) ([]Registration, error)
}

// ContentStore defines event content block database operations
type ContentStore interface {
	ListContentBlocks(ctx context.Context, eventID string) ([]ContentBlock, error)
	InsertContentBlock(ctx context.Context, block *ContentBlock) error
}

// PermissionStore backs the permission oracle consulted by the visibility gate
type PermissionStore interface {
	GetPermissions(ctx context.Context, userID string) ([]string, error)
}

// Store aggregates all database operations implemented by postgres.DB
type Store interface {
	EventStore
	WorkshopStore
	AssignmentStore
	VolunteerStore
	RegistrationStore
	ContentStore
	PermissionStore
}
