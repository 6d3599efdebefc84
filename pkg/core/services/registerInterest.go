package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/compclub/compclub/pkg/db"
)

// RegistrationInput carries a student's submitted interest in an event
type RegistrationInput struct {
	Name         string    `validate:"required,max=100"`
	Email        string    `validate:"required,email"`
	Number       string    `validate:"required,max=15"`
	DateOfBirth  time.Time `validate:"required"`
	ParentEmail  string    `validate:"required,email"`
	ParentNumber string    `validate:"required,max=15"`
}

// RegisterInterestStore defines the database operations needed for event registration
type RegisterInterestStore interface {
	GetEvent(ctx context.Context, eventID string) (*db.Event, error)
	InsertRegistration(ctx context.Context, registration *db.Registration) error
}

// RegisterInterest records a student's interest in an event. Registrations
// are created once per submission and never mutated afterwards.
func RegisterInterest(ctx context.Context, store RegisterInterestStore, logger *zap.Logger, eventID string, input RegistrationInput) (*db.Registration, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	event, err := store.GetEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch event: %w", err)
	}

	registration := &db.Registration{
		ID:           uuid.New().String(),
		EventID:      event.ID,
		Name:         input.Name,
		Email:        input.Email,
		Number:       input.Number,
		DateOfBirth:  input.DateOfBirth,
		ParentEmail:  input.ParentEmail,
		ParentNumber: input.ParentNumber,
	}

	if err := store.InsertRegistration(ctx, registration); err != nil {
		return nil, fmt.Errorf("failed to insert registration: %w", err)
	}

	logger.Info("Registration recorded",
		zap.String("event_id", event.ID),
		zap.String("registration_id", registration.ID))

	return registration, nil
}
