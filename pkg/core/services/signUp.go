package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/compclub/compclub/pkg/db"
)

// SignUpInput carries the submitted fields for creating a new account
type SignUpInput struct {
	Username  string `validate:"required,max=150"`
	FirstName string `validate:"required,max=200"`
	LastName  string `validate:"required,max=200"`
	Email     string `validate:"required,email"`
	// SchoolID is set for student sign-ups
	SchoolID string `validate:"omitempty,uuid4"`
}

// SignUpStore defines the database operations needed for account creation
type SignUpStore interface {
	CreateAccount(ctx context.Context, user *db.User, volunteer *db.Volunteer, student *db.Student) error
}

// AccountResult holds the records created for a new account
type AccountResult struct {
	User      *db.User
	Volunteer *db.Volunteer
	Student   *db.Student
}

// CreateVolunteerAccount creates a user account with its companion volunteer
// record. The companion record is created explicitly here, in the same
// transaction as the user, so every account has exactly one volunteer.
func CreateVolunteerAccount(ctx context.Context, store SignUpStore, logger *zap.Logger, input SignUpInput) (*AccountResult, error) {
	return createAccount(ctx, store, logger, input, false)
}

// SignUpStudent creates a student account: user, companion volunteer record,
// and student record, all in one transaction. Either all three rows are
// written or none.
func SignUpStudent(ctx context.Context, store SignUpStore, logger *zap.Logger, input SignUpInput) (*AccountResult, error) {
	return createAccount(ctx, store, logger, input, true)
}

func createAccount(ctx context.Context, store SignUpStore, logger *zap.Logger, input SignUpInput, asStudent bool) (*AccountResult, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	user := &db.User{
		ID:        uuid.New().String(),
		Username:  input.Username,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
	}
	volunteer := &db.Volunteer{
		ID:     uuid.New().String(),
		UserID: user.ID,
	}

	var student *db.Student
	if asStudent {
		student = &db.Student{
			ID:       uuid.New().String(),
			UserID:   user.ID,
			SchoolID: input.SchoolID,
		}
	}

	logger.Debug("Creating account",
		zap.String("user_id", user.ID),
		zap.String("username", user.Username),
		zap.Bool("student", asStudent))

	if err := store.CreateAccount(ctx, user, volunteer, student); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	logger.Info("Account created",
		zap.String("user_id", user.ID),
		zap.String("volunteer_id", volunteer.ID))

	return &AccountResult{User: user, Volunteer: volunteer, Student: student}, nil
}
