package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/compclub/compclub/pkg/core/notification"
	"github.com/compclub/compclub/pkg/db"
)

// FailedEmail records a recipient the transport rejected
type FailedEmail struct {
	Recipient string
	Subject   string
	Error     string
}

// StatusEmailStore defines the database operations needed for composing
// status emails
type StatusEmailStore interface {
	GetEvent(ctx context.Context, eventID string) (*db.Event, error)
	ListWorkshopsByEvent(ctx context.Context, eventID string) ([]db.Workshop, error)
	ListAssignmentsByEvent(ctx context.Context, eventID string) ([]db.VolunteerAssignment, error)
	ListVolunteersByIDs(ctx context.Context, volunteerIDs []string) ([]db.Volunteer, error)
	ListUsersByIDs(ctx context.Context, userIDs []string) ([]db.User, error)
}

// MailClient sends a single email. Implemented by gmailclient.Client.
type MailClient interface {
	SendEmail(to, subject, body string) error
}

// PreviewStatusEmails composes the status email batch for an event without
// sending anything. Each volunteer with at least one assignment record across
// the event's workshops gets exactly one email.
func PreviewStatusEmails(ctx context.Context, store StatusEmailStore, logger *zap.Logger, eventID string) ([]notification.Email, error) {
	logger.Debug("Composing status emails", zap.String("event_id", eventID))

	event, err := store.GetEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch event: %w", err)
	}

	workshops, err := store.ListWorkshopsByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch workshops: %w", err)
	}

	assignments, err := store.ListAssignmentsByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch assignments: %w", err)
	}

	volunteerIDs := uniqueVolunteerIDs(assignments)
	volunteers, err := store.ListVolunteersByIDs(ctx, volunteerIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch volunteers: %w", err)
	}

	userIDs := make([]string, len(volunteers))
	for i, v := range volunteers {
		userIDs[i] = v.UserID
	}
	users, err := store.ListUsersByIDs(ctx, userIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}

	emails, err := notification.ComposeStatusEmails(event, workshops, assignments, volunteers, users)
	if err != nil {
		return nil, fmt.Errorf("failed to compose status emails: %w", err)
	}

	logger.Debug("Status emails composed",
		zap.String("event_id", eventID),
		zap.Int("count", len(emails)))

	return emails, nil
}

// SendStatusEmails composes and dispatches the status email batch for an
// event. Transport failures are collected per recipient and returned rather
// than aborting the batch; the core never retries.
func SendStatusEmails(ctx context.Context, store StatusEmailStore, mail MailClient, logger *zap.Logger, eventID string) ([]notification.Email, []FailedEmail, error) {
	emails, err := PreviewStatusEmails(ctx, store, logger, eventID)
	if err != nil {
		return nil, nil, err
	}

	var sent []notification.Email
	var failed []FailedEmail
	for _, email := range emails {
		if err := mail.SendEmail(email.Recipient, email.Subject, email.Body); err != nil {
			logger.Warn("Failed to send status email",
				zap.String("recipient", email.Recipient),
				zap.Error(err))
			failed = append(failed, FailedEmail{
				Recipient: email.Recipient,
				Subject:   email.Subject,
				Error:     err.Error(),
			})
			continue
		}
		sent = append(sent, email)
	}

	logger.Info("Status emails dispatched",
		zap.String("event_id", eventID),
		zap.Int("sent", len(sent)),
		zap.Int("failed", len(failed)))

	return sent, failed, nil
}

func uniqueVolunteerIDs(assignments []db.VolunteerAssignment) []string {
	seen := make(map[string]bool, len(assignments))
	var ids []string
	for _, a := range assignments {
		if !seen[a.VolunteerID] {
			seen[a.VolunteerID] = true
			ids = append(ids, a.VolunteerID)
		}
	}
	return ids
}
