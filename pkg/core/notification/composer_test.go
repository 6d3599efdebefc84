package notification

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/compclub/compclub/pkg/db"
)

func buildFixtures() (*db.Event, []db.Workshop, []db.Volunteer, []db.User) {
	event := &db.Event{ID: "e1", Name: "Spring Code Camp", Slug: "spring-code-camp"}
	workshops := []db.Workshop{
		{ID: "w1", EventID: "e1", Name: "Robotics", Date: time.Date(2026, time.March, 7, 0, 0, 0, 0, time.UTC), StartTime: "10:00", EndTime: "12:00", Location: "Main Hall"},
		{ID: "w2", EventID: "e1", Name: "Web Design", Date: time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC), StartTime: "10:00", EndTime: "12:00", Location: "Room 2"},
	}
	volunteers := []db.Volunteer{
		{ID: "v1", UserID: "u1"},
		{ID: "v2", UserID: "u2"},
	}
	users := []db.User{
		{ID: "u1", FirstName: "Alice", LastName: "Smith", Email: "alice@example.com"},
		{ID: "u2", FirstName: "Bob", LastName: "Jones", Email: "bob@example.com"},
	}
	return event, workshops, volunteers, users
}

func TestComposeStatusEmails_OneEmailPerVolunteerAcrossWorkshops(t *testing.T) {
	event, workshops, volunteers, users := buildFixtures()
	assignments := []db.VolunteerAssignment{
		{ID: "a1", WorkshopID: "w1", VolunteerID: "v1", Status: db.StatusAssigned},
		{ID: "a2", WorkshopID: "w2", VolunteerID: "v1", Status: db.StatusWaitlist},
		{ID: "a3", WorkshopID: "w1", VolunteerID: "v2", Status: db.StatusDeclined},
	}

	emails, err := ComposeStatusEmails(event, workshops, assignments, volunteers, users)

	require.NoError(t, err)
	require.Len(t, emails, 2)

	// Recipients ordered by address
	assert.Equal(t, "alice@example.com", emails[0].Recipient)
	assert.Equal(t, "bob@example.com", emails[1].Recipient)

	// Alice's single email covers both her workshops
	assert.Equal(t, "Your volunteer status for Spring Code Camp", emails[0].Subject)
	assert.Contains(t, emails[0].Body, "Hi Alice,")
	assert.Contains(t, emails[0].Body, "assigned to Robotics")
	assert.Contains(t, emails[0].Body, "on the waitlist for Web Design")

	assert.Contains(t, emails[1].Body, "declined for Robotics")
	assert.NotContains(t, emails[1].Body, "Web Design")
}

func TestComposeStatusEmails_BodyListsWorkshopsInDateOrder(t *testing.T) {
	event, workshops, volunteers, users := buildFixtures()
	// Records arrive in reverse workshop order
	assignments := []db.VolunteerAssignment{
		{ID: "a2", WorkshopID: "w2", VolunteerID: "v1", Status: db.StatusAssigned},
		{ID: "a1", WorkshopID: "w1", VolunteerID: "v1", Status: db.StatusAssigned},
	}

	emails, err := ComposeStatusEmails(event, workshops, assignments, volunteers, users)

	require.NoError(t, err)
	require.Len(t, emails, 1)
	body := emails[0].Body
	assert.Less(t, indexOf(t, body, "Robotics"), indexOf(t, body, "Web Design"))
}

func TestComposeStatusEmails_NoRecordsMeansNoEmails(t *testing.T) {
	event, workshops, volunteers, users := buildFixtures()

	emails, err := ComposeStatusEmails(event, workshops, nil, volunteers, users)

	require.NoError(t, err)
	assert.Empty(t, emails)
}

func TestComposeStatusEmails_NilEventErrors(t *testing.T) {
	_, workshops, volunteers, users := buildFixtures()

	_, err := ComposeStatusEmails(nil, workshops, nil, volunteers, users)

	assert.Error(t, err)
}

func TestComposeStatusEmails_ForeignWorkshopRecordErrors(t *testing.T) {
	event, workshops, volunteers, users := buildFixtures()
	assignments := []db.VolunteerAssignment{
		{ID: "a1", WorkshopID: "other-event-workshop", VolunteerID: "v1", Status: db.StatusAssigned},
	}

	_, err := ComposeStatusEmails(event, workshops, assignments, volunteers, users)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "other-event-workshop")
}

func TestComposeStatusEmails_UnknownVolunteerErrors(t *testing.T) {
	event, workshops, _, users := buildFixtures()
	assignments := []db.VolunteerAssignment{
		{ID: "a1", WorkshopID: "w1", VolunteerID: "ghost", Status: db.StatusAssigned},
	}

	_, err := ComposeStatusEmails(event, workshops, assignments, nil, users)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown volunteer")
}

func indexOf(t *testing.T, haystack, needle string) int {
	t.Helper()
	idx := strings.Index(haystack, needle)
	require.GreaterOrEqual(t, idx, 0, "%q not found in body", needle)
	return idx
}
