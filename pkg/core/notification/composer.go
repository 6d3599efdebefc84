// Package notification composes volunteer status emails for an event. The
// composer only builds messages; dispatching them is the mail client's job,
// so a composed batch can be previewed, discarded, or sent any number of
// times.
package notification

import (
	"fmt"
	"sort"
	"strings"

	"github.com/compclub/compclub/pkg/db"
)

// Email is one outbound message ready for dispatch
type Email struct {
	Recipient string
	Subject   string
	Body      string
}

// ComposeStatusEmails produces one email per volunteer who has at least one
// assignment record across the event's workshops. Messages are grouped by
// volunteer: a volunteer on several workshops of the event gets a single
// email listing every workshop's status. Recipients are ordered by email
// address for determinism.
func ComposeStatusEmails(
	event *db.Event,
	workshops []db.Workshop,
	assignments []db.VolunteerAssignment,
	volunteers []db.Volunteer,
	users []db.User,
) ([]Email, error) {
	if event == nil {
		return nil, fmt.Errorf("cannot compose status emails: event is nil")
	}

	workshopsByID := make(map[string]db.Workshop, len(workshops))
	for _, w := range workshops {
		workshopsByID[w.ID] = w
	}

	volunteersByID := make(map[string]db.Volunteer, len(volunteers))
	for _, v := range volunteers {
		volunteersByID[v.ID] = v
	}

	usersByID := make(map[string]db.User, len(users))
	for _, u := range users {
		usersByID[u.ID] = u
	}

	// Group assignment records by volunteer
	recordsByVolunteer := make(map[string][]db.VolunteerAssignment)
	for _, a := range assignments {
		if _, ok := workshopsByID[a.WorkshopID]; !ok {
			return nil, fmt.Errorf("assignment %s references workshop %s outside event %s", a.ID, a.WorkshopID, event.ID)
		}
		recordsByVolunteer[a.VolunteerID] = append(recordsByVolunteer[a.VolunteerID], a)
	}

	var emails []Email
	for volunteerID, records := range recordsByVolunteer {
		volunteer, ok := volunteersByID[volunteerID]
		if !ok {
			return nil, fmt.Errorf("assignment references unknown volunteer %s", volunteerID)
		}
		user, ok := usersByID[volunteer.UserID]
		if !ok {
			return nil, fmt.Errorf("volunteer %s references unknown user %s", volunteerID, volunteer.UserID)
		}

		emails = append(emails, Email{
			Recipient: user.Email,
			Subject:   fmt.Sprintf("Your volunteer status for %s", event.Name),
			Body:      statusBody(user, event, records, workshopsByID),
		})
	}

	sort.Slice(emails, func(i, j int) bool { return emails[i].Recipient < emails[j].Recipient })

	return emails, nil
}

// statusBody lists the volunteer's status for each workshop they have a
// record on, in workshop date order
func statusBody(user db.User, event *db.Event, records []db.VolunteerAssignment, workshopsByID map[string]db.Workshop) string {
	sort.Slice(records, func(i, j int) bool {
		wi, wj := workshopsByID[records[i].WorkshopID], workshopsByID[records[j].WorkshopID]
		if !wi.Date.Equal(wj.Date) {
			return wi.Date.Before(wj.Date)
		}
		return wi.StartTime < wj.StartTime
	})

	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\n", user.FirstName)
	fmt.Fprintf(&b, "Here is your volunteering status for %s:\n\n", event.Name)

	for _, record := range records {
		w := workshopsByID[record.WorkshopID]
		fmt.Fprintf(&b, "  - You are %s %s on %s (%s to %s, %s)\n",
			record.Status.Label(), w.Name, w.Date.Format("Monday 2 January"),
			w.StartTime, w.EndTime, w.Location)
	}

	b.WriteString("\nIf anything has changed, please let the organisers know.\n\nThanks for volunteering!\n")
	return b.String()
}
